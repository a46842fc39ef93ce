package types

// PackageResult represents the output of a successful packaging run.
type PackageResult struct {
	ArchivePath    string          // The absolute path to the generated archive file
	ReportPath     string          // Path to the report.yaml sidecar
	FileCount      int             // Number of dummy files packaged
	PayloadBytes   int64           // Total uncompressed size of the dummy files
	ArchiveBytes   int64           // Size of the archive in bytes
	ProcessedBytes int64           // Bytes produced by the sample transform stage
	Metadata       PackageMetadata // The metadata record embedded in the archive
}

// RunReport is the machine-readable run summary written next to the archive.
type RunReport struct {
	Package        string `yaml:"package"`
	Version        string `yaml:"version"`
	Created        string `yaml:"created"`
	SizeConfig     string `yaml:"size_config"`
	FileCount      int    `yaml:"file_count"`
	PayloadBytes   int64  `yaml:"payload_bytes"`
	ArchiveBytes   int64  `yaml:"archive_bytes"`
	ProcessedBytes int64  `yaml:"processed_bytes"`
	Archive        string `yaml:"archive"`
	Output         string `yaml:"output"`
}
