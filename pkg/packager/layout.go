package packager

// Fixed identity of the demo package.
const (
	PackageName    = "build-example"
	PackageVersion = "1.0.0"
)

// On-disk layout inside the output directory.
const (
	DummyDirName = "dummy_data"
	MetadataFile = "metadata.json"
	ArchiveName  = "package.tar.gz"
	ReportFile   = "report.yaml"

	dummyFilePattern = "data_%04d.bin"
)

// Entry prefixes inside the archive. Dummy files land under data/, the
// binary (when present) under bin/, and metadata.json sits at the root.
const (
	DataPrefix = "data"
	BinPrefix  = "bin"
)
