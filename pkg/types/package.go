package types

// SizeConfig is one of the fixed size presets controlling how many dummy
// files are generated and how large each one is.
type SizeConfig struct {
	// FileCount is the number of dummy payload files to generate.
	FileCount int

	// FileSizeKB is the size of each dummy file in KiB.
	FileSizeKB int

	// Description is a human-readable summary of the preset.
	Description string
}

// ChecksumMap maps a generated file path to its lowercase-hex SHA-256 digest.
type ChecksumMap map[string]string

// PackageMetadata describes the produced package. It is serialized once to
// metadata.json and embedded in the archive, never mutated after creation.
type PackageMetadata struct {
	// Package is the package name.
	Package string `json:"package"`

	// Version is the package version.
	Version string `json:"version"`

	// Created is the creation timestamp in RFC 3339 form.
	Created string `json:"created"`

	// SizeConfig is the name of the size tier the package was built with.
	SizeConfig string `json:"size_config"`

	// Binary is the path of the binary as given on the command line. The
	// file is not required to exist.
	Binary string `json:"binary"`

	// FileCount is the number of dummy files in the package.
	FileCount int `json:"file_count"`

	// Checksums holds one digest per generated file.
	Checksums ChecksumMap `json:"checksums"`
}
