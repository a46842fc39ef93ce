package packager

import (
	"time"

	"github.com/mrhapile/distpack/pkg/types"
)

// BuildMetadata assembles the package metadata record. Pure construction:
// the binary path is recorded as given whether or not the file exists.
func BuildMetadata(binaryPath string, checksums types.ChecksumMap, sizeName string, created time.Time) types.PackageMetadata {
	return types.PackageMetadata{
		Package:    PackageName,
		Version:    PackageVersion,
		Created:    created.Format(time.RFC3339),
		SizeConfig: sizeName,
		Binary:     binaryPath,
		FileCount:  len(checksums),
		Checksums:  checksums,
	}
}
