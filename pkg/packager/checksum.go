package packager

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/mrhapile/distpack/pkg/types"
)

// checksumBlockSize is the read block size used while hashing. Streaming
// in fixed blocks bounds peak memory per file regardless of file size.
const checksumBlockSize = 8192

// ComputeChecksums streams every file through SHA-256 and returns a map
// with one lowercase-hex digest per input path.
func ComputeChecksums(files []string) (types.ChecksumMap, error) {
	checksums := make(types.ChecksumMap, len(files))
	block := make([]byte, checksumBlockSize)
	for _, path := range files {
		digest, err := hashFile(path, block)
		if err != nil {
			return nil, err
		}
		checksums[path] = digest
	}
	return checksums, nil
}

func hashFile(path string, block []byte) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	hasher := sha256.New()
	for {
		n, err := f.Read(block)
		if n > 0 {
			hasher.Write(block[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to hash %s: %w", path, err)
		}
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
