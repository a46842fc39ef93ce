package packager

import (
	"fmt"
	"os"
	"path/filepath"
)

const chunkSize = 1024

// GenerateFiles writes count dummy payload files of sizeKB KiB each under
// <outputDir>/dummy_data and returns their paths in ascending index order.
// The directory is created with parents if absent.
//
// Chunk j of file i is chunkSize bytes of (i*256 + j*17) mod 256, so file
// content is a pure function of the configuration and regeneration yields
// byte-identical files across runs.
func GenerateFiles(outputDir string, count, sizeKB int) ([]string, error) {
	dummyDir := filepath.Join(outputDir, DummyDirName)
	if err := os.MkdirAll(dummyDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create dummy data directory: %w", err)
	}

	files := make([]string, 0, count)
	data := make([]byte, sizeKB*chunkSize)
	for i := 0; i < count; i++ {
		for j := 0; j < sizeKB; j++ {
			value := byte((i*256 + j*17) % 256)
			chunk := data[j*chunkSize : (j+1)*chunkSize]
			for k := range chunk {
				chunk[k] = value
			}
		}

		path := filepath.Join(dummyDir, fmt.Sprintf(dummyFilePattern, i))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write dummy file %s: %w", path, err)
		}
		files = append(files, path)
	}

	return files, nil
}
