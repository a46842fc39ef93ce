package packager

import (
	"fmt"
	"os"
)

const (
	// sampleLimit caps how many files the transform stage loads at once.
	sampleLimit = 10

	// transformWindow is the number of leading bytes the transform emits.
	transformWindow = 1024
)

// Complement returns the bitwise complement (XOR 0xFF) of the first
// min(transformWindow, len(data)) bytes of data. Bytes beyond the window
// are dropped, not an error. Applying Complement twice to the truncated
// slice returns the original bytes.
func Complement(data []byte) []byte {
	window := min(transformWindow, len(data))
	out := make([]byte, window)
	for i := 0; i < window; i++ {
		out[i] = data[i] ^ 0xFF
	}
	return out
}

// ProcessSample reads up to sampleLimit files fully into memory and applies
// Complement to each buffer. The stage is diagnostic only: nothing it
// produces is persisted or merged into the package. It returns the total
// number of bytes produced; the run counts as processed when that total is
// positive.
func ProcessSample(files []string) (int64, error) {
	sample := files[:min(sampleLimit, len(files))]

	contents := make([][]byte, 0, len(sample))
	for _, path := range sample {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
		contents = append(contents, data)
	}

	var total int64
	for _, data := range contents {
		total += int64(len(Complement(data)))
	}
	return total, nil
}
