package packager

import (
	"archive/tar"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/mrhapile/distpack/pkg/types"
)

// archiveWriter wraps the tar-in-gzip stream for the package archive.
// Entries are streamed from disk one at a time, so peak memory stays at
// one copy buffer regardless of file sizes.
type archiveWriter struct {
	f  *os.File
	gw *gzip.Writer
	tw *tar.Writer
}

func newArchiveWriter(archivePath string) (*archiveWriter, error) {
	f, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive file: %w", err)
	}
	gw := gzip.NewWriter(f)
	return &archiveWriter{f: f, gw: gw, tw: tar.NewWriter(gw)}, nil
}

// addFile streams one on-disk file into the archive under the given entry
// name.
func (w *archiveWriter) addFile(name, srcPath string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", srcPath, err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", srcPath, err)
	}
	header.Name = name

	if err := w.tw.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(w.tw, f); err != nil {
		return fmt.Errorf("failed to write content for %s: %w", name, err)
	}
	return nil
}

// Close flushes and closes the tar, gzip and file layers in order. The
// first failure wins; the remaining layers are still closed.
func (w *archiveWriter) Close() error {
	err := w.tw.Close()
	if gzErr := w.gw.Close(); err == nil {
		err = gzErr
	}
	if fErr := w.f.Close(); err == nil {
		err = fErr
	}
	return err
}

// CreateArchive writes <outputDir>/package.tar.gz containing the binary
// (only when it exists) under bin/, every dummy file under data/, and the
// metadata record as metadata.json at the archive root. The intermediate
// metadata.json is written next to the archive and left on disk.
func CreateArchive(outputDir string, files []string, binaryPath string, meta types.PackageMetadata) (archivePath string, err error) {
	archivePath = filepath.Join(outputDir, ArchiveName)
	w, err := newArchiveWriter(archivePath)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := w.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to finalize archive: %w", closeErr)
		}
	}()

	// A missing binary is tolerated: the bin/ entry is simply omitted.
	if _, statErr := os.Stat(binaryPath); statErr == nil {
		if err := w.addFile(path.Join(BinPrefix, filepath.Base(binaryPath)), binaryPath); err != nil {
			return "", err
		}
	}

	for _, file := range files {
		if err := w.addFile(path.Join(DataPrefix, filepath.Base(file)), file); err != nil {
			return "", err
		}
	}

	metadataPath := filepath.Join(outputDir, MetadataFile)
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(metadataPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", metadataPath, err)
	}
	if err := w.addFile(MetadataFile, metadataPath); err != nil {
		return "", err
	}

	return archivePath, nil
}
