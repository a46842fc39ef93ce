// Package packager builds a synthetic distribution package for build
// pipeline demos: deterministic dummy payload files, per-file SHA-256
// checksums, a bounded in-memory sample transform, JSON metadata, and a
// gzip-compressed tar archive.
package packager

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mrhapile/distpack/pkg/types"
)

// Options are the per-run inputs of the packaging pipeline.
type Options struct {
	// SizeName selects the size preset (small, medium or large).
	SizeName string

	// BinaryPath is the binary to include under bin/. The file is not
	// required to exist; a missing binary is simply omitted.
	BinaryPath string

	// OutputDir is where all artifacts are written. Created with parents
	// if absent.
	OutputDir string
}

// Progress receives step lifecycle notifications during a run.
type Progress interface {
	// Step announces the start of a named pipeline step.
	Step(name string)
	// Info reports a detail line within the current step.
	Info(format string, args ...any)
	// Done reports successful completion of the current step.
	Done(format string, args ...any)
}

type nopProgress struct{}

func (nopProgress) Step(string)         {}
func (nopProgress) Info(string, ...any) {}
func (nopProgress) Done(string, ...any) {}

// Option configures a packaging run.
type Option func(*config)

type config struct {
	clock    func() time.Time
	logger   *log.Logger
	progress Progress
}

// WithClock overrides the wall-clock source used for the metadata
// timestamp. Useful for deterministic output in tests.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger routes per-step diagnostics to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithProgress routes step narration to the given Progress sink.
func WithProgress(progress Progress) Option {
	return func(c *config) {
		c.progress = progress
	}
}

// Run executes the packaging pipeline: generate dummy files, checksum
// them, run the sample transform, build metadata, and write the archive
// plus the report sidecar. Steps run strictly in order; the first error
// aborts the run and leaves any partially written files in place. The
// context is checked between steps so an interrupt cancels promptly.
func Run(ctx context.Context, opts Options, options ...Option) (*types.PackageResult, error) {
	cfg := &config{
		clock:    time.Now,
		logger:   log.New(io.Discard),
		progress: nopProgress{},
	}
	for _, opt := range options {
		opt(cfg)
	}

	sizeCfg, err := ResolveSize(opts.SizeName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.progress.Step("Creating dummy files")
	cfg.progress.Info("Creating %d dummy files (%d KB each)...", sizeCfg.FileCount, sizeCfg.FileSizeKB)
	files, err := GenerateFiles(opts.OutputDir, sizeCfg.FileCount, sizeCfg.FileSizeKB)
	if err != nil {
		return nil, err
	}
	cfg.progress.Done("Created %d files", len(files))
	cfg.logger.Debug("generated dummy files", "dir", filepath.Join(opts.OutputDir, DummyDirName), "count", len(files))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.progress.Step("Computing checksums")
	cfg.progress.Info("Computing checksums for %d files...", len(files))
	checksums, err := ComputeChecksums(files)
	if err != nil {
		return nil, err
	}
	cfg.progress.Done("Computed %d checksums", len(checksums))
	for _, path := range files {
		cfg.logger.Debug("checksum", "file", filepath.Base(path), "sha256", checksums[path])
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.progress.Step("Processing files")
	processed, err := ProcessSample(files)
	if err != nil {
		return nil, err
	}
	cfg.progress.Info("Processed %d bytes", processed)
	if processed > 0 {
		cfg.progress.Done("File processing complete")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.progress.Step("Creating metadata")
	meta := BuildMetadata(opts.BinaryPath, checksums, opts.SizeName, cfg.clock())
	cfg.progress.Done("Metadata created")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.progress.Step("Creating tarball")
	archivePath, err := CreateArchive(opts.OutputDir, files, opts.BinaryPath, meta)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	cfg.progress.Done("Tarball created: %s (%.1f MB)", filepath.Base(archivePath), float64(info.Size())/(1024*1024))

	payloadBytes := int64(sizeCfg.FileCount) * int64(sizeCfg.FileSizeKB) * chunkSize

	reportPath, err := WriteReport(opts.OutputDir, types.RunReport{
		Package:        meta.Package,
		Version:        meta.Version,
		Created:        meta.Created,
		SizeConfig:     meta.SizeConfig,
		FileCount:      meta.FileCount,
		PayloadBytes:   payloadBytes,
		ArchiveBytes:   info.Size(),
		ProcessedBytes: processed,
		Archive:        archivePath,
		Output:         opts.OutputDir,
	})
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("wrote run report", "path", reportPath)

	return &types.PackageResult{
		ArchivePath:    archivePath,
		ReportPath:     reportPath,
		FileCount:      len(files),
		PayloadBytes:   payloadBytes,
		ArchiveBytes:   info.Size(),
		ProcessedBytes: processed,
		Metadata:       meta,
	}, nil
}
