package packager_test

import (
	"archive/tar"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	yaml "gopkg.in/yaml.v2"

	"github.com/mrhapile/distpack/pkg/packager"
	"github.com/mrhapile/distpack/pkg/types"
)

// readArchiveEntries returns the entry names of a tar.gz archive along with
// the content of its metadata.json entry.
func readArchiveEntries(t *testing.T, archivePath string) ([]string, []byte) {
	t.Helper()

	f, err := os.Open(archivePath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer gr.Close()

	var names []string
	var metadata []byte
	tr := tar.NewReader(gr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read archive: %v", err)
		}
		names = append(names, header.Name)
		if header.Name == packager.MetadataFile {
			metadata, err = io.ReadAll(tr)
			if err != nil {
				t.Fatalf("read metadata entry: %v", err)
			}
		}
	}
	return names, metadata
}

func TestRunMissingBinary(t *testing.T) {
	outDir := t.TempDir()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	result, err := packager.Run(context.Background(), packager.Options{
		SizeName:   packager.SizeSmall,
		BinaryPath: filepath.Join(outDir, "nonexistent"),
		OutputDir:  outDir,
	}, packager.WithClock(func() time.Time { return fixedTime }))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Generated payload: 10 files of 100 KiB each.
	if result.FileCount != 10 {
		t.Errorf("FileCount = %d, want 10", result.FileCount)
	}
	entries, err := os.ReadDir(filepath.Join(outDir, packager.DummyDirName))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Fatalf("dummy_data holds %d files, want 10", len(entries))
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != 102400 {
			t.Errorf("%s size = %d, want 102400", entry.Name(), info.Size())
		}
	}

	// Checksum invariant.
	if len(result.Metadata.Checksums) != result.FileCount {
		t.Errorf("checksum count = %d, want %d", len(result.Metadata.Checksums), result.FileCount)
	}
	if result.Metadata.Created != fixedTime.Format(time.RFC3339) {
		t.Errorf("Created = %q, want %q", result.Metadata.Created, fixedTime.Format(time.RFC3339))
	}

	// The sample transform touched 10 files, 1 KiB each.
	if result.ProcessedBytes != 10*1024 {
		t.Errorf("ProcessedBytes = %d, want %d", result.ProcessedBytes, 10*1024)
	}

	// Archive read-back: 10 data/ entries, metadata.json, and no bin/ entry
	// since the binary does not exist.
	names, metadataJSON := readArchiveEntries(t, result.ArchivePath)
	var dataEntries int
	for _, name := range names {
		switch {
		case strings.HasPrefix(name, packager.DataPrefix+"/"):
			dataEntries++
		case strings.HasPrefix(name, packager.BinPrefix+"/"):
			t.Errorf("unexpected bin entry %q for missing binary", name)
		}
	}
	if dataEntries != 10 {
		t.Errorf("archive holds %d data entries, want 10", dataEntries)
	}

	var meta types.PackageMetadata
	if err := json.Unmarshal(metadataJSON, &meta); err != nil {
		t.Fatalf("parse metadata entry: %v", err)
	}
	if meta.FileCount != dataEntries {
		t.Errorf("metadata file_count = %d, archive holds %d data entries", meta.FileCount, dataEntries)
	}
	if meta.Package != packager.PackageName || meta.Version != packager.PackageVersion {
		t.Errorf("metadata identity = %s/%s, want %s/%s",
			meta.Package, meta.Version, packager.PackageName, packager.PackageVersion)
	}

	// The metadata sidecar is left on disk next to the archive.
	if _, err := os.Stat(filepath.Join(outDir, packager.MetadataFile)); err != nil {
		t.Errorf("metadata sidecar missing: %v", err)
	}
}

func TestRunWithBinary(t *testing.T) {
	outDir := t.TempDir()

	binary := filepath.Join(t.TempDir(), "build_example")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}

	result, err := packager.Run(context.Background(), packager.Options{
		SizeName:   packager.SizeSmall,
		BinaryPath: binary,
		OutputDir:  outDir,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	names, _ := readArchiveEntries(t, result.ArchivePath)
	want := packager.BinPrefix + "/build_example"
	found := false
	for _, name := range names {
		if name == want {
			found = true
		}
	}
	if !found {
		t.Errorf("archive entries %v do not include %q", names, want)
	}
}

func TestRunReportSidecar(t *testing.T) {
	outDir := t.TempDir()

	result, err := packager.Run(context.Background(), packager.Options{
		SizeName:   packager.SizeSmall,
		BinaryPath: filepath.Join(outDir, "nonexistent"),
		OutputDir:  outDir,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(result.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var report types.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		t.Fatalf("parse report: %v", err)
	}

	if report.FileCount != result.Metadata.FileCount {
		t.Errorf("report file_count = %d, metadata file_count = %d", report.FileCount, result.Metadata.FileCount)
	}
	if report.PayloadBytes != 10*100*1024 {
		t.Errorf("report payload_bytes = %d, want %d", report.PayloadBytes, 10*100*1024)
	}
	if report.Archive != result.ArchivePath {
		t.Errorf("report archive = %q, want %q", report.Archive, result.ArchivePath)
	}
}

func TestRunUnknownSize(t *testing.T) {
	_, err := packager.Run(context.Background(), packager.Options{
		SizeName:   "huge",
		BinaryPath: "bin",
		OutputDir:  t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for unknown size")
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := packager.Run(ctx, packager.Options{
		SizeName:   packager.SizeSmall,
		BinaryPath: "bin",
		OutputDir:  t.TempDir(),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestBuildMetadata(t *testing.T) {
	created := time.Date(2025, 3, 15, 8, 30, 0, 0, time.UTC)
	checksums := types.ChecksumMap{
		"a.bin": strings.Repeat("0", 64),
		"b.bin": strings.Repeat("1", 64),
	}

	meta := packager.BuildMetadata("/opt/app", checksums, packager.SizeMedium, created)

	if meta.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", meta.FileCount)
	}
	if meta.Binary != "/opt/app" {
		t.Errorf("Binary = %q, want /opt/app", meta.Binary)
	}
	if meta.SizeConfig != packager.SizeMedium {
		t.Errorf("SizeConfig = %q, want %q", meta.SizeConfig, packager.SizeMedium)
	}
	if _, err := time.Parse(time.RFC3339, meta.Created); err != nil {
		t.Errorf("Created %q is not RFC 3339: %v", meta.Created, err)
	}
}
