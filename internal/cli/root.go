// Package cli contains the distpack command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mrhapile/distpack/pkg/packager"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// verbose enables debug-level diagnostics
	verbose bool
	// sizeName selects the size preset
	sizeName string
	// binaryPath is the binary to include in the package
	binaryPath string
	// outputDir is where the package is written
	outputDir string

	rootCmd = &cobra.Command{
		Use:   "distpack",
		Short: "Create a synthetic distribution package for build pipeline demos",
		Long: `distpack builds a distribution package with controllable resource
usage for exercising downstream CI/build pipeline stages: it generates
deterministic dummy payload files, computes per-file SHA-256 checksums,
and bundles everything with metadata into a gzip-compressed tarball.

Examples:
  distpack --binary target/debug/build_example --output dist
  distpack --size large --binary ./app --output /tmp/pkg`,
		SilenceUsage: true,
		RunE:         runPackage,
	}
)

func init() {
	rootCmd.Flags().StringVar(&sizeName, "size", packager.SizeSmall, "problem size: small, medium or large")
	rootCmd.Flags().StringVar(&binaryPath, "binary", "", "path to the compiled binary to include")
	rootCmd.Flags().StringVar(&outputDir, "output", "", "output directory for the package")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	cobra.CheckErr(rootCmd.MarkFlagRequired("binary"))
	cobra.CheckErr(rootCmd.MarkFlagRequired("output"))
}

// Execute runs the root command. It exits 0 on success and 1 on any
// failure; a user-initiated interrupt is reported distinctly.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted by user")
		}
		os.Exit(1)
	}
}

func runPackage(cmd *cobra.Command, args []string) error {
	// Reject unknown tiers before the pipeline starts.
	sizeCfg, err := packager.ResolveSize(sizeName)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "distpack",
			Level:  log.DebugLevel,
		})
	}

	fmt.Println(titleStyle.Render("Packaging for Build Pipeline"))
	fmt.Printf("%s Size: %s\n", infoIcon, sizeName)
	fmt.Printf("%s Description: %s\n", infoIcon, sizeCfg.Description)
	fmt.Printf("%s Dummy files: %d\n", infoIcon, sizeCfg.FileCount)
	fmt.Printf("%s File size: %d KB\n", infoIcon, sizeCfg.FileSizeKB)
	fmt.Println()

	if _, statErr := os.Stat(binaryPath); statErr != nil {
		fmt.Printf("%s Binary not found at %s\n", warningIcon, binaryPath)
		fmt.Printf("%s Continuing without binary...\n", warningIcon)
		fmt.Println()
	}

	result, err := packager.Run(cmd.Context(), packager.Options{
		SizeName:   sizeName,
		BinaryPath: binaryPath,
		OutputDir:  outputDir,
	},
		packager.WithLogger(logger),
		packager.WithProgress(newStepPrinter(cmd.OutOrStdout())),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Packaging Complete"))
	fmt.Printf("%s Files: %d\n", infoIcon, result.FileCount)
	fmt.Printf("%s Total size: %s\n", infoIcon, formatFileSize(result.PayloadBytes))
	fmt.Printf("%s Tarball: %s (%s)\n", infoIcon, filepath.Base(result.ArchivePath), formatFileSize(result.ArchiveBytes))
	fmt.Printf("%s Output: %s\n", infoIcon, pathStyle.Render(outputDir))

	return nil
}

// formatFileSize formats a file size in bytes to a human-readable string
func formatFileSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(GB))
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(MB))
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
