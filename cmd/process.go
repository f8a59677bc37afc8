// =============================================================================
// EFD Contribuicoes Toolkit - Process Command
// =============================================================================
//
// The 'process' command runs the batch pipeline over the input directory.
//
// COMMAND USAGE:
//   efd process [flags]
//
// FLAGS:
//   --dry-run        : Run every step without writing or archiving
//   --file           : Process only this file instead of scanning InputDir
//   --establishment  : Export only the records of one tax ID
//   --workers        : Number of files processed at the same time
//   --no-report      : Skip the XLSX summary report
//
// PROCESSING PIPELINE (per file):
//   1. Parse the ledger
//   2. Project it onto the selected establishment
//   3. Check it, writing an issue log when something is found
//   4. Export it with recomputed counters
//   5. Write the XLSX summary report
//   6. Archive the input
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/efd-contribuicoes/internal/converter"
	"github.com/ginjaninja78/efd-contribuicoes/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	dryRun     bool
	filePath   string
	workers    int
	skipReport bool
)

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Export every ledger of the input directory",
	Long: `The process command scans the input directory for ledger files and runs
each one through parse, check, export and report.

Files are processed one at a time unless --workers is raised. A failure in one
file does not stop the others, unless stop_on_error is set in the
configuration.

On success:
  - The exported ledger and its XLSX report are placed in the output directory
  - The input is moved to the input archive

On failure:
  - The input stays in the input directory
  - The failure is listed in the processing summary in the log directory`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run every step without writing or archiving")
	processCmd.Flags().StringVar(&filePath, "file", "", "Process only this file")
	processCmd.Flags().IntVar(&workers, "workers", 1, "Number of files processed at the same time")
	processCmd.Flags().BoolVar(&skipReport, "no-report", false, "Skip the XLSX summary report")
	addEstablishmentFlag(processCmd)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runProcess(cmd *cobra.Command) error {
	startTime := time.Now()

	fmt.Println("=== EFD Contribuicoes Toolkit ===")

	files := utils.NewFileManager(appConfig.InputDir, appConfig.OutputDir, appConfig.InputArchiveDir, appConfig.LogDir)
	files.ArchiveOnSuccess = !dryRun
	if !dryRun {
		if err := files.EnsureDirectories(); err != nil {
			return err
		}
	}

	// =========================================================================
	// STEP 1: DISCOVER INPUT FILES
	// =========================================================================

	var inputFiles []string
	if filePath != "" {
		if !utils.FileExists(filePath) {
			return fmt.Errorf("file not found: %s", filePath)
		}
		inputFiles = []string{filePath}
	} else {
		found, err := files.DiscoverInputFiles(appConfig.InputPattern)
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
		inputFiles = found
	}

	if len(inputFiles) == 0 {
		fmt.Println("No ledger files found in the input directory.")
		return nil
	}
	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 2: PROCESS FILES
	// =========================================================================

	wopts, err := writerOptions()
	if err != nil {
		return err
	}
	opts := converter.Options{
		Registry:      registry,
		Transformer:   wopts.Transformer,
		Files:         files,
		Establishment: establishment,
		SkipReport:    skipReport,
		DryRun:        dryRun,
		Logger:        log,
	}

	var results []converter.Result
	if appConfig.StopOnError {
		for _, path := range inputFiles {
			res, err := converter.RunAll(cmd.Context(), []string{path}, appConfig, opts, 1)
			if err != nil {
				return err
			}
			results = append(results, res...)
			if !res[0].Success {
				break
			}
		}
	} else {
		results, err = converter.RunAll(cmd.Context(), inputFiles, appConfig, opts, workers)
		if err != nil {
			return err
		}
	}

	for _, result := range results {
		if result.Success {
			fmt.Printf("  ✓ %s -> %s\n", filepath.Base(result.FilePath), result.OutputFile)
		} else {
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	// =========================================================================
	// STEP 3: SUMMARY
	// =========================================================================

	summary := converter.Summarize(results, startTime, time.Now())

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", summary.TotalFiles)
	fmt.Printf("Successful:      %d\n", summary.SuccessfulFiles)
	fmt.Printf("Failed:          %d\n", summary.FailedFiles)
	if skipped := len(inputFiles) - len(results); skipped > 0 {
		fmt.Printf("Not started:     %d\n", skipped)
	}
	fmt.Printf("Time elapsed:    %s\n", summary.EndTime.Sub(summary.StartTime).Round(time.Millisecond))

	if !dryRun {
		logPath, err := utils.WriteSummaryLog(summary, appConfig.LogDir)
		if err != nil {
			log.WithError(err).Warn("Could not write the processing summary")
		} else {
			fmt.Printf("Summary log:     %s\n", logPath)
		}
	}

	if summary.FailedFiles > 0 {
		return fmt.Errorf("%d file(s) failed", summary.FailedFiles)
	}
	return nil
}
