// =============================================================================
// EFD Contribuicoes Toolkit - Converter Module
// =============================================================================
//
// This module runs the processing pipeline for a single ledger file, from
// the raw Windows-1252 text to the exported ledger and its XLSX report.
//
// PROCESSING PIPELINE:
//   1. Parse the ledger (decode, tokenize, build hierarchy, summaries)
//   2. Project it onto one establishment, if requested
//   3. Check it and write an issue log when something is found
//   4. Export it with recomputed counters and field corrections
//   5. Write the XLSX summary report
//   6. Archive the input file
//
// CONCURRENCY:
//   A Converter owns nothing shared. RunAll processes several files at once
//   with a bounded number of workers; registries and transformers are
//   read-only and shared between them.
//
// =============================================================================

package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/ginjaninja78/efd-contribuicoes/internal/config"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdparser"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdwriter"
	"github.com/ginjaninja78/efd-contribuicoes/internal/logger"
	"github.com/ginjaninja78/efd-contribuicoes/internal/projector"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/report"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"github.com/ginjaninja78/efd-contribuicoes/internal/transform"
	"github.com/ginjaninja78/efd-contribuicoes/internal/validation"
	"github.com/ginjaninja78/efd-contribuicoes/pkg/utils"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the input ledger.
	FilePath string

	// OutputFile is the exported ledger. Empty if processing failed.
	OutputFile string

	// ReportFile is the XLSX summary report. Empty when reports are off.
	ReportFile string

	// IssueLog is the check log, written only when issues were found.
	IssueLog string

	// ArchivePath is where the input was moved. Empty if it was not.
	ArchivePath string

	// Success indicates whether the ledger was exported.
	Success bool

	// Error is set when Success is false.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// Lines is the number of input lines.
	Lines int

	// Records is the number of records parsed.
	Records int

	// Exported is the number of records after projection.
	Exported int

	// Unknown counts lines whose record type has no layout.
	Unknown int

	// Orphans counts child records with no open parent.
	Orphans int

	// CheckErrors and CheckWarnings count the issues of the check step.
	CheckErrors   int
	CheckWarnings int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options carry the shared collaborators of a run.
type Options struct {
	// Registry supplies record layouts. Default: schema.Default()
	Registry *schema.Registry

	// Transformer applies field corrections. Default: built from the
	// configuration's field corrections.
	Transformer *transform.Transformer

	// Files handles archival. Default: built from the configuration.
	Files *utils.FileManager

	// Establishment projects every ledger onto one tax ID before export.
	// Empty or "all" exports the whole ledger.
	Establishment string

	// SkipReport disables the XLSX report.
	SkipReport bool

	// DryRun runs every step but writes nothing and archives nothing.
	DryRun bool

	// Logger receives progress. Default: discard.
	Logger *logrus.Entry
}

// Converter processes one ledger file.
type Converter struct {
	inputPath string
	config    *config.MainConfig
	opts      Options
	log       *logrus.Entry
}

// New creates a Converter for one file.
//
// PARAMETERS:
//   - inputPath: The ledger to process.
//   - mainConfig: The application configuration.
//   - opts: Shared collaborators; zero fields take their defaults.
//
// RETURNS:
//   - The Converter.
//   - An error if the configured field corrections do not compile.
func New(inputPath string, mainConfig *config.MainConfig, opts Options) (*Converter, error) {
	opts, err := withDefaults(mainConfig, opts)
	if err != nil {
		return nil, err
	}
	return &Converter{
		inputPath: inputPath,
		config:    mainConfig,
		opts:      opts,
		log:       opts.Logger.WithField("file", filepath.Base(inputPath)),
	}, nil
}

func withDefaults(mainConfig *config.MainConfig, opts Options) (Options, error) {
	if opts.Registry == nil {
		opts.Registry = schema.Default()
	}
	if opts.Transformer == nil {
		t, err := transform.New(mainConfig.FieldCorrections)
		if err != nil {
			return opts, fmt.Errorf("invalid field corrections: %w", err)
		}
		opts.Transformer = t
	}
	if opts.Files == nil {
		opts.Files = utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir, mainConfig.InputArchiveDir, mainConfig.LogDir)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	return opts, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline for the file. Failures are reported in the
// Result; Run itself never panics on bad input.
func (c *Converter) Run(ctx context.Context) (result Result) {
	startTime := time.Now()
	result = Result{FilePath: c.inputPath}
	defer func() { result.Stats.ProcessingTime = time.Since(startTime) }()

	c.log.Info("Processing file")

	// =========================================================================
	// STEP 1: PARSE
	// =========================================================================

	parsed, err := efdparser.ParseFile(ctx, c.inputPath, efdparser.Options{
		Registry:   c.opts.Registry,
		YieldEvery: c.config.YieldEvery,
		Logger:     c.log,
	})
	if err != nil {
		result.Error = fmt.Errorf("failed to parse ledger: %w", err)
		return c.fail(result)
	}

	doc := parsed.Document
	result.Stats.Lines = parsed.Stats.Lines
	result.Stats.Records = parsed.Stats.Records
	result.Stats.Unknown = parsed.Stats.Unknown
	result.Stats.Orphans = parsed.Stats.Orphans

	log := c.log.WithField("session", doc.SessionID.String())
	log.WithField("records", parsed.Stats.Records).Debug("Parsed ledger")

	// =========================================================================
	// STEP 2: PROJECT
	// =========================================================================

	if c.opts.Establishment != "" && c.opts.Establishment != projector.AllEstablishments {
		doc = projector.ProjectWith(doc, c.opts.Establishment, c.opts.Registry)
		log.WithField("establishment", c.opts.Establishment).Debug("Projected ledger")
	}
	result.Stats.Exported = doc.Records.Count()

	// =========================================================================
	// STEP 3: CHECK
	// =========================================================================

	check := validation.NewValidator(c.opts.Registry).Check(doc.Records)
	result.Stats.CheckErrors = check.ErrorCount
	result.Stats.CheckWarnings = check.WarningCount

	for _, issue := range check.Issues {
		log.Debug(issue.Error())
	}
	if len(check.Issues) > 0 {
		log.WithFields(logrus.Fields{
			"errors":   check.ErrorCount,
			"warnings": check.WarningCount,
		}).Warn("Ledger check found issues")

		if !c.opts.DryRun {
			logPath := filepath.Join(c.config.LogDir, utils.BaseName(c.inputPath)+"_check.log")
			if err := validation.WriteIssueLog(check.Issues, c.inputPath, logPath); err != nil {
				log.WithError(err).Warn("Failed to write issue log")
			} else {
				result.IssueLog = logPath
			}
		}
	}

	// =========================================================================
	// STEP 4: EXPORT
	// =========================================================================

	outputName := efdwriter.FileName(doc.Records, c.config.OutputPrefix)
	outputPath := filepath.Join(c.config.OutputDir, outputName)

	if !c.opts.DryRun {
		if err := c.writeLedger(doc, outputPath); err != nil {
			result.Error = err
			return c.fail(result)
		}
	}
	result.OutputFile = outputPath
	log.WithField("output", outputPath).Info("Exported ledger")

	// =========================================================================
	// STEP 5: REPORT
	// =========================================================================

	if !c.opts.SkipReport {
		reportName := utils.GenerateOutputFileName(c.config.ReportNameFormat, map[string]string{
			"name": utils.BaseName(outputName),
		}, ".xlsx")
		reportPath := filepath.Join(c.config.OutputDir, reportName)

		if !c.opts.DryRun {
			if err := report.Write(doc, reportPath); err != nil {
				result.Error = fmt.Errorf("failed to write report: %w", err)
				return c.fail(result)
			}
		}
		result.ReportFile = reportPath
	}

	// =========================================================================
	// STEP 6: ARCHIVE
	// =========================================================================

	if !c.opts.DryRun {
		archived, err := c.opts.Files.ArchiveInputFile(c.inputPath)
		if err != nil {
			// The export is done; a file left in place is picked up again.
			log.WithError(err).Warn("Failed to archive input file")
		} else if archived != c.inputPath {
			result.ArchivePath = archived
		}
	}

	result.Success = true
	return result
}

func (c *Converter) writeLedger(doc *record.Document, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	opts := efdwriter.Options{
		Registry:    c.opts.Registry,
		Transformer: c.opts.Transformer,
		Prefix:      c.config.OutputPrefix,
	}
	if err := efdwriter.WriteTo(file, doc.Records, opts); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

func (c *Converter) fail(result Result) Result {
	logger.LogError(c.log, "converter", "Run", result.Error)
	return result
}

// =============================================================================
// BATCH PROCESSING
// =============================================================================

// RunAll processes files concurrently and returns one result per file, in
// input order.
//
// PARAMETERS:
//   - ctx: Cancels files not yet started and interrupts parsing.
//   - paths: The ledgers to process.
//   - mainConfig: The application configuration.
//   - opts: Shared by every file.
//   - workers: The number of concurrent files; 0 means GOMAXPROCS.
//
// RETURNS:
//   - The results.
//   - An error if the options are invalid. File failures are in the
//     results, not here.
func RunAll(ctx context.Context, paths []string, mainConfig *config.MainConfig, opts Options, workers int) ([]Result, error) {
	opts, err := withDefaults(mainConfig, opts)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = Result{FilePath: paths[i], Error: err}
					continue
				}
				conv, err := New(paths[i], mainConfig, opts)
				if err != nil {
					results[i] = Result{FilePath: paths[i], Error: err}
					continue
				}
				results[i] = conv.Run(ctx)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

// Summarize builds the processing summary of a run.
func Summarize(results []Result, start, end time.Time) utils.ProcessingSummary {
	summary := utils.ProcessingSummary{
		StartTime:  start,
		EndTime:    end,
		TotalFiles: len(results),
	}
	for _, r := range results {
		if !r.Success {
			summary.FailedFiles++
			msg := "unknown error"
			if r.Error != nil {
				msg = r.Error.Error()
			}
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    r.FilePath,
				ErrorMessage: msg,
			})
			continue
		}
		summary.SuccessfulFiles++
		summary.TotalRecords += r.Stats.Records
		summary.TotalErrors += r.Stats.CheckErrors
		summary.TotalWarnings += r.Stats.CheckWarnings
		summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
			InputFile:   r.FilePath,
			OutputFile:  r.OutputFile,
			ReportFile:  r.ReportFile,
			ArchivePath: r.ArchivePath,
			Records:     r.Stats.Records,
			Errors:      r.Stats.CheckErrors,
			Warnings:    r.Stats.CheckWarnings,
			ProcessTime: r.Stats.ProcessingTime,
		})
	}
	return summary
}
