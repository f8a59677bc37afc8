// =============================================================================
// EFD Contribuicoes Toolkit - File Manager Utility
// =============================================================================
//
// This module provides the file handling of the process command:
//   - Ledger discovery in the input directory
//   - Archival of processed ledgers
//   - Output naming with placeholders
//   - The processing summary log
//
// ARCHIVAL STRATEGY:
//   - Input ledgers are moved to input_archive after successful processing
//   - Failed ledgers remain in the input directory for the next run
//   - Exported ledgers and reports stay in the output directory
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultInputPattern selects ledger files.
const DefaultInputPattern = "*.txt"

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles the files of a processing run.
type FileManager struct {
	// InputDir is where ledgers are picked up.
	InputDir string

	// OutputDir receives exported ledgers and reports.
	OutputDir string

	// InputArchiveDir receives processed ledgers.
	InputArchiveDir string

	// LogDir receives issue logs and processing summaries.
	LogDir string

	// UseTimestampSubdirs files archived ledgers under YYYY/MM/DD.
	UseTimestampSubdirs bool

	// ArchiveOnSuccess moves processed ledgers out of the input directory.
	ArchiveOnSuccess bool
}

// NewFileManager creates a FileManager that archives on success.
func NewFileManager(inputDir, outputDir, inputArchiveDir, logDir string) *FileManager {
	return &FileManager{
		InputDir:         inputDir,
		OutputDir:        outputDir,
		InputArchiveDir:  inputArchiveDir,
		LogDir:           logDir,
		ArchiveOnSuccess: true,
	}
}

// EnsureDirectories creates all directories of the run.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.InputArchiveDir, fm.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles lists the ledgers of the input directory.
//
// PARAMETERS:
//   - pattern: A glob relative to InputDir. Default: "*.txt". The match is
//     repeated with an upper-case pattern so "*.TXT" files are found too.
//
// RETURNS:
//   - The file paths, sorted, without directories or duplicates.
//   - An error if the pattern is malformed.
func (fm *FileManager) DiscoverInputFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultInputPattern
	}

	seen := make(map[string]bool)
	var result []string
	for _, p := range []string{pattern, strings.ToUpper(pattern)} {
		files, err := filepath.Glob(filepath.Join(fm.InputDir, p))
		if err != nil {
			return nil, fmt.Errorf("failed to scan input directory: %w", err)
		}
		for _, file := range files {
			if seen[file] {
				continue
			}
			info, err := os.Stat(file)
			if err != nil || info.IsDir() {
				continue
			}
			seen[file] = true
			result = append(result, file)
		}
	}

	sort.Strings(result)
	return result, nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveInputFile moves a processed ledger to the archive directory.
//
// RETURNS:
//   - The archived path, or filePath itself when archiving is off.
//   - An error if the file could be neither renamed nor copied.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	if !fm.ArchiveOnSuccess {
		return filePath, nil
	}

	archivePath := fm.getArchivePath(fm.InputArchiveDir, filePath)
	if err := os.MkdirAll(filepath.Dir(archivePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.Rename(filePath, archivePath); err != nil {
		// Cross-device moves fall back to copy and delete.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

func (fm *FileManager) getArchivePath(archiveDir, filePath string) string {
	fileName := filepath.Base(filePath)
	if fm.UseTimestampSubdirs {
		now := time.Now()
		return filepath.Join(archiveDir, now.Format("2006"), now.Format("01"), now.Format("02"), fileName)
	}
	return filepath.Join(archiveDir, fileName)
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName expands a file name format.
//
// PARAMETERS:
//   - format: The name format. Placeholders:
//     {uuid}      - A random UUID
//     {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//     {date}      - Current date (YYYYMMDD)
//     {time}      - Current time (HHMMSS)
//     {<key>}     - Any key of params
//   - params: Extra placeholder values, e.g. "name".
//   - ext: The extension the name must end with, e.g. ".xlsx".
//
// EXAMPLE:
//
//	format: "{name}_RESUMO.xlsx"
//	params: {"name": "EFD_CONTRIBUICOES_11111111000191_01012024_31012024"}
//	output: "EFD_CONTRIBUICOES_11111111000191_01012024_31012024_RESUMO.xlsx"
func GenerateOutputFileName(format string, params map[string]string, ext string) string {
	now := time.Now()

	pairs := []string{
		"{uuid}", uuid.New().String(),
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{time}", now.Format("150405"),
	}
	for key, value := range params {
		pairs = append(pairs, "{"+key+"}", value)
	}

	result := strings.NewReplacer(pairs...).Replace(format)
	if ext != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}
	return result
}

// BaseName returns a file name without directory and extension.
func BaseName(filePath string) string {
	name := filepath.Base(filePath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary describes a processing run.
type ProcessingSummary struct {
	StartTime       time.Time
	EndTime         time.Time
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int
	TotalRecords    int
	TotalErrors     int
	TotalWarnings   int
	ProcessedFiles  []ProcessedFileInfo
	FailedFilesList []FailedFileInfo
}

// ProcessedFileInfo describes a ledger that went through the pipeline.
type ProcessedFileInfo struct {
	InputFile   string
	OutputFile  string
	ReportFile  string
	ArchivePath string
	Records     int
	Errors      int
	Warnings    int
	ProcessTime time.Duration
}

// FailedFileInfo describes a ledger that could not be processed.
type FailedFileInfo struct {
	InputFile    string
	ErrorMessage string
}

// WriteSummaryLog writes a processing summary to a new file in logDir.
//
// RETURNS:
//   - The path of the summary file.
//   - An error if writing fails.
func WriteSummaryLog(summary ProcessingSummary, logDir string) (string, error) {
	summaryPath := filepath.Join(logDir, fmt.Sprintf("processing_summary_%s.txt", time.Now().Format("20060102_150405")))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	if err := writeSummary(file, summary); err != nil {
		return "", err
	}
	return summaryPath, nil
}

func writeSummary(w io.Writer, summary ProcessingSummary) error {
	writer := bufio.NewWriter(w)
	rule := strings.Repeat("=", 80) + "\n"
	thin := strings.Repeat("-", 80) + "\n"

	fmt.Fprintf(writer, "EFD Contribuicoes Toolkit - Processing Summary\n%s\n", rule)
	fmt.Fprintf(writer, "Run Information:\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n\n",
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Sub(summary.StartTime).String())
	fmt.Fprintf(writer, "Statistics:\n"+
		"  Total Files:    %d\n"+
		"  Successful:     %d\n"+
		"  Failed:         %d\n"+
		"  Total Records:  %d\n"+
		"  Check Errors:   %d\n"+
		"  Check Warnings: %d\n\n",
		summary.TotalFiles,
		summary.SuccessfulFiles,
		summary.FailedFiles,
		summary.TotalRecords,
		summary.TotalErrors,
		summary.TotalWarnings)

	if len(summary.ProcessedFiles) > 0 {
		writer.WriteString("Successful Files:\n" + thin)
		for _, pf := range summary.ProcessedFiles {
			fmt.Fprintf(writer, "  Input:        %s\n", pf.InputFile)
			fmt.Fprintf(writer, "  Output:       %s\n", pf.OutputFile)
			if pf.ReportFile != "" {
				fmt.Fprintf(writer, "  Report:       %s\n", pf.ReportFile)
			}
			if pf.ArchivePath != "" {
				fmt.Fprintf(writer, "  Archived:     %s\n", pf.ArchivePath)
			}
			fmt.Fprintf(writer, "  Records:      %d\n", pf.Records)
			fmt.Fprintf(writer, "  Issues:       %d errors, %d warnings\n", pf.Errors, pf.Warnings)
			fmt.Fprintf(writer, "  Process Time: %s\n\n", pf.ProcessTime.String())
		}
	}

	if len(summary.FailedFilesList) > 0 {
		writer.WriteString("Failed Files:\n" + thin)
		for _, ff := range summary.FailedFilesList {
			fmt.Fprintf(writer, "  File:  %s\n", ff.InputFile)
			fmt.Fprintf(writer, "  Error: %s\n\n", ff.ErrorMessage)
		}
	}

	writer.WriteString(rule + "End of Summary\n")

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush summary file: %w", err)
	}
	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
