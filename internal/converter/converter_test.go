package converter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ginjaninja78/efd-contribuicoes/internal/config"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdparser"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdtest"
	"github.com/ginjaninja78/efd-contribuicoes/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const sampleOutput = "EFD_CONTRIBUICOES_" + efdtest.HeadOffice + "_01012024_31012024.txt"

// setup returns a configuration rooted in a temporary directory, with the
// sample ledger written to the input directory under each given name.
func setup(t *testing.T, names ...string) *config.MainConfig {
	t.Helper()
	root := t.TempDir()

	cfg := config.Default()
	cfg.InputDir = filepath.Join(root, "input")
	cfg.OutputDir = filepath.Join(root, "output")
	cfg.InputArchiveDir = filepath.Join(root, "input_archive")
	cfg.LogDir = filepath.Join(root, "logs")

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir, cfg.LogDir)
	if err := fm.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(cfg.InputDir, name), []byte(efdtest.Sample().Text()), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return cfg
}

func run(t *testing.T, cfg *config.MainConfig, name string, opts Options) Result {
	t.Helper()
	conv, err := New(filepath.Join(cfg.InputDir, name), cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return conv.Run(context.Background())
}

func TestRunPipeline(t *testing.T) {
	cfg := setup(t, "efd.txt")
	result := run(t, cfg, "efd.txt", Options{})

	if !result.Success {
		t.Fatalf("Run failed: %v", result.Error)
	}
	if result.OutputFile != filepath.Join(cfg.OutputDir, sampleOutput) {
		t.Errorf("OutputFile = %s", result.OutputFile)
	}
	if result.Stats.Records != 67 || result.Stats.Exported != 67 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if result.Stats.CheckErrors != 0 || result.IssueLog != "" {
		t.Errorf("clean ledger produced issues: %+v", result)
	}
	if result.Stats.ProcessingTime <= 0 {
		t.Errorf("ProcessingTime not set")
	}

	exported, err := efdparser.ParseFile(context.Background(), result.OutputFile, efdparser.Options{})
	if err != nil {
		t.Fatalf("ParseFile(output): %v", err)
	}
	if exported.Document.Records.Count() != 67 {
		t.Errorf("exported records = %d", exported.Document.Records.Count())
	}

	wantReport := filepath.Join(cfg.OutputDir, strings.TrimSuffix(sampleOutput, ".txt")+"_RESUMO.xlsx")
	if result.ReportFile != wantReport {
		t.Errorf("ReportFile = %s, want %s", result.ReportFile, wantReport)
	}
	f, err := excelize.OpenFile(result.ReportFile)
	if err != nil {
		t.Fatalf("OpenFile(report): %v", err)
	}
	f.Close()

	if result.ArchivePath != filepath.Join(cfg.InputArchiveDir, "efd.txt") || !utils.FileExists(result.ArchivePath) {
		t.Errorf("ArchivePath = %s", result.ArchivePath)
	}
	if utils.FileExists(filepath.Join(cfg.InputDir, "efd.txt")) {
		t.Errorf("input should have been archived")
	}
}

func TestRunProjectsEstablishment(t *testing.T) {
	cfg := setup(t, "efd.txt")
	result := run(t, cfg, "efd.txt", Options{Establishment: efdtest.Branch, SkipReport: true})

	if !result.Success {
		t.Fatalf("Run failed: %v", result.Error)
	}
	if result.Stats.Exported >= result.Stats.Records {
		t.Errorf("projection kept %d of %d records", result.Stats.Exported, result.Stats.Records)
	}
	if result.ReportFile != "" {
		t.Errorf("report should be skipped")
	}

	data, err := os.ReadFile(result.OutputFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "|C010|"+efdtest.HeadOffice+"|") {
		t.Errorf("head office section should be dropped")
	}
	if !strings.Contains(text, "|C010|"+efdtest.Branch+"|") {
		t.Errorf("branch section missing")
	}
}

func TestRunWritesIssueLog(t *testing.T) {
	cfg := setup(t)
	broken := strings.Replace(efdtest.Sample().Text(), "|C990|8|", "|C990|99|", 1)
	if err := os.WriteFile(filepath.Join(cfg.InputDir, "broken.txt"), []byte(broken), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result := run(t, cfg, "broken.txt", Options{SkipReport: true})
	if !result.Success {
		t.Fatalf("check issues must not fail the file: %v", result.Error)
	}
	if result.Stats.CheckWarnings == 0 {
		t.Errorf("expected a counter warning")
	}
	if result.IssueLog == "" || !utils.FileExists(result.IssueLog) {
		t.Errorf("IssueLog = %q", result.IssueLog)
	}

	// The export carries the recomputed counter.
	data, err := os.ReadFile(result.OutputFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "|C990|8|") {
		t.Errorf("counter not recomputed")
	}
}

func TestRunFailures(t *testing.T) {
	cfg := setup(t)
	empty := filepath.Join(cfg.InputDir, "empty.txt")
	if err := os.WriteFile(empty, []byte("  \n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result := run(t, cfg, "empty.txt", Options{})
	if result.Success || !errors.Is(result.Error, efdparser.ErrEmptyInput) {
		t.Errorf("result = %+v", result)
	}
	if !utils.FileExists(empty) {
		t.Errorf("failed input must stay in place")
	}

	missing := run(t, cfg, "missing.txt", Options{})
	if missing.Success || missing.Error == nil {
		t.Errorf("missing file should fail")
	}
}

func TestRunDryRun(t *testing.T) {
	cfg := setup(t, "efd.txt")
	result := run(t, cfg, "efd.txt", Options{DryRun: true})

	if !result.Success {
		t.Fatalf("Run failed: %v", result.Error)
	}
	if utils.FileExists(result.OutputFile) || utils.FileExists(result.ReportFile) {
		t.Errorf("dry run wrote files")
	}
	if !utils.FileExists(filepath.Join(cfg.InputDir, "efd.txt")) || result.ArchivePath != "" {
		t.Errorf("dry run archived the input")
	}
}

func TestNewRejectsBadCorrections(t *testing.T) {
	cfg := setup(t)
	cfg.FieldCorrections = []config.TransformationRule{{
		Record:  "0150",
		Field:   "NOME",
		Actions: []config.TransformationAction{{Type: "regex_replace", Find: "("}},
	}}

	if _, err := New("x.txt", cfg, Options{}); err == nil {
		t.Errorf("expected error for invalid regex")
	}
	if _, err := RunAll(context.Background(), nil, cfg, Options{}, 1); err == nil {
		t.Errorf("RunAll should reject invalid corrections")
	}
}

func TestRunAllAndSummarize(t *testing.T) {
	cfg := setup(t, "a.txt")
	if err := os.WriteFile(filepath.Join(cfg.InputDir, "b.txt"), nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	paths := []string{filepath.Join(cfg.InputDir, "a.txt"), filepath.Join(cfg.InputDir, "b.txt")}

	start := time.Now()
	results, err := RunAll(context.Background(), paths, cfg, Options{SkipReport: true}, 2)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != 2 || results[0].FilePath != paths[0] || results[1].FilePath != paths[1] {
		t.Fatalf("results out of order: %+v", results)
	}
	if !results[0].Success || results[1].Success {
		t.Errorf("success = %v, %v", results[0].Success, results[1].Success)
	}

	summary := Summarize(results, start, time.Now())
	if summary.TotalFiles != 2 || summary.SuccessfulFiles != 1 || summary.FailedFiles != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.TotalRecords != 67 || len(summary.FailedFilesList) != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestRunAllCancelled(t *testing.T) {
	cfg := setup(t, "a.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RunAll(ctx, []string{filepath.Join(cfg.InputDir, "a.txt")}, cfg, Options{}, 1)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if results[0].Success || !errors.Is(results[0].Error, context.Canceled) {
		t.Errorf("result = %+v", results[0])
	}
}
