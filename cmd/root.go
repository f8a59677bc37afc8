// =============================================================================
// EFD Contribuicoes Toolkit - Root Command
// =============================================================================
//
// This file defines the root command of the CLI. Every other command is
// attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (efd)
//   ├── summaryCmd (efd summary <file>)
//   ├── exportCmd  (efd export <file>)
//   ├── checkCmd   (efd check <file>)
//   ├── processCmd (efd process)
//   ├── serveCmd   (efd serve)
//   └── versionCmd (efd version)
//
// CONFIGURATION:
//   Before any command runs, the root command:
//   1. Loads .env into the environment
//   2. Loads the YAML configuration (defaults when the file is missing)
//   3. Builds the logger
//   4. Extends the record registry with the layout template, if configured
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/efd-contribuicoes/internal/config"
	"github.com/ginjaninja78/efd-contribuicoes/internal/logger"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// Set by the root command before any subcommand runs.
var (
	appConfig *config.MainConfig
	log       *logrus.Entry
	registry  *schema.Registry
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "efd",
	Short: "EFD Contribuicoes Toolkit - Review, edit and export PIS/COFINS ledgers",
	Long: `EFD Contribuicoes Toolkit reads the pipe-delimited PIS/COFINS ledger,
summarizes its operations and tax consolidation, filters it per establishment
and writes it back with every control counter recomputed.

Key Features:
  - Hierarchical parsing of Windows-1252 ledgers
  - Operation summaries by CFOP, CST and aliquots
  - Per-establishment views with movement flags adjusted
  - Export with recomputed X990, 9900 and 9999 counters
  - XLSX summary reports and an HTTP editing session

Example Usage:
  efd summary ledger.txt --establishment 11111111000191
  efd export ledger.txt --establishment 11111111000191 --out ./output
  efd process --config ./config.yaml
  efd serve --addr :8080`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file; defaults apply when it does not exist",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// initialize loads configuration, logger and registry.
func initialize() error {
	config.LoadEnvFile()

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	l, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}

	reg := schema.Default()
	if cfg.SchemaTemplate != "" {
		reg, err = reg.WithTemplate(cfg.SchemaTemplate)
		if err != nil {
			return fmt.Errorf("failed to load schema template: %w", err)
		}
	}

	appConfig = cfg
	log = logrus.NewEntry(l)
	registry = reg

	log.WithFields(logrus.Fields{
		"config": cfgFile,
		"types":  len(reg.Types()),
	}).Debug("Initialized")
	return nil
}
