// =============================================================================
// EFD Contribuicoes Toolkit - Export Command
// =============================================================================
//
// COMMAND USAGE:
//   efd export <file> [--establishment CNPJ] [--out DIR]
//
// Writes the ledger back in Windows-1252 with every counter recomputed. The
// file is named <prefix>_<CNPJ>_<DT_INI>_<DT_FIN>.txt.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/efd-contribuicoes/internal/efdwriter"
	"github.com/spf13/cobra"
)

var outDir string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a ledger, optionally for one establishment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		opts, err := writerOptions()
		if err != nil {
			return err
		}

		dir := outDir
		if dir == "" {
			dir = appConfig.OutputDir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		outputPath := filepath.Join(dir, efdwriter.FileName(doc.Records, opts.Prefix))

		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := efdwriter.WriteTo(f, doc.Records, opts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		log.WithField("output", outputPath).Info("Ledger exported")
		fmt.Fprintln(cmd.OutOrStdout(), outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addEstablishmentFlag(exportCmd)
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: output_dir from the configuration)")
}
