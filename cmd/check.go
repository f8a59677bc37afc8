// =============================================================================
// EFD Contribuicoes Toolkit - Check Command
// =============================================================================
//
// COMMAND USAGE:
//   efd check <file> [--establishment CNPJ] [--log FILE]
//
// Reports layout, hierarchy and counter issues. Exits with an error when at
// least one issue is an error; warnings alone pass.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/efd-contribuicoes/internal/validation"
	"github.com/spf13/cobra"
)

var issueLogPath string

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a ledger for layout and counter issues",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		result := validation.NewValidator(registry).Check(doc.Records)
		fmt.Fprintln(cmd.OutOrStdout(), validation.FormatIssues(result.Issues))
		fmt.Fprintf(cmd.OutOrStdout(), "Records checked: %d, errors: %d, warnings: %d\n",
			result.RecordsChecked, result.ErrorCount, result.WarningCount)

		if issueLogPath != "" && len(result.Issues) > 0 {
			if err := validation.WriteIssueLog(result.Issues, args[0], issueLogPath); err != nil {
				return err
			}
		}

		if !result.IsValid {
			return fmt.Errorf("check found %d error(s)", result.ErrorCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addEstablishmentFlag(checkCmd)
	checkCmd.Flags().StringVar(&issueLogPath, "log", "", "Also write the issues to this file")
}
