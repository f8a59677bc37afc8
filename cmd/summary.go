// =============================================================================
// EFD Contribuicoes Toolkit - Summary Command
// =============================================================================
//
// COMMAND USAGE:
//   efd summary <file> [--establishment CNPJ] [--xlsx report.xlsx]
//
// Prints the establishments, the inbound and outbound operation summaries
// and the PIS/COFINS consolidation of a ledger.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/report"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var xlsxPath string

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Show operation and tax summaries of a ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderSummaries(doc))

		if xlsxPath != "" {
			if err := report.Write(doc, xlsxPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nReport written to %s\n", xlsxPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addEstablishmentFlag(summaryCmd)
	summaryCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the XLSX summary report to this path")
}

// renderSummaries lays out every summary table of a document.
func renderSummaries(doc *record.Document) string {
	sections := []string{
		section("Establishments", establishmentTable(doc.Establishments())),
		section("Inbound operations", operationTable(doc.Summaries.Inbound)),
		section("Outbound operations", operationTable(doc.Summaries.Outbound)),
		section("PIS consolidation (M200)", taxTable(doc.Summaries.Pis)),
		section("COFINS consolidation (M600)", taxTable(doc.Summaries.Cofins)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func section(title string, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), body)
}

func establishmentTable(list []record.Establishment) string {
	if len(list) == 0 {
		return emptyStyle.Render("no establishments")
	}
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{e.Code, e.CNPJ, e.Name, e.UF})
	}
	return newTable(nil, "Code", "CNPJ", "Name", "UF").Rows(rows...).String()
}

func operationTable(list []record.OperationSummary) string {
	if len(list) == 0 {
		return emptyStyle.Render("no operations")
	}
	rows := make([][]string, 0, len(list))
	for _, o := range list {
		rows = append(rows, []string{
			o.CFOP,
			o.CSTPisCofins(),
			formatRate(o.AliqPis),
			formatRate(o.AliqCofins),
			record.FormatDisplay(o.Total),
			record.FormatDisplay(o.PisCofinsBase),
			record.FormatDisplay(o.Pis),
			record.FormatDisplay(o.Cofins),
			fmt.Sprint(o.Items),
		})
	}
	amounts := map[int]bool{4: true, 5: true, 6: true, 7: true, 8: true}
	return newTable(amounts, "CFOP", "CST", "Aliq. PIS", "Aliq. COFINS", "Total", "Base", "PIS", "COFINS", "Items").
		Rows(rows...).String()
}

func taxTable(list []record.TaxSummary) string {
	if len(list) == 0 {
		return emptyStyle.Render("no consolidation record")
	}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{t.Attribute, t.Label, record.FormatDisplay(t.Value)})
	}
	return newTable(map[int]bool{2: true}, "Field", "Description", "Value").Rows(rows...).String()
}

// formatRate renders a summary aliquot ("1.65") with a decimal comma and at
// least two places ("1,65").
func formatRate(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	places := int32(2)
	if exp := -d.Exponent(); exp > places {
		places = exp
	}
	return record.FormatNumber(d, places)
}

// newTable returns a bordered table. Columns listed in amounts are right
// aligned.
func newTable(amounts map[int]bool, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case amounts[col]:
				return amountStyle
			default:
				return cellStyle
			}
		})
}
