// =============================================================================
// EFD Contribuicoes Toolkit - XLSX Summary Report
// =============================================================================
//
// This module writes the summaries of a document to an XLSX workbook so the
// accounting team can review a ledger without opening the text file.
//
// WORKBOOK LAYOUT:
//   | Sheet              | Content                                        |
//   |--------------------|------------------------------------------------|
//   | Entradas           | Inbound operation summaries, one row per group |
//   | Saidas             | Outbound operation summaries                   |
//   | Apuracao PIS       | M200 attributes                                |
//   | Apuracao COFINS    | M600 attributes                                |
//   | Estabelecimentos   | 0140 register with record counts               |
//
// Amounts are written as numbers with a "#,##0.00" format so they can be
// summed in the spreadsheet. Project the document first to report a single
// establishment.
//
// =============================================================================

package report

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	SheetInbound        = "Entradas"
	SheetOutbound       = "Saidas"
	SheetPis            = "Apuracao PIS"
	SheetCofins         = "Apuracao COFINS"
	SheetEstablishments = "Estabelecimentos"
)

// amountFormat is the built-in excelize number format "#,##0.00".
const amountFormat = 4

var operationHeader = []interface{}{
	"CFOP", "CST PIS/COFINS", "Aliq. PIS (%)", "Aliq. COFINS (%)", "Valor Total",
	"ICMS", "ICMS ST", "IPI", "Base PIS/COFINS", "PIS", "COFINS", "Itens",
}

var taxHeader = []interface{}{"Registro", "Campo", "Descricao", "Valor"}

var establishmentHeader = []interface{}{"Codigo", "Nome", "CNPJ", "UF", "Registros"}

// Build creates the summary workbook of a document. The caller owns the
// returned file and must Close it.
func Build(doc *record.Document) (*excelize.File, error) {
	f := excelize.NewFile()

	b := &builder{file: f}
	if err := b.styles(); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SheetInbound); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{SheetOutbound, SheetPis, SheetCofins, SheetEstablishments} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	steps := []func() error{
		func() error { return b.operations(SheetInbound, doc.Summaries.Inbound) },
		func() error { return b.operations(SheetOutbound, doc.Summaries.Outbound) },
		func() error { return b.taxes(SheetPis, doc.Summaries.Pis) },
		func() error { return b.taxes(SheetCofins, doc.Summaries.Cofins) },
		func() error { return b.establishments(doc) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write saves the summary workbook of a document to a file.
func Write(doc *record.Document, filePath string) error {
	f, err := Build(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save report %s: %w", filePath, err)
	}
	return nil
}

// WriteTo streams the summary workbook of a document.
func WriteTo(w io.Writer, doc *record.Document) error {
	f, err := Build(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// =============================================================================
// SHEETS
// =============================================================================

type builder struct {
	file   *excelize.File
	header int
	amount int
}

func (b *builder) styles() error {
	var err error
	b.header, err = b.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	b.amount, err = b.file.NewStyle(&excelize.Style{NumFmt: amountFormat})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}
	return nil
}

func (b *builder) operations(sheet string, rows []record.OperationSummary) error {
	if err := b.writeHeader(sheet, operationHeader); err != nil {
		return err
	}
	for i, op := range rows {
		values := []interface{}{
			op.CFOP,
			op.CSTPisCofins(),
			rate(op.AliqPis),
			rate(op.AliqCofins),
			amount(op.Total),
			amount(op.ICMS),
			amount(op.ICMSST),
			amount(op.IPI),
			amount(op.PisCofinsBase),
			amount(op.Pis),
			amount(op.Cofins),
			op.Items,
		}
		if err := b.writeRow(sheet, i+2, values); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		if err := b.styleRange(sheet, 5, 2, 11, len(rows)+1, b.amount); err != nil {
			return err
		}
	}
	return b.file.SetColWidth(sheet, "A", "L", 16)
}

func (b *builder) taxes(sheet string, rows []record.TaxSummary) error {
	if err := b.writeHeader(sheet, taxHeader); err != nil {
		return err
	}
	for i, t := range rows {
		if err := b.writeRow(sheet, i+2, []interface{}{t.Record, t.Attribute, t.Label, amount(t.Value)}); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		if err := b.styleRange(sheet, 4, 2, 4, len(rows)+1, b.amount); err != nil {
			return err
		}
	}
	if err := b.file.SetColWidth(sheet, "A", "B", 22); err != nil {
		return err
	}
	return b.file.SetColWidth(sheet, "C", "D", 44)
}

func (b *builder) establishments(doc *record.Document) error {
	if err := b.writeHeader(SheetEstablishments, establishmentHeader); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, r := range doc.Records.Flatten() {
		if r.Establishment != "" {
			counts[r.Establishment]++
		}
	}

	for i, e := range doc.Establishments() {
		values := []interface{}{e.Code, e.Name, e.CNPJ, e.UF, counts[e.CNPJ]}
		if err := b.writeRow(SheetEstablishments, i+2, values); err != nil {
			return err
		}
	}
	return b.file.SetColWidth(SheetEstablishments, "A", "E", 20)
}

// =============================================================================
// HELPERS
// =============================================================================

func (b *builder) writeHeader(sheet string, header []interface{}) error {
	if err := b.writeRow(sheet, 1, header); err != nil {
		return err
	}
	return b.styleRange(sheet, 1, 1, len(header), 1, b.header)
}

func (b *builder) writeRow(sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := b.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// styleRange styles the rectangle between two 1-based (column, row) corners.
func (b *builder) styleRange(sheet string, col1, row1, col2, row2, style int) error {
	from, err := excelize.CoordinatesToCellName(col1, row1)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(col2, row2)
	if err != nil {
		return err
	}
	return b.file.SetCellStyle(sheet, from, to, style)
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// rate converts an aliquot key ("1.65") to a number, keeping text that is
// not one.
func rate(s string) interface{} {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.InexactFloat64()
}
