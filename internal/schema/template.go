// =============================================================================
// EFD Contribuicoes Toolkit - XLSX Layout Templates
// =============================================================================
//
// Layout templates let an operator add record types (or replace a built-in
// layout after a legal change) without rebuilding the tool. The template is
// an XLSX workbook:
//
//   Sheet 1 (any name) - one row per record type:
//   | Column A | Column B    | Column C   | Column D | ...
//   |----------|-------------|------------|----------|
//   | REG      | FIELDS ...                          |   <- header row
//   | F800     | NAT_CRED_SUC| DT_SUCESS  | ...      |
//
//   Sheet "hierarchy" (optional) - one parent/child pair per row:
//   | Column A | Column B |
//   |----------|----------|
//   | PARENT   | CHILD    |   <- header row
//   | F800     | F809     |
//
// REG is implied and must not be repeated in the field columns.
//
// =============================================================================

package schema

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// HierarchySheet is the name of the optional parent/child sheet.
const HierarchySheet = "hierarchy"

// TemplateColumns configures where the template data lives.
type TemplateColumns struct {
	// DataStartRow is the 0-based index of the first data row.
	// Default: 1 (row 0 is the header)
	DataStartRow int

	// TypeColumn is the 0-based column holding the record type.
	// Default: 0 (column A)
	TypeColumn int

	// FirstFieldColumn is the 0-based column of the first field after REG.
	// Default: 1 (column B)
	FirstFieldColumn int
}

// DefaultTemplateColumns returns the standard column layout.
func DefaultTemplateColumns() TemplateColumns {
	return TemplateColumns{
		DataStartRow:     1,
		TypeColumn:       0,
		FirstFieldColumn: 1,
	}
}

// Template is the content of a parsed layout workbook.
type Template struct {
	// File is the path the template was read from.
	File string

	// Layouts are the record layouts declared on the first sheet.
	Layouts []Layout

	// Hierarchy holds the parent -> children pairs of the hierarchy sheet.
	Hierarchy map[string][]string
}

// LoadTemplate reads a layout workbook using the default columns.
func LoadTemplate(templatePath string) (*Template, error) {
	return LoadTemplateWithConfig(templatePath, DefaultTemplateColumns())
}

// LoadTemplateWithConfig reads a layout workbook.
//
// PARAMETERS:
//   - templatePath: The path to the XLSX file.
//   - columns: The column configuration.
//
// RETURNS:
//   - The parsed template.
//   - An error if the workbook cannot be opened or a row is malformed.
func LoadTemplateWithConfig(templatePath string, columns TemplateColumns) (*Template, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open template file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("template file has no sheets")
	}

	tpl := &Template{
		File:      templatePath,
		Hierarchy: make(map[string][]string),
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	for i := columns.DataStartRow; i < len(rows); i++ {
		layout, ok, err := parseLayoutRow(rows[i], columns)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", i+1, err)
		}
		if ok {
			tpl.Layouts = append(tpl.Layouts, layout)
		}
	}

	if idx, _ := f.GetSheetIndex(HierarchySheet); idx >= 0 {
		pairs, err := f.GetRows(HierarchySheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read hierarchy rows: %w", err)
		}
		for i := columns.DataStartRow; i < len(pairs); i++ {
			row := pairs[i]
			if len(row) < 2 {
				continue
			}
			parent := strings.TrimSpace(row[0])
			child := strings.TrimSpace(row[1])
			if parent == "" || child == "" {
				continue
			}
			tpl.Hierarchy[parent] = append(tpl.Hierarchy[parent], child)
		}
	}

	return tpl, nil
}

// parseLayoutRow turns a sheet row into a layout. Blank rows report ok=false.
func parseLayoutRow(row []string, columns TemplateColumns) (Layout, bool, error) {
	if columns.TypeColumn >= len(row) {
		return Layout{}, false, nil
	}
	recordType := strings.ToUpper(strings.TrimSpace(row[columns.TypeColumn]))
	if recordType == "" {
		return Layout{}, false, nil
	}

	fields := []string{"REG"}
	for c := columns.FirstFieldColumn; c < len(row); c++ {
		name := strings.ToUpper(strings.TrimSpace(row[c]))
		if name == "" {
			continue
		}
		if name == "REG" {
			return Layout{}, false, fmt.Errorf("layout %s repeats REG", recordType)
		}
		fields = append(fields, name)
	}

	return Layout{Type: recordType, Fields: fields}, true, nil
}

// WithTemplate returns a registry extended by the layouts of an XLSX
// template. An empty path returns the receiver unchanged.
func (r *Registry) WithTemplate(templatePath string) (*Registry, error) {
	if templatePath == "" {
		return r, nil
	}
	tpl, err := LoadTemplate(templatePath)
	if err != nil {
		return nil, err
	}
	extended, err := r.Extend(tpl.Layouts, tpl.Hierarchy)
	if err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", templatePath, err)
	}
	return extended, nil
}
