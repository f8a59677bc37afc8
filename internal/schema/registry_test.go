package schema

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDefaultLayoutsStartWithREG(t *testing.T) {
	r := Default()
	for _, recordType := range r.Types() {
		fields := r.Fields(recordType)
		if len(fields) == 0 || fields[0] != "REG" {
			t.Fatalf("layout %s does not start with REG: %v", recordType, fields)
		}
	}
}

func TestDefaultLayoutLookups(t *testing.T) {
	r := Default()

	tests := []struct {
		recordType string
		index      int
		field      string
	}{
		{"0000", 8, "CNPJ"},
		{"0140", 3, "CNPJ"},
		{"C100", 1, "IND_OPER"},
		{"C170", 10, "CFOP"},
		{"C170", 36, "COD_CTA"},
		{"A170", 3, "DESCR_COMPL"},
		{"9900", 2, "QTD_REG_BLC"},
		{"9999", 1, "QTD_LIN"},
	}

	for _, tt := range tests {
		t.Run(tt.recordType+"_"+tt.field, func(t *testing.T) {
			fields := r.Fields(tt.recordType)
			if len(fields) <= tt.index {
				t.Fatalf("layout %s has only %d fields", tt.recordType, len(fields))
			}
			if fields[tt.index] != tt.field {
				t.Errorf("field %d of %s = %s, want %s", tt.index, tt.recordType, fields[tt.index], tt.field)
			}
		})
	}

	if r.Has("ZZZZ") {
		t.Errorf("unexpected layout for ZZZZ")
	}
}

func TestHierarchyQueries(t *testing.T) {
	r := Default()

	if !r.CanContain("C100", "C170") {
		t.Errorf("C100 should contain C170")
	}
	if r.CanContain("C170", "C100") {
		t.Errorf("C170 must not contain C100")
	}
	if !r.IsParent("C405") || !r.IsChild("C405") {
		t.Errorf("C405 is both a child of C400 and a parent of C481")
	}

	family := r.Family("C170")
	want := map[string]bool{"C100": true, "C110": true, "C111": true, "C120": true, "C170": true, "C175": true}
	if len(family) != len(want) {
		t.Fatalf("Family(C170) = %v", family)
	}
	for _, f := range family {
		if !want[f] {
			t.Errorf("unexpected family member %s", f)
		}
	}

	if len(r.Family("C100")) != 0 {
		t.Errorf("C100 is not a child type")
	}
}

func TestBlockHelpers(t *testing.T) {
	if Block("C170") != "C" || OpenerType("C") != "C001" || TotalizerType("C") != "C990" {
		t.Fatalf("block helpers returned unexpected values")
	}
	if !IsEstablishmentOpener("C010") || !IsEstablishmentOpener("A010") {
		t.Errorf("C010 and A010 declare establishments")
	}
	if IsEstablishmentOpener("1010") {
		t.Errorf("1010 is a block 1 record and is global")
	}
	if IsEstablishmentScoped("M") || IsEstablishmentScoped("0") {
		t.Errorf("blocks M and 0 are global")
	}
	if !IsStructural("C001") || !IsStructural("9990") || IsStructural("C100") {
		t.Errorf("IsStructural misclassified a type")
	}
}

func TestNewRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"missing REG", Layout{Type: "X100", Fields: []string{"A", "B"}}},
		{"repeated field", Layout{Type: "X100", Fields: []string{"REG", "A", "A"}}},
		{"short type", Layout{Type: "X1", Fields: []string{"REG"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Layout{tt.layout}, nil); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestExtendLeavesReceiverUntouched(t *testing.T) {
	base := Default()
	extended, err := base.Extend(
		[]Layout{{Type: "F809", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}}},
		map[string][]string{"F800": {"F809"}},
	)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if !extended.Has("F809") || !extended.CanContain("F800", "F809") {
		t.Errorf("extension not applied")
	}
	if base.Has("F809") || base.CanContain("F800", "F809") {
		t.Errorf("base registry was modified")
	}
	if !extended.CanContain("C100", "C170") {
		t.Errorf("built-in hierarchy lost")
	}
}

func TestWithTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "REG")
	f.SetCellValue(sheet, "B1", "FIELDS")
	f.SetCellValue(sheet, "A2", "F809")
	f.SetCellValue(sheet, "B2", "NUM_PROC")
	f.SetCellValue(sheet, "C2", "ind_proc")
	if _, err := f.NewSheet(HierarchySheet); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	f.SetCellValue(HierarchySheet, "A1", "PARENT")
	f.SetCellValue(HierarchySheet, "B1", "CHILD")
	f.SetCellValue(HierarchySheet, "A2", "F800")
	f.SetCellValue(HierarchySheet, "B2", "F809")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	r, err := Default().WithTemplate(path)
	if err != nil {
		t.Fatalf("WithTemplate: %v", err)
	}

	fields := r.Fields("F809")
	if len(fields) != 3 || fields[0] != "REG" || fields[1] != "NUM_PROC" || fields[2] != "IND_PROC" {
		t.Errorf("F809 layout = %v", fields)
	}
	if !r.CanContain("F800", "F809") {
		t.Errorf("hierarchy sheet not applied")
	}

	same, err := Default().WithTemplate("")
	if err != nil || same != Default() {
		t.Errorf("empty template path should return the receiver")
	}
}
