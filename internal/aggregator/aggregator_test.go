package aggregator

import (
	"context"
	"testing"

	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"github.com/shopspring/decimal"
)

func item(parent *record.Record, fields map[string]string) *record.Record {
	r := record.New("C170", fields)
	if parent != nil {
		r.ParentID = parent.ID
	}
	return r
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecalculateGroupsItems(t *testing.T) {
	in := record.New("C100", map[string]string{"IND_OPER": "0"})
	out := record.New("C100", map[string]string{"IND_OPER": "1"})

	set := record.Set{}
	set.Add(in)
	set.Add(out)
	set.Add(item(in, map[string]string{"CFOP": "1102", "CST_PIS": "50", "CST_COFINS": "50", "ALIQ_PIS": "1,65", "ALIQ_COFINS": "7,6", "VL_ITEM": "100,00", "VL_PIS": "1,65", "VL_COFINS": "7,60", "VL_BC_PIS": "100,00", "VL_BC_COFINS": "100,00"}))
	set.Add(item(in, map[string]string{"CFOP": "1102", "CST_PIS": "50", "CST_COFINS": "50", "ALIQ_PIS": "1,65", "ALIQ_COFINS": "7,60", "VL_ITEM": "50,50", "VL_ICMS": "9,09", "VL_PIS": "0,83", "VL_COFINS": "3,84"}))
	set.Add(item(out, map[string]string{"CFOP": "5102", "CST_PIS": "01", "CST_COFINS": "01", "ALIQ_PIS": "1,65", "ALIQ_COFINS": "7,6", "VL_ITEM": "1.000,00", "VL_ICMS_ST": "12,00", "VL_IPI": "5,00"}))
	set.Add(item(out, map[string]string{"CFOP": "", "VL_ITEM": "1,00"}))
	set.Add(item(nil, map[string]string{"CFOP": "9999", "VL_ITEM": "999,00"}))

	s := Recalculate(set)

	if len(s.Inbound) != 1 {
		t.Fatalf("inbound groups = %d, want 1", len(s.Inbound))
	}
	g := s.Inbound[0]
	if g.Direction != record.Inbound || g.CFOP != "1102" || g.CSTPisCofins() != "50/50" {
		t.Errorf("unexpected inbound key: %+v", g.OperationKey)
	}
	if !g.Total.Equal(dec("150.5")) || !g.ICMS.Equal(dec("9.09")) || !g.Pis.Equal(dec("2.48")) || !g.Cofins.Equal(dec("11.44")) {
		t.Errorf("unexpected inbound sums: %+v", g)
	}
	if !g.PisCofinsBase.Equal(dec("200")) || g.Items != 2 {
		t.Errorf("base = %s, items = %d", g.PisCofinsBase, g.Items)
	}

	if len(s.Outbound) != 2 {
		t.Fatalf("outbound groups = %d, want 2", len(s.Outbound))
	}
	if s.Outbound[0].CFOP != "5102" || s.Outbound[1].CFOP != record.NotAvailable {
		t.Errorf("outbound rows not sorted by CFOP: %s, %s", s.Outbound[0].CFOP, s.Outbound[1].CFOP)
	}
	if s.Outbound[1].CSTPis != record.NotAvailable || s.Outbound[1].CSTCofins != record.NotAvailable {
		t.Errorf("empty CST should become N/A")
	}
	if !s.Outbound[0].ICMSST.Equal(dec("12")) || !s.Outbound[0].IPI.Equal(dec("5")) {
		t.Errorf("unexpected outbound sums: %+v", s.Outbound[0])
	}
}

func TestRecalculateFlattensConsolidation(t *testing.T) {
	set := record.Set{}
	set.Add(record.New("M200", map[string]string{"VL_TOT_CONT_NC_PER": "1.500,25", "VL_TOT_CONT_REC": "300,00"}))
	set.Add(record.New("M200", map[string]string{"VL_TOT_CONT_NC_PER": "9,99"}))
	set.Add(record.New("M600", map[string]string{"VL_TOT_CONT_REC": "abc"}))

	s := Recalculate(set)

	if len(s.Pis) != 12 || len(s.Cofins) != 12 {
		t.Fatalf("pis rows = %d, cofins rows = %d, want 12 each", len(s.Pis), len(s.Cofins))
	}
	first := s.Pis[0]
	if first.Attribute != "VL_TOT_CONT_NC_PER" || first.Label != "Total Contribuição Não Cumulativa" || !first.Value.Equal(dec("1500.25")) {
		t.Errorf("first PIS row = %+v", first)
	}
	last := s.Pis[11]
	if last.Attribute != "VL_TOT_CONT_REC" || !last.Value.Equal(dec("300")) {
		t.Errorf("last PIS row = %+v", last)
	}
	if !s.Cofins[11].Value.IsZero() || s.Cofins[11].Record != "M600" {
		t.Errorf("unparseable value should be zero: %+v", s.Cofins[11])
	}
}

func TestRecalculateEmpty(t *testing.T) {
	s := Recalculate(record.Set{})
	if len(s.Inbound) != 0 || len(s.Outbound) != 0 || s.Pis != nil || s.Cofins != nil {
		t.Errorf("empty set should give empty summaries: %+v", s)
	}
}

func TestRecalculateContextCancelled(t *testing.T) {
	doc := record.New("C100", map[string]string{"IND_OPER": "0"})
	set := record.Set{}
	set.Add(doc)
	for i := 0; i < yieldEvery+1; i++ {
		set.Add(item(doc, map[string]string{"CFOP": "1102", "VL_ITEM": "1,00"}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RecalculateContext(ctx, set, nil); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRecalculateWithOverriddenLayout(t *testing.T) {
	reg, err := schema.Default().Extend([]schema.Layout{
		{Type: "M200", Fields: []string{"REG", "VL_TOT_CONT_REC", "VL_TOT_CONT_NC_PER"}},
	}, nil)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	set := record.Set{}
	set.Add(record.New("M200", map[string]string{"VL_TOT_CONT_NC_PER": "1,00", "VL_TOT_CONT_REC": "2,00"}))

	s := RecalculateWith(set, reg)
	if len(s.Pis) != 2 {
		t.Fatalf("pis rows = %d, want 2", len(s.Pis))
	}
	if s.Pis[0].Attribute != "VL_TOT_CONT_REC" || !s.Pis[0].Value.Equal(dec("2")) {
		t.Errorf("first PIS row = %+v", s.Pis[0])
	}

	if n := len(Recalculate(set).Pis); n != 12 {
		t.Errorf("built-in layout rows = %d, want 12", n)
	}
}
