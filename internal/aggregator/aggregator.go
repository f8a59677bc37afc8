// =============================================================================
// EFD Contribuicoes Toolkit - Aggregator
// =============================================================================
//
// The aggregator derives the summaries shown next to a ledger:
//
//   OPERATION SUMMARIES:
//     Every C170 item whose parent is a C100 document is grouped by
//     (direction, CFOP, CST PIS, CST COFINS, ALIQ PIS, ALIQ COFINS) and its
//     amounts are summed. Direction comes from the parent's IND_OPER.
//
//   TAX SUMMARIES:
//     The first M200 (PIS) and the first M600 (COFINS) consolidation records
//     are flattened into labelled (attribute, value) rows.
//
// Summaries are never patched: they are rebuilt from the whole record set
// every time. Amounts are accumulated as decimals so that the totals match
// the ledger to the cent.
//
// =============================================================================

package aggregator

import (
	"context"
	"runtime"
	"sort"

	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"github.com/shopspring/decimal"
)

// yieldEvery is the number of C170 items scanned between yields.
const yieldEvery = 500

// taxLabels are the display labels of the M200/M600 attributes.
var taxLabels = map[string]string{
	"VL_TOT_CONT_NC_PER":   "Total Contribuição Não Cumulativa",
	"VL_TOT_CRED_DESC":     "Total Crédito Descontado",
	"VL_TOT_CRED_DESC_ANT": "Total Crédito Descontado Anterior",
	"VL_TOT_CONT_NC_DEV":   "Total Contribuição Não Cumulativa Devolvida",
	"VL_RET_NC":            "Retenções Não Cumulativas",
	"VL_OUT_DED_NC":        "Outras Deduções Não Cumulativas",
	"VL_CONT_NC_REC":       "Contribuição Não Cumulativa a Recolher",
	"VL_TOT_CONT_CUM_PER":  "Total Contribuição Cumulativa",
	"VL_RET_CUM":           "Retenções Cumulativas",
	"VL_OUT_DED_CUM":       "Outras Deduções Cumulativas",
	"VL_CONT_CUM_REC":      "Contribuição Cumulativa a Recolher",
	"VL_TOT_CONT_REC":      "Total Contribuição a Recolher",
}

// Label returns the display label of a consolidation attribute, falling
// back to the field name.
func Label(attribute string) string {
	if l, ok := taxLabels[attribute]; ok {
		return l
	}
	return attribute
}

// Recalculate rebuilds the summaries of a record set with the built-in
// layouts. It never fails.
func Recalculate(records record.Set) record.Summaries {
	return RecalculateWith(records, nil)
}

// RecalculateWith rebuilds the summaries, reading the M200/M600 field order
// from registry. A nil registry means schema.Default().
func RecalculateWith(records record.Set, registry *schema.Registry) record.Summaries {
	s, _ := RecalculateContext(context.Background(), records, registry)
	return s
}

// RecalculateContext is RecalculateWith with cooperative yielding. The
// context is checked at every yield point; on cancellation the partial work
// is discarded and the context error returned.
func RecalculateContext(ctx context.Context, records record.Set, registry *schema.Registry) (record.Summaries, error) {
	if registry == nil {
		registry = schema.Default()
	}
	var out record.Summaries

	documents := make(map[record.ID]*record.Record, len(records["C100"]))
	for _, doc := range records["C100"] {
		documents[doc.ID] = doc
	}

	groups := make(map[record.OperationKey]*record.OperationSummary)
	for i, item := range records["C170"] {
		if i > 0 && i%yieldEvery == 0 {
			runtime.Gosched()
			if err := ctx.Err(); err != nil {
				return record.Summaries{}, err
			}
		}

		doc, ok := documents[item.ParentID]
		if !ok {
			continue
		}

		key := operationKey(doc, item)
		g, ok := groups[key]
		if !ok {
			g = &record.OperationSummary{OperationKey: key}
			groups[key] = g
		}
		accumulate(g, item)
	}

	for _, g := range groups {
		if g.Direction == record.Inbound {
			out.Inbound = append(out.Inbound, *g)
		} else {
			out.Outbound = append(out.Outbound, *g)
		}
	}
	sortOperations(out.Inbound)
	sortOperations(out.Outbound)

	out.Pis = flatten(records.First("M200"), registry)
	out.Cofins = flatten(records.First("M600"), registry)

	return out, nil
}

// operationKey builds the grouping key of a C170 item.
func operationKey(doc, item *record.Record) record.OperationKey {
	direction := record.Outbound
	if doc.Get("IND_OPER") == "0" {
		direction = record.Inbound
	}
	return record.OperationKey{
		Direction:  direction,
		CFOP:       orNotAvailable(item.Get("CFOP")),
		CSTPis:     orNotAvailable(item.Get("CST_PIS")),
		CSTCofins:  orNotAvailable(item.Get("CST_COFINS")),
		AliqPis:    record.ParseNumber(item.Get("ALIQ_PIS")).String(),
		AliqCofins: record.ParseNumber(item.Get("ALIQ_COFINS")).String(),
	}
}

func accumulate(g *record.OperationSummary, item *record.Record) {
	num := func(field string) decimal.Decimal { return record.ParseNumber(item.Get(field)) }

	g.Total = g.Total.Add(num("VL_ITEM"))
	g.ICMS = g.ICMS.Add(num("VL_ICMS"))
	g.ICMSST = g.ICMSST.Add(num("VL_ICMS_ST"))
	g.IPI = g.IPI.Add(num("VL_IPI"))
	g.Pis = g.Pis.Add(num("VL_PIS"))
	g.Cofins = g.Cofins.Add(num("VL_COFINS"))
	g.PisCofinsBase = g.PisCofinsBase.Add(num("VL_BC_PIS")).Add(num("VL_BC_COFINS"))
	g.Items++
}

// sortOperations orders rows by CFOP; ties fall back to the rest of the key
// so the output is deterministic.
func sortOperations(rows []record.OperationSummary) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.CFOP != b.CFOP {
			return a.CFOP < b.CFOP
		}
		if a.CSTPis != b.CSTPis {
			return a.CSTPis < b.CSTPis
		}
		if a.CSTCofins != b.CSTCofins {
			return a.CSTCofins < b.CSTCofins
		}
		if a.AliqPis != b.AliqPis {
			return a.AliqPis < b.AliqPis
		}
		return a.AliqCofins < b.AliqCofins
	})
}

// flatten turns a consolidation record into labelled rows in layout order.
func flatten(r *record.Record, registry *schema.Registry) []record.TaxSummary {
	if r == nil {
		return nil
	}
	fields := registry.Fields(r.Type)
	out := make([]record.TaxSummary, 0, len(fields))
	for _, f := range fields {
		if f == "REG" {
			continue
		}
		out = append(out, record.TaxSummary{
			Record:    r.Type,
			Attribute: f,
			Label:     Label(f),
			Value:     record.ParseNumber(r.Get(f)),
		})
	}
	return out
}

func orNotAvailable(s string) string {
	if s == "" {
		return record.NotAvailable
	}
	return s
}
