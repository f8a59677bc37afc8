package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
)

// ErrBatchLayoutMissing is returned for record types that cannot be added
// in batch.
var ErrBatchLayoutMissing = errors.New("record type has no batch layout")

// BatchLayout is the column order expected for rows pasted from a
// spreadsheet, one tab-separated row per record.
type BatchLayout struct {
	Type    string
	Columns []string

	// EstablishmentColumn names a column that is not part of the record but
	// selects the establishment owning it.
	EstablishmentColumn string
}

var batchLayouts = map[string]BatchLayout{
	"0500": {Type: "0500", Columns: []string{"DT_ALT", "COD_NAT_CC", "IND_CTA", "NIVEL", "COD_CTA", "NOME_CTA", "COD_CTA_REF", "CNPJ_EST"}},
	"F010": {Type: "F010", Columns: []string{"CNPJ"}},
	"F100": {
		Type:                "F100",
		Columns:             []string{"IND_OPER", "COD_PART", "COD_ITEM", "DT_OPER", "VL_OPER", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "NAT_BC_CRED", "IND_ORIG_CRED", "COD_CTA", "COD_CCUS", "DESC_DOC_OPER", "CNPJ"},
		EstablishmentColumn: "CNPJ",
	},
	"F120": {
		Type:                "F120",
		Columns:             []string{"NAT_BC_CRED", "IDENT_BEM_IMOB", "IND_ORIG_CRED", "IND_UTIL_BEM_IMOB", "VL_OPER_DEP", "VL_EXC_BC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS", "DESCR_BEM", "CNPJ"},
		EstablishmentColumn: "CNPJ",
	},
	"F200": {Type: "F200", Columns: []string{"UNID_IMOB", "TP_UNID_IMOB", "IDENT_EMP", "DESC_UNID_IMOB", "NUM_CONT", "CPF_CNPJ_ADQU", "DT_OPER_COMP", "VL_UNID_IMOB_AT", "VL_TOT_REC", "VL_REC_ACUM", "VL_COMP_AJUS_UNID", "COD_ITEM", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "IND_NAT_EMP", "INF_COMPL"}},
	"F600": {
		Type:                "F600",
		Columns:             []string{"IND_NAT_RET", "DT_RET", "VL_BC_RET", "VL_RET", "COD_REC", "IND_NAT_REC", "CNPJ", "VL_RET_PIS", "VL_RET_COFINS", "IND_DEC", "CNPJ_F010"},
		EstablishmentColumn: "CNPJ_F010",
	},
	"F700": {Type: "F700", Columns: []string{"IND_ORI_DED", "IND_NAT_DED", "VL_DED_PIS", "VL_DED_COFINS", "VL_BC_OPER", "CNPJ", "INF_COMPL"}},
	"1300": {Type: "1300", Columns: []string{"IND_NAT_RET", "PR_REC_RET", "VL_RET_APU", "VL_RET_DED", "VL_RET_PER", "VL_RET_DCOMP", "SLD_RET"}},
	"1700": {Type: "1700", Columns: []string{"IND_NAT_RET", "PR_REC_RET", "VL_RET_APU", "VL_RET_DED", "VL_RET_PER", "VL_RET_DCOMP", "SLD_RET"}},
	"M110": {Type: "M110", Columns: []string{"IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ", "DT_REF"}},
	"M115": {Type: "M115", Columns: []string{"DET_VALOR_AJ", "CST_PIS", "DET_BC_CRED", "DET_ALIQ", "DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL"}},
	"M510": {Type: "M510", Columns: []string{"IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ", "DT_REF"}},
	"M515": {Type: "M515", Columns: []string{"DET_VALOR_AJ", "CST_COFINS", "DET_BC_CRED", "DET_ALIQ", "DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL"}},
}

// Batch returns the batch layout of a record type.
func Batch(recordType string) (BatchLayout, bool) {
	l, ok := batchLayouts[recordType]
	return l, ok
}

// BatchTypes lists the record types that accept batch input.
func BatchTypes() []string {
	out := make([]string, 0, len(batchLayouts))
	for t := range batchLayouts {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// BatchAdd parses tab-separated rows and appends one record per row.
//
// PARAMETERS:
//   - doc: The document.
//   - recordType: A type with a batch layout.
//   - text: Rows separated by newlines, columns by tabs. Blank rows are
//     skipped; missing trailing columns are empty.
//   - parentID: The parent of every new record, or 0. Child types with no
//     parent given attach to the last record of their parent type.
//
// RETURNS:
//   - The new document and the added records, in row order.
//   - ErrBatchLayoutMissing, ErrUnknownRecordType, or ErrRecordNotFound
//     for a missing parent.
func (e *Editor) BatchAdd(doc *record.Document, recordType, text string, parentID record.ID) (*record.Document, []*record.Record, error) {
	layout, ok := Batch(recordType)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s (accepted: %s)", ErrBatchLayoutMissing, recordType, strings.Join(BatchTypes(), ", "))
	}
	if !e.registry.Has(recordType) {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownRecordType, recordType)
	}

	parent, err := e.batchParent(doc, recordType, parentID)
	if err != nil {
		return nil, nil, err
	}

	records := doc.Records.Clone()
	var added []*record.Record

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, "\t")

		r, err := e.NewRecord(recordType, parent)
		if err != nil {
			return nil, nil, err
		}

		explicit := ""
		for i, column := range layout.Columns {
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			if column == layout.EstablishmentColumn {
				explicit = value
			}
			if hasField(r, column) {
				r.Fields[column] = value
			}
		}

		e.assignOwner(r, parent, explicit)
		records.Add(r)
		added = append(added, r)
	}

	return e.derive(doc, records), added, nil
}

// batchParent resolves the parent of batch rows.
func (e *Editor) batchParent(doc *record.Document, recordType string, parentID record.ID) (*record.Record, error) {
	if parentID != 0 {
		p, ok := doc.Records.Find(parentID)
		if !ok {
			return nil, fmt.Errorf("%w: parent %d", ErrRecordNotFound, parentID)
		}
		return p, nil
	}

	var parent *record.Record
	for _, t := range e.registry.Parents(recordType) {
		recs := doc.Records[t]
		if len(recs) == 0 {
			continue
		}
		last := recs[len(recs)-1]
		if parent == nil || orderOf(last) > orderOf(parent) {
			parent = last
		}
	}
	return parent, nil
}

func hasField(r *record.Record, field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// orderOf ranks records for "last" lookups: parsed records by line, new
// records after all of them by ID.
func orderOf(r *record.Record) uint64 {
	if r.OriginOrder != nil {
		return uint64(*r.OriginOrder)
	}
	return 1<<32 + uint64(r.ID)
}
