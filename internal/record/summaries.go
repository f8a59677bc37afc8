package record

import (
	"github.com/shopspring/decimal"
)

// Direction is the operation direction of a fiscal document.
type Direction string

const (
	// Inbound marks entries (C100.IND_OPER = "0").
	Inbound Direction = "ENTRADA"

	// Outbound marks exits (any other IND_OPER).
	Outbound Direction = "SAIDA"
)

// NotAvailable replaces empty grouping codes.
const NotAvailable = "N/A"

// OperationKey identifies an operation summary row.
type OperationKey struct {
	Direction  Direction `json:"direction"`
	CFOP       string    `json:"cfop"`
	CSTPis     string    `json:"cstPis"`
	CSTCofins  string    `json:"cstCofins"`
	AliqPis    string    `json:"aliqPis"`
	AliqCofins string    `json:"aliqCofins"`
}

// OperationSummary aggregates the C170 items sharing an OperationKey.
type OperationSummary struct {
	OperationKey

	// Total is the sum of VL_ITEM.
	Total decimal.Decimal `json:"total"`

	// ICMS is the sum of VL_ICMS.
	ICMS decimal.Decimal `json:"icms"`

	// ICMSST is the sum of VL_ICMS_ST.
	ICMSST decimal.Decimal `json:"icmsSt"`

	// IPI is the sum of VL_IPI.
	IPI decimal.Decimal `json:"ipi"`

	// PisCofinsBase is the sum of VL_BC_PIS + VL_BC_COFINS.
	PisCofinsBase decimal.Decimal `json:"pisCofinsBase"`

	// Pis is the sum of VL_PIS.
	Pis decimal.Decimal `json:"pis"`

	// Cofins is the sum of VL_COFINS.
	Cofins decimal.Decimal `json:"cofins"`

	// Items is the number of C170 lines in the group.
	Items int `json:"items"`
}

// CSTPisCofins renders the combined "pis/cofins" tax situation code.
func (o OperationSummary) CSTPisCofins() string {
	return o.CSTPis + "/" + o.CSTCofins
}

// TaxSummary is one attribute of a consolidation record (M200 or M600).
type TaxSummary struct {
	// Record is the source record type.
	Record string `json:"record"`

	// Attribute is the field name.
	Attribute string `json:"attribute"`

	// Label is the human-readable description of the field.
	Label string `json:"label"`

	// Value is the parsed amount.
	Value decimal.Decimal `json:"value"`
}

// Summaries are always derived from a Set and rebuilt from scratch.
type Summaries struct {
	Inbound  []OperationSummary `json:"inbound"`
	Outbound []OperationSummary `json:"outbound"`
	Pis      []TaxSummary       `json:"pis"`
	Cofins   []TaxSummary       `json:"cofins"`
}
