package record

import (
	"github.com/google/uuid"
)

// Document is a parsed ledger together with its derived summaries.
type Document struct {
	// SessionID correlates log lines and HTTP calls for one loaded file.
	SessionID uuid.UUID `json:"sessionId"`

	// Records holds every record grouped by type.
	Records Set `json:"records"`

	// Summaries are computed from Records.
	Summaries Summaries `json:"summaries"`
}

// NewDocument wraps a record set into a new session.
func NewDocument(records Set) *Document {
	if records == nil {
		records = Set{}
	}
	return &Document{
		SessionID: uuid.New(),
		Records:   records,
	}
}

// Derive returns a document of the same session holding other records.
func (d *Document) Derive(records Set, summaries Summaries) *Document {
	return &Document{
		SessionID: d.SessionID,
		Records:   records,
		Summaries: summaries,
	}
}

// Establishment is an entry of the establishment register (record 0140).
type Establishment struct {
	Code string `json:"code"`
	Name string `json:"name"`
	CNPJ string `json:"cnpj"`
	UF   string `json:"uf"`
}

// Establishments lists the establishments declared in 0140 records.
func (d *Document) Establishments() []Establishment {
	recs := d.Records["0140"]
	out := make([]Establishment, 0, len(recs))
	for _, r := range recs {
		out = append(out, Establishment{
			Code: r.Get("COD_EST"),
			Name: r.Get("NOME"),
			CNPJ: r.Get("CNPJ"),
			UF:   r.Get("UF"),
		})
	}
	return out
}
