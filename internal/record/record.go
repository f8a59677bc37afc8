// =============================================================================
// EFD Contribuicoes Toolkit - Record Model
// =============================================================================
//
// This package contains the types shared by every stage of the pipeline
// (parser, aggregator, projector, serializer, editor) so that none of them
// has to import another:
//   - Record:    one line of the ledger, keyed by field name
//   - Set:       records grouped by record type
//   - Document:  a parsed ledger with its derived summaries
//   - Summaries: the operation and tax summaries
//
// =============================================================================

package record

import (
	"sync/atomic"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// ID identifies a record for the lifetime of the process. IDs are assigned
// from a monotonic counter, so a higher ID was always created later.
// The zero value means "no record".
type ID uint64

var lastID atomic.Uint64

// NextID returns a fresh record ID.
func NextID() ID {
	return ID(lastID.Add(1))
}

// =============================================================================
// RECORD
// =============================================================================

// Record represents a single ledger line.
type Record struct {
	// ID is the process-unique identifier of the record.
	ID ID `json:"id"`

	// Type is the record type tag. Fields["REG"] always equals Type.
	Type string `json:"type"`

	// Fields holds the field values keyed by field name.
	Fields map[string]string `json:"fields"`

	// ParentID links the record to its structural parent. Zero when the
	// record is top level or an orphan.
	ParentID ID `json:"parentId,omitempty"`

	// Establishment is the tax ID of the owning establishment. Empty for
	// global records.
	Establishment string `json:"establishment,omitempty"`

	// OriginOrder is the zero-based line index in the source file. Nil for
	// records created after parsing.
	OriginOrder *int `json:"originOrder,omitempty"`
}

// New creates a record with a fresh ID. REG is set from recordType.
func New(recordType string, fields map[string]string) *Record {
	f := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		f[k] = v
	}
	f["REG"] = recordType
	return &Record{
		ID:     NextID(),
		Type:   recordType,
		Fields: f,
	}
}

// Get returns a field value, or "" when absent.
func (r *Record) Get(field string) string {
	return r.Fields[field]
}

// HasParent reports whether the record has a structural parent.
func (r *Record) HasParent() bool {
	return r.ParentID != 0
}

// Positioned reports whether the record came from the source file.
func (r *Record) Positioned() bool {
	return r.OriginOrder != nil
}

// Global reports whether the record belongs to no establishment.
func (r *Record) Global() bool {
	return r.Establishment == ""
}

// Clone returns a deep copy of the record, keeping the same ID.
func (r *Record) Clone() *Record {
	c := *r
	c.Fields = make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		c.Fields[k] = v
	}
	if r.OriginOrder != nil {
		order := *r.OriginOrder
		c.OriginOrder = &order
	}
	return &c
}

// With returns a copy of the record with one field replaced.
func (r *Record) With(field, value string) *Record {
	c := r.Clone()
	c.Fields[field] = value
	return c
}

// Order returns a pointer to an origin line index.
func Order(line int) *int {
	return &line
}
