// =============================================================================
// EFD Contribuicoes Toolkit - Record Editor
// =============================================================================
//
// This module applies user edits to a document: new blank records, field
// updates, cascading deletes and batch inserts pasted from a spreadsheet.
//
// Documents are values. Every operation returns a new Document that shares
// the unchanged records with its input and carries freshly computed
// summaries; the input document is never modified.
//
// OWNERSHIP OF NEW RECORDS:
//   - 0140 and X010 records belong to the establishment in their CNPJ field.
//   - Records of establishment blocks inherit the establishment of their
//     parent, or take it from an explicit establishment column in a batch.
//   - Everything else is global.
//
// New records have no origin line; the writer places them next to their
// relatives when the document is exported.
//
// =============================================================================

package editor

import (
	"errors"
	"fmt"

	"github.com/ginjaninja78/efd-contribuicoes/internal/aggregator"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
)

var (
	// ErrRecordNotFound is returned when an ID matches no record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownRecordType is returned for types without a layout.
	ErrUnknownRecordType = errors.New("unknown record type")
)

// Editor edits documents against a registry.
type Editor struct {
	registry *schema.Registry
}

// New creates an Editor. A nil registry means schema.Default().
func New(registry *schema.Registry) *Editor {
	if registry == nil {
		registry = schema.Default()
	}
	return &Editor{registry: registry}
}

// =============================================================================
// NEW RECORDS
// =============================================================================

// NewRecord returns a blank record of the given type: every layout field
// present and empty. With a parent, the record is attached to it and
// inherits its establishment.
//
// RETURNS:
//   - The record, not yet part of any document.
//   - ErrUnknownRecordType if the type has no layout.
func (e *Editor) NewRecord(recordType string, parent *record.Record) (*record.Record, error) {
	layout := e.registry.Fields(recordType)
	if layout == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecordType, recordType)
	}

	fields := make(map[string]string, len(layout))
	for _, f := range layout {
		fields[f] = ""
	}
	r := record.New(recordType, fields)

	if parent != nil {
		r.ParentID = parent.ID
		r.Establishment = parent.Establishment
	}
	return r, nil
}

// Add creates a record, fills the given fields and appends it to the
// document.
//
// PARAMETERS:
//   - doc: The document.
//   - recordType: The type of the new record.
//   - parentID: The parent, or 0 for none.
//   - fields: Initial values; names outside the layout are ignored.
//
// RETURNS:
//   - The new document and the added record.
//   - ErrUnknownRecordType, or ErrRecordNotFound for a missing parent.
func (e *Editor) Add(doc *record.Document, recordType string, parentID record.ID, fields map[string]string) (*record.Document, *record.Record, error) {
	var parent *record.Record
	if parentID != 0 {
		p, ok := doc.Records.Find(parentID)
		if !ok {
			return nil, nil, fmt.Errorf("%w: parent %d", ErrRecordNotFound, parentID)
		}
		parent = p
	}

	r, err := e.NewRecord(recordType, parent)
	if err != nil {
		return nil, nil, err
	}
	for k, v := range fields {
		if _, ok := r.Fields[k]; ok && k != "REG" {
			r.Fields[k] = v
		}
	}
	e.assignOwner(r, parent, "")

	records := doc.Records.Clone()
	records.Add(r)
	return e.derive(doc, records), r, nil
}

// assignOwner sets the establishment of a new record. explicit, when not
// empty, wins over the parent.
func (e *Editor) assignOwner(r *record.Record, parent *record.Record, explicit string) {
	block := schema.Block(r.Type)
	switch {
	case r.Type == "0140" || schema.IsEstablishmentOpener(r.Type):
		r.Establishment = r.Get("CNPJ")
	case !schema.IsEstablishmentScoped(block) || schema.IsStructural(r.Type):
		r.Establishment = ""
	case explicit != "":
		r.Establishment = explicit
	case parent != nil:
		r.Establishment = parent.Establishment
	}
}

// =============================================================================
// UPDATES
// =============================================================================

// Upsert merges edited records of one type into the document.
//
// Records whose ID exists in the type's list replace it in place: their
// fields are merged onto the existing ones, while parent, establishment
// and origin line are kept. Other records are appended as new records
// with a fresh ID; a ParentID naming an existing record attaches them.
//
// Changing the CNPJ of a 0140 or X010 record moves the records tagged with
// the old tax ID in the same block to the new one.
//
// RETURNS:
//   - The new document.
//   - ErrUnknownRecordType if the type has no layout.
func (e *Editor) Upsert(doc *record.Document, recordType string, edits []*record.Record) (*record.Document, error) {
	if !e.registry.Has(recordType) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecordType, recordType)
	}

	records := doc.Records.Clone()
	list := records[recordType]
	position := make(map[record.ID]int, len(list))
	for i, r := range list {
		position[r.ID] = i
	}

	var retags []retag
	for _, edit := range edits {
		if edit == nil {
			continue
		}

		if i, ok := position[edit.ID]; ok && edit.ID != 0 {
			old := list[i]
			updated := old.Clone()
			for k, v := range edit.Fields {
				if k != "REG" {
					updated.Fields[k] = v
				}
			}
			if old.Establishment != "" && (recordType == "0140" || schema.IsEstablishmentOpener(recordType)) {
				updated.Establishment = updated.Get("CNPJ")
				if updated.Establishment != old.Establishment {
					retags = append(retags, retag{block: schema.Block(recordType), from: old.Establishment, to: updated.Establishment, skip: old.ID})
				}
			}
			list[i] = updated
			continue
		}

		var parent *record.Record
		if edit.ParentID != 0 {
			parent, _ = records.Find(edit.ParentID)
		}
		fresh, err := e.NewRecord(recordType, parent)
		if err != nil {
			return nil, err
		}
		for k, v := range edit.Fields {
			if k != "REG" {
				fresh.Fields[k] = v
			}
		}
		e.assignOwner(fresh, parent, "")
		position[fresh.ID] = len(list)
		list = append(list, fresh)
	}
	records[recordType] = list

	for _, rt := range retags {
		rt.apply(records)
	}

	return e.derive(doc, records), nil
}

// retag moves the records of one block from one establishment to another.
type retag struct {
	block    string
	from, to string
	skip     record.ID
}

func (rt retag) apply(records record.Set) {
	for t, recs := range records {
		if schema.Block(t) != rt.block {
			continue
		}
		var out []*record.Record
		for i, r := range recs {
			if r.ID == rt.skip || r.Establishment != rt.from {
				continue
			}
			if out == nil {
				out = make([]*record.Record, len(recs))
				copy(out, recs)
			}
			c := r.Clone()
			c.Establishment = rt.to
			out[i] = c
		}
		if out != nil {
			records[t] = out
		}
	}
}

// =============================================================================
// DELETION
// =============================================================================

// Delete removes a record and all of its descendants.
//
// RETURNS:
//   - The new document and the number of records removed.
//   - ErrRecordNotFound if no record has the ID.
func (e *Editor) Delete(doc *record.Document, id record.ID) (*record.Document, int, error) {
	if _, ok := doc.Records.Find(id); !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrRecordNotFound, id)
	}

	children := make(map[record.ID][]record.ID)
	for _, r := range doc.Records.Flatten() {
		if r.HasParent() {
			children[r.ParentID] = append(children[r.ParentID], r.ID)
		}
	}

	doomed := map[record.ID]bool{id: true}
	queue := []record.ID{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			if !doomed[child] {
				doomed[child] = true
				queue = append(queue, child)
			}
		}
	}

	records := make(record.Set, len(doc.Records))
	for t, recs := range doc.Records {
		var kept []*record.Record
		for _, r := range recs {
			if !doomed[r.ID] {
				kept = append(kept, r)
			}
		}
		if len(kept) > 0 {
			records[t] = kept
		}
	}

	return e.derive(doc, records), len(doomed), nil
}

// derive builds the edited document with recomputed summaries.
func (e *Editor) derive(doc *record.Document, records record.Set) *record.Document {
	return doc.Derive(records, aggregator.RecalculateWith(records, e.registry))
}
