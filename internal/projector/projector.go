// =============================================================================
// EFD Contribuicoes Toolkit - Establishment Projector
// =============================================================================
//
// A ledger covers every establishment of a company. The projector derives
// the ledger of a single establishment:
//
//   1. Collect the item codes (COD_ITEM) and participant codes (COD_PART)
//      used by records owned by the establishment.
//   2. Keep 0150 participants and 0200 items only when they are used.
//   3. Keep every other record when it is global or owned by the
//      establishment.
//   4. Drop records whose parent, or any ancestor, was dropped. Block 0 is
//      untagged, so 0205/0206 follow their 0200 only through ParentID.
//   5. Reset the IND_MOV flag of the block openers (A001, C001, ...) to "0"
//      when the block still has data and to "1" when it is empty.
//   6. Recompute the summaries over what is left.
//
// The input document is never changed. Projecting an already projected
// document onto the same establishment returns the same records.
//
// =============================================================================

package projector

import (
	"github.com/ginjaninja78/efd-contribuicoes/internal/aggregator"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
)

// AllEstablishments selects the whole ledger.
const AllEstablishments = "all"

// Project returns the view of doc restricted to one establishment.
//
// PARAMETERS:
//   - doc: The source document.
//   - establishment: A tax ID, or AllEstablishments.
//
// RETURNS:
//   - A document of the same session. With AllEstablishments (or an empty
//     selector) the records are the input records and only the summaries
//     are recomputed.
func Project(doc *record.Document, establishment string) *record.Document {
	return ProjectWith(doc, establishment, nil)
}

// ProjectWith is Project with the summaries built from registry's layouts.
// A nil registry means schema.Default().
func ProjectWith(doc *record.Document, establishment string, registry *schema.Registry) *record.Document {
	if establishment == "" || establishment == AllEstablishments {
		return doc.Derive(doc.Records, aggregator.RecalculateWith(doc.Records, registry))
	}

	items, participants := usedCodes(doc.Records, establishment)

	kept := make(record.Set, len(doc.Records))
	for recordType, recs := range doc.Records {
		var out []*record.Record
		for _, r := range recs {
			if keep(r, establishment, items, participants) {
				out = append(out, r)
			}
		}
		if len(out) > 0 {
			kept[recordType] = out
		}
	}

	dropDetached(kept, doc.Records.Index())
	resetMovementFlags(kept)

	return doc.Derive(kept, aggregator.RecalculateWith(kept, registry))
}

// usedCodes collects the item and participant codes referenced by the
// records of an establishment.
func usedCodes(records record.Set, establishment string) (items, participants map[string]bool) {
	items = make(map[string]bool)
	participants = make(map[string]bool)
	for _, recs := range records {
		for _, r := range recs {
			if r.Establishment != establishment {
				continue
			}
			if code := r.Get("COD_ITEM"); code != "" {
				items[code] = true
			}
			if code := r.Get("COD_PART"); code != "" {
				participants[code] = true
			}
		}
	}
	return items, participants
}

func keep(r *record.Record, establishment string, items, participants map[string]bool) bool {
	switch r.Type {
	case "0150":
		return participants[r.Get("COD_PART")]
	case "0200":
		return items[r.Get("COD_ITEM")]
	default:
		return r.Global() || r.Establishment == establishment
	}
}

// dropDetached removes records that descend from a record missing from kept.
// Parent links that point outside the source document are left alone.
func dropDetached(kept record.Set, all map[record.ID]*record.Record) {
	present := make(map[record.ID]bool, len(all))
	for _, r := range kept.Flatten() {
		present[r.ID] = true
	}

	detached := func(r *record.Record) bool {
		for hops, id := 0, r.ParentID; id != 0 && hops < len(all); hops++ {
			parent, ok := all[id]
			if !ok {
				return false
			}
			if !present[id] {
				return true
			}
			id = parent.ParentID
		}
		return false
	}

	for recordType, recs := range kept {
		out := recs[:0:0]
		for _, r := range recs {
			if !detached(r) {
				out = append(out, r)
			}
		}
		if len(out) == 0 {
			delete(kept, recordType)
		} else {
			kept[recordType] = out
		}
	}
}

// resetMovementFlags rewrites IND_MOV on the openers present in the set.
// Openers are cloned, never modified.
func resetMovementFlags(records record.Set) {
	for _, block := range schema.MovementBlocks {
		opener := schema.OpenerType(block)
		if len(records[opener]) == 0 {
			continue
		}

		flag := "1"
		if blockHasData(records, block) {
			flag = "0"
		}

		openers := make([]*record.Record, len(records[opener]))
		for i, r := range records[opener] {
			if r.Get("IND_MOV") == flag {
				openers[i] = r
			} else {
				openers[i] = r.With("IND_MOV", flag)
			}
		}
		records[opener] = openers
	}
}

// blockHasData reports whether the block holds anything besides its opener
// and totalizer.
func blockHasData(records record.Set, block string) bool {
	for recordType, recs := range records {
		if len(recs) == 0 || schema.Block(recordType) != block {
			continue
		}
		if recordType == schema.OpenerType(block) || recordType == schema.TotalizerType(block) {
			continue
		}
		return true
	}
	return false
}
