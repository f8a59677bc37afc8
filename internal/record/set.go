package record

import (
	"sort"
)

// Set groups records by record type. Within a type, records keep the order in
// which they were read or added.
type Set map[string][]*Record

// Add appends a record under its type.
func (s Set) Add(r *Record) {
	s[r.Type] = append(s[r.Type], r)
}

// Count returns the total number of records.
func (s Set) Count() int {
	n := 0
	for _, recs := range s {
		n += len(recs)
	}
	return n
}

// Types returns the record types present, sorted.
func (s Set) Types() []string {
	out := make([]string, 0, len(s))
	for t, recs := range s {
		if len(recs) > 0 {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Flatten returns every record. Types are visited in sorted order so the
// result is deterministic.
func (s Set) Flatten() []*Record {
	out := make([]*Record, 0, s.Count())
	for _, t := range s.Types() {
		out = append(out, s[t]...)
	}
	return out
}

// Index maps every record ID to its record.
func (s Set) Index() map[ID]*Record {
	idx := make(map[ID]*Record, s.Count())
	for _, recs := range s {
		for _, r := range recs {
			idx[r.ID] = r
		}
	}
	return idx
}

// Find returns the record with the given ID.
func (s Set) Find(id ID) (*Record, bool) {
	for _, recs := range s {
		for _, r := range recs {
			if r.ID == id {
				return r, true
			}
		}
	}
	return nil, false
}

// First returns the first record of a type, or nil.
func (s Set) First(recordType string) *Record {
	if recs := s[recordType]; len(recs) > 0 {
		return recs[0]
	}
	return nil
}

// Clone returns a new Set with new slices holding the same record pointers.
// Records are treated as immutable values, so sharing them is safe; callers
// replace a record rather than changing it.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for t, recs := range s {
		c[t] = append([]*Record(nil), recs...)
	}
	return c
}
