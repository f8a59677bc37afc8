// =============================================================================
// EFD Contribuicoes Toolkit - Ledger Writer
// =============================================================================
//
// This module turns a (possibly edited) record set back into ledger text.
//
// WRITING PROCESS:
//   1. Records read from a file keep their original line order.
//   2. Records created after parsing are placed next to their relatives
//      (see placement below).
//   3. Every counter record is recomputed over the final list:
//        X990  QTD_LIN_X    lines of block X, opener and totalizer included
//        9900  QTD_REG_BLC  lines of the record type named in REG_BLC
//        9990  QTD_LIN_9    lines of block 9, 9999 included
//        9999  QTD_LIN      lines of the file
//   4. Field corrections run (A170 DESCR_COMPL is cut to 50 characters).
//   5. Each record becomes one line: |REG|f1|...|fn|
//
// PLACEMENT OF NEW RECORDS:
//   Each new record gets an index into the list of positioned records:
//     a. Its parent is positioned: after the parent's last descendant.
//     b. Its parent is itself new: the parent's index.
//     c. It is a child type: after the last record of its family (a parent
//        type of it or any type those parents may contain), preferring
//        family records of the same establishment.
//     d. It belongs to an establishment: after the last record of that
//        establishment in the same block.
//     e. Before the block totalizer (X990).
//     f. After the last record of the same block.
//     g. Before the first record of block 9, or at the very end.
//   All indices are computed first and applied from the highest down. New
//   records sharing an index keep their creation order.
//
//   The search is a heuristic. Two unrelated new records aimed at the same
//   narrow window may come out in either order relative to old records.
//
// The writer never fails on an inconsistent record set: dangling parents
// and unknown types fall through to the next rule, and records of unknown
// type are not written.
//
// =============================================================================

package efdwriter

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"github.com/ginjaninja78/efd-contribuicoes/internal/transform"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DefaultPrefix starts every exported file name.
const DefaultPrefix = "EFD_CONTRIBUICOES"

// =============================================================================
// OPTIONS
// =============================================================================

// Options configure the writer.
type Options struct {
	// Registry supplies the field order of every record type.
	// Default: schema.Default()
	Registry *schema.Registry

	// Transformer applies field corrections.
	// Default: transform.Default()
	Transformer *transform.Transformer

	// Prefix starts the file name returned by FileName.
	// Default: "EFD_CONTRIBUICOES"
	Prefix string
}

// DefaultOptions returns the options used by Export.
func DefaultOptions() Options {
	return Options{
		Registry:    schema.Default(),
		Transformer: transform.Default(),
		Prefix:      DefaultPrefix,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Registry == nil {
		o.Registry = d.Registry
	}
	if o.Transformer == nil {
		o.Transformer = d.Transformer
	}
	if o.Prefix == "" {
		o.Prefix = d.Prefix
	}
	return o
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// Export renders records as ledger text with the default options.
func Export(records record.Set) string {
	return ExportWithOptions(records, DefaultOptions())
}

// ExportWithOptions renders records as ledger text.
//
// PARAMETERS:
//   - records: The record set. It is not modified.
//   - opts: Writer options; zero fields take their defaults.
//
// RETURNS:
//   - The text, one "\n"-terminated line per record.
func ExportWithOptions(records record.Set, opts Options) string {
	opts = opts.withDefaults()

	list := Writable(Arrange(records, opts.Registry), opts.Registry)
	list = RecomputeCounters(list)

	var b strings.Builder
	for _, r := range list {
		layout := opts.Registry.Fields(r.Type)
		r = opts.Transformer.Record(r)

		b.WriteByte('|')
		for _, field := range layout {
			if field == "REG" {
				b.WriteString(r.Type)
			} else {
				b.WriteString(r.Fields[field])
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo renders records and writes them to w as Windows-1252. Characters
// the code page cannot hold are replaced.
func WriteTo(w io.Writer, records record.Set, opts Options) error {
	text := ExportWithOptions(records, opts)

	encoder := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	encoded, err := encoder.String(text)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	if _, err := io.WriteString(w, encoded); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// FileName returns the conventional name of the exported ledger:
// <prefix>_<CNPJ>_<DT_INI>_<DT_FIN>.txt, from the 0000 record. Missing
// values become CNPJ_NAO_ENCONTRADO, DATA_INI and DATA_FIN.
func FileName(records record.Set, prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	cnpj, dtIni, dtFin := "CNPJ_NAO_ENCONTRADO", "DATA_INI", "DATA_FIN"
	if header := records.First("0000"); header != nil {
		cnpj = valueOr(header.Get("CNPJ"), cnpj)
		dtIni = valueOr(header.Get("DT_INI"), dtIni)
		dtFin = valueOr(header.Get("DT_FIN"), dtFin)
	}

	return fmt.Sprintf("%s_%s_%s_%s.txt", prefix, cnpj, dtIni, dtFin)
}

func valueOr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// =============================================================================
// ARRANGEMENT
// =============================================================================

// insertion is a new record and its index into the positioned list.
type insertion struct {
	record *record.Record
	index  int
}

// Arrange returns every record of the set in output order.
func Arrange(records record.Set, registry *schema.Registry) []*record.Record {
	var positioned, fresh []*record.Record
	for _, r := range records.Flatten() {
		if r.Positioned() {
			positioned = append(positioned, r)
		} else {
			fresh = append(fresh, r)
		}
	}

	sort.SliceStable(positioned, func(i, j int) bool {
		a, b := *positioned[i].OriginOrder, *positioned[j].OriginOrder
		if a != b {
			return a < b
		}
		return positioned[i].ID < positioned[j].ID
	})
	if len(fresh) == 0 {
		return positioned
	}

	sort.Slice(fresh, func(i, j int) bool { return fresh[i].ID < fresh[j].ID })

	p := newPlacer(positioned, records, registry)
	inserts := make([]insertion, 0, len(fresh))
	for _, r := range fresh {
		idx := p.index(r)
		p.placed[r.ID] = idx
		inserts = append(inserts, insertion{record: r, index: idx})
	}

	// Highest index first; on a tie the newest goes in first so the oldest
	// ends up in front.
	sort.Slice(inserts, func(i, j int) bool {
		if inserts[i].index != inserts[j].index {
			return inserts[i].index > inserts[j].index
		}
		return inserts[i].record.ID > inserts[j].record.ID
	})

	list := make([]*record.Record, len(positioned), len(positioned)+len(inserts))
	copy(list, positioned)
	for _, ins := range inserts {
		list = append(list, nil)
		copy(list[ins.index+1:], list[ins.index:])
		list[ins.index] = ins.record
	}
	return list
}

// placer computes insertion indices against the positioned list.
type placer struct {
	positioned []*record.Record
	registry   *schema.Registry

	// position maps a positioned record to its index.
	position map[record.ID]int

	// all indexes every record of the set, for ancestry walks.
	all map[record.ID]*record.Record

	// placed holds the indices already computed for new records.
	placed map[record.ID]int
}

func newPlacer(positioned []*record.Record, records record.Set, registry *schema.Registry) *placer {
	p := &placer{
		positioned: positioned,
		registry:   registry,
		position:   make(map[record.ID]int, len(positioned)),
		all:        records.Index(),
		placed:     make(map[record.ID]int),
	}
	for i, r := range positioned {
		p.position[r.ID] = i
	}
	return p
}

func (p *placer) index(r *record.Record) int {
	if r.HasParent() {
		if at, ok := p.position[r.ParentID]; ok {
			return p.afterDescendants(r.ParentID, at)
		}
		if at, ok := p.placed[r.ParentID]; ok {
			return at
		}
	}

	block := schema.Block(r.Type)
	owned := func(q *record.Record) bool {
		return q.Establishment == r.Establishment && schema.Block(q.Type) == block
	}

	if p.registry.IsChild(r.Type) {
		family := make(map[string]bool)
		for _, t := range p.registry.Family(r.Type) {
			family[t] = true
		}
		inFamily := func(q *record.Record) bool { return family[q.Type] }
		if r.Establishment != "" {
			if i := p.last(func(q *record.Record) bool { return inFamily(q) && owned(q) }); i >= 0 {
				return i + 1
			}
		}
		if i := p.last(inFamily); i >= 0 {
			return i + 1
		}
	}

	if r.Establishment != "" && schema.IsEstablishmentScoped(block) {
		if i := p.last(owned); i >= 0 {
			return i + 1
		}
	}

	totalizer := schema.TotalizerType(block)
	for i, q := range p.positioned {
		if q.Type == totalizer {
			return i
		}
	}
	if i := p.last(func(q *record.Record) bool { return schema.Block(q.Type) == block }); i >= 0 {
		return i + 1
	}

	for i, q := range p.positioned {
		if schema.Block(q.Type) == "9" {
			return i
		}
	}
	return len(p.positioned)
}

// last returns the index of the last positioned record matching match, or -1.
func (p *placer) last(match func(*record.Record) bool) int {
	for i := len(p.positioned) - 1; i >= 0; i-- {
		if match(p.positioned[i]) {
			return i
		}
	}
	return -1
}

// afterDescendants returns the index just past the last positioned record
// that descends from the parent at index at.
func (p *placer) afterDescendants(parent record.ID, at int) int {
	last := at
	for i := at + 1; i < len(p.positioned); i++ {
		if p.descendsFrom(p.positioned[i], parent) {
			last = i
		}
	}
	return last + 1
}

func (p *placer) descendsFrom(r *record.Record, ancestor record.ID) bool {
	// The hop limit guards against parent cycles introduced by edits.
	for hops := 0; r != nil && r.HasParent() && hops < len(p.all); hops++ {
		if r.ParentID == ancestor {
			return true
		}
		r = p.all[r.ParentID]
	}
	return false
}

// Writable drops the records whose type has no layout. They are neither
// written nor counted.
func Writable(list []*record.Record, registry *schema.Registry) []*record.Record {
	out := make([]*record.Record, 0, len(list))
	for _, r := range list {
		if registry.Has(r.Type) {
			out = append(out, r)
		}
	}
	return out
}

// =============================================================================
// COUNTERS
// =============================================================================

// RecomputeCounters returns list with every counter record replaced by a
// copy holding the recomputed value. Other records are returned as they are.
func RecomputeCounters(list []*record.Record) []*record.Record {
	perType := make(map[string]int)
	perBlock := make(map[string]int)
	for _, r := range list {
		perType[r.Type]++
		perBlock[schema.Block(r.Type)]++
	}

	out := make([]*record.Record, len(list))
	for i, r := range list {
		field, value := counterFor(r, perType, perBlock, len(list))
		if field == "" || r.Get(field) == value {
			out[i] = r
			continue
		}
		out[i] = r.With(field, value)
	}
	return out
}

// counterFor returns the counter field of r and its correct value, or an
// empty field name when r holds no counter.
func counterFor(r *record.Record, perType, perBlock map[string]int, total int) (string, string) {
	switch {
	case r.Type == "9900":
		return "QTD_REG_BLC", strconv.Itoa(perType[r.Get("REG_BLC")])
	case r.Type == "9999":
		return "QTD_LIN", strconv.Itoa(total)
	case len(r.Type) == 4 && strings.HasSuffix(r.Type, "990"):
		block := schema.Block(r.Type)
		return "QTD_LIN_" + block, strconv.Itoa(perBlock[block])
	default:
		return "", ""
	}
}
