// =============================================================================
// EFD Contribuicoes Toolkit - Schema Registry
// =============================================================================
//
// This module holds the record layouts of the EFD Contribuicoes ledger. A
// layout is the ordered list of field names of one record type; the same
// order is used to decode a line and to encode it back.
//
// The registry also answers the structural questions the parser and the
// serializer ask: which types may contain which, which block a type belongs
// to, and which blocks carry establishment ownership.
//
// LIFECYCLE:
//   A Registry is built once (Default, or New/Extend when an XLSX layout
//   extension is configured) and is never modified afterwards. It is safe
//   for concurrent readers.
//
// =============================================================================

package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// =============================================================================
// LAYOUT
// =============================================================================

// Layout is the ordered field list of a single record type.
type Layout struct {
	// Type is the record type tag, e.g. "C170".
	Type string

	// Fields are the field names in file order. Fields[0] is always "REG".
	Fields []string
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is an immutable lookup of layouts and parent/child rules.
type Registry struct {
	layouts  map[string]Layout
	order    []string
	children map[string][]string
	parents  map[string][]string
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry. It is constructed on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(builtinLayouts, builtinHierarchy)
		if err != nil {
			panic(fmt.Sprintf("schema: invalid built-in layouts: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// New builds a registry from a list of layouts and a parent -> children map.
//
// PARAMETERS:
//   - layouts: Record layouts. A later layout for the same type replaces an
//     earlier one.
//   - hierarchy: Parent type -> allowed child types.
//
// RETURNS:
//   - The registry.
//   - An error if a layout does not start with REG or repeats a field name.
func New(layouts []Layout, hierarchy map[string][]string) (*Registry, error) {
	r := &Registry{
		layouts:  make(map[string]Layout, len(layouts)),
		children: make(map[string][]string, len(hierarchy)),
		parents:  make(map[string][]string),
	}

	for _, l := range layouts {
		if err := validateLayout(l); err != nil {
			return nil, err
		}
		if _, exists := r.layouts[l.Type]; !exists {
			r.order = append(r.order, l.Type)
		}
		fields := make([]string, len(l.Fields))
		copy(fields, l.Fields)
		r.layouts[l.Type] = Layout{Type: l.Type, Fields: fields}
	}

	for parent, kids := range hierarchy {
		for _, kid := range kids {
			r.addChild(parent, kid)
		}
	}

	return r, nil
}

// Extend returns a new registry with the given layouts and hierarchy pairs
// merged over the receiver. The receiver is left untouched.
func (r *Registry) Extend(layouts []Layout, hierarchy map[string][]string) (*Registry, error) {
	merged := make([]Layout, 0, len(r.order)+len(layouts))
	for _, t := range r.order {
		merged = append(merged, r.layouts[t])
	}
	merged = append(merged, layouts...)

	h := make(map[string][]string, len(r.children)+len(hierarchy))
	for parent, kids := range r.children {
		h[parent] = append([]string(nil), kids...)
	}
	for parent, kids := range hierarchy {
		h[parent] = append(h[parent], kids...)
	}

	return New(merged, h)
}

func (r *Registry) addChild(parent, child string) {
	for _, existing := range r.children[parent] {
		if existing == child {
			return
		}
	}
	r.children[parent] = append(r.children[parent], child)
	r.parents[child] = append(r.parents[child], parent)
}

func validateLayout(l Layout) error {
	if len(l.Type) != 4 {
		return fmt.Errorf("record type %q must have 4 characters", l.Type)
	}
	if len(l.Fields) == 0 || l.Fields[0] != "REG" {
		return fmt.Errorf("layout %s must start with REG", l.Type)
	}
	seen := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		if f == "" {
			return fmt.Errorf("layout %s has an empty field name", l.Type)
		}
		if seen[f] {
			return fmt.Errorf("layout %s repeats field %s", l.Type, f)
		}
		seen[f] = true
	}
	return nil
}

// =============================================================================
// LOOKUPS
// =============================================================================

// Has reports whether the record type is known.
func (r *Registry) Has(recordType string) bool {
	_, ok := r.layouts[recordType]
	return ok
}

// Fields returns the field names of a record type, or nil if unknown.
// The returned slice is shared and must not be modified.
func (r *Registry) Fields(recordType string) []string {
	return r.layouts[recordType].Fields
}

// Types returns every known record type in registration order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// =============================================================================
// HIERARCHY QUERIES
// =============================================================================

// IsParent reports whether the type may contain children.
func (r *Registry) IsParent(recordType string) bool {
	return len(r.children[recordType]) > 0
}

// IsChild reports whether the type only ever appears under a parent.
func (r *Registry) IsChild(recordType string) bool {
	return len(r.parents[recordType]) > 0
}

// CanContain reports whether parent may directly contain child.
func (r *Registry) CanContain(parent, child string) bool {
	for _, kid := range r.children[parent] {
		if kid == child {
			return true
		}
	}
	return false
}

// Parents returns the types that may directly contain the given type.
func (r *Registry) Parents(child string) []string {
	return append([]string(nil), r.parents[child]...)
}

// Family returns the parent types of a child type together with every
// sibling type those parents allow. The result is sorted and includes the
// child type itself. It is empty for types that are not children.
func (r *Registry) Family(child string) []string {
	set := make(map[string]bool)
	for _, p := range r.parents[child] {
		set[p] = true
		for _, kid := range r.children[p] {
			set[kid] = true
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// =============================================================================
// BLOCKS
// =============================================================================

// Block returns the block letter of a record type ("C" for "C170").
func Block(recordType string) string {
	if recordType == "" {
		return ""
	}
	return recordType[:1]
}

// OpenerType returns the block opening record type ("C001").
func OpenerType(block string) string {
	return block + "001"
}

// TotalizerType returns the block closing record type ("C990").
func TotalizerType(block string) string {
	return block + "990"
}

// IsStructural reports whether the type is a block opener or totalizer.
func IsStructural(recordType string) bool {
	return len(recordType) == 4 &&
		(strings.HasSuffix(recordType, "001") || strings.HasSuffix(recordType, "990"))
}

// MovementBlocks are the blocks whose opener carries an IND_MOV flag that
// depends on the establishment being exported.
var MovementBlocks = []string{"A", "C", "D", "F", "I", "M", "P"}

// establishmentBlocks are the blocks whose records belong to the
// establishment declared by the nearest preceding X010 record.
var establishmentBlocks = map[string]bool{
	"A": true,
	"C": true,
	"D": true,
	"F": true,
	"I": true,
	"P": true,
}

// IsEstablishmentScoped reports whether records of the block are owned by an
// establishment. Blocks 0, M, 1 and 9 are global.
func IsEstablishmentScoped(block string) bool {
	return establishmentBlocks[block]
}

// IsEstablishmentOpener reports whether the type declares the establishment
// for the records that follow it (A010, C010, D010, F010, I010, P010).
func IsEstablishmentOpener(recordType string) bool {
	return strings.HasSuffix(recordType, "010") && IsEstablishmentScoped(Block(recordType))
}
