// =============================================================================
// EFD Contribuicoes Toolkit - Field Corrections
// =============================================================================
//
// This module corrects field values right before a record is written back
// to ledger text. The receiving validator rejects some values the source
// systems happily produce, the best known being A170 DESCR_COMPL longer than
// 50 characters.
//
// RULES:
//   A rule targets one field of one record type and lists actions that run
//   in order. The built-in rules (DefaultRules) always run first; rules from
//   the field_corrections configuration run after them.
//
// Rules are checked when the Transformer is built, so applying them never
// fails: the serializer has no error path for a bad correction.
//
// =============================================================================

package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ginjaninja78/efd-contribuicoes/internal/config"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
)

// DescrComplLimit is the longest A170 DESCR_COMPL the validator accepts.
const DescrComplLimit = 50

// DefaultRules returns the corrections applied to every export.
func DefaultRules() []config.TransformationRule {
	return []config.TransformationRule{
		{
			Record: "A170",
			Field:  "DESCR_COMPL",
			Actions: []config.TransformationAction{
				{Type: "truncate", Value: strconv.Itoa(DescrComplLimit)},
			},
		},
	}
}

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer applies field corrections to records.
type Transformer struct {
	// rules maps record type, then field name, to its compiled actions.
	rules map[string]map[string][]action
}

type action struct {
	config.TransformationAction
	re *regexp.Regexp
}

// New builds a Transformer from DefaultRules followed by extra.
//
// RETURNS:
//   - The transformer.
//   - An error naming the first rule with an unknown action type or an
//     invalid parameter.
func New(extra []config.TransformationRule) (*Transformer, error) {
	t := &Transformer{rules: make(map[string]map[string][]action)}

	all := append(DefaultRules(), extra...)
	for _, rule := range all {
		for _, a := range rule.Actions {
			compiled, err := compile(a)
			if err != nil {
				return nil, fmt.Errorf("correction %s.%s: %w", rule.Record, rule.Field, err)
			}
			if t.rules[rule.Record] == nil {
				t.rules[rule.Record] = make(map[string][]action)
			}
			t.rules[rule.Record][rule.Field] = append(t.rules[rule.Record][rule.Field], compiled)
		}
	}

	return t, nil
}

// Default returns a Transformer with only the built-in rules.
func Default() *Transformer {
	t, err := New(nil)
	if err != nil {
		panic(err)
	}
	return t
}

func compile(a config.TransformationAction) (action, error) {
	c := action{TransformationAction: a}

	switch a.Type {
	case "truncate", "pad_zeros_to_length", "ensure_length":
		if n, err := strconv.Atoi(a.Value); err != nil || n < 0 {
			return c, fmt.Errorf("%s needs a non-negative length, got %q", a.Type, a.Value)
		}
	case "format_number":
		if n, err := strconv.Atoi(a.Value); err != nil || n < 0 {
			return c, fmt.Errorf("format_number needs a number of places, got %q", a.Value)
		}
	case "format_date":
		if len(strings.Split(a.Value, "|")) != 2 {
			return c, fmt.Errorf("format_date needs \"input|output\", got %q", a.Value)
		}
	case "regex_replace":
		re, err := regexp.Compile(a.Find)
		if err != nil {
			return c, fmt.Errorf("invalid regex pattern: %w", err)
		}
		c.re = re
	case "trim", "trim_left", "trim_right", "uppercase", "lowercase", "replace",
		"remove_leading_zeros", "extract_digits", "normalize_whitespace",
		"lookup", "if_empty_use_default":
	default:
		return c, fmt.Errorf("unknown transformation type: %s", a.Type)
	}

	return c, nil
}

// =============================================================================
// TRANSFORMATION FUNCTIONS
// =============================================================================

// Record returns r with its corrections applied. When nothing changes r
// itself is returned; otherwise a clone carrying the new values.
func (t *Transformer) Record(r *record.Record) *record.Record {
	byField := t.rules[r.Type]
	if len(byField) == 0 {
		return r
	}

	out := r
	for field, actions := range byField {
		value, ok := r.Fields[field]
		if !ok {
			continue
		}
		corrected := value
		for _, a := range actions {
			corrected = apply(corrected, a)
		}
		if corrected == value {
			continue
		}
		if out == r {
			out = r.Clone()
		}
		out.Fields[field] = corrected
	}
	return out
}

// Value applies the corrections for one field of one record type.
func (t *Transformer) Value(recordType, field, value string) string {
	for _, a := range t.rules[recordType][field] {
		value = apply(value, a)
	}
	return value
}

// apply runs one compiled action. Parameters were checked by compile.
func apply(value string, a action) string {
	switch a.Type {

	// =========================================================================
	// STRING MANIPULATIONS
	// =========================================================================

	case "truncate":
		// Character count, not bytes: descriptions carry accents.
		n, _ := strconv.Atoi(a.Value)
		if utf8.RuneCountInString(value) <= n {
			return value
		}
		return string([]rune(value)[:n])

	case "trim":
		return strings.TrimSpace(value)

	case "trim_left":
		if a.Value != "" {
			return strings.TrimLeft(value, a.Value)
		}
		return strings.TrimLeft(value, " \t\n\r")

	case "trim_right":
		if a.Value != "" {
			return strings.TrimRight(value, a.Value)
		}
		return strings.TrimRight(value, " \t\n\r")

	case "uppercase":
		return strings.ToUpper(value)

	case "lowercase":
		return strings.ToLower(value)

	case "replace":
		if a.Find == "" {
			return value
		}
		return strings.ReplaceAll(value, a.Find, a.Value)

	case "regex_replace":
		if a.Find == "" {
			return value
		}
		return a.re.ReplaceAllString(value, a.Value)

	case "normalize_whitespace":
		return strings.Join(strings.Fields(value), " ")

	case "extract_digits":
		var b strings.Builder
		for _, c := range value {
			if c >= '0' && c <= '9' {
				b.WriteRune(c)
			}
		}
		return b.String()

	// =========================================================================
	// NUMERIC FORMATTING
	// =========================================================================

	case "pad_zeros_to_length":
		n, _ := strconv.Atoi(a.Value)
		return PadLeft(value, n, '0')

	case "ensure_length":
		// EXAMPLE: "12345678901234" with "10" gives "1234567890";
		// "123" with "10" gives "0000000123".
		n, _ := strconv.Atoi(a.Value)
		if utf8.RuneCountInString(value) > n {
			return string([]rune(value)[:n])
		}
		return PadLeft(value, n, '0')

	case "remove_leading_zeros":
		result := strings.TrimLeft(value, "0")
		if result == "" && value != "" {
			return "0"
		}
		return result

	case "format_number":
		// Ledger numbers use a decimal comma: "1234,5" with "2" gives "1234,50".
		if strings.TrimSpace(value) == "" {
			return value
		}
		places, _ := strconv.Atoi(a.Value)
		return record.FormatNumber(record.ParseNumber(value), int32(places))

	// =========================================================================
	// DATE CONVERSIONS
	// =========================================================================

	case "format_date":
		// VALUE FORMAT: "input_format|output_format", Go time layouts.
		// Ledger dates are "02012006" (DDMMYYYY).
		parts := strings.Split(a.Value, "|")
		parsed, err := time.Parse(strings.TrimSpace(parts[0]), value)
		if err != nil {
			return value
		}
		return parsed.Format(strings.TrimSpace(parts[1]))

	// =========================================================================
	// LOOKUPS AND DEFAULTS
	// =========================================================================

	case "lookup":
		if replacement, exists := a.LookupTable[value]; exists {
			return replacement
		}
		return value

	case "if_empty_use_default":
		if strings.TrimSpace(value) == "" {
			return a.Value
		}
		return value

	default:
		return value
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// PadLeft pads a string with a character on the left to reach the target length.
func PadLeft(s string, length int, padChar rune) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return strings.Repeat(string(padChar), length-n) + s
}
