// =============================================================================
// EFD Contribuicoes Toolkit - Structure Checks
// =============================================================================
//
// This module inspects a record set and reports what would make the ledger
// unacceptable, or suspicious, to the receiving validator. It never changes
// the records and never fails: every finding is an Issue value.
//
// CHECKS:
//   Record-level:
//     - unknown_type      : no layout for the record type             (error)
//     - reg_mismatch      : REG field differs from the record type     (error)
//     - field_set         : fields missing from or foreign to layout   (warning)
//     - cnpj              : malformed tax ID on 0000, 0140 and X010    (warning)
//     - date              : malformed DT_INI / DT_FIN on 0000          (warning)
//   Tree-level:
//     - dangling_parent   : parent reference to a missing record       (error)
//     - illegal_pair      : parent type may not contain the child type (error)
//     - orphan            : child type with no parent                  (warning)
//   Ledger-level:
//     - counter           : stored counter differs from the recount    (warning)
//     - missing_9900      : record type present without a 9900 entry   (warning)
//     - movement_flag     : X001 IND_MOV contradicts the block content (warning)
//
// Counters are compared against the writer's recount, so a counter warning
// means the exported file will differ from the stored value, not that the
// export is broken.
//
// =============================================================================

package validation

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ginjaninja78/efd-contribuicoes/internal/efdwriter"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// ISSUE TYPES
// =============================================================================

// Issue is a single finding.
type Issue struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string `json:"severity"`

	// Rule names the check that fired.
	Rule string `json:"rule"`

	// RecordType and RecordID identify the record.
	RecordType string    `json:"record_type"`
	RecordID   record.ID `json:"record_id"`

	// Line is the one-based line of the record in the source file, or 0 for
	// records created after parsing.
	Line int `json:"line,omitempty"`

	// Field and Value point at the offending field, when there is one.
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (i *Issue) Error() string {
	where := fmt.Sprintf("%s #%d", i.RecordType, i.RecordID)
	if i.Line > 0 {
		where = fmt.Sprintf("%s (line %d)", i.RecordType, i.Line)
	}
	if i.Field != "" {
		return fmt.Sprintf("[%s] %s, Field '%s': %s (value: '%s')",
			strings.ToUpper(i.Severity), where, i.Field, i.Message, i.Value)
	}
	return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(i.Severity), where, i.Message)
}

// =============================================================================
// CHECK RESULT
// =============================================================================

// Result contains the findings of a check.
type Result struct {
	// IsValid is true if there are no errors. Warnings do not count.
	IsValid bool `json:"is_valid"`

	// Issues holds every finding in file order.
	Issues []*Issue `json:"issues"`

	// ErrorCount is the number of errors.
	ErrorCount int `json:"error_count"`

	// WarningCount is the number of warnings.
	WarningCount int `json:"warning_count"`

	// RecordsChecked is the number of records inspected.
	RecordsChecked int `json:"records_checked"`
}

func (r *Result) add(issue *Issue) {
	r.Issues = append(r.Issues, issue)
	if issue.Severity == SeverityError {
		r.ErrorCount++
	} else {
		r.WarningCount++
	}
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks record sets against a registry.
type Validator struct {
	registry *schema.Registry
}

// NewValidator creates a Validator. A nil registry means schema.Default().
func NewValidator(registry *schema.Registry) *Validator {
	if registry == nil {
		registry = schema.Default()
	}
	return &Validator{registry: registry}
}

// Check runs every check.
//
// PARAMETERS:
//   - records: The record set. It is not modified.
//
// RETURNS:
//   - The result; Issues are in the order the records would be written.
func (v *Validator) Check(records record.Set) *Result {
	result := &Result{}

	list := efdwriter.Arrange(records, v.registry)
	index := records.Index()
	result.RecordsChecked = len(list)

	for _, r := range list {
		v.checkRecord(result, r)
		v.checkParent(result, r, index)
	}

	v.checkCounters(result, efdwriter.Writable(list, v.registry))
	v.checkTypeCounters(result, records)
	v.checkMovementFlags(result, records)

	result.IsValid = result.ErrorCount == 0
	return result
}

// =============================================================================
// RECORD-LEVEL CHECKS
// =============================================================================

func (v *Validator) checkRecord(result *Result, r *record.Record) {
	layout := v.registry.Fields(r.Type)
	if layout == nil {
		result.add(newIssue(SeverityError, "unknown_type", r, "", "", "record type has no layout"))
		return
	}

	if reg, ok := r.Fields["REG"]; ok && reg != r.Type {
		result.add(newIssue(SeverityError, "reg_mismatch", r, "REG", reg, "REG does not match the record type"))
	}

	known := make(map[string]bool, len(layout))
	var missing []string
	for _, f := range layout {
		known[f] = true
		if _, ok := r.Fields[f]; !ok && f != "REG" {
			missing = append(missing, f)
		}
	}
	var foreign []string
	for f := range r.Fields {
		if !known[f] {
			foreign = append(foreign, f)
		}
	}
	sort.Strings(foreign)
	if len(missing) > 0 {
		result.add(newIssue(SeverityWarning, "field_set", r, strings.Join(missing, ","), "", "fields missing from the record are written empty"))
	}
	if len(foreign) > 0 {
		result.add(newIssue(SeverityWarning, "field_set", r, strings.Join(foreign, ","), "", "fields outside the layout are not written"))
	}

	if r.Type == "0000" || r.Type == "0140" || schema.IsEstablishmentOpener(r.Type) {
		if cnpj := r.Get("CNPJ"); !ValidCNPJ(cnpj) {
			result.add(newIssue(SeverityWarning, "cnpj", r, "CNPJ", cnpj, "not a valid CNPJ"))
		}
	}

	if r.Type == "0000" {
		for _, f := range []string{"DT_INI", "DT_FIN"} {
			if value := r.Get(f); !ValidDate(value) {
				result.add(newIssue(SeverityWarning, "date", r, f, value, "not a valid DDMMYYYY date"))
			}
		}
	}
}

// =============================================================================
// TREE-LEVEL CHECKS
// =============================================================================

func (v *Validator) checkParent(result *Result, r *record.Record, index map[record.ID]*record.Record) {
	if !r.HasParent() {
		if v.registry.IsChild(r.Type) {
			result.add(newIssue(SeverityWarning, "orphan", r, "", "",
				fmt.Sprintf("expected under one of %s", strings.Join(v.registry.Parents(r.Type), ", "))))
		}
		return
	}

	parent, ok := index[r.ParentID]
	if !ok {
		result.add(newIssue(SeverityError, "dangling_parent", r, "", "",
			fmt.Sprintf("parent #%d does not exist", r.ParentID)))
		return
	}
	if !v.registry.CanContain(parent.Type, r.Type) {
		result.add(newIssue(SeverityError, "illegal_pair", r, "", "",
			fmt.Sprintf("%s may not contain %s", parent.Type, r.Type)))
	}
}

// =============================================================================
// LEDGER-LEVEL CHECKS
// =============================================================================

// checkCounters compares every stored counter with the writer's recount.
func (v *Validator) checkCounters(result *Result, list []*record.Record) {
	recounted := efdwriter.RecomputeCounters(list)
	for i, r := range list {
		if recounted[i] == r {
			continue
		}
		for field, want := range recounted[i].Fields {
			if got := r.Get(field); got != want {
				result.add(newIssue(SeverityWarning, "counter", r, field, got,
					fmt.Sprintf("recount gives %s", want)))
			}
		}
	}
}

// checkTypeCounters reports record types that have no 9900 entry. Files
// without any 9900 record are not checked.
func (v *Validator) checkTypeCounters(result *Result, records record.Set) {
	if len(records["9900"]) == 0 {
		return
	}
	counted := make(map[string]bool)
	for _, r := range records["9900"] {
		counted[r.Get("REG_BLC")] = true
	}
	for _, t := range records.Types() {
		if len(records[t]) == 0 || counted[t] {
			continue
		}
		first := records[t][0]
		result.add(newIssue(SeverityWarning, "missing_9900", first, "", "",
			"record type has no 9900 entry and will not be counted"))
	}
}

// checkMovementFlags compares each X001 IND_MOV with the content of its
// block: "0" needs data, "1" forbids it.
func (v *Validator) checkMovementFlags(result *Result, records record.Set) {
	for _, block := range schema.MovementBlocks {
		opener := records.First(schema.OpenerType(block))
		if opener == nil {
			continue
		}

		hasData := false
		for t, recs := range records {
			if len(recs) > 0 && schema.Block(t) == block && !schema.IsStructural(t) {
				hasData = true
				break
			}
		}

		flag := opener.Get("IND_MOV")
		switch {
		case flag == "0" && !hasData:
			result.add(newIssue(SeverityWarning, "movement_flag", opener, "IND_MOV", flag, "block declares movement but has no records"))
		case flag == "1" && hasData:
			result.add(newIssue(SeverityWarning, "movement_flag", opener, "IND_MOV", flag, "block declares no movement but has records"))
		}
	}
}

// =============================================================================
// FIELD VALIDATORS
// =============================================================================

// ValidCNPJ reports whether s is a 14-digit CNPJ with correct check digits.
func ValidCNPJ(s string) bool {
	if len(s) != 14 {
		return false
	}
	digits := make([]int, 14)
	allSame := true
	for i, c := range s {
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	checkDigit := func(n int) int {
		sum, weight := 0, n-7
		for i := 0; i < n; i++ {
			sum += digits[i] * weight
			weight--
			if weight < 2 {
				weight = 9
			}
		}
		if r := sum % 11; r >= 2 {
			return 11 - r
		}
		return 0
	}

	return checkDigit(12) == digits[12] && checkDigit(13) == digits[13]
}

// ValidDate reports whether s is a DDMMYYYY date.
func ValidDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	_, err := time.Parse("02012006", s)
	return err == nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func newIssue(severity, rule string, r *record.Record, field, value, message string) *Issue {
	issue := &Issue{
		Severity:   severity,
		Rule:       rule,
		RecordType: r.Type,
		RecordID:   r.ID,
		Field:      field,
		Value:      value,
		Message:    message,
	}
	if r.OriginOrder != nil {
		issue.Line = *r.OriginOrder + 1
	}
	return issue
}

// =============================================================================
// ISSUE FORMATTING
// =============================================================================

// FormatIssues formats issues for display or logging.
func FormatIssues(issues []*Issue) string {
	if len(issues) == 0 {
		return "No issues found."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Check completed with %d issue(s):\n\n", len(issues)))

	for i, issue := range issues {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, issue.Error()))
	}

	return builder.String()
}

// WriteIssueLog writes issues to a file, with a header naming the source.
func WriteIssueLog(issues []*Issue, source, filePath string) error {
	var builder strings.Builder
	builder.WriteString("EFD Contribuicoes Check Log\n")
	builder.WriteString(fmt.Sprintf("Generated: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("Source: %s\n\n", source))
	builder.WriteString(FormatIssues(issues))

	if err := os.WriteFile(filePath, []byte(builder.String()), 0644); err != nil {
		return fmt.Errorf("failed to write issue log: %w", err)
	}
	return nil
}
