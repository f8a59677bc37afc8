// =============================================================================
// EFD Contribuicoes Toolkit - Ledger Parser
// =============================================================================
//
// This module turns the raw text of an EFD Contribuicoes file into a
// Document. The file is a flat list of pipe-delimited lines:
//
//   |0000|006|0|||01012024|31012024|EMPRESA|11111111000191|SP|...|
//   |C100|0|1|P001|55|00|1|123|...|
//   |C170|1|ITEM01||1|UN|100,00|...|
//
// The flat list hides a tree: a C170 belongs to the C100 that precedes it,
// and every record of blocks A, C, D, F, I and P belongs to the
// establishment declared by the nearest preceding X010 record.
//
// PARSING PROCESS:
//   1. Split the text into lines; only lines starting with '|' are records
//   2. Split on '|' and map the tokens onto the layout of the record type
//   3. Resolve the parent with an explicit stack of open parents
//   4. Resolve the establishment with a single "current establishment"
//   5. Stamp the zero-based line index as the record's origin order
//   6. Run the aggregator on the result
//
// ENCODING:
//   Ledger files are Windows-1252. ParseReader and ParseFile decode them;
//   Parse and ParseWithOptions expect text that is already decoded.
//
// =============================================================================

package efdparser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/ginjaninja78/efd-contribuicoes/internal/aggregator"
	"github.com/ginjaninja78/efd-contribuicoes/internal/logger"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrEmptyInput is returned when the input holds no text at all.
var ErrEmptyInput = errors.New("efd input is empty")

// =============================================================================
// OPTIONS
// =============================================================================

// Options configure a parse.
type Options struct {
	// Registry supplies layouts and parent/child rules.
	// Default: schema.Default()
	Registry *schema.Registry

	// YieldEvery is the number of lines between cooperative yields.
	// Default: 500
	YieldEvery int

	// Logger receives debug statistics. Default: discard.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the options used by Parse.
func DefaultOptions() Options {
	return Options{
		Registry:   schema.Default(),
		YieldEvery: 500,
		Logger:     logger.Discard(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Registry == nil {
		o.Registry = d.Registry
	}
	if o.YieldEvery <= 0 {
		o.YieldEvery = d.YieldEvery
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}

// =============================================================================
// RESULT
// =============================================================================

// Stats describe what the parser saw.
type Stats struct {
	// Lines is the number of lines in the input.
	Lines int

	// Records is the number of records produced.
	Records int

	// Skipped counts non-empty lines that do not start with '|'.
	Skipped int

	// Unknown counts record lines whose type has no layout.
	Unknown int

	// Orphans counts child-type records with no open parent.
	Orphans int
}

// Result is a parsed document with its statistics.
type Result struct {
	Document *record.Document
	Stats    Stats
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse parses decoded ledger text with the default options.
//
// RETURNS:
//   - The document, with summaries attached.
//   - ErrEmptyInput if the text is blank, or the context error if ctx is
//     cancelled while parsing.
func Parse(ctx context.Context, text string) (*record.Document, error) {
	res, err := ParseWithOptions(ctx, text, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return res.Document, nil
}

// ParseFile reads and decodes a Windows-1252 ledger file.
func ParseFile(ctx context.Context, filePath string, opts Options) (*Result, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(ctx, file, opts)
}

// ParseReader decodes a Windows-1252 stream and parses it.
func ParseReader(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	decoded := transform.NewReader(r, charmap.Windows1252.NewDecoder())
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return ParseWithOptions(ctx, string(data), opts)
}

// ParseWithOptions parses decoded ledger text.
//
// PARAMETERS:
//   - ctx: Checked at every yield point.
//   - text: The ledger text, already decoded.
//   - opts: Parser options; zero fields take their defaults.
//
// RETURNS:
//   - The parse result.
//   - ErrEmptyInput if the text is blank.
func ParseWithOptions(ctx context.Context, text string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	lines := strings.Split(text, "\n")
	st := &state{
		registry: opts.Registry,
		records:  record.Set{},
	}
	stats := Stats{Lines: len(lines)}

	for i, line := range lines {
		if i > 0 && i%opts.YieldEvery == 0 {
			runtime.Gosched()
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "|") {
			if strings.TrimSpace(line) != "" {
				stats.Skipped++
			}
			continue
		}

		tokens := splitLine(line)
		recordType := tokens[0]
		if !opts.Registry.Has(recordType) {
			stats.Unknown++
			continue
		}

		r, orphan := st.consume(recordType, tokens, i)
		if orphan {
			stats.Orphans++
		}
		st.records.Add(r)
		stats.Records++
	}

	summaries, err := aggregator.RecalculateContext(ctx, st.records, opts.Registry)
	if err != nil {
		return nil, err
	}

	doc := record.NewDocument(st.records)
	doc.Summaries = summaries

	opts.Logger.WithFields(logrus.Fields{
		"session": doc.SessionID.String(),
		"lines":   stats.Lines,
		"records": stats.Records,
		"skipped": stats.Skipped,
		"unknown": stats.Unknown,
		"orphans": stats.Orphans,
	}).Debug("parsed ledger")

	return &Result{Document: doc, Stats: stats}, nil
}

// splitLine splits a record line into tokens. The empty token before the
// leading '|' is dropped, and so is the empty token after a trailing '|'.
func splitLine(line string) []string {
	tokens := strings.Split(line, "|")[1:]
	if n := len(tokens); n > 1 && tokens[n-1] == "" {
		tokens = tokens[:n-1]
	}
	return tokens
}

// =============================================================================
// PARSER STATE
// =============================================================================

// state carries the parent stack and the establishment context across lines.
type state struct {
	registry *schema.Registry
	records  record.Set

	// stack holds the open parent candidates, innermost last.
	stack []*record.Record

	// block is the block letter of the previous record.
	block string

	// establishment is the tax ID declared by the last X010 of the block.
	establishment string
}

// consume builds the record for one line and updates the parser state.
// It reports whether the record is an orphan.
func (s *state) consume(recordType string, tokens []string, line int) (*record.Record, bool) {
	layout := s.registry.Fields(recordType)
	fields := make(map[string]string, len(layout))
	for idx, name := range layout {
		if idx < len(tokens) {
			fields[name] = tokens[idx]
		} else {
			fields[name] = ""
		}
	}

	r := record.New(recordType, fields)
	r.OriginOrder = record.Order(line)

	// Parent: pop until the top can contain this type.
	for len(s.stack) > 0 && !s.registry.CanContain(s.stack[len(s.stack)-1].Type, recordType) {
		s.stack = s.stack[:len(s.stack)-1]
	}
	if len(s.stack) > 0 {
		r.ParentID = s.stack[len(s.stack)-1].ID
	}
	orphan := !r.HasParent() && s.registry.IsChild(recordType)

	r.Establishment = s.establishmentFor(r)

	if s.registry.IsParent(recordType) {
		s.stack = append(s.stack, r)
	}

	return r, orphan
}

// establishmentFor updates the establishment context and returns the owner
// of the record.
func (s *state) establishmentFor(r *record.Record) string {
	block := schema.Block(r.Type)
	if block != s.block {
		s.establishment = ""
		s.block = block
	}

	switch {
	case r.Type == "0140":
		// The establishment register owns itself.
		return r.Get("CNPJ")

	case !schema.IsEstablishmentScoped(block):
		return ""

	case schema.IsEstablishmentOpener(r.Type):
		s.establishment = r.Get("CNPJ")
		return s.establishment

	case schema.IsStructural(r.Type):
		return ""

	default:
		return s.establishment
	}
}
