package efdparser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/efd-contribuicoes/internal/efdtest"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"golang.org/x/text/encoding/charmap"
)

func parseSample(t *testing.T) *record.Document {
	t.Helper()
	doc, err := Parse(context.Background(), efdtest.Sample().Text())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\r\n\t"} {
		if _, err := Parse(context.Background(), in); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestParseBuildsHierarchy(t *testing.T) {
	doc := parseSample(t)
	reg := schema.Default()
	idx := doc.Records.Index()

	for _, r := range doc.Records.Flatten() {
		if r.Get("REG") != r.Type {
			t.Errorf("record %d: REG %q != type %q", r.ID, r.Get("REG"), r.Type)
		}
		if !r.HasParent() {
			continue
		}
		parent, ok := idx[r.ParentID]
		if !ok {
			t.Fatalf("record %s %d has a dangling parent", r.Type, r.ID)
		}
		if !reg.CanContain(parent.Type, r.Type) {
			t.Errorf("illegal pair %s -> %s", parent.Type, r.Type)
		}
	}

	docs := doc.Records["C100"]
	items := doc.Records["C170"]
	if len(docs) != 2 || len(items) != 2 {
		t.Fatalf("C100 = %d, C170 = %d", len(docs), len(items))
	}
	// A repeated parent type replaces its sibling on the stack.
	if items[0].ParentID != docs[0].ID || items[1].ParentID != docs[1].ID {
		t.Errorf("C170 parents not resolved to the preceding C100")
	}
	if docs[0].HasParent() {
		t.Errorf("C100 is top level")
	}
}

func TestParseEstablishments(t *testing.T) {
	doc := parseSample(t)

	tests := []struct {
		name   string
		record *record.Record
		want   string
	}{
		{"first 0140 owns itself", doc.Records["0140"][0], efdtest.HeadOffice},
		{"second 0140 owns itself", doc.Records["0140"][1], efdtest.Branch},
		{"first C010", doc.Records["C010"][0], efdtest.HeadOffice},
		{"first C100", doc.Records["C100"][0], efdtest.HeadOffice},
		{"first C170", doc.Records["C170"][0], efdtest.HeadOffice},
		{"second C100", doc.Records["C100"][1], efdtest.Branch},
		{"second C170", doc.Records["C170"][1], efdtest.Branch},
		{"C001 is structural", doc.Records["C001"][0], ""},
		{"C990 is structural", doc.Records["C990"][0], ""},
		{"0150 is global", doc.Records["0150"][0], ""},
		{"M200 is global", doc.Records["M200"][0], ""},
		{"0000 is global", doc.Records["0000"][0], ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.record.Establishment != tt.want {
				t.Errorf("establishment = %q, want %q", tt.record.Establishment, tt.want)
			}
		})
	}
}

func TestParseOriginOrder(t *testing.T) {
	doc := parseSample(t)
	if got := *doc.Records["0000"][0].OriginOrder; got != 0 {
		t.Errorf("0000 order = %d", got)
	}
	if got := *doc.Records["C170"][1].OriginOrder; got != 17 {
		t.Errorf("second C170 order = %d, want 17", got)
	}
}

func TestParseAttachesSummaries(t *testing.T) {
	doc := parseSample(t)
	if len(doc.Summaries.Inbound) != 1 || len(doc.Summaries.Outbound) != 1 {
		t.Fatalf("summaries = %+v", doc.Summaries)
	}
	if doc.Summaries.Outbound[0].CFOP != "5102" {
		t.Errorf("outbound CFOP = %s", doc.Summaries.Outbound[0].CFOP)
	}
	if len(doc.Summaries.Pis) != 12 {
		t.Errorf("pis rows = %d", len(doc.Summaries.Pis))
	}
}

func TestParseToleratesMalformedLines(t *testing.T) {
	text := strings.Join([]string{
		"garbage line",
		"|ZZZZ|unknown|",
		"|0001|0|",
		"|C170|1|ITEM|",
		"|0150|P1|NOME|01058|||||||||||extra|more|",
		"|0000|006\r",
	}, "\n")

	res, err := ParseWithOptions(context.Background(), text, Options{})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if res.Stats.Skipped != 1 || res.Stats.Unknown != 1 || res.Stats.Orphans != 1 || res.Stats.Records != 4 {
		t.Errorf("stats = %+v", res.Stats)
	}

	item := res.Document.Records["C170"][0]
	if item.HasParent() {
		t.Errorf("orphan C170 got a parent")
	}
	if item.Get("COD_ITEM") != "ITEM" || item.Get("CFOP") != "" {
		t.Errorf("missing fields should be empty: %v", item.Fields)
	}
	if _, ok := item.Fields["CFOP"]; !ok {
		t.Errorf("every layout field should be present")
	}

	part := res.Document.Records["0150"][0]
	if len(part.Fields) != len(schema.Default().Fields("0150")) {
		t.Errorf("extra tokens should be ignored: %v", part.Fields)
	}

	header := res.Document.Records["0000"][0]
	if header.Get("COD_VER") != "006" {
		t.Errorf("unterminated line: COD_VER = %q", header.Get("COD_VER"))
	}
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseWithOptions(ctx, efdtest.Sample().Text(), Options{YieldEvery: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestParseFileDecodesWindows1252(t *testing.T) {
	text := efdtest.NewBuilder().
		Add("0000", "NOME", "AÇÚCAR E CAFÉ LTDA", "CNPJ", efdtest.HeadOffice).
		Text()

	encoded, err := charmap.Windows1252.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	path := filepath.Join(t.TempDir(), "efd.txt")
	if err := os.WriteFile(path, []byte(encoded), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := ParseFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got := res.Document.Records["0000"][0].Get("NOME"); got != "AÇÚCAR E CAFÉ LTDA" {
		t.Errorf("NOME = %q", got)
	}
}
