package efdwriter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ginjaninja78/efd-contribuicoes/internal/efdparser"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdtest"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"golang.org/x/text/encoding/charmap"
)

func parse(t *testing.T, text string) *record.Document {
	t.Helper()
	doc, err := efdparser.Parse(context.Background(), text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func lines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// indexOf returns the position of the first line starting with prefix.
func indexOf(t *testing.T, ls []string, prefix string) int {
	t.Helper()
	for i, l := range ls {
		if strings.HasPrefix(l, prefix) {
			return i
		}
	}
	t.Fatalf("no line starts with %q", prefix)
	return -1
}

func contains(ls []string, line string) bool {
	for _, l := range ls {
		if l == line {
			return true
		}
	}
	return false
}

func TestExportRoundTrip(t *testing.T) {
	text := efdtest.Sample().Text()
	doc := parse(t, text)

	if got := Export(doc.Records); got != text {
		t.Errorf("round trip differs\n got:\n%s\nwant:\n%s", got, text)
	}
}

func TestExportRoundTripWithCRLF(t *testing.T) {
	text := efdtest.Sample().Text()
	doc := parse(t, strings.ReplaceAll(text, "\n", "\r\n"))

	if got := Export(doc.Records); got != text {
		t.Errorf("CRLF input should export with LF line endings")
	}
}

func TestExportRecomputesCountersAfterAdd(t *testing.T) {
	doc := parse(t, efdtest.Sample().Text())
	before := lines(Export(doc.Records))

	parent := doc.Records["C100"][1]
	item := record.New("C170", map[string]string{"NUM_ITEM": "2", "COD_ITEM": "ITEM02", "CFOP": "5102"})
	item.ParentID = parent.ID
	item.Establishment = parent.Establishment

	edited := doc.Records.Clone()
	edited.Add(item)
	after := lines(Export(edited))

	if len(after) != len(before)+1 {
		t.Fatalf("lines = %d, want %d", len(after), len(before)+1)
	}
	for _, want := range []string{
		"|C990|9|",
		"|9900|C170|3|",
		"|9990|34|",
		"|9999|68|",
	} {
		if !contains(after, want) {
			t.Errorf("missing %q", want)
		}
	}
	if !contains(before, "|C990|8|") || !contains(before, "|9999|67|") {
		t.Errorf("unexpected counters before the edit")
	}
	if doc.Records["C990"][0].Get("QTD_LIN_C") != "8" {
		t.Errorf("input counter record was modified")
	}
}

func TestExportRecomputesCountersAfterDelete(t *testing.T) {
	doc := parse(t, efdtest.Sample().Text())

	edited := doc.Records.Clone()
	edited["0150"] = edited["0150"][:1]
	out := lines(Export(edited))

	for _, want := range []string{"|0990|8|", "|9900|0150|1|", "|9999|66|"} {
		if !contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestExportPlacement(t *testing.T) {
	tests := []struct {
		name  string
		build func(doc *record.Document) []*record.Record
		// want maps a line prefix to its expected index in the output.
		want map[string]int
	}{
		{
			name: "child after its positioned parent's last descendant",
			build: func(doc *record.Document) []*record.Record {
				r := record.New("C170", map[string]string{"COD_ITEM": "NEW"})
				r.ParentID = doc.Records["C100"][0].ID
				r.Establishment = efdtest.HeadOffice
				return []*record.Record{r}
			},
			want: map[string]int{"|C170|1|ITEM01|": 14, "|C170||NEW|": 15, "|C010|" + efdtest.Branch: 16},
		},
		{
			name: "child without parent after the last family member",
			build: func(doc *record.Document) []*record.Record {
				return []*record.Record{record.New("C170", map[string]string{"COD_ITEM": "NEW"})}
			},
			want: map[string]int{"|C170|1|ITEM02|": 17, "|C170||NEW|": 18, "|C990|": 19},
		},
		{
			name: "top level record after its establishment's section",
			build: func(doc *record.Document) []*record.Record {
				r := record.New("C100", map[string]string{"NUM_DOC": "NEW"})
				r.Establishment = efdtest.HeadOffice
				return []*record.Record{r}
			},
			want: map[string]int{"|C100|": 13, "|C100|||||||NEW|": 15, "|C010|" + efdtest.Branch: 16},
		},
		{
			name: "global record before the block totalizer",
			build: func(doc *record.Document) []*record.Record {
				return []*record.Record{record.New("0150", map[string]string{"COD_PART": "P003"})}
			},
			want: map[string]int{"|0200|ITEM02|": 7, "|0150|P003|": 8, "|0990|10|": 9},
		},
		{
			name: "new parent and new child stay together in creation order",
			build: func(doc *record.Document) []*record.Record {
				head := record.New("C100", map[string]string{"NUM_DOC": "NEW"})
				head.Establishment = efdtest.HeadOffice
				item := record.New("C170", map[string]string{"COD_ITEM": "NEW"})
				item.ParentID = head.ID
				item.Establishment = efdtest.HeadOffice
				return []*record.Record{head, item}
			},
			want: map[string]int{"|C100|||||||NEW|": 15, "|C170||NEW|": 16, "|C010|" + efdtest.Branch: 17},
		},
		{
			name: "dangling parent falls back to the family",
			build: func(doc *record.Document) []*record.Record {
				r := record.New("C170", map[string]string{"COD_ITEM": "NEW"})
				r.ParentID = record.ID(1 << 60)
				return []*record.Record{r}
			},
			want: map[string]int{"|C170||NEW|": 18},
		},
		{
			name: "block without totalizer appends to the block",
			build: func(doc *record.Document) []*record.Record {
				delete(doc.Records, "P990")
				return []*record.Record{record.New("P100", map[string]string{"COD_ATIV_ECON": "NEW"})}
			},
			want: map[string]int{"|P001|": 29, "|P100|": 30, "|1001|": 31},
		},
		{
			name: "empty block goes before block 9",
			build: func(doc *record.Document) []*record.Record {
				delete(doc.Records, "P001")
				delete(doc.Records, "P990")
				return []*record.Record{record.New("P100", map[string]string{"COD_ATIV_ECON": "NEW"})}
			},
			want: map[string]int{"|1990|": 30, "|P100|": 31, "|9001|": 32},
		},
		{
			name: "empty block without block 9 goes to the end",
			build: func(doc *record.Document) []*record.Record {
				for _, recordType := range []string{"P001", "P990", "9001", "9900", "9990", "9999"} {
					delete(doc.Records, recordType)
				}
				return []*record.Record{record.New("P100", map[string]string{"COD_ATIV_ECON": "NEW"})}
			},
			want: map[string]int{"|1990|": 30, "|P100|": 31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, efdtest.Sample().Text())
			doc.Records = doc.Records.Clone()
			for _, r := range tt.build(doc) {
				doc.Records.Add(r)
			}

			out := lines(Export(doc.Records))
			for prefix, want := range tt.want {
				if got := indexOf(t, out, prefix); got != want {
					t.Errorf("%q at line %d, want %d", prefix, got, want)
				}
			}
		})
	}
}

func TestExportMultipleNewRecordsKeepCreationOrder(t *testing.T) {
	doc := parse(t, efdtest.Sample().Text())
	edited := doc.Records.Clone()
	for _, code := range []string{"P010", "P011", "P012"} {
		edited.Add(record.New("0150", map[string]string{"COD_PART": code}))
	}

	out := lines(Export(edited))
	a, b, c := indexOf(t, out, "|0150|P010|"), indexOf(t, out, "|0150|P011|"), indexOf(t, out, "|0150|P012|")
	if !(a < b && b < c) || c+1 != indexOf(t, out, "|0990|") {
		t.Errorf("new records out of order: %d %d %d", a, b, c)
	}
}

func TestExportSkipsUnknownTypes(t *testing.T) {
	doc := parse(t, efdtest.Sample().Text())
	edited := doc.Records.Clone()
	edited.Add(record.New("ZZZZ", map[string]string{"X": "1"}))

	if out := Export(edited); strings.Contains(out, "ZZZZ") {
		t.Errorf("unknown record type was written")
	}
}

func TestExportTruncatesDescrCompl(t *testing.T) {
	text := efdtest.NewBuilder().
		Add("A001", "IND_MOV", "0").
		Add("A010", "CNPJ", efdtest.HeadOffice).
		Add("A100", "IND_OPER", "1").
		Add("A170", "NUM_ITEM", "1", "DESCR_COMPL", strings.Repeat("SERVIÇO ", 10)).
		Add("A990").
		Text()
	doc := parse(t, text)

	out := lines(Export(doc.Records))
	fields := strings.Split(out[indexOf(t, out, "|A170|")], "|")
	if got := []rune(fields[4]); len(got) != 50 {
		t.Errorf("DESCR_COMPL has %d characters, want 50", len(got))
	}
	if len([]rune(doc.Records["A170"][0].Get("DESCR_COMPL"))) != 80 {
		t.Errorf("parsed record was modified")
	}
}

func TestFileName(t *testing.T) {
	doc := parse(t, efdtest.Sample().Text())
	if got, want := FileName(doc.Records, ""), "EFD_CONTRIBUICOES_"+efdtest.HeadOffice+"_01012024_31012024.txt"; got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
	if got, want := FileName(record.Set{}, "X"), "X_CNPJ_NAO_ENCONTRADO_DATA_INI_DATA_FIN.txt"; got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestWriteToEncodesWindows1252(t *testing.T) {
	text := efdtest.NewBuilder().Add("0000", "NOME", "JOÃO & FILHOS", "CNPJ", efdtest.HeadOffice).Text()
	doc := parse(t, text)

	var buf bytes.Buffer
	if err := WriteTo(&buf, doc.Records, Options{}); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("Ã")) {
		t.Errorf("output is not Windows-1252")
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != text {
		t.Errorf("decoded output differs:\n%s", decoded)
	}
}
