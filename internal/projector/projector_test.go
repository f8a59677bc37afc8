package projector

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/ginjaninja78/efd-contribuicoes/internal/efdparser"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdtest"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
)

func parse(t *testing.T, b *efdtest.Builder) *record.Document {
	t.Helper()
	doc, err := efdparser.Parse(context.Background(), b.Text())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func ids(s record.Set) map[record.ID]string {
	out := make(map[record.ID]string)
	for _, r := range s.Flatten() {
		out[r.ID] = r.Get("IND_MOV")
	}
	return out
}

func TestProjectAllKeepsRecords(t *testing.T) {
	doc := parse(t, efdtest.Sample())
	view := Project(doc, AllEstablishments)

	if view.Records.Count() != doc.Records.Count() {
		t.Fatalf("all view has %d records, want %d", view.Records.Count(), doc.Records.Count())
	}
	if view.SessionID != doc.SessionID {
		t.Errorf("projection should keep the session")
	}
	if len(view.Summaries.Inbound) != 1 || len(view.Summaries.Outbound) != 1 {
		t.Errorf("summaries not recomputed: %+v", view.Summaries)
	}
}

func TestProjectTwoEstablishments(t *testing.T) {
	doc := parse(t, efdtest.Sample())
	before := doc.Records.Count()

	head := Project(doc, efdtest.HeadOffice)

	if n := len(head.Records["C100"]); n != 1 {
		t.Fatalf("head office C100 = %d, want 1", n)
	}
	if n := len(head.Records["C170"]); n != 1 {
		t.Fatalf("head office C170 = %d, want 1", n)
	}
	if got := head.Records["C010"]; len(got) != 1 || got[0].Get("CNPJ") != efdtest.HeadOffice {
		t.Errorf("head office C010 = %v", got)
	}
	if got := head.Records["0140"]; len(got) != 1 || got[0].Get("CNPJ") != efdtest.HeadOffice {
		t.Errorf("head office 0140 = %v", got)
	}
	if got := head.Records["0150"]; len(got) != 1 || got[0].Get("COD_PART") != "P001" {
		t.Errorf("head office 0150 = %v", got)
	}
	if got := head.Records["0200"]; len(got) != 1 || got[0].Get("COD_ITEM") != "ITEM01" {
		t.Errorf("head office 0200 = %v", got)
	}
	if len(head.Records["M200"]) != 1 || len(head.Records["0000"]) != 1 || len(head.Records["C990"]) != 1 {
		t.Errorf("global and structural records must be kept")
	}
	if len(head.Summaries.Inbound) != 1 || len(head.Summaries.Outbound) != 0 {
		t.Errorf("head office summaries = %+v", head.Summaries)
	}

	branch := Project(doc, efdtest.Branch)
	if got := branch.Records["0150"]; len(got) != 1 || got[0].Get("COD_PART") != "P002" {
		t.Errorf("branch 0150 = %v", got)
	}
	if len(branch.Summaries.Inbound) != 0 || len(branch.Summaries.Outbound) != 1 {
		t.Errorf("branch summaries = %+v", branch.Summaries)
	}

	if doc.Records.Count() != before || len(doc.Records["C100"]) != 2 {
		t.Errorf("source document was modified")
	}
}

func TestProjectMovementFlags(t *testing.T) {
	b := efdtest.NewBuilder().
		Add("0000", "CNPJ", efdtest.HeadOffice).
		Add("0001", "IND_MOV", "0").
		Add("0140", "CNPJ", efdtest.HeadOffice).
		Add("0140", "CNPJ", efdtest.Branch).
		Add("0990").
		Add("A001", "IND_MOV", "1").
		Add("A990").
		Add("C001", "IND_MOV", "0").
		Add("C010", "CNPJ", efdtest.Branch).
		Add("C100", "IND_OPER", "1").
		Add("C990").
		Add("F001", "IND_MOV", "1").
		Add("F010", "CNPJ", efdtest.HeadOffice).
		Add("F100", "IND_OPER", "0", "VL_OPER", "10,00").
		Add("F990")
	doc := parse(t, b)

	head := Project(doc, efdtest.HeadOffice)

	if got := head.Records["C001"][0].Get("IND_MOV"); got != "1" {
		t.Errorf("C001 IND_MOV = %q, want 1 (no head office data in C)", got)
	}
	if got := head.Records["F001"][0].Get("IND_MOV"); got != "0" {
		t.Errorf("F001 IND_MOV = %q, want 0 (head office has F100)", got)
	}
	if got := head.Records["A001"][0].Get("IND_MOV"); got != "1" {
		t.Errorf("A001 IND_MOV = %q, want 1", got)
	}
	if doc.Records["C001"][0].Get("IND_MOV") != "0" || doc.Records["F001"][0].Get("IND_MOV") != "1" {
		t.Errorf("source openers were modified")
	}
	if head.Records["C001"][0].ID != doc.Records["C001"][0].ID {
		t.Errorf("opener clone should keep its ID")
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	doc := parse(t, efdtest.Sample())

	for _, est := range []string{efdtest.HeadOffice, efdtest.Branch, "99999999000199"} {
		t.Run(est, func(t *testing.T) {
			once := Project(doc, est)
			twice := Project(once, est)
			if !reflect.DeepEqual(ids(once.Records), ids(twice.Records)) {
				t.Errorf("second projection changed the record set")
			}
			if !reflect.DeepEqual(once.Summaries, twice.Summaries) {
				t.Errorf("second projection changed the summaries")
			}
		})
	}
}

func TestProjectDropsChildrenOfUnusedItems(t *testing.T) {
	text := strings.Replace(efdtest.Sample().Text(), "\n|0990|", "\n|0205|OLD-ITEM02|||\n|0990|", 1)
	doc, err := efdparser.Parse(context.Background(), text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := len(doc.Records["0205"]); n != 1 {
		t.Fatalf("0205 = %d, want 1", n)
	}

	head := Project(doc, efdtest.HeadOffice)
	if got := head.Records["0205"]; len(got) != 0 {
		t.Errorf("0205 of ITEM02 should follow its item out of the head office view: %v", got)
	}
	if !reflect.DeepEqual(ids(Project(head, efdtest.HeadOffice).Records), ids(head.Records)) {
		t.Errorf("projection should be idempotent")
	}

	branch := Project(doc, efdtest.Branch)
	items := branch.Records["0200"]
	if len(items) != 1 || items[0].Get("COD_ITEM") != "ITEM02" {
		t.Fatalf("branch 0200 = %v", items)
	}
	if got := branch.Records["0205"]; len(got) != 1 || got[0].ParentID != items[0].ID {
		t.Errorf("branch 0205 = %v, want one child of ITEM02", got)
	}
}
