package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ginjaninja78/efd-contribuicoes/internal/efdtest"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(Options{}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, contentType string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func upload(t *testing.T, ts *httptest.Server) documentResponse {
	t.Helper()
	resp := do(t, http.MethodPost, ts.URL+"/document", "text/plain", []byte(efdtest.Sample().Text()))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}
	var out documentResponse
	decode(t, resp, &out)
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestNoDocument(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/document/summaries", "/document/establishments", "/document/export", "/document/records/C100"} {
		if resp := do(t, http.MethodGet, ts.URL+path, "", nil); resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t)
	doc := upload(t, ts)

	if doc.Records != 67 || len(doc.Establishments) != 2 {
		t.Errorf("upload = %+v", doc)
	}
	if len(doc.Summaries.Inbound) != 1 || len(doc.Summaries.Outbound) != 1 {
		t.Errorf("summaries = %+v", doc.Summaries)
	}

	resp := do(t, http.MethodPost, ts.URL+"/document", "text/plain", []byte("\n\n"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank upload = %d, want 400", resp.StatusCode)
	}
}

func TestUploadDecodesWindows1252(t *testing.T) {
	ts := newTestServer(t)
	text := strings.Replace(efdtest.Sample().Text(), "FORNECEDOR UM", "FORNECEDOR AÇÃO", 1)
	encoded, err := charmap.Windows1252.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	do(t, http.MethodPost, ts.URL+"/document", "text/plain", []byte(encoded))

	var recs []*record.Record
	decode(t, do(t, http.MethodGet, ts.URL+"/document/records/0150", "", nil), &recs)
	if len(recs) != 2 || recs[0].Get("NOME") != "FORNECEDOR AÇÃO" {
		t.Errorf("0150 = %+v", recs)
	}
}

func TestSummariesByEstablishment(t *testing.T) {
	ts := newTestServer(t)
	upload(t, ts)

	var s record.Summaries
	decode(t, do(t, http.MethodGet, ts.URL+"/document/summaries?establishment="+efdtest.HeadOffice, "", nil), &s)
	if len(s.Inbound) != 1 || len(s.Outbound) != 0 {
		t.Errorf("head office summaries = %+v", s)
	}

	decode(t, do(t, http.MethodGet, ts.URL+"/document/summaries?establishment=all", "", nil), &s)
	if len(s.Inbound) != 1 || len(s.Outbound) != 1 {
		t.Errorf("all summaries = %+v", s)
	}
}

func TestRecordEdits(t *testing.T) {
	ts := newTestServer(t)
	upload(t, ts)

	var c100 []*record.Record
	decode(t, do(t, http.MethodGet, ts.URL+"/document/records/C100", "", nil), &c100)
	if len(c100) != 2 {
		t.Fatalf("C100 = %d", len(c100))
	}

	// Add an item to the outbound document.
	body, _ := json.Marshal(addRequest{ParentID: c100[1].ID, Fields: map[string]string{
		"NUM_ITEM": "2", "COD_ITEM": "ITEM02", "VL_ITEM": "50,00", "CFOP": "5102",
		"CST_PIS": "01", "ALIQ_PIS": "1,65", "CST_COFINS": "01", "ALIQ_COFINS": "7,60",
	}})
	resp := do(t, http.MethodPost, ts.URL+"/document/records/C170", "application/json", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status = %d", resp.StatusCode)
	}
	var added recordsResponse
	decode(t, resp, &added)
	if len(added.Records) != 1 || added.Records[0].Establishment != efdtest.Branch {
		t.Errorf("added = %+v", added.Records)
	}
	if added.Summaries.Outbound[0].Items != 2 {
		t.Errorf("outbound items = %d", added.Summaries.Outbound[0].Items)
	}

	// Rename a participant.
	var parts []*record.Record
	decode(t, do(t, http.MethodGet, ts.URL+"/document/records/0150", "", nil), &parts)
	body, _ = json.Marshal([]*record.Record{{ID: parts[0].ID, Fields: map[string]string{"NOME": "NOVO NOME"}}})
	resp = do(t, http.MethodPut, ts.URL+"/document/records/0150", "application/json", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upsert status = %d", resp.StatusCode)
	}
	var upserted recordsResponse
	decode(t, resp, &upserted)
	if upserted.Records[0].Get("NOME") != "NOVO NOME" {
		t.Errorf("upserted = %+v", upserted.Records[0])
	}

	// Delete the outbound document and its two items.
	resp = do(t, http.MethodDelete, fmt.Sprintf("%s/document/records/%d", ts.URL, c100[1].ID), "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	var deleted recordsResponse
	decode(t, resp, &deleted)
	if deleted.Removed != 3 || len(deleted.Summaries.Outbound) != 0 {
		t.Errorf("deleted = %+v", deleted)
	}

	if resp := do(t, http.MethodDelete, ts.URL+"/document/records/99999999999", "", nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("delete missing = %d, want 404", resp.StatusCode)
	}
	if resp := do(t, http.MethodDelete, ts.URL+"/document/records/C100", "", nil); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("delete by type = %d, want 400", resp.StatusCode)
	}
	if resp := do(t, http.MethodPut, ts.URL+"/document/records/ZZZZ", "application/json", []byte("[]")); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown type = %d, want 400", resp.StatusCode)
	}
	if resp := do(t, http.MethodPut, ts.URL+"/document/records/0150", "application/json", []byte("{")); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad JSON = %d, want 400", resp.StatusCode)
	}
}

func TestBatchAndExport(t *testing.T) {
	ts := newTestServer(t)
	upload(t, ts)

	resp := do(t, http.MethodPost, ts.URL+"/document/records/F010/batch", "text/plain", []byte(efdtest.HeadOffice))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("batch F010 = %d", resp.StatusCode)
	}
	row := "0\tP001\tITEM01\t15012024\t10,00" + strings.Repeat("\t", 14) + efdtest.HeadOffice
	resp = do(t, http.MethodPost, ts.URL+"/document/records/F100/batch", "text/plain", []byte(row))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("batch F100 = %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodPost, ts.URL+"/document/records/C170/batch", "text/plain", []byte("x")); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("batch without layout = %d, want 400", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, ts.URL+"/document/export?establishment="+efdtest.HeadOffice, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export = %d", resp.StatusCode)
	}
	want := `attachment; filename="EFD_CONTRIBUICOES_` + efdtest.HeadOffice + `_01012024_31012024.txt"`
	if got := resp.Header.Get("Content-Disposition"); got != want {
		t.Errorf("Content-Disposition = %q", got)
	}

	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	text := buf.String()
	for _, line := range []string{"|F001|0|", "|F990|4|", "|C990|5|"} {
		if !strings.Contains(text, line+"\n") {
			t.Errorf("export missing %s:\n%s", line, text)
		}
	}
}

func TestReportAndCheck(t *testing.T) {
	ts := newTestServer(t)
	upload(t, ts)

	resp := do(t, http.MethodGet, ts.URL+"/document/report.xlsx", "", nil)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != xlsxContentType {
		t.Fatalf("report = %d %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	f, err := excelize.OpenReader(resp.Body)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	if len(f.GetSheetList()) != 5 {
		t.Errorf("sheets = %v", f.GetSheetList())
	}

	var check struct {
		IsValid bool `json:"is_valid"`
	}
	decode(t, do(t, http.MethodGet, ts.URL+"/document/check", "", nil), &check)
	if !check.IsValid {
		t.Errorf("sample should pass the check")
	}
}

func TestUploadTooLarge(t *testing.T) {
	ts := httptest.NewServer(New(Options{MaxUploadBytes: 16}).Handler())
	defer ts.Close()

	resp := do(t, http.MethodPost, ts.URL+"/document", "text/plain", []byte(efdtest.Sample().Text()))
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", resp.StatusCode)
	}
}
