package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ginjaninja78/efd-contribuicoes/internal/editor"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdparser"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdwriter"
	"github.com/ginjaninja78/efd-contribuicoes/internal/projector"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/report"
	"github.com/ginjaninja78/efd-contribuicoes/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// documentResponse describes the loaded document.
type documentResponse struct {
	SessionID      uuid.UUID              `json:"sessionId"`
	Records        int                    `json:"records"`
	Stats          *parseStats            `json:"stats,omitempty"`
	Establishments []record.Establishment `json:"establishments"`
	Summaries      record.Summaries       `json:"summaries"`
}

type parseStats struct {
	Lines   int `json:"lines"`
	Skipped int `json:"skipped"`
	Unknown int `json:"unknown"`
	Orphans int `json:"orphans"`
}

// recordsResponse answers record edits.
type recordsResponse struct {
	Records   []*record.Record `json:"records"`
	Removed   int              `json:"removed,omitempty"`
	Summaries record.Summaries `json:"summaries"`
}

type addRequest struct {
	ParentID record.ID         `json:"parentId"`
	Fields   map[string]string `json:"fields"`
}

// =============================================================================
// DOCUMENT
// =============================================================================

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	res, err := efdparser.ParseReader(r.Context(), body, efdparser.Options{
		Registry:   s.opts.Registry,
		YieldEvery: s.opts.YieldEvery,
		Logger:     s.log,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc := res.Document
	s.session.Load(doc)
	s.log.WithField("session", doc.SessionID.String()).Info("Document loaded")

	writeJSON(w, http.StatusCreated, documentResponse{
		SessionID: doc.SessionID,
		Records:   doc.Records.Count(),
		Stats: &parseStats{
			Lines:   res.Stats.Lines,
			Skipped: res.Stats.Skipped,
			Unknown: res.Stats.Unknown,
			Orphans: res.Stats.Orphans,
		},
		Establishments: doc.Establishments(),
		Summaries:      doc.Summaries,
	})
}

func (s *Server) summaries(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc.Summaries)
}

func (s *Server) establishments(w http.ResponseWriter, r *http.Request) {
	doc, err := s.session.Current()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc.Establishments())
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, validation.NewValidator(s.opts.Registry).Check(doc.Records))
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.view(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	opts := efdwriter.Options{Registry: s.opts.Registry, Transformer: s.opts.Transformer, Prefix: s.opts.Prefix}
	if err := efdwriter.WriteTo(&buf, doc.Records, opts); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=windows-1252")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", efdwriter.FileName(doc.Records, s.opts.Prefix)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.view(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteTo(&buf, doc); err != nil {
		s.writeError(w, err)
		return
	}

	name := efdwriter.FileName(doc.Records, s.opts.Prefix)
	name = name[:len(name)-len(".txt")] + "_RESUMO.xlsx"

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// =============================================================================
// RECORDS
// =============================================================================

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.view(w, r)
	if !ok {
		return
	}
	recs := doc.Records[chi.URLParam(r, "key")]
	if recs == nil {
		recs = []*record.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) addRecord(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body: "+err.Error()))
		return
	}

	var added *record.Record
	doc, err := s.session.Update(func(doc *record.Document) (*record.Document, error) {
		next, rec, err := s.editor.Add(doc, chi.URLParam(r, "key"), req.ParentID, req.Fields)
		added = rec
		return next, err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordsResponse{Records: []*record.Record{added}, Summaries: doc.Summaries})
}

func (s *Server) upsertRecords(w http.ResponseWriter, r *http.Request) {
	var edits []*record.Record
	if err := json.NewDecoder(r.Body).Decode(&edits); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body: "+err.Error()))
		return
	}

	recordType := chi.URLParam(r, "key")
	doc, err := s.session.Update(func(doc *record.Document) (*record.Document, error) {
		return s.editor.Upsert(doc, recordType, edits)
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsResponse{Records: doc.Records[recordType], Summaries: doc.Summaries})
}

func (s *Server) batchRecords(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseID(r.URL.Query().Get("parentId"), true)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	text, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var added []*record.Record
	doc, err := s.session.Update(func(doc *record.Document) (*record.Document, error) {
		next, recs, err := s.editor.BatchAdd(doc, chi.URLParam(r, "key"), string(text), parentID)
		added = recs
		return next, err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if added == nil {
		added = []*record.Record{}
	}
	writeJSON(w, http.StatusCreated, recordsResponse{Records: added, Summaries: doc.Summaries})
}

func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "key"), false)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	var removed int
	doc, err := s.session.Update(func(doc *record.Document) (*record.Document, error) {
		next, n, err := s.editor.Delete(doc, id)
		removed = n
		return next, err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsResponse{Records: []*record.Record{}, Removed: removed, Summaries: doc.Summaries})
}

// =============================================================================
// HELPERS
// =============================================================================

// view returns the current document projected onto the establishment query
// parameter. On failure the error response is already written.
func (s *Server) view(w http.ResponseWriter, r *http.Request) (*record.Document, bool) {
	doc, err := s.session.Current()
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return projector.ProjectWith(doc, r.URL.Query().Get("establishment"), s.opts.Registry), true
}

func parseID(s string, optional bool) (record.ID, error) {
	if s == "" && optional {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return record.ID(n), nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNoDocument), errors.Is(err, editor.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, editor.ErrUnknownRecordType),
		errors.Is(err, editor.ErrBatchLayoutMissing),
		errors.Is(err, efdparser.ErrEmptyInput):
		status = http.StatusBadRequest
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	}

	if status == http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	writeJSON(w, status, errorBody(err.Error()))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
