// =============================================================================
// EFD Contribuicoes Toolkit - HTTP Server
// =============================================================================
//
// The server keeps one ledger in memory and exposes it for review and
// editing. Every edit produces a new document with fresh summaries; views
// for one establishment are projected on each request and never stored.
//
// ROUTES:
//   GET    /health
//   POST   /document                          upload a Windows-1252 ledger
//   GET    /document/summaries?establishment=X
//   GET    /document/establishments
//   GET    /document/check?establishment=X
//   GET    /document/records/{key}            key is a record type
//   POST   /document/records/{key}            add one record
//   PUT    /document/records/{key}            upsert records of the type
//   POST   /document/records/{key}/batch      tab-separated rows
//   DELETE /document/records/{key}            key is a record ID; cascades
//   GET    /document/export?establishment=X   ledger attachment
//   GET    /document/report.xlsx?establishment=X
//
// =============================================================================

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ginjaninja78/efd-contribuicoes/internal/editor"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdwriter"
	"github.com/ginjaninja78/efd-contribuicoes/internal/logger"
	"github.com/ginjaninja78/efd-contribuicoes/internal/schema"
	"github.com/ginjaninja78/efd-contribuicoes/internal/transform"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// DefaultMaxUploadBytes caps uploads when Options leave it unset.
const DefaultMaxUploadBytes = 64 << 20

// Options configure a Server.
type Options struct {
	// Addr is the listen address. Default: ":8080"
	Addr string

	// Registry supplies record layouts. Default: schema.Default()
	Registry *schema.Registry

	// Transformer applies field corrections on export.
	// Default: transform.Default()
	Transformer *transform.Transformer

	// Prefix starts exported file names. Default: "EFD_CONTRIBUICOES"
	Prefix string

	// YieldEvery is passed to the parser. Default: 500
	YieldEvery int

	// MaxUploadBytes caps the size of an uploaded ledger.
	MaxUploadBytes int64

	// Logger receives request and error logs. Default: discard.
	Logger *logrus.Entry
}

// Server serves one document session over HTTP.
type Server struct {
	log        *logrus.Entry
	httpServer *http.Server
	session    *Session
	editor     *editor.Editor
	opts       Options
}

// New creates the server and its routes.
func New(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.Registry == nil {
		opts.Registry = schema.Default()
	}
	if opts.Transformer == nil {
		opts.Transformer = transform.Default()
	}
	if opts.Prefix == "" {
		opts.Prefix = efdwriter.DefaultPrefix
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	s := &Server{
		log:     opts.Logger,
		session: &Session{},
		editor:  editor.New(opts.Registry),
		opts:    opts,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/document", func(r chi.Router) {
		r.Post("/", s.upload)
		r.Get("/summaries", s.summaries)
		r.Get("/establishments", s.establishments)
		r.Get("/check", s.check)
		r.Get("/export", s.export)
		r.Get("/report.xlsx", s.report)

		r.Route("/records/{key}", func(r chi.Router) {
			r.Get("/", s.listRecords)
			r.Post("/", s.addRecord)
			r.Put("/", s.upsertRecords)
			r.Delete("/", s.deleteRecord)
			r.Post("/batch", s.batchRecords)
		})
	})

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("HTTP server started")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
