// Package web serves the protein analyzer UI: a single-field form, the
// analysis results, a composition bar chart and a small JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"mime"
	"net/http"
	"time"
	"unicode/utf8"

	"protein_analyzer_go/analyzer"
	"protein_analyzer_go/chart"
	"protein_analyzer_go/config"
	"protein_analyzer_go/report"
)

const shutdownTimeout = 5 * time.Second

// Server wires the analyzer, chart and report packages to HTTP handlers.
type Server struct {
	cfg    config.ServerConfig
	logger *slog.Logger
	mux    *http.ServeMux
}

func NewServer(cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/analyze", s.handleAPI)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	return s
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr, "max_chars", s.cfg.MaxChars)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type pageData struct {
	Title       string
	MaxChars    int
	Sequence    string
	Error       string
	Rows        []report.Row
	Composition []report.CompositionRow
	Chart       template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := pageData{
		Title:    s.cfg.Title,
		MaxChars: s.cfg.MaxChars,
		Sequence: r.FormValue("sequence"),
	}

	status := http.StatusOK
	if data.Sequence != "" {
		res, err := s.analyze(data.Sequence)
		if err != nil {
			status = http.StatusBadRequest
			data.Error = err.Error()
		} else {
			data.Rows = report.Rows(res)
			data.Composition = report.CompositionRows(res)
			svg, err := chart.CompositionSVG(res.Composition)
			if err != nil {
				s.logger.Error("chart rendering failed", "err", err)
			} else {
				data.Chart = template.HTML(svg)
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Execute(w, data); err != nil {
		s.logger.Error("page rendering failed", "err", err)
	}
}

type apiRequest struct {
	Sequence string `json:"sequence"`
}

type apiError struct {
	Error string `json:"error"`
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	var seq string
	switch r.Method {
	case http.MethodGet:
		seq = r.URL.Query().Get("sequence")
	case http.MethodPost:
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/json" {
			var req apiRequest
			body := http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxChars)*4+1024)
			if err := json.NewDecoder(body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, apiError{Error: "malformed JSON body"})
				return
			}
			seq = req.Sequence
		} else {
			seq = r.FormValue("sequence")
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}

	res, err := s.analyze(seq)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// analyze enforces the input cap before handing off to the analyzer.
func (s *Server) analyze(seq string) (*analyzer.Result, error) {
	if n := utf8.RuneCountInString(seq); n > s.cfg.MaxChars {
		return nil, fmt.Errorf("Sequence exceeds %d characters.", s.cfg.MaxChars)
	}
	return analyzer.Analyze(seq)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", time.Since(start),
		)
	})
}
