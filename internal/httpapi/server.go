// Package httpapi exposes the stateless pipeline operations over HTTP:
// validation, plan rendering, the template catalog, and engine metrics.
package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xoaryaa/p2p/internal/presentation/plan"
	"github.com/xoaryaa/p2p/pkg/ir"
	"github.com/xoaryaa/p2p/pkg/templates"
	"github.com/xoaryaa/p2p/pkg/validate"
)

// ValidateResponse is the JSON body returned by POST /validate.
type ValidateResponse struct {
	Passed bool          `json:"passed"`
	Report []ReportEntry `json:"report"`
}

// ReportEntry is one diagnostic in a validation response.
type ReportEntry struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Server handles the HTTP surface. Bodies are graph documents in the
// same YAML format the CLI consumes.
type Server struct {
	logger *slog.Logger
}

// NewHandler builds the router. A nil gatherer falls back to the default
// Prometheus gatherer.
func NewHandler(logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Post("/validate", s.handleValidate)
	r.Post("/explain", s.handleExplain)
	r.Get("/templates/{task}", s.handleTemplate)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) *ir.Graph {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return nil
	}
	g, err := ir.Parse(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	return g
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	g := s.readGraph(w, r)
	if g == nil {
		return
	}

	passed, report := validate.Check(g)
	resp := ValidateResponse{Passed: passed, Report: make([]ReportEntry, 0, len(report))}
	for _, d := range report {
		resp.Report = append(resp.Report, ReportEntry{Status: string(d.Status), Message: d.Message})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode validate response", "err", err)
	}
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	g := s.readGraph(w, r)
	if g == nil {
		return
	}

	out, err := plan.ASCII(g)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, out)
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	task := chi.URLParam(r, "task")
	data, err := templates.Raw(task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(data)
}
