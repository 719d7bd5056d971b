package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/xrinput"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Session defines what the server needs from a running input session.
type Session interface {
	HandleAction(ev domain.ActionEvent) domain.Disposition
	HandleMouseMove(ev domain.MouseEvent) domain.Disposition
	Catalog() *catalog.Catalog
	Registration() *catalog.Result
}

// Server exposes a session over HTTP.
// Event ingestion is serialized so the dispatcher still sees one event at a time.
type Server struct {
	Session  Session
	Gatherer prometheus.Gatherer

	mu sync.Mutex
}

// ActionView is the JSON shape of one catalog entry.
type ActionView struct {
	domain.ActionSpec
	Handler  string `json:"handler"`
	Bimanual bool   `json:"bimanual"`
}

// EventRequest is the body of POST /events: either an action event or a mouse move.
type EventRequest struct {
	Action string             `json:"action,omitempty"`
	Hand   string             `json:"hand,omitempty"`
	Kind   string             `json:"kind,omitempty"`
	Value  float64            `json:"value,omitempty"`
	Mouse  *domain.MouseEvent `json:"mouse,omitempty"`
}

// EventResponse reports the disposition of an ingested event.
type EventResponse struct {
	Disposition domain.Disposition `json:"disposition"`
}

// NewHandler creates a new HTTP handler for the session.
// gatherer may be nil, in which case /metrics is not mounted.
func NewHandler(sess Session, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{Session: sess, Gatherer: gatherer}
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/catalog", s.GetCatalog)
	r.Get("/bindings", s.GetBindings)
	r.Post("/events", s.PostEvent)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":        "xrinput-http",
		"version":    strings.TrimSpace(xrinput.Version),
		"action_set": catalog.ActionSetName,
	})
}

// GetCatalog handles the GET /catalog request.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.Session.Catalog()
	specs := cat.Specs()
	views := make([]ActionView, 0, len(specs))
	for _, spec := range specs {
		views = append(views, ActionView{
			ActionSpec: spec,
			Handler:    cat.HandlerID(spec.Name),
			Bimanual:   spec.Bimanual(),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

// GetBindings handles the GET /bindings request.
func (s *Server) GetBindings(w http.ResponseWriter, r *http.Request) {
	res := s.Session.Registration()
	if res == nil {
		res = &catalog.Result{ActionSet: catalog.ActionSetName}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"action_set": res.ActionSet,
		"reused":     res.Reused,
		"created":    nonNil(res.Created),
		"skipped":    nonNil(res.Skipped),
	})
}

func nonNil(recs []domain.BindingRecord) []domain.BindingRecord {
	if recs == nil {
		return []domain.BindingRecord{}
	}
	return recs
}

// PostEvent handles the POST /events request.
func (s *Server) PostEvent(w http.ResponseWriter, r *http.Request) {
	var body EventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if body.Mouse != nil {
		writeJSON(w, http.StatusOK, EventResponse{Disposition: s.Session.HandleMouseMove(*body.Mouse)})
		return
	}

	if body.Action == "" {
		http.Error(w, "action or mouse is required", http.StatusBadRequest)
		return
	}
	hand, err := domain.ParseHand(body.Hand)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	disp := s.Session.HandleAction(domain.ActionEvent{
		Action: body.Action,
		Hand:   hand,
		Kind:   domain.ParseEventKind(body.Kind),
		Value:  body.Value,
	})
	writeJSON(w, http.StatusOK, EventResponse{Disposition: disp})
}
