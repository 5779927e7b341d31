// Package api exposes a read-only HTTP accessor over a running
// simulation's state, routed with github.com/go-chi/chi/v5 and narrowed to
// GET-only endpoints: this simulation's state only mutates inside a tick,
// never from an inbound request.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/talgya/econsim/internal/worldstate"
)

// Server serves a snapshot-in-time view of a simulation's state. State is
// swapped in atomically by the caller between ticks (SetState); handlers
// never mutate it.
type Server struct {
	mu    sync.RWMutex
	state *worldstate.State
}

// NewServer returns a Server with no state attached yet.
func NewServer() *Server {
	return &Server{}
}

// SetState atomically replaces the state the server reads from. Call this
// after each tick (or batch of ticks) from the tick loop goroutine.
func (s *Server) SetState(state *worldstate.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Server) snapshot() *worldstate.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Router builds the chi router (exported so cmd/econsim can wire it into
// an http.Server with its own timeouts).
func (s *Server) Router(logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(slogRequestLogger(logger))

	r.Get("/status", s.handleStatus)
	r.Get("/countries", s.handleCountries)
	r.Get("/countries/{id}", s.handleCountry)
	r.Get("/regions/{id}", s.handleRegion)
	r.Get("/factions/{id}", s.handleFaction)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	state := s.snapshot()
	if state == nil {
		writeError(w, http.StatusServiceUnavailable, "no simulation loaded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tick":      state.Tick,
		"startYear": state.StartYear,
		"countries": len(state.Countries),
		"regions":   len(state.Regions),
		"factions":  len(state.Factions),
	})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	state := s.snapshot()
	if state == nil {
		writeError(w, http.StatusServiceUnavailable, "no simulation loaded")
		return
	}
	writeJSON(w, http.StatusOK, state.Countries)
}

func (s *Server) handleCountry(w http.ResponseWriter, r *http.Request) {
	state := s.snapshot()
	if state == nil {
		writeError(w, http.StatusServiceUnavailable, "no simulation loaded")
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid country id")
		return
	}
	country, err := state.Country(worldstate.CountryID(id))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, country)
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	state := s.snapshot()
	if state == nil {
		writeError(w, http.StatusServiceUnavailable, "no simulation loaded")
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid region id")
		return
	}
	region, err := state.Region(worldstate.RegionID(id))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, region)
}

func (s *Server) handleFaction(w http.ResponseWriter, r *http.Request) {
	state := s.snapshot()
	if state == nil {
		writeError(w, http.StatusServiceUnavailable, "no simulation loaded")
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid faction id")
		return
	}
	faction, err := state.Faction(worldstate.FactionID(id))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, faction)
}

func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 32)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func slogRequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("http request", "method", r.Method, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
