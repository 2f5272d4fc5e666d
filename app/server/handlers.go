package server

import (
	"net/http"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/appearance/app/enum"
	"github.com/umputun/appearance/app/store"
)

// handleCurrent returns the system appearance.
// GET /mode
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	mode, err := s.switcher.Current()
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to read mode")
		return
	}
	rest.RenderJSON(w, rest.JSON{"mode": mode})
}

// handleSet applies the mode from the path.
// PUT /mode/{mode}?method=command|event
func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	mode, err := enum.ParseModeInput(r.PathValue("mode"))
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid mode")
		return
	}

	method, err := s.method(r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid method")
		return
	}

	if err := s.switcher.Set(r.Context(), mode, method); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to set mode")
		return
	}

	log.Printf("[DEBUG] set %s with %s", mode, method)
	rest.RenderJSON(w, rest.JSON{"mode": mode})
}

// handleToggle switches dark to light and light to dark. Auto is left as is.
// POST /toggle?method=command|event
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	method, err := s.method(r)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid method")
		return
	}

	mode, err := s.switcher.Toggle(r.Context(), method)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to toggle mode")
		return
	}

	rest.RenderJSON(w, rest.JSON{"mode": mode, "changed": mode != enum.ModeAuto})
}

// handleHistory returns recent transitions, newest first.
// GET /history?limit=N
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, nil, "journal is not enabled")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid limit")
			return
		}
		limit = n
	}

	transitions, err := s.history.List(r.Context(), limit)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to list history")
		return
	}
	if transitions == nil {
		transitions = []store.Transition{}
	}
	rest.RenderJSON(w, transitions)
}

// method returns the method from ?method= or the configured default.
func (s *Server) method(r *http.Request) (enum.Method, error) {
	v := strings.ToLower(r.URL.Query().Get("method"))
	if v == "" {
		return s.cfg.Method, nil
	}
	return enum.ParseMethod(v)
}
