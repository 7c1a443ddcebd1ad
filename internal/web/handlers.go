package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
)

// createRunRequest is the POST /api/runs body: a start and pattern cube in
// CFEN notation, plus an optional move subset (defaults to all 21 moves).
type createRunRequest struct {
	Start   string   `json:"start"`
	Pattern string   `json:"pattern"`
	Moves   []string `json:"moves,omitempty"`
}

type createRunResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start, err := cfen.Parse(req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pattern, err := cfen.Parse(req.Pattern)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	allowed := cube.AllMoves
	if len(req.Moves) > 0 {
		allowed, err = cube.ParseMoves(joinMoves(req.Moves))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	if missing := cube.MissingColors(start, pattern); len(missing) > 0 {
		writeError(w, http.StatusUnprocessableEntity, missingColorsError{missing})
		return
	}

	// The run outlives this request: its context is not r.Context(), which
	// is cancelled as soon as the handler returns.
	id := s.runs.start(context.Background(), start, pattern, allowed)
	s.logger.Info().Str("run_id", id).Msg("run started")
	writeJSON(w, http.StatusCreated, createRunResponse{ID: id})
}

func joinMoves(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}

type missingColorsError struct {
	colors []cube.Color
}

func (e missingColorsError) Error() string {
	s := "start cube lacks the colors the pattern requires:"
	for _, c := range e.colors {
		s += " " + c.String()
	}
	return s
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wireSearchResult is the JSON shape streamed over the websocket: a depth
// marker carries Depth and no Algorithm; a solution carries both Depth
// (its length) and Algorithm.
type wireSearchResult struct {
	Kind      string `json:"kind"`
	Depth     int    `json:"depth"`
	Algorithm string `json:"algorithm,omitempty"`
}

func (s *Server) handleStreamRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	run, ok := s.runs.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, errRunNotFound(id))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Str("run_id", id).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ch := run.subscribe()
	defer run.unsubscribe(ch)

	for result := range ch {
		msg := wireSearchResult{Depth: result.Depth}
		if result.Algorithm != nil {
			msg.Kind = "algorithm"
			msg.Depth = len(result.Algorithm)
			msg.Algorithm = cube.FormatMoves(result.Algorithm)
		} else {
			msg.Kind = "depth"
		}
		if err := conn.WriteJSON(msg); err != nil {
			// The consumer dropped the socket: cancel the run's context is
			// not our call here (other subscribers may remain), just stop
			// writing to this connection.
			return
		}
	}
}

type errRunNotFound string

func (e errRunNotFound) Error() string { return "run not found: " + string(e) }

func (s *Server) handleListSolutions(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := s.runs.get(id); !ok {
		writeError(w, http.StatusNotFound, errRunNotFound(id))
		return
	}
	if s.runs.st == nil {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}

	solutions, err := s.runs.st.ListSolutions(id, 100, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, solutions)
}

func (s *Server) handleCancelRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !s.runs.cancelRun(id) {
		writeError(w, http.StatusNotFound, errRunNotFound(id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
