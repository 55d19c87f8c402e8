package api

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/strikeout/internal/ledger"
	"github.com/KirkDiggler/strikeout/internal/services/game"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 16

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Frame   int    `json:"frame,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON reads a JSON request body into dst, writing a 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_json", Message: err.Error()})
		return false
	}
	return true
}

// writeServiceError maps game service errors onto HTTP statuses
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var rollErr *ledger.RollError
	switch {
	case errors.As(err, &rollErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   "invalid_roll",
			Message: rollErr.Error(),
			Reason:  rollErr.Reason,
			Frame:   rollErr.Frame,
		})
	case errors.Is(err, game.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "game_not_found"})
	case errors.Is(err, game.ErrPlayerNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "player_not_found"})
	case errors.Is(err, game.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_input", Message: err.Error()})
	default:
		s.logger.Error().
			Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal_error"})
	}
}
