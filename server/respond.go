package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobmatch/webclient/api"
	"github.com/jobmatch/webclient/internal/errors"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// writeError maps a failure onto the response. Gateway errors keep their
// normalized shape and status; a transport failure that carried no status
// becomes a bad gateway.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var nerr *api.NormalizedError
	switch {
	case errors.As(err, &nerr):
		status := nerr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]string{"detail": nerr.Detail})
	case errors.Is(err, errors.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
	case errors.Is(err, errors.ErrNotAuthenticated):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
	}
}
