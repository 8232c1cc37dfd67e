package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// MountHandlers exposes liveness and the metrics scrape endpoint.
func (s *Server) MountHandlers(metrics http.Handler) {
	s.mux.Get("/healthz", healthz)
	s.Mount("/metrics", metrics)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		log.Error().Err(err).Msg("write healthz body failed")
	}
}
