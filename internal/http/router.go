package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/matches", handler.Matches)
	mux.HandleFunc("/api/matches/", handler.MatchSubroute)
	mux.HandleFunc("/api/categories", handler.Categories)
	mux.HandleFunc("/api/refresh", handler.Refresh)
	mux.HandleFunc("/api/locale", handler.Locale)
	return mux
}
