// Package ui composes the JSON API, the dashboard frontend and the shared
// HTTP middleware into a single handler.
package ui

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"postboard/notifier"
	"postboard/ui/api"
	"postboard/ui/frontend"
	"postboard/ui/service"
)

// Handler returns the complete HTTP handler for the postboard server:
// the /api/* JSON endpoints, the embedded dashboard at /, the
// server-rendered posts view, a health endpoint, CORS and a catch-all
// panic boundary.
//
// The changes notifier may be nil; live updates are then disabled.
func Handler(svc *service.Service, changes *notifier.Notifier, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}

	mux := http.NewServeMux()

	mux.Handle("/api/", api.NewRouter(svc, changes, &api.Config{Logger: cfg.Logger}))
	mux.Handle("/", frontend.NewRouter(svc, &frontend.Config{Logger: cfg.Logger}))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return recoverer(cfg.Logger)(c.Handler(mux))
}
