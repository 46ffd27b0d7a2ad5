// Package frontend serves the dashboard client and a server-rendered
// read-only posts view.
//
// The dashboard itself is a static single-page app (embedded under
// static/); the /posts page is rendered server-side with post content
// displayed as sanitized Markdown.
package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"postboard/ui/service"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config holds frontend router configuration.
type Config struct {
	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
// Compatible with *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// router holds the frontend router state.
type router struct {
	svc    *service.Service
	config *Config
	tmpl   *template.Template
	static fs.FS
}

// NewRouter creates a new frontend router.
func NewRouter(svc *service.Service, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}

	tmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/*.html"))

	staticSub, _ := fs.Sub(staticFS, "static")

	r := &router{
		svc:    svc,
		config: cfg,
		tmpl:   tmpl,
		static: staticSub,
	}

	mux := http.NewServeMux()

	// Static assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// The dashboard SPA
	mux.HandleFunc("GET /{$}", r.handleIndex)

	// Server-rendered posts view
	mux.HandleFunc("GET /posts", r.handlePostsPage)

	return mux
}
