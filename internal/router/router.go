package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"advanced-ai/internal/handlers"
	"advanced-ai/internal/middleware"
	"advanced-ai/internal/web"
)

// New wires the relay's HTTP surface. POST on any path is a chat request;
// every other method on any path gets the HTML shell, except the health
// check and the static bundle.
func New(
	chatHandler *handlers.ChatHandler,
	shellHandler *handlers.ShellHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Client bundle ────
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	// ──── Chat relay ────
	r.Post("/chat", chatHandler.Chat)
	r.Post("/*", chatHandler.Chat)

	// ──── HTML shell ────
	r.Get("/", shellHandler.Serve)
	r.NotFound(shellHandler.Serve)
	r.MethodNotAllowed(shellHandler.Serve)

	return r
}
