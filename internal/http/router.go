package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"chatlog/internal/handlers"
	"chatlog/internal/service"
	"chatlog/internal/vectorstore"
)

const healthPath = "/api/health"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService    service.ChatService
	DB             *sql.DB
	IndexStore     vectorstore.IndexStore // nil when the vector index is disabled
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(CORS(deps.AllowedOrigins))

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	exportHandler := handlers.NewExportHandler(deps.ChatService)

	healthHandler := handlers.NewHealthHandler(deps.DB, deps.IndexStore)

	r.Method(http.MethodGet, healthPath, healthHandler)

	r.Route("/api/chats", func(r chi.Router) {
		r.Get("/", chatHandler.ListChats)
		r.Post("/", chatHandler.CreateChat)
		r.Post("/batch-delete", chatHandler.BatchDelete)

		r.Route("/{chatID}", func(r chi.Router) {
			r.Get("/", chatHandler.GetChat)
			r.Patch("/", chatHandler.UpdateChat)
			r.Delete("/", chatHandler.DeleteChat)

			r.Get("/logs", chatHandler.ListLogs)
			r.Post("/logs", chatHandler.AppendLog)
			r.Post("/exchanges", chatHandler.RecordExchange)
			r.Method(http.MethodGet, "/export", exportHandler)
		})
	})

	return r
}
