package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"chatlog/internal/contextutil"
	"chatlog/internal/storage"
	"chatlog/internal/vectorstore"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db                 *sql.DB
	indexStore         vectorstore.IndexStore // nil when the vector index is disabled
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. indexStore may be nil.
func NewHealthHandler(db *sql.DB, indexStore vectorstore.IndexStore) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		indexStore:         indexStore,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// Database counters, present when the database is reachable
	Stats *StatsResponse `json:"stats,omitempty"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// StatsResponse holds database counters.
type StatsResponse struct {
	Chats     int64 `json:"chats"`
	Logs      int64 `json:"logs"`
	SizeBytes int64 `json:"sizeBytes"`
}

// ServeHTTP handles GET /api/health.
//
// Returns 200 when the database answers. A failing vector store only
// degrades the status since chat persistence does not depend on it.
// Returns 503 when the database is unreachable.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string
	response := HealthResponse{}

	stats, err := h.checkDatabase(checkCtx, logger)
	if err != nil {
		checks["database"] = "error"
		issues = append(issues, "database_unavailable")
	} else {
		checks["database"] = "ok"
		response.Stats = &StatsResponse{
			Chats:     stats.ChatCount,
			Logs:      stats.LogCount,
			SizeBytes: stats.SizeBytes,
		}
	}

	vectorOK := true
	if h.indexStore == nil {
		checks["vector_store"] = "disabled"
	} else if err := h.indexStore.Health(checkCtx); err != nil {
		logger.WarnContext(ctx, "vector store health check failed", "error", err)
		checks["vector_store"] = "error"
		issues = append(issues, "vector_store_unavailable")
		vectorOK = false
	} else {
		checks["vector_store"] = "ok"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	switch {
	case checks["database"] != "ok":
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case !vectorOK:
		status = "degraded"
	}

	response.Status = status
	response.Timestamp = time.Now().UTC().Format(time.RFC3339)
	response.Checks = checks
	if len(issues) > 0 {
		response.Issues = issues
	}

	writeJSON(w, ctx, httpStatus, response)
}

// checkDatabase pings the database and reads its counters.
func (h *HealthHandler) checkDatabase(ctx context.Context, logger *slog.Logger) (storage.Stats, error) {
	if err := h.db.PingContext(ctx); err != nil {
		logger.WarnContext(ctx, "database health check failed", "error", err)
		return storage.Stats{}, err
	}
	stats, err := storage.GetStats(ctx, h.db)
	if err != nil {
		logger.WarnContext(ctx, "failed to read database stats", "error", err)
		return storage.Stats{}, err
	}
	return stats, nil
}
