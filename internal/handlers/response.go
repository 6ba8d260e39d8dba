package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"chatlog/internal/contextutil"
	"chatlog/internal/service"
	"chatlog/internal/storage"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChatResponse is the HTTP representation of a chat.
type ChatResponse struct {
	ChatID         int64  `json:"chatId"`
	ChatName       string `json:"chatName"`
	WatchingFolder string `json:"watchingFolder"`
	DBPath         string `json:"dbPath"`
	LLMType        string `json:"llmType"`
	LLMArgs        string `json:"llmArgs"`
}

// LogResponse is the HTTP representation of a chat log.
type LogResponse struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chatId"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
}

func toChatResponse(c storage.ChatInfo) ChatResponse {
	return ChatResponse{
		ChatID:         c.ChatID,
		ChatName:       c.ChatName,
		WatchingFolder: c.WatchingFolder,
		DBPath:         c.DBPath,
		LLMType:        c.LLMType,
		LLMArgs:        c.LLMArgs,
	}
}

func toLogResponses(logs []storage.ChatLog) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, LogResponse{
			ID:        l.ID,
			ChatID:    l.ChatID,
			Message:   l.Message,
			Sender:    l.Sender,
			CreatedAt: l.CreatedAt,
		})
	}
	return out
}

// chatIDParam reads the {chatID} route parameter.
func chatIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "chatID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid chat id %q", raw)
	}
	return id, nil
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, ctx context.Context, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// errorStatus maps a service error to the status code and message sent to the client.
// Anything unrecognised becomes a 500 carrying defaultMsg, never the error text.
func errorStatus(err error, defaultMsg string) (int, string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error())
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Chat not found"
	// Appending to a chat that no longer exists.
	case errors.Is(err, service.ErrForeignKeyViolation):
		return http.StatusNotFound, "Chat not found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Request timed out"
	default:
		return http.StatusInternalServerError, defaultMsg
	}
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	status, msg := errorStatus(err, defaultMsg)
	logServiceError(ctx, status, err)
	writeError(w, status, msg)
}

func logServiceError(ctx context.Context, status int, err error) {
	logger := contextutil.LoggerFromContext(ctx)
	switch status {
	case http.StatusBadRequest:
		logger.WarnContext(ctx, "validation failed", "error", err)
	case http.StatusGatewayTimeout:
		logger.WarnContext(ctx, "request timed out", "error", err)
	case http.StatusInternalServerError:
		logger.ErrorContext(ctx, "service error", "error", err)
	}
}
