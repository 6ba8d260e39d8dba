package handlers

import (
	"net/http"
	"strconv"

	"chatlog/internal/contextutil"
	"chatlog/internal/service"
	"chatlog/internal/storage"
)

// AppendLogRequest represents the HTTP request payload for appending a log.
type AppendLogRequest struct {
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// ExchangeRequest represents a user message and the reply to it.
type ExchangeRequest struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
}

// ListLogs handles GET /api/chats/{chatID}/logs.
// With ?limit=n only the newest n logs are returned, newest first.
func (h *ChatHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chatID, err := chatIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		logs, err := h.chatService.RecentLogs(ctx, chatID, limit)
		if err != nil {
			handleServiceError(w, ctx, err, "Failed to list chat logs")
			return
		}
		writeJSON(w, ctx, http.StatusOK, toLogResponses(logs))
		return
	}

	seq, err := h.chatService.ListLogs(ctx, chatID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list chat logs")
		return
	}

	var logs []storage.ChatLog
	for log, err := range seq {
		if err != nil {
			handleServiceError(w, ctx, err, "Failed to list chat logs")
			return
		}
		logs = append(logs, log)
	}

	writeJSON(w, ctx, http.StatusOK, toLogResponses(logs))
}

// AppendLog handles POST /api/chats/{chatID}/logs.
func (h *ChatHandler) AppendLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	chatID, err := chatIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req AppendLogRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log, err := h.chatService.AppendLog(ctx, chatID, service.AppendLogRequest{
		Message: req.Message,
		Sender:  req.Sender,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to append chat log")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, toLogResponses([]storage.ChatLog{log})[0])
}

// RecordExchange handles POST /api/chats/{chatID}/exchanges.
func (h *ChatHandler) RecordExchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	chatID, err := chatIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ExchangeRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logs, err := h.chatService.RecordExchange(ctx, chatID, req.Message, req.Reply)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to record exchange")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, toLogResponses(logs))
}
