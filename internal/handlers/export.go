package handlers

import (
	"fmt"
	"net/http"

	"chatlog/internal/contextutil"
	"chatlog/internal/export"
	"chatlog/internal/service"
)

// ExportHandler serves chat transcripts.
type ExportHandler struct {
	chatService service.ChatService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(chatService service.ChatService) *ExportHandler {
	return &ExportHandler{
		chatService: chatService,
	}
}

// ServeHTTP handles GET /api/chats/{chatID}/export?format=json|markdown|html.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	chatID, err := chatIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	chat, err := h.chatService.GetChat(ctx, chatID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export chat")
		return
	}

	seq, err := h.chatService.ListLogs(ctx, chatID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export chat")
		return
	}

	transcript, err := export.NewTranscript(chat, seq)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export chat")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="chat-%d.%s"`, chatID, format.Extension()))
	if err := export.Write(w, transcript, format); err != nil {
		logger.ErrorContext(ctx, "failed to write transcript", "chat_id", chatID, "format", format, "error", err)
		return
	}

	logger.InfoContext(ctx, "chat exported", "chat_id", chatID, "format", format, "logs", len(transcript.Logs), "export_id", transcript.ExportID)
}
