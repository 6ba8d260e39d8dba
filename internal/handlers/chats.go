package handlers

import (
	"net/http"

	"chatlog/internal/contextutil"
	"chatlog/internal/service"
)

// ChatHandler handles HTTP requests for chat sessions and their logs.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// CreateChatRequest represents the HTTP request payload for creating a chat.
type CreateChatRequest struct {
	ChatName       string `json:"chatName"`
	WatchingFolder string `json:"watchingFolder"`
	DBPath         string `json:"dbPath"`
	LLMType        string `json:"llmType"`
	LLMArgs        string `json:"llmArgs"`
}

// UpdateChatRequest represents the HTTP request payload for updating a chat.
// Omitted fields are left unchanged.
type UpdateChatRequest struct {
	ChatName       *string `json:"chatName,omitempty"`
	WatchingFolder *string `json:"watchingFolder,omitempty"`
	DBPath         *string `json:"dbPath,omitempty"`
	LLMType        *string `json:"llmType,omitempty"`
	LLMArgs        *string `json:"llmArgs,omitempty"`
}

// BatchDeleteRequest lists the chats to delete.
type BatchDeleteRequest struct {
	ChatIDs []int64 `json:"chatIds"`
}

// BatchDeleteResult reports the outcome for one chat of a batch delete.
type BatchDeleteResult struct {
	ChatID  int64  `json:"chatId"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// ListChats handles GET /api/chats. With ?name= it returns the matching chat.
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if name := r.URL.Query().Get("name"); name != "" {
		chat, err := h.chatService.FindChatByName(ctx, name)
		if err != nil {
			handleServiceError(w, ctx, err, "Failed to find chat")
			return
		}
		writeJSON(w, ctx, http.StatusOK, toChatResponse(chat))
		return
	}

	chats, err := h.chatService.ListChats(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list chats")
		return
	}

	resp := make([]ChatResponse, 0, len(chats))
	for _, c := range chats {
		resp = append(resp, toChatResponse(c))
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// CreateChat handles POST /api/chats.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateChatRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	chat, err := h.chatService.CreateChat(ctx, service.CreateChatRequest{
		ChatName:       req.ChatName,
		WatchingFolder: req.WatchingFolder,
		DBPath:         req.DBPath,
		LLMType:        req.LLMType,
		LLMArgs:        req.LLMArgs,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create chat")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, toChatResponse(chat))
}

// GetChat handles GET /api/chats/{chatID}.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chatID, err := chatIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	chat, err := h.chatService.GetChat(ctx, chatID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get chat")
		return
	}

	writeJSON(w, ctx, http.StatusOK, toChatResponse(chat))
}

// UpdateChat handles PATCH /api/chats/{chatID}.
func (h *ChatHandler) UpdateChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	chatID, err := chatIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateChatRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	chat, err := h.chatService.UpdateChat(ctx, chatID, service.UpdateChatRequest{
		ChatName:       req.ChatName,
		WatchingFolder: req.WatchingFolder,
		DBPath:         req.DBPath,
		LLMType:        req.LLMType,
		LLMArgs:        req.LLMArgs,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update chat")
		return
	}

	writeJSON(w, ctx, http.StatusOK, toChatResponse(chat))
}

// DeleteChat handles DELETE /api/chats/{chatID}.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chatID, err := chatIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.chatService.DeleteChat(ctx, chatID); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete chat")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BatchDelete handles POST /api/chats/batch-delete.
func (h *ChatHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req BatchDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.ChatIDs) == 0 {
		writeError(w, http.StatusBadRequest, "chatIds cannot be empty")
		return
	}

	results := h.chatService.DeleteChats(ctx, req.ChatIDs)

	resp := make([]BatchDeleteResult, 0, len(results))
	for _, res := range results {
		item := BatchDeleteResult{ChatID: res.ChatID, Deleted: res.Err == nil}
		if res.Err != nil {
			status, msg := errorStatus(res.Err, "Failed to delete chat")
			logServiceError(ctx, status, res.Err)
			item.Error = msg
		}
		resp = append(resp, item)
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}
