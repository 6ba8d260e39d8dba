package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_index.go -package=mocks chatlog/internal/service VectorIndex
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService chatlog/internal/service ChatService

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"chatlog/internal/contextutil"
	"chatlog/internal/storage"
)

// Sender values written by RecordExchange.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// VectorIndex is the part of a vector store the chat service needs.
// This interface is defined from the service layer's perspective (consumer-first).
type VectorIndex interface {
	// DropCollection removes a collection. A missing collection is not an error.
	DropCollection(ctx context.Context, collection string) error
}

// CreateChatRequest holds the fields of a new chat session.
type CreateChatRequest struct {
	ChatName       string
	WatchingFolder string
	DBPath         string
	LLMType        string
	LLMArgs        string
}

// UpdateChatRequest holds the fields to change. Nil fields are left untouched;
// a non-nil field must not be empty.
type UpdateChatRequest struct {
	ChatName       *string
	WatchingFolder *string
	DBPath         *string
	LLMType        *string
	LLMArgs        *string
}

// AppendLogRequest holds one message to append to a chat.
type AppendLogRequest struct {
	Message string
	Sender  string
}

// DeleteResult is the outcome of deleting one chat in a batch.
type DeleteResult struct {
	ChatID int64
	Err    error
}

// ChatService is the persistence API for chat sessions and their message history.
type ChatService interface {
	// CreateChat validates and stores a new chat.
	CreateChat(ctx context.Context, req CreateChatRequest) (storage.ChatInfo, error)
	// GetChat returns a chat or ErrNotFound.
	GetChat(ctx context.Context, chatID int64) (storage.ChatInfo, error)
	// FindChatByName returns the oldest chat with the given name or ErrNotFound.
	FindChatByName(ctx context.Context, name string) (storage.ChatInfo, error)
	// ListChats returns every chat ordered by ID.
	ListChats(ctx context.Context) ([]storage.ChatInfo, error)
	// UpdateChat changes the given fields of a chat.
	UpdateChat(ctx context.Context, chatID int64, req UpdateChatRequest) (storage.ChatInfo, error)
	// DeleteChat removes a chat and all its logs atomically.
	DeleteChat(ctx context.Context, chatID int64) error
	// DeleteChats deletes each chat in its own transaction and reports per-chat results.
	DeleteChats(ctx context.Context, chatIDs []int64) []DeleteResult
	// AppendLog appends one message to a chat's history.
	AppendLog(ctx context.Context, chatID int64, req AppendLogRequest) (storage.ChatLog, error)
	// RecordExchange appends a user message and the assistant reply in one transaction.
	RecordExchange(ctx context.Context, chatID int64, userMessage, reply string) ([]storage.ChatLog, error)
	// ListLogs returns a lazy, restartable sequence of the chat's logs in
	// chronological order. Returns ErrNotFound if the chat does not exist.
	ListLogs(ctx context.Context, chatID int64) (iter.Seq2[storage.ChatLog, error], error)
	// RecentLogs returns up to limit of the newest logs, newest first.
	RecentLogs(ctx context.Context, chatID int64, limit int) ([]storage.ChatLog, error)
	// CountLogs returns how many logs a chat has.
	CountLogs(ctx context.Context, chatID int64) (int64, error)
}

// chatService implements ChatService.
type chatService struct {
	chats            storage.ChatInfoStore
	logs             storage.ChatLogStore
	index            VectorIndex
	collectionPrefix string
}

// Option configures the chat service.
type Option func(*chatService)

// WithVectorIndex drops the per-chat collection (prefix + chat ID) when a chat
// is deleted or its DBPath changes.
func WithVectorIndex(index VectorIndex, collectionPrefix string) Option {
	return func(s *chatService) {
		s.index = index
		s.collectionPrefix = collectionPrefix
	}
}

// NewChatService creates a new ChatService.
func NewChatService(chats storage.ChatInfoStore, logs storage.ChatLogStore, opts ...Option) ChatService {
	s := &chatService{
		chats: chats,
		logs:  logs,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CollectionName returns the vector collection owned by a chat.
func CollectionName(prefix string, chatID int64) string {
	return fmt.Sprintf("%s%d", prefix, chatID)
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "cannot be empty"}
	}
	return nil
}

func requireOptionalField(field string, value *string) error {
	if value == nil {
		return nil
	}
	return requireField(field, *value)
}

// translate maps storage errors onto the service error vocabulary.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return ErrForeignKeyViolation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return WrapError(err, op)
	default:
		return &StorageError{Op: op, Err: err}
	}
}

// CreateChat validates and stores a new chat.
func (s *chatService) CreateChat(ctx context.Context, req CreateChatRequest) (storage.ChatInfo, error) {
	logger := contextutil.LoggerFromContext(ctx)

	for _, f := range []struct{ name, value string }{
		{"chatName", req.ChatName},
		{"watchingFolder", req.WatchingFolder},
		{"dbPath", req.DBPath},
		{"llmType", req.LLMType},
		{"llmArgs", req.LLMArgs},
	} {
		if err := requireField(f.name, f.value); err != nil {
			logger.WarnContext(ctx, "invalid create chat request", "field", f.name)
			return storage.ChatInfo{}, err
		}
	}

	chat, err := s.chats.Create(ctx, storage.ChatInfo{
		ChatName:       req.ChatName,
		WatchingFolder: req.WatchingFolder,
		DBPath:         req.DBPath,
		LLMType:        req.LLMType,
		LLMArgs:        req.LLMArgs,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create chat", "error", err)
		return storage.ChatInfo{}, translate("create chat", err)
	}

	logger.InfoContext(ctx, "chat created", "chat_id", chat.ChatID, "chat_name", chat.ChatName, "llm_type", chat.LLMType)
	return chat, nil
}

// GetChat returns a chat or ErrNotFound.
func (s *chatService) GetChat(ctx context.Context, chatID int64) (storage.ChatInfo, error) {
	chat, err := s.chats.Get(ctx, chatID)
	if err != nil {
		return storage.ChatInfo{}, translate("get chat", err)
	}
	return chat, nil
}

// FindChatByName returns the oldest chat with the given name.
func (s *chatService) FindChatByName(ctx context.Context, name string) (storage.ChatInfo, error) {
	if err := requireField("chatName", name); err != nil {
		return storage.ChatInfo{}, err
	}
	chat, err := s.chats.FindByName(ctx, name)
	if err != nil {
		return storage.ChatInfo{}, translate("find chat", err)
	}
	return chat, nil
}

// ListChats returns every chat ordered by ID.
func (s *chatService) ListChats(ctx context.Context) ([]storage.ChatInfo, error) {
	chats, err := s.chats.List(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list chats", "error", err)
		return nil, translate("list chats", err)
	}
	return chats, nil
}

// UpdateChat changes the given fields of a chat.
// When DBPath changes, the chat's vector collection is dropped after the update commits.
func (s *chatService) UpdateChat(ctx context.Context, chatID int64, req UpdateChatRequest) (storage.ChatInfo, error) {
	logger := contextutil.LoggerFromContext(ctx)

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"chatName", req.ChatName},
		{"watchingFolder", req.WatchingFolder},
		{"dbPath", req.DBPath},
		{"llmType", req.LLMType},
		{"llmArgs", req.LLMArgs},
	} {
		if err := requireOptionalField(f.name, f.value); err != nil {
			logger.WarnContext(ctx, "invalid update chat request", "chat_id", chatID, "field", f.name)
			return storage.ChatInfo{}, err
		}
	}

	chat, previous, err := s.chats.Update(ctx, chatID, storage.ChatInfoUpdate{
		ChatName:       req.ChatName,
		WatchingFolder: req.WatchingFolder,
		DBPath:         req.DBPath,
		LLMType:        req.LLMType,
		LLMArgs:        req.LLMArgs,
	})
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.ErrorContext(ctx, "failed to update chat", "chat_id", chatID, "error", err)
		}
		return storage.ChatInfo{}, translate("update chat", err)
	}

	if s.index != nil && previous.DBPath != chat.DBPath {
		s.dropCollection(ctx, chatID, "db path changed")
	}

	logger.InfoContext(ctx, "chat updated", "chat_id", chatID)
	return chat, nil
}

// DeleteChat removes a chat and all its logs atomically.
func (s *chatService) DeleteChat(ctx context.Context, chatID int64) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.chats.Delete(ctx, chatID); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.ErrorContext(ctx, "failed to delete chat", "chat_id", chatID, "error", err)
		}
		return translate("delete chat", err)
	}

	if s.index != nil {
		s.dropCollection(ctx, chatID, "chat deleted")
	}

	logger.InfoContext(ctx, "chat deleted", "chat_id", chatID)
	return nil
}

// DeleteChats deletes each chat in its own transaction.
// A failure for one chat does not stop the others.
func (s *chatService) DeleteChats(ctx context.Context, chatIDs []int64) []DeleteResult {
	results := make([]DeleteResult, 0, len(chatIDs))
	for _, id := range chatIDs {
		results = append(results, DeleteResult{ChatID: id, Err: s.DeleteChat(ctx, id)})
	}
	return results
}

// dropCollection removes the chat's vector collection. The SQL change has
// already committed, so failures are only logged.
func (s *chatService) dropCollection(ctx context.Context, chatID int64, reason string) {
	logger := contextutil.LoggerFromContext(ctx)
	collection := CollectionName(s.collectionPrefix, chatID)
	if err := s.index.DropCollection(ctx, collection); err != nil {
		logger.WarnContext(ctx, "failed to drop vector collection", "chat_id", chatID, "collection", collection, "reason", reason, "error", err)
		return
	}
	logger.InfoContext(ctx, "vector collection dropped", "chat_id", chatID, "collection", collection, "reason", reason)
}

// AppendLog appends one message to a chat's history.
func (s *chatService) AppendLog(ctx context.Context, chatID int64, req AppendLogRequest) (storage.ChatLog, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := requireField("message", req.Message); err != nil {
		logger.WarnContext(ctx, "empty message in append log request", "chat_id", chatID)
		return storage.ChatLog{}, err
	}
	if err := requireField("sender", req.Sender); err != nil {
		logger.WarnContext(ctx, "empty sender in append log request", "chat_id", chatID)
		return storage.ChatLog{}, err
	}

	log, err := s.logs.Append(ctx, chatID, storage.NewLog{Message: req.Message, Sender: req.Sender})
	if err != nil {
		if !errors.Is(err, storage.ErrForeignKeyViolation) {
			logger.ErrorContext(ctx, "failed to append chat log", "chat_id", chatID, "error", err)
		}
		return storage.ChatLog{}, translate("append chat log", err)
	}

	logger.DebugContext(ctx, "chat log appended", "chat_id", chatID, "log_id", log.ID, "sender", log.Sender, "message_length", len(log.Message))
	return log, nil
}

// RecordExchange appends a user message and the assistant reply in one transaction.
func (s *chatService) RecordExchange(ctx context.Context, chatID int64, userMessage, reply string) ([]storage.ChatLog, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := requireField("userMessage", userMessage); err != nil {
		return nil, err
	}
	if err := requireField("reply", reply); err != nil {
		return nil, err
	}

	logs, err := s.logs.AppendBatch(ctx, chatID, []storage.NewLog{
		{Message: userMessage, Sender: SenderUser},
		{Message: reply, Sender: SenderAssistant},
	})
	if err != nil {
		if !errors.Is(err, storage.ErrForeignKeyViolation) {
			logger.ErrorContext(ctx, "failed to record exchange", "chat_id", chatID, "error", err)
		}
		return nil, translate("record exchange", err)
	}

	logger.InfoContext(ctx, "exchange recorded", "chat_id", chatID, "message_length", len(userMessage), "reply_length", len(reply))
	return logs, nil
}

// ListLogs returns a lazy, restartable sequence of the chat's logs.
// Storage errors surface through the sequence as StorageError values.
func (s *chatService) ListLogs(ctx context.Context, chatID int64) (iter.Seq2[storage.ChatLog, error], error) {
	if _, err := s.chats.Get(ctx, chatID); err != nil {
		return nil, translate("list chat logs", err)
	}

	seq := s.logs.List(ctx, chatID)
	return func(yield func(storage.ChatLog, error) bool) {
		for log, err := range seq {
			if !yield(log, translate("list chat logs", err)) {
				return
			}
		}
	}, nil
}

// RecentLogs returns up to limit of the newest logs, newest first.
func (s *chatService) RecentLogs(ctx context.Context, chatID int64, limit int) ([]storage.ChatLog, error) {
	if limit <= 0 {
		return nil, &ValidationError{Field: "limit", Message: "must be greater than 0"}
	}
	if _, err := s.chats.Get(ctx, chatID); err != nil {
		return nil, translate("recent chat logs", err)
	}
	logs, err := s.logs.Recent(ctx, chatID, limit)
	if err != nil {
		return nil, translate("recent chat logs", err)
	}
	return logs, nil
}

// CountLogs returns how many logs a chat has.
func (s *chatService) CountLogs(ctx context.Context, chatID int64) (int64, error) {
	if _, err := s.chats.Get(ctx, chatID); err != nil {
		return 0, translate("count chat logs", err)
	}
	n, err := s.logs.Count(ctx, chatID)
	if err != nil {
		return 0, translate("count chat logs", err)
	}
	return n, nil
}
