package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_info_store.go -package=mocks chatlog/internal/storage ChatInfoStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ChatInfoStore defines the interface for chat session storage operations.
type ChatInfoStore interface {
	// Create inserts a new chat and returns it with its assigned ChatID.
	Create(ctx context.Context, chat ChatInfo) (ChatInfo, error)
	// Get gets a chat by ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, chatID int64) (ChatInfo, error)
	// FindByName returns the first chat (lowest ID) with the given name.
	// Returns ErrNotFound if not found.
	FindByName(ctx context.Context, name string) (ChatInfo, error)
	// List returns all chats ordered by ID.
	List(ctx context.Context) ([]ChatInfo, error)
	// Update applies the non-nil fields of upd and also returns the chat as it
	// was before. Returns ErrNotFound if not found.
	Update(ctx context.Context, chatID int64, upd ChatInfoUpdate) (updated, previous ChatInfo, err error)
	// Delete removes a chat and all of its logs in one transaction.
	// Returns ErrNotFound if not found.
	Delete(ctx context.Context, chatID int64) error
}

// ChatInfoRepo provides methods for chat session operations.
// It implements the ChatInfoStore interface.
type ChatInfoRepo struct {
	db *sql.DB
}

// NewChatInfoRepo creates a new ChatInfoRepo.
func NewChatInfoRepo(db *sql.DB) *ChatInfoRepo {
	return &ChatInfoRepo{db: db}
}

const chatInfoColumns = "chatId, chatName, watchingFolder, dbPath, llmType, llmArgs"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChatInfo(row rowScanner) (ChatInfo, error) {
	var chat ChatInfo
	err := row.Scan(&chat.ChatID, &chat.ChatName, &chat.WatchingFolder, &chat.DBPath, &chat.LLMType, &chat.LLMArgs)
	return chat, err
}

// Create inserts a new chat and returns it with its assigned ChatID.
func (r *ChatInfoRepo) Create(ctx context.Context, chat ChatInfo) (ChatInfo, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO ChatInfo (chatName, watchingFolder, dbPath, llmType, llmArgs) VALUES (?, ?, ?, ?, ?)",
		chat.ChatName, chat.WatchingFolder, chat.DBPath, chat.LLMType, chat.LLMArgs,
	)
	if err != nil {
		return ChatInfo{}, fmt.Errorf("failed to insert chat: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ChatInfo{}, fmt.Errorf("failed to get chat ID: %w", err)
	}

	chat.ChatID = id
	return chat, nil
}

// Get gets a chat by ID. Returns ErrNotFound if not found.
func (r *ChatInfoRepo) Get(ctx context.Context, chatID int64) (ChatInfo, error) {
	return r.getWith(ctx, r.db, chatID)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *ChatInfoRepo) getWith(ctx context.Context, q queryRower, chatID int64) (ChatInfo, error) {
	chat, err := scanChatInfo(q.QueryRowContext(ctx,
		"SELECT "+chatInfoColumns+" FROM ChatInfo WHERE chatId = ?",
		chatID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return ChatInfo{}, ErrNotFound
	}
	if err != nil {
		return ChatInfo{}, fmt.Errorf("failed to query chat: %w", err)
	}
	return chat, nil
}

// FindByName returns the first chat (lowest ID) with the given name.
func (r *ChatInfoRepo) FindByName(ctx context.Context, name string) (ChatInfo, error) {
	chat, err := scanChatInfo(r.db.QueryRowContext(ctx,
		"SELECT "+chatInfoColumns+" FROM ChatInfo WHERE chatName = ? ORDER BY chatId LIMIT 1",
		name,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return ChatInfo{}, ErrNotFound
	}
	if err != nil {
		return ChatInfo{}, fmt.Errorf("failed to query chat by name: %w", err)
	}
	return chat, nil
}

// List returns all chats ordered by ID.
// Returns an empty slice if no chats exist (not an error).
func (r *ChatInfoRepo) List(ctx context.Context) ([]ChatInfo, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+chatInfoColumns+" FROM ChatInfo ORDER BY chatId")
	if err != nil {
		return nil, fmt.Errorf("failed to query chats: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	chats := []ChatInfo{}
	for rows.Next() {
		chat, err := scanChatInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat: %w", err)
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return chats, nil
}

// Update applies the non-nil fields of upd and returns the stored chat along
// with the row as it was before the change, both read in the same transaction.
// An empty update only checks that the chat exists.
func (r *ChatInfoRepo) Update(ctx context.Context, chatID int64, upd ChatInfoUpdate) (updated, previous ChatInfo, err error) {
	var (
		sets []string
		args []any
	)
	add := func(column string, v *string) {
		if v != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *v)
		}
	}
	add("chatName", upd.ChatName)
	add("watchingFolder", upd.WatchingFolder)
	add("dbPath", upd.DBPath)
	add("llmType", upd.LLMType)
	add("llmArgs", upd.LLMArgs)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return ChatInfo{}, ChatInfo{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	previous, err = r.getWith(ctx, tx, chatID)
	if err != nil {
		return ChatInfo{}, ChatInfo{}, err
	}
	if len(sets) == 0 {
		return previous, previous, nil
	}

	args = append(args, chatID)
	if _, err := tx.ExecContext(ctx,
		"UPDATE ChatInfo SET "+strings.Join(sets, ", ")+" WHERE chatId = ?",
		args...,
	); err != nil {
		return ChatInfo{}, ChatInfo{}, fmt.Errorf("failed to update chat: %w", err)
	}

	updated, err = r.getWith(ctx, tx, chatID)
	if err != nil {
		return ChatInfo{}, ChatInfo{}, err
	}

	if err := tx.Commit(); err != nil {
		return ChatInfo{}, ChatInfo{}, fmt.Errorf("failed to commit chat update: %w", err)
	}
	return updated, previous, nil
}

// Delete removes a chat and all of its logs in one transaction.
// Logs go first; ON DELETE CASCADE covers the same rows.
func (r *ChatInfoRepo) Delete(ctx context.Context, chatID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM ChatLog WHERE chatId = ?", chatID); err != nil {
		return fmt.Errorf("failed to delete chat logs: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM ChatInfo WHERE chatId = ?", chatID)
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chat delete: %w", err)
	}
	return nil
}
