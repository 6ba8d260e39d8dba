package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_log_store.go -package=mocks chatlog/internal/storage ChatLogStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
)

// NewLog is a message to append to a chat.
type NewLog struct {
	Message string
	Sender  string
}

// ChatLogStore defines the interface for chat log storage operations.
// Logs are append-only: there is no update or direct delete.
type ChatLogStore interface {
	// Append inserts one log for chatID. The chat's existence is checked in the
	// same transaction as the insert. Returns ErrForeignKeyViolation if the chat
	// does not exist.
	Append(ctx context.Context, chatID int64, entry NewLog) (ChatLog, error)
	// AppendBatch inserts several logs for chatID in one transaction, in order.
	// Either every log is stored or none is.
	AppendBatch(ctx context.Context, chatID int64, entries []NewLog) ([]ChatLog, error)
	// List returns the logs of chatID ordered by createdAt then id.
	// The sequence is lazy: each range over it runs the query again.
	List(ctx context.Context, chatID int64) iter.Seq2[ChatLog, error]
	// Recent returns up to limit of the newest logs of chatID, newest first.
	Recent(ctx context.Context, chatID int64, limit int) ([]ChatLog, error)
	// Count returns the number of logs of chatID.
	Count(ctx context.Context, chatID int64) (int64, error)
}

// ChatLogRepo provides methods for chat log operations.
// It implements the ChatLogStore interface.
type ChatLogRepo struct {
	db *sql.DB
}

// NewChatLogRepo creates a new ChatLogRepo.
func NewChatLogRepo(db *sql.DB) *ChatLogRepo {
	return &ChatLogRepo{db: db}
}

// Append inserts one log for chatID.
func (r *ChatLogRepo) Append(ctx context.Context, chatID int64, entry NewLog) (ChatLog, error) {
	logs, err := r.AppendBatch(ctx, chatID, []NewLog{entry})
	if err != nil {
		return ChatLog{}, err
	}
	return logs[0], nil
}

// AppendBatch inserts several logs for chatID in one transaction.
// The transaction begins IMMEDIATE (see New), so a concurrent Delete of the
// chat either commits before the existence check or waits for this commit.
func (r *ChatLogRepo) AppendBatch(ctx context.Context, chatID int64, entries []NewLog) ([]ChatLog, error) {
	if len(entries) == 0 {
		return []ChatLog{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM ChatInfo WHERE chatId = ?", chatID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrForeignKeyViolation
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check chat: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO ChatLog (chatId, message, sender) VALUES (?, ?, ?) RETURNING id, createdAt",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare chat log insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	logs := make([]ChatLog, 0, len(entries))
	for _, entry := range entries {
		log := ChatLog{ChatID: chatID, Message: entry.Message, Sender: entry.Sender}
		var created timestamp
		err := stmt.QueryRowContext(ctx, chatID, entry.Message, entry.Sender).Scan(&log.ID, &created)
		if err != nil {
			if isForeignKeyError(err) {
				return nil, ErrForeignKeyViolation
			}
			return nil, fmt.Errorf("failed to insert chat log: %w", err)
		}
		log.CreatedAt = created.Time
		logs = append(logs, log)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit chat logs: %w", err)
	}
	return logs, nil
}

// List returns the logs of chatID ordered by createdAt then id.
// An unknown chatID yields an empty sequence.
func (r *ChatLogRepo) List(ctx context.Context, chatID int64) iter.Seq2[ChatLog, error] {
	return func(yield func(ChatLog, error) bool) {
		rows, err := r.db.QueryContext(ctx,
			"SELECT id, chatId, message, sender, createdAt FROM ChatLog WHERE chatId = ? ORDER BY createdAt, id",
			chatID,
		)
		if err != nil {
			yield(ChatLog{}, fmt.Errorf("failed to query chat logs: %w", err))
			return
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			log, err := scanChatLog(rows)
			if err != nil {
				yield(ChatLog{}, fmt.Errorf("failed to scan chat log: %w", err))
				return
			}
			if !yield(log, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(ChatLog{}, fmt.Errorf("row iteration error: %w", err))
		}
	}
}

// Recent returns up to limit of the newest logs of chatID, newest first.
// Returns an empty slice if the chat has no logs (not an error).
func (r *ChatLogRepo) Recent(ctx context.Context, chatID int64, limit int) ([]ChatLog, error) {
	if limit <= 0 {
		return []ChatLog{}, nil
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, chatId, message, sender, createdAt FROM ChatLog WHERE chatId = ? ORDER BY createdAt DESC, id DESC LIMIT ?",
		chatID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent chat logs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	logs := []ChatLog{}
	for rows.Next() {
		log, err := scanChatLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return logs, nil
}

// Count returns the number of logs of chatID.
func (r *ChatLogRepo) Count(ctx context.Context, chatID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ChatLog WHERE chatId = ?", chatID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count chat logs: %w", err)
	}
	return n, nil
}

func scanChatLog(row rowScanner) (ChatLog, error) {
	var (
		log     ChatLog
		created timestamp
	)
	if err := row.Scan(&log.ID, &log.ChatID, &log.Message, &log.Sender, &created); err != nil {
		return ChatLog{}, err
	}
	log.CreatedAt = created.Time
	return log, nil
}
