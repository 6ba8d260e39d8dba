package service_test

import (
	"errors"
	"path/filepath"
	"testing"

	"chatlog/internal/service"
	"chatlog/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteService(t *testing.T) service.ChatService {
	t.Helper()

	db, err := storage.New(filepath.Join(t.TempDir(), "chatlog.db"), storage.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.Migrate(db))

	return service.NewChatService(storage.NewChatInfoRepo(db), storage.NewChatLogRepo(db))
}

func TestChatService_SQLiteLifecycle(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := testContext()

	chat, err := svc.CreateChat(ctx, service.CreateChatRequest{
		ChatName:       "demo",
		WatchingFolder: "/tmp/watch",
		DBPath:         "/tmp/db",
		LLMType:        "local",
		LLMArgs:        "{}",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), chat.ChatID)

	_, err = svc.AppendLog(ctx, chat.ChatID, service.AppendLogRequest{Message: "hi", Sender: "user"})
	require.NoError(t, err)
	_, err = svc.AppendLog(ctx, chat.ChatID, service.AppendLogRequest{Message: "hello", Sender: "bot"})
	require.NoError(t, err)

	seq, err := svc.ListLogs(ctx, chat.ChatID)
	require.NoError(t, err)

	// Ranging twice re-reads the table.
	for range 2 {
		var got []storage.ChatLog
		for log, err := range seq {
			require.NoError(t, err)
			got = append(got, log)
		}
		require.Len(t, got, 2)
		assert.Equal(t, "hi", got[0].Message)
		assert.Equal(t, "user", got[0].Sender)
		assert.Equal(t, "hello", got[1].Message)
		assert.Equal(t, "bot", got[1].Sender)
		assert.False(t, got[1].CreatedAt.Before(got[0].CreatedAt))
	}

	require.NoError(t, svc.DeleteChat(ctx, chat.ChatID))

	_, err = svc.GetChat(ctx, chat.ChatID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.ListLogs(ctx, chat.ChatID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.AppendLog(ctx, chat.ChatID, service.AppendLogRequest{Message: "late", Sender: "user"})
	assert.True(t, errors.Is(err, service.ErrForeignKeyViolation), "got %v", err)

	assert.ErrorIs(t, svc.DeleteChat(ctx, chat.ChatID), service.ErrNotFound)
}

func TestChatService_SQLiteRecordExchange(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := testContext()

	chat, err := svc.CreateChat(ctx, service.CreateChatRequest{
		ChatName:       "qa",
		WatchingFolder: "/w",
		DBPath:         "/d",
		LLMType:        "openai",
		LLMArgs:        `{"model":"x"}`,
	})
	require.NoError(t, err)

	logs, err := svc.RecordExchange(ctx, chat.ChatID, "what?", "this.")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, service.SenderUser, logs[0].Sender)
	assert.Equal(t, service.SenderAssistant, logs[1].Sender)

	recent, err := svc.RecentLogs(ctx, chat.ChatID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "this.", recent[0].Message)

	n, err := svc.CountLogs(ctx, chat.ChatID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
