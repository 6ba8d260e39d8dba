package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, repo *ChatLogRepo, chatID int64) []ChatLog {
	t.Helper()
	var out []ChatLog
	for log, err := range repo.List(context.Background(), chatID) {
		require.NoError(t, err)
		out = append(out, log)
	}
	return out
}

func TestChatLogRepo_Append(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatInfoRepo(db)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	chat, err := chats.Create(ctx, testChat("demo"))
	require.NoError(t, err)

	before := time.Now().UTC().Add(-time.Second)
	first, err := repo.Append(ctx, chat.ChatID, NewLog{Message: "hello", Sender: "user"})
	require.NoError(t, err)
	second, err := repo.Append(ctx, chat.ChatID, NewLog{Message: "hi there", Sender: "assistant"})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, chat.ChatID, first.ChatID)
	assert.Equal(t, "hello", first.Message)
	assert.Equal(t, "user", first.Sender)
	assert.False(t, first.CreatedAt.Before(before), "createdAt %v is before %v", first.CreatedAt, before)
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))

	logs := collect(t, repo, chat.ChatID)
	require.Len(t, logs, 2)
	assert.Equal(t, first.ID, logs[0].ID)
	assert.Equal(t, second.ID, logs[1].ID)
	assert.True(t, logs[0].CreatedAt.Equal(first.CreatedAt))
}

func TestChatLogRepo_Append_ForeignKeyViolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	_, err := repo.Append(ctx, 404, NewLog{Message: "lost", Sender: "user"})
	require.ErrorIs(t, err, ErrForeignKeyViolation)

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM ChatLog").Scan(&rows))
	assert.Zero(t, rows)
}

func TestChatLogRepo_Schema_RejectsOrphanInsert(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec("INSERT INTO ChatLog (chatId, message, sender) VALUES (?, ?, ?)", 7, "raw", "user")
	require.Error(t, err)
	assert.True(t, isForeignKeyError(err), "expected foreign key error, got %v", err)
}

func TestChatLogRepo_Schema_CascadesOnRawDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	chat, err := NewChatInfoRepo(db).Create(ctx, testChat("raw"))
	require.NoError(t, err)
	_, err = NewChatLogRepo(db).Append(ctx, chat.ChatID, NewLog{Message: "m", Sender: "user"})
	require.NoError(t, err)

	_, err = db.Exec("DELETE FROM ChatInfo WHERE chatId = ?", chat.ChatID)
	require.NoError(t, err)

	n, err := NewChatLogRepo(db).Count(ctx, chat.ChatID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestChatLogRepo_AppendBatch(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatInfoRepo(db)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	chat, err := chats.Create(ctx, testChat("batch"))
	require.NoError(t, err)

	t.Run("empty batch", func(t *testing.T) {
		logs, err := repo.AppendBatch(ctx, chat.ChatID, nil)
		require.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("stores in order", func(t *testing.T) {
		logs, err := repo.AppendBatch(ctx, chat.ChatID, []NewLog{
			{Message: "question", Sender: "user"},
			{Message: "answer", Sender: "bot"},
		})
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Less(t, logs[0].ID, logs[1].ID)

		stored := collect(t, repo, chat.ChatID)
		require.Len(t, stored, 2)
		assert.Equal(t, "question", stored[0].Message)
		assert.Equal(t, "answer", stored[1].Message)
	})

	t.Run("missing chat stores nothing", func(t *testing.T) {
		_, err := repo.AppendBatch(ctx, 9999, []NewLog{{Message: "x", Sender: "user"}})
		require.ErrorIs(t, err, ErrForeignKeyViolation)

		var rows int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM ChatLog WHERE chatId = 9999").Scan(&rows))
		assert.Zero(t, rows)
	})
}

func TestChatLogRepo_List_OrdersByCreatedAtThenID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	chat, err := NewChatInfoRepo(db).Create(ctx, testChat("order"))
	require.NoError(t, err)

	later := timestamp{time.Date(2024, 1, 1, 12, 0, 1, 0, time.UTC)}
	same := timestamp{time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	// Insert out of timestamp order; two rows share a timestamp.
	inserts := []struct {
		msg string
		at  timestamp
	}{
		{"third", later},
		{"first", same},
		{"second", same},
	}
	for _, in := range inserts {
		_, err := db.Exec("INSERT INTO ChatLog (chatId, message, sender, createdAt) VALUES (?, ?, 'user', ?)",
			chat.ChatID, in.msg, in.at)
		require.NoError(t, err)
	}

	logs := collect(t, NewChatLogRepo(db), chat.ChatID)
	require.Len(t, logs, 3)

	var got []string
	for _, l := range logs {
		got = append(got, l.Message)
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
	assert.Less(t, logs[0].ID, logs[1].ID)
	assert.True(t, logs[0].CreatedAt.Equal(same.Time))
	assert.True(t, logs[2].CreatedAt.Equal(later.Time))
}

func TestChatLogRepo_List_LazyAndRestartable(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	chat, err := NewChatInfoRepo(db).Create(ctx, testChat("lazy"))
	require.NoError(t, err)

	seq := repo.List(ctx, chat.ChatID)

	// Built before any rows exist; ranging runs the query then.
	_, err = repo.Append(ctx, chat.ChatID, NewLog{Message: "one", Sender: "user"})
	require.NoError(t, err)

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}
	assert.Equal(t, 1, count())

	_, err = repo.Append(ctx, chat.ChatID, NewLog{Message: "two", Sender: "assistant"})
	require.NoError(t, err)
	assert.Equal(t, 2, count())

	// Breaking early releases the rows; the next range starts over.
	for log, err := range seq {
		require.NoError(t, err)
		assert.Equal(t, "one", log.Message)
		break
	}
	assert.Equal(t, 2, count())
}

func TestChatLogRepo_List_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepo(db)

	assert.Empty(t, collect(t, repo, 12345))
}

func TestChatLogRepo_List_YieldsQueryError(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepo(db)
	require.NoError(t, db.Close())

	var errs int
	for _, err := range repo.List(context.Background(), 1) {
		assert.Error(t, err)
		errs++
	}
	assert.Equal(t, 1, errs)
}

func TestChatLogRepo_Recent(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	chat, err := NewChatInfoRepo(db).Create(ctx, testChat("recent"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := repo.Append(ctx, chat.ChatID, NewLog{Message: fmt.Sprintf("m%d", i), Sender: "user"})
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "newest first", limit: 2, want: []string{"m4", "m3"}},
		{name: "limit above count", limit: 10, want: []string{"m4", "m3", "m2", "m1", "m0"}},
		{name: "zero limit", limit: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, err := repo.Recent(ctx, chat.ChatID, tt.limit)
			require.NoError(t, err)
			var got []string
			for _, l := range logs {
				got = append(got, l.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChatLogRepo_ConcurrentAppends(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	chat, err := NewChatInfoRepo(db).Create(ctx, testChat("busy"))
	require.NoError(t, err)

	const workers, perWorker = 8, 15
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids []int64
	)
	errCh := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				log, err := repo.Append(ctx, chat.ChatID, NewLog{Message: fmt.Sprintf("%d-%d", w, i), Sender: "user"})
				if err != nil {
					errCh <- err
					continue
				}
				mu.Lock()
				ids = append(ids, log.ID)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
	require.Len(t, ids, workers*perWorker)

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 1; i < len(ids); i++ {
		require.NotEqual(t, ids[i-1], ids[i], "duplicate id %d", ids[i])
	}

	// Stored order has strictly increasing ids since createdAt never goes backwards.
	logs := collect(t, repo, chat.ChatID)
	require.Len(t, logs, workers*perWorker)
	for i := 1; i < len(logs); i++ {
		assert.Greater(t, logs[i].ID, logs[i-1].ID)
	}
}

func TestChatLogRepo_AppendRacingDelete_LeavesNoOrphans(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatInfoRepo(db)
	repo := NewChatLogRepo(db)
	ctx := context.Background()

	for round := 0; round < 5; round++ {
		chat, err := chats.Create(ctx, testChat("race"))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 10; i++ {
					_, err := repo.Append(ctx, chat.ChatID, NewLog{Message: "m", Sender: "user"})
					if err != nil && !errors.Is(err, ErrForeignKeyViolation) {
						assert.Fail(t, "Append() unexpected error", err)
						return
					}
				}
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, chats.Delete(ctx, chat.ChatID))
		}()
		wg.Wait()

		var orphans int
		require.NoError(t, db.QueryRow(
			"SELECT COUNT(*) FROM ChatLog l LEFT JOIN ChatInfo c ON c.chatId = l.chatId WHERE c.chatId IS NULL",
		).Scan(&orphans))
		assert.Zero(t, orphans, "round %d left orphaned logs", round)
	}
}
