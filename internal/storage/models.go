package storage

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ChatInfo represents one configured chat session in the database.
type ChatInfo struct {
	ChatID         int64
	ChatName       string
	WatchingFolder string // Folder watched for this chat
	DBPath         string // Opaque path to the chat's data file
	LLMType        string // Backend identifier, e.g. "ollama" or "openai"
	LLMArgs        string // Serialized backend arguments
}

// ChatInfoUpdate holds the fields to change on a ChatInfo.
// Nil fields are left untouched.
type ChatInfoUpdate struct {
	ChatName       *string
	WatchingFolder *string
	DBPath         *string
	LLMType        *string
	LLMArgs        *string
}

// IsEmpty reports whether the update changes nothing.
func (u ChatInfoUpdate) IsEmpty() bool {
	return u.ChatName == nil && u.WatchingFolder == nil && u.DBPath == nil &&
		u.LLMType == nil && u.LLMArgs == nil
}

// ChatLog represents one message in a chat's history.
type ChatLog struct {
	ID        int64
	ChatID    int64 // Foreign key to ChatInfo.chatId
	Message   string
	Sender    string // "user", "assistant", ...
	CreatedAt time.Time
}

// timestampLayouts are tried in order when SQLite hands back text.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// timestamp scans a DATETIME column regardless of whether the driver
// already converted it to time.Time.
type timestamp struct {
	time.Time
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("failed to parse timestamp %q", s)
}

// Value implements driver.Valuer using the same text layout as the column default.
func (t timestamp) Value() (driver.Value, error) {
	return t.UTC().Format("2006-01-02 15:04:05.000"), nil
}
