// Package export renders a chat and its message history as a transcript.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"chatlog/internal/storage"
)

// Format is a transcript encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

const exportVersion = "1.0"

// ParseFormat returns the format named by s. An empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the HTTP content type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json"
	}
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	default:
		return "json"
	}
}

// Transcript is a point-in-time copy of one chat and its logs.
type Transcript struct {
	ExportID   string            `json:"export_id"`
	ExportedAt time.Time         `json:"exported_at"`
	Chat       ChatExport        `json:"chat"`
	Logs       []LogExport       `json:"logs"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ChatExport is the exported form of a chat.
type ChatExport struct {
	ChatID         int64  `json:"chat_id"`
	ChatName       string `json:"chat_name"`
	WatchingFolder string `json:"watching_folder"`
	DBPath         string `json:"db_path"`
	LLMType        string `json:"llm_type"`
	LLMArgs        string `json:"llm_args"`
}

// LogExport is the exported form of a chat log.
type LogExport struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTranscript drains logs into a transcript of chat.
// The first error yielded by logs aborts the export.
func NewTranscript(chat storage.ChatInfo, logs iter.Seq2[storage.ChatLog, error]) (Transcript, error) {
	t := Transcript{
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now().UTC(),
		Chat: ChatExport{
			ChatID:         chat.ChatID,
			ChatName:       chat.ChatName,
			WatchingFolder: chat.WatchingFolder,
			DBPath:         chat.DBPath,
			LLMType:        chat.LLMType,
			LLMArgs:        chat.LLMArgs,
		},
		Logs: []LogExport{},
		Metadata: map[string]string{
			"export_version": exportVersion,
		},
	}

	for log, err := range logs {
		if err != nil {
			return Transcript{}, fmt.Errorf("failed to read chat logs: %w", err)
		}
		t.Logs = append(t.Logs, LogExport{
			ID:        log.ID,
			Sender:    log.Sender,
			Message:   log.Message,
			CreatedAt: log.CreatedAt,
		})
	}

	return t, nil
}

// Write encodes t to w in format f.
func Write(w io.Writer, t Transcript, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(t))
		return err
	case FormatHTML:
		return WriteHTML(w, t)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// WriteJSON writes t as indented JSON.
func WriteJSON(w io.Writer, t Transcript) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	return nil
}

// Markdown renders t as a Markdown document.
func Markdown(t Transcript) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t.Chat.ChatName)
	fmt.Fprintf(&sb, "- **Chat ID**: %d\n", t.Chat.ChatID)
	fmt.Fprintf(&sb, "- **Watching folder**: `%s`\n", t.Chat.WatchingFolder)
	fmt.Fprintf(&sb, "- **Database path**: `%s`\n", t.Chat.DBPath)
	fmt.Fprintf(&sb, "- **LLM**: %s\n\n", t.Chat.LLMType)
	sb.WriteString("---\n\n")

	if len(t.Logs) == 0 {
		sb.WriteString("*No messages.*\n\n")
	}

	for i, log := range t.Logs {
		fmt.Fprintf(&sb, "## %s\n\n", log.Sender)
		fmt.Fprintf(&sb, "*%s*\n\n", log.CreatedAt.Format("2006-01-02 15:04:05"))
		sb.WriteString(log.Message)
		sb.WriteString("\n\n")
		if i < len(t.Logs)-1 {
			sb.WriteString("---\n\n")
		}
	}

	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "*Exported %s (%s)*\n", t.ExportedAt.Format(time.RFC3339), t.ExportID)
	return sb.String()
}

// Raw HTML inside messages is dropped by the renderer.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
)

// WriteHTML renders the Markdown transcript to a standalone HTML page.
func WriteHTML(w io.Writer, t Transcript) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(t)), &body); err != nil {
		return fmt.Errorf("failed to render transcript: %w", err)
	}

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(t.Chat.ChatName), body.String())
	return err
}
