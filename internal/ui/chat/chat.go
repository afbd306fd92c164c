// Package chat provides chat message rendering for the conversation view.
package chat

import (
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"quad/internal/ui/styles"
)

// Message represents a single message in chat history.
type Message struct {
	Role      string     `json:"role"` // "user" or "advisor"
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"ts,omitempty"`
}

// RenderConfig configures how chat messages are rendered.
type RenderConfig struct {
	BotLabel  string // Label for advisor messages (default: "Advisor")
	UserLabel string // Label for user messages (default: "You")
}

// RenderContent renders a slice of Messages as styled chat transcript text.
// Advisor content is passed through a render function so callers can plug
// in markdown rendering; pass nil to render plain wrapped text.
func RenderContent(messages []Message, wrapWidth int, cfg RenderConfig, renderBot func(string) string) string {
	var content strings.Builder

	userLabel := cfg.UserLabel
	if userLabel == "" {
		userLabel = "You"
	}
	botLabel := cfg.BotLabel
	if botLabel == "" {
		botLabel = "Advisor"
	}

	for _, msg := range messages {
		if msg.Role == "user" {
			roleLabel := styles.RoleStyle.Foreground(styles.ChatUserColor).Render(userLabel)
			content.WriteString(roleLabel + "\n")
			content.WriteString(Wrap(msg.Content, wrapWidth-4) + "\n\n")
			continue
		}

		roleLabel := styles.RoleStyle.Foreground(styles.ChatBotColor).Render(botLabel)
		content.WriteString(roleLabel + "\n")
		if renderBot != nil {
			content.WriteString(strings.TrimRight(renderBot(msg.Content), "\n") + "\n\n")
		} else {
			content.WriteString(Wrap(msg.Content, wrapWidth-4) + "\n\n")
		}
	}

	return strings.TrimRight(content.String(), "\n")
}

// Wrap wraps text at the given width, preserving explicit newlines.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
