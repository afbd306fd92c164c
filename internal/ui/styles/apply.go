package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorToken identifies a themeable color.
type ColorToken string

const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenStatusSuccess   ColorToken = "status.success"
	TokenStatusWarning   ColorToken = "status.warning"
	TokenStatusError     ColorToken = "status.error"
	TokenStatusBar       ColorToken = "status.bar"
	TokenChatUser        ColorToken = "chat.user"
	TokenChatBot         ColorToken = "chat.bot"
)

var validTokens = map[ColorToken]bool{
	TokenTextPrimary:     true,
	TokenTextMuted:       true,
	TokenTextPlaceholder: true,
	TokenBorderDefault:   true,
	TokenBorderFocus:     true,
	TokenStatusSuccess:   true,
	TokenStatusWarning:   true,
	TokenStatusError:     true,
	TokenStatusBar:       true,
	TokenChatUser:        true,
	TokenChatBot:         true,
}

// ApplyTheme applies color overrides on top of the defaults, then rebuilds
// every derived Style object.
func ApplyTheme(colors map[string]string) error {
	for key, value := range colors {
		token := ColorToken(key)
		if !validTokens[token] {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		applyColor(token, value)
	}

	rebuildStyles()
	return nil
}

func applyColor(token ColorToken, hex string) {
	c := lipgloss.AdaptiveColor{Light: hex, Dark: hex}

	switch token {
	case TokenTextPrimary:
		TextPrimaryColor = c
	case TokenTextMuted:
		TextMutedColor = c
	case TokenTextPlaceholder:
		TextPlaceholderColor = c
	case TokenBorderDefault:
		BorderDefaultColor = c
	case TokenBorderFocus:
		BorderFocusColor = c
	case TokenStatusSuccess:
		StatusSuccessColor = c
	case TokenStatusWarning:
		StatusWarningColor = c
	case TokenStatusError:
		StatusErrorColor = c
	case TokenStatusBar:
		StatusBarBgColor = c
	case TokenChatUser:
		ChatUserColor = c
	case TokenChatBot:
		ChatBotColor = c
	}
}

// rebuildStyles recreates the derived style objects after color changes.
func rebuildStyles() {
	UserMessageStyle = lipgloss.NewStyle().Foreground(ChatUserColor)
	BotMessageStyle = lipgloss.NewStyle().Foreground(ChatBotColor)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(StatusBarFgColor).
		Background(StatusBarBgColor).
		Padding(0, 1)
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	InputBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocusColor).
		Padding(0, 1)
}

// isValidHexColor reports whether s is a #RGB or #RRGGBB hex color.
func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 32)
	return err == nil
}
