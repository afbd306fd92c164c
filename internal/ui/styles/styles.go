// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Focused input border

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Confirmed registrations
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Pending confirmations
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Rejections, failures

	// Chat colors
	ChatUserColor = lipgloss.AdaptiveColor{Light: "#FB923C", Dark: "#FB923C"} // User utterances
	ChatBotColor  = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#179299"} // Advisor responses

	// Status bar colors
	StatusBarFgColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"}
	StatusBarBgColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#2D3436"}

	// Chat rendering styles
	RoleStyle        = lipgloss.NewStyle().Bold(true)
	UserMessageStyle = lipgloss.NewStyle().Foreground(ChatUserColor)
	BotMessageStyle  = lipgloss.NewStyle().Foreground(ChatBotColor)

	// Status bar style
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(StatusBarFgColor).
			Background(StatusBarBgColor).
			Padding(0, 1)

	// Help footer style
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Input area styles
	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocusColor).
				Padding(0, 1)
)
