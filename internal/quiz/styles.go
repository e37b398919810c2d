package quiz

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorSuccess = lipgloss.Color("#a8e6cf") // green - correct answers
	colorFailure = lipgloss.Color("#FF6B6B") // red - wrong answers
	colorPrompt  = lipgloss.Color("#4ecdc4") // teal - meaning prompts
	colorPinyin  = lipgloss.Color("#ffe66d") // yellow - pinyin annotation
	colorMuted   = lipgloss.Color("#666666") // gray - hints
)

var (
	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorPrompt).
			Bold(true)

	pinyinStyle = lipgloss.NewStyle().
			Foreground(colorPinyin).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(colorFailure).
			Bold(true)
)
