package tui

import "notecal/internal/tui/theme"

var (
	// Status bar
	StatusBarStyle = theme.StatusBar

	// Help text
	HelpStyle = theme.HelpHint
)
