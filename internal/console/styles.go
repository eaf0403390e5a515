package console

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#5FAFAF") // Teal accent
	subtleColor  = lipgloss.Color("#666666") // Gray for secondary text
	successColor = lipgloss.Color("#87AF87") // Muted sage for success
	warningColor = lipgloss.Color("#D7AF5F") // Muted amber for warnings
	errorColor   = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// sourceStyle for the message-source line
	sourceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// infoStyle for informational message levels
	infoStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// warnStyle for warning message levels
	warnStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// errStyle for error message levels and exception details
	errStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// successStyle for per-item success lines
	successStyle = lipgloss.NewStyle().
			Foreground(successColor)
)
