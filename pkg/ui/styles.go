package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// UI color scheme
var (
	red    = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	indigo = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	green  = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	gray   = lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#BDBDBD"}
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(indigo).
			Bold(true).
			Padding(0, 1)

	queryStyle = lipgloss.NewStyle().
			Foreground(indigo).
			Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(gray)

	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)
)
