// Package styles provides shared lipgloss styles for git-smee output.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for conflicts and failures (red)
	Error color.Color = lipgloss.Color("196")

	// Warning is used for stale or orphaned hooks (orange)
	Warning color.Color = lipgloss.Color("214")

	// Muted is used for unchanged and inactive items (gray)
	Muted color.Color = lipgloss.Color("240")

	// Info is used for paths and hints (gray)
	Info color.Color = lipgloss.Color("244")
)

// Common styles
var (
	Bold         = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)
)
