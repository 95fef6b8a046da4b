package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/git-smee/git-smee/internal/install"
)

// Symbols for install outcomes and hook states.
const (
	SymbolOK       = "✓"
	SymbolSame     = "="
	SymbolConflict = "!"
	SymbolReplaced = "⇄"
	SymbolRemoved  = "✗"
	SymbolKept     = "·"
	SymbolStale    = "~"
	SymbolMissing  = "-"
)

// FormatOutcome returns a colored symbol followed by the outcome name.
func FormatOutcome(o install.Outcome) string {
	var sym string
	var style lipgloss.Style
	switch o {
	case install.Created, install.Updated:
		sym, style = SymbolOK, SuccessStyle
	case install.Unchanged:
		sym, style = SymbolSame, MutedStyle
	case install.Conflict:
		sym, style = SymbolConflict, ErrorStyle
	case install.Replaced:
		sym, style = SymbolReplaced, WarningStyle
	case install.Removed:
		sym, style = SymbolRemoved, SuccessStyle
	default:
		sym, style = SymbolKept, MutedStyle
	}
	return style.Render(sym + " " + o.String())
}

// FormatState returns a colored symbol followed by the state name.
func FormatState(s install.State) string {
	var sym string
	var style lipgloss.Style
	switch s {
	case install.Installed:
		sym, style = SymbolOK, SuccessStyle
	case install.Stale, install.Orphaned:
		sym, style = SymbolStale, WarningStyle
	case install.Missing:
		sym, style = SymbolMissing, MutedStyle
	default:
		sym, style = SymbolConflict, ErrorStyle
	}
	return style.Render(sym + " " + s.String())
}
