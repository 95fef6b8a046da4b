// Package static renders non-interactive report output.
package static

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/git-smee/git-smee/internal/install"
	"github.com/git-smee/git-smee/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	return t.String() + "\n"
}

// StatusHeaders are the columns of [StatusRow].
var StatusHeaders = []string{"HOOK", "STATE", "COMMANDS", "PATH"}

// StatusRow formats one hook status as a table row.
func StatusRow(st install.HookStatus) []string {
	commands := "-"
	if st.Configured {
		commands = strconv.Itoa(st.Commands)
	}
	return []string{st.Hook.String(), styles.FormatState(st.State), commands, styles.MutedStyle.Render(st.Path)}
}

// RenderStatus renders the hook status table.
func RenderStatus(statuses []install.HookStatus) string {
	rows := make([][]string, len(statuses))
	for i, st := range statuses {
		rows[i] = StatusRow(st)
	}
	return RenderTable(StatusHeaders, rows)
}

// RenderReport renders one line per hook followed by a summary line.
// verb names the operation in the summary ("installed", "removed").
func RenderReport(r install.Report, verb string) string {
	var b strings.Builder
	width := 0
	for _, res := range r.Results {
		width = max(width, len(res.Hook))
	}
	for _, res := range r.Results {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, res.Hook, styles.FormatOutcome(res.Outcome))
	}

	var n int
	switch verb {
	case "removed":
		n = r.Count(install.Removed)
	default:
		n = r.Count(install.Created) + r.Count(install.Updated) + r.Count(install.Replaced) + r.Count(install.Unchanged)
	}
	fmt.Fprintf(&b, "%s %d %s in %s\n", styles.Bold.Render(verb), n, plural(n, "hook", "hooks"), styles.InfoStyle.Render(r.Dir))
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
