package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (a *App) View() string {
	header := a.renderHeader()
	status := a.renderStatus()
	footer := a.help.View(a.keys)
	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	switch a.state {
	case viewHistory:
		body = a.renderHistory(bodyHeight)
	default:
		body = a.renderRoster(bodyHeight)
	}
	return a.styles.App.Render(strings.Join([]string{header, body, status, footer}, "\n"))
}

func (a *App) renderHeader() string {
	title := strings.TrimSpace(a.cfg.UI.Title)
	if title == "" {
		title = "Roll Call"
	}
	counts := fmt.Sprintf("%d active · %d removed", len(a.roster.Active()), len(a.roster.Removed()))
	gap := a.width - ansi.StringWidth(title) - ansi.StringWidth(counts) - 2
	line := title + strings.Repeat(" ", max(1, gap)) + counts
	return a.styles.Header.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(ansi.Truncate(line, max(1, a.width-2), ""))
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	msg = ansi.Truncate(strings.ReplaceAll(msg, "\n", " "), max(1, a.width), "…")
	style := a.styles.Status
	if a.statusErr {
		style = a.styles.StatusErr
	}
	return style.Width(max(1, a.width)).Render(msg)
}

func (a *App) renderRoster(height int) string {
	gap := 1
	leftW := (a.width - gap) / 2
	rightW := a.width - gap - leftW
	left := a.renderPane(paneActive, "Active", leftW, height)
	right := a.renderPane(paneRemoved, "Removed", rightW, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

func (a *App) renderPane(p pane, title string, width, height int) string {
	style := a.styles.Pane
	if p == a.focus {
		style = a.styles.PaneFocused
	}
	// border (2) + horizontal padding (2)
	inner := max(4, width-4)
	rowsAvail := max(1, height-2-1)

	names := a.visible(p)
	lines := make([]string, 0, rowsAvail+1)
	lines = append(lines, a.styles.PaneTitle.Render(fmt.Sprintf("%s (%d)", title, len(names))))

	if a.filtering || a.filter.Value() != "" {
		lines = append(lines, ansi.Truncate(a.filter.View(), inner, ""))
		rowsAvail = max(1, rowsAvail-1)
	}

	if len(names) == 0 {
		empty := "no names"
		if a.filter.Value() != "" {
			empty = "no matches"
		}
		lines = append(lines, a.styles.Muted.Render(empty))
	}

	start := 0
	if cur := a.cursor[p]; cur >= rowsAvail {
		start = cur - rowsAvail + 1
	}
	end := min(len(names), start+rowsAvail)
	for i := start; i < end; i++ {
		lines = append(lines, a.renderRow(p, i, names[i], inner))
	}

	return style.
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderRow(p pane, idx int, name string, width int) string {
	text := ansi.Truncate(name, max(1, width-2), "…")
	if idx != a.cursor[p] {
		return "  " + a.styles.Row.Render(text)
	}
	if p == a.focus && !a.filtering {
		return a.styles.Cursor.Render("> " + text)
	}
	return "  " + a.styles.CursorIdle.Render(text)
}

func (a *App) renderHistory(height int) string {
	width := max(1, a.width-2)
	lines := []string{a.styles.PaneTitle.Render("History")}
	switch {
	case a.repos.Events == nil:
		lines = append(lines, a.styles.Warning.Render("history unavailable: no database configured"))
	case len(a.history) == 0:
		lines = append(lines, a.styles.Muted.Render("no changes recorded"))
	default:
		for _, e := range a.history {
			name := e.Name
			if name == "" {
				name = "-"
			}
			line := fmt.Sprintf("%s  %-11s %-20s %d active / %d removed",
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Kind,
				ansi.Truncate(name, 20, "…"), e.ActiveCount, e.RemovedCount)
			lines = append(lines, a.styles.Info.Render(ansi.Truncate(line, width-2, "")))
		}
	}
	return a.styles.PaneFocused.
		Width(width).
		Height(max(1, height-2)).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
