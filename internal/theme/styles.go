package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	App         lipgloss.Style
	Header      lipgloss.Style
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style
	Row         lipgloss.Style
	Cursor      lipgloss.Style
	CursorIdle  lipgloss.Style
	Muted       lipgloss.Style
	Status      lipgloss.Style
	StatusErr   lipgloss.Style
	Info        lipgloss.Style
	Warning     lipgloss.Style
	Key         lipgloss.Style
	Desc        lipgloss.Style
}

func NewStyles(t Theme) Styles {
	c := t.Colors
	return Styles{
		App: lipgloss.NewStyle().
			Foreground(c.OnBackground).
			Background(c.Background),
		Header: lipgloss.NewStyle().
			Foreground(c.OnPrimary).
			Background(c.Primary).
			Bold(true).
			Padding(0, 1),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Accent).
			Foreground(c.OnSurface).
			Padding(0, 1),
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary).
			Foreground(c.OnSurface).
			Padding(0, 1),
		PaneTitle: lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Row:       lipgloss.NewStyle().Foreground(c.OnSurface),
		Cursor: lipgloss.NewStyle().
			Foreground(c.OnSecondary).
			Background(c.Secondary).
			Bold(true),
		CursorIdle: lipgloss.NewStyle().Foreground(c.OnSurface).Underline(true),
		Muted:      lipgloss.NewStyle().Foreground(c.Accent).Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(c.Success).
			Background(c.Surface),
		StatusErr: lipgloss.NewStyle().
			Foreground(c.Error).
			Background(c.Surface).
			Bold(true),
		Info:    lipgloss.NewStyle().Foreground(c.Info),
		Warning: lipgloss.NewStyle().Foreground(c.Warning),
		Key:     lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Desc:    lipgloss.NewStyle().Foreground(c.Accent),
	}
}
