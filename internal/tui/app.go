package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rollcall/internal/config"
	"github.com/jask/rollcall/internal/database/repository"
	"github.com/jask/rollcall/internal/roster"
	"github.com/jask/rollcall/internal/service"
	"github.com/jask/rollcall/internal/theme"
)

// App is the bubbletea model rendering a roster.
type App struct {
	ctx      context.Context
	cfg      config.Config
	roster   *roster.Roster
	repos    Repos
	services Services
	logger   *slog.Logger

	theme  theme.Theme
	styles theme.Styles
	keys   keyMap
	help   help.Model
	filter textinput.Model

	state     appState
	focus     pane
	cursor    [2]int
	filtering bool
	history   []repository.Event
	status    string
	statusErr bool
	width     int
	height    int
	unsub     func()
}

type Repos struct {
	Events *repository.EventRepo
}

type Services struct {
	Maintenance *service.MaintenanceService
}

type appState string

const (
	viewRoster  appState = "roster"
	viewHistory appState = "history"
)

type pane int

const (
	paneActive pane = iota
	paneRemoved
)

func (p pane) other() pane {
	if p == paneActive {
		return paneRemoved
	}
	return paneActive
}

// New builds the UI and subscribes it to r. Call Close to unsubscribe.
func New(ctx context.Context, cfg config.Config, r *roster.Roster, th theme.Theme, repos Repos, services Services, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name"
	ti.CharLimit = 64

	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		roster:   r,
		repos:    repos,
		services: services,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		filter:   ti,
		state:    viewRoster,
		width:    80,
		height:   24,
	}
	a.applyTheme(th)
	a.unsub = r.Subscribe(a.onChange)
	return a
}

// Close detaches the UI from the roster.
func (a *App) Close() {
	if a.unsub != nil {
		a.unsub()
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// onChange runs synchronously after every roster mutation.
func (a *App) onChange(c roster.Change) {
	switch c.Kind {
	case roster.ChangeRemoved:
		a.setStatus("Removed " + c.Name)
	case roster.ChangeRestored:
		a.setStatus("Restored " + c.Name)
	case roster.ChangeReplaced:
		a.setStatus("Roster reloaded")
	case roster.ChangeInitialized:
		a.setStatus("Roster reset to seed")
	}
	a.logger.Debug("roster changed", "kind", c.Kind, "name", c.Name,
		"active", len(c.Snapshot.Active), "removed", len(c.Snapshot.Removed))
	a.clampCursors()
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = "error: " + err.Error()
	a.statusErr = true
}

func (a *App) applyTheme(th theme.Theme) {
	a.theme = th
	a.styles = theme.NewStyles(th)
	a.help.Styles.ShortKey = a.styles.Key
	a.help.Styles.ShortDesc = a.styles.Desc
	a.help.Styles.ShortSeparator = a.styles.Muted
	a.help.Styles.FullKey = a.styles.Key
	a.help.Styles.FullDesc = a.styles.Desc
	a.help.Styles.FullSeparator = a.styles.Muted
	a.filter.PromptStyle = a.styles.Key
	a.filter.TextStyle = a.styles.Row
}

// visible returns the names shown in p after filtering.
func (a *App) visible(p pane) []string {
	var names []string
	if p == paneActive {
		names = a.roster.Active()
	} else {
		names = a.roster.Removed()
	}
	return roster.Match(names, a.filter.Value())
}

func (a *App) clampCursors() {
	for _, p := range []pane{paneActive, paneRemoved} {
		n := len(a.visible(p))
		if a.cursor[p] >= n {
			a.cursor[p] = max(0, n-1)
		}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.filter.Width = max(10, m.Width/2-8)
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.filtering {
			return a.handleFilterKey(m)
		}
		if a.state == viewHistory {
			return a.handleHistoryKey(m)
		}
		return a.handleRosterKey(m)
	case historyMsg:
		a.history = []repository.Event(m)
	case statusMsg:
		a.setStatus(string(m))
	case errMsg:
		a.logger.Error("ui command failed", "err", m.error)
		a.setError(m.error)
	}
	return a, nil
}

func (a *App) handleRosterKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor[a.focus] > 0 {
			a.cursor[a.focus]--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor[a.focus] < len(a.visible(a.focus))-1 {
			a.cursor[a.focus]++
		}
	case key.Matches(m, a.keys.Switch):
		a.focus = a.focus.other()
		a.clampCursors()
	case key.Matches(m, a.keys.Toggle):
		a.moveSelected()
	case key.Matches(m, a.keys.Filter):
		a.filtering = true
		return a, a.filter.Focus()
	case key.Matches(m, a.keys.ClearFilter):
		if a.filter.Value() != "" {
			a.filter.Reset()
			a.clampCursors()
			a.setStatus("Filter cleared")
		}
	case key.Matches(m, a.keys.History):
		a.enterHistory()
		return a, a.loadHistory()
	case key.Matches(m, a.keys.Theme):
		return a, a.toggleTheme()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) handleFilterKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.ClearFilter):
		a.filtering = false
		a.filter.Blur()
		a.filter.Reset()
		a.clampCursors()
		return a, nil
	case key.Matches(m, a.keys.ApplyFilter):
		a.filtering = false
		a.filter.Blur()
		a.cursor = [2]int{}
		if q := a.filter.Value(); q != "" {
			a.setStatus(fmt.Sprintf("Filter %q: %d active, %d removed", q, len(a.visible(paneActive)), len(a.visible(paneRemoved))))
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(m)
	a.cursor = [2]int{}
	return a, cmd
}

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.History), m.String() == "esc":
		a.leaveHistory()
	case key.Matches(m, a.keys.Refresh):
		return a, a.loadHistory()
	case key.Matches(m, a.keys.ClearHistory):
		return a, a.clearHistoryCmd()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) enterHistory() {
	a.state = viewHistory
	a.keys.History.SetHelp("h", "back")
	a.keys.Refresh.SetEnabled(true)
	a.keys.ClearHistory.SetEnabled(a.services.Maintenance != nil)
	a.keys.Toggle.SetEnabled(false)
	a.keys.Switch.SetEnabled(false)
	a.keys.Filter.SetEnabled(false)
}

func (a *App) leaveHistory() {
	a.state = viewRoster
	a.keys.History.SetHelp("h", "history")
	a.keys.Refresh.SetEnabled(false)
	a.keys.ClearHistory.SetEnabled(false)
	a.keys.Toggle.SetEnabled(true)
	a.keys.Switch.SetEnabled(true)
	a.keys.Filter.SetEnabled(true)
}

// moveSelected sends the highlighted name to the other list.
func (a *App) moveSelected() {
	names := a.visible(a.focus)
	if len(names) == 0 {
		a.setStatus("Nothing to move")
		return
	}
	name := names[min(a.cursor[a.focus], len(names)-1)]
	if a.focus == paneActive {
		a.roster.Remove(name)
	} else {
		a.roster.Restore(name)
	}
}

func (a *App) toggleTheme() tea.Cmd {
	name := "dark"
	if a.theme.Dark {
		name = "light"
	}
	th, err := theme.Named(name)
	if err != nil {
		a.setError(err)
		return nil
	}
	if over, err := th.WithOverrides(a.cfg.Theme.Colors); err == nil {
		th = over
	}
	a.applyTheme(th)
	a.cfg.Theme.Name = name
	a.setStatus("Theme: " + name)
	return a.saveConfigCmd(a.cfg)
}

// commands

func (a *App) saveConfigCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("Theme " + cfg.Theme.Name + " saved")
	}
}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Events == nil {
			return historyMsg(nil)
		}
		events, err := a.repos.Events.Recent(a.ctx, a.cfg.UI.HistoryLimit)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg(events)
	}
}

func (a *App) clearHistoryCmd() tea.Cmd {
	if a.services.Maintenance == nil {
		return func() tea.Msg { return errMsg{fmt.Errorf("maintenance not configured")} }
	}
	return tea.Sequence(
		func() tea.Msg {
			n, err := a.services.Maintenance.ClearHistory(a.ctx)
			if err != nil {
				return errMsg{err}
			}
			return statusMsg(fmt.Sprintf("Cleared %d history entries", n))
		},
		a.loadHistory(),
	)
}
