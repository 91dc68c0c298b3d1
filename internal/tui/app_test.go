package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/rollcall/internal/config"
	"github.com/jask/rollcall/internal/database"
	"github.com/jask/rollcall/internal/database/repository"
	"github.com/jask/rollcall/internal/roster"
	"github.com/jask/rollcall/internal/service"
	"github.com/jask/rollcall/internal/theme"
)

func newTestApp(t *testing.T, names ...string) (*App, *roster.Roster) {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Alice", "Bob", "Carol"}
	}
	r := roster.New(names)
	cfg := config.Config{UI: config.UIConfig{Title: "Test Roll", HistoryLimit: 10}}
	a := New(context.Background(), cfg, r, theme.Light(), Repos{}, Services{}, nil)
	t.Cleanup(a.Close)
	return a, r
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

func TestEnterRemovesHighlightedName(t *testing.T) {
	a, r := newTestApp(t)

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"Bob", "Carol"}, r.Active())
	require.Equal(t, []string{"Alice"}, r.Removed())
	require.Equal(t, "Removed Alice", a.status)
}

func TestCursorAndRestore(t *testing.T) {
	a, r := newTestApp(t)

	send(a, runes("j"), runes("x"))
	require.Equal(t, []string{"Alice", "Carol"}, r.Active())
	require.Equal(t, []string{"Bob"}, r.Removed())

	send(a, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"Alice", "Carol", "Bob"}, r.Active())
	require.Empty(t, r.Removed())
	require.Equal(t, "Restored Bob", a.status)
}

func TestCursorClampsAfterMove(t *testing.T) {
	a, r := newTestApp(t)

	send(a, runes("j"), runes("j"), runes("j"))
	require.Equal(t, 2, a.cursor[paneActive])
	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"Carol"}, r.Removed())
	require.Equal(t, 1, a.cursor[paneActive])
}

func TestMoveOnEmptyPaneIsNoOp(t *testing.T) {
	a, r := newTestApp(t)

	send(a, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"Alice", "Bob", "Carol"}, r.Active())
	require.Empty(t, r.Removed())
	require.Equal(t, "Nothing to move", a.status)
}

func TestFilterNarrowsSelection(t *testing.T) {
	a, r := newTestApp(t)

	send(a, runes("/"))
	require.True(t, a.filtering)
	send(a, runes("car"), tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, a.filtering)
	require.Equal(t, []string{"Carol"}, a.visible(paneActive))

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"Carol"}, r.Removed())

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, []string{"Alice", "Bob"}, a.visible(paneActive))
}

func TestQuitKeysDoNotLeakIntoFilter(t *testing.T) {
	a, _ := newTestApp(t)

	send(a, runes("/"), runes("q"))
	require.True(t, a.filtering)
	require.Equal(t, "q", a.filter.Value())

	cmd := send(a, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	require.True(t, quit)
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t)
	cmd := send(a, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestViewShowsBothLists(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, tea.WindowSizeMsg{Width: 100, Height: 20}, tea.KeyMsg{Type: tea.KeyEnter})

	out := a.View()
	for _, want := range []string{"Test Roll", "Active (2)", "Removed (1)", "Alice", "Bob", "Carol", "Removed Alice"} {
		require.True(t, strings.Contains(out, want), "view missing %q", want)
	}
}

func TestExternalChangesReachView(t *testing.T) {
	a, r := newTestApp(t)

	r.Remove("Bob")
	require.Equal(t, "Removed Bob", a.status)

	a.Close()
	r.Restore("Bob")
	require.Equal(t, "Removed Bob", a.status, "closed app no longer observes")
}

func TestHistoryWithoutDatabase(t *testing.T) {
	a, _ := newTestApp(t)

	cmd := send(a, runes("h"))
	require.Equal(t, viewHistory, a.state)
	require.NotNil(t, cmd)
	send(a, cmd())
	require.Contains(t, a.View(), "history unavailable")

	send(a, runes("x"))
	require.Equal(t, viewHistory, a.state, "move is disabled in history")

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, viewRoster, a.state)
}

func TestHistoryFromJournal(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "ui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := roster.New([]string{"Alice", "Bob"})
	j := &service.Journal{State: repository.NewRosterRepo(db), Events: repository.NewEventRepo(db)}
	j.Attach(r)
	go j.Run(ctx)

	cfg := config.Config{UI: config.UIConfig{HistoryLimit: 10}}
	a := New(ctx, cfg, r, theme.Dark(), Repos{Events: repository.NewEventRepo(db)}, Services{Maintenance: &service.MaintenanceService{DB: db}}, nil)
	t.Cleanup(a.Close)
	send(a, tea.WindowSizeMsg{Width: 120, Height: 30}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, j.Close())

	cmd := send(a, runes("h"))
	send(a, cmd())
	require.Len(t, a.history, 1)
	require.Equal(t, "Alice", a.history[0].Name)
	require.Contains(t, a.View(), "removed")

	cmd = send(a, runes("c"))
	require.NotNil(t, cmd)
	n, err := repository.NewEventRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n, "clear runs as a command")
	_, err = a.services.Maintenance.ClearHistory(ctx)
	require.NoError(t, err)
	send(a, a.loadHistory()())
	require.Empty(t, a.history)
	require.Contains(t, a.View(), "no changes recorded")
}

func TestThemeToggle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROLLCALL_CONFIG", "")
	a, _ := newTestApp(t)
	require.False(t, a.theme.Dark)

	cmd := send(a, runes("t"))
	require.True(t, a.theme.Dark)
	require.Equal(t, "dark", a.cfg.Theme.Name)
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, statusMsg("Theme dark saved"), msg)
}
