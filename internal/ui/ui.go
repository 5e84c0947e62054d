package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/DaanHessen/lifecounter/internal/counter"
	"github.com/DaanHessen/lifecounter/internal/life"
	"github.com/DaanHessen/lifecounter/internal/prefs"
	"github.com/DaanHessen/lifecounter/internal/theme"
	"github.com/DaanHessen/lifecounter/internal/util"
)

const (
	viewBoard  = "board"
	viewDialog = "dialog"
	viewHelp   = "help"

	themeKey  = "theme"
	largeStep = 5
)

// Store is everything the board persists: preferences, the counters'
// settings lookups and saved games.
type Store interface {
	prefs.KeyValueStore
	counter.Settings
	SaveGame(ctx context.Context, players []*life.Model) (uuid.UUID, error)
	LatestGame(ctx context.Context) ([]*life.Model, error)
}

type model struct {
	ctx      context.Context
	store    Store
	counters []*counter.Counter
	names    []*prefs.TextPreference
	starting *prefs.TextPreference
	focus    int
	theme    string
	view     string
	dialog   prefs.Dialog
	status   string
	help     string
	width    int
	height   int
	styles   struct{ title, status, hint lipgloss.Style }
}

func initialModel(ctx context.Context, st Store, cfg util.Config) model {
	m := model{ctx: ctx, store: st, view: viewBoard}
	players := cfg.Players
	if players < 1 {
		players = util.DefaultPlayers
	}

	m.theme = cfg.Theme
	if !theme.Known(m.theme) {
		m.theme = st.String(themeKey, theme.Default)
	}

	m.starting = prefs.NewTextPreference(counter.StartingLifeKey, strconv.Itoa(counter.DefaultStartingLife), st)
	if err := m.starting.InitialValue(true); err != nil {
		m.status = "Could not read starting life: " + err.Error()
	}
	m.starting.OnChange(func(v string) bool {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return err == nil && n >= life.MinLife && n <= life.MaxLife
	})

	for i := 0; i < players; i++ {
		c := counter.New(i, st, counter.WithNameShown(!cfg.HideNames))
		c.SetTheme(m.theme)
		name := prefs.NewTextPreference(fmt.Sprintf("player_name_%d", i+1), fmt.Sprintf("Player %d", i+1), st)
		if err := name.InitialValue(true); err != nil {
			m.status = "Could not read player names: " + err.Error()
		}
		c.SetName(name.Text())
		m.counters = append(m.counters, c)
		m.names = append(m.names, name)
	}

	m.styles.title = lipgloss.NewStyle().Bold(true).Foreground(theme.For(m.theme).Accent)
	m.styles.status = lipgloss.NewStyle().Foreground(theme.For(m.theme).Alt)
	m.styles.hint = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return m
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		rows := msg.Height - 9
		for _, c := range m.counters {
			c.SetRows(rows)
		}
		return m, nil
	case counter.CommitMsg:
		if c := m.counterByID(msg.ID); c != nil {
			return m, c.Update(msg)
		}
		return m, nil
	case counter.HoldTickMsg:
		if c := m.counterByID(msg.ID); c != nil {
			return m, c.Update(msg)
		}
		return m, nil
	case prefs.ClosedMsg:
		m.view = viewBoard
		m.onDialogClosed(msg)
		return m, nil
	case tea.KeyMsg:
		switch m.view {
		case viewDialog:
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		case viewHelp:
			m.view = viewBoard
			return m, nil
		}
		return m.handleBoardKey(msg.String())
	}
	if m.view == viewDialog {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleBoardKey(k string) (tea.Model, tea.Cmd) {
	c := m.counters[m.focus]
	switch k {
	case "q", "ctrl+c":
		m.saveGame()
		return m, tea.Quit
	case "left", "h":
		m.moveFocus(-1)
	case "right", "l", "tab":
		m.moveFocus(1)
	case "up", "k", "+":
		return m, c.Increment()
	case "down", "j", "-":
		return m, c.Decrement()
	case "pgup":
		return m, c.StepBy(largeStep)
	case "pgdown":
		return m, c.StepBy(-largeStep)
	case "shift+up":
		return m, c.Hold(1)
	case "shift+down":
		return m, c.Hold(-1)
	case " ":
		c.Release()
	case "c":
		m.commitAll()
		m.status = "Committed"
	case "n":
		m.newGame()
	case "s":
		m.saveGame()
	case "o":
		m.loadGame()
	case "t":
		m.cycleTheme()
	case "e":
		c.Release()
		m.dialog = prefs.Open(m.names[m.focus], fmt.Sprintf("Name for player %d", m.focus+1))
		m.view = viewDialog
	case "b":
		c.Release()
		m.dialog = prefs.Open(m.starting, "Starting life")
		m.view = viewDialog
	case "?":
		c.Release()
		m.renderHelp()
		m.view = viewHelp
	}
	return m, nil
}

func (m *model) counterByID(id int) *counter.Counter {
	if id < 0 || id >= len(m.counters) {
		return nil
	}
	return m.counters[id]
}

func (m *model) moveFocus(step int) {
	m.counters[m.focus].Release()
	n := len(m.counters)
	m.focus = ((m.focus+step)%n + n) % n
}

func (m *model) commitAll() {
	for _, c := range m.counters {
		c.CommitPendingChanges()
	}
}

func (m *model) newGame() {
	for _, c := range m.counters {
		c.NewGame()
	}
	m.status = fmt.Sprintf("New game at %d life", m.counters[0].Life())
}

func (m *model) saveGame() {
	players := make([]*life.Model, 0, len(m.counters))
	for _, c := range m.counters {
		players = append(players, c.ModelForSaving())
	}
	if _, err := m.store.SaveGame(m.ctx, players); err != nil {
		m.status = "Save failed: " + err.Error()
		return
	}
	m.status = "Game saved"
}

func (m *model) loadGame() {
	players, err := m.store.LatestGame(m.ctx)
	if err != nil {
		m.status = "Load failed: " + err.Error()
		return
	}
	if len(players) != len(m.counters) {
		m.status = fmt.Sprintf("Saved game has %d players, table has %d", len(players), len(m.counters))
		return
	}
	for i, c := range m.counters {
		c.SetModelFromSave(players[i])
	}
	m.status = "Game loaded"
}

func (m *model) cycleTheme() {
	m.theme = theme.Next(m.theme, 1)
	for _, c := range m.counters {
		c.SetTheme(m.theme)
	}
	p := theme.For(m.theme)
	m.styles.title = m.styles.title.Foreground(p.Accent)
	m.styles.status = m.styles.status.Foreground(p.Alt)
	if err := m.store.PersistString(themeKey, m.theme); err != nil {
		m.status = "Theme not saved: " + err.Error()
		return
	}
	m.status = "Theme: " + m.theme
}

func (m *model) onDialogClosed(msg prefs.ClosedMsg) {
	switch {
	case msg.Err != nil:
		m.status = "Could not save preference: " + msg.Err.Error()
		return
	case !msg.Confirmed && msg.Key == counter.StartingLifeKey && msg.Value != "":
		m.status = fmt.Sprintf("Starting life must be a number from %d to %d", life.MinLife, life.MaxLife)
		return
	case !msg.Confirmed:
		m.status = ""
		return
	}
	if msg.Key == counter.StartingLifeKey {
		m.status = "Starting life " + m.starting.Text() + " applies from the next new game"
		return
	}
	for i, p := range m.names {
		if p.Key() == msg.Key {
			m.counters[i].SetName(p.Text())
		}
	}
	m.status = "Name saved"
}

const helpMarkdown = `# Life counter

| Key | Action |
|---|---|
| ←/→ h/l | select player |
| ↑/↓ k/j | life +1 / -1 |
| PgUp/PgDn | life +5 / -5 |
| Shift+↑/↓ | scroll until Space |
| c | commit pending changes |
| n | new game |
| s / o | save / load last game |
| t | next theme |
| e | edit player name |
| b | edit starting life |
| q | save and quit |

Changes join the history after two seconds without edits.
`

func (m *model) renderHelp() {
	if m.help != "" {
		return
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(72))
	if err != nil {
		m.help = helpMarkdown
		return
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		m.help = helpMarkdown
		return
	}
	m.help = out
}

func (m model) View() string {
	switch m.view {
	case viewHelp:
		return m.help + "\n" + m.styles.hint.Render("any key to return")
	case viewDialog:
		return m.dialog.View()
	}
	cols := make([]string, 0, len(m.counters))
	for i, c := range m.counters {
		cols = append(cols, lipgloss.NewStyle().Padding(0, 2).Render(c.View(i == m.focus)))
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render("LIFE COUNTER") + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, cols...) + "\n\n")
	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.hint.Render("↑↓ life • ←→ player • c commit • n new • s save • o load • t theme • e name • ? help • q quit"))
	return b.String()
}
