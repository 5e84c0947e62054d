package counter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/lifecounter/internal/life"
	"github.com/DaanHessen/lifecounter/internal/theme"
)

const (
	// StartingLifeKey is the settings key read by NewGame.
	StartingLifeKey     = "starting_life"
	DefaultStartingLife = 20

	SpinnerSpeed = 300 * time.Millisecond
	CommitDelay  = 2000 * time.Millisecond
)

// Settings is the string-keyed configuration the counter reads.
type Settings interface {
	String(key, def string) string
}

type Option func(*Counter)

// WithNameShown controls whether the name label is drawn.
func WithNameShown(shown bool) Option {
	return func(c *Counter) { c.nameShown = shown }
}

func WithCommitDelay(d time.Duration) Option {
	return func(c *Counter) { c.commit.delay = d }
}

// Counter is one player's column: a bounded picker, the life model behind
// it, the rendered history and the delayed commit of edits to history.
type Counter struct {
	id        int
	settings  Settings
	life      *life.Model
	picker    *Picker
	history   *HistoryView
	commit    *debouncer
	name      string
	nameShown bool

	// queued by the change listener, returned by the next Update/step call
	queued []tea.Cmd
}

func New(id int, settings Settings, opts ...Option) *Counter {
	c := &Counter{
		id:        id,
		settings:  settings,
		picker:    NewPicker(id),
		history:   NewHistoryView(),
		commit:    &debouncer{id: id, delay: CommitDelay},
		nameShown: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.picker.SetRange(life.MinLife, life.MaxLife)
	c.picker.SetSpeed(SpinnerSpeed)
	c.picker.SetOnChange(c.onPickerChanged)
	c.NewGame()
	return c
}

func (c *Counter) ID() int { return c.id }

// NewGame discards the current model and starts over at the configured
// starting life. An unparsable setting leaves the default in place.
func (c *Counter) NewGame() {
	start := DefaultStartingLife
	if c.settings != nil {
		raw := c.settings.String(StartingLifeKey, strconv.Itoa(DefaultStartingLife))
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			start = v
		}
	}
	c.commit.Cancel()
	c.picker.Release()
	c.life = life.New(start)
	c.history.SetModel(c.life)
	c.picker.SetCurrent(c.life.Life())
	c.history.OnHistoryChanged()
}

func (c *Counter) SetTheme(name string) { c.history.SetTheme(name) }
func (c *Counter) Theme() string        { return c.history.Theme() }
func (c *Counter) SetName(name string)  { c.name = name }
func (c *Counter) Name() string         { return c.name }

// Life is the total currently shown, committed or not.
func (c *Counter) Life() int { return c.life.Life() }

// Pending reports whether a delayed commit is outstanding.
func (c *Counter) Pending() bool { return c.commit.Armed() }

func (c *Counter) History() []int { return c.life.History() }

// CommitPendingChanges cancels the delayed commit and commits immediately.
func (c *Counter) CommitPendingChanges() {
	c.commit.Cancel()
	if c.life.Commit() {
		c.history.OnHistoryChanged()
	}
}

// ModelForSaving returns the model with every edit committed.
func (c *Counter) ModelForSaving() *life.Model {
	c.CommitPendingChanges()
	return c.life
}

// SetModelFromSave replaces the current model with a restored one.
func (c *Counter) SetModelFromSave(m *life.Model) {
	c.CommitPendingChanges()
	c.picker.Release()
	c.life = m
	c.history.SetModel(c.life)
	c.picker.SetCurrent(c.life.Life())
	c.history.OnHistoryChanged()
}

func (c *Counter) Increment() tea.Cmd {
	c.picker.Increment()
	return c.flush()
}

func (c *Counter) Decrement() tea.Cmd {
	c.picker.Decrement()
	return c.flush()
}

func (c *Counter) StepBy(n int) tea.Cmd {
	c.picker.StepBy(n)
	return c.flush()
}

// Hold scrolls the picker in dir at SpinnerSpeed until Release.
func (c *Counter) Hold(dir int) tea.Cmd { return c.picker.Hold(dir) }
func (c *Counter) Release()             { c.picker.Release() }
func (c *Counter) Holding() bool        { return c.picker.Holding() }

func (c *Counter) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CommitMsg:
		if c.commit.Fire(msg) && c.life.Commit() {
			c.history.OnHistoryChanged()
		}
		return nil
	case HoldTickMsg:
		next := c.picker.Update(msg)
		return tea.Batch(next, c.flush())
	}
	return nil
}

// onPickerChanged undoes the picker's wrap at either bound; anything else is
// a real edit that (re)arms the delayed commit.
func (c *Counter) onPickerChanged(p *Picker, oldVal, newVal int) {
	if oldVal == life.MinLife && newVal == life.MaxLife {
		p.SetCurrent(life.MinLife)
		return
	}
	if oldVal == life.MaxLife && newVal == life.MinLife {
		p.SetCurrent(life.MaxLife)
		return
	}
	c.life.SetLife(newVal)
	c.history.OnHistoryChanged()
	c.queued = append(c.queued, c.commit.Arm())
}

// flush returns the newest queued timer; older ones are already stale.
func (c *Counter) flush() tea.Cmd {
	if len(c.queued) == 0 {
		return nil
	}
	cmd := c.queued[len(c.queued)-1]
	c.queued = c.queued[:0]
	return cmd
}

// View draws the column. focused highlights the picker.
func (c *Counter) View(focused bool) string {
	p := theme.For(c.history.Theme())
	var b strings.Builder
	if c.nameShown {
		name := lipgloss.NewStyle().Bold(true).Foreground(p.Alt)
		b.WriteString(name.Render(c.name) + "\n")
	}
	b.WriteString(c.history.View() + "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(0, 1).
		Bold(true)
	if focused {
		box = box.BorderForeground(p.Accent).Background(p.Surface)
	}
	arrows := " "
	if c.picker.Holding() {
		arrows = "»"
	}
	b.WriteString(box.Render(fmt.Sprintf("▲ %4d ▼%s", c.picker.Current(), arrows)))
	return b.String()
}

// SetRows limits the history trail to the last n entries.
func (c *Counter) SetRows(n int) { c.history.SetRows(n) }

// PickerValue is the number the picker currently shows.
func (c *Counter) PickerValue() int { return c.picker.Current() }
