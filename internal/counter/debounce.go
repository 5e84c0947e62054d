package counter

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CommitMsg is delivered when a counter's commit delay elapses.
type CommitMsg struct {
	ID  int
	Gen uint64
}

// debouncer keeps at most one outstanding delayed commit. Arming or
// cancelling bumps the generation, so ticks from earlier arms are dropped
// when they arrive.
type debouncer struct {
	id    int
	delay time.Duration
	gen   uint64
	armed bool
}

func (d *debouncer) Arm() tea.Cmd {
	d.gen++
	d.armed = true
	id, gen := d.id, d.gen
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return CommitMsg{ID: id, Gen: gen}
	})
}

func (d *debouncer) Cancel() {
	d.gen++
	d.armed = false
}

// Fire reports whether msg is the live timer for this debouncer and disarms it.
func (d *debouncer) Fire(msg CommitMsg) bool {
	if !d.armed || msg.ID != d.id || msg.Gen != d.gen {
		return false
	}
	d.armed = false
	return true
}

func (d *debouncer) Armed() bool { return d.armed }
