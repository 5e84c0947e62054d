package counter

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ChangeFunc is called after the picker's value changes.
type ChangeFunc func(p *Picker, oldVal, newVal int)

// HoldTickMsg advances a held picker by one step.
type HoldTickMsg struct {
	ID  int
	Gen uint64
}

// Picker is a scrolling number input. Like the spinner it stands in for, it
// wraps past its bounds instead of stopping at them; callers that want a
// hard stop compensate in their ChangeFunc.
type Picker struct {
	id       int
	min, max int
	current  int
	speed    time.Duration
	onChange ChangeFunc

	holdDir int
	holdGen uint64
}

func NewPicker(id int) *Picker {
	return &Picker{id: id, min: 0, max: 200, speed: 300 * time.Millisecond}
}

func (p *Picker) ID() int      { return p.id }
func (p *Picker) Current() int { return p.current }

func (p *Picker) SetRange(min, max int) {
	if min > max {
		min, max = max, min
	}
	p.min, p.max = min, max
	p.current = p.bound(p.current)
}

// SetSpeed sets the interval between steps while the picker is held.
func (p *Picker) SetSpeed(d time.Duration) {
	if d > 0 {
		p.speed = d
	}
}

func (p *Picker) SetOnChange(fn ChangeFunc) { p.onChange = fn }

// SetCurrent moves the display without notifying the change listener.
func (p *Picker) SetCurrent(v int) { p.current = p.bound(v) }

func (p *Picker) Increment() { p.change(p.current + 1) }
func (p *Picker) Decrement() { p.change(p.current - 1) }

// StepBy applies n single steps, notifying for each one.
func (p *Picker) StepBy(n int) {
	for ; n > 0; n-- {
		p.Increment()
	}
	for ; n < 0; n++ {
		p.Decrement()
	}
}

// Hold starts stepping in direction dir (+1 or -1) every Speed until Release.
func (p *Picker) Hold(dir int) tea.Cmd {
	switch {
	case dir > 0:
		p.holdDir = 1
	case dir < 0:
		p.holdDir = -1
	default:
		p.Release()
		return nil
	}
	p.holdGen++
	return p.tick()
}

func (p *Picker) Release() {
	p.holdDir = 0
	p.holdGen++
}

func (p *Picker) Holding() bool { return p.holdDir != 0 }

// Update handles hold ticks addressed to this picker.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(HoldTickMsg)
	if !ok || tick.ID != p.id || tick.Gen != p.holdGen || p.holdDir == 0 {
		return nil
	}
	p.StepBy(p.holdDir)
	return p.tick()
}

func (p *Picker) tick() tea.Cmd {
	id, gen := p.id, p.holdGen
	return tea.Tick(p.speed, func(time.Time) tea.Msg {
		return HoldTickMsg{ID: id, Gen: gen}
	})
}

func (p *Picker) change(v int) {
	if v > p.max {
		v = p.min
	} else if v < p.min {
		v = p.max
	}
	old := p.current
	p.current = v
	if p.onChange != nil && old != v {
		p.onChange(p, old, v)
	}
}

func (p *Picker) bound(v int) int {
	if v < p.min {
		return p.min
	}
	if v > p.max {
		return p.max
	}
	return v
}
