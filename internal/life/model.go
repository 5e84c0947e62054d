package life

import (
	"encoding/json"
	"fmt"
)

const (
	MinLife = -999
	MaxLife = 999
)

// Model is one player's life total plus the committed history of totals.
// Only the value set since the last commit is pending.
type Model struct {
	start   int
	life    int
	history []int
	pending bool
}

// New returns a model at start with an empty history.
func New(start int) *Model {
	v := Clamp(start)
	return &Model{start: v, life: v}
}

// Clamp bounds v to [MinLife, MaxLife].
func Clamp(v int) int {
	if v < MinLife {
		return MinLife
	}
	if v > MaxLife {
		return MaxLife
	}
	return v
}

func (m *Model) Life() int  { return m.life }
func (m *Model) Start() int { return m.start }

// Pending reports whether SetLife was called since the last commit.
func (m *Model) Pending() bool { return m.pending }

// SetLife updates the current value. Nothing is recorded until Commit.
func (m *Model) SetLife(v int) {
	m.life = Clamp(v)
	m.pending = true
}

// LastCommitted is the newest history entry, or the start value.
func (m *Model) LastCommitted() int {
	if len(m.history) == 0 {
		return m.start
	}
	return m.history[len(m.history)-1]
}

// Commit appends the current value to history when an edit is pending and
// the value moved since the last commit. It reports whether an entry was added.
func (m *Model) Commit() bool {
	if !m.pending {
		return false
	}
	m.pending = false
	if m.life == m.LastCommitted() {
		return false
	}
	m.history = append(m.history, m.life)
	return true
}

// History returns a copy of the committed values in turn order.
func (m *Model) History() []int {
	out := make([]int, len(m.history))
	copy(out, m.history)
	return out
}

type wireModel struct {
	Start   int   `json:"start"`
	Life    int   `json:"life"`
	History []int `json:"history"`
}

func (m *Model) MarshalJSON() ([]byte, error) {
	h := m.history
	if h == nil {
		h = []int{}
	}
	return json.Marshal(wireModel{Start: m.start, Life: m.life, History: h})
}

// UnmarshalJSON restores a saved model. Saved models never carry a pending edit.
func (m *Model) UnmarshalJSON(b []byte) error {
	var w wireModel
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	for i, v := range w.History {
		if v < MinLife || v > MaxLife {
			return fmt.Errorf("history entry %d out of range: %d", i, v)
		}
	}
	m.start = Clamp(w.Start)
	m.life = Clamp(w.Life)
	m.history = append([]int(nil), w.History...)
	m.pending = false
	return nil
}
