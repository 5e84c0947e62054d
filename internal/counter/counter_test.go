package counter

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/lifecounter/internal/life"
)

type mapSettings map[string]string

func (s mapSettings) String(key, def string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

func newTestCounter(t *testing.T, starting string) *Counter {
	t.Helper()
	s := mapSettings{}
	if starting != "" {
		s[StartingLifeKey] = starting
	}
	return New(1, s, WithCommitDelay(time.Millisecond))
}

// fire runs a timer command and feeds its message back to the counter.
func fire(t *testing.T, c *Counter, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a commit timer command")
	}
	c.Update(cmd())
}

func TestNewGameUsesStartingLife(t *testing.T) {
	c := newTestCounter(t, "30")
	if c.Life() != 30 || c.PickerValue() != 30 {
		t.Fatalf("life=%d picker=%d, want 30", c.Life(), c.PickerValue())
	}
	if len(c.History()) != 0 {
		t.Fatalf("history = %v, want empty", c.History())
	}
}

func TestNewGameBadStartingLifeFallsBack(t *testing.T) {
	for _, raw := range []string{"abc", "", "2.5"} {
		c := newTestCounter(t, raw)
		if c.Life() != DefaultStartingLife {
			t.Fatalf("starting %q: life=%d, want %d", raw, c.Life(), DefaultStartingLife)
		}
	}
	c := New(1, nil)
	if c.Life() != DefaultStartingLife {
		t.Fatalf("nil settings: life=%d", c.Life())
	}
}

func TestNewGameResetsHistory(t *testing.T) {
	c := newTestCounter(t, "20")
	c.Decrement()
	c.CommitPendingChanges()
	c.NewGame()
	if len(c.History()) != 0 || c.Pending() {
		t.Fatalf("NewGame left history=%v pending=%v", c.History(), c.Pending())
	}
}

func TestWraparoundAtMinimumIsSuppressed(t *testing.T) {
	c := newTestCounter(t, "-999")
	cmd := c.Decrement()
	if cmd != nil {
		t.Fatal("wrap should not arm a commit")
	}
	if c.PickerValue() != life.MinLife || c.Life() != life.MinLife {
		t.Fatalf("picker=%d life=%d, want %d", c.PickerValue(), c.Life(), life.MinLife)
	}
	if c.Pending() {
		t.Fatal("wrap left a pending commit")
	}
}

func TestWraparoundAtMaximumIsSuppressed(t *testing.T) {
	c := newTestCounter(t, "999")
	c.Increment()
	if c.PickerValue() != life.MaxLife || c.Life() != life.MaxLife {
		t.Fatalf("picker=%d life=%d, want %d", c.PickerValue(), c.Life(), life.MaxLife)
	}
}

func TestStepByStopsAtBound(t *testing.T) {
	c := newTestCounter(t, "997")
	c.StepBy(5)
	if c.PickerValue() != life.MaxLife || c.Life() != life.MaxLife {
		t.Fatalf("picker=%d life=%d, want %d", c.PickerValue(), c.Life(), life.MaxLife)
	}
}

func TestRapidEditsCommitOnce(t *testing.T) {
	c := newTestCounter(t, "20")
	var cmds []tea.Cmd
	for i := 0; i < 3; i++ {
		cmds = append(cmds, c.Decrement())
	}
	// every timer fires, but only the last one is live
	for _, cmd := range cmds {
		fire(t, c, cmd)
	}
	h := c.History()
	if len(h) != 1 || h[0] != 17 {
		t.Fatalf("history = %v, want [17]", h)
	}
	if c.Pending() {
		t.Fatal("commit still pending after timer fired")
	}
}

func TestCommitPendingChangesCancelsTimer(t *testing.T) {
	c := newTestCounter(t, "20")
	cmd := c.Decrement()
	c.CommitPendingChanges()
	if h := c.History(); len(h) != 1 || h[0] != 19 {
		t.Fatalf("history = %v, want [19]", h)
	}
	fire(t, c, cmd)
	c.CommitPendingChanges()
	if h := c.History(); len(h) != 1 {
		t.Fatalf("stale timer or repeat commit changed history: %v", h)
	}
}

func TestModelForSavingHasNoPendingEdits(t *testing.T) {
	c := newTestCounter(t, "20")
	c.StepBy(-4)
	c.Increment()
	m := c.ModelForSaving()
	if m.Pending() || c.Pending() {
		t.Fatal("saved model still pending")
	}
	before := m.History()
	c.CommitPendingChanges()
	if after := c.History(); len(after) != len(before) {
		t.Fatalf("commit after save changed history: %v -> %v", before, after)
	}
	if before[len(before)-1] != 17 {
		t.Fatalf("history = %v, want last entry 17", before)
	}
}

func TestSetModelFromSave(t *testing.T) {
	c := newTestCounter(t, "20")
	cmd := c.Decrement()

	restored := life.New(40)
	restored.SetLife(33)
	restored.Commit()
	c.SetModelFromSave(restored)

	if c.PickerValue() != 33 || c.Life() != 33 {
		t.Fatalf("picker=%d life=%d, want 33", c.PickerValue(), c.Life())
	}
	fire(t, c, cmd)
	if h := c.History(); len(h) != 1 || h[0] != 33 {
		t.Fatalf("history = %v, want [33]", h)
	}
}

func TestHoldStepsUntilReleased(t *testing.T) {
	c := newTestCounter(t, "20")
	if cmd := c.Hold(-1); cmd == nil {
		t.Fatal("Hold returned no tick")
	}
	for i := 0; i < 3; i++ {
		c.Update(HoldTickMsg{ID: c.ID(), Gen: c.picker.holdGen})
	}
	if c.Life() != 17 {
		t.Fatalf("life = %d after 3 held steps, want 17", c.Life())
	}
	stale := c.picker.holdGen
	c.Release()
	if next := c.Update(HoldTickMsg{ID: c.ID(), Gen: stale}); next != nil {
		t.Fatal("released picker kept ticking")
	}
	if c.Life() != 17 {
		t.Fatalf("life = %d after release, want 17", c.Life())
	}
}

func TestCommitMsgForOtherCounterIgnored(t *testing.T) {
	c := newTestCounter(t, "20")
	c.Decrement()
	c.Update(CommitMsg{ID: c.ID() + 1, Gen: c.commit.gen})
	if len(c.History()) != 0 {
		t.Fatal("commit addressed to another counter was applied")
	}
}

func TestViewHidesName(t *testing.T) {
	c := New(1, nil, WithNameShown(false))
	c.SetName("Alice")
	if got := c.View(false); strings.Contains(got, "Alice") {
		t.Fatal("hidden name rendered")
	}
	c = New(1, nil)
	c.SetName("Alice")
	if got := c.View(true); !strings.Contains(got, "Alice") {
		t.Fatal("shown name missing")
	}
}

func TestBurstBackToCommittedValueAddsNoEntry(t *testing.T) {
	c := newTestCounter(t, "20")
	c.Decrement()
	cmd := c.Increment()
	fire(t, c, cmd)
	if h := c.History(); len(h) != 0 {
		t.Fatalf("history after 20->19->20 = %v, want empty", h)
	}
	if c.Pending() || c.Life() != 20 {
		t.Fatalf("pending=%v life=%d, want settled at 20", c.Pending(), c.Life())
	}
}
