package theme

import "testing"

func TestNextWrapsBothWays(t *testing.T) {
	names := Names()
	last := names[len(names)-1]
	if got := Next(last, 1); got != names[0] {
		t.Fatalf("Next(%q, 1) = %q, want %q", last, got, names[0])
	}
	if got := Next(names[0], -1); got != last {
		t.Fatalf("Next(%q, -1) = %q, want %q", names[0], got, last)
	}
}

func TestForFallsBackToDefault(t *testing.T) {
	if For("no-such-theme") != For(Default) {
		t.Fatal("unknown theme should use the default palette")
	}
	if Known("no-such-theme") {
		t.Fatal("Known reported an undefined theme")
	}
}
