package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Default is used for unknown theme names.
const Default = "catppuccin"

// Palette is the set of colors a counter column is drawn with.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Alt     lipgloss.Color
	Border  lipgloss.Color
	Gain    lipgloss.Color
	Loss    lipgloss.Color
	Surface lipgloss.Color
}

var palettes = map[string]Palette{
	"catppuccin": {
		Text:    lipgloss.Color("#cdd6f4"),
		Muted:   lipgloss.Color("#a6adc8"),
		Accent:  lipgloss.Color("#cba6f7"),
		Alt:     lipgloss.Color("#f38ba8"),
		Border:  lipgloss.Color("#585b70"),
		Gain:    lipgloss.Color("#94e2d5"),
		Loss:    lipgloss.Color("#f38ba8"),
		Surface: lipgloss.Color("#313244"),
	},
	"dracula": {
		Text:    lipgloss.Color("#f8f8f2"),
		Muted:   lipgloss.Color("#6272a4"),
		Accent:  lipgloss.Color("#ff79c6"),
		Alt:     lipgloss.Color("#bd93f9"),
		Border:  lipgloss.Color("#44475a"),
		Gain:    lipgloss.Color("#50fa7b"),
		Loss:    lipgloss.Color("#ff5555"),
		Surface: lipgloss.Color("#343746"),
	},
	"gruvbox": {
		Text:    lipgloss.Color("#ebdbb2"),
		Muted:   lipgloss.Color("#a89984"),
		Accent:  lipgloss.Color("#fabd2f"),
		Alt:     lipgloss.Color("#d3869b"),
		Border:  lipgloss.Color("#665c54"),
		Gain:    lipgloss.Color("#b8bb26"),
		Loss:    lipgloss.Color("#fb4934"),
		Surface: lipgloss.Color("#3c3836"),
	},
	"solarized_dark": {
		Text:    lipgloss.Color("#fdf6e3"),
		Muted:   lipgloss.Color("#93a1a1"),
		Accent:  lipgloss.Color("#b58900"),
		Alt:     lipgloss.Color("#268bd2"),
		Border:  lipgloss.Color("#586e75"),
		Gain:    lipgloss.Color("#859900"),
		Loss:    lipgloss.Color("#dc322f"),
		Surface: lipgloss.Color("#073642"),
	},
}

// For returns the named palette, falling back to Default.
func For(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[Default]
}

// Known reports whether name is a defined palette.
func Known(name string) bool {
	_, ok := palettes[name]
	return ok
}

func Names() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Next cycles through Names by step, wrapping in both directions.
func Next(current string, step int) string {
	names := Names()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
