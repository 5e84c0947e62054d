package prefs

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClosedMsg reports how a dialog was dismissed.
type ClosedMsg struct {
	Key       string
	Confirmed bool
	Value     string
	Err       error
}

// Dialog edits a TextPreference. Changes stay in the field until Confirm.
type Dialog struct {
	pref     *TextPreference
	title    string
	input    textinput.Model
	open     bool
	selected bool
}

// Open starts a dialog with the field set to the preference's current text.
func Open(p *TextPreference, title string) Dialog {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 64
	in.Placeholder = p.Default()
	in.SetValue(p.Text())
	in.CursorEnd()
	in.Focus()
	return Dialog{pref: p, title: title, input: in, open: true}
}

func (d Dialog) IsOpen() bool   { return d.open }
func (d Dialog) Value() string  { return d.input.Value() }
func (d Dialog) Selected() bool { return d.selected }
func (d Dialog) Key() string    { return d.pref.Key() }

// ResetToDefault puts the default into the field and selects all of it, so
// the next typed character replaces it. The preference is untouched.
func (d *Dialog) ResetToDefault() {
	d.input.SetValue(d.pref.Default())
	d.input.CursorEnd()
	d.selected = true
}

// Confirm writes the field to the preference unless the change listener
// refuses it. It reports whether the value was applied.
func (d *Dialog) Confirm() (bool, error) {
	d.open = false
	v := d.input.Value()
	if !d.pref.allowChange(v) {
		return false, nil
	}
	return true, d.pref.SetText(v)
}

func (d *Dialog) Cancel() { d.open = false }

func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.open {
		return d, nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	switch k.String() {
	case "enter":
		applied, err := d.Confirm()
		return d, closed(ClosedMsg{Key: d.Key(), Confirmed: applied, Value: d.input.Value(), Err: err})
	case "esc":
		d.Cancel()
		return d, closed(ClosedMsg{Key: d.Key()})
	case "ctrl+r":
		d.ResetToDefault()
		return d, nil
	}
	if d.selected {
		d.selected = false
		switch k.Type {
		case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
			d.input.SetValue("")
			if k.Type != tea.KeyRunes && k.Type != tea.KeySpace {
				return d, nil
			}
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func closed(msg ClosedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (d Dialog) View() string {
	title := lipgloss.NewStyle().Bold(true).Render(d.title)
	field := d.input.View()
	if d.selected {
		field = d.input.Prompt + lipgloss.NewStyle().Reverse(true).Render(d.input.Value())
	}
	hint := lipgloss.NewStyle().Faint(true).Render("enter save • esc cancel • ctrl+r default")
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(50)
	return box.Render(title + "\n\n" + field + "\n\n" + hint)
}
