// Package prefs edits single string preferences kept in a key-value store.
package prefs

import (
	"encoding/json"
)

// KeyValueStore persists preference strings.
type KeyValueStore interface {
	PersistString(key, value string) error
	PersistedString(key, def string) (string, error)
}

// TextPreference is a persisted string with a fixed default. The default is
// only ever offered in the edit dialog; it is not written until confirmed.
type TextPreference struct {
	key   string
	text  string
	def   string
	store KeyValueStore

	dependents []func(disable bool)
	onChange   func(value string) bool
}

// NewTextPreference returns a preference bound to key in store. A nil store
// makes the preference non-persistent.
func NewTextPreference(key, def string, store KeyValueStore) *TextPreference {
	return &TextPreference{key: key, def: def, store: store}
}

func (p *TextPreference) Key() string      { return p.key }
func (p *TextPreference) Text() string     { return p.text }
func (p *TextPreference) Default() string  { return p.def }
func (p *TextPreference) Persistent() bool { return p.store != nil }

// OnDependencyChange registers fn to hear when ShouldDisableDependents flips.
func (p *TextPreference) OnDependencyChange(fn func(disable bool)) {
	p.dependents = append(p.dependents, fn)
}

// OnChange sets a listener that may veto a confirmed edit by returning false.
func (p *TextPreference) OnChange(fn func(value string) bool) { p.onChange = fn }

// ShouldDisableDependents is true while the text is empty.
func (p *TextPreference) ShouldDisableDependents() bool { return p.text == "" }

// SetText stores value in memory and in the backing store.
func (p *TextPreference) SetText(value string) error {
	wasBlocking := p.ShouldDisableDependents()
	p.text = value

	var err error
	if p.store != nil {
		err = p.store.PersistString(p.key, value)
	}

	if isBlocking := p.ShouldDisableDependents(); isBlocking != wasBlocking {
		for _, fn := range p.dependents {
			fn(isBlocking)
		}
	}
	return err
}

// InitialValue loads the persisted value when restore is set, otherwise
// starts from the default. A key that was never written also gets the default.
func (p *TextPreference) InitialValue(restore bool) error {
	if !restore || p.store == nil {
		return p.SetText(p.def)
	}
	v, err := p.store.PersistedString(p.key, p.def)
	if err != nil {
		return err
	}
	return p.SetText(v)
}

func (p *TextPreference) allowChange(value string) bool {
	return p.onChange == nil || p.onChange(value)
}

type savedState struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`
	Text string `json:"text"`
}

const stateKind = "text_preference"

// SaveState snapshots the in-memory text. Persistent preferences return nil
// since the store already holds their value.
func (p *TextPreference) SaveState() []byte {
	if p.Persistent() {
		return nil
	}
	b, err := json.Marshal(savedState{Kind: stateKind, Key: p.key, Text: p.text})
	if err != nil {
		return nil
	}
	return b
}

// RestoreState applies a blob from SaveState. Blobs written by something
// else, or for another key, are ignored.
func (p *TextPreference) RestoreState(blob []byte) error {
	if len(blob) == 0 {
		return nil
	}
	var st savedState
	if err := json.Unmarshal(blob, &st); err != nil || st.Kind != stateKind || st.Key != p.key {
		return nil
	}
	return p.SetText(st.Text)
}
