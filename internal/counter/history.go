package counter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/lifecounter/internal/life"
	"github.com/DaanHessen/lifecounter/internal/theme"
)

const defaultHistoryRows = 12

// HistoryView draws a model's history trail with the pending total last.
// It caches its lines; call OnHistoryChanged after mutating the model.
type HistoryView struct {
	model   *life.Model
	palette theme.Palette
	theme   string
	rows    int
	lines   []string
}

func NewHistoryView() *HistoryView {
	return &HistoryView{palette: theme.For(theme.Default), theme: theme.Default, rows: defaultHistoryRows}
}

func (h *HistoryView) SetModel(m *life.Model) { h.model = m }

func (h *HistoryView) SetTheme(name string) {
	h.theme = name
	h.palette = theme.For(name)
	h.OnHistoryChanged()
}

func (h *HistoryView) Theme() string { return h.theme }

// SetRows limits how many trailing entries are drawn.
func (h *HistoryView) SetRows(n int) {
	if n < 1 {
		n = 1
	}
	h.rows = n
	h.OnHistoryChanged()
}

func (h *HistoryView) OnHistoryChanged() {
	h.lines = h.lines[:0]
	if h.model == nil {
		return
	}
	muted := lipgloss.NewStyle().Foreground(h.palette.Muted)
	gain := lipgloss.NewStyle().Foreground(h.palette.Gain)
	loss := lipgloss.NewStyle().Foreground(h.palette.Loss)

	prev := h.model.Start()
	entries := []string{muted.Render(fmt.Sprintf("%4d", prev))}
	for _, v := range h.model.History() {
		entries = append(entries, muted.Render(fmt.Sprintf("%4d", v))+" "+delta(v-prev, gain, loss))
		prev = v
	}
	if h.model.Pending() && h.model.Life() != prev {
		cur := lipgloss.NewStyle().Bold(true).Foreground(h.palette.Accent)
		entries = append(entries, cur.Render(fmt.Sprintf("%4d", h.model.Life()))+" "+delta(h.model.Life()-prev, gain, loss))
	}
	if len(entries) > h.rows {
		entries = entries[len(entries)-h.rows:]
	}
	h.lines = append(h.lines, entries...)
}

func (h *HistoryView) View() string {
	return strings.Join(h.lines, "\n")
}

func delta(d int, gain, loss lipgloss.Style) string {
	switch {
	case d > 0:
		return gain.Render(fmt.Sprintf("+%d", d))
	case d < 0:
		return loss.Render(fmt.Sprintf("%d", d))
	default:
		return ""
	}
}
