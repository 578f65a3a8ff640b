// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/cardinput/ui/tui/util"
	"github.com/toeirei/cardinput/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// Item pairs an input with the key its value is decoded under.
type Item struct {
	ID    string
	Input FormInput
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      KeyMap
	baseKeyMap  help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	// pass msg to active input
	cmd := f.updateActiveInput(msg)
	return f, cmd
}

func (f Form[T]) View() string {
	width := f.size.Width
	if width <= 0 {
		width = 80
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(width / len(row.items))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	f.focused, f.baseKeyMap = true, baseKeyMap
	if len(f.items) == 0 {
		return nil
	}
	return f.focusActive()
}

func (f *Form[T]) Blur() {
	f.focused, f.baseKeyMap = false, nil
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// ActiveID returns the id of the focused input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	return tea.Batch(
		resetCmd,
		f.OnSubmit(data, err),
	)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		if f.activeIndex == len(f.items)-1 {
			actionCmd = f.Submit()
		} else {
			actionCmd = f.changeActiveIndex(1)
		}
	case ActionPrev:
		// Stepping back stops at the first input.
		if f.activeIndex > 0 {
			actionCmd = f.changeActiveIndex(-1)
		}
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		actionCmd = f.OnCancel()
	}

	return tea.Batch(updateCmd, actionCmd)
}

// changeActiveIndex moves focus by delta, wrapping around the ends.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	next := util.Wrap(f.activeIndex+delta, len(f.items))
	if next != f.activeIndex {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = next
	}
	if !f.focused {
		return nil
	}
	return f.focusActive()
}

func (f *Form[T]) focusActive() tea.Cmd {
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.baseKeyMap, f.keyMap))
}

// Get decodes the input values into T, keyed by input id. Inputs returning
// nil (buttons) are skipped.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if v := item.input.Get(); v != nil {
			values[item.id] = v
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
