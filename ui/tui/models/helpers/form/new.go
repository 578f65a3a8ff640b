// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{
		OnSubmit: func(T, error) tea.Cmd { return nil },
		OnCancel: func() tea.Cmd { return nil },
		keyMap:   DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.baseKeyMap = keyMap
	}
}

// WithInput adds an input on a row of its own.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return WithRow[T](Item{ID: id, Input: input})
}

// WithRow adds several inputs rendered side by side. Navigation order
// follows the order inputs are added.
func WithRow[T any](items ...Item) NewOpt[T] {
	return func(form *Form[T]) {
		row := formRow{}
		for _, item := range items {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{id: item.ID, input: item.Input})
		}
		form.rows = append(form.rows, row)
	}
}
