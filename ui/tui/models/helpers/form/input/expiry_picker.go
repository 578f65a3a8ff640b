// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/internal/cardfield"
	"github.com/toeirei/cardinput/internal/i18n"
	"github.com/toeirei/cardinput/internal/logging"
	"github.com/toeirei/cardinput/ui/tui/models/helpers/form"
	windowtitle "github.com/toeirei/cardinput/ui/tui/models/helpers/title"
	"github.com/toeirei/cardinput/ui/tui/util"
)

const (
	columnMonth = iota
	columnYear
)

// ExpiryPicker is a two-column month/year picker. Moving a column's row
// applies the selection immediately, like a wheel picker does.
type ExpiryPicker struct {
	Label  string
	KeyMap ExpiryPickerKeyMap
	Theme  Theme

	field    *cardfield.Field
	picker   *cardfield.Picker
	month    int
	year     int
	column   int
	focused  bool
	now      func() time.Time
	onChange func(kind cardfield.Kind, value string)
}

type ExpiryPickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Done   key.Binding
	Cancel key.Binding
}

func (k ExpiryPickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Done, k.Cancel}
}

func (k ExpiryPickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Left}, {k.Done, k.Cancel}}
}

type ExpiryPickerOpt = func(p *ExpiryPicker)

func WithPickerTheme(theme Theme) ExpiryPickerOpt {
	return func(p *ExpiryPicker) {
		p.Theme = theme
	}
}

// WithPickerClock sets the clock used when the picker opens.
func WithPickerClock(now func() time.Time) ExpiryPickerOpt {
	return func(p *ExpiryPicker) {
		p.now = now
	}
}

// WithPickerOnChange forwards every reported value to fn.
func WithPickerOnChange(fn func(kind cardfield.Kind, value string)) ExpiryPickerOpt {
	return func(p *ExpiryPicker) {
		p.onChange = fn
	}
}

func NewExpiryPicker(label, placeholder string, opts ...ExpiryPickerOpt) *ExpiryPicker {
	p := &ExpiryPicker{
		Label: label,
		Theme: DefaultTheme,
		KeyMap: ExpiryPickerKeyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", i18n.T("help.adjust"))),
			Down:   key.NewBinding(key.WithKeys("down", "j")),
			Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", i18n.T("help.column"))),
			Right:  key.NewBinding(key.WithKeys("right", "l")),
			Done:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("help.done"))),
			Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", i18n.T("help.cancel"))),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.field = cardfield.New(cardfield.ExpirationDate,
		cardfield.WithPlaceholder(placeholder),
		cardfield.WithClock(p.now),
		cardfield.WithOnTextChanged(func(value string) {
			if p.onChange != nil {
				p.onChange(cardfield.ExpirationDate, value)
			}
		}),
	)
	return p
}

// Field exposes the underlying field controller.
func (p *ExpiryPicker) Field() *cardfield.Field { return p.field }

// Focus opens a new picker presentation. The rows start at the current
// value when there is one.
func (p *ExpiryPicker) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	p.focused = true
	p.open()
	return tea.Batch(util.AnnounceKeyMapCmd(baseKeyMap, p.KeyMap), windowtitle.Set(p.Label))
}

func (p *ExpiryPicker) Blur() {
	p.focused = false
}

func (p *ExpiryPicker) open() {
	picker, err := p.field.OpenPicker()
	if err != nil {
		logging.Errorf("open expiry picker: %v", err)
		return
	}
	p.picker = picker
	p.month, p.year = 0, 0
	if v := p.field.Value(); v != "" {
		if m, y, err := picker.IndexOf(v); err == nil {
			p.month, p.year = m, y
		}
	}
}

func (p *ExpiryPicker) Get() any {
	return p.field.Value()
}

func (p *ExpiryPicker) Init() tea.Cmd {
	return nil
}

func (p *ExpiryPicker) Reset() {
	p.field.Reset()
	p.picker = nil
	p.month, p.year, p.column = 0, 0, columnMonth
}

// Set accepts "MM/YY", "MM/YYYY" or "MMYY". Values the picker does not offer
// are ignored.
func (p *ExpiryPicker) Set(value any) {
	s, ok := value.(string)
	if !ok || s == "" {
		return
	}
	if p.picker == nil {
		p.open()
	}
	if p.picker == nil {
		return
	}
	m, y, err := p.picker.IndexOf(s)
	if err != nil {
		logging.Debugf("ignoring expiry value: %v", err)
		return
	}
	p.month, p.year = m, y
	p.apply()
}

func (p *ExpiryPicker) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || p.picker == nil {
		return nil, form.ActionNone
	}

	switch {
	case key.Matches(kmsg, p.KeyMap.Up):
		p.move(-1)
	case key.Matches(kmsg, p.KeyMap.Down):
		p.move(1)
	case key.Matches(kmsg, p.KeyMap.Left), key.Matches(kmsg, p.KeyMap.Right):
		p.column = 1 - p.column
	case key.Matches(kmsg, p.KeyMap.Done):
		p.field.Done()
		return nil, form.ActionNext
	case key.Matches(kmsg, p.KeyMap.Cancel):
		return nil, form.ActionCancel
	}
	return nil, form.ActionNone
}

func (p *ExpiryPicker) move(delta int) {
	months, years := p.picker.Options()
	if p.column == columnMonth {
		p.month = util.Wrap(p.month+delta, len(months))
	} else {
		p.year = util.Wrap(p.year+delta, len(years))
	}
	p.apply()
}

func (p *ExpiryPicker) apply() {
	if _, err := p.field.SelectExpiry(p.month, p.year); err != nil {
		logging.Errorf("select expiry: %v", err)
	}
}

func (p *ExpiryPicker) View(width int) string {
	label := p.Theme.label(p.focused).Render(p.Label)

	var body string
	switch {
	case p.focused && p.picker != nil:
		hint := lipgloss.NewStyle().Foreground(p.Theme.Subtle).
			Render(i18n.T("picker.month") + " / " + i18n.T("picker.year"))
		body = lipgloss.JoinVertical(lipgloss.Left, p.renderColumns(), hint)
	case p.field.Text() != "":
		body = p.field.Text()
	default:
		body = lipgloss.NewStyle().Foreground(p.Theme.Subtle).Render(p.field.Placeholder())
	}

	box := p.Theme.box(p.field.Border(), p.focused, width).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}

func (p *ExpiryPicker) renderColumns() string {
	months, years := p.picker.Options()
	cell := func(text string, active bool) string {
		style := lipgloss.NewStyle().Padding(0, 1)
		if active {
			style = style.Foreground(p.Theme.Focused).Bold(true).Reverse(true)
		}
		return style.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		cell(months[p.month], p.column == columnMonth),
		"/",
		cell(years[p.year], p.column == columnYear),
	)
}

var _ form.FormInput = (*ExpiryPicker)(nil)
