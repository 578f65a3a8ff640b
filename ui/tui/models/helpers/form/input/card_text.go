// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/internal/cardfield"
	"github.com/toeirei/cardinput/internal/i18n"
	"github.com/toeirei/cardinput/internal/logging"
	"github.com/toeirei/cardinput/ui/tui/models/helpers/form"
	windowtitle "github.com/toeirei/cardinput/ui/tui/models/helpers/title"
	"github.com/toeirei/cardinput/ui/tui/util"
)

// CardText is a single-line form input driven by a cardfield.Field. The
// textinput holds what the user types; the field formats it and writes the
// result back.
type CardText struct {
	Label       string
	KeyMap      CardTextKeyMap
	Theme       Theme
	AutoAdvance bool

	field    *cardfield.Field
	input    textinput.Model
	focused  bool
	advance  bool
	onChange func(kind cardfield.Kind, value string)
	copyFn   func(string) error
}

type CardTextKeyMap struct {
	Done   key.Binding
	Cancel key.Binding
	Copy   key.Binding
	// Back only fires while the input is empty.
	Back key.Binding
}

func (k CardTextKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Cancel, k.Copy}
}

func (k CardTextKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Back}}
}

type CardTextOpt = func(t *CardText)

func WithTheme(theme Theme) CardTextOpt {
	return func(t *CardText) {
		t.Theme = theme
	}
}

func WithAutoAdvance(enabled bool) CardTextOpt {
	return func(t *CardText) {
		t.AutoAdvance = enabled
	}
}

// WithOnChange forwards every reported value to fn.
func WithOnChange(fn func(kind cardfield.Kind, value string)) CardTextOpt {
	return func(t *CardText) {
		t.onChange = fn
	}
}

func withClipboard(fn func(string) error) CardTextOpt {
	return func(t *CardText) {
		t.copyFn = fn
	}
}

func NewCardText(kind cardfield.Kind, label, placeholder string, opts ...CardTextOpt) *CardText {
	cfg := cardfield.ConfigFor(kind)

	doneHelp := i18n.T("help.next")
	if cfg.ReturnKey == cardfield.ReturnDone {
		doneHelp = i18n.T("help.done")
	}

	t := &CardText{
		Label:       label,
		Theme:       DefaultTheme,
		AutoAdvance: true,
		KeyMap: CardTextKeyMap{
			Done:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", doneHelp)),
			Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", i18n.T("help.cancel"))),
			Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", i18n.T("help.copy"))),
			Back:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", i18n.T("help.prev"))),
		},
		input:  textinput.New(),
		copyFn: clipboard.WriteAll,
	}
	t.input.Prompt = ""
	t.input.Placeholder = placeholder
	t.input.CharLimit = cfg.MaxLength
	t.field = cardfield.New(kind,
		cardfield.WithPlaceholder(placeholder),
		cardfield.WithOnAdvanceRequested(func() { t.advance = true }),
		cardfield.WithOnTextChanged(func(value string) {
			if t.onChange != nil {
				t.onChange(kind, value)
			}
		}),
		cardfield.WithWriteBack(func(text string) {
			pos := keepCursor(t.input.Value(), t.input.Position(), text)
			t.input.SetValue(text)
			t.input.SetCursor(pos)
		}),
	)

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Field exposes the underlying field controller.
func (t *CardText) Field() *cardfield.Field { return t.field }

func (t *CardText) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	t.focused = true
	return tea.Batch(
		t.input.Focus(),
		util.AnnounceKeyMapCmd(baseKeyMap, t.KeyMap),
		windowtitle.Set(t.Label),
	)
}

func (t *CardText) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *CardText) Get() any {
	return t.field.Value()
}

func (t *CardText) Init() tea.Cmd {
	return nil
}

func (t *CardText) Reset() {
	t.field.Reset()
	t.advance = false
}

func (t *CardText) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
		t.field.SetText(value)
		t.input.CursorEnd()
		t.advance = false
	}
}

func (t *CardText) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, t.KeyMap.Done):
			t.field.Done()
			t.advance = false
			if t.field.Config().ReturnKey == cardfield.ReturnDone {
				return nil, form.ActionSubmit
			}
			return nil, form.ActionNext
		case key.Matches(msg, t.KeyMap.Cancel):
			return nil, form.ActionCancel
		case key.Matches(msg, t.KeyMap.Back) && t.input.Value() == "":
			return nil, form.ActionPrev
		case key.Matches(msg, t.KeyMap.Copy):
			if err := t.copyFn(t.field.Value()); err != nil {
				logging.Warnf("copy %s to clipboard: %v", t.field.Kind(), err)
			}
			return nil, form.ActionNone
		}
		if t.field.Config().Numeric() && !t.acceptsNumeric(msg) {
			return nil, form.ActionNone
		}
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.input.Value() == before {
		return cmd, form.ActionNone
	}

	t.field.Input(t.input.Value())
	if t.advance {
		t.advance = false
		if t.AutoAdvance {
			return cmd, form.ActionNext
		}
	}
	return cmd, form.ActionNone
}

// acceptsNumeric filters typed runes the way a numeric keypad would. Pasted
// text goes through unchanged and is judged by the validator.
func (t *CardText) acceptsNumeric(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Paste {
		return true
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// keepCursor maps a cursor position in raw onto display so it stays behind
// the same character after grouping spaces were added or removed.
func keepCursor(raw string, pos int, display string) int {
	r := []rune(raw)
	pos = min(max(pos, 0), len(r))
	n := 0
	for _, c := range r[:pos] {
		if c != ' ' {
			n++
		}
	}
	d := []rune(display)
	for i, c := range d {
		if c == ' ' {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	return len(d)
}

func (t *CardText) View(width int) string {
	t.input.Width = max(width-6, 1)

	label := t.Theme.label(t.focused).Render(t.Label)
	if !t.field.Valid() {
		label += " " + lipgloss.NewStyle().Foreground(t.Theme.BorderError).Render(i18n.T("field.invalid"))
	}
	box := t.Theme.box(t.field.Border(), t.focused, width).Render(t.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}

var _ form.FormInput = (*CardText)(nil)
