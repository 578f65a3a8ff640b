// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top level model of the card form: four card fields,
// a submit button and the key help of whatever field holds focus.
package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/cardinput/buildvars"
	"github.com/toeirei/cardinput/internal/cardfield"
	"github.com/toeirei/cardinput/internal/i18n"
	"github.com/toeirei/cardinput/internal/logging"
	"github.com/toeirei/cardinput/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/cardinput/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/cardinput/ui/tui/models/helpers/title"
	"github.com/toeirei/cardinput/ui/tui/models/views/footer"
	"github.com/toeirei/cardinput/ui/tui/util"
)

const title string = "Cardinput"

var ErrCancelled = errors.New("card input cancelled")

// CardDetails are the reported values of the form. Valid is computed from
// the fields, not decoded.
type CardDetails struct {
	Number       string `mapstructure:"number" yaml:"number"`
	Holder       string `mapstructure:"holder" yaml:"holder"`
	Expiry       string `mapstructure:"expiry" yaml:"expiry"`
	SecurityCode string `mapstructure:"security_code" yaml:"security_code"`
	Valid        bool   `mapstructure:"-" yaml:"valid"`
}

type Options struct {
	Theme       forminput.Theme
	AutoAdvance bool
	// Initial prefills the fields when set.
	Initial *CardDetails
	Now     func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Theme:       forminput.DefaultTheme,
		AutoAdvance: true,
		Now:         time.Now,
	}
}

type submittedMsg struct {
	details CardDetails
	err     error
}

type cancelledMsg struct{}

type Model struct {
	form         form.Form[CardDetails]
	footer       *footer.Model
	keyMap       KeyMap
	titleHandler *windowtitle.TitleHandler

	number   *forminput.CardText
	holder   *forminput.CardText
	expiry   *forminput.ExpiryPicker
	security *forminput.CardText

	result    *CardDetails
	err       error
	cancelled bool
}

func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	onChange := func(kind cardfield.Kind, value string) {
		logging.Debugf("%s changed (%d chars)", kind, len(value))
	}
	textInput := func(kind cardfield.Kind, label, placeholder string) *forminput.CardText {
		return forminput.NewCardText(kind, label, placeholder,
			forminput.WithTheme(opts.Theme),
			forminput.WithAutoAdvance(opts.AutoAdvance),
			forminput.WithOnChange(onChange),
		)
	}

	m := &Model{
		footer: footer.New(),
		keyMap: BaseKeyMap(),
		number: textInput(cardfield.CardNumber, i18n.T("field.card_number.label"), i18n.T("field.card_number.placeholder")),
		holder: textInput(cardfield.CardHolder, i18n.T("field.card_holder.label"), i18n.T("field.card_holder.placeholder")),
		expiry: forminput.NewExpiryPicker(
			i18n.T("field.expiration_date.label"),
			i18n.T("field.expiration_date.placeholder"),
			forminput.WithPickerTheme(opts.Theme),
			forminput.WithPickerClock(opts.Now),
			forminput.WithPickerOnChange(onChange),
		),
		security: textInput(cardfield.SecurityCode, i18n.T("field.security_code.label"), i18n.T("field.security_code.placeholder")),
		titleHandler: windowtitle.NewHandler(
			fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")),
			" | ",
		),
	}

	m.form = form.New[CardDetails](
		form.WithKeyMap[CardDetails](m.keyMap),
		form.WithOnSubmit(func(details CardDetails, err error) tea.Cmd {
			return func() tea.Msg { return submittedMsg{details: details, err: err} }
		}),
		form.WithOnCancel[CardDetails](func() tea.Cmd {
			return func() tea.Msg { return cancelledMsg{} }
		}),
		form.WithInput[CardDetails]("number", m.number),
		form.WithInput[CardDetails]("holder", m.holder),
		form.WithRow[CardDetails](
			form.Item{ID: "expiry", Input: m.expiry},
			form.Item{ID: "security_code", Input: m.security},
		),
		form.WithInput[CardDetails]("submit", forminput.NewButton(i18n.T("form.submit"), opts.Theme)),
	)

	if opts.Initial != nil {
		if err := m.form.Set(*opts.Initial); err != nil {
			logging.Warnf("prefill card form: %v", err)
		}
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.titleHandler.Init(),
		m.form.Init(),
		m.form.Focus(m.keyMap),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.footer.Update(msg)
	case util.AnnounceKeyMapMsg:
		m.footer.Update(msg)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
			return m, nil
		}
	case submittedMsg:
		if msg.err != nil {
			logging.Errorf("decode card form: %v", msg.err)
			m.err = msg.err
			m.footer.SetStatus(msg.err.Error(), lipgloss.NewStyle().Foreground(lipgloss.Color("196")))
			return m, nil
		}
		details := msg.details
		details.Valid = m.valid()
		m.result = &details
		m.footer.SetStatus(i18n.T("form.submitted")+": "+m.Summary(), lipgloss.NewStyle().Bold(true))
		logging.Infof("card details captured (valid=%t)", details.Valid)
		return m, tea.Quit
	case cancelledMsg:
		m.cancel()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(i18n.T("form.title")),
		m.form.View(),
		m.footer.View(),
	)
}

func (m *Model) cancel() {
	m.cancelled = true
	m.footer.SetStatus(i18n.T("form.cancelled"), lipgloss.NewStyle().Faint(true))
}

func (m *Model) valid() bool {
	return m.number.Field().Valid() &&
		m.holder.Field().Valid() &&
		m.expiry.Field().Valid() &&
		m.security.Field().Valid()
}

// Summary shows the card with its number masked.
func (m *Model) Summary() string {
	return i18n.T("form.summary", m.number.Field().Masked(), m.holder.Field().Value(), m.expiry.Field().Value())
}

// Result returns the submitted details, or ErrCancelled when the user left
// the form.
func (m *Model) Result() (*CardDetails, error) {
	switch {
	case m.result != nil:
		return m.result, nil
	case m.err != nil:
		return nil, m.err
	default:
		return nil, ErrCancelled
	}
}
