package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harukidev/devsweep/internal/infra/debuglog"
	"github.com/harukidev/devsweep/internal/infra/output"
)

var ErrPromptCanceled = errors.New("prompt canceled")

// PromptChoice is one selectable row. Preselected rows start checked.
type PromptChoice struct {
	Label       string
	Value       string
	Description string
	Preselected bool
}

func runProgram(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model).Run()
}

// PromptMultiSelect shows a checkbox list and returns the selected values.
// Space toggles, "a" selects all, "n" clears, enter accepts (an empty
// selection is a valid answer), esc cancels.
func PromptMultiSelect(title, label string, choices []PromptChoice, theme Theme, useColor bool) ([]string, error) {
	debuglog.SetPrompt(label)
	defer debuglog.ClearPrompt()
	model := newMultiSelectModel(title, label, choices, theme, useColor)
	out, err := runProgram(model)
	if err != nil {
		return nil, err
	}
	final := out.(multiSelectModel)
	if final.err != nil {
		return nil, final.err
	}
	return final.selectedValues(), nil
}

// PromptConfirmInline collects a single y/n answer.
func PromptConfirmInline(label string, theme Theme, useColor bool) (bool, error) {
	debuglog.SetPrompt(label)
	defer debuglog.ClearPrompt()
	model := newConfirmInlineModel(label, theme, useColor)
	out, err := runProgram(model)
	if err != nil {
		return false, err
	}
	final := out.(confirmInlineModel)
	if final.err != nil {
		return false, final.err
	}
	return final.value, nil
}

// PromptNumberInline collects a non-negative integer; empty input accepts the
// default.
func PromptNumberInline(label string, defaultValue int, theme Theme, useColor bool) (int, error) {
	debuglog.SetPrompt(label)
	defer debuglog.ClearPrompt()
	model := newNumberInlineModel(label, defaultValue, theme, useColor)
	out, err := runProgram(model)
	if err != nil {
		return 0, err
	}
	final := out.(numberInlineModel)
	if final.err != nil {
		return 0, final.err
	}
	return final.value, nil
}

// PromptInputInline collects a single inline value with an optional default
// and validation. Empty input accepts the default. Validation errors are
// shown inline and reprompted.
func PromptInputInline(label, defaultValue string, validate func(string) error, theme Theme, useColor bool) (string, error) {
	debuglog.SetPrompt(label)
	defer debuglog.ClearPrompt()
	model := newInputInlineModel(label, defaultValue, validate, theme, useColor)
	out, err := runProgram(model)
	if err != nil {
		return "", err
	}
	final := out.(inputInlineModel)
	if final.err != nil {
		return "", final.err
	}
	return strings.TrimSpace(final.value), nil
}

type multiSelectModel struct {
	title    string
	label    string
	choices  []PromptChoice
	selected map[int]bool
	cursor   int
	theme    Theme
	useColor bool
	err      error
}

func newMultiSelectModel(title, label string, choices []PromptChoice, theme Theme, useColor bool) multiSelectModel {
	selected := make(map[int]bool, len(choices))
	for i, choice := range choices {
		if choice.Preselected {
			selected[i] = true
		}
	}
	return multiSelectModel{
		title:    title,
		label:    label,
		choices:  choices,
		selected: selected,
		theme:    theme,
		useColor: useColor,
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		setWrapWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrPromptCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeySpace:
			m.selected[m.cursor] = !m.selected[m.cursor]
			return m, nil
		}
		switch msg.String() {
		case "a":
			for i := range m.choices {
				m.selected[i] = true
			}
			return m, nil
		case "n":
			for i := range m.choices {
				m.selected[i] = false
			}
			return m, nil
		case "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
			return m, nil
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	var b strings.Builder
	header := m.title
	if m.useColor {
		header = m.theme.Header.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.label)
	hint := "space toggle, a all, n none, enter confirm"
	if m.useColor {
		hint = m.theme.Muted.Render(hint)
	}
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, label, hint))

	for i, choice := range m.choices {
		box := "[ ]"
		if m.selected[i] {
			box = "[x]"
		}
		display := fmt.Sprintf("%s %s", box, choice.Label)
		if choice.Description != "" {
			desc := " " + choice.Description
			if m.useColor {
				desc = m.theme.Muted.Render(desc)
			}
			display += desc
		}
		if i == m.cursor && m.useColor {
			display = lipgloss.NewStyle().Bold(true).Render(display)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", output.Indent+output.Indent, mutedToken(m.theme, m.useColor, output.LogConnector), display))
	}
	return b.String()
}

func (m multiSelectModel) selectedValues() []string {
	var out []string
	for i, choice := range m.choices {
		if m.selected[i] {
			out = append(out, choice.Value)
		}
	}
	return out
}

type confirmInlineModel struct {
	label    string
	theme    Theme
	useColor bool
	input    textinput.Model
	value    bool
	err      error
}

func newConfirmInlineModel(label string, theme Theme, useColor bool) confirmInlineModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "y/n"
	ti.Focus()
	if useColor {
		ti.PlaceholderStyle = theme.Muted
	}
	return confirmInlineModel{
		label:    label,
		theme:    theme,
		useColor: useColor,
		input:    ti,
	}
}

func (m confirmInlineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmInlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		setWrapWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrPromptCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.ToLower(strings.TrimSpace(m.input.Value()))
			switch value {
			case "y", "yes":
				m.value = true
				return m, tea.Quit
			case "n", "no":
				m.value = false
				return m, tea.Quit
			default:
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m confirmInlineModel) View() string {
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.label)
	line := fmt.Sprintf("%s%s %s (y/n): %s", output.Indent, prefix, label, m.input.View())
	return line + "\n"
}

type numberInlineModel struct {
	label        string
	defaultValue int
	theme        Theme
	useColor     bool
	input        textinput.Model
	value        int
	err          error
	errorLine    string
}

func newNumberInlineModel(label string, defaultValue int, theme Theme, useColor bool) numberInlineModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = strconv.Itoa(defaultValue)
	ti.Focus()
	if useColor {
		ti.PlaceholderStyle = theme.Muted
	}
	return numberInlineModel{
		label:        label,
		defaultValue: defaultValue,
		theme:        theme,
		useColor:     useColor,
		input:        ti,
	}
}

func (m numberInlineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m numberInlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrPromptCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				m.value = m.defaultValue
				return m, tea.Quit
			}
			value, err := strconv.Atoi(raw)
			if err != nil || value < 0 {
				m.errorLine = "enter a non-negative number"
				return m, nil
			}
			m.value = value
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if strings.TrimSpace(m.input.Value()) != "" {
		m.errorLine = ""
	}
	return m, cmd
}

func (m numberInlineModel) View() string {
	var b strings.Builder
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.label)
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, label, m.input.View()))
	if m.errorLine != "" {
		msg := m.errorLine
		if m.useColor {
			msg = m.theme.Error.Render(msg)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", output.Indent+output.Indent, mutedToken(m.theme, m.useColor, output.LogConnector), msg))
	}
	return b.String()
}

type inputInlineModel struct {
	label        string
	defaultValue string
	validate     func(string) error
	theme        Theme
	useColor     bool
	input        textinput.Model
	value        string
	err          error
	errorLine    string
}

func newInputInlineModel(label, defaultValue string, validate func(string) error, theme Theme, useColor bool) inputInlineModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = defaultValue
	ti.Focus()
	if defaultValue != "" {
		ti.SetValue(defaultValue)
		ti.CursorEnd()
	}
	if useColor {
		ti.PlaceholderStyle = theme.Muted
	}
	return inputInlineModel{
		label:        label,
		defaultValue: defaultValue,
		validate:     validate,
		theme:        theme,
		useColor:     useColor,
		input:        ti,
	}
}

func (m inputInlineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputInlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrPromptCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = m.defaultValue
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errorLine = err.Error()
					return m, nil
				}
			}
			m.value = value
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if strings.TrimSpace(m.input.Value()) != "" {
		m.errorLine = ""
	}
	return m, cmd
}

func (m inputInlineModel) View() string {
	var b strings.Builder
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.label)
	b.WriteString(fmt.Sprintf("%s%s %s: %s\n", output.Indent, prefix, label, m.input.View()))
	if m.errorLine != "" {
		msg := m.errorLine
		if m.useColor {
			msg = m.theme.Error.Render(msg)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", output.Indent+output.Indent, mutedToken(m.theme, m.useColor, output.LogConnector), msg))
	}
	return b.String()
}

func promptPrefix(theme Theme, useColor bool) string {
	if useColor {
		return theme.Accent.Render(output.StepPrefix)
	}
	return output.StepPrefix
}

func promptLabel(theme Theme, useColor bool, label string) string {
	if useColor {
		return theme.SectionTitle.Render(label)
	}
	return label
}

func mutedToken(theme Theme, useColor bool, token string) string {
	if useColor {
		return theme.Muted.Render(token)
	}
	return token
}
