package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(t *testing.T, model tea.Model, text string) tea.Model {
	t.Helper()
	for _, r := range text {
		next, _ := model.Update(keyRune(r))
		model = next
	}
	return model
}

func TestMultiSelectToggleAndAccept(t *testing.T) {
	choices := []PromptChoice{
		{Label: "node_modules", Value: "node_modules", Preselected: true},
		{Label: "venv", Value: "venv"},
		{Label: "target", Value: "target"},
	}
	var model tea.Model = newMultiSelectModel("Setup", "Pick directories", choices, DefaultTheme(), false)

	// Cursor down to the second entry and toggle it on.
	model, _ = model.Update(key(tea.KeyDown))
	model, _ = model.Update(key(tea.KeySpace))
	model, _ = model.Update(key(tea.KeyEnter))

	final := model.(multiSelectModel)
	if final.err != nil {
		t.Fatalf("err = %v", final.err)
	}
	got := final.selectedValues()
	want := []string{"node_modules", "venv"}
	if len(got) != len(want) {
		t.Fatalf("selected = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selected = %v, want %v", got, want)
		}
	}
}

func TestMultiSelectSelectAllAndNone(t *testing.T) {
	choices := []PromptChoice{
		{Label: "a", Value: "a"},
		{Label: "b", Value: "b"},
	}
	var model tea.Model = newMultiSelectModel("Setup", "Pick", choices, DefaultTheme(), false)

	model, _ = model.Update(keyRune('a'))
	if got := model.(multiSelectModel).selectedValues(); len(got) != 2 {
		t.Fatalf("after select-all: %v", got)
	}
	model, _ = model.Update(keyRune('n'))
	if got := model.(multiSelectModel).selectedValues(); len(got) != 0 {
		t.Fatalf("after select-none: %v", got)
	}
}

func TestMultiSelectEmptySelectionIsValid(t *testing.T) {
	choices := []PromptChoice{{Label: "a", Value: "a"}}
	var model tea.Model = newMultiSelectModel("Setup", "Pick", choices, DefaultTheme(), false)

	model, _ = model.Update(key(tea.KeyEnter))
	final := model.(multiSelectModel)
	if final.err != nil {
		t.Fatalf("err = %v", final.err)
	}
	if got := final.selectedValues(); len(got) != 0 {
		t.Fatalf("selected = %v, want none", got)
	}
}

func TestMultiSelectCancel(t *testing.T) {
	var model tea.Model = newMultiSelectModel("Setup", "Pick", nil, DefaultTheme(), false)
	model, _ = model.Update(key(tea.KeyEsc))
	if err := model.(multiSelectModel).err; !errors.Is(err, ErrPromptCanceled) {
		t.Fatalf("err = %v, want ErrPromptCanceled", err)
	}
}

func TestConfirmInlineAcceptsYesAndNo(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"yes", true},
		{"n", false},
		{"no", false},
	}
	for _, tc := range cases {
		var model tea.Model = newConfirmInlineModel("Proceed?", DefaultTheme(), false)
		model = typeText(t, model, tc.input)
		model, _ = model.Update(key(tea.KeyEnter))
		final := model.(confirmInlineModel)
		if final.err != nil {
			t.Fatalf("%q: err = %v", tc.input, final.err)
		}
		if final.value != tc.want {
			t.Fatalf("%q: value = %v, want %v", tc.input, final.value, tc.want)
		}
	}
}

func TestConfirmInlineIgnoresOtherInput(t *testing.T) {
	var model tea.Model = newConfirmInlineModel("Proceed?", DefaultTheme(), false)
	model = typeText(t, model, "maybe")
	model, cmd := model.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Fatalf("unexpected quit on unrecognized answer")
	}
	_ = model
}

func TestNumberInlineDefaultAndValidation(t *testing.T) {
	var model tea.Model = newNumberInlineModel("Months", 6, DefaultTheme(), false)
	model, _ = model.Update(key(tea.KeyEnter))
	if got := model.(numberInlineModel).value; got != 6 {
		t.Fatalf("default value = %d, want 6", got)
	}

	model = newNumberInlineModel("Months", 6, DefaultTheme(), false)
	model = typeText(t, model, "abc")
	model, _ = model.Update(key(tea.KeyEnter))
	final := model.(numberInlineModel)
	if final.errorLine == "" {
		t.Fatalf("non-numeric input must be rejected inline")
	}
}

func TestNumberInlineParsesValue(t *testing.T) {
	var model tea.Model = newNumberInlineModel("Months", 6, DefaultTheme(), false)
	model = typeText(t, model, "12")
	model, _ = model.Update(key(tea.KeyEnter))
	if got := model.(numberInlineModel).value; got != 12 {
		t.Fatalf("value = %d, want 12", got)
	}
}

func TestInputInlineDefaultAndValidate(t *testing.T) {
	validate := func(v string) error {
		if !strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "~") {
			return errors.New("path must be absolute or start with ~")
		}
		return nil
	}

	var model tea.Model = newInputInlineModel("Roots", "~/Projects", validate, DefaultTheme(), false)
	model, _ = model.Update(key(tea.KeyEnter))
	final := model.(inputInlineModel)
	if final.err != nil {
		t.Fatalf("err = %v", final.err)
	}
	if final.value != "~/Projects" {
		t.Fatalf("value = %q, want default", final.value)
	}
}
