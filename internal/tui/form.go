package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formBooking formKind = iota + 1
	formRegister
	formStatus
)

type field struct {
	label string
	input textinput.Model
}

// form is a small stack of text inputs. Every field is required.
type form struct {
	kind   formKind
	title  string
	fields []field
	focus  int
}

func newField(label, placeholder, value string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 32
	ti.SetValue(value)
	return field{label: label, input: ti}
}

func newForm(kind formKind, title string, fields ...field) *form {
	f := &form{kind: kind, title: title, fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) complete() bool {
	for i := range f.fields {
		if f.value(i) == "" {
			return false
		}
	}
	return true
}

func (f *form) move(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) view(s Styles) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render(" "+f.title+" ") + "\n\n")
	for _, fl := range f.fields {
		sb.WriteString(s.Label.Render(fl.label) + fl.input.View() + "\n")
	}
	return s.Form.Render(sb.String())
}
