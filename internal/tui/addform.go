package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/protocollar/mcpm/internal/claude"
	"github.com/protocollar/mcpm/internal/mcpstore"
)

// ErrCancelled is returned when the user leaves the form without saving.
var ErrCancelled = errors.New("cancelled")

// Answers pre-fills the add form.
type Answers struct {
	Name    string
	Type    string
	Path    string
	Options string
}

const (
	fieldName = iota
	fieldType
	fieldPath
	fieldOptions
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Type", "Path", "Options"}

var fieldPlaceholders = [fieldCount]string{
	"supabase",
	"npx or env",
	"supabase/mcp-server-supabase@latest or KEY=VALUE",
	"extra arguments (optional)",
}

type addModel struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	err       error
	record    *mcpstore.Record
	cancelled bool
	width     int
}

func newAddModel(a Answers) addModel {
	m := addModel{width: 72}
	values := [fieldCount]string{a.Name, a.Type, a.Path, a.Options}
	if values[fieldType] == "" {
		values[fieldType] = string(mcpstore.KindNpx)
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 256
		ti.Prompt = ""
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	// Start on the first empty required field.
	m.focus = fieldName
	for _, f := range []int{fieldName, fieldType, fieldPath} {
		if values[f] == "" {
			m.focus = f
			break
		}
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m addModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m addModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m.setFocus((m.focus + 1) % fieldCount), nil
		case key.Matches(msg, keys.Prev):
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
		case key.Matches(msg, keys.Submit):
			if m.focus < fieldCount-1 {
				return m.setFocus(m.focus + 1), nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m addModel) setFocus(i int) addModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m addModel) submit() (tea.Model, tea.Cmd) {
	r, err := mcpstore.BuildRecord(
		m.inputs[fieldName].Value(),
		m.inputs[fieldType].Value(),
		m.inputs[fieldPath].Value(),
		m.inputs[fieldOptions].Value(),
	)
	if err != nil {
		m.err = err
		var ve *mcpstore.ValidationError
		if errors.As(err, &ve) {
			for i, l := range fieldLabels {
				if strings.EqualFold(l, ve.Field) {
					m = m.setFocus(i)
				}
			}
		}
		return m, nil
	}
	m.err = nil
	m.record = &r
	return m, tea.Quit
}

func (m addModel) View() string {
	var b strings.Builder

	b.WriteString(renderBreadcrumb([]string{"mcpm", "add"}))
	b.WriteString("\n\n")

	var fields strings.Builder
	for i, in := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = focusedLabelStyle.Render(fieldLabels[i])
		}
		marker := " "
		if i != fieldOptions {
			marker = requiredStyle.Render("*")
		}
		fields.WriteString(fmt.Sprintf("%s%s %s\n", label, marker, valueStyle.Render(in.View())))
	}
	fields.WriteString("\n")
	fields.WriteString(previewStyle.Render(m.commandPreview()))

	b.WriteString(renderTitledPanel("New MCP", fields.String(), m.width))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelpBar([]helpItem{
		{"tab", "next"},
		{"shift+tab", "prev"},
		{"enter", "save"},
		{"esc", "cancel"},
	}))
	b.WriteString("\n")
	return b.String()
}

// commandPreview shows what add-all would run for the current answers.
func (m addModel) commandPreview() string {
	r := mcpstore.Record{
		Name:    strings.TrimSpace(m.inputs[fieldName].Value()),
		Kind:    mcpstore.Kind(strings.TrimSpace(m.inputs[fieldType].Value())),
		Path:    strings.TrimSpace(m.inputs[fieldPath].Value()),
		Options: m.inputs[fieldOptions].Value(),
	}
	argv, err := claude.AddArgs(r)
	if err != nil {
		return err.Error()
	}
	return "$ " + claude.FormatArgs(argv)
}

// RunAddForm shows the interactive add form and returns the validated record.
func RunAddForm(a Answers) (*mcpstore.Record, error) {
	p := tea.NewProgram(newAddModel(a))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running add form: %w", err)
	}
	fm := final.(addModel)
	if fm.cancelled || fm.record == nil {
		return nil, ErrCancelled
	}
	return fm.record, nil
}
