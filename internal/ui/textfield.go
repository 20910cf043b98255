package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// fieldModel asks for a single address field on a terminal. Enter checks the
// value; a rejected value stays editable with the error shown below it.
type fieldModel struct {
	input     textinput.Model
	label     string
	normalize func(string) string
	validate  func(string) error
	theme     Theme

	hint      string
	value     string
	done      bool
	cancelled bool
}

func newFieldModel(label string, normalize func(string) string, validate func(string) error, theme Theme) *fieldModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Focus()

	return &fieldModel{
		input:     ti,
		label:     label,
		normalize: normalize,
		validate:  validate,
		theme:     theme,
	}
}

// Init implements tea.Model.
func (m *fieldModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *fieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if m.normalize != nil {
				value = m.normalize(value)
			}
			if err := m.validate(value); err != nil {
				m.hint = retryHint(err)
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *fieldModel) View() tea.View {
	label := StyleLabel(m.theme).Render(m.label + ": ")
	if m.done {
		return tea.NewView(label + m.value + "\n")
	}
	if m.cancelled {
		return tea.NewView("")
	}

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		BorderForeground(m.theme.Primary).
		PaddingLeft(1)

	var view strings.Builder
	view.WriteString(label)
	view.WriteString("\n")
	view.WriteString(inputBox.Render(m.input.View()))
	if m.hint != "" {
		view.WriteString("\n")
		view.WriteString(StyleError(m.theme).Render(m.hint))
	}
	view.WriteString("\n")
	return tea.NewView(view.String())
}
