package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/taskdeck/internal/models"
	"github.com/balkashynov/taskdeck/internal/parser"
)

// formField indexes the new-task form inputs
type formField int

const (
	fieldTitle formField = iota
	fieldCategory
	fieldDescription
	fieldDue
	fieldPriority
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Category", "Description", "Due date", "Priority"}

// taskForm is the new-task form
type taskForm struct {
	inputs        []textinput.Model
	focused       formField
	validationErr string
}

func newTaskForm() taskForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	inputs[fieldTitle].Placeholder = "What needs doing? (required)"
	inputs[fieldTitle].CharLimit = 200

	inputs[fieldCategory].Placeholder = "e.g. work, home"
	inputs[fieldCategory].CharLimit = 50

	inputs[fieldDescription].Placeholder = "Details"
	inputs[fieldDescription].CharLimit = 500

	inputs[fieldDue].Placeholder = "yyyy-mm-dd, dd/mm/yyyy, today, 3 days"
	inputs[fieldDue].CharLimit = 30

	inputs[fieldPriority].Placeholder = "number or low/medium/high"
	inputs[fieldPriority].CharLimit = 10

	f := taskForm{inputs: inputs}
	f.inputs[fieldTitle].Focus()
	return f
}

// reset clears every input and returns focus to the title
func (f *taskForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focused = fieldTitle
	f.validationErr = ""
	f.inputs[fieldTitle].Focus()
}

func (f *taskForm) focus(field formField) tea.Cmd {
	f.inputs[f.focused].Blur()
	f.focused = (field + fieldCount) % fieldCount
	return f.inputs[f.focused].Focus()
}

func (f *taskForm) next() tea.Cmd { return f.focus(f.focused + 1) }
func (f *taskForm) prev() tea.Cmd { return f.focus(f.focused - 1) }

// update forwards a message to the focused input
func (f taskForm) update(msg tea.Msg) (taskForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

func (f taskForm) value(field formField) string {
	return f.inputs[field].Value()
}

// input parses the optional fields. Title is checked by the store.
func (f taskForm) input(now time.Time) (models.TaskInput, error) {
	due, err := parser.ParseDueDate(f.value(fieldDue), now)
	if err != nil {
		return models.TaskInput{}, err
	}
	priority, err := parser.ParsePriority(f.value(fieldPriority))
	if err != nil {
		return models.TaskInput{}, err
	}
	return models.TaskInput{
		Title:       f.value(fieldTitle),
		Category:    f.value(fieldCategory),
		Description: f.value(fieldDescription),
		DueDate:     due,
		Priority:    priority,
	}, nil
}

func (f taskForm) view(th Theme, width int) string {
	var b strings.Builder

	titleStyle := th.fg(th.AccentBright).Bold(true)
	b.WriteString(titleStyle.Render("📝 New Task"))
	b.WriteString("\n\n")

	for i := formField(0); i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == f.focused {
			b.WriteString(th.fg(th.AccentBright).Render("▶ " + label))
		} else {
			b.WriteString(th.fg(th.SecondaryText).Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(th.fg(th.Error).Bold(true).Render("❌ " + f.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.fg(th.HelpText).Italic(true).Render("Enter: Create | Tab/↓: Next | Shift+Tab/↑: Back | Ctrl+R: Clear | Esc: Close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.AccentMain)).
		Padding(1, 2).
		Width(width).
		Render(b.String())
}
