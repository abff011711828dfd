package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/taskdeck/internal/models"
	"github.com/balkashynov/taskdeck/internal/parser"
	"github.com/balkashynov/taskdeck/internal/query"
)

// View renders the TUI
func (m Board) View() string {
	if m.quit {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	th := themeFor(m.state.theme)

	switch m.focus {
	case FocusForm:
		return m.place(m.form.view(th, min(m.width-6, 70)))
	case FocusConfirm:
		return m.place(m.renderConfirm(th))
	case FocusAlert:
		return m.place(m.renderAlert(th))
	}

	leftWidth := m.width * 60 / 100 // 60% for the list
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTaskList(th, leftWidth),
		" ",
		m.renderStats(th, rightWidth),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(th),
		m.renderControls(th),
		content,
		m.renderToast(th),
		m.renderHelpBar(th),
	)
}

func (m Board) place(modal string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Board) renderHeader(th Theme) string {
	title := th.fg(th.AccentMain).Bold(true).Render("✅ taskdeck")
	theme := th.fg(th.SecondaryText).Render(fmt.Sprintf("%s %s mode", m.state.theme.Icon(), m.state.theme))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(theme)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + theme
}

// renderControls draws the filter chips, sort key and search box
func (m Board) renderControls(th Theme) string {
	var chips []string
	for i, f := range query.Filters() {
		label := fmt.Sprintf(" %d %s ", i+1, f)
		if f == m.state.filter {
			chips = append(chips, lipgloss.NewStyle().
				Background(lipgloss.Color(th.AccentBright)).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true).
				Render(label))
		} else {
			chips = append(chips, th.fg(th.SecondaryText).Render(label))
		}
	}

	sortLabel := th.fg(th.SecondaryText).Render("Sort: ") + th.fg(th.AccentBright).Render(string(m.state.sort))
	line := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(chips, " "), "   ", sortLabel)

	if m.focus == FocusSearch || m.state.search != "" {
		line += "\n" + m.search.View()
	}
	return line
}

// renderTaskList renders the left panel with the visible tasks
func (m Board) renderTaskList(th Theme, width int) string {
	var b strings.Builder

	header := th.fg(th.AccentBright).Bold(true)
	b.WriteString(header.Render(fmt.Sprintf("📋 Tasks (%d)", len(m.rows))))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		empty := th.fg(th.SecondaryText).Italic(true)
		b.WriteString(empty.Render("No tasks to show. Press n to add one."))
	}

	for i, r := range m.rows {
		task, ok := m.store.Get(r.id)
		if !ok {
			continue
		}
		entry := m.renderTaskEntry(th, task, width-6)
		if i == m.cursor {
			b.WriteString(th.card().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(th.AccentMain)).
				Padding(0, 1).
				Render(entry))
		} else {
			b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(entry))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Border)).
		Width(width).
		Render(b.String())
}

// renderTaskEntry draws one task with its completion and delete controls
func (m Board) renderTaskEntry(th Theme, task models.Task, width int) string {
	var b strings.Builder

	titleStyle := th.fg(th.PrimaryText).Bold(true)
	check := th.fg(th.SecondaryText).Render("○")
	toggle := "Done"
	if task.Completed {
		titleStyle = th.fg(th.DisabledText).Strikethrough(true)
		check = th.fg(th.Success).Render("✓")
		toggle = "Undo"
	}

	b.WriteString(check + " " + titleStyle.Render(task.Title))
	if task.Category != "" {
		b.WriteString("  " + th.fg(th.AccentBright).Render(task.Category))
	}
	if label := parser.PriorityLabel(task.Priority); label != "" {
		b.WriteString("  " + m.priorityStyle(th, task.Priority).Render("⚡"+label))
	}

	if task.Description != "" {
		b.WriteString("\n  ")
		b.WriteString(th.fg(th.SecondaryText).Italic(true).Width(width).Render(task.Description))
	}

	b.WriteString("\n  ")
	due := "Due: " + parser.FormatDate(task)
	b.WriteString(m.dueStyle(th, task).Render(due))
	b.WriteString("   ")
	b.WriteString(th.fg(th.HelpText).Render(fmt.Sprintf("[space] %s  [d] Delete", toggle)))

	return b.String()
}

func (m Board) priorityStyle(th Theme, p int) lipgloss.Style {
	switch {
	case p >= 3:
		return th.fg(th.Error)
	case p == 2:
		return th.fg(th.Warning)
	default:
		return th.fg(th.SecondaryText)
	}
}

func (m Board) dueStyle(th Theme, task models.Task) lipgloss.Style {
	switch parser.DueLabel(task, m.now()) {
	case "OVERDUE":
		if !task.Completed {
			return th.fg(th.Error)
		}
	case "TODAY", "TOMORROW":
		return th.fg(th.Warning)
	}
	return th.fg(th.SecondaryText)
}

// renderStats renders counters, the progress indicator and the chart
func (m Board) renderStats(th Theme, width int) string {
	var b strings.Builder

	b.WriteString(th.fg(th.AccentBright).Bold(true).Render("📊 Progress"))
	b.WriteString("\n\n")

	label := th.fg(th.SecondaryText)
	value := th.fg(th.PrimaryText).Bold(true)
	b.WriteString(label.Render("Total      ") + value.Render(fmt.Sprint(m.summary.Total)) + "\n")
	b.WriteString(label.Render("Completed  ") + value.Render(fmt.Sprint(m.summary.Completed)) + "\n")
	b.WriteString(label.Render("Due today  ") + value.Render(fmt.Sprint(m.summary.DueToday)) + "\n\n")

	bar := m.progress
	bar.Width = max(width-12, 10)
	b.WriteString(bar.ViewAs(m.summary.Fraction()))
	b.WriteString(" " + value.Render(fmt.Sprintf("%d%%", m.summary.CompletionPercent)))

	if m.chart != nil {
		if donut := m.chart.View(); donut != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center).Render(donut))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Border)).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

func (m Board) renderToast(th Theme) string {
	if m.toast == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(th.AccentMain)).
		Padding(0, 1).
		Render(m.toast)
}

func (m Board) renderHelpBar(th Theme) string {
	if m.focus == FocusSearch {
		return th.fg(th.HelpText).Italic(true).Render("type to filter live · enter keep · esc clear")
	}
	return m.help.View(m.keys)
}

// renderConfirm renders the delete confirmation modal
func (m Board) renderConfirm(th Theme) string {
	var content strings.Builder
	content.WriteString("Are you sure you want to delete this task?\n")
	if task, ok := m.store.Get(m.confirmID); ok {
		content.WriteString(th.fg(th.AccentBright).Bold(true).Render(task.Title))
	}
	content.WriteString("\n\n")

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if m.confirmChoice {
		yesStyle = yesStyle.
			Background(lipgloss.Color(th.Error)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(th.AccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	}

	content.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		yesStyle.Render("Yes"),
		"   ",
		noStyle.Render("No"),
	))
	content.WriteString("\n\n")
	content.WriteString(th.fg(th.HelpText).Render("← → or Y/N to choose, Enter to confirm"))

	return lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Error)).
		Padding(1).
		Align(lipgloss.Center).
		Render(content.String())
}

// renderAlert renders a blocking message that any key dismisses
func (m Board) renderAlert(th Theme) string {
	body := th.fg(th.Error).Bold(true).Render("⚠ "+m.alert) + "\n\n" +
		th.fg(th.HelpText).Render("Press any key")
	return lipgloss.NewStyle().
		Width(40).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Error)).
		Padding(1).
		Align(lipgloss.Center).
		Render(body)
}
