// Package views renders API data for the terminal.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/adanyl0v/go-projects/internal/client"
)

const progressBarWidth = 20

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMutedText))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	filledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain))
)

// ProgressBar draws percent (0-100) as a fixed width bar followed by
// the number.
func ProgressBar(percent int) string {
	percent = max(0, min(100, percent))
	filled := percent * progressBarWidth / 100

	return filledStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", progressBarWidth-filled)) +
		fmt.Sprintf(" %3d%%", percent)
}

// ProjectList renders one card per project with its progress.
func ProjectList(username string, projects []client.ProjectSummary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s's projects (%d/%d)", username, len(projects), client.MaxProjects)))
	b.WriteString("\n")

	if len(projects) == 0 {
		b.WriteString(mutedStyle.Render("No projects yet. Create one with 'projects project create'."))
		b.WriteString("\n")
		return b.String()
	}

	for _, p := range projects {
		lines := []string{
			titleStyle.Render(p.Name) + "  " + mutedStyle.Render(p.ID),
			labelStyle.Render("Type: ") + p.Type + "   " + labelStyle.Render("Duration: ") + p.Duration,
		}
		if p.Description != "" {
			lines = append(lines, p.Description)
		}
		lines = append(lines,
			ProgressBar(client.Progress(p.CompletedTasks, p.TotalTasks))+
				mutedStyle.Render(fmt.Sprintf("  %d/%d tasks", p.CompletedTasks, p.TotalTasks)),
		)
		b.WriteString(cardStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

// Project renders the project header and its task table.
func Project(p *client.Project) string {
	var b strings.Builder

	header := []string{
		titleStyle.Render(p.Name),
		labelStyle.Render("Type: ") + p.Type + "   " +
			labelStyle.Render("Duration: ") + fmt.Sprintf("%d %s", p.Duration.Value, p.Duration.Unit),
	}
	if p.Description != "" {
		header = append(header, p.Description)
	}
	header = append(header, ProgressBar(client.Progress(p.CompletedTasks(), len(p.Tasks))))
	b.WriteString(cardStyle.Render(strings.Join(header, "\n")))
	b.WriteString("\n")

	if len(p.Tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks yet."))
		b.WriteString("\n")
		return b.String()
	}

	for _, t := range p.Tasks {
		b.WriteString(taskLine(t))
		b.WriteString("\n")
	}
	return b.String()
}

func taskLine(t client.Task) string {
	status := pendingStyle.Render("[ ]")
	if t.Status == client.StatusCompleted {
		status = doneStyle.Render("[x]")
	}

	line := fmt.Sprintf("%s %s  %s", status, t.Title, mutedStyle.Render(t.ID))
	if t.Description != "" {
		line += "\n      " + labelStyle.Render(t.Description)
	}
	if t.CompletedAt != nil {
		line += "\n      " + mutedStyle.Render("completed "+t.CompletedAt.Local().Format(time.DateTime))
	}
	return line
}

// Error renders an error message.
func Error(err error) string {
	return errorStyle.Render("error: " + err.Error())
}

// Success renders a confirmation message.
func Success(msg string) string {
	return doneStyle.Render(msg)
}
