package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thomas-vilte/spicalc/internal/grading"
	"github.com/thomas-vilte/spicalc/internal/ui"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.msg("tui.title", nil)))
	b.WriteString("\n")
	b.WriteString(m.selectorView())
	b.WriteString("\n\n")
	b.WriteString(m.legendView())
	b.WriteString("\n\n")
	b.WriteString(m.coursesView())
	b.WriteString("\n\n")
	b.WriteString(m.cpiView())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) msg(id string, data map[string]interface{}) string {
	return m.t.GetMessage(id, 0, data)
}

func (m Model) field(f focus, label, value string) string {
	style := m.styles.Blurred
	marker := "  "
	if m.focus == f {
		style = m.styles.Focused
		marker = "▸ "
	}
	return marker + m.styles.Label.Render(label+":") + " " + style.Render(value)
}

func (m Model) selectorView() string {
	branch := m.session.Branch()
	if branch == "" {
		branch = m.msg("tui.no_branches", nil)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.field(focusBranch, m.msg("tui.branch", nil), "‹ "+branch+" ›"),
		"    ",
		m.field(focusSemester, m.msg("tui.semester", nil), "‹ "+ui.SemesterLabel(m.session.Semester())+" ›"),
	)
}

func (m Model) legendView() string {
	parts := make([]string, 0, len(grading.Grades()))
	for _, g := range grading.Grades() {
		p, _ := grading.Point(string(g))
		parts = append(parts, fmt.Sprintf("%s %d", g, p))
	}
	return m.styles.Muted.Render(m.msg("tui.grade_points", nil) + ": " + strings.Join(parts, " · "))
}

func (m Model) coursesView() string {
	r := m.report
	header := m.styles.Subtitle.Render(m.msg("report.title", map[string]interface{}{
		"Branch":   r.Branch,
		"Semester": ui.SemesterLabel(r.Semester),
	}))
	summary := fmt.Sprintf("%s %s    %s %s",
		m.styles.Label.Render(m.msg("report.total_credits", nil)+":"),
		grading.FormatCredits(r.TotalCredits),
		m.styles.Label.Render(m.msg("report.current_spi", nil)+":"),
		m.styles.SPI.Render(grading.FormatIndex(r.SPI)),
	)

	var rows []string
	if r.Empty {
		rows = append(rows, m.styles.Muted.Render(m.msg("report.no_courses", nil)))
	} else {
		for i, c := range r.Courses {
			grade := c.Grade
			if grade == "" {
				grade = "-"
			}
			cursor := "  "
			line := fmt.Sprintf("%-8s %-36s %6s   ‹ %-2s ›", c.Code, c.Name, grading.FormatCredits(c.Credits), grade)
			if m.focus == focusCourses && i == m.cursor {
				cursor = m.styles.Cursor.Render("› ")
				line = m.styles.Focused.Render(line)
			}
			rows = append(rows, cursor+line)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{header, summary, ""}, rows...)...)
	return m.styles.Card.Render(body)
}

func (m Model) cpiView() string {
	r := m.report
	current := m.msg("report.current_semester_value", map[string]interface{}{
		"SPI":     grading.FormatIndex(r.SPI),
		"Credits": grading.FormatCredits(r.TotalCredits),
	})

	lines := []string{
		m.styles.Subtitle.Render(m.msg("report.cpi_title", nil)),
		m.field(focusPrevSPI, m.msg("report.previous_spi", nil), m.prevSPI.View()),
		m.field(focusPrevCredits, m.msg("report.previous_credits", nil), m.prevCredits.View()),
		"",
		m.styles.Label.Render(m.msg("report.current_semester", nil)+": ") + current,
		m.styles.Label.Render(m.msg("report.updated_cpi", nil)+": ") + m.styles.CPI.Render(grading.FormatIndex(r.CPI)),
		m.styles.Label.Render(m.msg("report.combined_credits", nil)+": ") + grading.FormatCredits(r.CombinedCredits),
	}
	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
