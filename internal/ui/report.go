package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/thomas-vilte/spicalc/internal/grading"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/models"
)

const unassigned = "-"

// SemesterLabel is what headers show for an unset semester.
func SemesterLabel(semester string) string {
	if semester == "" {
		return unassigned
	}
	return semester
}

// RenderReport prints the course table, the SPI block and the CPI block.
func RenderReport(w io.Writer, report models.Report, t *i18n.Translations) {
	PrintSectionBanner(w, t.GetMessage("report.title", 0, map[string]interface{}{
		"Branch":   report.Branch,
		"Semester": SemesterLabel(report.Semester),
	}))

	PrintKeyValue(w, t.GetMessage("report.total_credits", 0, nil), grading.FormatCredits(report.TotalCredits))
	PrintKeyValue(w, t.GetMessage("report.current_spi", 0, nil), grading.FormatIndex(report.SPI))
	_, _ = fmt.Fprintln(w)

	if report.Empty {
		_, _ = Dim.Fprintln(w, t.GetMessage("report.no_courses", 0, nil))
	} else {
		_, _ = fmt.Fprintln(w, CourseTable(report.Courses, t))
		_, _ = Dim.Fprintln(w, t.GetMessage("report.course_count", len(report.Courses), map[string]interface{}{
			"Count": len(report.Courses),
		}))
	}

	PrintSectionBanner(w, t.GetMessage("report.cpi_title", 0, nil))
	PrintKeyValue(w, t.GetMessage("report.previous_spi", 0, nil), grading.FormatIndex(report.PreviousSPI))
	PrintKeyValue(w, t.GetMessage("report.previous_credits", 0, nil), grading.FormatCredits(report.PreviousCredits))
	PrintKeyValue(w, t.GetMessage("report.current_semester", 0, nil), t.GetMessage("report.current_semester_value", 0, map[string]interface{}{
		"SPI":     grading.FormatIndex(report.SPI),
		"Credits": grading.FormatCredits(report.TotalCredits),
	}))
	PrintKeyValue(w, t.GetMessage("report.updated_cpi", 0, nil), grading.FormatIndex(report.CPI))
	PrintKeyValue(w, t.GetMessage("report.combined_credits", 0, nil), grading.FormatCredits(report.CombinedCredits))
	_, _ = fmt.Fprintln(w)
}

// CourseTable renders graded courses; unassigned grades show as "-".
func CourseTable(courses []models.GradedCourse, t *i18n.Translations) string {
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		grade := c.Grade
		if grade == "" {
			grade = unassigned
		}
		rows = append(rows, []string{c.Code, c.Name, grading.FormatCredits(c.Credits), grade})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(
			t.GetMessage("report.col_course", 0, nil),
			t.GetMessage("report.col_name", 0, nil),
			t.GetMessage("report.col_credits", 0, nil),
			t.GetMessage("report.col_grade", 0, nil),
		).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		}).
		String()
}

// RenderCourseList prints catalog courses without grades.
func RenderCourseList(w io.Writer, courses []models.Course, t *i18n.Translations) {
	if len(courses) == 0 {
		_, _ = Dim.Fprintln(w, t.GetMessage("report.no_courses", 0, nil))
		return
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{c.Code, c.Name, grading.FormatCredits(c.Credits)})
	}

	out := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(
			t.GetMessage("report.col_course", 0, nil),
			t.GetMessage("report.col_name", 0, nil),
			t.GetMessage("report.col_credits", 0, nil),
		).
		Rows(rows...).
		String()
	_, _ = fmt.Fprintln(w, out)
	PrintKeyValue(w, t.GetMessage("report.total_credits", 0, nil), grading.FormatCredits(grading.TotalCredits(courses)))
}

// RenderGradeTable prints the grade point legend.
func RenderGradeTable(w io.Writer, t *i18n.Translations) {
	PrintSectionBanner(w, t.GetMessage("report.grade_points_title", 0, nil))
	for _, g := range grading.Grades() {
		p, _ := grading.Point(string(g))
		PrintKeyValue(w, string(g), fmt.Sprintf("%d", p))
	}
	_, _ = fmt.Fprintln(w)
}

// WriteReportJSON writes the report for scripts. SPI and CPI are also
// provided pre-formatted so consumers see the same digits as the text view.
func WriteReportJSON(w io.Writer, report models.Report) error {
	payload := struct {
		models.Report
		SPIDisplay string `json:"spi_display"`
		CPIDisplay string `json:"cpi_display"`
	}{
		Report:     report,
		SPIDisplay: grading.FormatIndex(report.SPI),
		CPIDisplay: grading.FormatIndex(report.CPI),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
