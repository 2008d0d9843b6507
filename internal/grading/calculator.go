package grading

import (
	"math"
	"strconv"
	"strings"

	"github.com/thomas-vilte/spicalc/internal/models"
)

// TotalCredits sums the credits of every listed course, graded or not.
func TotalCredits(courses []models.Course) float64 {
	var total float64
	for _, c := range courses {
		total += nonNegative(c.Credits)
	}
	return total
}

// SPI is the credit-weighted grade point average of one semester. Courses
// without a recognized grade add zero points but keep their credits in the
// denominator, so an unassigned course weighs exactly like an FF.
func SPI(courses []models.Course, grades map[string]string) float64 {
	total := TotalCredits(courses)
	if total <= 0 {
		return 0
	}

	var weighted float64
	for _, c := range courses {
		p, _ := Point(grades[c.Code])
		weighted += float64(p) * nonNegative(c.Credits)
	}
	return weighted / total
}

// CPI blends one aggregate of previous history with the current semester.
// Negative or non-finite previous figures count as zero.
func CPI(prevSPI, prevCredits, currentSPI, currentCredits float64) float64 {
	prevS := nonNegative(prevSPI)
	prevC := nonNegative(prevCredits)
	currC := nonNegative(currentCredits)

	total := prevC + currC
	if total == 0 {
		return 0
	}
	return (prevS*prevC + currentSPI*currC) / total
}

// ParseLenient reads a user-typed number. Blank or malformed input is zero.
func ParseLenient(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Evaluate builds the derived report for one input snapshot. Branch and
// semester are left for the caller to fill.
func Evaluate(courses []models.Course, grades map[string]string, prior models.PriorHistory) models.Report {
	graded := make([]models.GradedCourse, 0, len(courses))
	for _, c := range courses {
		symbol := grades[c.Code]
		p, _ := Point(symbol)
		graded = append(graded, models.GradedCourse{Course: c, Grade: symbol, GradePoint: p})
	}

	total := TotalCredits(courses)
	spi := SPI(courses, grades)
	prevS := nonNegative(ParseLenient(prior.PreviousSPI))
	prevC := nonNegative(ParseLenient(prior.PreviousCredits))

	return models.Report{
		Courses:         graded,
		TotalCredits:    total,
		SPI:             spi,
		PreviousSPI:     prevS,
		PreviousCredits: prevC,
		CPI:             CPI(prevS, prevC, spi, total),
		CombinedCredits: prevC + total,
		Empty:           len(courses) == 0,
	}
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
