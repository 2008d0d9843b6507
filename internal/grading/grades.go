package grading

import "strings"

// Grade is a letter grade symbol. The zero value means unassigned.
type Grade string

const (
	GradeAA Grade = "AA"
	GradeAB Grade = "AB"
	GradeBB Grade = "BB"
	GradeBC Grade = "BC"
	GradeCC Grade = "CC"
	GradeCD Grade = "CD"
	GradeDD Grade = "DD"
	GradeFF Grade = "FF"
)

// ordered from best to worst, the order selectors and the legend use
var orderedGrades = []Grade{GradeAA, GradeAB, GradeBB, GradeBC, GradeCC, GradeCD, GradeDD, GradeFF}

var gradePoints = map[Grade]int{
	GradeAA: 10,
	GradeAB: 9,
	GradeBB: 8,
	GradeBC: 7,
	GradeCC: 6,
	GradeCD: 5,
	GradeDD: 4,
	GradeFF: 0,
}

// Grades returns the grade symbols from best to worst.
func Grades() []Grade {
	out := make([]Grade, len(orderedGrades))
	copy(out, orderedGrades)
	return out
}

// Point returns the grade point for a symbol. Blank or unknown symbols
// report (0, false).
func Point(symbol string) (int, bool) {
	p, ok := gradePoints[Grade(symbol)]
	return p, ok
}

// IsValid reports whether symbol belongs to the fixed grade set.
func IsValid(symbol string) bool {
	_, ok := gradePoints[Grade(symbol)]
	return ok
}

// Normalize trims and upper-cases user input so "aa " matches AA.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Next cycles through unassigned, AA ... FF and back to unassigned.
// A step of -1 walks the other way. Unknown symbols restart from unassigned.
func Next(current string, step int) string {
	idx := 0
	for i, g := range orderedGrades {
		if string(g) == current {
			idx = i + 1
			break
		}
	}

	n := len(orderedGrades) + 1
	idx = ((idx+step)%n + n) % n
	if idx == 0 {
		return ""
	}
	return string(orderedGrades[idx-1])
}
