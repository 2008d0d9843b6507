// Package session keeps the branch/semester selection, the grade assignment
// and the prior history for one calculator run. It is not safe for
// concurrent use: callers apply one mutation at a time and read Snapshot
// afterwards.
package session

import (
	"context"
	"slices"

	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/grading"
	"github.com/thomas-vilte/spicalc/internal/logger"
	"github.com/thomas-vilte/spicalc/internal/models"
)

type Session struct {
	ctx      context.Context
	catalog  *catalog.Catalog
	branch   string
	semester string
	grades   map[string]string
	prior    models.PriorHistory
}

// New selects the first branch of the catalog and its first semester.
func New(ctx context.Context, cat *catalog.Catalog) *Session {
	s := &Session{
		ctx:     ctx,
		catalog: cat,
		grades:  make(map[string]string),
	}
	if branches := cat.Branches(); len(branches) > 0 {
		s.branch = branches[0]
	}
	s.autoCorrect()
	return s
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) Branch() string {
	return s.branch
}

// Semester is blank while no semester is selected.
func (s *Session) Semester() string {
	return s.semester
}

// Semesters lists the valid semesters of the current branch.
func (s *Session) Semesters() []string {
	return s.catalog.Semesters(s.branch)
}

// Courses is the course list of the current selection; empty on a miss.
func (s *Session) Courses() []models.Course {
	if s.semester == "" {
		return []models.Course{}
	}
	return s.catalog.Courses(s.branch, s.semester)
}

// SelectBranch switches branch, drops every grade and auto-selects the
// branch's first semester. Unknown branches are accepted and simply have no
// semesters.
func (s *Session) SelectBranch(branch string) {
	s.branch = branch
	s.semester = ""
	s.clearGrades()
	s.autoCorrect()
	logger.Debug(s.ctx, "branch selected", "branch", s.branch, "semester", s.semester)
}

// SelectSemester reports false and changes nothing when semester is not a
// key of the current branch.
func (s *Session) SelectSemester(semester string) bool {
	if !s.catalog.HasSemester(s.branch, semester) {
		logger.Debug(s.ctx, "semester rejected", "branch", s.branch, "semester", semester)
		return false
	}
	s.semester = semester
	s.clearGrades()
	logger.Debug(s.ctx, "semester selected", "branch", s.branch, "semester", s.semester)
	return true
}

// ReplaceCatalog swaps in a reloaded catalog. A selection that survives the
// reload keeps its grades; otherwise the usual branch/semester rules apply.
func (s *Session) ReplaceCatalog(cat *catalog.Catalog) {
	s.catalog = cat

	if !cat.HasBranch(s.branch) {
		first := ""
		if branches := cat.Branches(); len(branches) > 0 {
			first = branches[0]
		}
		s.SelectBranch(first)
		return
	}

	if s.semester == "" || !cat.HasSemester(s.branch, s.semester) {
		s.semester = ""
		s.clearGrades()
		s.autoCorrect()
	}
	logger.Debug(s.ctx, "catalog replaced", "branch", s.branch, "semester", s.semester)
}

// SetGrade stores symbol for a course code. A blank symbol unassigns it.
func (s *Session) SetGrade(code, symbol string) {
	if symbol == "" {
		delete(s.grades, code)
		return
	}
	s.grades[code] = symbol
}

func (s *Session) Grade(code string) string {
	return s.grades[code]
}

// Grades returns a copy of the current assignment.
func (s *Session) Grades() map[string]string {
	out := make(map[string]string, len(s.grades))
	for k, v := range s.grades {
		out[k] = v
	}
	return out
}

func (s *Session) SetPreviousSPI(text string) {
	s.prior.PreviousSPI = text
}

func (s *Session) SetPreviousCredits(text string) {
	s.prior.PreviousCredits = text
}

func (s *Session) Prior() models.PriorHistory {
	return s.prior
}

// ResetAll clears grades and prior history. The selection stays.
func (s *Session) ResetAll() {
	s.clearGrades()
	s.prior = models.PriorHistory{}
	logger.Debug(s.ctx, "inputs reset", "branch", s.branch, "semester", s.semester)
}

// Snapshot recomputes every derived value from the current state.
func (s *Session) Snapshot() models.Report {
	report := grading.Evaluate(s.Courses(), s.grades, s.prior)
	report.Branch = s.branch
	report.Semester = s.semester
	return report
}

func (s *Session) clearGrades() {
	clear(s.grades)
}

// autoCorrect moves the semester to the first valid one when the current
// value is not a key of the branch; with no semesters it stays unset.
func (s *Session) autoCorrect() {
	semesters := s.catalog.Semesters(s.branch)
	if s.semester != "" && slices.Contains(semesters, s.semester) {
		return
	}
	if len(semesters) == 0 {
		s.semester = ""
		return
	}
	s.semester = semesters[0]
}
