// Package catalog exposes the read-only branch -> semester -> courses mapping
// the calculator works on. Iteration order always follows the source document.
package catalog

import (
	"github.com/thomas-vilte/spicalc/internal/models"
)

// SourceEmbedded is reported by Source for the catalog compiled into the binary.
const SourceEmbedded = "embedded"

type (
	// Catalog is immutable once built by one of the loaders.
	Catalog struct {
		source   string
		branches []branch
		index    map[string]int
	}

	branch struct {
		name      string
		semesters []semester
		index     map[string]int
	}

	semester struct {
		name    string
		courses []models.Course
	}
)

// Source is the file path the catalog came from, or SourceEmbedded.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Len returns the number of branches.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.branches)
}

// Branches returns branch keys in document order.
func (c *Catalog) Branches() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, 0, len(c.branches))
	for _, b := range c.branches {
		out = append(out, b.name)
	}
	return out
}

// Semesters returns the semester keys of a branch in document order. An
// unknown branch yields an empty slice.
func (c *Catalog) Semesters(branchName string) []string {
	b, ok := c.lookupBranch(branchName)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(b.semesters))
	for _, s := range b.semesters {
		out = append(out, s.name)
	}
	return out
}

// Courses returns a copy of the course list for (branch, semester). A lookup
// miss is not an error: it returns an empty slice.
func (c *Catalog) Courses(branchName, semesterName string) []models.Course {
	b, ok := c.lookupBranch(branchName)
	if !ok {
		return []models.Course{}
	}
	i, ok := b.index[semesterName]
	if !ok {
		return []models.Course{}
	}
	src := b.semesters[i].courses
	out := make([]models.Course, len(src))
	copy(out, src)
	return out
}

func (c *Catalog) HasBranch(branchName string) bool {
	_, ok := c.lookupBranch(branchName)
	return ok
}

func (c *Catalog) HasSemester(branchName, semesterName string) bool {
	b, ok := c.lookupBranch(branchName)
	if !ok {
		return false
	}
	_, ok = b.index[semesterName]
	return ok
}

func (c *Catalog) lookupBranch(name string) (*branch, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return &c.branches[i], true
}

// builder collects branches and semesters while a loader walks a document.
// Duplicate keys keep their first position and take the last value.
type builder struct {
	cat *Catalog
}

func newBuilder(source string) *builder {
	return &builder{cat: &Catalog{source: source, index: make(map[string]int)}}
}

func (b *builder) branch(name string) int {
	if i, ok := b.cat.index[name]; ok {
		return i
	}
	b.cat.branches = append(b.cat.branches, branch{name: name, index: make(map[string]int)})
	i := len(b.cat.branches) - 1
	b.cat.index[name] = i
	return i
}

func (b *builder) semester(branchIdx int, name string, courses []models.Course) {
	br := &b.cat.branches[branchIdx]
	if i, ok := br.index[name]; ok {
		br.semesters[i].courses = courses
		return
	}
	br.semesters = append(br.semesters, semester{name: name, courses: courses})
	br.index[name] = len(br.semesters) - 1
}

func (b *builder) build() *Catalog {
	return b.cat
}
