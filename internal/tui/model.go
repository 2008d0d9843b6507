// Package tui is the interactive, single-screen calculator. Every key press
// mutates the session and recomputes the report before the next render.
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/grading"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/models"
	"github.com/thomas-vilte/spicalc/internal/session"
)

type focus int

const (
	focusBranch focus = iota
	focusSemester
	focusCourses
	focusPrevSPI
	focusPrevCredits
	focusCount
)

// catalogReloadedMsg carries a catalog published by the file watcher.
type catalogReloadedMsg struct {
	catalog *catalog.Catalog
}

type Model struct {
	session *session.Session
	t       *i18n.Translations
	keys    keyMap
	help    help.Model
	styles  styles

	focus       focus
	cursor      int
	prevSPI     textinput.Model
	prevCredits textinput.Model

	report  models.Report
	reloads <-chan *catalog.Catalog
	notice  string
	width   int
}

type Option func(*Model)

// WithReloads feeds catalogs from a watcher into the session.
func WithReloads(ch <-chan *catalog.Catalog) Option {
	return func(m *Model) {
		m.reloads = ch
	}
}

func New(sess *session.Session, t *i18n.Translations, opts ...Option) Model {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.CharLimit = 12
		ti.Width = 12
		return ti
	}

	m := Model{
		session:     sess,
		t:           t,
		keys:        newKeyMap(t),
		help:        help.New(),
		styles:      defaultStyles(),
		prevSPI:     newInput(t.GetMessage("tui.placeholder_spi", 0, nil)),
		prevCredits: newInput(t.GetMessage("tui.placeholder_credits", 0, nil)),
	}
	m.prevSPI.SetValue(sess.Prior().PreviousSPI)
	m.prevCredits.SetValue(sess.Prior().PreviousCredits)

	for _, opt := range opts {
		opt(&m)
	}
	m.recompute()
	return m
}

// Report is the report currently on screen.
func (m Model) Report() models.Report {
	return m.report
}

func (m Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

func waitForReload(ch <-chan *catalog.Catalog) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cat, ok := <-ch
		if !ok {
			return nil
		}
		return catalogReloadedMsg{catalog: cat}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case catalogReloadedMsg:
		m.session.ReplaceCatalog(msg.catalog)
		m.notice = m.t.GetMessage("tui.catalog_reloaded", 0, nil)
		m.recompute()
		return m, waitForReload(m.reloads)

	case tea.KeyMsg:
		m.notice = ""
		cmd = m.handleKey(msg)
		m.recompute()
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.session.ResetAll()
		m.prevSPI.SetValue("")
		m.prevCredits.SetValue("")
		return nil
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyEnter:
		return m.moveFocus(1)
	case msg.Type == tea.KeyShiftTab:
		return m.moveFocus(-1)
	}

	if m.editingText() {
		return m.updateInput(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	switch m.focus {
	case focusBranch:
		if step := m.horizontal(msg); step != 0 {
			m.session.SelectBranch(cycle(m.session.Catalog().Branches(), m.session.Branch(), step))
			m.cursor = 0
		}
	case focusSemester:
		if step := m.horizontal(msg); step != 0 {
			if next := cycle(m.session.Semesters(), m.session.Semester(), step); next != "" {
				m.session.SelectSemester(next)
				m.cursor = 0
			}
		}
	case focusCourses:
		m.updateCourses(msg)
	}
	return nil
}

func (m *Model) updateCourses(msg tea.KeyMsg) {
	courses := m.session.Courses()
	if len(courses) == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(courses)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Clear):
		m.session.SetGrade(courses[m.cursor].Code, "")
	default:
		if step := m.horizontal(msg); step != 0 {
			code := courses[m.cursor].Code
			m.session.SetGrade(code, grading.Next(m.session.Grade(code), step))
		}
	}
}

func (m *Model) horizontal(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, m.keys.Left):
		return -1
	case key.Matches(msg, m.keys.Right):
		return 1
	}
	return 0
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusPrevSPI:
		m.prevSPI, cmd = m.prevSPI.Update(msg)
		m.session.SetPreviousSPI(m.prevSPI.Value())
	case focusPrevCredits:
		m.prevCredits, cmd = m.prevCredits.Update(msg)
		m.session.SetPreviousCredits(m.prevCredits.Value())
	}
	return cmd
}

func (m *Model) moveFocus(step int) tea.Cmd {
	m.focus = focus((int(m.focus) + step + int(focusCount)) % int(focusCount))

	m.prevSPI.Blur()
	m.prevCredits.Blur()
	switch m.focus {
	case focusPrevSPI:
		return m.prevSPI.Focus()
	case focusPrevCredits:
		return m.prevCredits.Focus()
	}
	return nil
}

func (m *Model) editingText() bool {
	return m.focus == focusPrevSPI || m.focus == focusPrevCredits
}

func (m *Model) recompute() {
	m.report = m.session.Snapshot()
	if m.cursor >= len(m.report.Courses) {
		m.cursor = max(len(m.report.Courses)-1, 0)
	}
}

// cycle returns the neighbour of current in options, wrapping around. An
// unknown current value starts from the first option.
func cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return ""
	}
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+step)%n+n)%n]
}
