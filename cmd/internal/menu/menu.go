// Package menu implements the interactive course planner prompt.
package menu

import (
	"bufio"
	"fmt"
	"io"

	"github.com/harrybrwn/planner/catalog"
	"github.com/harrybrwn/planner/pkg/fields"
	"github.com/harrybrwn/planner/pkg/term"
	"github.com/sirupsen/logrus"
)

// Menu choices.
const (
	ChoiceLoad = "1"
	ChoiceList = "2"
	ChoiceInfo = "3"
	ChoiceExit = "9"
)

const (
	welcome  = "Welcome to the course planner.\n\n"
	farewell = "Thank you for using the course planner!\n"
	noData   = "No data loaded. Choose option 1 first."
)

// Menu reads choices one line at a time and runs them
// against a catalog until the user exits.
type Menu struct {
	Catalog *catalog.Catalog
	// Stderr gets the details of failed loads.
	Stderr io.Writer
	Log    logrus.FieldLogger
	// Color turns on colored messages. New only sets it
	// when w is a terminal.
	Color bool

	in  *bufio.Scanner
	out io.Writer
}

// New creates a menu that reads from r and writes to w.
func New(r io.Reader, w io.Writer, c *catalog.Catalog) *Menu {
	l := logrus.New()
	l.Out = io.Discard
	return &Menu{
		Catalog: c,
		Stderr:  io.Discard,
		Log:     l,
		Color:   term.IsTerminal(w),
		in:      bufio.NewScanner(r),
		out:     w,
	}
}

// Run the menu loop. It only returns after the exit choice
// or when the input runs out. The returned error is any
// error from reading the input.
func (m *Menu) Run() error {
	m.print(welcome)
	for {
		m.print(
			"  1. Load Data Structure.\n",
			"  2. Print Course List.\n",
			"  3. Print Course.\n",
			"  9. Exit\n\n",
			"What would you like to do? ",
		)
		line, ok := m.readLine()
		m.print("\n")
		if !ok {
			break
		}
		choice := fields.Trim(line)
		m.Log.WithField("choice", choice).Debug("menu choice")

		switch choice {
		case ChoiceLoad:
			m.load()
		case ChoiceList:
			m.list()
		case ChoiceInfo:
			m.info()
		case ChoiceExit:
			m.print(farewell)
			return nil
		default:
			m.print(m.colored(term.Yellow, line+" is not a valid option."), "\n\n")
		}
	}
	m.print(farewell)
	return m.in.Err()
}

func (m *Menu) load() {
	m.print("Enter the file name to load: ")
	line, _ := m.readLine()
	filename := fields.Trim(line)

	err := m.Catalog.Load(filename)
	if err != nil {
		m.Log.WithFields(logrus.Fields{
			"file":  filename,
			"error": err,
		}).Warn("load failed")
		fmt.Fprintf(m.Stderr, "Error: %v\n", err)
		m.print(m.colored(term.Red, "Load failed. Please check the file name."), "\n\n")
		return
	}
	m.Log.WithFields(logrus.Fields{
		"file":    filename,
		"courses": m.Catalog.Len(),
	}).Info("catalog loaded")
	m.print(m.colored(term.Green, "Courses loaded successfully."), "\n\n")
}

func (m *Menu) list() {
	courses, err := m.Catalog.List()
	if err != nil {
		m.print(m.colored(term.Yellow, noData), "\n\n")
		return
	}
	m.print("Here is a sample schedule:\n\n")
	for _, c := range courses {
		m.print(c.String(), "\n")
	}
	m.print("\n")
}

func (m *Menu) info() {
	if m.Catalog.Len() == 0 {
		m.print(m.colored(term.Yellow, noData), "\n\n")
		return
	}
	m.print("What course do you want to know about? ")
	input, _ := m.readLine()

	c, err := m.Catalog.Lookup(input)
	switch err {
	case nil:
		break
	case catalog.ErrNotFound:
		m.print("Course not found.\n\n")
		return
	default:
		m.print(m.colored(term.Yellow, noData), "\n\n")
		return
	}
	m.print(c.String(), "\n")
	m.print("Prerequisites: ", catalog.FormatPrereqs(c.Prereqs), "\n\n")
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) colored(color func(string) string, s string) string {
	if !m.Color {
		return s
	}
	return color(s)
}

func (m *Menu) print(s ...string) {
	for _, str := range s {
		io.WriteString(m.out, str)
	}
}
