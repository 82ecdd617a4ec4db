// Package catalog is an in-memory course catalog loaded from a comma
// separated text file.
//
// Each line of a catalog file looks like
//
//	id,title[,prereq1,prereq2,...]
//
// Blank lines and lines with fewer than two fields are skipped.
package catalog

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/harrybrwn/planner/pkg/fields"
	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned by queries on a catalog
	// that has no courses loaded.
	ErrEmpty = errors.New("no data loaded")
	// ErrNotFound is returned when a course lookup misses.
	ErrNotFound = errors.New("course not found")
)

// Course is a single course record.
type Course struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Prereqs []string `json:"prerequisites" yaml:"prerequisites"`
}

func (c *Course) String() string {
	return c.ID + "," + c.Title
}

// Catalog maps course ids to courses and remembers
// the order the ids were read in.
type Catalog struct {
	courses map[string]*Course
	// every id that was read, duplicates included
	order []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		courses: make(map[string]*Course),
		order:   make([]string, 0),
	}
}

// Load will replace the catalog contents with the courses found in a file.
// If the file cannot be opened the catalog is left as it was.
func (c *Catalog) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "could not open file")
	}
	defer f.Close()
	return c.Parse(f)
}

// Parse reads catalog rows from r and replaces the current contents
// once all of r has been read. Malformed rows are skipped without
// an error.
func (c *Catalog) Parse(r io.Reader) error {
	var (
		courses = make(map[string]*Course)
		order   = make([]string, 0)
		br      = bufio.NewReader(r)
	)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "could not read catalog")
		}
		if course := parseLine(line); course != nil {
			courses[course.ID] = course
			order = append(order, course.ID)
		}
		if err == io.EOF {
			break
		}
	}
	c.courses = courses
	c.order = order
	return nil
}

func parseLine(line string) *Course {
	if fields.Trim(line) == "" {
		return nil
	}
	row := fields.Split(line, ',')
	if len(row) < 2 {
		return nil
	}
	return &Course{
		ID:      row[0],
		Title:   row[1],
		Prereqs: append([]string{}, row[2:]...),
	}
}

// Len returns the number of distinct courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Get a course by its exact id.
func (c *Catalog) Get(id string) (*Course, bool) {
	crs, ok := c.courses[id]
	return crs, ok
}

// List returns every course sorted by id. Ids are compared byte by byte,
// so "CS10" comes before "CS2". An id that was read more than once is
// listed once for each time it was read.
func (c *Catalog) List() ([]*Course, error) {
	if len(c.courses) == 0 {
		return nil, ErrEmpty
	}
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	sort.Strings(ids)

	list := make([]*Course, 0, len(ids))
	for _, id := range ids {
		list = append(list, c.courses[id])
	}
	return list, nil
}

// Lookup finds a course using the upper case form of the input.
// Ids are stored as they appear in the file so a catalog with lower
// case ids will never match.
func (c *Catalog) Lookup(input string) (*Course, error) {
	if len(c.courses) == 0 {
		return nil, ErrEmpty
	}
	crs, ok := c.courses[strings.ToUpper(input)]
	if !ok {
		return nil, ErrNotFound
	}
	return crs, nil
}

// Missing is a course with prerequisites
// that are not in the catalog.
type Missing struct {
	ID      string   `json:"id" yaml:"id"`
	Prereqs []string `json:"missing" yaml:"missing"`
}

// Unresolved finds all the prerequisites that do not name
// a course in the catalog. Results are sorted by course id.
func (c *Catalog) Unresolved() []Missing {
	ids := make([]string, 0, len(c.courses))
	for id := range c.courses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var res []Missing
	for _, id := range ids {
		var missing []string
		for _, p := range c.courses[id].Prereqs {
			if _, ok := c.courses[p]; !ok {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			res = append(res, Missing{ID: id, Prereqs: missing})
		}
	}
	return res
}

// FormatPrereqs joins prerequisites with commas,
// or returns "None" if there are none.
func FormatPrereqs(prereqs []string) string {
	if len(prereqs) == 0 {
		return "None"
	}
	return strings.Join(prereqs, ",")
}
