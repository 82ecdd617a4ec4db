package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "courses.txt")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func ids(list []*Course) []string {
	res := make([]string, len(list))
	for i, c := range list {
		res[i] = c.ID
	}
	return res
}

func mustList(t *testing.T, c *Catalog) []*Course {
	t.Helper()
	list, err := c.List()
	if err != nil {
		t.Fatal(err)
	}
	return list
}

func TestLoad(t *testing.T) {
	c := New()
	file := writeCatalog(t, "CS101,Intro to CS\nCS201,Data Structures,CS101\n")
	if err := c.Load(file); err != nil {
		t.Fatal(err)
	}
	list := mustList(t, c)
	if len(list) != 2 {
		t.Fatalf("expected 2 courses; got %d", len(list))
	}
	if list[0].ID != "CS101" || list[0].Title != "Intro to CS" {
		t.Errorf("wrong first course: %v", list[0])
	}
	if list[1].ID != "CS201" || list[1].Title != "Data Structures" {
		t.Errorf("wrong second course: %v", list[1])
	}

	crs, err := c.Lookup("cs201")
	if err != nil {
		t.Fatal(err)
	}
	if crs.Title != "Data Structures" {
		t.Errorf("wrong title: got %q", crs.Title)
	}
	if !reflect.DeepEqual(crs.Prereqs, []string{"CS101"}) {
		t.Errorf("wrong prereqs: got %q", crs.Prereqs)
	}
	if _, err = c.Lookup("CS999"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound; got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ids   []string
	}{
		{"empty", "", []string{}},
		{"blank lines", "\n   \n\t\nCS100,A\n\n", []string{"CS100"}},
		{"one field", "CS100\nCS200,B\nCS300,\n", []string{"CS200"}},
		{"sorted", "CS300,C\nCS100,A\nCS200,B", []string{"CS100", "CS200", "CS300"}},
		{"lexical order", "CS2,Two\nCS10,Ten", []string{"CS10", "CS2"}},
		{"crlf", "CS200,B\r\nCS100,A\r\n", []string{"CS100", "CS200"}},
		{"duplicates", "CS100,A\nCS100,Again", []string{"CS100", "CS100"}},
		{"collapsed fields", ",,CS100,,A", []string{"CS100"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if err := c.Parse(strings.NewReader(tt.input)); err != nil {
				t.Fatal(err)
			}
			list, err := c.List()
			if len(tt.ids) == 0 {
				if err != ErrEmpty {
					t.Errorf("expected ErrEmpty; got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := ids(list); !reflect.DeepEqual(got, tt.ids) {
				t.Errorf("got %q; want %q", got, tt.ids)
			}
		})
	}
}

func TestDuplicateLastWins(t *testing.T) {
	c := New()
	if err := c.Parse(strings.NewReader("CS100,First,CS1\nCS100,Second\n")); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 distinct course; got %d", c.Len())
	}
	for _, crs := range mustList(t, c) {
		if crs.Title != "Second" {
			t.Errorf("expected last row to win; got %q", crs.Title)
		}
		if len(crs.Prereqs) != 0 {
			t.Errorf("expected no prereqs; got %q", crs.Prereqs)
		}
	}
}

func TestPrereqs(t *testing.T) {
	tests := []struct {
		line    string
		prereqs []string
	}{
		{"CS100,Intro", []string{}},
		{"CS100,Intro,CS1", []string{"CS1"}},
		{"CS100,Intro, CS3 ,CS1,CS2", []string{"CS3", "CS1", "CS2"}},
		{"CS100,Intro,CS1,CS1", []string{"CS1", "CS1"}},
		{"CS100,Intro,,CS1,,", []string{"CS1"}},
		{"CS100,Intro,NOPE999", []string{"NOPE999"}},
	}
	for _, tst := range tests {
		c := New()
		if err := c.Parse(strings.NewReader(tst.line)); err != nil {
			t.Fatal(err)
		}
		crs, err := c.Lookup("cs100")
		if err != nil {
			t.Errorf("%q: %v", tst.line, err)
			continue
		}
		if !reflect.DeepEqual(crs.Prereqs, tst.prereqs) {
			t.Errorf("%q: got %q; want %q", tst.line, crs.Prereqs, tst.prereqs)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := New()
	if err := c.Load(writeCatalog(t, "CS300,C\nCS100,A\n")); err != nil {
		t.Fatal(err)
	}
	before := ids(mustList(t, c))

	err := c.Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected a not-exist cause; got %v", err)
	}
	if !strings.Contains(err.Error(), "could not open file") {
		t.Errorf("wrong error message: %v", err)
	}
	after := ids(mustList(t, c))
	if !reflect.DeepEqual(before, after) {
		t.Errorf("catalog changed after failed load: %q => %q", before, after)
	}
}

func TestLoadReplaces(t *testing.T) {
	c := New()
	if err := c.Load(writeCatalog(t, "CS100,A\nCS200,B\n")); err != nil {
		t.Fatal(err)
	}
	if err := c.Load(writeCatalog(t, "MATH201,Discrete Math\n")); err != nil {
		t.Fatal(err)
	}
	got := ids(mustList(t, c))
	if !reflect.DeepEqual(got, []string{"MATH201"}) {
		t.Errorf("expected only the second file's courses; got %q", got)
	}
	if _, err := c.Lookup("CS100"); err != ErrNotFound {
		t.Errorf("old course still found: %v", err)
	}
}

type failingReader struct{ data string }

func (fr *failingReader) Read(p []byte) (int, error) {
	if fr.data == "" {
		return 0, errors.New("disk on fire")
	}
	n := copy(p, fr.data)
	fr.data = fr.data[n:]
	return n, nil
}

func TestParseReadError(t *testing.T) {
	c := New()
	if err := c.Parse(strings.NewReader("CS100,A\n")); err != nil {
		t.Fatal(err)
	}
	err := c.Parse(&failingReader{data: "CS200,B\nCS300,C\n"})
	if err == nil {
		t.Fatal("expected a read error")
	}
	if got := ids(mustList(t, c)); !reflect.DeepEqual(got, []string{"CS100"}) {
		t.Errorf("catalog changed after a failed read: %q", got)
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := New()
	if _, err := c.List(); err != ErrEmpty {
		t.Errorf("expected ErrEmpty from List; got %v", err)
	}
	if _, err := c.Lookup("CS100"); err != ErrEmpty {
		t.Errorf("expected ErrEmpty from Lookup; got %v", err)
	}
	if c.Len() != 0 {
		t.Error("new catalog should be empty")
	}
}

func TestLookupCase(t *testing.T) {
	c := New()
	if err := c.Parse(strings.NewReader("CS100,Upper\ncs200,Lower\n")); err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{"CS100", "cs100", "Cs100"} {
		if _, err := c.Lookup(in); err != nil {
			t.Errorf("Lookup(%q): %v", in, err)
		}
	}
	// lower case ids are kept as is and can't be matched
	if _, err := c.Lookup("cs200"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound; got %v", err)
	}
	if _, ok := c.Get("cs200"); !ok {
		t.Error("Get should find the exact id")
	}
}

func TestListDoesNotMutate(t *testing.T) {
	c := New()
	if err := c.Parse(strings.NewReader("B,2\nA,1\n")); err != nil {
		t.Fatal(err)
	}
	mustList(t, c)
	if !reflect.DeepEqual(c.order, []string{"B", "A"}) {
		t.Errorf("insertion order was changed: %q", c.order)
	}
}

func TestUnresolved(t *testing.T) {
	c := New()
	input := "CS300,Algorithms,CS200,MATH1\nCS200,Data Structures,CS100\nCS100,Intro\nCS400,Capstone,X,Y\n"
	if err := c.Parse(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	exp := []Missing{
		{ID: "CS300", Prereqs: []string{"MATH1"}},
		{ID: "CS400", Prereqs: []string{"X", "Y"}},
	}
	if res := c.Unresolved(); !reflect.DeepEqual(res, exp) {
		t.Errorf("got %v; want %v", res, exp)
	}
}

func TestFormatPrereqs(t *testing.T) {
	tests := []struct {
		in  []string
		exp string
	}{
		{nil, "None"},
		{[]string{}, "None"},
		{[]string{"CS100"}, "CS100"},
		{[]string{"CS100", "MATH201"}, "CS100,MATH201"},
	}
	for _, tst := range tests {
		if res := FormatPrereqs(tst.in); res != tst.exp {
			t.Errorf("FormatPrereqs(%q): got %q; want %q", tst.in, res, tst.exp)
		}
	}
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	input := "CS100,Intro\nCS200," + long + ",CS100\nCS300,Algorithms\n"
	c := New()
	if err := c.Parse(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	if got := ids(mustList(t, c)); !reflect.DeepEqual(got, []string{"CS100", "CS200", "CS300"}) {
		t.Errorf("got %q", got)
	}
	crs, err := c.Lookup("CS200")
	if err != nil {
		t.Fatal(err)
	}
	if len(crs.Title) != len(long) {
		t.Errorf("title was cut short: %d bytes", len(crs.Title))
	}
	if !reflect.DeepEqual(crs.Prereqs, []string{"CS100"}) {
		t.Errorf("wrong prereqs %q", crs.Prereqs)
	}
}

func TestParseNoTrailingNewline(t *testing.T) {
	c := New()
	if err := c.Parse(strings.NewReader("CS100,Intro\nCS200,Data Structures,CS100")); err != nil {
		t.Fatal(err)
	}
	crs, err := c.Lookup("cs200")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(crs.Prereqs, []string{"CS100"}) {
		t.Errorf("wrong prereqs %q", crs.Prereqs)
	}
}
