package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSeed_ParsesAndValidates(t *testing.T) {
	doc := Seed()

	require.Len(t, doc.Courses, 6, "seed should carry six courses")
	require.Len(t, doc.Departments, 4, "seed should carry four departments")
	require.NotEmpty(t, doc.General.RegistrationDates)
	require.NotEmpty(t, doc.General.Services)
}

func TestStore_All_DeclarationOrder(t *testing.T) {
	s := NewStore(Seed())

	var codes []string
	for _, c := range s.All() {
		codes = append(codes, c.Code)
	}
	// Declaration order from the document, not alphabetical.
	require.Equal(t, []string{"CS101", "CS201", "MATH101", "ENG101", "PHY201", "CS301"}, codes)
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore(Seed())

	c, ok := s.Lookup("CS101")
	require.True(t, ok)
	require.Equal(t, "Introduction to Computer Science", c.Name)
	require.Equal(t, 3, c.Credits)
	require.Equal(t, 15, c.Enrolled)
	require.Equal(t, 30, c.Capacity)

	_, ok = s.Lookup("ART999")
	require.False(t, ok, "unknown code should not resolve")
}

func TestStore_Department(t *testing.T) {
	s := NewStore(Seed())

	d, ok := s.Department("computer_science")
	require.True(t, ok)
	require.Equal(t, "Dr. Anderson", d.Head)
	require.Equal(t, []string{"CS101", "CS201", "CS301"}, d.PopularCourses)

	_, ok = s.Department("underwater_basketweaving")
	require.False(t, ok)
}

func TestStore_IncrementDecrementEnrolled(t *testing.T) {
	s := NewStore(Seed())

	s.IncrementEnrolled("CS101")
	c, _ := s.Lookup("CS101")
	require.Equal(t, 16, c.Enrolled)

	s.DecrementEnrolled("CS101")
	c, _ = s.Lookup("CS101")
	require.Equal(t, 15, c.Enrolled)
}

func TestStore_IncrementEnrolled_UnknownCodeIgnored(t *testing.T) {
	s := NewStore(Seed())
	require.NotPanics(t, func() {
		s.IncrementEnrolled("NOPE123")
		s.DecrementEnrolled("NOPE123")
	})
}

func TestStore_IncrementEnrolled_StopsAtCapacity(t *testing.T) {
	s := NewStore(Seed())

	// ENG101 is 18/20; two increments fill it, further ones are ignored.
	s.IncrementEnrolled("ENG101")
	s.IncrementEnrolled("ENG101")
	s.IncrementEnrolled("ENG101")

	c, _ := s.Lookup("ENG101")
	require.Equal(t, 20, c.Enrolled, "enrolled must never exceed capacity")
}

func TestStore_DecrementEnrolled_StopsAtZero(t *testing.T) {
	doc := Seed()
	doc.Courses[0].Enrolled = 0
	s := NewStore(doc)

	s.DecrementEnrolled(doc.Courses[0].Code)
	c, _ := s.Lookup(doc.Courses[0].Code)
	require.Equal(t, 0, c.Enrolled)
}

func TestStore_Reload_PreservesEnrollment(t *testing.T) {
	s := NewStore(Seed())
	s.IncrementEnrolled("CS101") // 16

	doc := Seed()
	doc.Courses[0].Instructor = "Dr. Replacement"
	s.Reload(doc)

	c, _ := s.Lookup("CS101")
	require.Equal(t, "Dr. Replacement", c.Instructor, "metadata should take the new value")
	require.Equal(t, 16, c.Enrolled, "live enrollment should survive a reload")
}

func TestStore_Reload_ClampsToNewCapacity(t *testing.T) {
	s := NewStore(Seed())

	doc := Seed()
	doc.Courses[0].Capacity = 10
	doc.Courses[0].Enrolled = 10
	s.Reload(doc)

	c, _ := s.Lookup("CS101")
	require.Equal(t, 10, c.Enrolled, "prior count 15 must clamp to new capacity 10")
}

func TestParseDocument_RejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"duplicate code", "courses:\n  - code: CS101\n    capacity: 1\n  - code: CS101\n    capacity: 1\n"},
		{"enrolled over capacity", "courses:\n  - code: CS101\n    capacity: 5\n    enrolled: 6\n"},
		{"negative enrolled", "courses:\n  - code: CS101\n    capacity: 5\n    enrolled: -1\n"},
		{"unknown prerequisite", "courses:\n  - code: CS201\n    capacity: 5\n    prerequisites: [CS101]\n"},
		{"empty course code", "courses:\n  - name: Mystery\n    capacity: 5\n"},
		{"duplicate department", "departments:\n  - key: math\n  - key: math\n"},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, seedYAML, 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Courses, 6)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// Enrollment counters stay within [0, capacity] under any interleaving of
// increments and decrements.
func TestStore_EnrollmentBounds_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewStore(Seed())
		codes := []string{"CS101", "CS201", "MATH101", "ENG101", "PHY201", "CS301", "BOGUS999"}

		n := rapid.IntRange(0, 200).Draw(t, "ops")
		for i := 0; i < n; i++ {
			code := rapid.SampledFrom(codes).Draw(t, "code")
			if rapid.Bool().Draw(t, "inc") {
				s.IncrementEnrolled(code)
			} else {
				s.DecrementEnrolled(code)
			}
		}

		for _, c := range s.All() {
			if c.Enrolled < 0 || c.Enrolled > c.Capacity {
				t.Fatalf("%s enrolled %d outside [0, %d]", c.Code, c.Enrolled, c.Capacity)
			}
		}
	})
}
