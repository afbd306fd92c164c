// Package catalog holds the course catalog: courses, departments, and
// general campus information. Courses are read-mostly; the only field
// mutated after load is the per-course enrolled count.
package catalog

// Course describes a single offered course.
type Course struct {
	Code          string   `yaml:"code"`
	Name          string   `yaml:"name"`
	Credits       int      `yaml:"credits"`
	Prerequisites []string `yaml:"prerequisites"`
	Description   string   `yaml:"description"`
	Schedule      string   `yaml:"schedule"`
	Instructor    string   `yaml:"instructor"`
	Room          string   `yaml:"room"`
	Capacity      int      `yaml:"capacity"`
	Enrolled      int      `yaml:"enrolled"`
	Available     bool     `yaml:"available"`
}

// SpotsLeft returns the number of open seats.
func (c Course) SpotsLeft() int {
	return c.Capacity - c.Enrolled
}

// Full reports whether the course has no open seats.
func (c Course) Full() bool {
	return c.Enrolled >= c.Capacity
}

// Department describes an academic department. Immutable at runtime.
type Department struct {
	Key            string   `yaml:"key"`
	Name           string   `yaml:"name"`
	Head           string   `yaml:"head"`
	Location       string   `yaml:"location"`
	Phone          string   `yaml:"phone"`
	Email          string   `yaml:"email"`
	PopularCourses []string `yaml:"popular_courses"`
}

// Period is a named date range, e.g. a registration window.
type Period struct {
	Term  string `yaml:"term"`
	Dates string `yaml:"dates"`
}

// Service is a campus service with a short description.
type Service struct {
	Name string `yaml:"name"`
	Info string `yaml:"info"`
}

// GeneralInfo holds campus-wide information that handlers surface verbatim.
type GeneralInfo struct {
	RegistrationDates []Period  `yaml:"registration_dates"`
	AcademicCalendar  []Period  `yaml:"academic_calendar"`
	Services          []Service `yaml:"services"`
}
