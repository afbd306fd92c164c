// Package student holds the per-session student identity and the set of
// registered course codes.
package student

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Profile is the session's student. Created empty and unauthenticated;
// a session gets exactly one profile at a time, replaced on logout.
type Profile struct {
	id            string
	name          string
	authenticated bool
	registered    map[string]struct{}
}

// NewProfile creates an empty, unauthenticated profile.
func NewProfile() *Profile {
	return &Profile{registered: make(map[string]struct{})}
}

// NewStudentID generates a unique student identifier.
// A random UUID prefix replaces the legacy name-hash scheme, which was
// collision-prone and unstable across runs.
func NewStudentID() string {
	return "STU-" + strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// Authenticate marks the profile as logged in.
// It succeeds only when both id and name are non-empty.
func (p *Profile) Authenticate(id, name string) bool {
	if id == "" || name == "" {
		return false
	}
	p.id = id
	p.name = name
	p.authenticated = true
	return true
}

// Authenticated reports whether the profile is logged in.
func (p *Profile) Authenticated() bool {
	return p.authenticated
}

// ID returns the student identifier, empty before authentication.
func (p *Profile) ID() string {
	return p.id
}

// Name returns the student's display name, empty before authentication.
func (p *Profile) Name() string {
	return p.name
}

// RegisterCourse adds code to the registered set.
// Pure membership guard: returns false when already present. All business
// validation (auth, prerequisites, capacity) happens before this is called.
func (p *Profile) RegisterCourse(code string) bool {
	if _, ok := p.registered[code]; ok {
		return false
	}
	p.registered[code] = struct{}{}
	return true
}

// DropCourse removes code from the registered set.
// Returns false when the code was not registered.
func (p *Profile) DropCourse(code string) bool {
	if _, ok := p.registered[code]; !ok {
		return false
	}
	delete(p.registered, code)
	return true
}

// Registered reports whether code is in the registered set.
func (p *Profile) Registered(code string) bool {
	_, ok := p.registered[code]
	return ok
}

// Courses returns the registered course codes in sorted order.
func (p *Profile) Courses() []string {
	out := make([]string, 0, len(p.registered))
	for code := range p.registered {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of registered courses.
func (p *Profile) Count() int {
	return len(p.registered)
}
