package catalog

import (
	"sync"

	"quad/internal/log"
)

// Store is the runtime catalog. Course order is declaration order from the
// source document, which callers rely on for stable listings.
//
// A single dialogue session never mutates the store concurrently, but the
// catalog file watcher can trigger a Reload from outside the dialogue turn,
// so access is guarded by a read-write mutex.
type Store struct {
	mu          sync.RWMutex
	courses     []Course
	index       map[string]int
	departments []Department
	deptIndex   map[string]int
	general     GeneralInfo
}

// NewStore builds a store from a validated document.
func NewStore(doc Document) *Store {
	s := &Store{}
	s.install(doc, nil)
	return s
}

// install replaces the store contents. When prior enrollment counts are
// given they are carried over for surviving course codes, clamped to the
// new capacity, so a catalog edit never invalidates live registrations.
func (s *Store) install(doc Document, priorEnrolled map[string]int) {
	courses := make([]Course, len(doc.Courses))
	copy(courses, doc.Courses)
	index := make(map[string]int, len(courses))
	for i, c := range courses {
		if prior, ok := priorEnrolled[c.Code]; ok {
			if prior > c.Capacity {
				prior = c.Capacity
			}
			courses[i].Enrolled = prior
		}
		index[c.Code] = i
	}

	departments := make([]Department, len(doc.Departments))
	copy(departments, doc.Departments)
	deptIndex := make(map[string]int, len(departments))
	for i, d := range departments {
		deptIndex[d.Key] = i
	}

	s.courses = courses
	s.index = index
	s.departments = departments
	s.deptIndex = deptIndex
	s.general = doc.General
}

// Lookup returns the course for code, if present.
func (s *Store) Lookup(code string) (Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[code]
	if !ok {
		return Course{}, false
	}
	return s.courses[i], true
}

// All returns every course in declaration order.
func (s *Store) All() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Department returns the department for key, if present.
func (s *Store) Department(key string) (Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.deptIndex[key]
	if !ok {
		return Department{}, false
	}
	return s.departments[i], true
}

// Departments returns every department in declaration order.
func (s *Store) Departments() []Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Department, len(s.departments))
	copy(out, s.departments)
	return out
}

// General returns campus-wide information.
func (s *Store) General() GeneralInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.general
}

// IncrementEnrolled bumps the enrolled count for code.
// Unknown codes are ignored: existence and capacity are validated by the
// registration workflow before a confirmed action reaches the store.
func (s *Store) IncrementEnrolled(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[code]
	if !ok {
		return
	}
	if s.courses[i].Enrolled >= s.courses[i].Capacity {
		log.Warn(log.CatCatalog, "increment past capacity ignored", "code", code)
		return
	}
	s.courses[i].Enrolled++
}

// DecrementEnrolled lowers the enrolled count for code.
// Unknown codes are ignored, and the count never goes below zero.
func (s *Store) DecrementEnrolled(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[code]
	if !ok {
		return
	}
	if s.courses[i].Enrolled <= 0 {
		log.Warn(log.CatCatalog, "decrement below zero ignored", "code", code)
		return
	}
	s.courses[i].Enrolled--
}

// Reload swaps in a new document while preserving live enrollment counts
// for course codes that survive the reload.
func (s *Store) Reload(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := make(map[string]int, len(s.courses))
	for _, c := range s.courses {
		prior[c.Code] = c.Enrolled
	}
	s.install(doc, prior)
	log.Info(log.CatCatalog, "catalog reloaded", "courses", len(doc.Courses))
}
