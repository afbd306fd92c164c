package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk catalog format.
type Document struct {
	Courses     []Course    `yaml:"courses"`
	Departments []Department `yaml:"departments"`
	General     GeneralInfo `yaml:"general"`
}

// ParseDocument decodes and validates a catalog document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := validate(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFile reads and parses a catalog document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied catalog file
	if err != nil {
		return Document{}, fmt.Errorf("reading catalog file: %w", err)
	}
	return ParseDocument(data)
}

// validate rejects malformed catalog entries up front so the dialogue
// engine never sees an inconsistent store.
func validate(doc Document) error {
	seen := make(map[string]bool, len(doc.Courses))
	for _, c := range doc.Courses {
		if c.Code == "" {
			return fmt.Errorf("catalog: course with empty code")
		}
		if seen[c.Code] {
			return fmt.Errorf("catalog: duplicate course code %s", c.Code)
		}
		seen[c.Code] = true
		if c.Capacity < 0 {
			return fmt.Errorf("catalog: %s has negative capacity %d", c.Code, c.Capacity)
		}
		if c.Enrolled < 0 || c.Enrolled > c.Capacity {
			return fmt.Errorf("catalog: %s enrolled %d outside [0, %d]", c.Code, c.Enrolled, c.Capacity)
		}
	}
	for _, c := range doc.Courses {
		for _, p := range c.Prerequisites {
			if !seen[p] {
				return fmt.Errorf("catalog: %s lists unknown prerequisite %s", c.Code, p)
			}
		}
	}
	deptSeen := make(map[string]bool, len(doc.Departments))
	for _, d := range doc.Departments {
		if d.Key == "" {
			return fmt.Errorf("catalog: department with empty key")
		}
		if deptSeen[d.Key] {
			return fmt.Errorf("catalog: duplicate department key %s", d.Key)
		}
		deptSeen[d.Key] = true
	}
	return nil
}
