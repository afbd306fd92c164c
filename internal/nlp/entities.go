package nlp

import (
	"regexp"
	"strings"

	"quad/internal/catalog"
)

// courseCodePattern matches the shape of a course code: 2-4 letters
// followed by exactly 3 digits, tested against the upper-cased utterance.
var courseCodePattern = regexp.MustCompile(`([A-Z]{2,4}\d{3})`)

// deptAlias maps common short forms to department keys. Checked in order
// after the key/name substring pass; "cs" must come before longer aliases
// so it wins on bare "cs" utterances.
var deptAliases = []struct {
	alias string
	key   string
}{
	{"cs", "computer_science"},
	{"comp sci", "computer_science"},
	{"math", "mathematics"},
	{"eng", "english"},
	{"phys", "physics"},
}

// ExtractCourseCode pulls the first course-code-shaped token from text.
// Matching runs on the upper-cased original text, so "cs101" resolves.
func ExtractCourseCode(text string) string {
	return courseCodePattern.FindString(strings.ToUpper(text))
}

// extractDepartment resolves a department key from text: first a substring
// match against known keys (underscores as spaces) and display names, then
// the fixed alias table.
func extractDepartment(text string, departments []catalog.Department) string {
	lower := strings.ToLower(text)
	for _, d := range departments {
		if strings.Contains(lower, strings.ReplaceAll(d.Key, "_", " ")) ||
			strings.Contains(lower, strings.ToLower(d.Name)) {
			return d.Key
		}
	}
	for _, a := range deptAliases {
		if strings.Contains(lower, a.alias) {
			return a.key
		}
	}
	return ""
}
