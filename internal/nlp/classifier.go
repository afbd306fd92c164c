package nlp

import (
	"strings"

	"quad/internal/catalog"
	"quad/internal/log"
)

// Classifier resolves utterances against the ordered rule table.
// It never fails: unrecognized input classifies as IntentGeneral.
type Classifier struct {
	departments []catalog.Department
}

// NewClassifier creates a classifier that resolves department entities
// against the given departments.
func NewClassifier(departments []catalog.Department) *Classifier {
	return &Classifier{departments: departments}
}

// Classify maps text to an intent and its entities.
// Entity extraction is independent of which pattern matched: the course
// code comes from the original text (upper-cased for matching) and the
// department from the key/name/alias tables.
func (c *Classifier) Classify(text string) (Intent, Entities) {
	lower := strings.ToLower(text)

	for _, r := range rules {
		for _, p := range r.patterns {
			if !p.MatchString(lower) {
				continue
			}
			entities := Entities{
				CourseCode: ExtractCourseCode(text),
				Department: extractDepartment(text, c.departments),
			}
			log.Debug(log.CatNLP, "classified utterance",
				"intent", r.intent, "course", entities.CourseCode, "dept", entities.Department)
			return r.intent, entities
		}
	}

	log.Debug(log.CatNLP, "no rule matched, falling back to general")
	return IntentGeneral, Entities{}
}
