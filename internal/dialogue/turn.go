package dialogue

import (
	"time"

	"quad/internal/nlp"
)

// Turn records one processed utterance. The history of turns is an
// append-only audit trail; entries are never mutated or removed, even
// when the visible transcript is cleared.
type Turn struct {
	Input     string
	Intent    nlp.Intent
	Entities  nlp.Entities
	Timestamp time.Time
}
