package dialogue

import "fmt"

// PendingPolicy decides what happens to an armed pending action when the
// user digresses to an unrelated intent instead of confirming or
// cancelling.
type PendingPolicy int

const (
	// PolicyPreserve keeps the pending action armed across digressions.
	// This matches legacy behavior: a later unrelated "yes" can execute a
	// stale action. Default.
	PolicyPreserve PendingPolicy = iota

	// PolicyDiscard drops the pending action before handling the new
	// intent, so only an immediate confirm executes it.
	PolicyDiscard
)

func (p PendingPolicy) String() string {
	switch p {
	case PolicyPreserve:
		return "preserve"
	case PolicyDiscard:
		return "discard"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePendingPolicy resolves a config string to a policy.
// Unrecognized values fall back to PolicyPreserve.
func ParsePendingPolicy(s string) (PendingPolicy, error) {
	switch s {
	case "", "preserve":
		return PolicyPreserve, nil
	case "discard":
		return PolicyDiscard, nil
	default:
		return PolicyPreserve, fmt.Errorf("unknown pending policy %q (want preserve or discard)", s)
	}
}
