package dialogue

import "fmt"

// ActionKind tags the two confirmable actions.
type ActionKind int

const (
	ActionRegister ActionKind = iota
	ActionDrop
)

func (k ActionKind) String() string {
	switch k {
	case ActionRegister:
		return "register"
	case ActionDrop:
		return "drop"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// PendingAction is the single outstanding state-changing operation
// awaiting explicit confirm or cancel. At most one exists per session;
// its course code is a valid catalog key at creation time.
type PendingAction struct {
	Kind       ActionKind
	CourseCode string
}
