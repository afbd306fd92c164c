package dialogue

import (
	"fmt"
	"strings"

	"quad/internal/log"
	"quad/internal/nlp"
)

// handleRegisterCourse runs the registration checks in order: auth, valid
// code, not already registered, prerequisites, capacity. Each rejection
// leaves all state unchanged; only passing every check arms the pending
// action. The catalog is never mutated here - mutation belongs to the
// confirmed-execution path, so a validation pass can't reserve a seat.
func (e *Engine) handleRegisterCourse(entities nlp.Entities) string {
	if !e.profile.Authenticated() {
		return "Please log in first to register for courses. Just tell me your name!"
	}

	course, ok := e.catalog.Lookup(entities.CourseCode)
	if entities.CourseCode == "" || !ok {
		return "Please specify a valid course code (e.g., CS101, MATH101)"
	}

	if e.profile.Registered(course.Code) {
		return fmt.Sprintf("You're already registered for %s!", course.Code)
	}

	// Prerequisites are checked against the currently registered set.
	// Concurrent enrollment counts as satisfied - a known simplification
	// of "has completed", kept on purpose.
	var missing []string
	for _, prereq := range course.Prerequisites {
		if !e.profile.Registered(prereq) {
			missing = append(missing, prereq)
		}
	}
	if len(missing) > 0 {
		return fmt.Sprintf("❌ Cannot register for %s. Missing prerequisites: %s",
			course.Code, strings.Join(missing, ", "))
	}

	if course.Full() {
		return fmt.Sprintf("❌ %s is full! (%d/%d enrolled)", course.Code, course.Enrolled, course.Capacity)
	}

	e.pending = &PendingAction{Kind: ActionRegister, CourseCode: course.Code}
	log.Info(log.CatDialogue, "armed pending action", "action", ActionRegister, "course", course.Code)

	var b strings.Builder
	b.WriteString("📝 **Registration Confirmation**\n\n")
	fmt.Fprintf(&b, "Course: %s - %s\n", course.Code, course.Name)
	fmt.Fprintf(&b, "Credits: %d\n", course.Credits)
	fmt.Fprintf(&b, "Schedule: %s\n", course.Schedule)
	fmt.Fprintf(&b, "Instructor: %s\n", course.Instructor)
	fmt.Fprintf(&b, "Available spots: %d/%d\n\n", course.SpotsLeft(), course.Capacity)
	b.WriteString("Do you want to register for this course? (Type 'yes' to confirm or 'no' to cancel)")
	return b.String()
}

// handleDropCourse requires authentication and membership, then arms the
// drop for confirmation.
func (e *Engine) handleDropCourse(entities nlp.Entities) string {
	if !e.profile.Authenticated() {
		return "Please log in first to drop courses. Just tell me your name!"
	}

	if entities.CourseCode == "" {
		return "Please specify which course you want to drop"
	}

	if !e.profile.Registered(entities.CourseCode) {
		return fmt.Sprintf("You're not registered for %s", entities.CourseCode)
	}

	e.pending = &PendingAction{Kind: ActionDrop, CourseCode: entities.CourseCode}
	log.Info(log.CatDialogue, "armed pending action", "action", ActionDrop, "course", entities.CourseCode)

	var b strings.Builder
	b.WriteString("🗑️ **Drop Course Confirmation**\n\n")
	fmt.Fprintf(&b, "Are you sure you want to drop %s", entities.CourseCode)
	if course, ok := e.catalog.Lookup(entities.CourseCode); ok {
		fmt.Fprintf(&b, " - %s", course.Name)
	}
	b.WriteString("?\n\nType 'yes' to confirm or 'no' to cancel")
	return b.String()
}

// executePending consumes the pending action on an explicit confirm.
// This is the only path that mutates the registered set and the catalog's
// enrolled counters.
func (e *Engine) executePending() string {
	if e.pending == nil {
		// Defensive: the state machine only routes confirm here while an
		// action is armed.
		return "No pending action to execute."
	}

	action := *e.pending
	e.pending = nil
	log.Info(log.CatDialogue, "executing pending action", "action", action.Kind, "course", action.CourseCode)

	switch action.Kind {
	case ActionRegister:
		e.profile.RegisterCourse(action.CourseCode)
		e.catalog.IncrementEnrolled(action.CourseCode)

		course, _ := e.catalog.Lookup(action.CourseCode)
		var b strings.Builder
		b.WriteString("✅ **Registration Successful!**\n\n")
		b.WriteString("You're now registered for:\n")
		fmt.Fprintf(&b, "%s - %s\n", course.Code, course.Name)
		fmt.Fprintf(&b, "Schedule: %s\n", course.Schedule)
		fmt.Fprintf(&b, "Room: %s\n\n", course.Room)
		b.WriteString("Type 'my schedule' to see all your courses!")
		return b.String()

	case ActionDrop:
		e.profile.DropCourse(action.CourseCode)
		e.catalog.DecrementEnrolled(action.CourseCode)
		return fmt.Sprintf("✅ Successfully dropped %s from your schedule.", action.CourseCode)

	default:
		return "Action completed."
	}
}

// cancelPending discards the pending action on an explicit cancel.
func (e *Engine) cancelPending() string {
	action := *e.pending
	e.pending = nil
	log.Info(log.CatDialogue, "cancelled pending action", "action", action.Kind, "course", action.CourseCode)

	switch action.Kind {
	case ActionRegister:
		return fmt.Sprintf("❌ Registration for %s cancelled.", action.CourseCode)
	case ActionDrop:
		return fmt.Sprintf("❌ Drop request for %s cancelled.", action.CourseCode)
	default:
		return "Action cancelled."
	}
}
