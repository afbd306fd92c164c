// Package nlp maps free-form utterances to a structured intent plus
// extracted entities using an ordered table of regular expression rules.
package nlp

import "fmt"

// Intent represents the classified goal of a user utterance.
type Intent int

const (
	IntentCourseInfo Intent = iota
	IntentCourseSchedule
	IntentPrerequisites
	IntentDepartmentInfo
	IntentRegistrationInfo
	IntentRegisterCourse
	IntentDropCourse
	IntentMySchedule
	IntentAvailableCourses
	IntentLogin
	IntentConfirm
	IntentCancel
	IntentServices
	IntentGeneral // Fallback when no rule matches
)

// String returns the human-readable name of the intent.
func (i Intent) String() string {
	switch i {
	case IntentCourseInfo:
		return "course_info"
	case IntentCourseSchedule:
		return "course_schedule"
	case IntentPrerequisites:
		return "prerequisites"
	case IntentDepartmentInfo:
		return "department_info"
	case IntentRegistrationInfo:
		return "registration_info"
	case IntentRegisterCourse:
		return "register_course"
	case IntentDropCourse:
		return "drop_course"
	case IntentMySchedule:
		return "my_schedule"
	case IntentAvailableCourses:
		return "available_courses"
	case IntentLogin:
		return "login"
	case IntentConfirm:
		return "confirm"
	case IntentCancel:
		return "cancel"
	case IntentServices:
		return "services"
	case IntentGeneral:
		return "general"
	default:
		return fmt.Sprintf("unknown(%d)", int(i))
	}
}

// Entities holds structured values extracted from an utterance.
type Entities struct {
	CourseCode string // e.g. "CS101"; empty when absent
	Department string // department key, e.g. "computer_science"
}
