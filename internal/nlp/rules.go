package nlp

import "regexp"

// rule pairs an intent with its trigger patterns. Patterns are tested
// against the lower-cased utterance.
type rule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// rules is the authoritative precedence order: the first intent with any
// matching pattern wins, even if a later intent's pattern would also match.
// This resolves inherently ambiguous phrasings, e.g. an utterance that
// contains both a course code and the word "schedule" classifies as
// course_schedule before my_schedule can see it. Reordering this table
// changes observable behavior.
var rules = []rule{
	{IntentCourseInfo, compile(
		`(tell me about|what is|describe) (course )?(\w+\d+)`,
		`(\w+\d+) (course|class) (info|information|details)`,
		`(info|information|details) (about|on) (\w+\d+)`,
	)},
	{IntentCourseSchedule, compile(
		`when (is|does) (\w+\d+) (meet|held|scheduled)`,
		`(\w+\d+) (schedule|time|timing)`,
		`what time (is )?(\w+\d+)`,
	)},
	{IntentPrerequisites, compile(
		`(what are the )?(prerequisites|prereqs) (for )?(\w+\d+)`,
		`(\w+\d+) (prerequisites|prereqs|requirements)`,
		`what (do i need|courses needed) (for|before) (\w+\d+)`,
	)},
	{IntentDepartmentInfo, compile(
		`(tell me about|what is|describe) (the )?(\w+) department`,
		`(\w+) department (info|information|contact)`,
		`who (is the head|heads) (of )?(the )?(\w+) department`,
	)},
	{IntentRegistrationInfo, compile(
		`when (is|does) registration (start|begin|open)`,
		`registration (dates|schedule|period)`,
		`how (do i|to) register (for courses|for classes)`,
	)},
	{IntentRegisterCourse, compile(
		`register (for|me for) (\w+\d+)`,
		`enroll (in|me in) (\w+\d+)`,
		`add (\w+\d+) (to my schedule|to schedule)`,
		`i want to (register for|take) (\w+\d+)`,
	)},
	{IntentDropCourse, compile(
		`drop (\w+\d+)`,
		`remove (\w+\d+) (from my schedule)`,
		`unregister (from )?(\w+\d+)`,
		`i want to drop (\w+\d+)`,
	)},
	{IntentMySchedule, compile(
		`(show|what is|display) my (schedule|courses)`,
		`what (courses|classes) am i (taking|registered for)`,
		`my (current )?schedule`,
		`what (courses|classes) do i have`,
	)},
	{IntentAvailableCourses, compile(
		`(what|which) courses are available`,
		`show (me )?available courses`,
		`list (all )?courses`,
		`what can i take`,
	)},
	{IntentLogin, compile(
		`login|log in|sign in|authenticate`,
		`i am (\w+)`,
		`my name is (\w+)`,
	)},
	{IntentConfirm, compile(
		`(yes|yeah|yep|confirm|ok|okay|proceed)`,
		`do it|go ahead`,
	)},
	{IntentCancel, compile(
		`(no|nope|cancel|abort|stop)`,
		`never mind|forget it`,
	)},
	{IntentServices, compile(
		`(what|tell me about) (university )?services`,
		`(library|tutoring|counseling|career) (services|hours|info)`,
		`where (is|can i find) (the )?(library|tutoring|counseling)`,
	)},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}
