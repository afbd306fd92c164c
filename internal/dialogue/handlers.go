package dialogue

import (
	"fmt"
	"regexp"
	"strings"

	"quad/internal/nlp"
	"quad/internal/student"
)

var loginNamePattern = regexp.MustCompile(`(my name is|i am) (\w+)`)

func (e *Engine) handleLogin(input string) string {
	if e.profile.Authenticated() {
		return fmt.Sprintf("You're already logged in as %s (ID: %s)", e.profile.Name(), e.profile.ID())
	}

	m := loginNamePattern.FindStringSubmatch(strings.ToLower(input))
	if m == nil {
		return "Please tell me your name to log in (e.g., 'My name is John' or 'I am Sarah')"
	}

	name := capitalize(m[2])
	id := student.NewStudentID()
	e.profile.Authenticate(id, name)
	return fmt.Sprintf("Welcome, %s! You're now logged in with ID: %s.\nYou can now register for courses, view your schedule, and more!", name, id)
}

func (e *Engine) handleCourseInfo(entities nlp.Entities) string {
	course, ok := e.catalog.Lookup(entities.CourseCode)
	if entities.CourseCode == "" || !ok {
		var codes []string
		for _, c := range e.catalog.All() {
			codes = append(codes, c.Code)
		}
		return fmt.Sprintf("I don't have information about that course. Available courses: %s", strings.Join(codes, ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 **%s: %s**\n\n", course.Code, course.Name)
	fmt.Fprintf(&b, "Credits: %d\n", course.Credits)
	fmt.Fprintf(&b, "Instructor: %s\n", course.Instructor)
	fmt.Fprintf(&b, "Schedule: %s\n", course.Schedule)
	fmt.Fprintf(&b, "Room: %s\n", course.Room)
	fmt.Fprintf(&b, "Description: %s\n", course.Description)
	fmt.Fprintf(&b, "Capacity: %d/%d (🟢 %d spots left)\n", course.Enrolled, course.Capacity, course.SpotsLeft())

	if len(course.Prerequisites) > 0 {
		fmt.Fprintf(&b, "Prerequisites: %s\n", strings.Join(course.Prerequisites, ", "))
	} else {
		b.WriteString("Prerequisites: None\n")
	}

	if e.profile.Authenticated() {
		if e.profile.Registered(course.Code) {
			b.WriteString("\n✅ You're registered for this course!")
		} else {
			fmt.Fprintf(&b, "\nTo register, type: 'register for %s'", course.Code)
		}
	}

	return b.String()
}

func (e *Engine) handleCourseSchedule(entities nlp.Entities) string {
	course, ok := e.catalog.Lookup(entities.CourseCode)
	if entities.CourseCode == "" || !ok {
		return "Please specify a valid course code (e.g., CS101, MATH101)"
	}
	return fmt.Sprintf("🕐 %s (%s) meets:\n%s\nRoom: %s", course.Code, course.Name, course.Schedule, course.Room)
}

func (e *Engine) handlePrerequisites(entities nlp.Entities) string {
	course, ok := e.catalog.Lookup(entities.CourseCode)
	if entities.CourseCode == "" || !ok {
		return "Please specify a valid course code to check prerequisites."
	}
	if len(course.Prerequisites) == 0 {
		return fmt.Sprintf("📋 %s has no prerequisites.", course.Code)
	}
	return fmt.Sprintf("📋 Prerequisites for %s: %s", course.Code, strings.Join(course.Prerequisites, ", "))
}

func (e *Engine) handleDepartmentInfo(entities nlp.Entities) string {
	dept, ok := e.catalog.Department(entities.Department)
	if entities.Department == "" || !ok {
		var names []string
		for _, d := range e.catalog.Departments() {
			names = append(names, d.Name)
		}
		return fmt.Sprintf("Please specify a valid department. Available departments: %s", strings.Join(names, ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏛️ **%s Department**\n\n", dept.Name)
	fmt.Fprintf(&b, "Department Head: %s\n", dept.Head)
	fmt.Fprintf(&b, "Location: %s\n", dept.Location)
	fmt.Fprintf(&b, "Phone: %s\n", dept.Phone)
	fmt.Fprintf(&b, "Email: %s\n", dept.Email)
	fmt.Fprintf(&b, "Popular Courses: %s", strings.Join(dept.PopularCourses, ", "))
	return b.String()
}

func (e *Engine) handleRegistrationInfo() string {
	var b strings.Builder
	b.WriteString("📅 **Registration Information**\n\n")
	general := e.catalog.General()
	b.WriteString("Registration Periods:\n")
	for _, p := range general.RegistrationDates {
		fmt.Fprintf(&b, "• %s: %s\n", p.Term, p.Dates)
	}

	if len(general.AcademicCalendar) > 0 {
		b.WriteString("\nAcademic Calendar:\n")
		for _, p := range general.AcademicCalendar {
			fmt.Fprintf(&b, "• %s: %s\n", p.Term, p.Dates)
		}
	}

	b.WriteString("\nTo register for courses:\n")
	b.WriteString("1. Log in (tell me your name)\n")
	b.WriteString("2. Check available courses: 'show available courses'\n")
	b.WriteString("3. Register: 'register for [course code]'\n")
	b.WriteString("4. View your schedule: 'my schedule'\n")

	if !e.profile.Authenticated() {
		b.WriteString("\n💡 Start by telling me your name to log in!")
	}
	return b.String()
}

func (e *Engine) handleMySchedule() string {
	if !e.profile.Authenticated() {
		return "Please log in first to view your schedule. Just tell me your name!"
	}
	if e.profile.Count() == 0 {
		return "📅 You're not registered for any courses yet.\nUse 'register for [course]' to add courses to your schedule!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **%s's Schedule**\n\n", e.profile.Name())
	total := 0
	for _, code := range e.profile.Courses() {
		course, ok := e.catalog.Lookup(code)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "• **%s**: %s\n", course.Code, course.Name)
		fmt.Fprintf(&b, "  Credits: %d | %s\n", course.Credits, course.Schedule)
		fmt.Fprintf(&b, "  Instructor: %s | Room: %s\n\n", course.Instructor, course.Room)
		total += course.Credits
	}
	fmt.Fprintf(&b, "**Total Credits: %d**", total)
	return b.String()
}

func (e *Engine) handleAvailableCourses() string {
	var b strings.Builder
	b.WriteString("📚 **Available Courses**\n\n")

	for _, course := range e.catalog.All() {
		if !course.Available || course.Full() {
			continue
		}
		fmt.Fprintf(&b, "• **%s**: %s\n", course.Code, course.Name)
		fmt.Fprintf(&b, "  Credits: %d | Spots left: %d\n", course.Credits, course.SpotsLeft())
		fmt.Fprintf(&b, "  Schedule: %s\n", course.Schedule)
		if len(course.Prerequisites) > 0 {
			fmt.Fprintf(&b, "  Prerequisites: %s\n", strings.Join(course.Prerequisites, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("To register for a course, type: 'register for [course code]'")
	return b.String()
}

func (e *Engine) handleServices(input string) string {
	services := e.catalog.General().Services
	lower := strings.ToLower(input)

	for _, s := range services {
		if strings.Contains(lower, strings.ToLower(s.Name)) {
			return fmt.Sprintf("ℹ️ %s: %s", s.Name, s.Info)
		}
	}

	var b strings.Builder
	b.WriteString("🎓 **University Services**\n\n")
	for _, s := range services {
		fmt.Fprintf(&b, "• **%s**: %s\n", s.Name, s.Info)
	}
	return b.String()
}

var greetings = []string{"hello", "hi", "hey", "good morning", "good afternoon"}

func (e *Engine) handleGeneral(input string) string {
	lower := strings.ToLower(input)

	for _, g := range greetings {
		if strings.Contains(lower, g) {
			var b strings.Builder
			b.WriteString("Hello! I'm your University Helper chatbot. I can help you with:\n")
			b.WriteString("• Course information and registration\n")
			b.WriteString("• Schedules and prerequisites\n")
			b.WriteString("• Department contacts\n")
			b.WriteString("• University services")
			if e.profile.Authenticated() {
				fmt.Fprintf(&b, "\n\n👋 Welcome back, %s!", e.profile.Name())
			} else {
				b.WriteString("\n\n💡 Tell me your name to get started with course registration!")
			}
			return b.String()
		}
	}

	if strings.Contains(lower, "thank") {
		return "You're welcome! Is there anything else I can help you with?"
	}

	if strings.Contains(lower, "help") {
		var b strings.Builder
		b.WriteString("I can help you with:\n")
		b.WriteString("• Course info: 'Tell me about CS101'\n")
		b.WriteString("• Registration: 'Register for MATH101'\n")
		b.WriteString("• Schedule: 'My schedule' or 'When is CS101?'\n")
		b.WriteString("• Available courses: 'Show available courses'\n")
		b.WriteString("• Drop courses: 'Drop CS101'\n")
		b.WriteString("• Department info: 'Computer Science department'\n")
		b.WriteString("• Services: 'University services'\n")
		if !e.profile.Authenticated() {
			b.WriteString("\nStart by telling me your name to log in!")
		}
		return b.String()
	}

	return "I'm not sure I understand. You can ask me about courses, registration, schedules, departments, or services. Type 'help' for more information."
}

// capitalize upper-cases the first letter, matching the login flow's
// treatment of captured names.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
