// Package dialogue implements the conversation engine: intent dispatch,
// the single-pending-action state machine, and the registration/drop
// business rules.
package dialogue

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"quad/internal/catalog"
	"quad/internal/log"
	"quad/internal/nlp"
	"quad/internal/pubsub"
	"quad/internal/student"
)

const apologyMessage = "Sorry, something went wrong on my end. Please try that again."

// Config configures a dialogue engine.
type Config struct {
	// Catalog is the owned course store. Required.
	Catalog *catalog.Store

	// Policy controls pending-action handling on digression.
	// Zero value is PolicyPreserve (legacy behavior).
	Policy PendingPolicy

	// Broker receives a TurnEvent per processed turn. Optional.
	Broker *pubsub.Broker[Turn]

	// Tracer emits one span per turn. Optional; nil means no-op.
	Tracer trace.Tracer
}

// Engine drives a single conversation session. It owns the catalog
// reference and the student profile, and assumes sequential invocation:
// one GenerateResponse call at a time. The presentation layer serializes
// turns; the engine does no internal locking.
type Engine struct {
	catalog    *catalog.Store
	classifier *nlp.Classifier
	profile    *student.Profile
	history    []Turn
	pending    *PendingAction
	policy     PendingPolicy
	broker     *pubsub.Broker[Turn]
	tracer     trace.Tracer
}

// New creates an engine for a fresh, unauthenticated session.
func New(cfg Config) *Engine {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("dialogue")
	}
	return &Engine{
		catalog:    cfg.Catalog,
		classifier: nlp.NewClassifier(cfg.Catalog.Departments()),
		profile:    student.NewProfile(),
		policy:     cfg.Policy,
		broker:     cfg.Broker,
		tracer:     tracer,
	}
}

// GenerateResponse processes one utterance to completion and returns the
// response text. Failure conditions are ordinary response text; only an
// unexpected internal panic is converted into a generic apology here.
func (e *Engine) GenerateResponse(ctx context.Context, input string) (response string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(log.CatDialogue, "recovered panic in turn", "panic", r, "input", input)
			response = apologyMessage
		}
	}()

	ctx, span := e.tracer.Start(ctx, "dialogue.turn")
	defer span.End()

	intent, entities := e.classifier.Classify(input)
	span.SetAttributes(
		attribute.String("dialogue.intent", intent.String()),
		attribute.String("dialogue.course_code", entities.CourseCode),
		attribute.Bool("dialogue.pending", e.pending != nil),
	)

	turn := Turn{Input: input, Intent: intent, Entities: entities, Timestamp: time.Now()}
	e.history = append(e.history, turn)
	if e.broker != nil {
		e.broker.Publish(pubsub.TurnEvent, turn)
	}

	// A pending action intercepts confirm/cancel before normal dispatch.
	if e.pending != nil {
		switch intent {
		case nlp.IntentConfirm:
			return e.executePending()
		case nlp.IntentCancel:
			return e.cancelPending()
		default:
			if e.policy == PolicyDiscard {
				log.Info(log.CatDialogue, "discarding pending action on digression",
					"action", e.pending.Kind, "course", e.pending.CourseCode)
				e.pending = nil
			}
		}
	}

	return e.dispatch(ctx, intent, entities, input)
}

// dispatch routes an intent to its handler.
func (e *Engine) dispatch(_ context.Context, intent nlp.Intent, entities nlp.Entities, input string) string {
	switch intent {
	case nlp.IntentLogin:
		return e.handleLogin(input)
	case nlp.IntentCourseInfo:
		return e.handleCourseInfo(entities)
	case nlp.IntentCourseSchedule:
		return e.handleCourseSchedule(entities)
	case nlp.IntentPrerequisites:
		return e.handlePrerequisites(entities)
	case nlp.IntentDepartmentInfo:
		return e.handleDepartmentInfo(entities)
	case nlp.IntentRegistrationInfo:
		return e.handleRegistrationInfo()
	case nlp.IntentRegisterCourse:
		return e.handleRegisterCourse(entities)
	case nlp.IntentDropCourse:
		return e.handleDropCourse(entities)
	case nlp.IntentMySchedule:
		return e.handleMySchedule()
	case nlp.IntentAvailableCourses:
		return e.handleAvailableCourses()
	case nlp.IntentServices:
		return e.handleServices(input)
	case nlp.IntentConfirm:
		return "There's nothing waiting for confirmation. Ask me to register for or drop a course first!"
	case nlp.IntentCancel:
		return "There's nothing to cancel right now."
	default:
		return e.handleGeneral(input)
	}
}

// Authenticated reports whether the session's student is logged in.
func (e *Engine) Authenticated() bool {
	return e.profile.Authenticated()
}

// StudentName returns the logged-in student's name, empty otherwise.
func (e *Engine) StudentName() string {
	return e.profile.Name()
}

// StudentID returns the logged-in student's identifier, empty otherwise.
func (e *Engine) StudentID() string {
	return e.profile.ID()
}

// RegisteredCourseCodes returns the registered codes in sorted order.
func (e *Engine) RegisteredCourseCodes() []string {
	return e.profile.Courses()
}

// Pending returns a copy of the armed pending action, if any.
func (e *Engine) Pending() (PendingAction, bool) {
	if e.pending == nil {
		return PendingAction{}, false
	}
	return *e.pending, true
}

// History returns a copy of the conversation audit trail.
func (e *Engine) History() []Turn {
	out := make([]Turn, len(e.history))
	copy(out, e.history)
	return out
}

// Logout resets the session to a fresh unauthenticated profile and drops
// any pending action. The conversation history is preserved.
func (e *Engine) Logout() {
	log.Info(log.CatDialogue, "logout", "student", e.profile.ID())
	e.profile = student.NewProfile()
	e.pending = nil
}
