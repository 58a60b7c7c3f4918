// Package form is the one state machine behind every form in the client:
// product create/edit, artisan profile, credentials, login and register.
// It keeps the draft field values apart from the committed entity; the
// draft is never authoritative until a successful mutation response
// replaces the committed copy.
package form

import (
	"fmt"
	"strings"
)

// Phase is the controller's state.
type Phase int

const (
	Viewing Phase = iota
	Editing
	Submitting
)

func (p Phase) String() string {
	switch p {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Field describes one form input.
type Field struct {
	Name     string
	Label    string
	Required bool
	Secret   bool // passwords: render masked
	Multi    bool // long text: render as a textarea
}

// ValidationError is a local, pre-network failure on one field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every field failure of one submit attempt.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// matchRule demands two fields hold the same value (password + confirm).
type matchRule struct {
	a, b    string
	message string
}

// Controller drives one form over a committed entity of type T.
//
//	Viewing -> Editing     BeginEdit (draft initialized from committed)
//	Editing -> Viewing     Cancel (draft discarded, no network)
//	Editing -> Submitting  Submit (only when local validation passes)
//	Submitting -> Viewing  Resolve(result, nil): committed replaced
//	Submitting -> Editing  Resolve(_, err): draft preserved, error surfaced
//
// The controller performs no I/O itself. The caller runs exactly one
// mutation per successful Submit and reports back through Resolve.
type Controller[T any] struct {
	fields    []Field
	matches   []matchRule
	committed T
	draft     map[string]string
	phase     Phase
	submitErr error
}

// New creates a controller in Viewing with the given committed entity.
func New[T any](committed T, fields ...Field) *Controller[T] {
	return &Controller[T]{
		fields:    fields,
		committed: committed,
		draft:     map[string]string{},
	}
}

// RequireMatch adds a rule that fields a and b must hold equal values, used
// for password confirmation.
func (c *Controller[T]) RequireMatch(a, b, message string) {
	c.matches = append(c.matches, matchRule{a: a, b: b, message: message})
}

func (c *Controller[T]) Phase() Phase { return c.phase }

// Committed returns the last server-confirmed entity.
func (c *Controller[T]) Committed() T { return c.committed }

// Fields returns the field descriptors in declaration order.
func (c *Controller[T]) Fields() []Field { return c.fields }

// Err returns the error surfaced by the last failed submit, cleared on the
// next successful one.
func (c *Controller[T]) Err() error { return c.submitErr }

// BeginEdit moves Viewing -> Editing, seeding the draft from initial (the
// committed entity's values, or empty defaults when creating new). A no-op
// outside Viewing.
func (c *Controller[T]) BeginEdit(initial map[string]string) bool {
	if c.phase != Viewing {
		return false
	}
	c.draft = map[string]string{}
	for _, f := range c.fields {
		c.draft[f.Name] = initial[f.Name]
	}
	c.phase = Editing
	return true
}

// Cancel moves Editing -> Viewing and discards the draft. No network call
// is ever made on this path.
func (c *Controller[T]) Cancel() bool {
	if c.phase != Editing {
		return false
	}
	c.draft = map[string]string{}
	c.submitErr = nil
	c.phase = Viewing
	return true
}

// Set updates one draft field while editing.
func (c *Controller[T]) Set(name, value string) {
	if c.phase != Editing {
		return
	}
	c.draft[name] = value
}

// Value reads one draft field.
func (c *Controller[T]) Value(name string) string {
	return c.draft[name]
}

// Draft returns a copy of the current draft values.
func (c *Controller[T]) Draft() map[string]string {
	out := make(map[string]string, len(c.draft))
	for k, v := range c.draft {
		out[k] = v
	}
	return out
}

// Validate checks required fields and match rules against the draft.
func (c *Controller[T]) Validate() ValidationErrors {
	var errs ValidationErrors
	for _, f := range c.fields {
		if f.Required && strings.TrimSpace(c.draft[f.Name]) == "" {
			errs = append(errs, ValidationError{Field: f.Name, Message: f.Label + " is required"})
		}
	}
	for _, m := range c.matches {
		if c.draft[m.a] != c.draft[m.b] {
			errs = append(errs, ValidationError{Field: m.b, Message: m.message})
		}
	}
	return errs
}

// Submit moves Editing -> Submitting when validation passes. On validation
// failure the controller stays in Editing and returns the failures; no
// mutation may be issued. While already Submitting, repeated submits are
// ignored (nil, false): one network call per submit.
func (c *Controller[T]) Submit() (ValidationErrors, bool) {
	if c.phase != Editing {
		return nil, false
	}
	if errs := c.Validate(); len(errs) > 0 {
		c.submitErr = errs
		return errs, false
	}
	c.submitErr = nil
	c.phase = Submitting
	return nil, true
}

// Resolve reports the outcome of the mutation issued after Submit. Success
// replaces the committed entity and clears the draft (-> Viewing); failure
// preserves the draft so no user input is lost (-> Editing).
func (c *Controller[T]) Resolve(result T, err error) {
	if c.phase != Submitting {
		return
	}
	if err != nil {
		c.submitErr = err
		c.phase = Editing
		return
	}
	c.committed = result
	c.draft = map[string]string{}
	c.submitErr = nil
	c.phase = Viewing
}
