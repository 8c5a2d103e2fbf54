package apierror

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
)

// DefaultFallbackMessage is returned for errors that have no registered
// mapping.
const DefaultFallbackMessage = "An unexpected error occurred"

const fallbackKind = "unrecognized"

// Rule maps one kind of error to a status and a message. Rules are created
// with Handle.
type Rule struct {
	// Kind names the matched error type. It is used only for logging.
	Kind   string
	Status Status
	match  func(err error) (error, bool)
	format func(err error) (string, []string)
}

// Handle creates a Rule that matches any error in the chain of the given
// error that is assignable to E, as determined by errors.As. A matched value
// that is a nil pointer is not a match. The format function produces the
// client facing message and the optional sub-errors from the matched value.
func Handle[E error](status Status, format func(E) (string, []string)) Rule {
	return Rule{
		Kind:   kindOf[E](),
		Status: status,
		match: func(err error) (error, bool) {
			var target E
			if errors.As(err, &target) && !isNil(target) {
				return target, true
			}
			return nil, false
		},
		format: func(err error) (string, []string) {
			return format(err.(E))
		},
	}
}

func kindOf[E error]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		return t.Elem().Name()
	}
	return t.Name()
}

func isNil(v interface{}) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return !rv.IsValid()
}

// DefaultRules returns the mappings for the error types defined in this
// package and for JSON decoding failures of request payloads.
func DefaultRules() []Rule {
	return []Rule{
		Handle(StatusNotFound, func(e *NotFoundError) (string, []string) {
			return e.Message(), nil
		}),
		Handle(StatusBadRequest, func(e *ValidationError) (string, []string) {
			return e.Message(), e.Violations()
		}),
		Handle(StatusConflict, func(e *ConflictError) (string, []string) {
			return e.Message(), nil
		}),
		Handle(StatusMethodNotAllowed, func(e *MethodNotAllowedError) (string, []string) {
			return e.Message(), nil
		}),
		Handle(StatusBadRequest, malformedPayload[*json.SyntaxError]),
		Handle(StatusBadRequest, malformedPayload[*json.UnmarshalTypeError]),
		Handle(StatusBadRequest, malformedPayload[*json.InvalidUnmarshalError]),
	}
}

const malformedPayloadMessage = "Malformed request payload"

func malformedPayload[E error](E) (string, []string) {
	return malformedPayloadMessage, nil
}

// Responder is the central translation point from errors to APIError
// values. It holds no mutable state and is safe for concurrent use.
type Responder struct {
	rules           []Rule
	fallbackMessage string
}

// NewResponder creates a Responder that evaluates the given rules in order.
// The first matching rule wins.
func NewResponder(rules ...Rule) *Responder {
	return &Responder{
		rules:           append([]Rule(nil), rules...),
		fallbackMessage: DefaultFallbackMessage,
	}
}

// DefaultResponder creates a Responder with the DefaultRules.
func DefaultResponder() *Responder {
	return NewResponder(DefaultRules()...)
}

// With returns a new Responder that evaluates the receiver's rules followed
// by the given rules. The receiver is left unchanged.
func (r *Responder) With(rules ...Rule) *Responder {
	combined := make([]Rule, 0, len(r.rules)+len(rules))
	combined = append(combined, r.rules...)
	combined = append(combined, rules...)
	return &Responder{rules: combined, fallbackMessage: r.fallbackMessage}
}

// WithFallbackMessage returns a new Responder that answers unrecognized
// errors with the given message.
func (r *Responder) WithFallbackMessage(message string) *Responder {
	return &Responder{rules: r.rules, fallbackMessage: message}
}

// Respond translates the error into an APIError and the Status with which
// it must be sent. Errors that match no rule, including nil, produce an
// INTERNAL_SERVER_ERROR carrying the fallback message.
func (r *Responder) Respond(err error) (APIError, Status) {
	apiErr, _ := r.respond(err)
	return apiErr, apiErr.Status()
}

func (r *Responder) respond(err error) (APIError, string) {
	if err != nil {
		for _, rule := range r.rules {
			matched, ok := rule.match(err)
			if !ok {
				continue
			}
			message, subErrors := rule.format(matched)
			apiErr, errBuild := NewAPIErrorBuilder().
				Status(rule.Status).
				Message(message).
				SubErrors(subErrors...).
				Build()
			if errBuild != nil {
				// A rule with an unrecognized status cannot be answered
				// as registered.
				break
			}
			return apiErr, rule.Kind
		}
	}
	return r.fallback(), fallbackKind
}

func (r *Responder) fallback() APIError {
	apiErr, _ := NewAPIErrorBuilder().
		Status(StatusInternalServerError).
		Message(r.fallbackMessage).
		Build()
	return apiErr
}

// ResponderConfig is the settings for a Responder.
type ResponderConfig struct {
	FallbackMessage string `description:"Message returned to clients for errors that have no registered mapping."`
}

// Name of the configuration root.
func (*ResponderConfig) Name() string {
	return "responder"
}

// ResponderComponent implements the settings.Component interface for a
// Responder.
type ResponderComponent struct {
	// Rules replaces the DefaultRules when set.
	Rules []Rule
}

// Settings generates a config populated with defaults.
func (*ResponderComponent) Settings() *ResponderConfig {
	return &ResponderConfig{FallbackMessage: DefaultFallbackMessage}
}

// New creates a configured Responder.
func (c *ResponderComponent) New(_ context.Context, conf *ResponderConfig) (*Responder, error) {
	if conf.FallbackMessage == "" {
		return nil, errors.New("responder fallback message must not be empty")
	}
	rules := c.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	return NewResponder(rules...).WithFallbackMessage(conf.FallbackMessage), nil
}
