// event.go defines ErrorEvent and the constructors for each error origin.

package faultline

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	"github.com/strongdm/faultline/pkg/faultline/errortypes"
	"github.com/strongdm/faultline/pkg/faultline/stacktrace"
)

// StackModifier rewrites a captured trace before it is serialized, for
// example to drop reporting-library frames.
type StackModifier func(*stacktrace.Stacktrace) *stacktrace.Stacktrace

// ErrorEvent is a single normalized failure ready to be serialized.
//
// Events are created only through FromRuntimeError, FromException and
// FromNamedError. An event is owned by one goroutine and is discarded after
// Payload is called.
type ErrorEvent struct {
	name       string
	message    string
	severity   Severity
	stacktrace *stacktrace.Stacktrace
	metaData   map[string]any

	code    errortypes.Code
	hasCode bool

	config      *Config
	diagnostics Diagnostics

	stackModifier StackModifier
}

func newErrorEvent(cfg *Config, diag Diagnostics) *ErrorEvent {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if diag == nil {
		diag = NewDiagnostics(cfg)
	}
	return &ErrorEvent{
		severity:    SeverityError,
		metaData:    map[string]any{},
		config:      cfg,
		diagnostics: diag,
	}
}

// FromRuntimeError creates an event from a runtime error signal. Name and
// default severity come from the code. A fatal signal fires after the
// faulting stack is gone, so its trace is a single frame at file:line.
func FromRuntimeError(cfg *Config, diag Diagnostics, code errortypes.Code, message, file string, line int, fatal bool) *ErrorEvent {
	return fromRuntimeError(cfg, diag, code, message, file, line, fatal, 1)
}

func fromRuntimeError(cfg *Config, diag Diagnostics, code errortypes.Code, message, file string, line int, fatal bool, skip int) *ErrorEvent {
	e := newErrorEvent(cfg, diag)

	opts := e.config.stackOptions()
	var trace *stacktrace.Stacktrace
	if fatal {
		trace = stacktrace.FromFrame(opts, file, line)
	} else {
		trace = stacktrace.Current(opts, skip+1)
	}

	return e.SetName(errortypes.Name(code)).
		SetMessage(message).
		SetSeverity(Severity(errortypes.Severity(code))).
		SetStacktrace(trace).
		SetCode(code)
}

// FromException creates an event from a Go error. The name is the type of the
// root cause. Frames recorded on the error by github.com/pkg/errors are used
// when present, otherwise the current stack is captured.
func FromException(cfg *Config, diag Diagnostics, err error) *ErrorEvent {
	return fromException(cfg, diag, err, 1)
}

func fromException(cfg *Config, diag Diagnostics, err error, skip int) *ErrorEvent {
	e := newErrorEvent(cfg, diag)

	opts := e.config.stackOptions()
	var trace *stacktrace.Stacktrace
	if pcs, file, line, ok := stacktrace.Recorded(err); ok {
		trace = stacktrace.FromBacktrace(opts, pcs, file, line)
	} else {
		trace = stacktrace.Current(opts, skip+1)
	}

	var message string
	if err != nil {
		message = err.Error()
	}

	return e.SetName(errorClass(err)).
		SetMessage(message).
		SetStacktrace(trace)
}

// FromNamedError creates an event for an application-named error, capturing
// the stack of the caller.
func FromNamedError(cfg *Config, diag Diagnostics, name, message string) *ErrorEvent {
	return fromNamedError(cfg, diag, name, message, 1)
}

func fromNamedError(cfg *Config, diag Diagnostics, name, message string, skip int) *ErrorEvent {
	e := newErrorEvent(cfg, diag)
	trace := stacktrace.Current(e.config.stackOptions(), skip+1)

	return e.SetName(name).
		SetMessage(message).
		SetStacktrace(trace)
}

// clone returns a copy of e whose metadata can be merged into without
// touching e.
func (e *ErrorEvent) clone() *ErrorEvent {
	c := *e
	c.metaData, _ = normalizeMap(e.metaData)
	return &c
}

// errorClass names the dynamic type of the innermost error in err's chain.
func errorClass(err error) string {
	if err == nil {
		return "<nil>"
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			if c, ok := err.(interface{ Cause() error }); ok {
				next = c.Cause()
			}
		}
		if next == nil {
			break
		}
		err = next
	}
	return reflect.TypeOf(err).String()
}

// SetName sets the error class name.
func (e *ErrorEvent) SetName(name string) *ErrorEvent {
	e.name = name
	return e
}

// SetMessage sets the human-readable message.
func (e *ErrorEvent) SetMessage(message string) *ErrorEvent {
	e.message = message
	return e
}

// SetStacktrace replaces the captured trace.
func (e *ErrorEvent) SetStacktrace(trace *stacktrace.Stacktrace) *ErrorEvent {
	e.stacktrace = trace
	return e
}

// SetCode records the runtime error code the event originated from.
func (e *ErrorEvent) SetCode(code errortypes.Code) *ErrorEvent {
	e.code = code
	e.hasCode = true
	return e
}

// SetSeverity assigns severity if it is valid. An empty value is ignored. An
// unknown value is logged and the previous severity is kept.
func (e *ErrorEvent) SetSeverity(severity Severity) *ErrorEvent {
	if severity == "" {
		return e
	}
	if !severity.Valid() {
		e.config.logger().Warn("tried to set error severity to a value which is not allowed",
			"severity", string(severity))
		return e
	}
	e.severity = severity
	return e
}

// SetMetaData merges metaData into the event's metadata. Any map keyed by
// strings is accepted; other values are ignored. Colliding nested maps are
// merged key by key and colliding values are collected into a list.
func (e *ErrorEvent) SetMetaData(metaData any) *ErrorEvent {
	m, ok := normalizeMap(metaData)
	if !ok {
		return e
	}
	e.metaData = mergeMetaData(e.metaData, m)
	return e
}

// SetStackModifierFunction registers fn to rewrite the trace at serialization
// time, replacing any earlier modifier. A nil fn is rejected.
func (e *ErrorEvent) SetStackModifierFunction(fn StackModifier) error {
	if fn == nil {
		return fmt.Errorf("%w: stack modifier must be callable", ErrInvalidArgument)
	}
	e.stackModifier = fn
	return nil
}

// ShouldIgnore reports whether the event must be suppressed. Only events with
// a runtime error code can be ignored: they are dropped when the code's bit is
// absent from the configured reporting level.
func (e *ErrorEvent) ShouldIgnore() bool {
	if !e.hasCode {
		return false
	}
	return e.config.reportingLevel()&e.code == 0
}

// Name returns the error class name.
func (e *ErrorEvent) Name() string { return e.name }

// Message returns the error message.
func (e *ErrorEvent) Message() string { return e.message }

// Severity returns the current severity.
func (e *ErrorEvent) Severity() Severity { return e.severity }

// Stacktrace returns the captured trace, before any modifier runs.
func (e *ErrorEvent) Stacktrace() *stacktrace.Stacktrace { return e.stacktrace }

// MetaData returns the accumulated, unredacted metadata. Callers must treat it
// as read-only.
func (e *ErrorEvent) MetaData() map[string]any { return e.metaData }

// Code returns the runtime error code and whether one was set.
func (e *ErrorEvent) Code() (errortypes.Code, bool) { return e.code, e.hasCode }
