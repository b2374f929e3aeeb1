// payload.go serializes an ErrorEvent into its wire-ready shape.

package faultline

import "github.com/strongdm/faultline/pkg/faultline/stacktrace"

// Payload is the serialized form of an ErrorEvent.
type Payload struct {
	App        any            `json:"app"`
	Device     any            `json:"device"`
	User       any            `json:"user"`
	Context    any            `json:"context"`
	Severity   Severity       `json:"severity"`
	Exceptions []Exception    `json:"exceptions"`
	// MetaData does not keep insertion order; encoding/json writes keys sorted.
	MetaData   map[string]any `json:"metaData"`
}

// Exception describes the single primary failure of an event.
type Exception struct {
	ErrorClass string             `json:"errorClass"`
	Message    string             `json:"message"`
	Stacktrace []stacktrace.Frame `json:"stacktrace"`
}

// Payload builds the serialized event. The stack modifier, if any, runs here
// and metadata filters are applied to a copy of the stored metadata.
func (e *ErrorEvent) Payload() Payload {
	return Payload{
		App:      e.diagnostics.AppData(),
		Device:   e.diagnostics.DeviceData(),
		User:     e.diagnostics.User(),
		Context:  e.diagnostics.Context(),
		Severity: e.severity,
		Exceptions: []Exception{{
			ErrorClass: e.name,
			Message:    e.message,
			Stacktrace: e.modifiedTrace().Frames(),
		}},
		MetaData: Redact(e.metaData, e.config.Filters),
	}
}

// modifiedTrace falls back to the captured trace when the modifier returns nil.
func (e *ErrorEvent) modifiedTrace() *stacktrace.Stacktrace {
	if e.stackModifier == nil {
		return e.stacktrace
	}
	if trace := e.stackModifier(e.stacktrace); trace != nil {
		return trace
	}
	return e.stacktrace
}
