// severity.go defines the fixed severity taxonomy for error events.

package faultline

// Severity indicates how serious an error event is.
type Severity string

const (
	// SeverityFatal indicates the process could not continue.
	SeverityFatal Severity = "fatal"

	// SeverityError indicates a failure that was handled or reported explicitly.
	SeverityError Severity = "error"

	// SeverityWarning indicates a non-fatal issue that may need attention.
	SeverityWarning Severity = "warning"

	// SeverityInfo indicates an informational event.
	SeverityInfo Severity = "info"
)

var validSeverities = []Severity{
	SeverityFatal,
	SeverityError,
	SeverityWarning,
	SeverityInfo,
}

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	for _, v := range validSeverities {
		if s == v {
			return true
		}
	}
	return false
}
