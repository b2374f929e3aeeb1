// Package errortypes classifies runtime error signal codes.
//
// Codes are single bits so that a reporting level can be expressed as a
// bitmask: a code is reported only when its bit is set in the active level.
package errortypes

import "sync/atomic"

// Code identifies a runtime error signal. Each defined code is a single bit.
type Code int

const (
	Fatal          Code = 1
	Warning        Code = 2
	Parse          Code = 4
	Notice         Code = 8
	CoreFatal      Code = 16
	CoreWarning    Code = 32
	CompileFatal   Code = 64
	CompileWarning Code = 128
	UserFatal      Code = 256
	UserWarning    Code = 512
	UserNotice     Code = 1024
	Strict         Code = 2048
	Recoverable    Code = 4096
	Deprecated     Code = 8192
	UserDeprecated Code = 16384

	// All is the union of every defined code.
	All Code = 32767
)

// Severity names mirror the event severities. They are plain strings here so
// that this package stays a leaf.
const (
	SeverityFatal   = "fatal"
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// UnknownName is returned by Name for codes that are not in the table.
const UnknownName = "Unknown"

type errorType struct {
	name     string
	severity string
}

var table = map[Code]errorType{
	Fatal:          {"Fatal Error", SeverityFatal},
	Warning:        {"Warning", SeverityWarning},
	Parse:          {"Parse Error", SeverityFatal},
	Notice:         {"Notice", SeverityInfo},
	CoreFatal:      {"Core Error", SeverityFatal},
	CoreWarning:    {"Core Warning", SeverityWarning},
	CompileFatal:   {"Compile Error", SeverityFatal},
	CompileWarning: {"Compile Warning", SeverityWarning},
	UserFatal:      {"User Error", SeverityError},
	UserWarning:    {"User Warning", SeverityWarning},
	UserNotice:     {"User Notice", SeverityInfo},
	Strict:         {"Strict", SeverityInfo},
	Recoverable:    {"Recoverable Error", SeverityError},
	Deprecated:     {"Deprecated", SeverityInfo},
	UserDeprecated: {"User Deprecated", SeverityInfo},
}

// Name returns the human-readable name for code.
func Name(code Code) string {
	if t, ok := table[code]; ok {
		return t.name
	}
	return UnknownName
}

// Severity returns the default severity for code. Unknown codes are errors.
func Severity(code Code) string {
	if t, ok := table[code]; ok {
		return t.severity
	}
	return SeverityError
}

// IsFatal reports whether code terminates the process.
func IsFatal(code Code) bool {
	return Severity(code) == SeverityFatal
}

// LevelsForSeverity returns the bitmask of every code whose default severity
// is severity.
func LevelsForSeverity(severity string) Code {
	var levels Code
	for code, t := range table {
		if t.severity == severity {
			levels |= code
		}
	}
	return levels
}

var reportingLevel atomic.Int64

func init() {
	reportingLevel.Store(int64(All))
}

// ReportingLevel returns the process-wide reporting bitmask used when a
// configuration does not carry its own level.
func ReportingLevel() Code {
	return Code(reportingLevel.Load())
}

// SetReportingLevel replaces the process-wide reporting bitmask and returns the
// previous value.
func SetReportingLevel(level Code) Code {
	return Code(reportingLevel.Swap(int64(level)))
}
