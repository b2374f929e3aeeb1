// recover.go provides the Recover helper for panic reporting.
// Use this in HTTP handlers, goroutines, or other code that must not crash.

package faultline

import (
	"context"
	"fmt"
	"strings"

	"github.com/strongdm/faultline/pkg/faultline/stacktrace"
)

// PanicErrorName is the error class used for panics with non-error values.
const PanicErrorName = "panic"

// Recover captures a panic, reports it as a fatal event, and returns the
// recovered value. Recover does NOT re-panic after reporting.
//
// Use in defer:
//
//	func handler(ctx context.Context) {
//	    defer faultline.Recover(ctx, notifier)
//	    // code that might panic
//	}
func Recover(ctx context.Context, notifier Notifier) any {
	r := recover()
	if r == nil {
		return nil
	}

	var event *ErrorEvent
	if err, ok := r.(error); ok {
		event = fromException(notifier.Config(), notifier.Diagnostics(), err, 1)
	} else {
		event = fromNamedError(notifier.Config(), notifier.Diagnostics(), PanicErrorName, formatRecovered(r), 1)
	}

	event.SetSeverity(SeverityFatal).
		SetStacktrace(event.Stacktrace().Filter(notRuntimeFrame))

	// Ignore errors - we don't want to affect caller
	_ = notifier.Notify(ctx, event)

	return r
}

// notRuntimeFrame drops the panic machinery frames above the panicking call.
func notRuntimeFrame(f stacktrace.Frame) bool {
	return !strings.HasPrefix(f.Method, "runtime.") && !strings.HasPrefix(f.Method, "internal/runtime/")
}

// formatRecovered formats a recovered panic value as a string.
func formatRecovered(recovered any) string {
	if recovered == nil {
		return "<nil>"
	}
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", recovered)
}
