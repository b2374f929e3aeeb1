// Package faultline normalizes runtime failures into error events for an
// error-tracking backend.
//
// An event comes from one of three origins and is always fully built by its
// constructor:
//
//   - FromRuntimeError: a runtime error signal identified by an errortypes.Code
//   - FromException: a Go error, using frames recorded by github.com/pkg/errors when present
//   - FromNamedError: an application-named error at the caller's stack
//
// # Core Components
//
//   - ErrorEvent: name, message, severity, stack trace, metadata and optional code
//   - Redact: substring-based metadata redaction applied at serialization time
//   - Payload: the wire-ready structure, built after the stack modifier runs
//   - Notifier: consults ShouldIgnore and delivers notifications to a Sink
//
// # Quick Start
//
//	notifier := faultline.NewNotifier(
//	    faultline.WithConfig(cfg),
//	    faultline.WithSink(stderr.NewStderrSink()),
//	)
//	defer faultline.Recover(ctx, notifier)
//
//	event := faultline.FromNamedError(cfg, notifier.Diagnostics(), "Overheat", "core too hot")
//	event.SetSeverity(faultline.SeverityWarning).SetMetaData(map[string]any{"core": 3})
//	_ = notifier.Notify(ctx, event)
//
// # Design Principles
//
//   - Reporting never crashes the host: invalid input is ignored or logged
//   - The only returned error from event setup is ErrInvalidArgument for a nil stack modifier
//   - An ErrorEvent belongs to one goroutine; Config and Diagnostics are shared read-only
package faultline
