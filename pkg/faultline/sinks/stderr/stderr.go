// Package stderr provides a sink that prints notifications in human-readable form.
// Useful for development and debugging.
package stderr

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/strongdm/faultline/pkg/faultline"
)

// StderrSinkOption configures the stderr sink.
type StderrSinkOption func(*stderrSinkConfig)

type stderrSinkConfig struct {
	verbose bool
	out     io.Writer
}

// WithVerbose enables full details including stack frames.
func WithVerbose() StderrSinkOption {
	return func(c *stderrSinkConfig) {
		c.verbose = true
	}
}

// WithWriter sends output somewhere other than os.Stderr.
func WithWriter(w io.Writer) StderrSinkOption {
	return func(c *stderrSinkConfig) {
		if w != nil {
			c.out = w
		}
	}
}

// stderrSink writes notifications in human-readable format.
type stderrSink struct {
	mu      sync.Mutex
	verbose bool
	out     io.Writer
}

// NewStderrSink creates a sink that writes to stderr.
func NewStderrSink(opts ...StderrSinkOption) faultline.Sink {
	cfg := &stderrSinkConfig{out: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}
	return &stderrSink{
		verbose: cfg.verbose,
		out:     cfg.out,
	}
}

// Write formats and outputs the notification.
func (s *stderrSink) Write(ctx context.Context, n faultline.Notification) error {
	var b strings.Builder

	// Format: [FAULTLINE] <SEVERITY> <errorClass> (context: <context>)
	severity := strings.ToUpper(string(n.Payload.Severity))
	for _, ex := range n.Payload.Exceptions {
		fmt.Fprintf(&b, "[FAULTLINE] %s %s", severity, ex.ErrorClass)
		if c, ok := n.Payload.Context.(string); ok && c != "" {
			fmt.Fprintf(&b, " (context: %s)", c)
		}
		b.WriteString("\n")

		if ex.Message != "" {
			fmt.Fprintf(&b, "        Message: %s\n", ex.Message)
		}
		if n.Fingerprint != "" {
			fmt.Fprintf(&b, "        Fingerprint: %s\n", n.Fingerprint)
		}

		// Stack frames (only in verbose mode)
		if s.verbose && len(ex.Stacktrace) > 0 {
			b.WriteString("        Stack trace:\n")
			for _, f := range ex.Stacktrace {
				fmt.Fprintf(&b, "          %s\n            %s:%d\n", f.Method, f.File, f.LineNumber)
			}
		}
	}

	if s.verbose && len(n.Payload.MetaData) > 0 {
		b.WriteString("        Metadata:\n")
		for _, line := range formatMetaData(n.Payload.MetaData) {
			fmt.Fprintf(&b, "          %s\n", line)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.out, b.String())
	return err
}

// Flush is a no-op for stderr sink.
func (s *stderrSink) Flush(ctx context.Context) error {
	return nil
}

// Close is a no-op for stderr sink.
func (s *stderrSink) Close() error {
	return nil
}
