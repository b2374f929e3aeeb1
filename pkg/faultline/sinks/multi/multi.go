// Package multi provides a sink that fans out to multiple sinks.
package multi

import (
	"context"
	"errors"

	"github.com/strongdm/faultline/pkg/faultline"
)

type multiSink struct {
	sinks []faultline.Sink
}

// NewMultiSink creates a sink that delivers every notification to each of
// sinks in order. A failing sink does not stop the others; all errors are
// returned together via errors.Join.
func NewMultiSink(sinks ...faultline.Sink) faultline.Sink {
	return &multiSink{sinks: sinks}
}

func (s *multiSink) Write(ctx context.Context, n faultline.Notification) error {
	return s.each(func(sink faultline.Sink) error { return sink.Write(ctx, n) })
}

func (s *multiSink) Flush(ctx context.Context) error {
	return s.each(func(sink faultline.Sink) error { return sink.Flush(ctx) })
}

func (s *multiSink) Close() error {
	return s.each(faultline.Sink.Close)
}

func (s *multiSink) each(fn func(faultline.Sink) error) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := fn(sink); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
