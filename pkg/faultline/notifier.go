// notifier.go provides the Notifier that filters, serializes and delivers events.

package faultline

import (
	"context"

	"github.com/google/uuid"

	"github.com/strongdm/faultline/pkg/faultline/errortypes"
)

// Notifier delivers error events to a sink.
type Notifier interface {
	// Notify serializes event and writes it to the sink unless it is
	// suppressed. Suppressed events return nil. Config and context metadata
	// are merged into a copy of event, so event itself is left unchanged and
	// may be notified again.
	Notify(ctx context.Context, event *ErrorEvent) error

	// NotifyError reports a Go error.
	NotifyError(ctx context.Context, err error) error

	// NotifyNamed reports an application-named error at the caller's stack.
	NotifyNamed(ctx context.Context, name, message string) error

	// NotifyRuntimeError reports a runtime error signal.
	NotifyRuntimeError(ctx context.Context, code errortypes.Code, message, file string, line int, fatal bool) error

	// Flush ensures any buffered notifications are delivered.
	Flush(ctx context.Context) error

	// Close releases resources held by the notifier.
	Close() error

	// Config returns the configuration events are built with.
	Config() *Config

	// Diagnostics returns the collaborator events are built with.
	Diagnostics() Diagnostics
}

// BeforeNotifyFunc inspects or edits an event before delivery. Returning
// false cancels the delivery.
type BeforeNotifyFunc func(event *ErrorEvent) bool

// NotifierOption configures a Notifier.
type NotifierOption func(*notifierConfig)

type notifierConfig struct {
	config       *Config
	diagnostics  Diagnostics
	sink         Sink
	beforeNotify []BeforeNotifyFunc
}

// WithConfig sets the reporting configuration.
func WithConfig(cfg *Config) NotifierOption {
	return func(c *notifierConfig) {
		c.config = cfg
	}
}

// WithDiagnostics overrides the diagnostics collaborator.
func WithDiagnostics(diag Diagnostics) NotifierOption {
	return func(c *notifierConfig) {
		c.diagnostics = diag
	}
}

// WithSink sets the sink for the notifier.
func WithSink(sink Sink) NotifierOption {
	return func(c *notifierConfig) {
		c.sink = sink
	}
}

// WithBeforeNotify adds a callback run before each delivery. Callbacks run in
// registration order.
func WithBeforeNotify(fn BeforeNotifyFunc) NotifierOption {
	return func(c *notifierConfig) {
		if fn != nil {
			c.beforeNotify = append(c.beforeNotify, fn)
		}
	}
}

// defaultNotifier is the standard Notifier implementation.
type defaultNotifier struct {
	config       *Config
	diagnostics  Diagnostics
	sink         Sink
	beforeNotify []BeforeNotifyFunc
}

// NewNotifier creates a new Notifier with the given options.
func NewNotifier(opts ...NotifierOption) Notifier {
	cfg := &notifierConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.config == nil {
		cfg.config = DefaultConfig()
	}
	if cfg.diagnostics == nil {
		cfg.diagnostics = NewDiagnostics(cfg.config)
	}
	if cfg.sink == nil {
		cfg.sink = Discard
	}

	return &defaultNotifier{
		config:       cfg.config,
		diagnostics:  cfg.diagnostics,
		sink:         cfg.sink,
		beforeNotify: cfg.beforeNotify,
	}
}

func (n *defaultNotifier) Notify(ctx context.Context, event *ErrorEvent) error {
	if event == nil || !n.config.shouldNotify() || event.ShouldIgnore() {
		return nil
	}

	event = event.clone()
	if len(n.config.MetaData) > 0 {
		event.SetMetaData(n.config.MetaData)
	}
	if md, ok := MetaDataFromContext(ctx); ok {
		event.SetMetaData(md)
	}

	for _, fn := range n.beforeNotify {
		if !fn(event) {
			return nil
		}
	}

	payload := event.Payload()
	return n.sink.Write(ctx, Notification{
		ID:          uuid.NewString(),
		Fingerprint: Fingerprint(payload),
		Payload:     payload,
	})
}

func (n *defaultNotifier) NotifyError(ctx context.Context, err error) error {
	return n.Notify(ctx, fromException(n.config, n.diagnostics, err, 1))
}

func (n *defaultNotifier) NotifyNamed(ctx context.Context, name, message string) error {
	return n.Notify(ctx, fromNamedError(n.config, n.diagnostics, name, message, 1))
}

func (n *defaultNotifier) NotifyRuntimeError(ctx context.Context, code errortypes.Code, message, file string, line int, fatal bool) error {
	return n.Notify(ctx, fromRuntimeError(n.config, n.diagnostics, code, message, file, line, fatal, 1))
}

// Flush delegates to the sink.
func (n *defaultNotifier) Flush(ctx context.Context) error {
	return n.sink.Flush(ctx)
}

// Close delegates to the sink.
func (n *defaultNotifier) Close() error {
	return n.sink.Close()
}

func (n *defaultNotifier) Config() *Config { return n.config }

func (n *defaultNotifier) Diagnostics() Diagnostics { return n.diagnostics }
