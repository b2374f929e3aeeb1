// diagnostics.go supplies the app, device, user and context sections of a payload.

package faultline

import (
	"runtime"
	"time"
)

// Diagnostics provides the environment sections of a payload. Each method
// returns any JSON-serializable value.
type Diagnostics interface {
	AppData() any
	DeviceData() any
	User() any
	Context() any
}

type defaultDiagnostics struct {
	cfg       *Config
	startTime time.Time
}

// NewDiagnostics returns Diagnostics derived from cfg and the running process.
func NewDiagnostics(cfg *Config) Diagnostics {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &defaultDiagnostics{cfg: cfg, startTime: processStart}
}

func (d *defaultDiagnostics) AppData() any {
	app := map[string]any{
		"releaseStage": d.cfg.ReleaseStage,
	}
	if d.cfg.AppVersion != "" {
		app["version"] = d.cfg.AppVersion
	}
	if d.cfg.AppType != "" {
		app["type"] = d.cfg.AppType
	}
	return app
}

func (d *defaultDiagnostics) DeviceData() any {
	state := captureSystemState(d.startTime)

	hostname := d.cfg.Hostname
	if hostname == "" {
		hostname = state.hostName
	}

	return map[string]any{
		"hostname": hostname,
		"runtimeVersions": map[string]any{
			"go": runtime.Version(),
		},
		"memoryBytes":    state.memoryBytes,
		"goroutineCount": state.goroutineCount,
		"uptimeMs":       state.uptimeMs,
	}
}

func (d *defaultDiagnostics) User() any {
	if d.cfg.User == nil {
		return map[string]any{}
	}
	return d.cfg.User
}

func (d *defaultDiagnostics) Context() any {
	return d.cfg.Context
}
