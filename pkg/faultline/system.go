// system.go captures process state for device diagnostics.

package faultline

import (
	"os"
	"runtime"
	"time"
)

var processStart = time.Now()

// systemState is a snapshot of process metrics at the time of an error.
type systemState struct {
	hostName       string
	memoryBytes    int64
	goroutineCount int
	uptimeMs       int64
}

func captureSystemState(startTime time.Time) systemState {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	hostname, _ := os.Hostname() // empty hostname is acceptable

	uptimeMs := time.Since(startTime).Milliseconds()
	if uptimeMs < 0 {
		uptimeMs = 0
	}

	return systemState{
		hostName:       hostname,
		memoryBytes:    int64(memStats.Alloc),
		goroutineCount: runtime.NumGoroutine(),
		uptimeMs:       uptimeMs,
	}
}
