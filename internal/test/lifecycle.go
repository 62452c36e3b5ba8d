package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects fx hooks without starting an app, so tests can
// drive OnStart and OnStop by hand against the server and worker wiring.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records a hook for later manual invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever the app requests termination,
// e.g. after the HTTP listener fails to bind.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies the waiting test without blocking.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
