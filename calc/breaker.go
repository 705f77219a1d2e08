package calc

import (
	"errors"
	"sync"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/circuitbreaker"
)

// ErrCircuitOpen is returned when a Sentinel rule rejects entry, meaning the
// guarded resource is tripped and failing fast rather than being called.
var ErrCircuitOpen = errors.New("calc: operation rejected by circuit breaker")

var breakerOnce sync.Once

// ensureBreakerLoaded initializes Sentinel and loads the breaker rule for
// breakerResource exactly once per process. NewServer calls this so a
// calc.Server is usable without a separate explicit init step.
func ensureBreakerLoaded() {
	breakerOnce.Do(func() {
		_ = sentinel.InitDefault()
		_, _ = circuitbreaker.LoadRules([]*circuitbreaker.Rule{
			{
				Resource:         breakerResource,
				Strategy:         circuitbreaker.ErrorRatio,
				RetryTimeoutMs:   3000,
				MinRequestAmount: 5,
				StatIntervalMs:   10000,
				Threshold:        0.5,
			},
		})
	})
}

// withBreaker wraps fn in a Sentinel resource entry for name, tripping the
// breaker/flow rules registered under that name instead of letting calls to
// a failing worker pile up.
func withBreaker(name string, fn func() error) error {
	e, b := sentinel.Entry(name)
	if b != nil {
		return ErrCircuitOpen
	}
	defer e.Exit()

	if err := fn(); err != nil {
		sentinel.TraceError(e, err)
		return err
	}
	return nil
}
