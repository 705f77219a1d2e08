package registry

import (
	"fmt"
	"runtime"
	"time"

	"github.com/golang-module/carbon"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/source-build/dist-services/logging"
)

// Reaper periodically evicts services whose heartbeat (a re-Register call)
// hasn't refreshed within ttl. Register doubles as the heartbeat; there is
// no separate heartbeat RPC.
type Reaper struct {
	store    *Store
	interval time.Duration
	quit     chan struct{}
}

func NewReaper(store *Store, interval time.Duration) *Reaper {
	return &Reaper{store: store, interval: interval, quit: make(chan struct{})}
}

// Run blocks, running one eviction pass every interval, until Stop is
// called. Intended to be launched in its own goroutine.
func (r *Reaper) Run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.quit:
			return
		case <-ticker.C:
			r.pass()
		}
	}
}

func (r *Reaper) Stop() {
	close(r.quit)
}

func (r *Reaper) pass() {
	n := r.store.Len()
	if n == 0 {
		logging.Debug("reaper", "store empty, nothing to evict", "snapshot", r.snapshot())
		return
	}

	evicted := r.store.EvictStale(r.interval)
	if len(evicted) == 0 {
		logging.Debug("reaper", fmt.Sprintf("all %d services alive", n), "snapshot", r.snapshot())
		return
	}

	ids := make([]string, len(evicted))
	for i, id := range evicted {
		ids[i] = id.Group + "/" + id.Name
	}
	logging.Warning("reaper", "evicted stale services", "ids", ids, "at", carbon.Now().ToDateTimeString(), "snapshot", r.snapshot())
}

// snapshot renders a one-line goroutine/memory summary for operational
// visibility in reaper log lines.
func (r *Reaper) snapshot() string {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Sprintf("goroutines=%d", runtime.NumGoroutine())
	}
	return fmt.Sprintf("goroutines=%d mem_used_percent=%.1f", runtime.NumGoroutine(), vm.UsedPercent)
}
