package registry

import (
	"testing"
	"time"
)

func TestReaperEvictsStaleEntries(t *testing.T) {
	s := NewStore()
	s.Put(ID{Group: "math", Name: "add"}, Endpoint{IP: "127.0.0.1", Port: 1})

	r := NewReaper(s, 20*time.Millisecond)
	go r.Run()
	defer r.Stop()

	deadline := time.Now().Add(500 * time.Millisecond)
	for s.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if s.Len() != 0 {
		t.Fatalf("expected reaper to evict stale entry, store still has %d entries", s.Len())
	}
}

func TestReaperKeepsRefreshedEntries(t *testing.T) {
	s := NewStore()
	id := ID{Group: "math", Name: "add"}
	ep := Endpoint{IP: "127.0.0.1", Port: 1}
	s.Put(id, ep)

	r := NewReaper(s, 30*time.Millisecond)
	go r.Run()
	defer r.Stop()

	refresh := time.NewTicker(10 * time.Millisecond)
	defer refresh.Stop()
	done := time.After(150 * time.Millisecond)

loop:
	for {
		select {
		case <-refresh.C:
			s.Put(id, ep)
		case <-done:
			break loop
		}
	}

	if _, ok := s.Get(id); !ok {
		t.Fatalf("expected refreshed entry to survive eviction passes")
	}
}
