package registry

import (
	"sync"
	"testing"
	"time"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore()
	id := ID{Group: "math", Name: "add"}
	s.Put(id, Endpoint{IP: "127.0.0.1", Port: 9000})

	ep, ok := s.Get(id)
	if !ok {
		t.Fatalf("expected entry to be present")
	}
	if ep.IP != "127.0.0.1" || ep.Port != 9000 {
		t.Fatalf("unexpected endpoint: %+v", ep)
	}
}

func TestStorePutOverwrites(t *testing.T) {
	s := NewStore()
	id := ID{Group: "math", Name: "add"}
	s.Put(id, Endpoint{IP: "127.0.0.1", Port: 9000})
	s.Put(id, Endpoint{IP: "127.0.0.1", Port: 9001})

	ep, ok := s.Get(id)
	if !ok || ep.Port != 9001 {
		t.Fatalf("expected overwritten endpoint, got %+v ok=%v", ep, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("expected one entry, got %d", s.Len())
	}
}

func TestStoreRemoveAbsentIsNoop(t *testing.T) {
	s := NewStore()
	s.Remove(ID{Group: "math", Name: "add"})
	if s.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestStoreSnapshot(t *testing.T) {
	s := NewStore()
	s.Put(ID{Group: "math", Name: "add"}, Endpoint{IP: "127.0.0.1", Port: 1})
	s.Put(ID{Group: "math", Name: "sub"}, Endpoint{IP: "127.0.0.1", Port: 2})

	entries := s.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestStoreEvictStale(t *testing.T) {
	s := NewStore()
	id := ID{Group: "math", Name: "add"}
	s.Put(id, Endpoint{IP: "127.0.0.1", Port: 1})

	time.Sleep(5 * time.Millisecond)
	evicted := s.EvictStale(time.Millisecond)
	if len(evicted) != 1 || evicted[0] != id {
		t.Fatalf("expected %v evicted, got %v", id, evicted)
	}
	if _, ok := s.Get(id); ok {
		t.Fatalf("expected entry to be gone")
	}
}

func TestStoreEvictStaleKeepsFresh(t *testing.T) {
	s := NewStore()
	id := ID{Group: "math", Name: "add"}
	s.Put(id, Endpoint{IP: "127.0.0.1", Port: 1})

	evicted := s.EvictStale(time.Hour)
	if len(evicted) != 0 {
		t.Fatalf("expected nothing evicted, got %v", evicted)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := ID{Group: "math", Name: "add"}
			s.Put(id, Endpoint{IP: "127.0.0.1", Port: uint32(i)})
			s.Get(id)
			s.Snapshot()
		}(i)
	}
	wg.Wait()
}
