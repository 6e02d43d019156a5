package pool

import (
	"testing"

	"dbpool/pkg/driver"
)

// TestInitInstallsShared tests that Init builds the pool from a config source
// and installs it as the process-wide handle
func TestInitInstallsShared(t *testing.T) {
	driver.Register(&fakeDriver{})
	t.Cleanup(func() {
		sharedMu.Lock()
		shared = nil
		sharedMu.Unlock()
	})

	src := stubSource{
		strings: map[string]string{"driver": "fake"},
		ints:    map[string]int{"initSize": 2, "maxSize": 3},
	}
	p, err := Init(src)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer p.Close()

	if Shared() != p {
		t.Error("Shared should return the pool installed by Init")
	}
	if s := p.Stats(); s.Open != 2 {
		t.Errorf("expected initSize connections, got %d", s.Open)
	}
}
