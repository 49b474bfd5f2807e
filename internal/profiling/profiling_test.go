package profiling

import (
	"testing"
	"time"
)

func TestTopNOrdersSlowestFirst(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["render"] = 4200 * time.Microsecond
	frameTotals["animate"] = 300 * time.Microsecond
	frameTotals["poll"] = 2 * time.Millisecond
	mu.Unlock()
	defer ResetFrame()

	if got, want := TopN(2), "render:4.2ms, poll:2ms"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if got, want := TopN(10), "render:4.2ms, poll:2ms, animate:0.3ms"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	Track("stage")()
	Track("stage")()

	ss := Snapshot()
	if _, ok := ss["stage"]; !ok || len(ss) != 1 {
		t.Fatalf("Expected a single tracked stage, got %v", ss)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty snapshot after reset")
	}
}
