package session

import (
	"arscene/internal/config"
	"testing"
	"time"
)

func TestFPSLimiterUnlimited(t *testing.T) {
	orig := config.GetFPSLimit()
	defer config.SetFPSLimit(orig)
	config.SetFPSLimit(0)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 1000; i++ {
		f.Wait()
	}
	if d := time.Since(start); d > 100*time.Millisecond {
		t.Errorf("Unlimited waits took %v", d)
	}
	if !f.next.IsZero() {
		t.Errorf("Expected no pending deadline when unlimited")
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	orig := config.GetFPSLimit()
	defer config.SetFPSLimit(orig)
	config.SetFPSLimit(50)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 3; i++ {
		f.Wait()
	}
	if d := time.Since(start); d < 40*time.Millisecond {
		t.Errorf("Expected at least 40ms for 3 frames at 50 FPS, got %v", d)
	}
}
