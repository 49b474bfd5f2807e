package config_test

import (
	"arscene/internal/config"
	"testing"
)

func TestSetFOVClamps(t *testing.T) {
	orig := config.GetFOV()
	defer config.SetFOV(orig)

	config.SetFOV(10)
	if got := config.GetFOV(); got != 30 {
		t.Errorf("Expected FOV clamped to 30, got %v", got)
	}
	config.SetFOV(500)
	if got := config.GetFOV(); got != 110 {
		t.Errorf("Expected FOV clamped to 110, got %v", got)
	}
	config.SetFOV(75)
	if got := config.GetFOV(); got != 75 {
		t.Errorf("Expected FOV 75, got %v", got)
	}
}

func TestSetClipPlanes(t *testing.T) {
	origNear, origFar := config.GetClipPlanes()
	defer config.SetClipPlanes(origNear, origFar)

	config.SetClipPlanes(-1, 50)
	near, far := config.GetClipPlanes()
	if near != 0.1 || far != 50 {
		t.Errorf("Expected (0.1, 50), got (%v, %v)", near, far)
	}

	config.SetClipPlanes(10, 5)
	near, far = config.GetClipPlanes()
	if near != 10 || far != 11 {
		t.Errorf("Expected far pushed past near (10, 11), got (%v, %v)", near, far)
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	orig := config.GetFPSLimit()
	defer config.SetFPSLimit(orig)

	config.SetFPSLimit(-5)
	if got := config.GetFPSLimit(); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	config.SetFPSLimit(5000)
	if got := config.GetFPSLimit(); got != 1000 {
		t.Errorf("Expected 1000, got %d", got)
	}
}

func TestSetClearColorClamps(t *testing.T) {
	orig := config.GetClearColor()
	defer config.SetClearColor(orig)

	config.SetClearColor([4]float32{-1, 0.5, 2, 1})
	if got := config.GetClearColor(); got != [4]float32{0, 0.5, 1, 1} {
		t.Errorf("Expected clamped color, got %v", got)
	}
}
