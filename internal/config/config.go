package config

import "sync"

const (
	DefaultViewportWidth  = 900
	DefaultViewportHeight = 600
)

// ViewSettings holds camera and frame configuration
type ViewSettings struct {
	mu         sync.RWMutex
	fov        float32 // degrees
	nearPlane  float32
	farPlane   float32
	clearColor [4]float32
	fpsLimit   int // 0 = unlimited
}

var globalViewSettings = &ViewSettings{
	fov:        75.0,
	nearPlane:  0.1,
	farPlane:   1000.0,
	clearColor: [4]float32{0, 0, 0, 1},
	fpsLimit:   0,
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	// Clamp to reasonable values
	if fov < 30 {
		fov = 30
	}
	if fov > 110 {
		fov = 110
	}

	globalViewSettings.fov = fov
}

// GetClipPlanes returns the near and far clipping distances
func GetClipPlanes() (near, far float32) {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.nearPlane, globalViewSettings.farPlane
}

// SetClipPlanes sets the clipping distances. Non-positive near values are
// replaced by 0.1 and far is pushed past near.
func SetClipPlanes(near, far float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 1
	}

	globalViewSettings.nearPlane = near
	globalViewSettings.farPlane = far
}

// GetClearColor returns the RGBA color used to clear each frame
func GetClearColor() [4]float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.clearColor
}

// SetClearColor sets the RGBA clear color, each channel clamped to [0, 1]
func SetClearColor(c [4]float32) {
	for i := range c {
		if c[i] < 0 {
			c[i] = 0
		}
		if c[i] > 1 {
			c[i] = 1
		}
	}

	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.clearColor = c
}

// GetFPSLimit returns the frame cap; 0 means unlimited
func GetFPSLimit() int {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalViewSettings.fpsLimit = limit
}
