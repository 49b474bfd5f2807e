package ar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidObject is matched by every *InvalidObjectError.
	ErrInvalidObject          = errors.New("object is not a mesh")
	ErrRendererNotInitialized = errors.New("renderer is not initialized")
	ErrSceneNotInitialized    = errors.New("scene is not initialized")
)

// InvalidObjectError reports a value that lacks geometry and material.
type InvalidObjectError struct {
	Object any
}

func (e *InvalidObjectError) Error() string {
	return fmt.Sprintf("%v (got %T)", ErrInvalidObject, e.Object)
}

func (e *InvalidObjectError) Is(target error) bool {
	return target == ErrInvalidObject
}
