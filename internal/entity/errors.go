// internal/entity/errors.go
package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNilComponent = errors.New("component is nil")
	ErrAttached     = errors.New("component is already attached to a game object")
)

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on game object: %T", e.Component)
}
