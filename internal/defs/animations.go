// internal/defs/animations.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"nightmare-descent/internal/config"
)

// AnimationDefinition describes one sprite sheet of the player animation.
type AnimationDefinition struct {
	State  string `json:"state"`
	Path   string `json:"path"`
	Frames int    `json:"frames"`
}

// Validate checks a single definition.
func (d AnimationDefinition) Validate() error {
	switch {
	case strings.TrimSpace(d.State) == "":
		return errors.New("state is empty")
	case d.Path == "":
		return fmt.Errorf("state %q: path is empty", d.State)
	case d.Frames <= 0:
		return fmt.Errorf("state %q: frames must be positive, got %d", d.State, d.Frames)
	}
	return nil
}

// DefaultAnimations is the built-in Idle and Running setup.
func DefaultAnimations() []AnimationDefinition {
	return []AnimationDefinition{
		{State: "idle", Path: config.IdleTexturePath, Frames: config.IdleFrameCount},
		{State: "running", Path: config.RunTexturePath, Frames: config.RunFrameCount},
	}
}

// LoadAnimationDefinitions reads the animation manifest at path. The manifest
// is a JSON array of definitions; an invalid entry rejects the whole file.
func LoadAnimationDefinitions(path string) ([]AnimationDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation definitions file: %w", err)
	}

	var animDefs []AnimationDefinition
	if err := json.Unmarshal(file, &animDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal animation definitions: %w", err)
	}
	for i, def := range animDefs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("animation definition %d: %w", i, err)
		}
	}

	log.Printf("Loaded %d animation definitions", len(animDefs))
	return animDefs, nil
}

// LoadAnimationsOrDefault loads the manifest and falls back to
// DefaultAnimations when it is missing or invalid.
func LoadAnimationsOrDefault(path string) []AnimationDefinition {
	animDefs, err := LoadAnimationDefinitions(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("WARNING: %v, using built-in animations", err)
		}
		return DefaultAnimations()
	}
	return animDefs
}
