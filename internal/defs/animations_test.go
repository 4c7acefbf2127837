package defs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "animations.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadAnimationDefinitions(t *testing.T) {
	path := writeManifest(t, `[
		{"state": "idle", "path": "Assets/Idle.png", "frames": 8},
		{"state": "run", "path": "Assets/Run.png", "frames": 6}
	]`)

	got, err := LoadAnimationDefinitions(path)
	if err != nil {
		t.Fatalf("LoadAnimationDefinitions: %v", err)
	}
	want := []AnimationDefinition{
		{State: "idle", Path: "Assets/Idle.png", Frames: 8},
		{State: "run", Path: "Assets/Run.png", Frames: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestLoadAnimationDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Broken JSON", `[{"state": "idle"`},
		{"Zero frames", `[{"state": "idle", "path": "a.png", "frames": 0}]`},
		{"Missing path", `[{"state": "idle", "frames": 3}]`},
		{"Missing state", `[{"path": "a.png", "frames": 3}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadAnimationDefinitions(writeManifest(t, tt.body)); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	_, err := LoadAnimationDefinitions(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadAnimationsOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	if got := LoadAnimationsOrDefault(missing); !reflect.DeepEqual(got, DefaultAnimations()) {
		t.Errorf("Expected defaults for a missing file, got %+v", got)
	}

	broken := writeManifest(t, `{}`)
	if got := LoadAnimationsOrDefault(broken); !reflect.DeepEqual(got, DefaultAnimations()) {
		t.Errorf("Expected defaults for a broken file, got %+v", got)
	}

	ok := writeManifest(t, `[{"state": "idle", "path": "x.png", "frames": 2}]`)
	if got := LoadAnimationsOrDefault(ok); len(got) != 1 || got[0].Path != "x.png" {
		t.Errorf("Expected manifest entries, got %+v", got)
	}
}

func TestDefaultAnimations(t *testing.T) {
	for _, def := range DefaultAnimations() {
		if err := def.Validate(); err != nil {
			t.Errorf("Default %q invalid: %v", def.State, err)
		}
	}
}
