// internal/engine/phase.go
package engine

import "fmt"

// Phase: шаг жизненного цикла движка. Кадр проходит PhaseUpdate,
// затем PhasePreRender, PhaseRender и PhasePresent.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwake
	PhaseUpdate
	PhasePreRender
	PhaseRender
	PhasePresent
	PhaseDestroy
)

var phaseNames = [...]string{
	PhaseIdle:      "idle",
	PhaseAwake:     "awake",
	PhaseUpdate:    "update",
	PhasePreRender: "pre-render",
	PhaseRender:    "render",
	PhasePresent:   "present",
	PhaseDestroy:   "destroy",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Status: состояние запуска движка.
type Status int

const (
	StatusCreated Status = iota
	StatusRunning
	StatusStopped
)
