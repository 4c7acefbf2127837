// internal/state/module.go
package state

import (
	"nightmare-descent/internal/engine"
	"nightmare-descent/internal/graphics"
)

// Module runs a StateMachine as an engine module: the game is updated in the
// update phase and drawn in the render phase.
type Module struct {
	engine.BaseModule
	sm      *StateMachine
	initial func(sm *StateMachine) State
}

// NewModule creates the module. initial builds the first state on Awake.
func NewModule(sm *StateMachine, initial func(sm *StateMachine) State) *Module {
	return &Module{sm: sm, initial: initial}
}

func (m *Module) StateMachine() *StateMachine {
	return m.sm
}

func (m *Module) Awake() error {
	if m.initial != nil && m.sm.Current() == nil {
		m.sm.SetState(m.initial(m.sm))
	}
	return nil
}

func (m *Module) Update(deltaTime float64) {
	m.sm.Update(deltaTime)
}

func (m *Module) Render(target graphics.Target) {
	m.sm.Draw(target)
}

func (m *Module) Destroy() {
	m.sm.Shutdown()
}
