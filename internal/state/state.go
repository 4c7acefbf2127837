// internal/state/state.go
package state

import "nightmare-descent/internal/graphics"

// State: интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(target graphics.Target)
	Exit()
}

// Cleaner реализуют состояния, которые владеют ресурсами сцены.
type Cleaner interface {
	Cleanup()
}

// StateMachine: структура для управления состояниями
type StateMachine struct {
	current State
	pending State
	// пока идёт Update, SetState только запоминает следующее состояние
	updating bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние. Вызов из Update текущего состояния
// откладывается до конца этого Update.
func (sm *StateMachine) SetState(newState State) {
	if sm.updating {
		sm.pending = newState
		return
	}
	sm.switchTo(newState)
}

func (sm *StateMachine) switchTo(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает текущее состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.updating = true
	sm.current.Update(deltaTime)
	sm.updating = false
	if sm.pending != nil {
		next := sm.pending
		sm.pending = nil
		sm.switchTo(next)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(target graphics.Target) {
	if sm.current != nil {
		sm.current.Draw(target)
	}
}

// Shutdown выходит из текущего состояния и освобождает его ресурсы.
func (sm *StateMachine) Shutdown() {
	current := sm.current
	sm.pending = nil
	sm.switchTo(nil)
	if c, ok := current.(Cleaner); ok {
		c.Cleanup()
	}
}
