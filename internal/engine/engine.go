// internal/engine/engine.go
package engine

import (
	"errors"
	"fmt"
	"log"

	"nightmare-descent/internal/graphics"
)

var (
	ErrNilModule      = errors.New("module is nil")
	ErrAlreadyStarted = errors.New("engine already started")
)

// Engine проводит модули через фазы жизненного цикла. Вызывается только
// из горутины игрового цикла, блокировок нет.
type Engine struct {
	modules []Module
	awake   int
	status  Status
	phase   Phase
	frames  uint64
}

func New(modules ...Module) *Engine {
	e := &Engine{}
	for _, m := range modules {
		if err := e.AddModule(m); err != nil {
			log.Printf("WARNING: skipping module: %v", err)
		}
	}
	return e
}

// AddModule регистрирует m. Модули добавляются только до Start.
func (e *Engine) AddModule(m Module) error {
	if m == nil {
		return ErrNilModule
	}
	if e.status != StatusCreated {
		return ErrAlreadyStarted
	}
	e.modules = append(e.modules, m)
	return nil
}

func (e *Engine) Modules() []Module {
	return e.modules
}

func (e *Engine) Status() Status {
	return e.status
}

// Phase: текущая или последняя завершенная фаза.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Frames is the number of completed Draw calls.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Start вызывает Awake у всех модулей. Если модуль упал, уже проснувшиеся
// модули уничтожаются в обратном порядке и движок останавливается.
func (e *Engine) Start() error {
	if e.status != StatusCreated {
		return ErrAlreadyStarted
	}
	e.phase = PhaseAwake
	for i, m := range e.modules {
		if err := m.Awake(); err != nil {
			e.awake = i
			e.Shutdown()
			return fmt.Errorf("awake module %d (%T): %w", i, m, err)
		}
	}
	e.awake = len(e.modules)
	e.status = StatusRunning
	return nil
}

// Update выполняет фазу обновления, только если движок запущен.
func (e *Engine) Update(deltaTime float64) {
	if e.status != StatusRunning {
		return
	}
	e.phase = PhaseUpdate
	for _, m := range e.modules {
		m.Update(deltaTime)
	}
}

// Draw выполняет PreRender, Render и Present по всем модулям, фаза за фазой.
func (e *Engine) Draw(target graphics.Target) {
	if e.status != StatusRunning {
		return
	}
	e.phase = PhasePreRender
	for _, m := range e.modules {
		m.PreRender()
	}
	e.phase = PhaseRender
	for _, m := range e.modules {
		m.Render(target)
	}
	e.phase = PhasePresent
	for _, m := range e.modules {
		m.Present()
	}
	e.frames++
}

// Shutdown уничтожает проснувшиеся модули в обратном порядке.
// Повторные вызовы ничего не делают.
func (e *Engine) Shutdown() {
	if e.status == StatusStopped {
		return
	}
	e.phase = PhaseDestroy
	for i := e.awake - 1; i >= 0; i-- {
		e.modules[i].Destroy()
	}
	e.awake = 0
	e.status = StatusStopped
}
