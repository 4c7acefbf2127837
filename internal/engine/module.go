// internal/engine/module.go
package engine

import "nightmare-descent/internal/graphics"

// Module: подсистема уровня движка. Хуки вызываются в порядке регистрации,
// кроме Destroy, который идет в обратном порядке.
type Module interface {
	Awake() error
	Update(deltaTime float64)
	PreRender()
	Render(target graphics.Target)
	Present()
	Destroy()
}

// BaseModule реализует все хуки пустыми. Встройте его и переопределите
// нужные.
type BaseModule struct{}

func (BaseModule) Awake() error                  { return nil }
func (BaseModule) Update(deltaTime float64)      {}
func (BaseModule) PreRender()                    {}
func (BaseModule) Render(target graphics.Target) {}
func (BaseModule) Present()                      {}
func (BaseModule) Destroy()                      {}
