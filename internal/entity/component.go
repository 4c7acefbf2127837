// internal/entity/component.go
package entity

import "nightmare-descent/internal/graphics"

// Component: единица поведения, прикрепленная ровно к одному GameObject.
type Component interface {
	Owner() *GameObject
	Update(deltaTime float64)
	attach(owner *GameObject)
}

// Renderer: компонент, который умеет рисовать себя.
type Renderer interface {
	Component
	Render(target graphics.Target)
}

// Destroyer реализуют компоненты с ресурсами, которые освобождаются,
// когда владелец покидает сцену.
type Destroyer interface {
	Destroy()
}

// Base встраивается в каждый компонент и хранит обратную ссылку на владельца.
// Владелец единственный, кто держит компонент.
type Base struct {
	owner *GameObject
}

// Owner возвращает владельца или nil, если компонент не прикреплен.
func (b *Base) Owner() *GameObject {
	return b.owner
}

// Update пустой; компоненты переопределяют его, если им нужен тик.
func (b *Base) Update(deltaTime float64) {}

func (b *Base) attach(owner *GameObject) {
	b.owner = owner
}
