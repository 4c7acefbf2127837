// internal/entity/scene.go
package entity

import (
	"nightmare-descent/internal/event"
	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/types"
)

// Drawable рисуется сценой позади объектов.
type Drawable interface {
	Render(target graphics.Target)
}

// Scene владеет объектами одной игровой сессии.
type Scene struct {
	nextID     types.EntityID
	objects    []*GameObject
	pending    []types.EntityID
	updating   bool
	backdrop   Drawable
	dispatcher *event.Dispatcher
}

// NewScene создает пустую сцену; dispatcher может быть nil.
func NewScene(dispatcher *event.Dispatcher) *Scene {
	return &Scene{nextID: 1, dispatcher: dispatcher}
}

func (s *Scene) Dispatcher() *event.Dispatcher {
	return s.dispatcher
}

// SetBackdrop задает то, что рисуется до объектов.
func (s *Scene) SetBackdrop(d Drawable) {
	s.backdrop = d
}

// CreateGameObject добавляет объект с новым ID.
func (s *Scene) CreateGameObject(kind string) *GameObject {
	obj := NewGameObject(s.nextID, kind)
	s.nextID++
	s.objects = append(s.objects, obj)
	return obj
}

// Find ищет живой объект по ID.
func (s *Scene) Find(id types.EntityID) (*GameObject, bool) {
	for _, obj := range s.objects {
		if obj.id == id {
			return obj, true
		}
	}
	return nil, false
}

// FindByType возвращает все объекты с тегом в порядке создания.
func (s *Scene) FindByType(kind string) []*GameObject {
	var out []*GameObject
	for _, obj := range s.objects {
		if obj.kind == kind {
			out = append(out, obj)
		}
	}
	return out
}

// FirstByType возвращает первый объект с тегом.
func (s *Scene) FirstByType(kind string) (*GameObject, bool) {
	for _, obj := range s.objects {
		if obj.kind == kind {
			return obj, true
		}
	}
	return nil, false
}

// Objects возвращает живые объекты в порядке создания. Срез не менять.
func (s *Scene) Objects() []*GameObject {
	return s.objects
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// Remove уничтожает объект по ID. Во время Update удаление откладывается,
// пока не обновятся все объекты.
func (s *Scene) Remove(id types.EntityID) bool {
	if _, ok := s.Find(id); !ok {
		return false
	}
	if s.updating {
		s.pending = append(s.pending, id)
		return true
	}
	s.removeNow(id)
	return true
}

func (s *Scene) removeNow(id types.EntityID) {
	for i, obj := range s.objects {
		if obj.id != id {
			continue
		}
		s.objects = append(s.objects[:i], s.objects[i+1:]...)
		obj.destroy()
		if s.dispatcher != nil {
			s.dispatcher.Dispatch(event.Event{Type: event.EntityRemoved, Data: id})
		}
		return
	}
}

// Update обновляет все объекты, затем применяет отложенные удаления.
func (s *Scene) Update(deltaTime float64) {
	s.updating = true
	for _, obj := range s.objects {
		if obj.alive {
			obj.Update(deltaTime)
		}
	}
	s.updating = false

	pending := s.pending
	s.pending = nil
	for _, id := range pending {
		s.removeNow(id)
	}
}

// Render рисует фон, затем объекты в порядке создания.
func (s *Scene) Render(target graphics.Target) {
	if s.backdrop != nil {
		s.backdrop.Render(target)
	}
	for _, obj := range s.objects {
		obj.Render(target)
	}
}

// Clear уничтожает все объекты.
func (s *Scene) Clear() {
	for len(s.objects) > 0 {
		s.removeNow(s.objects[0].id)
	}
	s.pending = nil
}
