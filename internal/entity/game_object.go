// internal/entity/game_object.go
package entity

import (
	"reflect"

	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/types"
)

const (
	TypePlayer = "Player"
	TypeEnemy  = "Enemy"
)

// GameObject владеет упорядоченным набором компонентов, не больше одного
// на конкретный тип. Update и Render идут в порядке добавления.
type GameObject struct {
	id         types.EntityID
	kind       string
	position   types.Vector2
	components []Component
	alive      bool
}

// NewGameObject создает объект вне сцены. Сцена создает объекты через
// Scene.CreateGameObject, чтобы ID были уникальны.
func NewGameObject(id types.EntityID, kind string) *GameObject {
	return &GameObject{id: id, kind: kind, alive: true}
}

func (g *GameObject) ID() types.EntityID {
	return g.id
}

// Type возвращает тег типа, например TypePlayer.
func (g *GameObject) Type() string {
	return g.kind
}

func (g *GameObject) Position() types.Vector2 {
	return g.position
}

func (g *GameObject) SetPosition(p types.Vector2) {
	g.position = p
}

func (g *GameObject) Move(delta types.Vector2) {
	g.position = g.position.Add(delta)
}

// Alive сообщает, что объект еще в сцене.
func (g *GameObject) Alive() bool {
	return g.alive
}

// AddComponent прикрепляет c. Ошибка, если c равен nil, уже имеет владельца
// или компонент того же типа уже есть.
func (g *GameObject) AddComponent(c Component) error {
	if c == nil || reflect.ValueOf(c).IsNil() {
		return ErrNilComponent
	}
	if c.Owner() != nil {
		return ErrAttached
	}
	ct := reflect.TypeOf(c)
	for _, existing := range g.components {
		if reflect.TypeOf(existing) == ct {
			return ComponentExistsError{Component: c}
		}
	}
	c.attach(g)
	g.components = append(g.components, c)
	return nil
}

// MustAddComponent паникует при ошибке; только для кода сборки объектов.
func (g *GameObject) MustAddComponent(c Component) {
	if err := g.AddComponent(c); err != nil {
		panic(err)
	}
}

// RemoveComponent открепляет c и сообщает, был ли он прикреплен к g.
func (g *GameObject) RemoveComponent(c Component) bool {
	for i, existing := range g.components {
		if existing == c {
			g.components = append(g.components[:i:i], g.components[i+1:]...)
			c.attach(nil)
			return true
		}
	}
	return false
}

// Components возвращает компоненты в порядке обновления. Срез не менять.
func (g *GameObject) Components() []Component {
	return g.components
}

// Update вызывает Update у компонентов в порядке добавления. Обход идёт по
// снимку: компонент может снять себя или соседа прямо в Update, снятые
// компоненты в этом тике больше не вызываются.
func (g *GameObject) Update(deltaTime float64) {
	for _, c := range g.snapshot() {
		if c.Owner() == g {
			c.Update(deltaTime)
		}
	}
}

// Render рисует все компоненты-Renderer в порядке добавления.
func (g *GameObject) Render(target graphics.Target) {
	for _, c := range g.snapshot() {
		if r, ok := c.(Renderer); ok && c.Owner() == g {
			r.Render(target)
		}
	}
}

func (g *GameObject) snapshot() []Component {
	out := make([]Component, len(g.components))
	copy(out, g.components)
	return out
}

// destroy освобождает компоненты и обрывает обратные ссылки.
func (g *GameObject) destroy() {
	for _, c := range g.components {
		if d, ok := c.(Destroyer); ok {
			d.Destroy()
		}
		c.attach(nil)
	}
	g.components = nil
	g.alive = false
}

// Get возвращает первый компонент g, приводимый к T. T может быть
// указателем на конкретный тип или интерфейсом нужной возможности.
func Get[T any](g *GameObject) (T, bool) {
	var zero T
	if g == nil {
		return zero, false
	}
	for _, c := range g.components {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	return zero, false
}

// Has сообщает, есть ли у g компонент, приводимый к T.
func Has[T any](g *GameObject) bool {
	_, ok := Get[T](g)
	return ok
}
