// internal/component/animated_sprite.go
package component

import (
	"fmt"
	"log"
	"strings"

	"nightmare-descent/internal/config"
	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/types"
)

// SpriteState выбирает проигрываемый клип анимации.
type SpriteState int

const (
	Idle SpriteState = iota
	Running
)

func (s SpriteState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return fmt.Sprintf("SpriteState(%d)", int(s))
}

// ParseSpriteState переводит имя из манифеста ("idle", "running") в состояние.
func ParseSpriteState(name string) (SpriteState, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "idle":
		return Idle, true
	case "running", "run":
		return Running, true
	}
	return 0, false
}

// MovementDirection: куда смотрит спрайт. Листы нарисованы лицом вправо.
type MovementDirection int

const (
	Right MovementDirection = iota
	Left
)

// AnimatedSprite проигрывает горизонтальный лист спрайтов для каждого
// SpriteState. В листе frameCount кадров одинаковой ширины слева направо.
type AnimatedSprite struct {
	entity.Base
	loader  graphics.Loader
	sprite  *graphics.Sprite
	texture graphics.Texture

	stateFilePaths   map[SpriteState]string
	stateFrameCounts map[SpriteState]int
	state            SpriteState
	lastState        SpriteState
	applied          bool

	frameCount   int
	frameTime    float64
	currentFrame int
	elapsed      float64

	direction     MovementDirection
	defaultScale  types.Vector2
	defaultOrigin types.Vector2

	blinkElapsed float64
}

// NewAnimatedSprite создает спрайт со встроенными клипами Idle и Running.
// Текстура загружается только в первом Update.
func NewAnimatedSprite(loader graphics.Loader) *AnimatedSprite {
	return &AnimatedSprite{
		loader: loader,
		sprite: graphics.NewSprite(),
		stateFilePaths: map[SpriteState]string{
			Idle:    config.IdleTexturePath,
			Running: config.RunTexturePath,
		},
		stateFrameCounts: map[SpriteState]int{
			Idle:    config.IdleFrameCount,
			Running: config.RunFrameCount,
		},
		frameTime:    config.FrameTime,
		defaultScale: types.Vector2{X: 1, Y: 1},
	}
}

// SetClip задает лист и число кадров для state. Изменение вступит в силу
// при следующем входе в это состояние.
func (a *AnimatedSprite) SetClip(state SpriteState, path string, frameCount int) error {
	if path == "" {
		return ErrEmptyPath
	}
	if frameCount <= 0 {
		return fmt.Errorf("clip %s: frame count must be positive, got %d", state, frameCount)
	}
	a.stateFilePaths[state] = path
	a.stateFrameCounts[state] = frameCount
	return nil
}

// RemoveClip убирает клип состояния.
func (a *AnimatedSprite) RemoveClip(state SpriteState) {
	delete(a.stateFilePaths, state)
	delete(a.stateFrameCounts, state)
}

// StateFilePath возвращает путь к листу; ok ложно, если клипа нет.
func (a *AnimatedSprite) StateFilePath(state SpriteState) (path string, ok bool) {
	path, ok = a.stateFilePaths[state]
	return path, ok
}

// StateFrameCount возвращает число кадров; ok ложно, если клипа нет.
func (a *AnimatedSprite) StateFrameCount(state SpriteState) (frames int, ok bool) {
	frames, ok = a.stateFrameCounts[state]
	return frames, ok
}

// SetTexture привязывает t и ставит origin в центр всей текстуры.
func (a *AnimatedSprite) SetTexture(t graphics.Texture) {
	a.texture = t
	a.sprite.SetTexture(t)
	if t == nil {
		return
	}
	w, h := t.Size()
	a.defaultOrigin = types.Vector2{X: float64(w) / 2, Y: float64(h) / 2}
	a.sprite.Origin = a.defaultOrigin
}

// LoadTexture привязывает текстуру по пути. При ошибке остается прежняя.
func (a *AnimatedSprite) LoadTexture(path string) error {
	tex, err := loadTexture(a.loader, path)
	if err != nil {
		return err
	}
	a.SetTexture(tex)
	return nil
}

// SetTextureRect выбирает видимую часть текстуры и переносит origin
// в середину верхней грани этого прямоугольника.
func (a *AnimatedSprite) SetTextureRect(r graphics.Rect) {
	a.sprite.SetTextureRect(r)
	a.defaultOrigin = types.Vector2{X: float64(r.Width) / 2, Y: 0}
	a.sprite.Origin = a.defaultOrigin
}

// SetDirection отражает спрайт по горизонтали, если он смотрит влево.
func (a *AnimatedSprite) SetDirection(dir MovementDirection) {
	a.direction = dir
	switch dir {
	case Right:
		a.sprite.Scale = a.defaultScale
		a.sprite.Origin = a.defaultOrigin
	case Left:
		a.sprite.Scale = types.Vector2{X: -a.defaultScale.X, Y: a.defaultScale.Y}
		a.sprite.Origin = types.Vector2{X: float64(a.frameWidth()), Y: a.defaultOrigin.Y}
	}
}

func (a *AnimatedSprite) Direction() MovementDirection {
	return a.direction
}

func (a *AnimatedSprite) SetDefaultScale(x, y float64) {
	a.defaultScale = types.Vector2{X: x, Y: y}
	a.SetDirection(a.direction)
}

// SetState запрашивает смену клипа, она применяется в следующем Update.
func (a *AnimatedSprite) SetState(state SpriteState) {
	a.state = state
}

func (a *AnimatedSprite) State() SpriteState {
	return a.state
}

func (a *AnimatedSprite) SetFrameTime(seconds float64) {
	a.frameTime = seconds
}

func (a *AnimatedSprite) FrameTime() float64 {
	return a.frameTime
}

func (a *AnimatedSprite) FrameCount() int {
	return a.frameCount
}

func (a *AnimatedSprite) CurrentFrame() int {
	return a.currentFrame
}

// Elapsed is the time spent on the current frame.
func (a *AnimatedSprite) Elapsed() float64 {
	return a.elapsed
}

func (a *AnimatedSprite) Sprite() *graphics.Sprite {
	return a.sprite
}

func (a *AnimatedSprite) Texture() graphics.Texture {
	return a.texture
}

func (a *AnimatedSprite) Alpha() uint8 {
	return a.sprite.Alpha()
}

// Blink переключает спрайт между полностью видимым и прозрачным каждые
// interval секунд накопленного delta.
func (a *AnimatedSprite) Blink(interval, deltaTime float64) {
	a.blinkElapsed += deltaTime
	if a.blinkElapsed >= interval {
		if a.sprite.Alpha() == 255 {
			a.sprite.SetAlpha(0)
		} else {
			a.sprite.SetAlpha(255)
		}
		a.blinkElapsed = 0
	}
}

// StopBlink делает спрайт непрозрачным и сбрасывает цикл мигания.
func (a *AnimatedSprite) StopBlink() {
	a.sprite.SetAlpha(255)
	a.blinkElapsed = 0
}

func (a *AnimatedSprite) Update(deltaTime float64) {
	if !a.applied || a.state != a.lastState {
		a.applyState(a.state)
	}
	if deltaTime > 0 {
		a.advance(deltaTime)
	}
	if owner := a.Owner(); owner != nil && entity.Has[SizeProvider](owner) {
		a.sprite.Position = owner.Position()
	}
}

func (a *AnimatedSprite) Render(target graphics.Target) {
	if a.texture == nil {
		return
	}
	target.DrawSprite(a.sprite)
}

func (a *AnimatedSprite) Destroy() {
	a.texture = nil
	a.sprite.SetTexture(nil)
}

// applyState ставит клип состояния. Без клипа или при ошибке загрузки
// остается прежний клип, но состояние считается примененным, и загрузка
// не повторяется каждый кадр.
func (a *AnimatedSprite) applyState(state SpriteState) {
	a.lastState = state
	a.applied = true

	path, okPath := a.StateFilePath(state)
	frames, okFrames := a.StateFrameCount(state)
	if !okPath || !okFrames {
		log.Printf("WARNING: animation state %s is not configured", state)
		return
	}
	if err := a.LoadTexture(path); err != nil {
		return
	}
	a.frameCount = frames
	a.currentFrame = 0
	a.elapsed = 0
	a.SetTextureRect(a.frameRect())
	a.SetDirection(a.direction)
}

// advance переносит остаток сверх frameTime в следующий кадр.
func (a *AnimatedSprite) advance(deltaTime float64) {
	if a.frameCount <= 0 || a.frameTime <= 0 || a.texture == nil {
		return
	}
	a.elapsed += deltaTime
	if a.elapsed >= a.frameTime {
		a.currentFrame = (a.currentFrame + 1) % a.frameCount
		a.elapsed -= a.frameTime
		a.sprite.SetTextureRect(a.frameRect())
	}
}

func (a *AnimatedSprite) frameWidth() int {
	if a.texture == nil {
		return 0
	}
	w, _ := a.texture.Size()
	if a.frameCount <= 0 {
		return w
	}
	return w / a.frameCount
}

func (a *AnimatedSprite) frameRect() graphics.Rect {
	if a.texture == nil {
		return graphics.Rect{}
	}
	_, h := a.texture.Size()
	fw := a.frameWidth()
	return graphics.Rect{X: a.currentFrame * fw, Y: 0, Width: fw, Height: h}
}
