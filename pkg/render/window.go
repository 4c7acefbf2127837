package render

import (
	"errors"
	"image/color"

	"nightmare-descent/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrWindowOpen = errors.New("window is already open")

// Window: окно игры поверх Ebiten. Настоящим окном и циклом кадров владеет
// Ebiten, поэтому Open только настраивает окно, а Display лишь считает кадры.
// Изображение экрана на каждый кадр приходит через Bind.
type Window struct {
	*ScreenTarget
	width, height int
	title         string
	open          bool
	frames        uint64
}

func NewWindow(target *ScreenTarget) *Window {
	if target == nil {
		target = NewScreenTarget(nil)
	}
	return &Window{ScreenTarget: target}
}

// Open задает размер и заголовок. Повторный вызов возвращает ErrWindowOpen.
func (w *Window) Open(width, height int, title string) error {
	if w.open {
		return ErrWindowOpen
	}
	w.width, w.height, w.title = width, height, title
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	w.open = true
	return nil
}

func (w *Window) Clear(clr color.Color) {
	w.Fill(clr)
}

// Display завершает кадр. Ebiten выводит его после возврата из Draw.
func (w *Window) Display() {
	w.frames++
}

func (w *Window) Close() {
	w.open = false
	w.Bind(nil)
}

// IsOpen ложно после Close или когда пользователь закрывает окно.
func (w *Window) IsOpen() bool {
	return w.open && !ebiten.IsWindowBeingClosed()
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) Frames() uint64 {
	return w.frames
}

var (
	_ graphics.Target  = (*Window)(nil)
	_ graphics.Surface = (*Window)(nil)
)
