// internal/engine/window_module.go
package engine

import (
	"errors"
	"image/color"

	"nightmare-descent/internal/config"
)

var ErrNoWindow = errors.New("window module has no window")

// Window: окно платформы, которым управляет WindowModule.
type Window interface {
	Open(width, height int, title string) error
	Clear(clr color.Color)
	Display()
	Close()
	IsOpen() bool
}

// WindowModule владеет окном на время запуска движка. Awake открывает окно,
// PreRender очищает, Present показывает кадр, Destroy закрывает.
type WindowModule struct {
	BaseModule
	window     Window
	Width      int
	Height     int
	Title      string
	ClearColor color.Color
}

func NewWindowModule(window Window) *WindowModule {
	return &WindowModule{
		window:     window,
		Width:      config.ScreenWidth,
		Height:     config.ScreenHeight,
		Title:      config.WindowTitle,
		ClearColor: config.BackgroundColor,
	}
}

// Window возвращает окно или nil после Destroy.
func (m *WindowModule) Window() Window {
	return m.window
}

func (m *WindowModule) Awake() error {
	if m.window == nil {
		return ErrNoWindow
	}
	return m.window.Open(m.Width, m.Height, m.Title)
}

func (m *WindowModule) PreRender() {
	if m.window == nil || !m.window.IsOpen() {
		return
	}
	m.window.Clear(m.ClearColor)
}

func (m *WindowModule) Present() {
	if m.window == nil || !m.window.IsOpen() {
		return
	}
	m.window.Display()
}

func (m *WindowModule) Destroy() {
	if m.window == nil {
		return
	}
	if m.window.IsOpen() {
		m.window.Close()
	}
	m.window = nil
}
