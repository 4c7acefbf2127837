// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"nightmare-descent/internal/assets"
	"nightmare-descent/internal/config"
	"nightmare-descent/internal/defs"
	"nightmare-descent/internal/engine"
	"nightmare-descent/internal/state"
	"nightmare-descent/internal/utils"
	"nightmare-descent/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	engine         *engine.Engine
	window         *render.Window
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if !a.window.IsOpen() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.engine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.window.Bind(screen)
	a.engine.Draw(a.window)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if config.ProfilerAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(config.ProfilerAddr, nil))
		}()
	}

	textures := assets.NewTextureManager()
	defer textures.Cleanup()

	window := render.NewWindow(render.NewScreenTarget(render.LoadFontFace(config.FontPath, config.FontSize)))
	deps := state.Deps{
		Loader:     textures,
		Surface:    window,
		Animations: defs.LoadAnimationsOrDefault(config.AnimationsPath),
		RNG:        utils.NewPRNGService(config.RandomSeed),
	}

	sm := state.NewStateMachine()
	eng := engine.New(
		engine.NewWindowModule(window),
		state.NewModule(sm, func(sm *state.StateMachine) state.State {
			return state.NewGameState(sm, deps)
		}),
	)
	if err := eng.Start(); err != nil {
		log.Fatalf("failed to start engine: %v", err)
	}
	defer eng.Shutdown()

	app := &AppGame{
		engine:         eng,
		window:         window,
		lastUpdateTime: time.Now(),
	}
	if err := ebiten.RunGame(app); err != nil {
		log.Printf("game stopped with error: %v", err)
	}
}
