// internal/state/game_state.go
package state

import (
	"log"

	"nightmare-descent/internal/component"
	"nightmare-descent/internal/config"
	"nightmare-descent/internal/defs"
	"nightmare-descent/internal/entity"
	"nightmare-descent/internal/event"
	"nightmare-descent/internal/graphics"
	"nightmare-descent/internal/types"
	"nightmare-descent/internal/ui"
	"nightmare-descent/internal/utils"
)

// Deps: всё, что нужно игровому состоянию извне. Переживает перезапуски.
type Deps struct {
	Loader     graphics.Loader
	Surface    graphics.Surface
	Animations []defs.AnimationDefinition
	RNG        *utils.PRNGService
}

// GameState управляет сценой с игроком, врагами и фоном.
type GameState struct {
	sm         *StateMachine
	deps       Deps
	dispatcher *event.Dispatcher
	scene      *entity.Scene
	indicator  *ui.PlayerHealthIndicator

	player       *entity.GameObject
	playerHealth *component.Health
	playerDied   bool
	hits         int
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	if deps.RNG == nil {
		deps.RNG = utils.NewPRNGService(config.RandomSeed)
	}
	if len(deps.Animations) == 0 {
		deps.Animations = defs.DefaultAnimations()
	}
	dispatcher := event.NewDispatcher()
	return &GameState{
		sm:         sm,
		deps:       deps,
		dispatcher: dispatcher,
		scene:      entity.NewScene(dispatcher),
		indicator:  ui.NewPlayerHealthIndicator(config.HealthBarX, config.HealthBarY),
	}
}

func (g *GameState) Scene() *entity.Scene {
	return g.scene
}

func (g *GameState) Player() *entity.GameObject {
	return g.player
}

// Hits: сколько раз враги попали по игроку.
func (g *GameState) Hits() int {
	return g.hits
}

func (g *GameState) Enter() {
	g.dispatcher.Subscribe(event.EntityDied, g)
	g.dispatcher.Subscribe(event.PlayerHit, g)
	if g.player == nil {
		g.buildScene()
	}
}

func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.EntityDied:
		if obj, ok := e.Data.(*entity.GameObject); ok && obj == g.player {
			g.playerDied = true
		}
	case event.PlayerHit:
		g.hits++
		if data, ok := e.Data.(event.PlayerHitData); ok {
			log.Printf("Player hit for %.0f, %.0f left", data.Damage, data.Remaining)
		}
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.scene.Update(deltaTime)
	if g.playerDied {
		g.playerDied = false
		log.Println("Player died")
		g.sm.SetState(NewGameOverState(g.sm, g, g.deps))
	}
}

func (g *GameState) Draw(target graphics.Target) {
	g.scene.Render(target)
	if g.playerHealth != nil {
		g.indicator.Draw(target, g.playerHealth.Health(), g.playerHealth.MaxHealth())
	}
}

func (g *GameState) Exit() {
	g.dispatcher.Unsubscribe(event.EntityDied, g)
	g.dispatcher.Unsubscribe(event.PlayerHit, g)
}

// Cleanup удаляет все объекты сцены. Сцена остаётся видна до этого вызова,
// поэтому экран смерти рисует её под затемнением.
func (g *GameState) Cleanup() {
	g.scene.Clear()
	g.scene.SetBackdrop(nil)
	g.player = nil
	g.playerHealth = nil
}

func (g *GameState) surfaceSize() (float64, float64) {
	if g.deps.Surface == nil {
		return config.ScreenWidth, config.ScreenHeight
	}
	w, h := g.deps.Surface.Size()
	return float64(w), float64(h)
}

func (g *GameState) buildScene() {
	width, height := g.surfaceSize()

	bg := component.NewBackground(g.deps.Loader)
	if err := bg.SetPath(config.BackgroundPath); err == nil {
		bg.SetSize(g.deps.Surface)
		g.scene.SetBackdrop(bg)
	}

	g.player = g.spawnPlayer(types.Vector2{X: width / 2, Y: height * 0.7})
	for i := 0; i < config.EnemyCount; i++ {
		pos := types.Vector2{
			X: g.deps.RNG.Range(config.EnemySize, width-config.EnemySize),
			Y: g.deps.RNG.Range(config.EnemySize, height*0.3),
		}
		g.spawnEnemy(pos)
	}
	log.Printf("Scene ready: %d objects", g.scene.Len())
}

func (g *GameState) spawnPlayer(pos types.Vector2) *entity.GameObject {
	player := g.scene.CreateGameObject(entity.TypePlayer)
	player.SetPosition(pos)

	shape := component.NewRectangleShapeRenderer(
		types.Vector2{X: config.PlayerSize, Y: config.PlayerSize}, config.TextLightColor)
	shape.Visible = false
	player.MustAddComponent(shape)
	player.MustAddComponent(component.NewSquareCollider(config.PlayerColliderSize, config.PlayerColliderSize))
	player.MustAddComponent(component.NewPatrol(
		pos.X-config.PlayerPatrolMargin, pos.X+config.PlayerPatrolMargin,
		config.PlayerSpeed, config.PlayerPatrolPause))

	sprite := component.NewAnimatedSprite(g.deps.Loader)
	applyAnimations(sprite, g.deps.Animations)
	sprite.SetDefaultScale(config.SpriteScale, config.SpriteScale)
	player.MustAddComponent(sprite)

	health := component.NewHealth(config.PlayerMaxHealth)
	health.SetDispatcher(g.dispatcher)
	player.MustAddComponent(health)
	g.playerHealth = health

	return player
}

func (g *GameState) spawnEnemy(pos types.Vector2) *entity.GameObject {
	enemy := g.scene.CreateGameObject(entity.TypeEnemy)
	enemy.SetPosition(pos)

	shape := component.NewRectangleShapeRenderer(
		types.Vector2{X: config.EnemySize, Y: config.EnemySize}, config.EnemyColor)
	enemy.MustAddComponent(shape)

	// Без текстуры враг рисуется прямоугольником.
	renderer := component.NewSpriteRenderer(g.deps.Loader)
	if err := renderer.LoadTexture(config.EnemyTexturePath); err == nil {
		shape.Visible = false
		if w, _ := renderer.Texture().Size(); w > 0 {
			scale := config.EnemySize / float64(w)
			renderer.SetDefaultScale(scale, scale)
		}
	}
	enemy.MustAddComponent(renderer)

	enemy.MustAddComponent(component.NewSquareCollider(config.EnemySize, config.EnemySize))
	speed := config.EnemySpeed * g.deps.RNG.Range(0.8, 1.2)
	enemy.MustAddComponent(component.NewChaser(g.player, speed))

	attack := component.NewEnemyAttack(config.EnemyCollisionDamage)
	attack.SetTarget(g.player)
	attack.SetDispatcher(g.dispatcher)
	enemy.MustAddComponent(attack)

	return enemy
}

// applyAnimations переносит клипы из манифеста в спрайт.
func applyAnimations(sprite *component.AnimatedSprite, animDefs []defs.AnimationDefinition) {
	for _, def := range animDefs {
		state, ok := component.ParseSpriteState(def.State)
		if !ok {
			log.Printf("WARNING: unknown animation state %q in manifest", def.State)
			continue
		}
		if err := sprite.SetClip(state, def.Path, def.Frames); err != nil {
			log.Printf("WARNING: bad clip for %s: %v", state, err)
		}
	}
}
