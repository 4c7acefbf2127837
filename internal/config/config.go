// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1600
	ScreenHeight = 900
	WindowTitle  = "Nightmare Descent"
	MaxDeltaTime = 0.06

	ProfilerAddr = "" // "localhost:6060" включает pprof
	RandomSeed   = 0  // 0: сид от текущего времени
	RestartDelay = 3.0

	// Анимация
	FrameTime       = 0.1
	IdleFrameCount  = 8
	RunFrameCount   = 8
	SpriteScale     = 2.0
	BlinkInterval   = 0.1
	AnimationsPath  = "Assets/animations.json"
	IdleTexturePath = "Assets/Idle.png"
	RunTexturePath  = "Assets/Run.png"

	BackgroundPath   = "Assets/Background.png"
	EnemyTexturePath = "Assets/Enemy.png"
	FontPath         = "Assets/fonts/arial.ttf"
	FontSize         = 16.0

	// Игрок
	PlayerMaxHealth       = 100.0
	PlayerSize            = 64.0
	PlayerColliderSize    = 48.0
	PlayerSpeed           = 160.0
	PlayerPatrolMargin    = 300.0
	PlayerPatrolPause     = 1.5
	InvincibilityDuration = 1.0

	// Враги
	EnemyCount           = 3
	EnemySize            = 40.0
	EnemySpeed           = 90.0
	EnemyCollisionDamage = 10.0
	KnockbackDistance    = 220.0

	// HUD
	HealthBarX      = 20
	HealthBarY      = 20
	HealthBarWidth  = 240
	HealthBarHeight = 18
	OverlayAlpha    = 160 // затемнение экрана смерти
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	EnemyColor      = color.RGBA{150, 40, 60, 255}
	HealthColor     = color.RGBA{200, 40, 40, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)
