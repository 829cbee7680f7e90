package config

import (
	"image/color"

	"github.com/automoto/bullethell/shared/gamemath"
)

// WorldConfig contains arena and projectile values used by the simulation
type WorldConfig struct {
	ArenaWidth  float64
	ArenaHeight float64

	PlayerRadius float64

	// Bullet radii per owner
	PrecisionRadius   float64
	HeavyRadius       float64
	EnemyBulletRadius float64

	PrecisionDamage float64
	StartingFanSize int // Bullets per player shot on the first level

	// Broadphase grid
	CellSize    int
	SpaceMargin int // Pixels of grid around the arena for objects straddling the edge
}

// Arena returns the playfield rectangle centred on the origin.
func (w WorldConfig) Arena() gamemath.Rect {
	return gamemath.Centered(gamemath.Vec(w.ArenaWidth, w.ArenaHeight))
}

// PlayerStart is where the player spawns and where Reset puts it back.
func (w WorldConfig) PlayerStart() gamemath.Circle {
	return gamemath.NewCircle(0, w.ArenaHeight/6*2, w.PlayerRadius)
}

// PlayerConfig contains player control values
type PlayerConfig struct {
	Speed       float64 // px/s per held direction
	FireSpeed   float64 // Bullets travel straight up at this speed
	GunCooldown float64 // Seconds between shots
}

// EnemyConfig contains enemy values shared by every template
type EnemyConfig struct {
	ShrinkRatio float64 // Hitbox radius lost per point of damage
	MinRadius   float64 // Hitbox never shrinks below this
}

// LoopConfig contains fixed-rate loop values for headless and terminal runs
type LoopConfig struct {
	TickRate int
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Hint            string
	TitleY          float64
	HintY           float64
}

// GameOverConfig contains round-over screen configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	HintY        float64
	FadeSeconds  float32
	Titles       map[string]string
	Hint         string
}

// HUDConfig contains in-battle colors and layout
type HUDConfig struct {
	BackgroundColor  color.RGBA
	PlayerColor      color.RGBA
	EnemyColor       color.RGBA
	SpriteColor      color.RGBA
	PrecisionColor   color.RGBA
	HeavyColor       color.RGBA
	EnemyBulletColor color.RGBA
	TextColor        color.RGBA
	Margin           float64
}

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	WindowScale float64
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Loop LoopConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:       600,
		Height:      1000,
		WindowScale: 0.8,
	}

	World = WorldConfig{
		ArenaWidth:        600,
		ArenaHeight:       1000,
		PlayerRadius:      10,
		PrecisionRadius:   5,
		HeavyRadius:       10,
		EnemyBulletRadius: 5,
		PrecisionDamage:   3,
		StartingFanSize:   2,
		CellSize:          32,
		SpaceMargin:       64,
	}

	Player = PlayerConfig{
		Speed:       300,
		FireSpeed:   500,
		GunCooldown: 0.2,
	}

	Enemy = EnemyConfig{
		ShrinkRatio: 0.5,
		MinRadius:   2,
	}

	Loop = LoopConfig{
		TickRate: 60,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		Title:           "BULLET HELL",
		Hint:            "Press Enter to start",
		TitleY:          380,
		HintY:           460,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		TextColor:    White,
		TitleY:       420,
		HintY:        500,
		FadeSeconds:  0.6,
		Titles: map[string]string{
			"lost":     "YOU DIED",
			"finished": "LEVEL CLEARED",
			"won":      "YOU WON",
		},
		Hint: "Press Enter to continue",
	}

	HUD = HUDConfig{
		BackgroundColor:  color.RGBA{R: 10, G: 10, B: 20, A: 255},
		PlayerColor:      Green,
		EnemyColor:       Red,
		SpriteColor:      color.RGBA{R: 255, G: 60, B: 60, A: 60},
		PrecisionColor:   Blue,
		HeavyColor:       Cyan,
		EnemyBulletColor: Orange,
		TextColor:        LightBlue,
		Margin:           12,
	}
}
