package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/core"
	"github.com/automoto/bullethell/fonts"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawSnapshot renders the arena. The arena is centred on the origin and the screen is
// laid out to the arena size, so world coordinates only need shifting by the arena corner.
func DrawSnapshot(screen *ebiten.Image, s core.Snapshot, kind core.BulletKind) {
	screen.Fill(cfg.HUD.BackgroundColor)

	origin := s.Arena.Min
	for _, e := range s.Enemies {
		drawSprite(screen, origin, e)
		drawCircle(screen, origin, e.Hitbox, cfg.HUD.EnemyColor)
	}
	for _, b := range s.Bullets {
		drawCircle(screen, origin, b.Hitbox, bulletColor(b.Kind))
	}
	drawCircle(screen, origin, s.Player, cfg.HUD.PlayerColor)

	drawHUD(screen, s, kind)
}

// drawSprite stands in for the enemy artwork: a translucent box of the display width with
// the sprite name under it.
func drawSprite(screen *ebiten.Image, origin gamemath.Vector, e core.EnemyView) {
	c := e.Hitbox.Center.Sub(origin)
	half := e.Width / 2
	vector.FillRect(screen, float32(c.X-half), float32(c.Y-half), float32(e.Width), float32(e.Width), cfg.HUD.SpriteColor, false)
	text.Draw(screen, e.Sprite, fonts.Small.Get(), int(c.X-half), int(c.Y+half)+14, cfg.HUD.TextColor)
}

func drawCircle(screen *ebiten.Image, origin gamemath.Vector, c gamemath.Circle, clr color.Color) {
	if c.Radius <= 0 {
		return
	}
	p := c.Center.Sub(origin)
	vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(c.Radius), clr, true)
}

func bulletColor(k components.BulletKind) color.Color {
	switch k {
	case components.KindPrecision:
		return cfg.HUD.PrecisionColor
	case components.KindHeavy:
		return cfg.HUD.HeavyColor
	}
	return cfg.HUD.EnemyBulletColor
}

func drawHUD(screen *ebiten.Image, s core.Snapshot, kind core.BulletKind) {
	face := fonts.Small.Get()
	margin := int(cfg.HUD.Margin)
	height := screen.Bounds().Dy()

	text.Draw(screen, fmt.Sprintf("%s  scene %d/%d", s.Level.Name, s.Level.Scene, s.Level.Scenes),
		face, margin, margin+12, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("%s x%d", kind, s.FanSize), face, margin, height-margin, bulletColor(kind))
}

// fade scales every channel of a premultiplied color by a in [0, 1].
func fade(c color.RGBA, a float32) color.RGBA {
	a = min(max(a, 0), 1)
	scale := func(v uint8) uint8 { return uint8(float32(v) * a) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
