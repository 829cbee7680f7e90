package terminal

import (
	"fmt"

	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/core"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

var (
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSprite    = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	stylePrecision = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHeavy     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleEnemyShot = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleStatus    = tcell.StyleDefault.Reverse(true)
	styleBanner    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// Renderer projects the arena onto the terminal grid. The last row holds the status line.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame. banner is shown across the middle when not empty.
func (r *Renderer) Draw(s core.Snapshot, kind core.BulletKind, banner string) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 1 {
		r.screen.Show()
		return
	}

	for _, e := range s.Enemies {
		r.drawSprite(s.Arena, e)
	}
	for _, e := range s.Enemies {
		r.plot(s.Arena, e.Hitbox.Center, '@', styleEnemy)
	}
	for _, b := range s.Bullets {
		glyph, style := bulletGlyph(b.Kind)
		r.plot(s.Arena, b.Hitbox.Center, glyph, style)
	}
	r.plot(s.Arena, s.Player.Center, 'A', stylePlayer)

	status := fmt.Sprintf(" %s %d/%d | %s x%d | arrows move, space fire, tab switch, q quit",
		s.Level.Name, s.Level.Scene, s.Level.Scenes, kind, s.FanSize)
	r.text(0, rows-1, padRight(status, cols), styleStatus)

	if banner != "" {
		line := " " + banner + " "
		r.text((cols-len(line))/2, (rows-1)/2, line, styleBanner)
	}
	r.screen.Show()
}

// Cell maps an arena point to a grid cell. ok is false outside the playfield rows.
func (r *Renderer) Cell(arena gamemath.Rect, p gamemath.Vector) (col, row int, ok bool) {
	cols, rows := r.screen.Size()
	rows-- // status line
	if cols <= 0 || rows <= 0 || arena.Width() <= 0 || arena.Height() <= 0 {
		return 0, 0, false
	}
	col = int((p.X - arena.Min.X) / arena.Width() * float64(cols))
	row = int((p.Y - arena.Min.Y) / arena.Height() * float64(rows))
	col = min(max(col, 0), cols-1)
	row = min(max(row, 0), rows-1)
	return col, row, true
}

func (r *Renderer) plot(arena gamemath.Rect, p gamemath.Vector, glyph rune, style tcell.Style) {
	if col, row, ok := r.Cell(arena, p); ok {
		r.screen.SetContent(col, row, glyph, nil, style)
	}
}

// drawSprite shades the cells covered by the enemy's display width.
func (r *Renderer) drawSprite(arena gamemath.Rect, e core.EnemyView) {
	half := e.Width / 2
	c0, r0, ok := r.Cell(arena, e.Hitbox.Center.Sub(gamemath.Vec(half, half)))
	if !ok {
		return
	}
	c1, r1, _ := r.Cell(arena, e.Hitbox.Center.Add(gamemath.Vec(half, half)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, '░', nil, styleSprite)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func bulletGlyph(k components.BulletKind) (rune, tcell.Style) {
	switch k {
	case components.KindPrecision:
		return '|', stylePrecision
	case components.KindHeavy:
		return 'o', styleHeavy
	}
	return '*', styleEnemyShot
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

// bannerFor is the round-over message for a finished session state.
func bannerFor(state core.State) string {
	if state == core.Playing {
		return ""
	}
	return cfg.GameOver.Titles[state.String()] + " - " + cfg.GameOver.Hint
}
