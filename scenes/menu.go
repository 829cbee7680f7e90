package scenes

import (
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MenuScene displays the title screen
type MenuScene struct {
	sceneChanger SceneChanger
	input        inputState
	pulse        *gween.Tween
	pulseDown    bool
	hintAlpha    float32
}

const (
	pulseLow     = 0.2
	pulseSeconds = 0.8
)

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{
		sceneChanger: sc,
		pulse:        gween.New(1, pulseLow, pulseSeconds, ease.InOutSine),
		pulseDown:    true,
		hintAlpha:    1,
	}
}

func (ms *MenuScene) Update() {
	ms.input.poll()

	alpha, done := ms.pulse.Update(1 / float32(ebiten.TPS()))
	ms.hintAlpha = alpha
	if done {
		// Bounce back the other way
		ms.pulseDown = !ms.pulseDown
		if ms.pulseDown {
			ms.pulse = gween.New(1, pulseLow, pulseSeconds, ease.InOutSine)
		} else {
			ms.pulse = gween.New(pulseLow, 1, pulseSeconds, ease.InOutSine)
		}
	}

	if ms.input.justPressed(cfg.ActionConfirm) {
		ms.sceneChanger.ChangeScene(NewBattleScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	width := screen.Bounds().Dx()

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleX := (width - text.BoundString(titleFont, title).Dx()) / 2
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	hintFont := fonts.Regular.Get()
	hint := cfg.Menu.Hint
	hintColor := fade(cfg.Menu.TextColor, ms.hintAlpha)
	hintX := (width - text.BoundString(hintFont, hint).Dx()) / 2
	text.Draw(screen, hint, hintFont, hintX, int(cfg.Menu.HintY), hintColor)
}
