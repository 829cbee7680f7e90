package scenes

import (
	"log"

	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GameOverScene fades a banner over the frozen battle until the player continues
type GameOverScene struct {
	sceneChanger SceneChanger
	battle       *BattleScene
	input        inputState
	fade         *gween.Tween
	alpha        float32
}

// NewGameOverScene creates a round-over overlay for battle
func NewGameOverScene(sc SceneChanger, battle *BattleScene) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		battle:       battle,
		input:        battle.input,
		fade:         gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.OutQuad),
	}
}

func (gs *GameOverScene) Update() {
	gs.input.poll()
	gs.alpha, _ = gs.fade.Update(1 / float32(ebiten.TPS()))

	if gs.input.justPressed(cfg.ActionConfirm) {
		if err := gs.battle.restart(); err != nil {
			log.Fatalf("Failed to restart: %v", err)
		}
		gs.sceneChanger.ChangeScene(gs.battle)
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	gs.battle.Draw(screen)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		fade(cfg.GameOver.OverlayColor, gs.alpha),
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.GameOver.Titles[gs.battle.session.State().String()]
	titleX := (width - text.BoundString(titleFont, title).Dx()) / 2
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), fade(cfg.GameOver.TitleColor, gs.alpha))

	hintFont := fonts.Regular.Get()
	hint := cfg.GameOver.Hint
	hintX := (width - text.BoundString(hintFont, hint).Dx()) / 2
	text.Draw(screen, hint, hintFont, hintX, int(cfg.GameOver.HintY), fade(cfg.GameOver.TextColor, gs.alpha))
}
