package scenes

import (
	"log"
	"time"

	"github.com/automoto/bullethell/core"
	"github.com/automoto/bullethell/levels"
	"github.com/hajimehoshi/ebiten/v2"
)

// BattleScene runs the session and draws its snapshot every frame
type BattleScene struct {
	sceneChanger SceneChanger
	session      *core.Session
	input        inputState
	clock        core.FrameClock
}

// NewBattleScene starts a session over every shipped level.
func NewBattleScene(sc SceneChanger) *BattleScene {
	session, err := core.NewSession(levels.All(), Speaker{})
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	return &BattleScene{sceneChanger: sc, session: session}
}

func (bs *BattleScene) Update() {
	bs.input.poll()

	dt, ok := bs.clock.Tick(time.Now())
	if !ok {
		return
	}
	if state := bs.session.Update(dt, bs.input.frame()); state != core.Playing {
		bs.sceneChanger.ChangeScene(NewGameOverScene(bs.sceneChanger, bs))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	DrawSnapshot(screen, bs.session.Snapshot(), bs.session.Kind())
}

// restart leaves the round-over state and recalibrates the clock so the time spent on the
// overlay is not simulated.
func (bs *BattleScene) restart() error {
	if err := bs.session.Restart(); err != nil {
		return err
	}
	bs.clock.Reset()
	bs.input = inputState{}
	return nil
}
