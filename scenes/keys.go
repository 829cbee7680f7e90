package scenes

import (
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/core"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:     {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight:    {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionMoveUp:       {ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionMoveDown:     {ebiten.KeyArrowDown, ebiten.KeyS},
	cfg.ActionFire:         {ebiten.KeySpace},
	cfg.ActionToggleBullet: {ebiten.KeyControlLeft, ebiten.KeyTab},
	cfg.ActionConfirm:      {ebiten.KeyEnter},
	cfg.ActionQuit:         {ebiten.KeyEscape},
}

// inputState keeps this frame's and last frame's held actions for edge detection
type inputState struct {
	current  core.Actions
	previous core.Actions
}

// poll swaps buffers, then reads the keyboard.
func (s *inputState) poll() {
	s.previous = s.current
	s.current = core.Actions{}
	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				s.current[actionID] = true
			}
		}
	}
}

func (s *inputState) justPressed(id cfg.ActionID) bool {
	return s.current.JustPressed(s.previous, id)
}

func (s *inputState) frame() core.Input {
	return core.InputFrom(s.current, s.previous)
}

// QuitRequested reports whether a quit key is held.
func QuitRequested() bool {
	for _, key := range keyBindings[cfg.ActionQuit] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
