package terminal

import (
	"time"

	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/core"
	"github.com/gdamore/tcell/v2"
)

// holdWindow is how long a key counts as held after its last press or auto-repeat.
// Terminals report no key releases.
const holdWindow = 150 * time.Millisecond

// actionFor maps a key (and its rune for tcell.KeyRune) to the action it triggers.
func actionFor(key tcell.Key, r rune) cfg.ActionID {
	switch key {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft
	case tcell.KeyRight:
		return cfg.ActionMoveRight
	case tcell.KeyUp:
		return cfg.ActionMoveUp
	case tcell.KeyDown:
		return cfg.ActionMoveDown
	case tcell.KeyTab:
		return cfg.ActionToggleBullet
	case tcell.KeyEnter:
		return cfg.ActionConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cfg.ActionQuit
	case tcell.KeyRune:
		switch r {
		case ' ':
			return cfg.ActionFire
		case 'a':
			return cfg.ActionMoveLeft
		case 'd':
			return cfg.ActionMoveRight
		case 'w':
			return cfg.ActionMoveUp
		case 's':
			return cfg.ActionMoveDown
		case 'q':
			return cfg.ActionQuit
		}
	}
	return cfg.ActionNone
}

// keyboard emulates held keys from press events
type keyboard struct {
	lastSeen [cfg.ActionCount]time.Time
}

func (k *keyboard) press(id cfg.ActionID, now time.Time) {
	k.lastSeen[id] = now
}

func (k *keyboard) held(now time.Time) core.Actions {
	var a core.Actions
	for id, seen := range k.lastSeen {
		a[id] = !seen.IsZero() && now.Sub(seen) < holdWindow
	}
	return a
}

// input is the movement and fire state at now. Toggling is event driven and set by the caller.
func (k *keyboard) input(now time.Time) core.Input {
	held := k.held(now)
	return core.InputFrom(held, held)
}

func (k *keyboard) release() {
	k.lastSeen = [cfg.ActionCount]time.Time{}
}
