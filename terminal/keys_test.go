package terminal

import (
	"testing"
	"time"

	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want cfg.ActionID
	}{
		{tcell.KeyLeft, 0, cfg.ActionMoveLeft},
		{tcell.KeyDown, 0, cfg.ActionMoveDown},
		{tcell.KeyRune, ' ', cfg.ActionFire},
		{tcell.KeyTab, 0, cfg.ActionToggleBullet},
		{tcell.KeyEnter, 0, cfg.ActionConfirm},
		{tcell.KeyRune, 'q', cfg.ActionQuit},
		{tcell.KeyRune, 'x', cfg.ActionNone},
	}
	for _, tt := range tests {
		if got := actionFor(tt.key, tt.r); got != tt.want {
			t.Errorf("actionFor(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestKeyboardHoldWindow(t *testing.T) {
	var k keyboard
	t0 := time.Unix(100, 0)
	k.press(cfg.ActionMoveRight, t0)
	k.press(cfg.ActionFire, t0)

	in := k.input(t0.Add(holdWindow / 2))
	if in.Move != gamemath.Vec(1, 0) || !in.Fire {
		t.Errorf("input = %+v, want moving right and firing", in)
	}
	if in.ToggleKind {
		t.Error("held keys must never toggle")
	}

	if in := k.input(t0.Add(holdWindow)); in.Move != (gamemath.Vector{}) || in.Fire {
		t.Errorf("input = %+v after the hold window, want idle", in)
	}

	k.press(cfg.ActionMoveUp, t0)
	k.release()
	if in := k.input(t0); in.Move != (gamemath.Vector{}) {
		t.Errorf("input = %+v after release, want idle", in)
	}
}
