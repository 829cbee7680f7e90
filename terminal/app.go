package terminal

import (
	"context"
	"errors"
	"log"
	"time"

	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/core"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// App runs a Session on a tcell screen
type App struct {
	screen   tcell.Screen
	session  *core.Session
	renderer *Renderer
	keys     keyboard
	events   chan tcell.Event
	err      error
}

// NewApp takes ownership of an initialised screen; Run finalises it.
func NewApp(screen tcell.Screen, session *core.Session) *App {
	return &App{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(screen),
		events:   make(chan tcell.Event, 100),
	}
}

// Run pumps terminal events and drives the fixed-rate loop until the player quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.pumpEvents(ctx)
		return nil
	})
	g.Go(func() error {
		// Fini unblocks PollEvent in the pump
		defer a.screen.Fini()
		err := core.NewLoop(cfg.Loop.TickRate, a.step).Run(ctx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		if a.err != nil {
			return a.err
		}
		return err
	})

	return g.Wait()
}

func (a *App) pumpEvents(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// step handles queued events, advances the session and redraws. It returns false to quit.
func (a *App) step(dt float64) bool {
	now := time.Now()
	toggle, confirm, quit := a.drainEvents(now)
	if quit {
		log.Println("terminal: quit requested")
		return false
	}

	if a.session.State() == core.Playing {
		in := a.keys.input(now)
		in.ToggleKind = toggle
		a.session.Update(dt, in)
	} else if confirm {
		if err := a.session.Restart(); err != nil {
			a.err = err
			return false
		}
		a.keys.release()
	}

	a.renderer.Draw(a.session.Snapshot(), a.session.Kind(), bannerFor(a.session.State()))
	return true
}

func (a *App) drainEvents(now time.Time) (toggle, confirm, quit bool) {
	for {
		select {
		case ev := <-a.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch id := actionFor(ev.Key(), ev.Rune()); id {
				case cfg.ActionToggleBullet:
					toggle = true
				case cfg.ActionConfirm:
					confirm = true
				case cfg.ActionQuit:
					quit = true
				case cfg.ActionNone:
				default:
					a.keys.press(id, now)
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		default:
			return toggle, confirm, quit
		}
	}
}
