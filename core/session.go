package core

import (
	"log"

	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/levels"
	"github.com/automoto/bullethell/shared/gamemath"
)

// State is where a Session is in the game flow.
type State int

const (
	Playing State = iota
	Lost
	LevelFinished
	Won // Every level cleared
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case LevelFinished:
		return "finished"
	case Won:
		return "won"
	}
	return "unknown"
}

// Input is the player's intent for one frame.
type Input struct {
	Move       gamemath.Vector // Sum of held directions, each axis in [-1, 1]
	Fire       bool
	ToggleKind bool
}

// Session plays an ordered list of levels on one World.
type Session struct {
	world    *World
	levels   []levels.Level
	current  int
	state    State
	kind     BulletKind
	cooldown float64
}

func NewSession(all []levels.Level, sink SoundSink) (*Session, error) {
	if len(all) == 0 {
		return nil, ErrNoLevels
	}
	for _, l := range all {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	world, err := NewWorld(all[0], sink)
	if err != nil {
		return nil, err
	}
	return &Session{
		world:  world,
		levels: all,
		kind:   Precision,
	}, nil
}

// Update applies one frame of input and advances the world by dt. It does nothing unless the
// session is Playing.
func (s *Session) Update(dt float64, in Input) State {
	if s.state != Playing {
		return s.state
	}

	if s.cooldown > 0 {
		s.cooldown -= dt
	}
	if in.ToggleKind {
		s.ToggleKind()
	}
	if in.Fire && s.cooldown <= 0 {
		if err := s.world.Shoot(gamemath.Vec(0, -cfg.Player.FireSpeed), s.kind); err != nil {
			log.Printf("session: %v", err)
		}
		s.cooldown += cfg.Player.GunCooldown
	}
	s.world.MovePlayer(in.Move.Scale(cfg.Player.Speed * dt))

	switch s.world.Tick(dt) {
	case Win:
		if s.current+1 < len(s.levels) {
			s.state = LevelFinished
		} else {
			s.state = Won
		}
		log.Printf("session: level %s %s", s.levels[s.current].Name, s.state)
	case Lose:
		s.state = Lost
		log.Printf("session: lost on level %s", s.levels[s.current].Name)
	}
	return s.state
}

// Restart leaves a finished round: a lost level is replayed, a finished level moves on to
// the next, and a won game starts over from the first level.
func (s *Session) Restart() error {
	switch s.state {
	case Playing:
		return nil
	case LevelFinished:
		s.current++
	case Won:
		s.current = 0
	}
	if err := s.world.Reset(s.levels[s.current]); err != nil {
		return err
	}
	s.state = Playing
	s.cooldown = 0
	return nil
}

// ToggleKind switches between precision and heavy bullets.
func (s *Session) ToggleKind() {
	if s.kind == Precision {
		s.kind = Heavy
	} else {
		s.kind = Precision
	}
}

func (s *Session) State() State        { return s.state }
func (s *Session) Kind() BulletKind    { return s.kind }
func (s *Session) Level() levels.Level { return s.levels[s.current] }
func (s *Session) LevelIndex() int     { return s.current }
func (s *Session) World() *World       { return s.world }
func (s *Session) Snapshot() Snapshot  { return s.world.Snapshot() }
