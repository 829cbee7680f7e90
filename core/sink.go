package core

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . SoundSink

// SoundSink plays sound effects by trigger name. Playback is fire-and-forget.
type SoundSink interface {
	Play(name string)
}

// NopSink discards every trigger.
type NopSink struct{}

func (NopSink) Play(string) {}
