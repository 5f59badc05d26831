// Package audio plays the interface cues and the optional background
// soundtrack, and meters what is playing so visuals can follow it.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/product-showcase/internal/config"
)

const (
	SampleRate = beep.SampleRate(44100)

	bandCount = 64
	window    = 2048
)

// Player owns the speaker. Every method is a no-op until Init succeeds, so
// machines without an audio device simply stay silent.
type Player struct {
	log       *slog.Logger
	volume    float64
	smoothing float64

	mixer *beep.Mixer
	tap   *Tap
	meter *Meter
	ready bool

	track     *beep.Ctrl
	trackFile beep.StreamSeekCloser
	trackName string
}

func NewPlayer(log *slog.Logger, volume, smoothing float64) *Player {
	if log == nil {
		log = slog.Default()
	}
	mixer := &beep.Mixer{}
	tap := NewTap(mixer, config.VisualRingSize)
	return &Player{
		log:       log.With("component", "audio"),
		volume:    volume,
		smoothing: smoothing,
		mixer:     mixer,
		tap:       tap,
		meter:     NewMeter(tap, bandCount, window, smoothing),
	}
}

// Init opens the speaker and starts streaming the mixer through the tap.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.ready = true
	return nil
}

func (p *Player) Ready() bool { return p.ready }

// Cue plays a short interface sound.
func (p *Player) Cue(c Cue) {
	if !p.ready {
		p.log.Debug("cue skipped, no speaker", "cue", c)
		return
	}
	speaker.Lock()
	p.mixer.Add(cueStreamer(SampleRate, c))
	speaker.Unlock()
}

// PlaySoundtrack replaces the current soundtrack with the file at path,
// looped forever.
func (p *Player) PlaySoundtrack(path string) error {
	if !p.ready {
		return fmt.Errorf("play %s: speaker not initialised", path)
	}
	streamer, format, err := Open(path)
	if err != nil {
		return err
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}}

	p.StopSoundtrack()
	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()

	p.track = ctrl
	p.trackFile = streamer
	p.trackName = path
	p.log.Info("soundtrack playing", "path", path, "rate", format.SampleRate)
	return nil
}

// StopSoundtrack stops and closes the current soundtrack, if any.
func (p *Player) StopSoundtrack() {
	if p.track == nil {
		return
	}
	speaker.Lock()
	p.track.Streamer = nil
	speaker.Unlock()
	_ = p.trackFile.Close()
	p.track, p.trackFile, p.trackName = nil, nil, ""
}

// TogglePause pauses or resumes the soundtrack; cues keep playing.
func (p *Player) TogglePause() {
	if p.track == nil {
		return
	}
	speaker.Lock()
	p.track.Paused = !p.track.Paused
	speaker.Unlock()
}

// Soundtrack is the path of the playing soundtrack and whether it is paused.
func (p *Player) Soundtrack() (string, bool) {
	if p.track == nil {
		return "", false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.trackName, p.track.Paused
}

// Level updates the meter and returns the current loudness in [0, 1].
func (p *Player) Level() float64 {
	if !p.ready {
		return 0
	}
	p.meter.Update()
	return p.meter.Level()
}

func (p *Player) Close() {
	p.StopSoundtrack()
	if p.ready {
		speaker.Clear()
	}
}

// Bands is the per-band loudness behind Level, for the spectrum strip.
func (p *Player) Bands() []float64 { return p.meter.Bands() }
