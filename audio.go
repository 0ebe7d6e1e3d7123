package main

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/config"
)

const sampleRate = 44100

// Cue names one of the stock sound effects.
type Cue int

const (
	CueKill Cue = iota
	CueHurt
	CueDoor
	CueQuest
	CueDefeat
)

// Audio renders short decaying sine tones to PCM once at startup and plays
// them through a shared context. No audio files ship with the binary.
type Audio struct {
	ctx    *audio.Context
	log    *zap.Logger
	volume float64
	muted  bool
	cues   map[Cue][]byte
}

func NewAudio(cfg config.AudioConfig, log *zap.Logger) *Audio {
	a := &Audio{
		ctx:    audio.NewContext(sampleRate),
		log:    log,
		volume: cfg.Volume,
		muted:  cfg.Muted,
	}
	a.cues = map[Cue][]byte{
		CueKill:   tone(330, 160*time.Millisecond, 0.8),
		CueHurt:   tone(140, 180*time.Millisecond, 0.9),
		CueDoor:   tone(440, 120*time.Millisecond, 0.6),
		CueQuest:  tone(784, 260*time.Millisecond, 0.7),
		CueDefeat: tone(110, 500*time.Millisecond, 0.9),
	}
	log.Debug("audio cues rendered", zap.Int("count", len(a.cues)))
	return a
}

// Play starts cue c on a fresh player so overlapping cues mix.
func (a *Audio) Play(c Cue) {
	if a == nil || a.muted || a.volume <= 0 {
		return
	}
	pcm, ok := a.cues[c]
	if !ok {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(a.volume)
	p.Play()
}

// ToggleMute flips the mute switch and reports the new state.
func (a *Audio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

// tone renders a decaying sine wave as 16-bit little-endian stereo PCM,
// the format NewPlayerFromBytes expects.
func tone(freq float64, dur time.Duration, vol float64) []byte {
	n := int(sampleRate * dur.Seconds())
	b := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * env * env * vol
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(b[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(b[i*4+2:], uint16(s))
	}
	return b
}
