package app

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pixelgrid/chomp/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// osc is an endless square-wave streamer. Mutate freq only between
// speaker.Lock/Unlock.
type osc struct {
	freq  float64
	gain  float64
	phase float64
}

func (o *osc) Stream(samples [][2]float64) (int, bool) {
	inc := o.freq / float64(sampleRate)
	for i := range samples {
		v := -o.gain
		if o.phase < 0.5 {
			v = o.gain
		}
		samples[i][0] = v
		samples[i][1] = v
		o.phase += inc
		if o.phase >= 1 {
			o.phase -= 1
		}
	}
	return len(samples), true
}

func (o *osc) Err() error { return nil }

// blip is a one-shot square tone of fixed length.
func blip(freq float64, d time.Duration, gain float64) beep.Streamer {
	return beep.Take(sampleRate.N(d), &osc{freq: freq, gain: gain})
}

// sweep is a one-shot tone whose frequency glides from f0 to f1.
type sweep struct {
	f0, f1 float64
	n, pos int
	phase  float64
	gain   float64
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.n {
			return i, i > 0
		}
		f := s.f0 + (s.f1-s.f0)*float64(s.pos)/float64(s.n)
		v := -s.gain
		if s.phase < 0.5 {
			v = s.gain
		}
		samples[i][0] = v
		samples[i][1] = v
		s.phase += f / float64(sampleRate)
		if s.phase >= 1 {
			s.phase -= 1
		}
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// CuePlayer synthesises the audio cues from core events and state. It is a
// pure consumer: nothing here feeds back into the simulation.
type CuePlayer struct {
	ok          bool
	mixer       *beep.Mixer
	siren       *osc
	sirenCtrl   *beep.Ctrl
	evade       *osc
	evadeCtrl   *beep.Ctrl
	pelletCount int
	munchFlip   bool
}

// NewCuePlayer initialises the speaker. On failure the player is inert and
// every call is a no-op; the game plays silent.
func NewCuePlayer(pelletCount int) *CuePlayer {
	c := &CuePlayer{pelletCount: pelletCount}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return c
	}
	c.mixer = &beep.Mixer{}
	c.siren = &osc{freq: 180, gain: 0.04}
	c.sirenCtrl = &beep.Ctrl{Streamer: c.siren, Paused: true}
	c.evade = &osc{freq: 320, gain: 0.04}
	c.evadeCtrl = &beep.Ctrl{Streamer: c.evade, Paused: true}
	c.mixer.Add(c.sirenCtrl, c.evadeCtrl)
	speaker.Play(c.mixer)
	c.ok = true
	return c
}

// Consume reacts to one tick's snapshot: event one-shots plus the
// siren/evasion drones. Siren pitch rises as the board empties.
func (c *CuePlayer) Consume(s game.Snapshot) {
	if !c.ok {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	for _, e := range s.Events {
		switch e.Kind {
		case game.EventPelletEaten:
			f := 420.0
			if c.munchFlip {
				f = 360.0
			}
			c.munchFlip = !c.munchFlip
			c.mixer.Add(blip(f, 40*time.Millisecond, 0.10))
		case game.EventEnergizerEaten:
			c.mixer.Add(&sweep{f0: 200, f1: 600, n: sampleRate.N(200 * time.Millisecond), gain: 0.12})
		case game.EventPursuerEaten:
			c.mixer.Add(&sweep{f0: 500, f1: 1100, n: sampleRate.N(250 * time.Millisecond), gain: 0.12})
		case game.EventPlayerCaught:
			c.mixer.Add(&sweep{f0: 700, f1: 120, n: sampleRate.N(800 * time.Millisecond), gain: 0.14})
		case game.EventExtraLife:
			c.mixer.Add(blip(880, 300*time.Millisecond, 0.10))
		case game.EventLevelComplete:
			c.mixer.Add(&sweep{f0: 300, f1: 900, n: sampleRate.N(500 * time.Millisecond), gain: 0.10})
		case game.EventGameOver:
			c.mixer.Add(&sweep{f0: 400, f1: 80, n: sampleRate.N(1200 * time.Millisecond), gain: 0.12})
		}
	}

	active := s.State == game.StateActive
	evading := s.EvasionLeft > 0
	c.sirenCtrl.Paused = !active || evading
	c.evadeCtrl.Paused = !active || !evading
	if c.pelletCount > 0 {
		// Siren intensity derives from pellets eaten this board.
		frac := 1 - float64(s.PelletsRemaining)/float64(c.pelletCount)
		c.siren.freq = 180 + 160*math.Min(1, math.Max(0, frac))
	}
}
