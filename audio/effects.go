package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/particle-field/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePopSound generates a short bubble pop, pitch scales both partials
func CreatePopSound(cfg *AudioConfig, pitch float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	if pitch <= 0 {
		pitch = 1
	}

	fund := NewOscillator(parameter.PopSoundFreq*pitch, parameter.PopSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.PopSoundDuration, parameter.PopSoundAttack, parameter.PopSoundRelease, rate)

	over := NewOscillator(parameter.PopSoundFreq*pitch*parameter.PopSoundFreqJump, parameter.PopSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.PopSoundDuration, parameter.PopSoundAttack, parameter.PopSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.Volume(SoundPop))
}

// CreateChimeSound generates a two-note chime, rising when on and falling when off
func CreateChimeSound(cfg *AudioConfig, on bool) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	first, second := parameter.ChimeFreqOff, parameter.ChimeFreqOn
	kind := SoundChimeOn
	if !on {
		first, second = second, first
		kind = SoundChimeOff
	}

	half := parameter.ChimeSoundDuration / 2
	n1 := NewEnvelope(NewOscillator(first, half, WaveSquare, rate), half, parameter.ChimeSoundAttack, half/2, rate)
	n2 := NewEnvelope(NewOscillator(second, half, WaveSquare, rate), half, parameter.ChimeSoundAttack, parameter.ChimeSoundRelease/2, rate)

	return newVolume(beep.Seq(n1, n2), cfg.Volume(kind))
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPop:
		return CreatePopSound(cfg, 1)
	case SoundChimeOn:
		return CreateChimeSound(cfg, true)
	case SoundChimeOff:
		return CreateChimeSound(cfg, false)
	default:
		return nil
	}
}
