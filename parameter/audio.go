package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume [0, 1]
	AudioMasterVolume = 0.5
)

// Burst Pop Sound
const (
	PopSoundDuration = 90 * time.Millisecond
	PopSoundAttack   = 3 * time.Millisecond
	PopSoundRelease  = 60 * time.Millisecond
	PopSoundFreq     = 660.0
	PopSoundFreqJump = 1.5 // Harmonic ratio of the overtone
)

// Attract Toggle Chime
const (
	ChimeSoundDuration = 160 * time.Millisecond
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeSoundRelease  = 100 * time.Millisecond
	ChimeFreqOn        = 880.0
	ChimeFreqOff       = 440.0
)
