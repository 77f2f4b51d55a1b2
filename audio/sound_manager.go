package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particle-field/parameter"
)

// popInterval is the minimum spacing between burst pops
const popInterval = 40 * time.Millisecond

// SoundManager plays short cues through one mixer on the speaker
// All methods are safe to call before Initialize and after Cleanup; they do nothing then
type SoundManager struct {
	mu          sync.Mutex
	cfg         AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	lastPop     time.Time

	// lock guards mixer mutation against the speaker goroutine
	lock   func()
	unlock func()
	now    func() time.Time
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		now:    time.Now,
	}
}

// Initialize opens the speaker, a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()

	// beep has no speaker teardown that allows re-Init, clearing the mixer silences it
	sm.initialized = false
}

// SetMuted silences or restores all cues
func (sm *SoundManager) SetMuted(m bool) {
	sm.muted.Store(m)
}

// ToggleMuted flips the mute state and returns the new one
func (sm *SoundManager) ToggleMuted() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Active returns the number of streamers still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}

// Play queues one cue
func (sm *SoundManager) Play(s SoundType) {
	sm.play(GetSoundEffect(s, &sm.cfg))
}

// PlayBurst pops for a click burst of n particles, rate limited so rapid clicks don't stack
func (sm *SoundManager) PlayBurst(n int) {
	sm.mu.Lock()
	now := sm.now()
	if now.Sub(sm.lastPop) < popInterval {
		sm.mu.Unlock()
		return
	}
	sm.lastPop = now
	sm.mu.Unlock()

	// Larger bursts pop lower
	pitch := 1.0
	if n > parameter.BurstCount {
		pitch = float64(parameter.BurstCount) / float64(n)
	}
	sm.play(CreatePopSound(&sm.cfg, pitch))
}

// PlayAttract chimes when the attract lock changes
func (sm *SoundManager) PlayAttract(on bool) {
	sm.play(CreateChimeSound(&sm.cfg, on))
}

func (sm *SoundManager) play(s beep.Streamer) {
	if s == nil || sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}
