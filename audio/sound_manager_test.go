package audio

import (
	"testing"
	"time"
)

// newTestManager returns a manager that mixes without opening the speaker
func newTestManager(start time.Time) (*SoundManager, *time.Time) {
	sm := NewSoundManager(DefaultAudioConfig())
	sm.lock, sm.unlock = func() {}, func() {}
	clock := start
	sm.now = func() time.Time { return clock }
	sm.initialized = true
	return sm, &clock
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundPop)
	sm.PlayBurst(18)
	sm.PlayAttract(true)
	sm.Cleanup()
	if sm.Active() != 0 {
		t.Errorf("uninitialized manager queued %d streamers", sm.Active())
	}
}

func TestSoundManagerDisabledSkipsSpeaker(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize with audio disabled: %v", err)
	}
	if sm.initialized {
		t.Error("disabled manager initialized the speaker")
	}
}

func TestSoundManagerPlay(t *testing.T) {
	sm, _ := newTestManager(time.Unix(0, 0))
	sm.Play(SoundChimeOn)
	sm.PlayAttract(false)
	if got := sm.Active(); got != 2 {
		t.Errorf("active = %d, want 2", got)
	}
	sm.Cleanup()
	if got := sm.Active(); got != 0 {
		t.Errorf("active after cleanup = %d", got)
	}
}

func TestSoundManagerBurstRateLimit(t *testing.T) {
	sm, clock := newTestManager(time.Unix(10, 0))

	sm.PlayBurst(18)
	sm.PlayBurst(18)
	if got := sm.Active(); got != 1 {
		t.Fatalf("active = %d after two immediate pops, want 1", got)
	}

	*clock = clock.Add(popInterval)
	sm.PlayBurst(36)
	if got := sm.Active(); got != 2 {
		t.Errorf("active = %d after interval, want 2", got)
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm, _ := newTestManager(time.Unix(0, 0))
	if !sm.ToggleMuted() || !sm.Muted() {
		t.Fatal("ToggleMuted did not mute")
	}
	sm.Play(SoundPop)
	if got := sm.Active(); got != 0 {
		t.Errorf("muted manager queued %d", got)
	}
	sm.SetMuted(false)
	sm.Play(SoundPop)
	if got := sm.Active(); got != 1 {
		t.Errorf("active = %d after unmute", got)
	}
}
