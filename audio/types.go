package audio

// SoundType represents the sound cues of the field
type SoundType int

const (
	SoundPop      SoundType = iota // Click burst
	SoundChimeOn                   // Attract lock engaged
	SoundChimeOff                  // Attract lock released
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundPop:      "pop",
	SoundChimeOn:  "chime_on",
	SoundChimeOff: "chime_off",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType maps a config key to a SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
