package input

// Intent is a host-level action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota

	IntentQuit          // q, Esc, Ctrl+C
	IntentAttractLock   // a, latches attract mode since terminals report no shift release
	IntentCycleTheme    // t
	IntentToggleMute    // m
	IntentToggleStats   // s
	IntentToggleLinks   // l
	IntentClearBursts   // c
	IntentBurstAtCursor // space, click at the last pointer position
)

// intentNames maps canonical names to intents, used by the config loader
var intentNames = map[string]Intent{
	"none":            IntentNone, // unbind sentinel
	"quit":            IntentQuit,
	"attract_lock":    IntentAttractLock,
	"cycle_theme":     IntentCycleTheme,
	"toggle_mute":     IntentToggleMute,
	"toggle_stats":    IntentToggleStats,
	"toggle_links":    IntentToggleLinks,
	"clear_bursts":    IntentClearBursts,
	"burst_at_cursor": IntentBurstAtCursor,
}

// IntentByName resolves a config action name
func IntentByName(name string) (Intent, bool) {
	i, ok := intentNames[name]
	return i, ok
}

func (i Intent) String() string {
	for name, v := range intentNames {
		if v == i {
			return name
		}
	}
	return "unknown"
}
