package theme

import (
	"github.com/lixenwraith/particle-field/parameter"
)

// DefaultPresets returns the site's dark and light primaries
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "dark", Primary: MustParse(parameter.ThemeDarkPrimary)},
		{Name: "light", Primary: MustParse(parameter.ThemeLightPrimary)},
	}
}
