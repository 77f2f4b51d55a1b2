package parameter

// Theme Presets (primary colors of the site themes)
const (
	ThemeDarkPrimary  = "#7C3AED"
	ThemeLightPrimary = "#4A9B84"

	// ThemeDefaultPrimary is the CSS-style HSL triple used when no source is configured
	ThemeDefaultPrimary = "262 83% 58%"
)
