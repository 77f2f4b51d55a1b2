package parameter

// Terminal Raster
const (
	// CellPixelWidth/Height is the virtual pixel size of one terminal cell
	// Simulation runs in virtual pixels so that field constants keep their browser scale
	CellPixelWidth  = 8
	CellPixelHeight = 16

	// SubPixelsPerCell is the number of vertical sub-pixels packed in a cell via half-block glyphs
	SubPixelsPerCell = 2
)

// Particle Colors (HSL saturation/lightness, hue comes from the theme)
const (
	TrailSaturation = 0.70
	TrailLightness  = 0.60

	GlowInnerSaturation = 0.80
	GlowInnerLightness  = 0.65
	GlowMidSaturation   = 0.70
	GlowMidLightness    = 0.55
	GlowOuterSaturation = 0.60
	GlowOuterLightness  = 0.50

	CoreSaturation = 0.85
	CoreLightness  = 0.70

	BurstGlowInnerSaturation = 0.90
	BurstGlowInnerLightness  = 0.70
	BurstGlowMidSaturation   = 0.80
	BurstGlowMidLightness    = 0.60
	BurstGlowOuterSaturation = 0.70
	BurstGlowOuterLightness  = 0.50

	BurstCoreSaturation = 0.90
	BurstCoreLightness  = 0.75

	LineSaturation = 0.70
	LineLightness  = 0.60
)

// Render Scale Factors
const (
	// TrailOpacityScale/TrailSizeScale shape the newest trail point relative to the particle
	TrailOpacityScale = 0.3
	TrailSizeScale    = 0.8

	// GlowRadiusScale is the ambient glow radius relative to the current core size
	GlowRadiusScale = 3.0

	// BurstGlowRadiusScale is the burst glow radius relative to the burst core size
	BurstGlowRadiusScale = 4.0

	// PulseBase/PulseAmplitude define the breathing factor 0.8 ± 0.3
	PulseBase      = 0.8
	PulseAmplitude = 0.3
)
