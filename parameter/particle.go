package parameter

// Ambient Pool
const (
	// DensityDivisor is the viewport width (px) per ambient particle
	DensityDivisor = 20.0

	// MaxParticles caps the ambient pool regardless of viewport width
	MaxParticles = 80

	// MaxParticlesLimit bounds MaxParticles accepted from configuration
	// Connection rendering is all-pairs, 400 particles is ~80k pair checks per frame
	MaxParticlesLimit = 400

	// TrailLength is the number of past positions kept per ambient particle
	TrailLength = 8

	// TrailLengthLimit is the fixed ring capacity backing every trail
	TrailLengthLimit = 32
)

// Ambient Particle Spawn Ranges
const (
	// ParticleSizeMin/Max bound the core radius (px)
	ParticleSizeMin = 2.0
	ParticleSizeMax = 5.0

	// ParticleDriftMax is the per-axis drift speed bound (px/frame), drift is uniform in [-Max/2, Max/2)
	ParticleDriftMax = 0.3

	// ParticleOpacityMin/Max bound the base alpha
	ParticleOpacityMin = 0.4
	ParticleOpacityMax = 0.8

	// ParticleHueSpread is the width of the initial hue offset range centred on the base hue (degrees)
	ParticleHueSpread = 60.0

	// ParticleHueLimit wraps the drifting hue offset into [-Limit, Limit]
	ParticleHueLimit = 60.0

	// ParticleHueSpeedMax is the per-frame hue drift bound, uniform in [-Max/2, Max/2)
	ParticleHueSpeedMax = 0.5

	// ParticlePulseSpeedMin/Max bound the breathing phase increment (rad/frame)
	ParticlePulseSpeedMin = 0.02
	ParticlePulseSpeedMax = 0.04
)

// Pointer Interaction
const (
	// InteractionRadius is the pointer influence distance (px)
	InteractionRadius = 150.0

	// OrbitRadius is the outer bound of the orbit band (px)
	OrbitRadius = 100.0

	// OrbitInnerRadius is the inner bound of the orbit band, closer particles are repelled (px)
	OrbitInnerRadius = 20.0

	// AttractGain scales the shift-held pull toward the pointer
	AttractGain = 2.0

	// RepelGain scales the push away from the pointer
	RepelGain = 3.0

	// OrbitGain scales the tangential component inside the orbit band
	OrbitGain = 2.0

	// OrbitPull scales the small radial pull inside the orbit band
	OrbitPull = 0.3

	// GlowBoost is the extra glow/size factor at zero distance from the pointer
	GlowBoost = 0.8

	// PointerSentinel is the off-canvas pointer coordinate used while the pointer is absent
	PointerSentinel = -1000.0
)

// Burst Particles
const (
	// BurstCount is the number of particles spawned per click
	BurstCount = 18

	// BurstJitter is the upper bound of the random angle added to each evenly spaced burst direction (rad)
	BurstJitter = 0.5

	// BurstSpeedMin/Max bound the initial speed (px/frame)
	BurstSpeedMin = 3.0
	BurstSpeedMax = 7.0

	// BurstLifeMin/Max bound the lifetime (frames)
	BurstLifeMin = 40
	BurstLifeMax = 80

	// BurstDamping is the per-frame velocity multiplier
	BurstDamping = 0.96

	// BurstSizeMin/Max bound the core radius (px)
	BurstSizeMin = 2.0
	BurstSizeMax = 6.0
)

// Connections
const (
	// ConnectionDistance is the maximum pair distance that draws a line (px)
	ConnectionDistance = 180.0

	// ConnectionOpacity is the line alpha at zero distance
	ConnectionOpacity = 0.25

	// ConnectionWidth is the stroke width (px)
	ConnectionWidth = 1.0
)
