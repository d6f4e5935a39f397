package spheregrid

// Config holds the immutable parameters of one engine instance. Values are
// not validated: a degenerate configuration yields degenerate output (for
// example MomentumDecay >= 1 spins forever) but never faults.
type Config struct {
	ContainerSize    float64 // side of the square container, pixels
	SphereRadius     float64 // 0 derives ContainerSize/2
	DragSensitivity  float64 // degrees per pixel of drag
	MomentumDecay    float64 // multiplicative velocity damping per tick
	MaxRotationSpeed float64 // degrees per tick, applied to each axis
	BaseItemScale    float64 // item size as a fraction of ContainerSize
	HoverScale       float64 // paint-scale ceiling for the hovered item
	Perspective      float64 // passed through to the renderer as a depth cue
	AutoRotate       bool
	AutoRotateSpeed  float64 // degrees of yaw per tick

	InitialPitch float64
	InitialYaw   float64

	// FrameDuration is the nominal seconds per tick. It only paces the hover
	// transition; rotation steps are fixed per tick.
	FrameDuration float64

	// Seed seeds layout jitter. Zero picks a time-based seed.
	Seed uint64

	// Debug enables per-frame stats at debug log level.
	Debug bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ContainerSize:    400,
		SphereRadius:     200,
		DragSensitivity:  0.5,
		MomentumDecay:    0.95,
		MaxRotationSpeed: 5,
		BaseItemScale:    0.12,
		HoverScale:       1.2,
		Perspective:      1000,
		AutoRotate:       false,
		AutoRotateSpeed:  0.3,
		InitialPitch:     15,
		InitialYaw:       15,
		FrameDuration:    1.0 / 60,
	}
}

// Radius returns the effective sphere radius.
func (c Config) Radius() float64 {
	if c.SphereRadius == 0 {
		return c.ContainerSize * 0.5
	}
	return c.SphereRadius
}

// BaseItemSize returns the unscaled item size in pixels.
func (c Config) BaseItemSize() float64 {
	return c.ContainerSize * c.BaseItemScale
}

// Center returns the container center in container-local coordinates.
func (c Config) Center() Vec2 {
	return Vec2{X: c.ContainerSize / 2, Y: c.ContainerSize / 2}
}
