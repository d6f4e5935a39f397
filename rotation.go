package spheregrid

import "math"

// velocityEpsilon is the per-axis speed below which momentum snaps to rest.
const velocityEpsilon = 0.01

// Rotation is the sphere's orientation and angular velocity. Angles are in
// degrees and always lie in (-180, 180]. Velocities are degrees per tick and
// never exceed the configured maximum on either axis.
type Rotation struct {
	Pitch float64 // tilt about the horizontal axis
	Yaw   float64 // spin about the vertical axis

	PitchVelocity float64
	YawVelocity   float64
}

// NormalizeAngle maps a into (-180, 180]. Non-finite input returns 0.
func NormalizeAngle(a float64) float64 {
	if !isFinite(a) {
		return 0
	}
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// clampSpeed limits v to [-max, max].
func clampSpeed(v, max float64) float64 {
	return math.Max(-max, math.Min(max, v))
}

// Apply adds clamped angle deltas and renormalizes.
func (r *Rotation) Apply(dPitch, dYaw, maxSpeed float64) {
	r.Pitch = NormalizeAngle(r.Pitch + clampSpeed(dPitch, maxSpeed))
	r.Yaw = NormalizeAngle(r.Yaw + clampSpeed(dYaw, maxSpeed))
}

// SetVelocity stores a clamped velocity.
func (r *Rotation) SetVelocity(pitch, yaw, maxSpeed float64) {
	r.PitchVelocity = clampSpeed(pitch, maxSpeed)
	r.YawVelocity = clampSpeed(yaw, maxSpeed)
}

// Resting reports whether both velocity components are exactly zero.
func (r Rotation) Resting() bool {
	return r.PitchVelocity == 0 && r.YawVelocity == 0
}

// Tick advances one frame. Auto-rotation adds yaw on every tick, dragging or
// not. Momentum applies the current velocity and then decays it, but only
// while no drag is active.
func (r *Rotation) Tick(cfg Config, dragging bool) {
	yaw := r.Yaw
	if cfg.AutoRotate {
		yaw += cfg.AutoRotateSpeed
	}

	if dragging {
		r.Yaw = NormalizeAngle(yaw)
		return
	}

	r.Pitch = NormalizeAngle(r.Pitch + clampSpeed(r.PitchVelocity, cfg.MaxRotationSpeed))
	r.Yaw = NormalizeAngle(yaw + clampSpeed(r.YawVelocity, cfg.MaxRotationSpeed))

	r.SetVelocity(r.PitchVelocity*cfg.MomentumDecay, r.YawVelocity*cfg.MomentumDecay, cfg.MaxRotationSpeed)
	if !cfg.AutoRotate &&
		math.Abs(r.PitchVelocity) < velocityEpsilon &&
		math.Abs(r.YawVelocity) < velocityEpsilon {
		r.PitchVelocity = 0
		r.YawVelocity = 0
	}
}
