package spheregrid

import "math"

// Fade zone bounds along camera-space Z, in the same units as the radius.
// Items deeper than FadeStart fade linearly and vanish at FadeEnd.
const (
	FadeStart = -10.0
	FadeEnd   = -30.0
)

const (
	zIndexBase     = 1000
	minCenterScale = 0.3
	centerFalloff  = 0.7
	minDepthBlend  = 0.5
	depthBlendBase = 0.8
	depthWeight    = 0.3
	minScale       = 0.25
)

// WorldPosition is the per-frame projection of one item. It is recomputed
// every frame and carries no identity beyond its index.
type WorldPosition struct {
	X, Y, Z     float64
	Scale       float64
	ZIndex      int
	Visible     bool
	FadeOpacity float64
}

// Project converts every position to camera space under rot and derives its
// screen attributes. radius is the effective sphere radius used to normalize
// the scale falloffs. Project is pure; the result is a fresh slice.
func Project(rot Rotation, positions []SphericalPosition, radius float64) []WorldPosition {
	out := make([]WorldPosition, len(positions))
	pitch := rot.Pitch * math.Pi / 180
	yaw := rot.Yaw * math.Pi / 180
	for i, pos := range positions {
		out[i] = projectOne(pos.cartesian().RotateY(yaw).RotateX(pitch), radius)
	}
	return out
}

// cartesian returns the point on the sphere with Y pointing at the top pole.
func (p SphericalPosition) cartesian() Vec3 {
	incl := p.Inclination * math.Pi / 180
	az := p.Azimuth * math.Pi / 180
	return Vec3{
		X: p.Radius * math.Sin(incl) * math.Cos(az),
		Y: p.Radius * math.Cos(incl),
		Z: p.Radius * math.Sin(incl) * math.Sin(az),
	}
}

func projectOne(v Vec3, radius float64) WorldPosition {
	fade := 1.0
	if v.Z <= FadeStart {
		fade = clamp((v.Z-FadeEnd)/(FadeStart-FadeEnd), 0, 1)
	}

	distRatio, depth := 0.0, 0.5
	if radius > 0 {
		distRatio = math.Min(math.Hypot(v.X, v.Y)/radius, 1)
		depth = (v.Z + radius) / (2 * radius)
	}
	centerScale := math.Max(minCenterScale, 1-distRatio*centerFalloff)
	scale := centerScale * math.Max(minDepthBlend, depthBlendBase+depth*depthWeight)

	return WorldPosition{
		X:           v.X,
		Y:           v.Y,
		Z:           v.Z,
		Scale:       math.Max(minScale, scale),
		ZIndex:      int(math.Floor(zIndexBase + v.Z + 0.5)),
		Visible:     v.Z > FadeEnd,
		FadeOpacity: fade,
	}
}

// HoverBoost returns the paint multiplier for a hovered item of the given
// scale. Items at or below unit scale grow by hoverScale; larger items grow
// only until their absolute scale reaches hoverScale.
func HoverBoost(scale, hoverScale float64) float64 {
	return math.Min(hoverScale, hoverScale/scale)
}
