package spheregrid

import "time"

// debugStats holds per-frame timing. Only populated when Config.Debug is set.
type debugStats struct {
	tickTime    time.Duration
	projectTime time.Duration
	projected   int
	visible     int
}

// debugLog emits the latest stats at debug level.
func (e *Engine) debugLog() {
	if !e.cfg.Debug {
		return
	}
	Logger().Debug("spheregrid: frame",
		"tick", e.ticks,
		"tickTime", e.stats.tickTime,
		"projectTime", e.stats.projectTime,
		"projected", e.stats.projected,
		"visible", e.stats.visible,
		"pitch", e.rot.Pitch,
		"yaw", e.rot.Yaw,
	)
}
