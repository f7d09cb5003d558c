package telemetry

// Collector accumulates bounce events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	bouncesX int
	bouncesY int
}

// NewCollector creates a new stats collector.
// windowTicks: how many ticks each stats window lasts
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int32, dt float32) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: windowTicks,
		dt:                  dt,
	}
}

// RecordBounces adds direction flips from one tick.
func (c *Collector) RecordBounces(x, y int) {
	c.bouncesX += x
	c.bouncesY += y
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the current box and camera state and
// resets counters for the next window.
func (c *Collector) Flush(currentTick int32, boxes []BoxSample, cam CameraSample) WindowStats {
	xs := make([]float64, len(boxes))
	ys := make([]float64, len(boxes))
	for i, b := range boxes {
		xs[i] = float64(b.X)
		ys[i] = float64(b.Y)
	}
	meanX, stdX := ComputeSpread(xs)
	meanY, stdY := ComputeSpread(ys)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),
		BoxCount:        len(boxes),
		BouncesX:        c.bouncesX,
		BouncesY:        c.bouncesY,
		MeanX:           meanX,
		MeanY:           meanY,
		StdX:            stdX,
		StdY:            stdY,
		CameraX:         cam.X,
		CameraY:         cam.Y,
		CameraScale:     cam.Scale,
	}

	c.windowStartTick = currentTick
	c.bouncesX = 0
	c.bouncesY = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
