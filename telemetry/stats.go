package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BoxSample is one box's state at one tick; one row of boxes.csv.
type BoxSample struct {
	Tick    int32   `csv:"tick"`
	Box     int     `csv:"box"`
	Label   string  `csv:"label"`
	X       float32 `csv:"x"`
	Y       float32 `csv:"y"`
	DirX    float64 `csv:"dir_x"`
	DirY    float64 `csv:"dir_y"`
	Hovered bool    `csv:"hovered"`
}

// CameraSample is the camera state at one tick.
type CameraSample struct {
	X, Y  float32
	Scale float64
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	BoxCount int `csv:"boxes"`

	// Direction flips during window
	BouncesX int `csv:"bounces_x"`
	BouncesY int `csv:"bounces_y"`

	// Box spread at window end
	MeanX float64 `csv:"mean_x"`
	MeanY float64 `csv:"mean_y"`
	StdX  float64 `csv:"std_x"`
	StdY  float64 `csv:"std_y"`

	CameraX     float32 `csv:"camera_x"`
	CameraY     float32 `csv:"camera_y"`
	CameraScale float64 `csv:"camera_scale"`
}

// ComputeSpread returns the mean and sample standard deviation of values.
// Fewer than two values have no spread.
func ComputeSpread(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("boxes", s.BoxCount),
		slog.Int("bounces_x", s.BouncesX),
		slog.Int("bounces_y", s.BouncesY),
		slog.Float64("mean_x", s.MeanX),
		slog.Float64("mean_y", s.MeanY),
		slog.Float64("std_x", s.StdX),
		slog.Float64("std_y", s.StdY),
		slog.Float64("camera_x", float64(s.CameraX)),
		slog.Float64("camera_y", float64(s.CameraY)),
		slog.Float64("camera_scale", s.CameraScale),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
