package telemetry

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/textboxes/systems"
)

func TestComputeSpread(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{name: "empty", values: nil, wantMean: 0, wantStd: 0},
		{name: "single", values: []float64{5}, wantMean: 5, wantStd: 0},
		{name: "pair", values: []float64{2, 4}, wantMean: 3, wantStd: math.Sqrt2},
		{name: "constant", values: []float64{7, 7, 7}, wantMean: 7, wantStd: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mean, std := ComputeSpread(tc.values)
			if math.Abs(mean-tc.wantMean) > 1e-9 || math.Abs(std-tc.wantStd) > 1e-9 {
				t.Errorf("expected (%v, %v), got (%v, %v)", tc.wantMean, tc.wantStd, mean, std)
			}
		})
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(60, 0.5)

	if c.ShouldFlush(59) {
		t.Error("should not flush before the window ends")
	}
	if !c.ShouldFlush(60) {
		t.Error("should flush at the window end")
	}

	c.RecordBounces(1, 0)
	c.RecordBounces(2, 3)

	boxes := []BoxSample{{X: 10, Y: 100}, {X: 30, Y: 100}}
	stats := c.Flush(60, boxes, CameraSample{X: 1, Y: 2, Scale: 0.5})

	if stats.BouncesX != 3 || stats.BouncesY != 3 {
		t.Errorf("expected 3/3 bounces, got %d/%d", stats.BouncesX, stats.BouncesY)
	}
	if stats.BoxCount != 2 || stats.MeanX != 20 || stats.MeanY != 100 || stats.StdY != 0 {
		t.Errorf("unexpected spread %+v", stats)
	}
	if stats.SimTimeSec != 30 {
		t.Errorf("expected 30s sim time, got %v", stats.SimTimeSec)
	}
	if stats.CameraScale != 0.5 {
		t.Errorf("expected camera scale 0.5, got %v", stats.CameraScale)
	}

	// Next window starts fresh.
	if c.ShouldFlush(61) {
		t.Error("window should restart after flush")
	}
	next := c.Flush(120, nil, CameraSample{})
	if next.WindowStartTick != 60 || next.BouncesX != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 1)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("expected window clamped to 1 tick, got %d", c.WindowDurationTicks())
	}
}

func TestPerfCollectorRecordsPasses(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.Record(systems.PassMotion, 300*time.Microsecond)
		pc.Record(systems.PassReflect, 100*time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhaseAvg[systems.PassMotion] != 300*time.Microsecond {
		t.Errorf("unexpected motion avg %v", stats.PhaseAvg[systems.PassMotion])
	}
	if names := stats.SortedPhases(); len(names) != 2 || names[0] != systems.PassMotion {
		t.Errorf("expected motion first, got %v", names)
	}
	if stats.ToCSV(5).WindowEnd != 5 {
		t.Error("expected window end in CSV row")
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(3)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.Record(systems.PassConfine, time.Duration(i)*time.Millisecond)
		pc.EndTick()
	}

	// Only the last three ticks (7, 8, 9 ms) remain.
	if got := pc.Stats().PhaseAvg[systems.PassConfine]; got != 8*time.Millisecond {
		t.Errorf("expected 8ms average over window, got %v", got)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.PhaseAvg == nil || len(stats.PhaseAvg) != 0 {
		t.Error("expected empty, non-nil phase map")
	}
}
