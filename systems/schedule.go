package systems

import "time"

// Frame carries the per-tick inputs every pass receives.
type Frame struct {
	DT       float32 // seconds since the previous tick
	Viewport Viewport
}

// Pass is one named step of a tick.
type Pass struct {
	ID  string
	Run func(Frame)
}

// Recorder receives per-pass timings.
type Recorder interface {
	Record(name string, d time.Duration)
}

// Schedule runs its passes once per tick in registration order.
// Passes never overlap; each sees the state left by the one before it.
type Schedule struct {
	passes []Pass
	perf   Recorder
}

// NewSchedule creates an empty schedule. perf may be nil.
func NewSchedule(perf Recorder) *Schedule {
	return &Schedule{perf: perf}
}

// Add appends a pass to the end of the schedule.
func (s *Schedule) Add(id string, run func(Frame)) {
	s.passes = append(s.passes, Pass{ID: id, Run: run})
}

// Run executes one tick.
func (s *Schedule) Run(f Frame) {
	for _, p := range s.passes {
		if s.perf == nil {
			p.Run(f)
			continue
		}
		start := time.Now()
		p.Run(f)
		s.perf.Record(p.ID, time.Since(start))
	}
}

// IDs returns the pass IDs in execution order.
func (s *Schedule) IDs() []string {
	ids := make([]string, len(s.passes))
	for i, p := range s.passes {
		ids[i] = p.ID
	}
	return ids
}
