package game

import "log/slog"

// recordTelemetry feeds the tick just run into the collector and the trace files.
func (g *Game) recordTelemetry() {
	g.collector.RecordBounces(g.sim.Flips())

	tick := g.sim.Tick()
	if g.outputManager != nil && tick%int32(g.cfg.Telemetry.SampleInterval) == 0 {
		if err := g.outputManager.WriteBoxes(g.sim.Samples()); err != nil {
			slog.Error("failed to write boxes", "error", err)
		}
	}

	g.flushTelemetry()
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	tick := g.sim.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.sim.Samples(), g.sim.CameraSample())
	perfStats := g.sim.Perf().Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
