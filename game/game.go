package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/textboxes/camera"
	"github.com/pthm-cable/textboxes/config"
	"github.com/pthm-cable/textboxes/renderer"
	"github.com/pthm-cable/textboxes/sim"
	"github.com/pthm-cable/textboxes/systems"
	"github.com/pthm-cable/textboxes/telemetry"
	"github.com/pthm-cable/textboxes/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game drives the simulation from the window: input, frame time, viewport
// size, drawing and trace output.
type Game struct {
	cfg *config.Config
	sim *sim.Sim

	// Telemetry
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool

	// UI (nil when headless)
	hud        *ui.HUD
	perfPanel  *ui.PerfPanel
	debugPanel *ui.DebugPanel

	// Renderers (nil when headless)
	boxRenderer *renderer.BoxRenderer

	// State
	headless       bool
	paused         bool
	stepsPerUpdate int
	showPerf       bool
	showDebug      bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. In graphical mode the window must
// already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		cfg:            cfg,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
	}

	if opts.Headless {
		g.screenWidth = cfg.Derived.ScreenW32
		g.screenHeight = cfg.Derived.ScreenH32
	} else {
		g.screenWidth = float32(rl.GetScreenWidth())
		g.screenHeight = float32(rl.GetScreenHeight())
	}

	g.sim = sim.New(cfg, opts.Seed, g.viewport())
	g.collector = telemetry.NewCollector(int32(cfg.Telemetry.LogInterval), cfg.Derived.DT32)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if !opts.Headless {
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-270, 10, systems.NewSystemRegistry())
		g.debugPanel = ui.NewDebugPanel(10, 100)
		g.boxRenderer = renderer.NewBoxRenderer(
			cfg.Boxes.FontPath, int32(cfg.Boxes.FontSize),
			g.screenWidth, g.screenHeight,
		)
		g.boxRenderer.Init()
	}

	slog.Info("spawned text boxes",
		"count", g.sim.BoxCount(),
		"viewport_w", g.screenWidth,
		"viewport_h", g.screenHeight,
		"seed", opts.Seed,
	)

	return g
}

// viewport returns the current window size as the bounds provider value.
func (g *Game) viewport() systems.Viewport {
	return systems.Viewport{Width: g.screenWidth, Height: g.screenHeight}
}

// Update polls input and runs stepsPerUpdate ticks using the frame time.
func (g *Game) Update() {
	in := g.handleInput()

	if g.paused {
		return
	}

	dt := rl.GetFrameTime()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(in, dt)
	}
}

// UpdateHeadless runs stepsPerUpdate ticks with the fixed physics step and no input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(camera.Input{}, g.cfg.Derived.DT32)
	}
}

// step runs a single tick and feeds telemetry.
func (g *Game) step(in camera.Input, dt float32) {
	g.sim.Step(in, dt, g.viewport())
	g.recordTelemetry()
}

// Unload releases all resources.
func (g *Game) Unload() {
	if g.boxRenderer != nil {
		g.boxRenderer.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.sim.Tick()
}
