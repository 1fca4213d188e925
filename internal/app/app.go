//go:build ebiten

package app

import (
	"fmt"
	"time"

	"liquid-sim/internal/core"
	"liquid-sim/internal/render"
	"liquid-sim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fieldSim interface {
	core.Sim
	core.FieldSource
}

// Game adapts a lattice simulation to the ebiten.Game interface.
type Game struct {
	sim     fieldSim
	painter *render.GridPainter
	hud     *ui.HUD

	mode     render.Mode
	scale    int
	panel    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) (*Game, error) {
	fs, ok := sim.(fieldSim)
	if !ok {
		return nil, fmt.Errorf("sim %q does not expose pressure/flow fields", sim.Name())
	}
	mode, err := cfg.RenderMode()
	if err != nil {
		return nil, err
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	panel := max(cfg.Panel, 0)
	size := sim.Size()
	g := &Game{
		sim:     fs,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, panel),
		mode:    mode,
		scale:   scale,
		panel:   panel,
		seed:    cfg.Seed,
	}
	g.hud.SetStatus("mode " + string(mode))
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.hud.ResetBaseline()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mode = g.mode.Next()
		g.hud.SetStatus("mode " + string(g.mode))
	}

	g.hud.Update(g.sim.Size().W * g.scale)

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.mode, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.panel, s.H * g.scale
}
