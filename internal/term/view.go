// Package term renders a lattice simulation into a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"liquid-sim/internal/core"
	"liquid-sim/internal/render"

	"github.com/gdamore/tcell/v2"
)

// FieldSim is a simulation whose pressure and flow can be painted.
type FieldSim interface {
	core.Sim
	core.FieldSource
}

// View paints a downsampled lattice into a tcell screen, one grid sample per
// terminal cell, with a status line on the last row.
type View struct {
	screen tcell.Screen
	sim    FieldSim
	mode   render.Mode
	seed   int64

	paused   bool
	tickOnce bool
}

// NewView constructs a View. The screen must already be initialised.
func NewView(screen tcell.Screen, sim FieldSim, mode render.Mode, seed int64) *View {
	return &View{screen: screen, sim: sim, mode: mode, seed: seed}
}

// Mode returns the active color mode.
func (v *View) Mode() render.Mode { return v.mode }

// Paused reports whether ticking is suspended.
func (v *View) Paused() bool { return v.paused }

// HandleEvent applies a key or resize event. It returns false when the viewer
// should exit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.tickOnce = true
			case 'm':
				v.mode = v.mode.Next()
			case 'r':
				v.sim.Reset(v.seed)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Advance runs up to n ticks unless paused; a pending single step runs once.
func (v *View) Advance(n int) int {
	if v.paused {
		if !v.tickOnce {
			return 0
		}
		n = 1
	}
	v.tickOnce = false
	for i := 0; i < n; i++ {
		v.sim.Step()
	}
	return n
}

// Draw paints the lattice and status line and shows the frame.
func (v *View) Draw() {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	gridRows := rows - 1
	size := v.sim.Size()
	pressure := v.sim.Scalars()
	flow := v.sim.Vectors()
	if gridRows > 0 {
		for cy := 0; cy < gridRows; cy++ {
			gy := cy * size.H / gridRows
			for cx := 0; cx < cols; cx++ {
				gx := cx * size.W / cols
				idx := gy*size.W + gx
				r, g, b := render.CellColor(pressure[idx], flow[idx], v.mode)
				style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
				v.screen.SetContent(cx, cy, ' ', nil, style)
			}
		}
	}
	v.drawStatus(rows-1, cols)
	v.screen.Show()
}

func (v *View) drawStatus(row, cols int) {
	status := v.StatusLine()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(status)
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		v.screen.SetContent(x, row, ch, nil, style)
	}
}

// StatusLine describes the tick, pressure total and controls.
func (v *View) StatusLine() string {
	total := ""
	if d, ok := v.sim.(core.Diagnostics); ok {
		total = fmt.Sprintf(" total %.1f", d.Total())
	}
	state := ""
	if v.paused {
		state = " paused"
	}
	return fmt.Sprintf("tick %d%s mode %s%s  [space] pause [n] step [m] mode [r] reset [q] quit",
		v.sim.Tick(), total, v.mode, state)
}

// Run polls events and ticks the simulation at tps until ctx is done or the
// user quits. The screen is left for the caller to finalise.
func (v *View) Run(ctx context.Context, tps int) error {
	pacer := core.NewFixedStep(tps)
	ticker := time.NewTicker(pacer.Interval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			if v.Advance(pacer.Due(maxCatchUp)) > 0 {
				v.Draw()
			}
		}
	}
}

const maxCatchUp = 4
