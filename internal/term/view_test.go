package term

import (
	"testing"

	"liquid-sim/internal/render"
	"liquid-sim/internal/sims/liquid"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingScreen is a minimal tcell.Screen that keeps painted cells.
type recordingScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]cell
	shows         int
	syncs         int
}

type cell struct {
	ch    rune
	style tcell.Style
}

func newRecordingScreen(w, h int) *recordingScreen {
	return &recordingScreen{width: w, height: h, cells: map[[2]int]cell{}}
}

func (s *recordingScreen) Size() (int, int) { return s.width, s.height }
func (s *recordingScreen) Show()            { s.shows++ }
func (s *recordingScreen) Sync()            { s.syncs++ }
func (s *recordingScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = cell{ch: mainc, style: style}
}

func newSim(t *testing.T, w, h int) *liquid.Liquid {
	t.Helper()
	sim, err := liquid.New(w, h)
	require.NoError(t, err)
	return sim
}

func TestDrawPaintsGridAndStatus(t *testing.T) {
	sim := newSim(t, 8, 8)
	screen := newRecordingScreen(4, 5)
	v := NewView(screen, sim, render.ModePressure, 0)

	v.Draw()
	assert.Equal(t, 1, screen.shows)
	assert.Len(t, screen.cells, 4*5)

	// Terminal cell (2,2) samples grid cell (4,4), the hotspot.
	_, bg, _ := screen.cells[[2]int{2, 2}].style.Decompose()
	r, g, b := render.CellColor(24.5, sim.Vectors()[0], render.ModePressure)
	assert.Equal(t, tcell.NewRGBColor(int32(r), int32(g), int32(b)), bg)

	status := []rune{}
	for x := 0; x < 4; x++ {
		status = append(status, screen.cells[[2]int{x, 4}].ch)
	}
	assert.Equal(t, "tick", string(status))
}

func TestHandleEvent(t *testing.T) {
	sim := newSim(t, 6, 6)
	screen := newRecordingScreen(10, 10)
	v := NewView(screen, sim, render.ModePressure, 0)

	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	assert.True(t, v.HandleEvent(key(' ')))
	assert.True(t, v.Paused())
	assert.Equal(t, 0, v.Advance(3), "paused views do not tick")

	assert.True(t, v.HandleEvent(key('n')))
	assert.Equal(t, 1, v.Advance(3), "single step while paused")
	assert.Equal(t, 1, sim.Tick())
	assert.Equal(t, 0, v.Advance(3))

	assert.True(t, v.HandleEvent(key('m')))
	assert.Equal(t, render.ModeFlow, v.Mode())

	assert.True(t, v.HandleEvent(key('r')))
	assert.Equal(t, 0, sim.Tick())

	assert.True(t, v.HandleEvent(key(' ')))
	assert.Equal(t, 2, v.Advance(2))
	assert.Equal(t, 2, sim.Tick())

	assert.True(t, v.HandleEvent(tcell.NewEventResize(20, 10)))
	assert.Equal(t, 1, screen.syncs)

	assert.False(t, v.HandleEvent(key('q')))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestStatusLine(t *testing.T) {
	sim := newSim(t, 3, 3)
	v := NewView(newRecordingScreen(1, 1), sim, render.ModeHue, 0)
	sim.Step()
	assert.Contains(t, v.StatusLine(), "tick 1 total ")
	assert.Contains(t, v.StatusLine(), "mode hue")
}
