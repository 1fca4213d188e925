package liquid

import (
	"testing"

	"liquid-sim/internal/core"
)

func numberedPressure(t *testing.T, w, h int) *core.Grid[float32] {
	t.Helper()
	g, err := core.NewGrid[float32](w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g.Cells() {
		g.Cells()[i] = float32(i + 1)
	}
	return g
}

func TestSamplePressureClampsToCenter(t *testing.T) {
	g := numberedPressure(t, 3, 3)

	cases := []struct {
		name string
		x, y int
		off  Offset
		want float32
	}{
		{"in bounds", 1, 1, Offset{1, 1}, 9},
		{"center", 1, 1, Center, 5},
		{"left edge", 0, 1, Offset{-1, 0}, 4},
		{"top edge", 1, 0, Offset{0, -1}, 2},
		{"right edge", 2, 1, Offset{1, 0}, 6},
		{"bottom edge", 1, 2, Offset{0, 1}, 8},
		{"top-left corner diagonal", 0, 0, Offset{-1, -1}, 1},
		{"top-left corner axis", 0, 0, Offset{0, -1}, 1},
		{"bottom-right corner diagonal", 2, 2, Offset{1, 1}, 9},
		{"corner diagonal partially in range", 2, 0, Offset{1, 1}, 3},
	}
	for _, tc := range cases {
		if got := SamplePressure(g, tc.x, tc.y, tc.off); got != tc.want {
			t.Fatalf("%s: SamplePressure(%d,%d,%v)=%v, expected %v", tc.name, tc.x, tc.y, tc.off, got, tc.want)
		}
	}
}

func TestSamplePressureNonSquareGrid(t *testing.T) {
	g := numberedPressure(t, 4, 2)
	// (3,1) is the last cell; its right and lower neighbors are out of range.
	if got := SamplePressure(g, 3, 1, Offset{1, 0}); got != 8 {
		t.Fatalf("expected clamp to 8, got %v", got)
	}
	if got := SamplePressure(g, 3, 0, Offset{0, 1}); got != 8 {
		t.Fatalf("expected neighbor 8, got %v", got)
	}
	if got := SamplePressure(g, 3, 0, Offset{-1, 1}); got != 7 {
		t.Fatalf("expected diagonal neighbor 7, got %v", got)
	}
}

func TestSampleFlowClampsToZero(t *testing.T) {
	g, err := core.NewGrid[core.Vec2](3, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(core.Vec2{X: 3, Y: -4})

	for _, off := range Offsets {
		got := SampleFlow(g, 1, 1, off)
		if got != (core.Vec2{X: 3, Y: -4}) {
			t.Fatalf("interior neighbor %v read %v", off, got)
		}
	}

	outside := []struct {
		x, y int
		off  Offset
	}{
		{0, 0, Offset{-1, 0}},
		{0, 0, Offset{0, -1}},
		{0, 0, Offset{-1, -1}},
		{2, 2, Offset{1, 1}},
		{2, 1, Offset{1, 0}},
		{1, 2, Offset{0, 1}},
		{2, 0, Offset{1, -1}},
	}
	for _, tc := range outside {
		if got := SampleFlow(g, tc.x, tc.y, tc.off); !got.IsZero() {
			t.Fatalf("out of range read at (%d,%d)+%v returned %v, expected zero", tc.x, tc.y, tc.off, got)
		}
	}
	if got := SampleFlow(g, 0, 0, Center); got != (core.Vec2{X: 3, Y: -4}) {
		t.Fatalf("center read returned %v", got)
	}
}
