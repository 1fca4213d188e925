package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 3}, {0, 0}} {
		if _, err := NewGrid[float32](dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d,%d) expected ErrInvalidSize, got %v", dims[0], dims[1], err)
		}
	}
}

func TestGridIndexingRowMajor(t *testing.T) {
	g, err := NewGrid[int](3, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(2, 1, 7)
	if g.Cells()[5] != 7 {
		t.Fatalf("expected (2,1) at index 5, cells=%v", g.Cells())
	}
	if g.Index(1, 1) != 4 {
		t.Fatalf("Index(1,1)=%d", g.Index(1, 1))
	}
	if g.At(2, 1) != 7 {
		t.Fatal("At should read back Set")
	}

	inside := [][2]int{{0, 0}, {2, 1}, {1, 0}}
	for _, p := range inside {
		if !g.InBounds(p[0], p[1]) {
			t.Fatalf("%v should be in bounds", p)
		}
	}
	outside := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}}
	for _, p := range outside {
		if g.InBounds(p[0], p[1]) {
			t.Fatalf("%v should be out of bounds", p)
		}
	}
}

func TestGridCopyCloneClear(t *testing.T) {
	a, _ := NewGrid[Vec2](2, 2)
	a.Fill(Vec2{X: 1, Y: 2})
	b := a.Clone()
	a.Clear()
	if b.At(1, 1) != (Vec2{X: 1, Y: 2}) {
		t.Fatal("clone must not share storage")
	}
	if !a.At(0, 0).IsZero() {
		t.Fatal("clear must zero cells")
	}
	if err := a.CopyFrom(b); err != nil {
		t.Fatal(err)
	}
	if a.At(0, 1) != (Vec2{X: 1, Y: 2}) {
		t.Fatal("CopyFrom must copy cells")
	}
	c, _ := NewGrid[Vec2](2, 3)
	if err := a.CopyFrom(c); err == nil {
		t.Fatal("CopyFrom must reject mismatched sizes")
	}
}
