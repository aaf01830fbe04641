package walls

import (
	"math/bits"
	"testing"
)

func TestMergeCollapsesCoincidentPieces(t *testing.T) {
	// Two collinear south walls butted together put a start pattern and an
	// end pattern on the same pixel; the merge must collapse them into one
	// piece whose rows are the AND of both. The east wall parks a third
	// piece next door so the crosshatch pass leaves the merged piece alone.
	specs := []Spec{
		{Dir: DirS, X1: 300, Y1: 100, X2: 300, Y2: 200},
		{Dir: DirS, X1: 300, Y1: 200, X2: 300, Y2: 300},
		{Dir: DirE, X1: 301, Y1: 201, X2: 401, Y2: 201},
	}
	s := mustPrepare(t, specs)

	var at []*White
	for i := 0; i < s.numWhites; i++ {
		if s.whites[i].X == 300 && s.whites[i].Y == 200 {
			at = append(at, &s.whites[i])
		}
	}
	if len(at) != 1 {
		t.Fatalf("got %d pieces at the shared endpoint, want 1", len(at))
	}

	p := at[0]
	if p.HasJ {
		t.Error("merged piece was crosshatched despite close neighbors")
	}
	for r := 0; r < 6; r++ {
		want := sBot[r] & genericTop[r]
		if p.Data[r] != want {
			t.Errorf("row %d = %04X, want %04X", r, p.Data[r], want)
		}
	}
}

func TestMergeKeepsSortOrder(t *testing.T) {
	specs := []Spec{
		{Dir: DirS, X1: 400, Y1: 50, X2: 400, Y2: 150},
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 150},
		{Dir: DirE, X1: 200, Y1: 80, X2: 300, Y2: 80},
	}
	s := mustPrepare(t, specs)

	for i := 1; i < s.numWhites; i++ {
		a, b := &s.whites[i-1], &s.whites[i]
		if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
			t.Fatalf("pieces out of order at %d: (%d,%d) before (%d,%d)", i, a.X, a.Y, b.X, b.Y)
		}
	}
	for _, wh := range s.whites[s.numWhites:] {
		if wh.X < sentinelX {
			t.Fatalf("padding piece (%d,%d) below sentinel", wh.X, wh.Y)
		}
	}
}

func TestCrosshatchOnIsolatedJunction(t *testing.T) {
	// A lone wall's endpoints are junctions with nothing nearby, so both
	// endpoint pieces take the crosshatch and both junctions are retired
	// from the hash-mark list.
	specs := []Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 150},
	}
	s := mustPrepare(t, specs)

	if n := len(s.Junctions()); n != 0 {
		t.Fatalf("%d junctions survived, want 0", n)
	}

	top := findPiece(s, 100, 50, 6)
	if top == nil || !top.HasJ {
		t.Fatal("top endpoint piece missing or not crosshatched")
	}

	// (100+50) is even, so the overlay starts from the backgr1 row and
	// rotates it one bit per row.
	back := testConfig().Backgr1
	for r := 0; r < 6; r++ {
		want := (back & (^genericTop[r] | hashFigure[r])) ^ hashFigure[r]
		if top.Data[r] != want {
			t.Errorf("row %d = %04X, want %04X", r, top.Data[r], want)
		}
		back = bits.RotateLeft16(back, 1)
	}
}

func TestCrosshatchConsumesJunctionOnce(t *testing.T) {
	// Preparing twice from scratch must behave identically; within one
	// preparation a junction feeds at most one overlay, so the count of
	// crosshatched pieces matches the count of retired junctions.
	specs := []Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 150},
		{Dir: DirE, X1: 200, Y1: 80, X2: 300, Y2: 80},
	}
	s := mustPrepare(t, specs)

	hatched := 0
	for i := 0; i < s.numWhites; i++ {
		if s.whites[i].HasJ {
			hatched++
		}
	}
	retired := 4 - len(s.Junctions())
	if hatched != retired {
		t.Fatalf("%d crosshatched pieces but %d retired junctions", hatched, retired)
	}
}

func TestCrosshatchSkipsScreenEdges(t *testing.T) {
	// Pieces within eight pixels of the wrap column keep their plain
	// shading: the overlay would straddle the seam.
	specs := []Spec{
		{Dir: DirS, X1: 4, Y1: 50, X2: 4, Y2: 150},
	}
	s := mustPrepare(t, specs)

	for i := 0; i < s.numWhites; i++ {
		if s.whites[i].HasJ {
			t.Fatalf("piece at x=%d was crosshatched", s.whites[i].X)
		}
	}
	if n := len(s.Junctions()); n != 2 {
		t.Fatalf("%d junctions, want both kept", n)
	}
}
