package walls

import "testing"

func findPiece(s *Set, x, y, ht int) *White {
	for i := 0; i < s.numWhites; i++ {
		wh := &s.whites[i]
		if wh.X == x && wh.Y == y && wh.Ht == ht {
			return wh
		}
	}
	return nil
}

func TestIsolatedWallKeepsDefaults(t *testing.T) {
	for _, tc := range []struct {
		spec   Spec
		h1, h2 int
	}{
		{Spec{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 150}, 6, 100},
		{Spec{Dir: DirE, X1: 100, Y1: 50, X2: 200, Y2: 50}, 16, 100},
		{Spec{Dir: DirESE, X1: 100, Y1: 50, X2: 200, Y2: 100}, 12, 99},
		{Spec{Dir: DirNE, X1: 100, Y1: 150, X2: 180, Y2: 70}, 1, 75},
		{Spec{Dir: DirNNE, X1: 100, Y1: 150, X2: 140, Y2: 70}, 0, 75},
	} {
		s := mustPrepare(t, []Spec{tc.spec})
		w := &s.Walls()[0]
		if w.H1 != tc.h1 || w.H2 != tc.h2 {
			t.Errorf("%s wall: h1=%d h2=%d, want %d %d", tc.spec.Dir, w.H1, w.H2, tc.h1, tc.h2)
		}
	}
}

func TestTrimEndNarrowsRange(t *testing.T) {
	// A south wall's end two pixels from a southeast wall's end: both get
	// trimmed, and each trim drops a corrective piece over the freed span.
	specs := []Spec{
		{Dir: DirS, X1: 200, Y1: 100, X2: 200, Y2: 160},
		{Dir: DirSE, X1: 150, Y1: 112, X2: 200, Y2: 162},
	}
	s := mustPrepare(t, specs)

	ws := s.Walls() // sorted by X1: SE first
	se, south := &ws[0], &ws[1]
	if se.Dir != DirSE || south.Dir != DirS {
		t.Fatalf("unexpected wall order: %v %v", se.Dir, south.Dir)
	}

	if south.H2 != south.Length-6 {
		t.Errorf("south wall h2 = %d, want length-6 = %d", south.H2, south.Length-6)
	}
	if se.H2 != se.Length-8 {
		t.Errorf("southeast wall h2 = %d, want length-8 = %d", se.H2, se.Length-8)
	}

	// South wall: corrective piece at 6 before the end, one row per pixel.
	if p := findPiece(s, 200, 154, 6); p == nil {
		t.Error("missing corrective piece for the south wall")
	}
	// Southeast wall: span 8 piece anchored 8 along from the trim point.
	if p := findPiece(s, 192, 154, 8); p == nil {
		t.Error("missing corrective piece for the southeast wall")
	}
}

func TestStairPatchRaisesH1(t *testing.T) {
	// A northeast wall's low end under a south wall's end takes the
	// staircase: a run of small pieces walking up-right, then H1 jumps
	// past the run.
	specs := []Spec{
		{Dir: DirNE, X1: 400, Y1: 300, X2: 460, Y2: 240},
		{Dir: DirS, X1: 401, Y1: 251, X2: 401, Y2: 301},
	}
	s := mustPrepare(t, specs)

	var ne, south *Wall
	for i := range s.Walls() {
		switch s.Walls()[i].Dir {
		case DirNE:
			ne = &s.Walls()[i]
		case DirS:
			south = &s.Walls()[i]
		}
	}

	if want := 5 + 4*2; ne.H1 != want {
		t.Errorf("northeast wall h1 = %d, want %d", ne.H1, want)
	}
	for j := 0; j < 12; j += 4 {
		if p := findPiece(s, 400+3+j, 300-4-j, 4); p == nil {
			t.Errorf("missing staircase piece at offset %d", j)
		}
	}

	// The south wall's own rule against the northeast tip is span 10.
	if south.H2 != south.Length-10 {
		t.Errorf("south wall h2 = %d, want %d", south.H2, south.Length-10)
	}
}

func TestParallelEndpointsNoPatch(t *testing.T) {
	// Two collinear south walls butted end to start leave both ranges at
	// their defaults: equal orientations join seamlessly.
	specs := []Spec{
		{Dir: DirS, X1: 300, Y1: 100, X2: 300, Y2: 200},
		{Dir: DirS, X1: 300, Y1: 200, X2: 300, Y2: 300},
	}
	s := mustPrepare(t, specs)

	for i := range s.Walls() {
		w := &s.Walls()[i]
		if w.H1 != simpleH1[DirS] || w.H2 != w.Length+simpleH2[DirS] {
			t.Errorf("wall %d patched: h1=%d h2=%d", i, w.H1, w.H2)
		}
	}
}

func TestReplaceWhite2(t *testing.T) {
	s := newTestSet(nil)
	if err := s.addWhite(50, 60, 4, nePatch); err != nil {
		t.Fatal(err)
	}

	// Taller piece at the same spot replaces and may move the anchor.
	s.replaceWhite2(50, 60, 48, 55, 6, sBot)
	if p := findPiece(s, 48, 55, 6); p == nil {
		t.Fatal("piece was not replaced")
	}

	// A shorter piece must not replace a taller one.
	s.replaceWhite2(48, 55, 0, 0, 4, nePatch)
	if p := findPiece(s, 48, 55, 6); p == nil {
		t.Fatal("taller piece was clobbered by a shorter one")
	}
}

func TestOrient(t *testing.T) {
	for _, tc := range []struct {
		dir  Direction
		n    int
		want int
	}{
		{DirS, 1, 0},   // south tip of a south wall
		{DirNE, 0, 2},  // low tip of a northeast wall
		{DirE, 0, 4},   // left tip of an east wall
		{DirS, 0, 8},   // top of a south wall
		{DirE, 1, 12},  // right tip of an east wall
		{DirESE, 1, 13},
		{DirSE, 1, 14}, // low tip of a southeast wall
		{DirSSE, 1, 15},
	} {
		if got := orient(tc.dir, tc.n); got != tc.want {
			t.Errorf("orient(%s, %d) = %d, want %d", tc.dir, tc.n, got, tc.want)
		}
	}
}

func TestCrossedRangeClamps(t *testing.T) {
	// Two trims on a very short wall can cross h1 over h2; the clamp
	// closes the range instead of letting the fill run backwards.
	s := newTestSet([]Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 58},
	})
	s.walls[0].H1 = 6
	s.walls[0].H2 = 2
	s.clampRanges()
	if s.walls[0].H2 != s.walls[0].H1 {
		t.Fatalf("h2 = %d, want clamped to h1 = %d", s.walls[0].H2, s.walls[0].H1)
	}
}
