package walls

import (
	"reflect"
	"testing"
)

func testConfig() Config {
	return Config{
		MaxWalls:        125,
		WorldWidth:      1024,
		ScreenWidth:     512,
		ViewHeight:      318,
		StatusBarHeight: 24,
		Backgr1:         0xAAAA,
		Backgr2:         0x5555,
	}
}

func mustPrepare(t *testing.T, specs []Spec) *Set {
	t.Helper()
	s, err := Prepare(specs, testConfig())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return s
}

// newTestSet builds a set with catalogued walls but runs no passes, so the
// individual passes can be exercised alone.
func newTestSet(specs []Spec) *Set {
	cfg := testConfig()
	s := &Set{
		cfg:       cfg,
		junctions: make([]Junction, 0, 2*cfg.MaxWalls+20+sentinelPad),
		whites:    make([]White, 0, whiteCap(cfg.MaxWalls)+sentinelPad),
		storage:   make([]uint16, 6*(whiteCap(cfg.MaxWalls)+2*cfg.MaxWalls+20)),
	}
	for _, sp := range specs {
		s.walls = append(s.walls, Wall{
			Kind: sp.Kind, Dir: sp.Dir,
			X1: sp.X1, Y1: sp.Y1, X2: sp.X2, Y2: sp.Y2,
			Length: wallLength(sp),
		})
	}
	s.catalog()
	return s
}

func TestFindJunctionsClusters(t *testing.T) {
	// The SE wall starts two pixels off the S wall's end; the two
	// endpoints must collapse into one junction.
	s := newTestSet([]Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 100},
		{Dir: DirSE, X1: 102, Y1: 102, X2: 150, Y2: 150},
	})
	s.findJunctions()

	got := s.Junctions()
	want := []Junction{{X: 100, Y: 50}, {X: 100, Y: 100}, {X: 150, Y: 150}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("junctions = %v, want %v", got, want)
	}
}

func TestFindJunctionsSortedByX(t *testing.T) {
	s := newTestSet([]Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 100},
		{Dir: DirS, X1: 250, Y1: 50, X2: 250, Y2: 100},
		{Dir: DirS, X1: 175, Y1: 80, X2: 175, Y2: 130},
	})
	s.findJunctions()

	js := s.Junctions()
	if len(js) != 6 {
		t.Fatalf("got %d junctions, want 6", len(js))
	}
	for i := 1; i < len(js); i++ {
		if js[i].X < js[i-1].X {
			t.Fatalf("junctions not sorted by x: %v", js)
		}
	}
}

func TestFindJunctionsSentinelPadding(t *testing.T) {
	s := newTestSet([]Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 100},
	})
	s.findJunctions()

	if len(s.junctions) != s.numJunctions+sentinelPad {
		t.Fatalf("junction list length %d, want %d live + %d pad",
			len(s.junctions), s.numJunctions, sentinelPad)
	}
	for _, j := range s.junctions[s.numJunctions:] {
		if j.X < sentinelX {
			t.Fatalf("padding entry %v below sentinel", j)
		}
	}
}

func TestPrepareDeterministic(t *testing.T) {
	specs := []Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 100},
		{Dir: DirSE, X1: 102, Y1: 102, X2: 150, Y2: 150},
		{Dir: DirE, X1: 200, Y1: 80, X2: 280, Y2: 80},
		{Dir: DirNE, X1: 300, Y1: 260, X2: 360, Y2: 200},
	}

	a := mustPrepare(t, specs)
	b := mustPrepare(t, specs)

	if !reflect.DeepEqual(a.Junctions(), b.Junctions()) {
		t.Errorf("junctions differ between identical preparations")
	}
	if a.numWhites != b.numWhites {
		t.Fatalf("piece counts differ: %d vs %d", a.numWhites, b.numWhites)
	}
	for i := 0; i < a.numWhites; i++ {
		wa, wb := &a.whites[i], &b.whites[i]
		if wa.X != wb.X || wa.Y != wb.Y || wa.Ht != wb.Ht || wa.HasJ != wb.HasJ {
			t.Errorf("piece %d differs: %+v vs %+v", i, wa, wb)
		}
	}
}

func TestPrepareRejectsBadInput(t *testing.T) {
	if _, err := Prepare([]Spec{{Dir: DirNone, X1: 0, Y1: 0, X2: 0, Y2: 10}}, testConfig()); err == nil {
		t.Error("expected error for DirNone wall")
	}

	cfg := testConfig()
	cfg.MaxWalls = 1
	specs := []Spec{
		{Dir: DirS, X1: 10, Y1: 0, X2: 10, Y2: 50},
		{Dir: DirS, X1: 60, Y1: 0, X2: 60, Y2: 50},
	}
	if _, err := Prepare(specs, cfg); err == nil {
		t.Error("expected error when wall count exceeds capacity")
	}
}

func TestPrepareSortsWallsByStartX(t *testing.T) {
	specs := []Spec{
		{Dir: DirS, X1: 300, Y1: 0, X2: 300, Y2: 40},
		{Dir: DirS, X1: 100, Y1: 0, X2: 100, Y2: 40},
	}
	s := mustPrepare(t, specs)
	ws := s.Walls()
	if ws[0].X1 != 100 || ws[1].X1 != 300 {
		t.Fatalf("walls not sorted by X1: %v %v", ws[0], ws[1])
	}
}
