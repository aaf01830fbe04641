// Package walls prepares and renders the underside shading ("white pieces")
// for straight wall segments in a wrapping 1-bit world. Walls meet only at
// eight canonical compass headings; wherever two endpoints land within a few
// pixels of each other the naive per-wall shading seams, so preparation also
// detects those junctions, injects corrective patches, and narrows each
// wall's solid fill range to make room for them.
package walls

import (
	"fmt"
	"log"
	"sort"
)

// Direction is one of the eight canonical wall headings, or DirNone.
// Walls are normalized so that the start-to-end heading is always in the
// south-through-north-northeast half of the compass.
type Direction uint8

const (
	DirNone Direction = iota
	DirS
	DirSSE
	DirSE
	DirESE
	DirE
	DirENE
	DirNE
	DirNNE
	DirCount
)

var dirNames = [DirCount]string{"none", "S", "SSE", "SE", "ESE", "E", "ENE", "NE", "NNE"}

func (d Direction) String() string {
	if d < DirCount {
		return dirNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Kind is a wall's rendering category.
type Kind uint8

const (
	KindNormal Kind = iota
	KindBounce
	KindGhost
	KindCount
)

// Spec describes one wall segment as supplied by the level loader.
// Coordinates are world pixels; (X1, Y1) must be the normalized start.
type Spec struct {
	Kind           Kind
	Dir            Direction
	X1, Y1, X2, Y2 int
}

// Wall is a prepared wall. H1 and H2 bound the offsets along the wall where
// its solid silhouette is drawn; they start at per-direction defaults and
// are narrowed by the junction patch pass.
type Wall struct {
	Kind           Kind
	Dir            Direction
	X1, Y1, X2, Y2 int
	Length         int
	H1, H2         int

	nextKind  *Wall // next wall of the same kind
	nextWhite *Wall // next wall on the shading-only (NNE) list
}

// Junction is a point where two or more wall endpoints cluster within
// three pixels of each other.
type Junction struct {
	X, Y int
}

// White is a single shading piece: Ht rows of 16-bit masks anchored at
// (X, Y). Data either aliases one of the static pattern tables or points
// into the set's private storage arena once merged or hash-overlaid.
type White struct {
	X, Y int
	Ht   int
	HasJ bool
	Data []uint16

	owned bool // Data points into the set's arena and may be rewritten
}

// Config carries the fixed capacities and screen geometry the set needs.
// WorldWidth drives the horizontal wraparound pass; Backgr1/Backgr2 are the
// two alternating background dither rows used by the crosshatch overlay.
type Config struct {
	MaxWalls        int
	WorldWidth      int
	ScreenWidth     int
	ViewHeight      int
	StatusBarHeight int
	Backgr1         uint16
	Backgr2         uint16
}

// Coordinates at or beyond sentinelX terminate forward scans; the junction
// and white arrays keep sentinelPad such entries after the last live one so
// the renderer's coarse strides can overshoot safely.
const (
	sentinelX   = 20000
	sentinelPad = 18
)

// Set holds everything prepared once per level: the catalogued walls, the
// sorted junction and shading-piece arrays, and the scratch arena that owns
// merged bitmaps. Preparation must complete before Render is first called;
// after that the set is read-only.
type Set struct {
	cfg   Config
	walls []Wall

	kindHeads  [KindCount]*Wall
	firstWhite *Wall // NNE walls: shading only, no solid fill

	junctions    []Junction // live entries plus sentinel padding
	numJunctions int

	whites    []White // live entries plus sentinel padding
	numWhites int

	storage []uint16 // arena backing merged and overlaid bitmaps
	used    int
}

// Prepare runs the full once-per-level pipeline: cataloguing, junction
// detection, baseline shading, junction patching, and the merge/crosshatch
// pass. The input order only matters up to start-x; walls are stably
// re-sorted by X1 so the sweep and clustering are deterministic.
func Prepare(specs []Spec, cfg Config) (*Set, error) {
	if cfg.MaxWalls <= 0 || cfg.ScreenWidth <= 0 || cfg.ViewHeight <= 0 {
		return nil, fmt.Errorf("walls: invalid config %+v", cfg)
	}
	if len(specs) > cfg.MaxWalls {
		return nil, fmt.Errorf("walls: %d walls exceeds capacity %d", len(specs), cfg.MaxWalls)
	}

	s := &Set{
		cfg:       cfg,
		walls:     make([]Wall, 0, len(specs)),
		junctions: make([]Junction, 0, 2*cfg.MaxWalls+20+sentinelPad),
		whites:    make([]White, 0, whiteCap(cfg.MaxWalls)+sentinelPad),
		storage:   make([]uint16, 6*(whiteCap(cfg.MaxWalls)+2*cfg.MaxWalls+20)),
	}

	for i, sp := range specs {
		if sp.Dir == DirNone || sp.Dir >= DirCount {
			return nil, fmt.Errorf("walls: wall %d has invalid direction %d", i, sp.Dir)
		}
		if sp.Kind >= KindCount {
			return nil, fmt.Errorf("walls: wall %d has invalid kind %d", i, sp.Kind)
		}
		s.walls = append(s.walls, Wall{
			Kind: sp.Kind, Dir: sp.Dir,
			X1: sp.X1, Y1: sp.Y1, X2: sp.X2, Y2: sp.Y2,
			Length: wallLength(sp),
		})
	}
	sort.SliceStable(s.walls, func(i, j int) bool { return s.walls[i].X1 < s.walls[j].X1 })

	s.catalog()
	s.findJunctions()
	if err := s.normWhites(); err != nil {
		return nil, err
	}
	if err := s.closeWhites(); err != nil {
		return nil, err
	}
	if err := s.mergeWhites(); err != nil {
		return nil, err
	}
	return s, nil
}

// Walls exposes the prepared walls for outside collaborators (collision
// setup, debug overlays). The slice must not be mutated.
func (s *Set) Walls() []Wall { return s.walls }

// Junctions returns the live junctions remaining after the crosshatch pass.
func (s *Set) Junctions() []Junction { return s.junctions[:s.numJunctions] }

func whiteCap(maxWalls int) int {
	// Two endpoint pieces and up to two glitch pieces per wall, plus
	// headroom for junction patches and their staircase runs.
	return 8*maxWalls + 40
}

// wallLength is the endpoint span projected along the wall's dominant axis.
func wallLength(sp Spec) int {
	dx := sp.X2 - sp.X1
	if dx < 0 {
		dx = -dx
	}
	dy := sp.Y2 - sp.Y1
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// endpoint returns a wall's start (n == 0) or end (n == 1) coordinates.
func (w *Wall) endpoint(n int) (int, int) {
	if n != 0 {
		return w.X2, w.Y2
	}
	return w.X1, w.Y1
}

// stepAlong returns the point at offset t along the wall from its start.
// The minor axis advances in half steps for the three off-diagonal headings.
var dirStep = [DirCount][2]int{ // numerators over a denominator of 2
	DirNone: {0, 0},
	DirS:    {0, 2},
	DirSSE:  {1, 2},
	DirSE:   {2, 2},
	DirESE:  {2, 1},
	DirE:    {2, 0},
	DirENE:  {2, -1},
	DirNE:   {2, -2},
	DirNNE:  {1, -2},
}

func (w *Wall) stepAlong(t int) (int, int) {
	st := dirStep[w.Dir]
	return w.X1 + t*st[0]/2, w.Y1 + t*st[1]/2
}

// alloc carves n rows out of the storage arena.
func (s *Set) alloc(n int) ([]uint16, error) {
	if s.used+n > len(s.storage) {
		return nil, fmt.Errorf("walls: shading storage exhausted (%d rows)", len(s.storage))
	}
	d := s.storage[s.used : s.used+n : s.used+n]
	s.used += n
	return d, nil
}

// clampRanges enforces H1 <= H2 after patching. The patch rules narrow the
// two bounds independently and nothing upstream guarantees they cannot
// cross on very short walls; a crossed range would draw the solid fill
// backwards, so it is clamped shut and logged.
func (s *Set) clampRanges() {
	for i := range s.walls {
		w := &s.walls[i]
		if w.H1 > w.H2 {
			log.Printf("walls: wall %s (%d,%d)-(%d,%d) shading range inverted (h1=%d h2=%d), clamping",
				w.Dir, w.X1, w.Y1, w.X2, w.Y2, w.H1, w.H2)
			w.H2 = w.H1
		}
	}
}
