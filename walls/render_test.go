package walls

import (
	"testing"

	"github.com/automoto/gravwell/gfx"
)

func testFrame() *gfx.Bitmap {
	cfg := testConfig()
	return gfx.NewBitmap(cfg.ScreenWidth, cfg.ViewHeight+cfg.StatusBarHeight)
}

func TestWhitePieceClipsLeftEdge(t *testing.T) {
	s := &Set{cfg: testConfig()}
	clear := make([]uint16, 6) // all-zero rows clear the full 16-pixel width

	fb := testFrame()
	fb.Fill(0xFFFF)
	s.whitePiece(fb, -15, 0, clear, 6)

	y := s.cfg.StatusBarHeight
	if fb.Pixel(0, y) {
		t.Error("column 0 not cleared for piece at x=-15")
	}
	if !fb.Pixel(1, y) {
		t.Error("column 1 touched for piece at x=-15")
	}

	fb.Fill(0xFFFF)
	s.whitePiece(fb, -16, 0, clear, 6)
	if !fb.Pixel(0, y) {
		t.Error("piece at x=-16 must be dropped entirely")
	}
}

func TestWhitePieceClipsRightEdge(t *testing.T) {
	s := &Set{cfg: testConfig()}
	clear := make([]uint16, 6)
	w := s.cfg.ScreenWidth
	y := s.cfg.StatusBarHeight

	fb := testFrame()
	fb.Fill(0xFFFF)
	s.whitePiece(fb, w-1, 0, clear, 6)
	if fb.Pixel(w-1, y) {
		t.Error("last column not cleared for piece at the right edge")
	}
	if !fb.Pixel(w-2, y) {
		t.Error("column left of the piece touched")
	}

	fb.Fill(0xFFFF)
	s.whitePiece(fb, w, 0, clear, 6)
	if !fb.Pixel(w-1, y) {
		t.Error("piece at x=ScreenWidth must be dropped entirely")
	}
}

func TestWhitePieceClipsVertically(t *testing.T) {
	s := &Set{cfg: testConfig()}
	clear := make([]uint16, 6)
	sb := s.cfg.StatusBarHeight

	// Three rows above the view: only the last three rows land.
	fb := testFrame()
	fb.Fill(0xFFFF)
	s.whitePiece(fb, 32, -3, clear, 6)
	if !fb.Pixel(32, sb+3) {
		t.Error("row 3 is outside the clipped piece and must stay set")
	}
	// Rows 0..2 of the view take rows 3..5 of the piece.
	if fb.Pixel(32, sb+2) {
		t.Error("row 2 should be cleared")
	}

	// Hanging off the bottom: rows past ViewHeight are dropped.
	fb.Fill(0xFFFF)
	s.whitePiece(fb, 32, s.cfg.ViewHeight-2, clear, 6)
	if fb.Pixel(32, sb+s.cfg.ViewHeight-1) {
		t.Error("second-to-last view row should be cleared")
	}
}

func TestEorPieceUsesXor(t *testing.T) {
	s := &Set{cfg: testConfig()}
	rows := []uint16{0xFFFF, 0, 0, 0, 0, 0}

	fb := testFrame()
	s.eorPiece(fb, 48, 10, rows, 6)
	y := s.cfg.StatusBarHeight + 10
	for x := 48; x < 64; x++ {
		if !fb.Pixel(x, y) {
			t.Fatalf("pixel %d not toggled on", x)
		}
	}

	// XOR again restores the blank frame.
	s.eorPiece(fb, 48, 10, rows, 6)
	for x := 48; x < 64; x++ {
		if fb.Pixel(x, y) {
			t.Fatalf("pixel %d not toggled back off", x)
		}
	}
}

func TestRenderWrapsHorizontally(t *testing.T) {
	specs := []Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 150},
		{Dir: DirE, X1: 200, Y1: 200, X2: 320, Y2: 200},
	}
	s := mustPrepare(t, specs)
	cfg := testConfig()

	fb1 := testFrame()
	fb1.ClearDither(cfg.Backgr1, cfg.Backgr2)
	s.Render(fb1, 0, 0, cfg.ScreenWidth, cfg.ViewHeight)

	// The same view one world-width to the right must render identically:
	// the second wrap pass picks up everything the first one missed.
	fb2 := testFrame()
	fb2.ClearDither(cfg.Backgr1, cfg.Backgr2)
	s.Render(fb2, cfg.WorldWidth, 0, cfg.WorldWidth+cfg.ScreenWidth, cfg.ViewHeight)

	for i := range fb1.Pix {
		if fb1.Pix[i] != fb2.Pix[i] {
			t.Fatalf("frames differ at word %d: %04X vs %04X", i, fb1.Pix[i], fb2.Pix[i])
		}
	}
}

func TestRenderDrawsIntoView(t *testing.T) {
	specs := []Spec{
		{Dir: DirS, X1: 100, Y1: 50, X2: 100, Y2: 150},
	}
	s := mustPrepare(t, specs)
	cfg := testConfig()

	fb := testFrame()
	fb.ClearDither(cfg.Backgr1, cfg.Backgr2)
	blank := make([]uint16, len(fb.Pix))
	copy(blank, fb.Pix)

	s.Render(fb, 0, 0, cfg.ScreenWidth, cfg.ViewHeight)

	changed := false
	for i := range fb.Pix {
		if fb.Pix[i] != blank[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("render of an in-view wall left the frame untouched")
	}

	// A view far away from the wall must leave the dither untouched.
	fb.ClearDither(cfg.Backgr1, cfg.Backgr2)
	s.Render(fb, 600, 600, 600+cfg.ScreenWidth, 600+cfg.ViewHeight)
	for i := range fb.Pix {
		if fb.Pix[i] != blank[i] {
			t.Fatal("render of an out-of-view wall touched the frame")
		}
	}
}
