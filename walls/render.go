package walls

import "math/bits"

// FrameBuffer is the pixel-addressing capability the renderer draws
// through. Writes are 32-bit windows spanning two adjacent 16-pixel
// columns: the high word lands in column wordX, the low word in wordX+1.
// Implementations must ignore out-of-range columns; the clip masks already
// make those halves of the word write-neutral.
type FrameBuffer interface {
	And32(wordX, y int, v uint32)
	Or32(wordX, y int, v uint32)
	Xor32(wordX, y int, v uint32)
}

// Horizontal clip masks. A piece overhanging the left screen edge keeps
// only the low (right) half of its 32-bit window; one overhanging the
// right edge keeps only the high (left) half.
const (
	leftClip   = 0x0000FFFF
	rightClip  = 0xFFFF0000
	centerClip = 0xFFFFFFFF
)

// Render draws one frame of wall imagery for the view rectangle, in world
// pixels: solid silhouettes first, then the shading pieces, then hash
// marks on the junctions no piece consumed. Each pass runs twice, the
// second time shifted by the world width, so imagery straddling the wrap
// seam appears on both sides.
func (s *Set) Render(fb FrameBuffer, left, top, right, bottom int) {
	s.renderSolids(fb, left, top, right, bottom)
	s.renderWhites(fb, left, top, right, bottom)
	s.renderHashes(fb, left, top, right, bottom)
}

// renderWhites walks the sorted piece array: a coarse 16-entry stride to
// the neighborhood of the left edge, a linear scan to the exact boundary,
// then pieces are drawn until the right edge. Pieces are 16 pixels wide,
// so the scan starts 15 pixels left of the view.
func (s *Set) renderWhites(fb FrameBuffer, screenx, screeny, screenr, screenb int) {
	top := screeny
	left := screenx - 15
	bot := screenb
	right := screenr

	for pass := 0; pass < 2; pass++ {
		wh := 0
		for wh+16 < len(s.whites) && s.whites[wh+16].X < left {
			wh += 16
		}
		for wh < len(s.whites) && s.whites[wh].X < left {
			wh++
		}
		left += 15

		for ; wh < len(s.whites) && s.whites[wh].X < right; wh++ {
			w := &s.whites[wh]
			if w.Y > bot {
				continue
			}
			y := w.Y - top
			if y <= -w.Ht {
				continue
			}
			x := w.X - left
			if w.HasJ {
				s.eorPiece(fb, x, y, w.Data, w.Ht)
			} else {
				s.whitePiece(fb, x, y, w.Data, w.Ht)
			}
		}

		left -= 15
		left -= s.cfg.WorldWidth
		right -= s.cfg.WorldWidth
	}
}

// whitePiece ANDs a piece's rows into the buffer at view-local (x, y),
// clearing the piece's white area. Rows above or below the view window are
// dropped; the horizontal clip keeps the write inside the screen word
// range.
func (s *Set) whitePiece(fb FrameBuffer, x, y int, def []uint16, ht int) {
	if y < 0 {
		ht += y
		if ht <= 0 {
			return
		}
		def = def[-y:]
		y = 0
	} else if y+ht > s.cfg.ViewHeight {
		if y >= s.cfg.ViewHeight {
			return
		}
		ht = s.cfg.ViewHeight - y
	}

	var clip uint32 = ^uint32(centerClip)
	if x < 0 {
		if x <= -16 {
			return
		}
		clip = ^uint32(leftClip)
	} else if x >= s.cfg.ScreenWidth-16 {
		if x >= s.cfg.ScreenWidth {
			return
		}
		clip = ^uint32(rightClip)
	}

	y += s.cfg.StatusBarHeight
	rot := 16 - (x & 15)
	wx := x >> 4
	for i := 0; i < ht; i++ {
		v := bits.RotateLeft32(0xFFFF0000|uint32(def[i]), rot) | clip
		fb.And32(wx, y+i, v)
	}
}

// eorPiece is the junction variant: same geometry, complementary clip
// sense, and the rows XOR into the buffer instead of masking it, which is
// what makes the crosshatch read differently from plain shading.
func (s *Set) eorPiece(fb FrameBuffer, x, y int, def []uint16, ht int) {
	if y < 0 {
		ht += y
		if ht <= 0 {
			return
		}
		def = def[-y:]
		y = 0
	} else if y+ht > s.cfg.ViewHeight {
		if y >= s.cfg.ViewHeight {
			return
		}
		ht = s.cfg.ViewHeight - y
	}

	var clip uint32 = centerClip
	if x < 0 {
		if x <= -16 {
			return
		}
		clip = leftClip
	} else if x >= s.cfg.ScreenWidth-16 {
		if x >= s.cfg.ScreenWidth {
			return
		}
		clip = rightClip
	}

	y += s.cfg.StatusBarHeight
	rot := 16 - (x & 15)
	wx := x >> 4
	for i := 0; i < ht; i++ {
		v := bits.RotateLeft32(uint32(def[i]), rot) & clip
		fb.Xor32(wx, y+i, v)
	}
}

// renderHashes ORs a small hash figure at every junction still in the
// list. Fully on-screen marks take the unclipped path; edge cases go
// through drawHash.
func (s *Set) renderHashes(fb FrameBuffer, screenx, screeny, screenr, screenb int) {
	top := screeny - 5
	left := screenx - 8
	bot := screenb
	right := screenr

	for pass := 0; pass < 2; pass++ {
		j := 0
		for j+16 < len(s.junctions) && s.junctions[j+16].X < left {
			j += 16
		}
		for j < len(s.junctions) && s.junctions[j].X < left {
			j++
		}
		left += 8

		for ; j < len(s.junctions) && s.junctions[j].X < right; j++ {
			y := s.junctions[j].Y
			if y < top || y >= bot {
				continue
			}
			x := s.junctions[j].X - left
			sy := y - screeny
			if sy >= 0 && sy < s.cfg.ViewHeight-5 && x >= 0 && x < s.cfg.ScreenWidth-9 {
				// Fully visible: no clip work needed.
				s.orRows(fb, x, sy, hashFigure, 6, centerClip)
			} else {
				s.drawHash(fb, x, sy)
			}
		}

		left -= 8
		left -= s.cfg.WorldWidth
		right -= s.cfg.WorldWidth
	}
}

// drawHash draws one hash mark with edge clipping.
func (s *Set) drawHash(fb FrameBuffer, x, y int) {
	def := hashFigure
	ht := 6
	if y < 0 {
		ht += y
		if ht <= 0 {
			return
		}
		def = def[-y:]
		y = 0
	} else if y >= s.cfg.ViewHeight-6 {
		ht = s.cfg.ViewHeight - y
		if ht <= 0 {
			return
		}
	}

	var clip uint32 = centerClip
	if x < 0 {
		clip = leftClip
	} else if x >= s.cfg.ScreenWidth-9 {
		clip = rightClip
	}

	s.orRows(fb, x, y, def, ht, clip)
}

func (s *Set) orRows(fb FrameBuffer, x, y int, def []uint16, ht int, clip uint32) {
	y += s.cfg.StatusBarHeight
	rot := 16 - (x & 15)
	wx := x >> 4
	for i := 0; i < ht; i++ {
		v := bits.RotateLeft32(uint32(def[i]), rot) & clip
		fb.Or32(wx, y+i, v)
	}
}
