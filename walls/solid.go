package walls

// The silhouette pass. Walls are stroked two pixels thick from offset H1 to
// H2 along their dominant axis; everything outside that range is left to
// the shading pieces and junction patches. Ghost walls draw nothing, and
// NNE walls are handled by the shading-only list instead, which clears a
// thin streak under the line rather than setting one.

func (s *Set) renderSolids(fb FrameBuffer, left, top, right, bottom int) {
	for pass := 0; pass < 2; pass++ {
		for kind := KindNormal; kind <= KindBounce; kind++ {
			for w := s.kindHeads[kind]; w != nil; w = w.nextKind {
				if w.Dir == DirNNE {
					continue
				}
				if w.X2 < left || w.X1 > right {
					continue
				}
				s.strokeWall(fb, w, left, top)
			}
		}
		for w := s.firstWhite; w != nil; w = w.nextWhite {
			if w.X2 < left || w.X1 > right {
				continue
			}
			s.strokeWhiteWall(fb, w, left, top)
		}
		left -= s.cfg.WorldWidth
		right -= s.cfg.WorldWidth
	}
}

func (s *Set) strokeWall(fb FrameBuffer, w *Wall, left, top int) {
	for t := w.H1; t <= w.H2; t++ {
		px, py := w.stepAlong(t)
		s.setPixel(fb, px-left, py-top)
		s.setPixel(fb, px-left, py-top+1)
	}
}

func (s *Set) strokeWhiteWall(fb FrameBuffer, w *Wall, left, top int) {
	for t := 0; t <= w.Length; t++ {
		px, py := w.stepAlong(t)
		s.setPixel(fb, px-left, py-top)
		s.clearPixel(fb, px-left, py-top+1)
		s.clearPixel(fb, px-left, py-top+2)
	}
}

func (s *Set) setPixel(fb FrameBuffer, x, y int) {
	if x < 0 || x >= s.cfg.ScreenWidth || y < 0 || y >= s.cfg.ViewHeight {
		return
	}
	fb.Or32(x>>4, y+s.cfg.StatusBarHeight, 0x80000000>>uint(x&15))
}

func (s *Set) clearPixel(fb FrameBuffer, x, y int) {
	if x < 0 || x >= s.cfg.ScreenWidth || y < 0 || y >= s.cfg.ViewHeight {
		return
	}
	fb.And32(x>>4, y+s.cfg.StatusBarHeight, ^(uint32(0x80000000) >> uint(x&15)))
}
