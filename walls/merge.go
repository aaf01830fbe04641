package walls

import "math/bits"

// mergeWhites sorts the shading pieces, collapses same-position duplicates,
// and stamps the crosshatch texture on pieces sitting exactly on a
// junction.
func (s *Set) mergeWhites() error {
	// Insertion sort by (x, y); equal keys keep build order.
	for i := 1; i < s.numWhites; i++ {
		for k := i; k > 0; k-- {
			prev, cur := &s.whites[k-1], &s.whites[k]
			if cur.X > prev.X || (cur.X == prev.X && cur.Y >= prev.Y) {
				break
			}
			s.whites[k-1], s.whites[k] = s.whites[k], s.whites[k-1]
		}
	}
	for i := 0; i < sentinelPad; i++ {
		s.whites = append(s.whites, White{X: sentinelX})
	}

	// Collapse runs of height-6 pieces at identical coordinates. AND keeps
	// a pixel white only when both pieces shade it, which is exactly the
	// union of the two white areas.
	for i := 0; i < s.numWhites; i++ {
		wh := &s.whites[i]
		for i+1 < s.numWhites &&
			wh.X == s.whites[i+1].X && wh.Y == s.whites[i+1].Y &&
			wh.Ht == 6 && s.whites[i+1].Ht == 6 {
			merged, err := s.alloc(6)
			if err != nil {
				return err
			}
			for r := 0; r < 6; r++ {
				merged[r] = wh.Data[r] & s.whites[i+1].Data[r]
			}
			wh.Data = merged
			wh.owned = true
			s.spliceWhite(i + 1)
		}
	}

	return s.hashMerge()
}

// spliceWhite removes the piece at index i, keeping the sentinel padding
// behind the shortened list.
func (s *Set) spliceWhite(i int) {
	copy(s.whites[i:], s.whites[i+1:])
	s.whites = s.whites[:len(s.whites)-1]
	s.numWhites--
	s.whites = append(s.whites, White{X: sentinelX})
}

// hashMerge overlays the crosshatch figure on every isolated height-6 piece
// whose coordinates exactly match a still-unclaimed junction, then retires
// that junction so the renderer's hash pass skips it. The piece's bitmap is
// rebuilt in the arena as
//
//	row = (back & (^white | hash)) ^ hash
//
// which keeps the background dither visible inside the white area and cuts
// the hash figure through both; the dither word rotates one bit per row to
// stay phase-aligned down the piece.
func (s *Set) hashMerge() error {
	j := 0
	for wi := 0; wi < s.numWhites; wi++ {
		wh := &s.whites[wi]
		if wh.X >= s.cfg.WorldWidth-8 {
			break
		}
		if wh.Ht != 6 || wh.X <= 8 || !s.noCloseWhite(wi) {
			continue
		}

		for j > 0 && s.junctions[j].X >= wh.X {
			j--
		}
		for j < len(s.junctions)-1 && s.junctions[j].X <= wh.X && s.junctions[j].Y != wh.Y {
			j++
		}
		if s.junctions[j].X != wh.X || s.junctions[j].Y != wh.Y || j >= s.numJunctions {
			continue
		}

		back := s.cfg.Backgr1
		if (wh.X+wh.Y)&1 != 0 {
			back = s.cfg.Backgr2
		}

		data := wh.Data
		if !wh.owned {
			var err error
			if data, err = s.alloc(6); err != nil {
				return err
			}
		}
		for r := 0; r < 6; r++ {
			data[r] = (back & (^wh.Data[r] | hashFigure[r])) ^ hashFigure[r]
			back = bits.RotateLeft16(back, 1)
		}
		wh.Data = data
		wh.owned = true
		wh.HasJ = true

		s.removeJunction(j)
	}
	return nil
}

// noCloseWhite reports whether no other piece sits within the three-pixel
// box around piece wi. The list is sorted by x, so the scan stops as soon
// as it leaves the box horizontally.
func (s *Set) noCloseWhite(wi int) bool {
	w1 := &s.whites[wi]
	for k := wi - 1; k >= 0 && s.whites[k].X > w1.X-3; k-- {
		if s.whites[k].Y < w1.Y+3 && s.whites[k].Y > w1.Y-3 {
			return false
		}
	}
	for k := wi + 1; k < len(s.whites) && s.whites[k].X < w1.X+3; k++ {
		if s.whites[k].Y < w1.Y+3 && s.whites[k].Y > w1.Y-3 {
			return false
		}
	}
	return true
}
