package walls

import "fmt"

// addWhite appends a shading piece and keeps the sentinel entry just past
// the live list current.
func (s *Set) addWhite(x, y, ht int, data []uint16) error {
	if s.numWhites >= cap(s.whites)-sentinelPad {
		return fmt.Errorf("walls: shading piece capacity %d exceeded", cap(s.whites)-sentinelPad)
	}
	s.whites = append(s.whites[:s.numWhites], White{X: x, Y: y, Ht: ht, Data: data})
	s.numWhites++
	s.whites = append(s.whites, White{X: sentinelX})
	return nil
}

// replaceWhite2 rewrites the first piece recorded at the target coordinates
// whose height is strictly smaller than ht; taller or equal pieces are left
// alone and the call is a no-op. The rewritten piece may move to a
// different anchor than the one it was found at.
func (s *Set) replaceWhite2(targetX, targetY, x, y, ht int, data []uint16) {
	for i := 0; i < s.numWhites; i++ {
		wh := &s.whites[i]
		if wh.X != targetX || wh.Y != targetY || wh.Ht >= ht {
			continue
		}
		wh.X = x
		wh.Y = y
		wh.Ht = ht
		wh.Data = data
		wh.owned = false
		return
	}
}

// normWhites emits the baseline shading for every wall endpoint from the
// whitePicts table, then the hand-authored corrective pieces for the three
// headings known to render poorly with the baseline patterns alone.
func (s *Set) normWhites() error {
	for i := range s.walls {
		line := &s.walls[i]
		for n := 0; n < 2; n++ {
			if pict := whitePicts[line.Dir][n]; pict != nil {
				x, y := line.endpoint(n)
				if err := s.addWhite(x, y, 6, pict); err != nil {
					return err
				}
			}
		}

		var err error
		switch line.Dir {
		case DirNE:
			err = s.addWhite(line.X2-4, line.Y2+2, 4, neGlitch)
		case DirENE:
			if err = s.addWhite(line.X1+16, line.Y1, 3, eneGlitch1); err == nil {
				err = s.addWhite(line.X2-10, line.Y2+1, 5, eneGlitch2)
			}
		case DirESE:
			err = s.addWhite(line.X2-7, line.Y2-2, 4, eseGlitch)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
