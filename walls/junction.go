package walls

// findJunctions clusters nearby wall endpoints. Both endpoints of every
// wall are scanned in list order against the junctions found so far; an
// endpoint within three pixels of an existing junction on both axes joins
// that cluster implicitly, otherwise it founds a new junction at its exact
// coordinates. The pass is O(endpoints x junctions), which stays cheap
// because junctions are sparse relative to level size.
func (s *Set) findJunctions() {
	for i := range s.walls {
		line := &s.walls[i]
		for n := 0; n < 2; n++ {
			x, y := line.endpoint(n)
			found := false
			for j := 0; j < s.numJunctions; j++ {
				jc := &s.junctions[j]
				if jc.X <= x+3 && jc.X >= x-3 && jc.Y <= y+3 && jc.Y >= y-3 {
					found = true
					break
				}
			}
			if !found {
				s.junctions = append(s.junctions[:s.numJunctions], Junction{X: x, Y: y})
				s.numJunctions++
			}
		}
	}

	// Insertion sort by x ascending; ties keep insertion order, so the
	// result is deterministic for a given wall list.
	for j := 1; j < s.numJunctions; j++ {
		for k := j; k > 0 && s.junctions[k].X < s.junctions[k-1].X; k-- {
			s.junctions[k], s.junctions[k-1] = s.junctions[k-1], s.junctions[k]
		}
	}

	for i := 0; i < sentinelPad; i++ {
		s.junctions = append(s.junctions, Junction{X: sentinelX})
	}
}

// removeJunction splices out the live junction at index j, keeping the
// sentinel padding behind the shortened list intact.
func (s *Set) removeJunction(j int) {
	copy(s.junctions[j:], s.junctions[j+1:])
	s.junctions = s.junctions[:len(s.junctions)-1]
	s.numJunctions--
	s.junctions = append(s.junctions, Junction{X: sentinelX})
}
