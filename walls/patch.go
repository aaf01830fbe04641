package walls

// The junction patch pass. Every pair of wall endpoints that lands inside
// the same 6x6 pixel box is resolved to an ordered pair of canonical
// orientations (the heading each wall leaves the junction in, 0..15 around
// the compass), and that pair selects a rule: a corrective bitmap, a
// hand-tuned span, and a narrowing of the owning wall's solid range so the
// fill does not draw over the correction. The spans were tuned per pair by
// eye; none of them derive from a formula.

type patchMode uint8

const (
	patchNone patchMode = iota
	// patchTrimEnd lays one corrective piece over the last span pixels of
	// the wall and pulls H2 back to match. A piece from an earlier rule at
	// the same spot is replaced if it was smaller, otherwise a new piece
	// is appended.
	patchTrimEnd
	// patchStair walks a run of small pieces diagonally away from the
	// junction, each gated on H1 not yet covering its offset, then raises
	// H1 past the run. Used where two walls meet at a shallow combined
	// angle and one big patch would overshoot.
	patchStair
)

// How a trim rule converts its span (measured along the wall's dominant
// axis) into the corrective piece's row height.
type htKind uint8

const (
	htSpan  htKind = iota // steep walls: one row per span pixel
	htHalf                // shallow walls: the minor axis advances at half rate
	htFour                // horizontal walls: fixed four-row sliver
)

// patchRow describes how one canonical orientation applies its spans.
type patchRow struct {
	mode  patchMode
	ht    htKind
	data  []uint16
	spans [16]int8 // indexed by the other wall's orientation; 0 = no patch
}

// patchRows is indexed by the patched wall's own orientation. Orientation 0
// (the south tip of an S wall) and 2 (the south tip of a NE wall) are where
// the underside shading hangs past the endpoint and seams show worst; the
// south-ish tips of the S/SSE/SE/ESE/E family carry the rest. The ENE, NE
// and NNE far ends need nothing: their default H2 already stops the fill
// well short of the tip, which is what their glitch pieces cover.
var patchRows = [16]patchRow{
	0:  {mode: patchTrimEnd, spans: sp(15, 21, 1, 21, 2, 10, 3, 6, 14, 6)},
	2:  {mode: patchStair, spans: sp(0, 3, 1, 6, 3, 4, 14, 1, 15, 2)},
	12: {mode: patchTrimEnd, ht: htFour, spans: sp(14, 4, 13, 3, 15, 3, 0, 2)},
	13: {mode: patchTrimEnd, ht: htHalf, spans: sp(0, 8, 1, 6, 15, 6, 2, 4, 14, 4)},
	14: {mode: patchTrimEnd, spans: sp(0, 8, 1, 5, 15, 4, 3, 3, 13, 2)},
	15: {mode: patchTrimEnd, spans: sp(0, 12, 1, 8, 2, 6, 14, 4, 13, 2)},
}

func init() {
	patchRows[0].data = nPatch
	patchRows[2].data = nePatch
	patchRows[12].data = ePatch
	patchRows[13].data = enePatch
	patchRows[14].data = sePatch
	patchRows[15].data = ssePatch
}

func (r *patchRow) height(span int) int {
	switch r.ht {
	case htHalf:
		return (span + 1) / 2
	case htFour:
		return 4
	}
	return span
}

func sp(pairs ...int8) [16]int8 {
	var out [16]int8
	for i := 0; i < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}

// orient maps a wall heading and endpoint to the canonical orientation the
// wall leaves that endpoint in: 0 is north, counting clockwise in sixteenth
// turns. The far endpoint flips the heading halfway around the compass.
func orient(d Direction, n int) int {
	o := 9 - int(d)
	if n != 0 {
		o = (o + 8) & 15
	}
	return o & 15
}

// closeWhites assigns every wall its default shading bounds and then sweeps
// all wall pairs whose endpoints fall within the junction box, handing each
// to the patch rules. Walls are sorted by X1, so a moving lower bound can
// skip walls whose right edge is already more than three pixels behind the
// current wall's start.
func (s *Set) closeWhites() error {
	for i := range s.walls {
		line := &s.walls[i]
		line.H1 = simpleH1[line.Dir]
		line.H2 = line.Length + simpleH2[line.Dir]
	}

	first := 0
	for li := range s.walls {
		line := &s.walls[li]
		for first < len(s.walls) && s.walls[first].X2 < line.X1-3 {
			first++
		}
		for n := 0; n < 2; n++ {
			x1, y1 := line.endpoint(n)
			for l2 := first; l2 < len(s.walls) && s.walls[l2].X1 < x1+3; l2++ {
				line2 := &s.walls[l2]
				for m := 0; m < 2; m++ {
					x2, y2 := line2.endpoint(m)
					x2 -= 3
					y2 -= 3
					if x1 > x2 && y1 > y2 && x1 < x2+6 && y1 < y2+6 {
						if err := s.oneClose(line, line2, n, m); err != nil {
							return err
						}
					}
				}
			}
		}
	}

	s.clampRanges()
	return nil
}

// oneClose applies the orientation-pair rule for one close endpoint pair.
// Only the first wall is patched here; the sweep visits the pair again with
// the roles swapped, so the second wall gets its own turn.
func (s *Set) oneClose(line, line2 *Wall, n, m int) error {
	d1 := orient(line.Dir, n)
	d2 := orient(line2.Dir, m)
	if d1 == d2 {
		return nil // parallel walls join seamlessly
	}

	row := &patchRows[d1]
	i := int(row.spans[d2])
	if row.mode == patchNone || i == 0 {
		return nil
	}

	switch row.mode {
	case patchTrimEnd:
		j := line.H2
		if line.Length-i > j {
			return nil // an earlier pair already narrowed past this patch
		}
		ht := row.height(i)
		px, py := line.stepAlong(line.Length - i)
		if j < line.Length+simpleH2[line.Dir] {
			tx, ty := line.stepAlong(j)
			s.replaceWhite2(tx, ty, px, py, ht, row.data)
		} else if err := s.addWhite(px, py, ht, row.data); err != nil {
			return err
		}
		line.H2 = line.Length - i

	case patchStair:
		for j := 0; j < 4*i; j += 4 {
			if line.H1 < 5+j {
				if err := s.addWhite(line.X1+3+j, line.Y1-4-j, 4, row.data); err != nil {
					return err
				}
			}
		}
		if j := 5 + 4*(i-1); line.H1 < j {
			line.H1 = j
		}
	}
	return nil
}
