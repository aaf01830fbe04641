package walls

// The shading bitmaps. Each row is a 16-bit mask in which a zero bit clears
// the screen to white and a one bit leaves it alone; the renderer ANDs the
// rows into the frame buffer. All values are hand-tuned to line up with the
// eight wall slopes and must not be "simplified".

// hashFigure is the diagonal crosshatch stamped on junctions.
var hashFigure = []uint16{0x8000, 0x6000, 0x1800, 0x0600, 0x0180, 0x0040}

// Corrective pieces for the three headings whose baseline endpoint patterns
// alone leave visible gaps.
var (
	neGlitch   = []uint16{0xEFFF, 0xCFFF, 0x8FFF, 0x0FFF}
	eneGlitch1 = []uint16{0x07FF, 0x1FFF, 0x7FFF}
	eneGlitch2 = []uint16{0xFF3F, 0xFC3F, 0xF03F, 0xC03F, 0x003F}
	eseGlitch  = []uint16{0x3FFF, 0xCFFF, 0xF3FF, 0xFDFF}
)

// Baseline six-row endpoint patterns, one per heading and endpoint.
var (
	genericTop = []uint16{0xFFFF, 0x3FFF, 0x0FFF, 0x03FF, 0x00FF, 0x007F}
	nneBot     = []uint16{0x800F, 0xC01F, 0xF01F, 0xFC3F, 0xFF3F, 0xFFFF}
	neBot      = []uint16{0x8001, 0xC003, 0xF007, 0xFC0F, 0xFF1F, 0xFFFF}
	eneLeft    = []uint16{0x8000, 0xC000, 0xF000, 0xFC01, 0xFF07, 0xFFDF}
	eLeft      = []uint16{0xFFFF, 0xFFFF, 0xF000, 0xFC00, 0xFF00, 0xFF80}
	eseRight   = []uint16{0xFFFF, 0x3FFF, 0x8FFF, 0xE3FF, 0xF8FF, 0xFE7F}
	seTop      = []uint16{0xFFFF, 0xFFFF, 0xEFFF, 0xF3FF, 0xF8FF, 0xFC3F}
	seBot      = []uint16{0x87FF, 0xC3FF, 0xF1FF, 0xFCFF, 0xFF7F, 0xFFFF}
	sseTop     = []uint16{0xFFFF, 0xBFFF, 0xCFFF, 0xC3FF, 0xE0FF, 0xE03F}
	sseBot     = []uint16{0x80FF, 0xC07F, 0xF07F, 0xFC3F, 0xFF3F, 0xFFFF}
	sBot       = []uint16{0x803F, 0xC03F, 0xF03F, 0xFC3F, 0xFF3F, 0xFFFF}
)

// whitePicts maps a heading to its start and end endpoint patterns.
// A nil entry means that endpoint gets no baseline piece.
var whitePicts = [DirCount][2][]uint16{
	DirNone: {nil, nil},
	DirS:    {genericTop, sBot},
	DirSSE:  {sseTop, sseBot},
	DirSE:   {seTop, seBot},
	DirESE:  {nil, eseRight},
	DirE:    {eLeft, genericTop},
	DirENE:  {eneLeft, genericTop},
	DirNE:   {neBot, genericTop},
	DirNNE:  {nneBot, genericTop},
}

// Default shading bounds per heading: H1 starts at simpleH1, H2 at the
// wall's length plus simpleH2.
var (
	simpleH1 = [DirCount]int{0, 6, 6, 6, 12, 16, 0, 1, 0}
	simpleH2 = [DirCount]int{0, 0, 0, 0, -1, 0, -11, -5, -5}
)

// Junction patch patterns, indexed into by the orientation-pair rules.
var (
	nePatch  = []uint16{0xE000, 0xC001, 0x8003, 0x0007}
	enePatch = []uint16{0xFC00, 0xF003, 0xC00F, 0x003F}
	ePatch   = []uint16{0x0003, 0x0003, 0x0003, 0x0003}
	sePatch  = []uint16{
		0x07FF, 0x83FF, 0xC1FF, 0xE0FF, 0xF07F, 0xF83F, 0xFC1F,
		0xFE0F, 0xFF07, 0xFF83, 0xFFC1,
	}
	ssePatch = []uint16{
		0x00FF, 0x00FF, 0x807F, 0x807F, 0xC03F, 0xC03F,
		0xE01F, 0xE01F, 0xF00F, 0xF00F, 0xF807, 0xF807,
		0xFC03, 0xFC03, 0xFE01, 0xFE01, 0xFF00, 0xFF00,
	}
	nPatch = makeNPatch()
)

func makeNPatch() []uint16 {
	d := make([]uint16, 22)
	for i := range d {
		d[i] = 0x003F
	}
	return d
}
