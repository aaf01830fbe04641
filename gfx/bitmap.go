// Package gfx holds the 1-bit frame buffer the wall renderer draws into.
// Pixels are packed sixteen to a word, most significant bit leftmost; a set
// bit is ink, a clear bit is paper.
package gfx

// Bitmap is a Width x Height 1-bit surface. Width must be a multiple of 16.
type Bitmap struct {
	Width  int
	Height int
	Words  int // words per row
	Pix    []uint16
}

func NewBitmap(width, height int) *Bitmap {
	words := width / 16
	return &Bitmap{
		Width:  width,
		Height: height,
		Words:  words,
		Pix:    make([]uint16, words*height),
	}
}

// And32 ANDs a 32-bit window into row y: the high word at column wordX, the
// low word at wordX+1. Out-of-range columns are dropped, which matches the
// clip-mask convention of making off-screen halves write-neutral.
func (b *Bitmap) And32(wordX, y int, v uint32) {
	if y < 0 || y >= b.Height {
		return
	}
	row := y * b.Words
	if wordX >= 0 && wordX < b.Words {
		b.Pix[row+wordX] &= uint16(v >> 16)
	}
	if wordX+1 >= 0 && wordX+1 < b.Words {
		b.Pix[row+wordX+1] &= uint16(v)
	}
}

// Or32 is And32's counterpart for setting bits.
func (b *Bitmap) Or32(wordX, y int, v uint32) {
	if y < 0 || y >= b.Height {
		return
	}
	row := y * b.Words
	if wordX >= 0 && wordX < b.Words {
		b.Pix[row+wordX] |= uint16(v >> 16)
	}
	if wordX+1 >= 0 && wordX+1 < b.Words {
		b.Pix[row+wordX+1] |= uint16(v)
	}
}

// Xor32 toggles bits in the window.
func (b *Bitmap) Xor32(wordX, y int, v uint32) {
	if y < 0 || y >= b.Height {
		return
	}
	row := y * b.Words
	if wordX >= 0 && wordX < b.Words {
		b.Pix[row+wordX] ^= uint16(v >> 16)
	}
	if wordX+1 >= 0 && wordX+1 < b.Words {
		b.Pix[row+wordX+1] ^= uint16(v)
	}
}

// Pixel reports whether the pixel at (x, y) is set.
func (b *Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Pix[y*b.Words+x>>4]&(0x8000>>uint(x&15)) != 0
}

// ClearDither fills the surface with the two alternating background
// patterns, one per row parity.
func (b *Bitmap) ClearDither(p1, p2 uint16) {
	for y := 0; y < b.Height; y++ {
		p := p1
		if y&1 != 0 {
			p = p2
		}
		row := y * b.Words
		for w := 0; w < b.Words; w++ {
			b.Pix[row+w] = p
		}
	}
}

// Fill sets every word to v.
func (b *Bitmap) Fill(v uint16) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// FillRows sets every word of rows [y0, y1) to v.
func (b *Bitmap) FillRows(y0, y1 int, v uint16) {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > b.Height {
		y1 = b.Height
	}
	for i := y0 * b.Words; i < y1*b.Words; i++ {
		b.Pix[i] = v
	}
}

// WriteRGBA expands the bitmap into a premultiplied RGBA byte buffer of
// len 4*Width*Height, suitable for ebiten.Image.WritePixels. Ink maps to
// black, paper to white.
func (b *Bitmap) WriteRGBA(dst []byte) {
	i := 0
	for y := 0; y < b.Height; y++ {
		row := y * b.Words
		for w := 0; w < b.Words; w++ {
			word := b.Pix[row+w]
			for bit := 0; bit < 16; bit++ {
				var c byte = 0xFF
				if word&(0x8000>>uint(bit)) != 0 {
					c = 0x00
				}
				dst[i] = c
				dst[i+1] = c
				dst[i+2] = c
				dst[i+3] = 0xFF
				i += 4
			}
		}
	}
}
