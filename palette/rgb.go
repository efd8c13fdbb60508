package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Levels is the number of distinct values a quantized channel can take.
const Levels = 16

type RGB struct {
	R, G, B uint8
}

// Quantize masks a channel down to the nearest lower multiple of 16.
func Quantize(v uint8) uint8 {
	return v / Levels * Levels
}

func (c RGB) Quantize() RGB {
	return RGB{
		R: Quantize(c.R),
		G: Quantize(c.G),
		B: Quantize(c.B),
	}
}

// Key packs the quantized channels into 12 bits, one nibble per channel.
// Colors that quantize to the same value share a key.
func (c RGB) Key() uint16 {
	q := c.Quantize()
	return uint16(q.R>>4)<<8 | uint16(q.G>>4)<<4 | uint16(q.B>>4)
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	col, _ := colorful.MakeColor(c)
	return col.Hex()
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// FromKey is the inverse of Key.
func FromKey(k uint16) RGB {
	return RGB{
		R: uint8(k>>8&0x0f) << 4,
		G: uint8(k>>4&0x0f) << 4,
		B: uint8(k&0x0f) << 4,
	}
}
