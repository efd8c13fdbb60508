package raster

import (
	"image"

	"img2xlsx/palette"

	"golang.org/x/image/draw"
)

// Buffer holds decoded pixels as interleaved bytes, row-major. With
// HasAlpha every pixel is stored as A,R,G,B, otherwise as R,G,B.
type Buffer struct {
	Pix      []byte
	Width    int
	Height   int
	HasAlpha bool
}

func (b *Buffer) PixelLength() int {
	if b.HasAlpha {
		return 4
	}
	return 3
}

func (b *Buffer) Pixel(x, y int) palette.RGB {
	i := (b.Width*y + x) * b.PixelLength()
	if b.HasAlpha {
		i++
	}
	p := b.Pix[i : i+3 : i+3]
	return palette.RGB{R: p[0], G: p[1], B: p[2]}
}

type opaquer interface {
	Opaque() bool
}

// FromImage flattens img into a Buffer. The alpha channel is kept only
// when the image is not fully opaque.
func FromImage(img image.Image) *Buffer {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())

	src, ok := img.(*image.NRGBA)
	if !ok || sr.Min != (image.Point{}) || src.Stride != 4*sr.Dx() {
		src = image.NewNRGBA(dr)
		draw.Draw(src, dr, img, sr.Min, draw.Src)
	}

	hasAlpha := false
	if o, ok := img.(opaquer); ok {
		hasAlpha = !o.Opaque()
	}

	buf := &Buffer{
		Width:    dr.Dx(),
		Height:   dr.Dy(),
		HasAlpha: hasAlpha,
	}
	buf.Pix = make([]byte, 0, buf.Width*buf.Height*buf.PixelLength())
	for i, n := 0, 4*buf.Width*buf.Height; i < n; i += 4 {
		p := src.Pix[i : i+4 : i+4]
		if hasAlpha {
			buf.Pix = append(buf.Pix, p[3], p[0], p[1], p[2])
		} else {
			buf.Pix = append(buf.Pix, p[0], p[1], p[2])
		}
	}

	return buf
}
