package soft

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/texsample"
)

// FromImage uploads a decoded image into a Byte4 texture. Any source
// color model is converted to 8-bit RGBA on the way in.
func FromImage(img image.Image, opts ...Option) (*Texture, error) {
	b := img.Bounds()

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	return FromRaw(rgba.Pix, int32(b.Dx()), int32(b.Dy()), texsample.DataByte4, opts...)
}

// AverageColor returns the mean texel color of the texture, the
// precomputed stand-in a tiled descriptor shows while this texture's
// tile streams in.
func (t *Texture) AverageColor() texsample.RGBA {
	var r, g, b, a float64
	for y := int32(0); y < t.height; y++ {
		for x := int32(0); x < t.width; x++ {
			c := t.Texel(x, y)
			r += float64(c.R)
			g += float64(c.G)
			b += float64(c.B)
			a += float64(c.A)
		}
	}

	n := float64(t.width) * float64(t.height)
	return texsample.RGBA{
		R: float32(r / n),
		G: float32(g / n),
		B: float32(b / n),
		A: float32(a / n),
	}
}
