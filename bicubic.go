package texsample

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/texsample/internal/cubic"
)

// bicubicTaps computes the four tap coordinates and the axis amplitudes
// for a bicubic reconstruction as 4 bilinear fetches. Coordinates are
// returned renormalized, with the half-texel center offset reapplied so
// the fetch handle's own bilinear unit lands exactly where the reduction
// requires. No clamping happens here; boundary behavior belongs to the
// handle's addressing mode.
func bicubicTaps(width, height int32, uv UV) (x0, x1, y0, y1, g0x, g1x, g0y, g1y float32) {
	w := float32(width)
	h := float32(height)

	x := uv.U*w - 0.5
	y := uv.V*h - 0.5

	px := math32.Floor(x)
	py := math32.Floor(y)
	fx := x - px
	fy := y - py

	g0x = cubic.G0(fx)
	g1x = cubic.G1(fx)
	g0y = cubic.G0(fy)
	g1y = cubic.G1(fy)

	x0 = (px + cubic.H0(fx) + 0.5) / w
	x1 = (px + cubic.H1(fx) + 0.5) / w
	y0 = (py + cubic.H0(fy) + 0.5) / h
	y1 = (py + cubic.H1(fy) + 0.5) / h
	return
}

// bicubic4 reconstructs a 4-component bicubic sample from four bilinear
// taps. Exact whenever the handle performs ideal bilinear filtering
// between texel centers.
func bicubic4(info *ImageInfo, uv UV) RGBA {
	x0, x1, y0, y1, g0x, g1x, g0y, g1y := bicubicTaps(info.Width, info.Height, uv)
	tex := info.Data

	row0 := tex.Fetch4(x0, y0).scale(g0x).add(tex.Fetch4(x1, y0).scale(g1x))
	row1 := tex.Fetch4(x0, y1).scale(g0x).add(tex.Fetch4(x1, y1).scale(g1x))
	return row0.scale(g0y).add(row1.scale(g1y))
}

// bicubic1 is the single-channel form of bicubic4.
func bicubic1(info *ImageInfo, uv UV) float32 {
	x0, x1, y0, y1, g0x, g1x, g0y, g1y := bicubicTaps(info.Width, info.Height, uv)
	tex := info.Data

	row0 := g0x*tex.Fetch1(x0, y0) + g1x*tex.Fetch1(x1, y0)
	row1 := g0x*tex.Fetch1(x0, y1) + g1x*tex.Fetch1(x1, y1)
	return g0y*row0 + g1y*row1
}
