package raster

import (
	"image"
	"math"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/gg"
)

// premul is a premultiplied color with channels in [0, 1].
type premul struct {
	r, g, b, a float64
}

// solid returns c scaled by an 8-bit coverage value.
func solid(c gg.RGBA, cov uint8) premul {
	if cov == 0 {
		return premul{}
	}
	a := c.A * float64(cov) / 255
	return premul{r: c.R * a, g: c.G * a, b: c.B * a, a: a}
}

func mul8(a, b uint8) uint8 {
	// #nosec G115 -- the product of two bytes divided by 255 fits in a byte
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// composite blends src over every pixel of r, attenuated by the clip mask.
//
// Multiply follows the separable compositing formula with alpha:
//
//	co = cs*(1-ab) + cb*(1-as) + cs*cb
//	ao = as + ab*(1-as)
func (b *Backend) composite(r image.Rectangle, mode deviceframe.BlendMode, src func(x, y int) premul) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s := src(x, y)
			if b.cur.clip != nil {
				k := float64(b.cur.clip.At(x, y)) / 255
				s = premul{r: s.r * k, g: s.g * k, b: s.b * k, a: s.a * k}
			}
			if s.a <= 0 {
				continue
			}

			i := b.dst.PixOffset(x, y)
			px := b.dst.Pix[i : i+4 : i+4]
			d := premul{
				r: float64(px[0]) / 255,
				g: float64(px[1]) / 255,
				b: float64(px[2]) / 255,
				a: float64(px[3]) / 255,
			}

			var o premul
			switch mode {
			case deviceframe.BlendMultiply:
				o = premul{
					r: s.r*(1-d.a) + d.r*(1-s.a) + s.r*d.r,
					g: s.g*(1-d.a) + d.g*(1-s.a) + s.g*d.g,
					b: s.b*(1-d.a) + d.b*(1-s.a) + s.b*d.b,
					a: s.a + d.a*(1-s.a),
				}
			default:
				o = premul{
					r: s.r + d.r*(1-s.a),
					g: s.g + d.g*(1-s.a),
					b: s.b + d.b*(1-s.a),
					a: s.a + d.a*(1-s.a),
				}
			}

			px[0] = to8(o.r)
			px[1] = to8(o.g)
			px[2] = to8(o.b)
			px[3] = to8(o.a)
		}
	}
}

func to8(v float64) uint8 {
	// #nosec G115 -- clamped to [0, 255]
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
