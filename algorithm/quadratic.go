package algorithm

import "github.com/frascr/frascr/field"

// escapeRadiusSq is the squared bailout radius of the quadratic map.
const escapeRadiusSq = 4.0

// prepareMandelbrot iterates z -> z^2 + c from z = 0 with c the sample.
// Samples outside the bailout circle are 0 without iterating.
func prepareMandelbrot(c field.Canvas) (Iterator, error) {
	limit := c.Escape
	return func(x0, y0 float64) uint32 {
		if x0*x0+y0*y0 > escapeRadiusSq {
			return 0
		}
		var x, y float64
		var n uint32
		for n < limit {
			xsq, ysq := x*x, y*y
			if xsq+ysq > escapeRadiusSq {
				break
			}
			y = (x+x)*y + y0
			x = xsq - ysq + x0
			n++
		}
		return n
	}, nil
}

// prepareJulia iterates z -> z^2 + c from z = the sample, with c fixed at
// the canvas offset. The count is the number of steps that stay inside
// the bailout circle.
func prepareJulia(c field.Canvas) (Iterator, error) {
	limit := c.Escape
	cre, cim := c.OffsetRe, c.OffsetIm
	return func(x, y float64) uint32 {
		var n uint32
		for n < limit {
			x, y = x*x-y*y+cre, (x+x)*y+cim
			if x*x+y*y > escapeRadiusSq {
				break
			}
			n++
		}
		return n
	}, nil
}
