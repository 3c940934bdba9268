package algorithm

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/frascr/frascr/field"
)

// expEscapeRe is the real part beyond which exp(z) is treated as escaped.
const expEscapeRe = 50.0

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %d: %w", ErrSecondary, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// power raises z to w, skipping the logarithm for w = 1.
func power(z, w complex128) complex128 {
	if w == 1 {
		return z
	}
	return cmplx.Pow(z, w)
}

// escaped reports whether z has left the region where exp stays finite.
func escaped(z complex128) bool {
	return real(z) > expEscapeRe || cmplx.IsNaN(z) || cmplx.IsInf(z)
}

// prepareExponential iterates z -> lambda*exp(z^w) from z = 0 with lambda
// the sample. Secondary parameters "w_re w_im" are optional; without them
// w = 1, the plain lambda*exp(z) family.
func prepareExponential(c field.Canvas) (Iterator, error) {
	w := complex(1, 0)
	switch len(c.Secondary) {
	case 0:
	case 1:
		return nil, fmt.Errorf("%w: want w_re w_im, got %d value", ErrSecondary, 1)
	default:
		v, err := parseFloats(c.Secondary[:2])
		if err != nil {
			return nil, err
		}
		w = complex(v[0], v[1])
	}

	limit := c.Escape
	return func(re, im float64) uint32 {
		if re > expEscapeRe {
			return 0
		}
		lambda := complex(re, im)
		var z complex128
		var n uint32
		for n < limit && !escaped(z) {
			z = lambda * cmplx.Exp(power(z, w))
			n++
		}
		return n
	}, nil
}

// Variants of the generalised exponential Julia family, selected by the
// fifth secondary parameter.
const (
	mjLambdaTimes = 1 // z -> lambda * exp(z^w)
	mjLambdaPlus  = 2 // z -> exp(z^w + lambda)
	mjLambdaOver  = 3 // z -> exp(z^w / lambda)
)

// prepareGeneralExponential iterates one of three exponential maps from
// z = the sample, with w and lambda fixed by the secondary parameters
// "w_re w_im l_re l_im type". Whenever |z| falls below the pixel spacing
// the orbit is reset to lambda for that step.
func prepareGeneralExponential(c field.Canvas) (Iterator, error) {
	if len(c.Secondary) < 5 {
		return nil, fmt.Errorf("%w: want w_re w_im l_re l_im type, got %d values", ErrSecondary, len(c.Secondary))
	}
	v, err := parseFloats(c.Secondary[:4])
	if err != nil {
		return nil, err
	}
	kind, err := strconv.Atoi(strings.TrimSpace(c.Secondary[4]))
	if err != nil {
		return nil, fmt.Errorf("%w: type: %w", ErrSecondary, err)
	}
	w := complex(v[0], v[1])
	lambda := complex(v[2], v[3])

	var step func(zw complex128) complex128
	switch kind {
	case mjLambdaTimes:
		step = func(zw complex128) complex128 { return lambda * cmplx.Exp(zw) }
	case mjLambdaPlus:
		step = func(zw complex128) complex128 { return cmplx.Exp(zw + lambda) }
	case mjLambdaOver:
		if lambda == 0 {
			return nil, fmt.Errorf("%w: type 3 needs a non-zero lambda", ErrSecondary)
		}
		step = func(zw complex128) complex128 { return cmplx.Exp(zw / lambda) }
	default:
		return nil, fmt.Errorf("%w: type %d (want 1, 2 or 3)", ErrSecondary, kind)
	}

	limit := c.Escape
	near := c.Spacing()
	return func(re, im float64) uint32 {
		if re > expEscapeRe {
			return 0
		}
		z := complex(re, im)
		var n uint32
		for n < limit && !escaped(z) {
			if cmplx.Abs(z) < near {
				z = lambda
			} else {
				z = step(power(z, w))
			}
			n++
		}
		return n
	}, nil
}
