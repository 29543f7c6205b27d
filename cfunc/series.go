package cfunc

import "math/cmplx"

// evalSeries sums a truncated power series for the selected target
// function. Taylor expands around 0 for exp/sin and around 1 for log.
//
// The Laurent mode is genuine only for entire targets, where it equals
// the Taylor sum. For the pole-bearing targets (1/z, log z) it falls
// back to the exact closed form instead of a negative-power expansion;
// the visualized "approximation" is therefore exact there. This is a
// known limitation of the demo, not a numeric shortcut.
func evalSeries(z complex128, k Kind, p Params) (complex128, error) {
	terms := p.Terms
	if terms < 1 {
		terms = 1
	}
	if terms > MaxTerms {
		terms = MaxTerms
	}

	if p.Mode == Laurent {
		switch k {
		case SeriesReciprocal:
			return Div(1, z)
		case SeriesLog:
			if cmplx.Abs(z) < Eps {
				return 0, ErrPole
			}
			return cmplx.Log(z), nil
		}
	}

	switch k {
	case SeriesExp:
		// exp z = sum z^n / n!, n = 0..terms.
		var sum complex128
		pow := complex(1, 0)
		fact := 1.0
		for n := 0; n <= terms; n++ {
			sum += pow / complex(fact, 0)
			pow *= z
			fact *= float64(n + 1)
			if cmplx.Abs(pow) > TermBlowup {
				return 0, ErrDiverged
			}
		}
		return sum, nil

	case SeriesSin:
		// sin z = sum (-1)^n z^(2n+1) / (2n+1)!, n = 0..terms.
		var sum complex128
		pow := z
		z2 := z * z
		fact := 1.0
		for n := 0; n <= terms; n++ {
			term := pow / complex(fact, 0)
			if n%2 == 1 {
				term = -term
			}
			sum += term
			if cmplx.Abs(term) > TermBlowup {
				return 0, ErrDiverged
			}
			pow *= z2
			fact *= float64(2*n+2) * float64(2*n+3)
		}
		return sum, nil

	case SeriesLog:
		// log z around 1: sum (-1)^(n+1) (z-1)^n / n, n = 1..terms.
		if cmplx.Abs(z) < Eps {
			return 0, ErrPole
		}
		w := z - 1
		var sum complex128
		pow := w
		for n := 1; n <= terms; n++ {
			term := pow / complex(float64(n), 0)
			if n%2 == 0 {
				term = -term
			}
			sum += term
			if cmplx.Abs(term) > TermBlowup {
				return 0, ErrDiverged
			}
			pow *= w
		}
		return sum, nil

	case SeriesReciprocal:
		// 1/z has no Taylor expansion around 0; the demo shows the
		// closed form for both modes.
		return Div(1, z)
	}
	return 0, ErrNotFinite
}
