package finance

import "math"

// IRRSettings are the explicit bounds of the IRR iteration. They are part
// of the public contract: the solver never throws and never returns NaN.
type IRRSettings struct {
	InitialGuess  float64
	MaxIterations int
	Tolerance     float64 // |NPV| below this is converged
	DerivativeMin float64 // derivative magnitudes below this are ill-conditioned
	RateFloor     float64
	RateCeiling   float64
}

func DefaultIRRSettings() IRRSettings {
	return IRRSettings{
		InitialGuess:  0.10,
		MaxIterations: 100,
		Tolerance:     1e-4,
		DerivativeMin: 1e-10,
		RateFloor:     -0.99,
		RateCeiling:   10,
	}
}

// CalculateIRR finds the internal rate of return of a cashflow series via
// Newton-Raphson, clamping each iterate to [RateFloor, RateCeiling]. When
// the derivative is ill-conditioned it falls back to bisection over the
// clamp range if the NPV changes sign there; otherwise the last iterate is
// returned as-is, even without convergence.
func CalculateIRR(cashflows []float64, settings IRRSettings) float64 {
	if len(cashflows) == 0 {
		return 0
	}

	rate := settings.InitialGuess
	for i := 0; i < settings.MaxIterations; i++ {
		npv := npvAt(cashflows, rate)
		if math.Abs(npv) < settings.Tolerance {
			return rate
		}

		derivative := npvDerivativeAt(cashflows, rate)
		if math.Abs(derivative) < settings.DerivativeMin {
			if bisected, ok := bisectIRR(cashflows, settings); ok {
				return bisected
			}
			return rate
		}

		rate = clampRate(rate-npv/derivative, settings)
	}
	return rate
}

func npvAt(cashflows []float64, rate float64) float64 {
	npv := 0.0
	for y, amount := range cashflows {
		npv += amount / math.Pow(1+rate, float64(y))
	}
	return npv
}

func npvDerivativeAt(cashflows []float64, rate float64) float64 {
	derivative := 0.0
	for y, amount := range cashflows {
		if y == 0 {
			continue
		}
		derivative -= float64(y) * amount / math.Pow(1+rate, float64(y+1))
	}
	return derivative
}

// bisectIRR searches the clamp range for a root. Returns false when the NPV
// does not change sign across the range.
func bisectIRR(cashflows []float64, settings IRRSettings) (float64, bool) {
	lo, hi := settings.RateFloor, settings.RateCeiling
	npvLo := npvAt(cashflows, lo)
	npvHi := npvAt(cashflows, hi)
	if npvLo*npvHi > 0 {
		return 0, false
	}

	for i := 0; i < settings.MaxIterations; i++ {
		mid := (lo + hi) / 2
		npvMid := npvAt(cashflows, mid)
		if math.Abs(npvMid) < settings.Tolerance {
			return mid, true
		}
		if npvLo*npvMid < 0 {
			hi = mid
		} else {
			lo = mid
			npvLo = npvMid
		}
	}
	return (lo + hi) / 2, true
}

func clampRate(rate float64, settings IRRSettings) float64 {
	if rate < settings.RateFloor {
		return settings.RateFloor
	}
	if rate > settings.RateCeiling {
		return settings.RateCeiling
	}
	return rate
}
