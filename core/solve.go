package core

import "math"

// Solve resolves the shared quadratic root policy used by every quadric
// surface's Intersect. Along a ray x(t) = x0 + t*omega, a quadric surface
// satisfies A*t^2 + 2*B*t + C = 0; Solve decides which root (if any) is the
// correct forward intersection distance given whether the ray originates on
// the surface's positive-sense side.
//
// Q = B^2 - A*C classifies the cases:
//
//	Q < 0                                  -> (false, 0)   no real intersection
//	inside (!positiveSense), B<=0, A>0     -> (true, (sqrt(Q)-B)/A)
//	inside, B<=0, A<=0                     -> (false, 0)   surface curves away
//	inside, B>0                            -> (true, max(0, -C/(sqrt(Q)+B)))
//	outside (positiveSense), B>=0, A>=0    -> (false, 0)
//	outside, B>=0, A<0                     -> (true, -(sqrt(Q)+B)/A)
//	outside, B<0                           -> (true, max(0, C/(sqrt(Q)-B)))
//
// The two algebraically-equivalent forms of the quadratic root are chosen
// per branch for numerical stability (avoiding cancellation when B and sqrt(Q)
// are close in magnitude); the max(0, ...) clamps absorb roundoff on grazing
// rays. The returned distance is always >= 0.
func Solve(a, b, c float64, positiveSense bool) (hit bool, distance float64) {
	q := b*b - a*c
	if q < 0 {
		return false, 0
	}
	sq := math.Sqrt(q)

	if !positiveSense {
		switch {
		case b <= 0 && a > 0:
			return true, (sq - b) / a
		case b <= 0:
			return false, 0
		default: // b > 0
			return true, math.Max(0, -c/(sq+b))
		}
	}

	switch {
	case b >= 0 && a >= 0:
		return false, 0
	case b >= 0:
		return true, -(sq + b) / a
	default: // b < 0
		return true, math.Max(0, c/(sq-b))
	}
}
