package geom

import "math/big"

// orientExact and inCircleExact are the slow-path fallbacks for the rare
// case where the float64 determinant in Orient/InCircle falls inside its
// own error bound. float64 coordinates are exactly representable as
// big.Rat, so an exact-rational determinant gives a sign that is never
// wrong, and it only runs on inputs that are already suspected
// near-degenerate, so it never dominates the hot path.

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

// orientExact computes the exact sign of (b-a) x (c-a) via big.Rat.
func orientExact(a, b, c Point) Orientation {
	abx := new(big.Rat).Sub(ratFromFloat(b.X), ratFromFloat(a.X))
	aby := new(big.Rat).Sub(ratFromFloat(b.Y), ratFromFloat(a.Y))
	acx := new(big.Rat).Sub(ratFromFloat(c.X), ratFromFloat(a.X))
	acy := new(big.Rat).Sub(ratFromFloat(c.Y), ratFromFloat(a.Y))

	lhs := new(big.Rat).Mul(abx, acy)
	rhs := new(big.Rat).Mul(aby, acx)
	det := new(big.Rat).Sub(lhs, rhs)

	switch det.Sign() {
	case 0:
		return Collinear
	case 1:
		return Left
	default:
		return Right
	}
}

// inCircleExact computes the exact sign of the 4x4 lifted-paraboloid
// determinant via big.Rat, used only when the float64 fast path in
// InCircle is inconclusive and a, b, c are not collinear.
func inCircleExact(a, b, c, d Point) bool {
	ax, ay := ratFromFloat(a.X), ratFromFloat(a.Y)
	bx, by := ratFromFloat(b.X), ratFromFloat(b.Y)
	cx, cy := ratFromFloat(c.X), ratFromFloat(c.Y)
	dx, dy := ratFromFloat(d.X), ratFromFloat(d.Y)

	sub := func(p, q *big.Rat) *big.Rat { return new(big.Rat).Sub(p, q) }
	mul := func(p, q *big.Rat) *big.Rat { return new(big.Rat).Mul(p, q) }
	add := func(p, q *big.Rat) *big.Rat { return new(big.Rat).Add(p, q) }

	adx, ady := sub(ax, dx), sub(ay, dy)
	bdx, bdy := sub(bx, dx), sub(by, dy)
	cdx, cdy := sub(cx, dx), sub(cy, dy)

	alift := add(mul(adx, adx), mul(ady, ady))
	blift := add(mul(bdx, bdx), mul(bdy, bdy))
	clift := add(mul(cdx, cdx), mul(cdy, cdy))

	term1 := mul(alift, sub(mul(bdx, cdy), mul(bdy, cdx)))
	term2 := mul(blift, sub(mul(adx, cdy), mul(ady, cdx)))
	term3 := mul(clift, sub(mul(adx, bdy), mul(ady, bdx)))

	det := sub(add(term1, term3), term2)
	return det.Sign() > 0
}
