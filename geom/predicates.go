package geom

// Orientation is the result of Orient: c's position relative to the
// directed line a->b.
type Orientation int

const (
	// Collinear: c lies exactly on the line through a and b.
	Collinear Orientation = iota
	// Left: c is strictly left of the directed line a->b.
	Left
	// Right: c is strictly right of the directed line a->b.
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "COLLINEAR"
	}
}

// Orient classifies c relative to the directed line a->b by the sign of
// the 2x2 determinant (b.x-a.x)(c.y-a.y) - (b.y-a.y)(c.x-a.x).
//
// The fast float64 path is used whenever the magnitude of the
// determinant clears a conservative error bound; otherwise Orient falls
// back to exact rational arithmetic (orientExact) so that the sign is
// never wrong due to cancellation, only ever exactly zero when the three
// points are truly collinear. A tie at Collinear is never re-litigated
// by a later, possibly inconsistent float comparison: callers that need
// a deterministic tie-break (see InCircle) compare Point.ID instead.
func Orient(a, b, c Point) Orientation {
	acx := a.X - c.X
	bcx := b.X - c.X
	acy := a.Y - c.Y
	bcy := b.Y - c.Y
	det := acx*bcy - acy*bcx

	bound := orientErrorBound(acx, bcx, acy, bcy)
	if det > bound {
		return Left
	}
	if det < -bound {
		return Right
	}
	return orientExact(a, b, c)
}

// orientErrorBound is a conservative Shewchuk-style error bound for the
// expression acx*bcy - acy*bcx computed in float64: a small constant
// multiple of machine epsilon times the magnitude of the largest term
// that could have contributed rounding error.
func orientErrorBound(acx, bcx, acy, bcy float64) float64 {
	const epsilon = 1.1102230246251565e-16 // 2^-53
	const resultBoundFactor = 3.3306690738754716e-16 // (3 + 16*eps)*eps, rounded up
	detsum := absf(acx*bcy) + absf(acy*bcx)
	return resultBoundFactor * detsum
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// InCircle reports whether d lies strictly inside the circle through a,
// b, c, given a, b, c in CCW order. It is the sign of the 4x4
// determinant of the standard paraboloid lifting of a, b, c, d.
//
// If Orient(a, b, c) has already been classified Collinear, the three
// points have no well-defined circumcircle; InCircle then falls back to
// the same deterministic, lexicographic-on-ID tie-break used throughout
// this module instead of computing a determinant whose sign would be
// numerically meaningless, per the consistency policy in geom's package
// doc.
func InCircle(a, b, c, d Point) bool {
	if Orient(a, b, c) == Collinear {
		return inCircleCollinearTieBreak(a, b, c, d)
	}

	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdx*cdy-bdy*cdx) -
		blift*(adx*cdy-ady*cdx) +
		clift*(adx*bdy-ady*bdx)

	bound := inCircleErrorBound(adx, ady, bdx, bdy, cdx, cdy)
	if det > bound {
		return true
	}
	if det < -bound {
		return false
	}
	return inCircleExact(a, b, c, d)
}

func inCircleErrorBound(adx, ady, bdx, bdy, cdx, cdy float64) float64 {
	const resultBoundFactor = 1.1102230246251565e-15 // 10*eps, rounded up
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy
	permanent := alift*(absf(bdx*cdy)+absf(bdy*cdx)) +
		blift*(absf(adx*cdy)+absf(ady*cdx)) +
		clift*(absf(adx*bdy)+absf(ady*bdx))
	return resultBoundFactor * permanent
}

// inCircleCollinearTieBreak resolves the case where a, b, c are
// collinear: the "circle" through them is degenerate, so any downstream
// InCircle query involving this triple is decided by a deterministic
// secondary rule (lexicographic on Point.ID) instead, so that the same
// triple never gets contradictory classifications from different
// recursive call sites.
func inCircleCollinearTieBreak(a, b, c, d Point) bool {
	ids := [3]uint32{a.ID, b.ID, c.ID}
	minID := ids[0]
	for _, id := range ids[1:] {
		if id < minID {
			minID = id
		}
	}
	// Deterministic, not geometric: d is never "inside" a degenerate
	// (zero-area) circle. The lexicographic rule only has to guarantee
	// the same answer every time this triple is re-queried.
	return d.ID < minID
}
