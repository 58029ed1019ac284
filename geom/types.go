package geom

import (
	"fmt"
	"math"
)

// Point is a pair of finite real coordinates plus a stable integer
// identity assigned at ingestion. Points are immutable after
// construction; equality is identity-based even though coordinates may
// tie (cocircular or coincident-looking inputs are legal until ingestion
// rejects exact duplicates).
type Point struct {
	X, Y float64
	ID   uint32
}

// ErrNonFiniteCoordinate is returned by NewPoint when X or Y is NaN or
// infinite.
var ErrNonFiniteCoordinate = fmt.Errorf("geom: non-finite coordinate")

// NewPoint constructs a Point, rejecting non-finite coordinates. The
// caller assigns id (ingestion numbers points 0..n-1 by position, per
// the module's external interface).
func NewPoint(x, y float64, id uint32) (Point, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, ErrNonFiniteCoordinate
	}
	return Point{X: x, Y: y, ID: id}, nil
}

// Equal is identity equality, not coordinate equality: two points with
// the same (x, y) but different IDs are distinct.
func (p Point) Equal(o Point) bool { return p.ID == o.ID }

func (p Point) String() string {
	return fmt.Sprintf("P%d(%g,%g)", p.ID, p.X, p.Y)
}

// Less orders points lexicographically by (X, then Y), the sort the
// sequential divide-and-conquer solver requires its input pre-sorted
// under, then ties broken by ID for a total, deterministic order.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.ID < b.ID
}
