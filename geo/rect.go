package geo

import (
	"fmt"
	"math"

	"github.com/srwiley/rasterx"
)

// Rect2d is a quadrilateral, typically a rotated rectangle.
// The four corners are stored as given: neither their winding
// nor the convexity is enforced.
type Rect2d struct {
	V1, V2, V3, V4 Vector2d
}

// BasicRect returns the axis aligned rectangle starting at base,
// with corners in the order base, base + (w, 0), base + (w, h), base + (0, h).
func BasicRect(base Vector2d, width, height float64) Rect2d {
	return Rect2d{
		V1: base,
		V2: base.Add(Vector2d{X: width}),
		V3: base.Add(Vector2d{X: width, Y: height}),
		V4: base.Add(Vector2d{Y: height}),
	}
}

// Center is the middle of the V1-V3 diagonal.
// V2 and V4 are not taken into account.
func (r Rect2d) Center() Vector2d {
	return r.V1.Add(r.V3).Div(2)
}

// At returns the corner with index 0 to 3 (V1 to V4),
// or ErrIndexOutOfRange.
func (r Rect2d) At(index int) (Vector2d, error) {
	switch index {
	case 0:
		return r.V1, nil
	case 1:
		return r.V2, nil
	case 2:
		return r.V3, nil
	case 3:
		return r.V4, nil
	default:
		return Vector2d{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
}

// Corners returns V1, V2, V3, V4
func (r Rect2d) Corners() [4]Vector2d {
	return [4]Vector2d{r.V1, r.V2, r.V3, r.V4}
}

// Transform maps each corner with m, so that rotations are preserved.
func (r Rect2d) Transform(m TransformationMatrix) Rect2d {
	return Rect2d{
		V1: m.Transform(r.V1),
		V2: m.Transform(r.V2),
		V3: m.Transform(r.V3),
		V4: m.Transform(r.V4),
	}
}

// Bounds returns the smallest axis aligned box containing the four corners.
func (r Rect2d) Bounds() Box2d {
	corners := r.Corners()
	lo, hi := corners[0], corners[0]
	for _, v := range corners[1:] {
		lo.X, lo.Y = math.Min(lo.X, v.X), math.Min(lo.Y, v.Y)
		hi.X, hi.Y = math.Max(hi.X, v.X), math.Max(hi.Y, v.Y)
	}
	return BoxFromEdges(lo, hi)
}

// AddTo adds the closed path V1, V2, V3, V4 to the given path builder.
func (r Rect2d) AddTo(q rasterx.Adder) {
	q.Start(r.V1.Fixed())
	q.Line(r.V2.Fixed())
	q.Line(r.V3.Fixed())
	q.Line(r.V4.Fixed())
	q.Stop(true)
}

func (r Rect2d) String() string {
	return fmt.Sprintf("Rect<%s, %s, %s, %s>", r.V1, r.V2, r.V3, r.V4)
}
