// Provides simple 2D value types: vectors, affine
// transformation matrices, axis aligned boxes and
// general quadrilaterals.
// All the types are immutable: every operation returns a new value.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Epsilon is the tolerance used by the Equal methods.
// It bounds the sum of the absolute differences of all the components.
const Epsilon = 1e-6

var (
	// ErrZeroLength is returned when normalizing a vector without magnitude.
	ErrZeroLength = errors.New("geo: zero length vector")
	// ErrIndexOutOfRange is returned by indexed corner access.
	ErrIndexOutOfRange = errors.New("geo: corner index out of range")
	// ErrSingular is returned when inverting a non invertible matrix.
	ErrSingular = errors.New("geo: singular matrix")
)

// Vector2d is a 2D vector, also used as a point.
type Vector2d struct {
	X, Y float64
}

// Add returns v + o
func (v Vector2d) Add(o Vector2d) Vector2d {
	return Vector2d{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2d) Sub(o Vector2d) Vector2d {
	return Vector2d{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by k.
func (v Vector2d) Mul(k float64) Vector2d {
	return Vector2d{X: v.X * k, Y: v.Y * k}
}

// Div divides both components by k. As for floats, k = 0 yields
// infinite or NaN components.
func (v Vector2d) Div(k float64) Vector2d {
	return Vector2d{X: v.X / k, Y: v.Y / k}
}

// Neg returns -v
func (v Vector2d) Neg() Vector2d {
	return Vector2d{X: -v.X, Y: -v.Y}
}

// Abs returns the component-wise absolute value.
func (v Vector2d) Abs() Vector2d {
	return Vector2d{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Magnitude is the euclidean length of v.
func (v Vector2d) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector with the direction of v,
// or ErrZeroLength if v has no magnitude.
func (v Vector2d) Normalized() (Vector2d, error) {
	l := v.Magnitude()
	if l == 0 {
		return Vector2d{}, ErrZeroLength
	}
	return v.Div(l), nil
}

// ApproxEqual returns true if the summed absolute difference
// of the components is less than eps.
func (v Vector2d) ApproxEqual(o Vector2d, eps float64) bool {
	return math.Abs(v.X-o.X)+math.Abs(v.Y-o.Y) < eps
}

// Equal compares with the default tolerance Epsilon.
func (v Vector2d) Equal(o Vector2d) bool {
	return v.ApproxEqual(o, Epsilon)
}

func (v Vector2d) String() string {
	return fmt.Sprintf("Vec2d<%s, %s>", formatFloat(v.X), formatFloat(v.Y))
}

// Fixed converts to a 26.6 fixed point, truncating the fractional part
// beyond 1/64. Coordinates must lie within ±2^25: larger values overflow.
func (v Vector2d) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}

// Vector2dFromFixed is the inverse of Vector2d.Fixed
func Vector2dFromFixed(p fixed.Point26_6) Vector2d {
	return Vector2d{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// formatFloat rounds to 3 digits and strips a null fractional part.
func formatFloat(f float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.3f", f), ".000")
}
