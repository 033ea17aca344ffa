package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	"gonum.org/v1/gonum/mat"
)

// TransformationMatrix is an affine transformation, given by the
// 6 free parameters of the homogeneous matrix
//
//	[a b 0]
//	[c d 0]
//	[e f 1]
//
// acting on row vectors [x y 1]. It maps (x, y) to
// (a*x + c*y + e, b*x + d*y + f).
type TransformationMatrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform, that is Scale(1).
func Identity() TransformationMatrix { return Scale(1) }

// Scale returns a uniform scaling by k.
func Scale(k float64) TransformationMatrix { return ScaleXY(k, k) }

// ScaleXY returns a scaling by sx horizontally and sy vertically.
func ScaleXY(sx, sy float64) TransformationMatrix {
	return TransformationMatrix{A: sx, D: sy}
}

// Translate returns a translation by v.
func Translate(v Vector2d) TransformationMatrix {
	return TransformationMatrix{A: 1, D: 1, E: v.X, F: v.Y}
}

// Rotate returns the rotation (cos phi, -sin phi, sin phi, cos phi, 0, 0)
// around the origin. In the usual y-up convention this is a rotation by -phi,
// which accounts for the inverted y axis of SVG.
func Rotate(phi float64) TransformationMatrix {
	sin, cos := math.Sincos(phi)
	return TransformationMatrix{A: cos, B: -sin, C: sin, D: cos}
}

// RotateAround returns Rotate(phi) with center as fixed point,
// that is Translate(-center) * Rotate(phi) * Translate(center).
func RotateAround(phi float64, center Vector2d) TransformationMatrix {
	return Translate(center.Neg()).Mul(Rotate(phi)).Mul(Translate(center))
}

// SkewX returns a skew along the x axis by phi radians.
func SkewX(phi float64) TransformationMatrix {
	return TransformationMatrix{A: 1, C: math.Tan(phi), D: 1}
}

// SkewY returns a skew along the y axis by phi radians.
func SkewY(phi float64) TransformationMatrix {
	return TransformationMatrix{A: 1, B: math.Tan(phi), D: 1}
}

// Values returns the parameters in the order a, b, c, d, e, f.
func (m TransformationMatrix) Values() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Transform applies the matrix to the point v.
func (m TransformationMatrix) Transform(v Vector2d) Vector2d {
	return Vector2d{
		X: m.A*v.X + m.C*v.Y + m.E,
		Y: m.B*v.X + m.D*v.Y + m.F,
	}
}

// Mul returns the composition of m and o: applying the result to a point
// is the same as applying m first, then o.
func (m TransformationMatrix) Mul(o TransformationMatrix) TransformationMatrix {
	return TransformationMatrix{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
		E: m.E*o.A + m.F*o.C + o.E,
		F: m.E*o.B + m.F*o.D + o.F,
	}
}

// ApproxEqual returns true if the sum of the absolute differences
// of the six parameters is less than eps.
// The tolerance bounds the total error, not the error of each parameter.
func (m TransformationMatrix) ApproxEqual(o TransformationMatrix, eps float64) bool {
	mv, ov := m.Values(), o.Values()
	var sum float64
	for i := range mv {
		sum += math.Abs(mv[i] - ov[i])
	}
	return sum < eps
}

// Equal compares with the default tolerance Epsilon.
func (m TransformationMatrix) Equal(o TransformationMatrix) bool {
	return m.ApproxEqual(o, Epsilon)
}

// IsIdentity returns true if m equals Identity(), up to Epsilon.
func (m TransformationMatrix) IsIdentity() bool {
	return m.Equal(Identity())
}

// Determinant of the linear part.
func (m TransformationMatrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Dense returns the 3x3 homogeneous matrix, so that
// m.Mul(o).Dense() is the matrix product of m.Dense() and o.Dense().
func (m TransformationMatrix) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m.A, m.B, 0,
		m.C, m.D, 0,
		m.E, m.F, 1,
	})
}

func fromDense(d mat.Matrix) TransformationMatrix {
	return TransformationMatrix{
		A: d.At(0, 0), B: d.At(0, 1),
		C: d.At(1, 0), D: d.At(1, 1),
		E: d.At(2, 0), F: d.At(2, 1),
	}
}

// Inverse returns the transformation undoing m,
// or ErrSingular if m collapses the plane (null determinant).
// Ill-conditioned matrices, such as large translations, are still inverted.
func (m TransformationMatrix) Inverse() (TransformationMatrix, error) {
	if m.Determinant() == 0 {
		return TransformationMatrix{}, ErrSingular
	}
	var inv mat.Dense
	if err := inv.Inverse(m.Dense()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return TransformationMatrix{}, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		// the result is computed, only with a poor precision estimate
	}
	return fromDense(&inv), nil
}

// Matrix2D converts to the rasterx representation,
// which shares the same parameter layout.
// Note that rasterx.Matrix2D.Mult composes in the opposite order:
// a.Mult(b) applies b first, whereas a.Mul(b) applies a first.
func (m TransformationMatrix) Matrix2D() rasterx.Matrix2D {
	return rasterx.Matrix2D(m)
}

// FromMatrix2D is the inverse of TransformationMatrix.Matrix2D
func FromMatrix2D(m rasterx.Matrix2D) TransformationMatrix {
	return TransformationMatrix(m)
}

// String returns 'Matrix<identity>' or the six rounded parameters.
func (m TransformationMatrix) String() string {
	if m.IsIdentity() {
		return "Matrix<identity>"
	}
	values := m.Values()
	chunks := make([]string, len(values))
	for i, v := range values {
		chunks[i] = formatFloat(v)
	}
	return "Matrix<" + strings.Join(chunks, ", ") + ">"
}
