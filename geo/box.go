package geo

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Box2d is an axis aligned box, given by its base (minimum) corner
// and its dimensions.
// Dimensions are not checked: they are non negative only when
// built with BoxFromEdges.
type Box2d struct {
	Base       Vector2d
	Dimensions Vector2d
}

// BoxFromEdges returns the box spanned by two opposite corners,
// given in any order.
func BoxFromEdges(v0, v1 Vector2d) Box2d {
	base := Vector2d{X: math.Min(v0.X, v1.X), Y: math.Min(v0.Y, v1.Y)}
	return Box2d{Base: base, Dimensions: v1.Sub(v0).Abs()}
}

// BoxFromFixed converts a fixed point rectangle.
func BoxFromFixed(r fixed.Rectangle26_6) Box2d {
	return BoxFromEdges(Vector2dFromFixed(r.Min), Vector2dFromFixed(r.Max))
}

// V0 is the base corner.
func (b Box2d) V0() Vector2d { return b.Base }

// V1 is the corner opposite to the base.
func (b Box2d) V1() Vector2d { return b.Base.Add(b.Dimensions) }

// Center is the middle of the box.
func (b Box2d) Center() Vector2d {
	return b.V0().Add(b.Dimensions.Div(2))
}

// Transform applies m to the two corners V0 and V1 only,
// and returns the box they span.
// As a consequence, for a rotation the result does not
// enclose the whole rotated box. Use Rect2d when rotations matter.
func (b Box2d) Transform(m TransformationMatrix) Box2d {
	return BoxFromEdges(m.Transform(b.V0()), m.Transform(b.V1()))
}

// Corners returns, in order, the base, base + (width, 0),
// base + dimensions and base + (0, height).
func (b Box2d) Corners() [4]Vector2d {
	return [4]Vector2d{
		b.Base,
		b.Base.Add(Vector2d{X: b.Dimensions.X}),
		b.Base.Add(b.Dimensions),
		b.Base.Add(Vector2d{Y: b.Dimensions.Y}),
	}
}

// Fixed converts the box to a 26.6 fixed point rectangle.
func (b Box2d) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.V0().Fixed(), Max: b.V1().Fixed()}
}

func (b Box2d) String() string {
	return fmt.Sprintf("Box<base %s, dim %s>", b.Base, b.Dimensions)
}
