package geo

import (
	"math"
	"testing"

	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestBasicRect(t *testing.T) {
	r := BasicRect(Vector2d{X: 1, Y: 2}, 3, 4)
	assert.Equal(t, Rect2d{
		V1: Vector2d{X: 1, Y: 2},
		V2: Vector2d{X: 4, Y: 2},
		V3: Vector2d{X: 4, Y: 6},
		V4: Vector2d{X: 1, Y: 6},
	}, r)
	assert.Equal(t, Vector2d{X: 2.5, Y: 4}, r.Center())
	assert.Equal(t, [4]Vector2d{r.V1, r.V2, r.V3, r.V4}, r.Corners())
	assert.Equal(t, "Rect<Vec2d<1, 2>, Vec2d<4, 2>, Vec2d<4, 6>, Vec2d<1, 6>>", r.String())
}

func TestRectAt(t *testing.T) {
	r := BasicRect(Vector2d{}, 1, 1)
	for i, exp := range r.Corners() {
		v, err := r.At(i)
		require.NoError(t, err)
		assert.Equal(t, exp, v)
	}
	for _, i := range []int{-1, 4, 100} {
		_, err := r.At(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestRectCenterUsesDiagonal(t *testing.T) {
	r := Rect2d{
		V1: Vector2d{},
		V2: Vector2d{X: 10},
		V3: Vector2d{X: 2, Y: 2},
		V4: Vector2d{Y: 10},
	}
	assert.Equal(t, Vector2d{X: 1, Y: 1}, r.Center())
}

func TestRectTransform(t *testing.T) {
	r := BasicRect(Vector2d{}, 2, 1).Transform(Rotate(math.Pi / 2))
	for i, exp := range [4]Vector2d{{}, {X: 0, Y: -2}, {X: 1, Y: -2}, {X: 1, Y: 0}} {
		v, _ := r.At(i)
		assert.True(t, v.Equal(exp), "corner %d: %s", i, v)
	}

	bounds := r.Bounds()
	assert.True(t, bounds.Base.Equal(Vector2d{X: 0, Y: -2}))
	assert.True(t, bounds.Dimensions.Equal(Vector2d{X: 1, Y: 2}))
}

var _ rasterx.Adder = (*pathRecorder)(nil) // assert interface conformance

// records the path commands
type pathRecorder struct {
	points []fixed.Point26_6
	starts int
	closed bool
}

func (p *pathRecorder) Start(a fixed.Point26_6) {
	p.starts++
	p.points = append(p.points, a)
}
func (p *pathRecorder) Line(b fixed.Point26_6)             { p.points = append(p.points, b) }
func (p *pathRecorder) QuadBezier(b, c fixed.Point26_6)    {}
func (p *pathRecorder) CubeBezier(b, c, d fixed.Point26_6) {}
func (p *pathRecorder) Stop(closeLoop bool)                { p.closed = closeLoop }

func TestRectAddTo(t *testing.T) {
	r := BasicRect(Vector2d{X: 1, Y: 1}, 2, 0.5)
	var rec pathRecorder
	r.AddTo(&rec)

	assert.Equal(t, 1, rec.starts)
	assert.True(t, rec.closed)
	assert.Equal(t, []fixed.Point26_6{
		{X: 64, Y: 64},
		{X: 192, Y: 64},
		{X: 192, Y: 96},
		{X: 64, Y: 96},
	}, rec.points)
}
