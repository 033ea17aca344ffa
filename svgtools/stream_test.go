package svgtools

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/benoitkugler/geo/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedDocument = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
	<g id="outer" transform="translate(10 20)">
		<rect id="r" transform="scale(2 2)" x="0" y="0" width="1" height="1"/>
		<g>
			<circle id="c" transform="rotate(90)" r="1"/>
		</g>
	</g>
	<path id="p" d="M0 0 L1 1"/>
</svg>`

func TestReadTransforms(t *testing.T) {
	ets, err := ReadTransforms(strings.NewReader(nestedDocument), StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, ets, 3)

	outer, rect, circle := ets[0], ets[1], ets[2]
	assert.Equal(t, "outer", outer.ID)
	assert.Equal(t, "g", outer.Tag)
	assert.True(t, outer.Global.Equal(outer.Local))

	assert.Equal(t, "r", rect.ID)
	assert.Equal(t, "rect", rect.Tag)
	assert.Equal(t, geo.ScaleXY(2, 2), rect.Local)
	// scaled, then translated by the parent
	assert.True(t, rect.Global.Transform(geo.Vector2d{X: 1, Y: 1}).Equal(geo.Vector2d{X: 12, Y: 22}))

	// the intermediate group has no transform
	assert.Equal(t, "c", circle.ID)
	assert.True(t, circle.Global.Equal(circle.Local.Mul(outer.Global)))
	assert.True(t, circle.Global.Transform(geo.Vector2d{X: 1}).Equal(geo.Vector2d{X: 10, Y: 21}))
}

const invalidDocument = `<svg xmlns="http://www.w3.org/2000/svg">
	<g id="bad" transform="shear(1 2)">
		<rect id="inner" transform="translate(1 1)" width="1" height="1"/>
	</g>
</svg>`

func TestReadTransformsErrorModes(t *testing.T) {
	ets, err := ReadTransforms(strings.NewReader(invalidDocument), StrictErrorMode)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Nil(t, ets)

	ets, err = ReadTransforms(strings.NewReader(invalidDocument), IgnoreErrorMode)
	require.NoError(t, err)
	require.Len(t, ets, 1)
	assert.Equal(t, "inner", ets[0].ID)
	assert.True(t, ets[0].Global.Equal(ets[0].Local))

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	ets, err = ReadTransforms(strings.NewReader(invalidDocument), WarnErrorMode)
	require.NoError(t, err)
	assert.Len(t, ets, 1)
	assert.Contains(t, buf.String(), "shear")
}

func TestReadTransformsCharset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<svg><g id=\"caf\xe9\" transform=\"scale(2 3)\"/></svg>"
	ets, err := ReadTransforms(strings.NewReader(doc), StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, ets, 1)
	assert.Equal(t, "café", ets[0].ID)
	assert.Equal(t, geo.ScaleXY(2, 3), ets[0].Local)
}

func TestReadTransformsInvalidXML(t *testing.T) {
	_, err := ReadTransforms(strings.NewReader(""), StrictErrorMode)
	assert.Error(t, err)

	ets, err := ReadTransforms(strings.NewReader(`<svg><g id="a" transform="scale(2 2)"></svg>`), StrictErrorMode)
	assert.Error(t, err)
	assert.Nil(t, ets)
}
