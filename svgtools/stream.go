package svgtools

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/benoitkugler/geo/geo"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how ReadTransforms reacts to
// an invalid transform attribute.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips the attribute, as if it was absent
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips the attribute and logs the error
	WarnErrorMode
	// StrictErrorMode aborts the parsing
	StrictErrorMode
)

// ElementTransform is the transformation defined on one element.
type ElementTransform struct {
	Tag, ID string
	// Local is the value of the transform attribute
	Local geo.TransformationMatrix
	// Global also includes the transformations of the ancestors,
	// and maps the element coordinates to the root coordinates.
	Global geo.TransformationMatrix
}

// ReadTransforms reads an SVG document from the given stream
// and returns, in document order, the elements having a transform attribute.
// No partial result is returned on error.
// Only the transform attribute is interpreted: units, viewBox and
// nested viewports are ignored.
func ReadTransforms(stream io.Reader, errMode ErrorMode) ([]ElementTransform, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		out     []ElementTransform
		seenTag bool
	)
	stack := []geo.TransformationMatrix{geo.Identity()}
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			parent := stack[len(stack)-1]
			et, ok, err := readElementTransform(se, parent)
			if err != nil {
				if errMode == StrictErrorMode {
					return nil, err
				} else if errMode == WarnErrorMode {
					log.Println(err)
				}
			}
			if ok {
				out = append(out, et)
				stack = append(stack, et.Global)
			} else {
				stack = append(stack, parent)
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	return out, nil
}

// readElementTransform returns false if the element has no (valid) transform
func readElementTransform(se xml.StartElement, parent geo.TransformationMatrix) (ElementTransform, bool, error) {
	et := ElementTransform{Tag: se.Name.Local}
	var (
		value string
		has   bool
	)
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "id":
			et.ID = attr.Value
		case "transform":
			value, has = attr.Value, true
		}
	}
	if !has {
		return et, false, nil
	}
	local, err := ParseTransform(value)
	if err != nil {
		return et, false, fmt.Errorf("element <%s>: %w", et.Tag, err)
	}
	et.Local = local
	et.Global = local.Mul(parent)
	return et, true, nil
}
