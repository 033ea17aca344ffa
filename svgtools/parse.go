// Implements the parsing of SVG transform attributes
// into affine transformation matrices.
// See https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/transform
package svgtools

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/geo/geo"
	"github.com/tdewolff/parse/v2/strconv"
)

var (
	// ErrUnknownOperation is returned for an operation name other than
	// matrix, translate, scale, rotate, skewX and skewY.
	ErrUnknownOperation = errors.New("unknown transform operation")
	// ErrParamMismatch is returned when the arity does not match the operation.
	ErrParamMismatch = errors.New("wrong number of arguments")
	// ErrInvalidNumber is returned for a malformed argument.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrTrailingData is returned when the input is not a list of name(args).
	ErrTrailingData = errors.New("unparsable trailing data")
)

// ParseError is returned when a transform attribute is not valid.
// It wraps one of the Err... sentinel values.
type ParseError struct {
	Input  string // the whole attribute
	Offset int    // byte offset where the faulty operation starts
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid svg transform %q at offset %d: %s", e.Input, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// operation is one name(args...) element of a transform attribute
type operation struct {
	name   string
	args   []float64
	offset int
}

func degToRad(deg float64) float64 { return deg / 180 * math.Pi }

// matrix checks the arity and returns the matrix of the operation.
// Note that the single argument forms of scale and translate are not supported.
func (op operation) matrix() (geo.TransformationMatrix, error) {
	ln := len(op.args)
	switch op.name {
	case "matrix":
		if ln == 6 {
			return geo.TransformationMatrix{
				A: op.args[0],
				B: op.args[1],
				C: op.args[2],
				D: op.args[3],
				E: op.args[4],
				F: op.args[5],
			}, nil
		}
	case "translate":
		if ln == 2 {
			return geo.Translate(geo.Vector2d{X: op.args[0], Y: op.args[1]}), nil
		}
	case "scale":
		if ln == 2 {
			return geo.ScaleXY(op.args[0], op.args[1]), nil
		}
	case "rotate":
		// the angle is negated to account for the y axis pointing down
		if ln == 1 {
			return geo.Rotate(-degToRad(op.args[0])), nil
		} else if ln == 3 {
			center := geo.Vector2d{X: op.args[1], Y: op.args[2]}
			return geo.RotateAround(-degToRad(op.args[0]), center), nil
		}
	case "skewX":
		if ln == 1 {
			return geo.SkewX(degToRad(op.args[0])), nil
		}
	case "skewY":
		if ln == 1 {
			return geo.SkewY(degToRad(op.args[0])), nil
		}
	default:
		return geo.TransformationMatrix{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op.name)
	}
	return geo.TransformationMatrix{}, fmt.Errorf("%w: %d for %s", ErrParamMismatch, ln, op.name)
}

// ParseTransform parses the value of an SVG transform attribute,
// such as 'rotate(-10 50 100) translate(-36 45.5) skewX(40) scale(1 0.5)',
// and returns the composed transformation.
// An empty (or blank) string yields the identity.
func ParseTransform(transform string) (geo.TransformationMatrix, error) {
	sc := scanner{src: transform}
	var matrices []geo.TransformationMatrix
	for {
		op, ok, err := sc.next()
		if err != nil {
			return geo.TransformationMatrix{}, &ParseError{Input: transform, Offset: sc.start, Err: err}
		}
		if !ok {
			break
		}
		m, err := op.matrix()
		if err != nil {
			return geo.TransformationMatrix{}, &ParseError{Input: transform, Offset: op.offset, Err: err}
		}
		matrices = append(matrices, m)
	}

	// the last operation is applied first to a point
	m := geo.Identity()
	for i := len(matrices) - 1; i >= 0; i-- {
		m = m.Mul(matrices[i])
	}
	return m, nil
}

// scanner splits a transform attribute into operations
type scanner struct {
	src   string
	pos   int
	start int // start of the current operation
}

const spaces = " \t\n\r\f"

func isSpace(c byte) bool {
	return strings.IndexByte(spaces, c) != -1
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (sc *scanner) skipSpaces() {
	for sc.pos < len(sc.src) && isSpace(sc.src[sc.pos]) {
		sc.pos++
	}
}

func (sc *scanner) trailingError() error {
	return fmt.Errorf("%w: %q", ErrTrailingData, strings.TrimRight(sc.src[sc.start:], spaces))
}

// next reads one name(args) operation. It returns false
// when only whitespace is left.
func (sc *scanner) next() (operation, bool, error) {
	sc.skipSpaces()
	sc.start = sc.pos
	if sc.pos == len(sc.src) {
		return operation{}, false, nil
	}
	op := operation{offset: sc.pos}

	nameStart := sc.pos
	for sc.pos < len(sc.src) && isLetter(sc.src[sc.pos]) {
		sc.pos++
	}
	op.name = sc.src[nameStart:sc.pos]
	if op.name == "" || sc.pos == len(sc.src) || sc.src[sc.pos] != '(' {
		return op, false, sc.trailingError()
	}
	sc.pos++ // (

	end := strings.IndexByte(sc.src[sc.pos:], ')')
	if end == -1 {
		return op, false, sc.trailingError()
	}
	argsText := sc.src[sc.pos : sc.pos+end]
	sc.pos += end + 1 // args and )

	var err error
	op.args, err = parseArgs(argsText)
	return op, true, err
}

func isSeparator(r rune) bool {
	return r == ',' || strings.ContainsRune(spaces, r)
}

// parseArgs splits on commas and whitespace, and parses
// each number.
func parseArgs(s string) ([]float64, error) {
	s = strings.Trim(s, spaces)
	if s == "" {
		return nil, fmt.Errorf("%w: empty argument list", ErrParamMismatch)
	}
	if s[0] == ',' || s[len(s)-1] == ',' {
		return nil, fmt.Errorf("%w: misplaced comma in %q", ErrInvalidNumber, s)
	}
	fields := strings.FieldsFunc(s, isSeparator)
	out := make([]float64, len(fields))
	for i, field := range fields {
		f, n := strconv.ParseFloat([]byte(field))
		if n == 0 || n != len(field) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, field)
		}
		out[i] = f
	}
	return out, nil
}
