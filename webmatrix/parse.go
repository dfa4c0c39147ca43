package webmatrix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dwfe/tools/gm"
)

var (
	// ErrSyntax is wrapped by all errors Parse returns for malformed input.
	ErrSyntax = errors.New("invalid transform list")

	// ErrUnsupported3D is returned by Parse for transform functions that
	// can only be described by a 3d matrix, like rotateX or matrix3d.
	ErrUnsupported3D = errors.New("3d transform functions are not supported")
)

type argKind uint8

const (
	argLength argKind = iota
	argNumber
	argAngle
)

type transformFunc struct {
	kind    argKind
	minArgs int
	maxArgs int

	// appendTo receives lengths and numbers as is, angles in radians.
	appendTo func(m Matrix, args []float64) Matrix
}

// transformFuncs is keyed by the lower case function name.
var transformFuncs = map[string]transformFunc{
	"matrix": {argNumber, 6, 6, func(m Matrix, args []float64) Matrix {
		return Multiply(m, Matrix(args))
	}},

	"translate": {argLength, 1, 2, func(m Matrix, args []float64) Matrix {
		return Translate(m, args[0], optional(args, 1, 0))
	}},
	"translatex": {argLength, 1, 1, func(m Matrix, args []float64) Matrix {
		return TranslateX(m, args[0])
	}},
	"translatey": {argLength, 1, 1, func(m Matrix, args []float64) Matrix {
		return TranslateY(m, args[0])
	}},

	"scale": {argNumber, 1, 2, func(m Matrix, args []float64) Matrix {
		return Scale(m, args[0], optional(args, 1, args[0]))
	}},
	"scalex": {argNumber, 1, 1, func(m Matrix, args []float64) Matrix {
		return ScaleX(m, args[0])
	}},
	"scaley": {argNumber, 1, 1, func(m Matrix, args []float64) Matrix {
		return ScaleY(m, args[0])
	}},

	"rotate": {argAngle, 1, 1, func(m Matrix, args []float64) Matrix {
		return Rotate(m, args[0], gm.Rad)
	}},
	"rotatez": {argAngle, 1, 1, func(m Matrix, args []float64) Matrix {
		return Rotate(m, args[0], gm.Rad)
	}},

	"skew": {argAngle, 1, 2, func(m Matrix, args []float64) Matrix {
		return Skew(m, args[0], optional(args, 1, 0), gm.Rad)
	}},
	"skewx": {argAngle, 1, 1, func(m Matrix, args []float64) Matrix {
		return SkewX(m, args[0], gm.Rad)
	}},
	"skewy": {argAngle, 1, 1, func(m Matrix, args []float64) Matrix {
		return SkewY(m, args[0], gm.Rad)
	}},
}

var transformFuncs3D = map[string]bool{
	"matrix3d":    true,
	"translate3d": true,
	"translatez":  true,
	"scale3d":     true,
	"scalez":      true,
	"rotate3d":    true,
	"rotatex":     true,
	"rotatey":     true,
	"perspective": true,
}

// Parse evaluates a CSS transform list like "translate(10px, 5px) rotate(45deg)"
// into a single matrix. The functions are appended in the order they are
// listed, exactly as the fluent WebMatrix API does it.
//
// Lengths may use the px unit, angles any of deg, rad, grad and turn. Numbers
// without a unit are taken as px and as degrees. Scale factors may be given
// as percentage. An empty string and "none" yield the identity.
//
// As in CSS, translate(tx) and skew(ax) set the missing second value to zero,
// scale(s) scales both axis.
func Parse(transform string) (Matrix, error) {
	if strings.EqualFold(strings.TrimSpace(transform), "none") {
		return Identity(), nil
	}

	p := parser{input: transform}

	m := Identity()
	for {
		p.skipSeparators()
		if p.done() {
			return m, nil
		}

		start := p.pos

		name, args, err := p.function()
		if err != nil {
			return Matrix{}, err
		}

		m, err = appendFunction(m, name, args)
		if err != nil {
			return Matrix{}, fmt.Errorf("%s at offset %d: %w", name, start, err)
		}
	}
}

func appendFunction(m Matrix, name string, args []string) (Matrix, error) {
	key := strings.ToLower(name)

	if transformFuncs3D[key] {
		return Matrix{}, ErrUnsupported3D
	}

	fn, ok := transformFuncs[key]
	if !ok {
		return Matrix{}, fmt.Errorf("unknown transform function: %w", ErrSyntax)
	}

	if len(args) < fn.minArgs || len(args) > fn.maxArgs {
		return Matrix{}, fmt.Errorf(
			"expected %d to %d arguments, got %d: %w",
			fn.minArgs, fn.maxArgs, len(args), ErrSyntax,
		)
	}

	values := make([]float64, len(args))
	for idx, arg := range args {
		value, err := parseArg(fn.kind, arg)
		if err != nil {
			return Matrix{}, fmt.Errorf("argument %q: %w", arg, err)
		}

		values[idx] = value
	}

	return fn.appendTo(m, values), nil
}

func parseArg(kind argKind, arg string) (float64, error) {
	number, unit := splitUnit(arg)

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %w", ErrSyntax)
	}

	switch kind {
	case argLength:
		if unit == "" || strings.EqualFold(unit, "px") {
			return value, nil
		}

	case argNumber:
		switch unit {
		case "":
			return value, nil
		case "%":
			return value / 100, nil
		}

	case argAngle:
		if unit == "" {
			return gm.ToRadians(value, gm.Deg), nil
		}

		angleType, err := gm.ParseAngleType(unit)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", err, ErrSyntax)
		}

		return gm.ToRadians(value, angleType), nil
	}

	return 0, fmt.Errorf("unexpected unit %q: %w", unit, ErrSyntax)
}

// splitUnit splits a trailing unit like "deg" or "%" from the number.
func splitUnit(arg string) (number, unit string) {
	idx := strings.LastIndexFunc(arg, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '%'
	})

	return arg[:idx+1], arg[idx+1:]
}

type parser struct {
	input string
	pos   int
}

func (p *parser) done() bool {
	return p.pos >= len(p.input)
}

// skipSeparators skips whitespace and commas between functions.
func (p *parser) skipSeparators() {
	for !p.done() && isSeparator(p.input[p.pos]) {
		p.pos++
	}
}

// function reads "name(arg, arg ...)" and returns the name and the raw arguments.
func (p *parser) function() (name string, args []string, err error) {
	start := p.pos
	for !p.done() && isNameChar(p.input[p.pos], p.pos == start) {
		p.pos++
	}

	name = p.input[start:p.pos]
	if name == "" {
		return "", nil, fmt.Errorf("expected function name at offset %d, got %q: %w",
			start, p.input[start:start+1], ErrSyntax)
	}

	if p.done() || p.input[p.pos] != '(' {
		return "", nil, fmt.Errorf("expected '(' after %q at offset %d: %w", name, p.pos, ErrSyntax)
	}

	end := strings.IndexByte(p.input[p.pos:], ')')
	if end < 0 {
		return "", nil, fmt.Errorf("missing ')' for %q at offset %d: %w", name, start, ErrSyntax)
	}

	body := p.input[p.pos+1 : p.pos+end]
	p.pos += end + 1

	args = strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	return name, args, nil
}

func isSeparator(ch byte) bool {
	return ch == ',' || ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isNameChar(ch byte, first bool) bool {
	isLetter := 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
	if first {
		return isLetter
	}

	return isLetter || '0' <= ch && ch <= '9'
}

func optional(args []float64, idx int, fallback float64) float64 {
	if idx < len(args) {
		return args[idx]
	}

	return fallback
}
