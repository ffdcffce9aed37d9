package svg2pptx

import (
	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func isTransformNameChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// parseTransformArgs parses the parenthesized argument list of a transform
// function, returning the arguments and the number of bytes consumed. Bad
// bytes inside the parentheses are skipped so that a malformed function does
// not derail the functions after it.
func parseTransformArgs(b []byte) ([]float64, int) {
	i := skipCommaWhitespace(b)
	if len(b) <= i || b[i] != '(' {
		return nil, i
	}
	i++

	var args []float64
	for i < len(b) {
		i += skipCommaWhitespace(b[i:])
		if len(b) <= i {
			break
		} else if b[i] == ')' {
			i++
			break
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			i++ // skip byte we cannot interpret
			continue
		}
		args = append(args, f)
		i += n
	}
	return args, i
}

// ParseTransform parses an SVG transform attribute, ie. a whitespace or
// comma separated sequence of translate, scale, rotate, skewX, skewY and
// matrix function calls, and returns the single composed matrix that applies
// the functions left-to-right. An empty string yields Identity. Unrecognized
// function names and functions with a wrong number of arguments contribute
// identity instead of failing; SVG producers emit vendor-specific functions
// that must not break conversion of an otherwise valid document.
func ParseTransform(s string) Matrix {
	b := []byte(s)
	m := Identity

	i := 0
	for i < len(b) {
		i += skipCommaWhitespace(b[i:])
		start := i
		for i < len(b) && isTransformNameChar(b[i]) {
			i++
		}
		if i == start {
			i++ // stray byte
			continue
		}
		name := string(b[start:i])

		args, n := parseTransformArgs(b[i:])
		i += n

		switch name {
		case "translate":
			if len(args) == 1 {
				m = m.Translate(args[0], 0.0)
			} else if len(args) == 2 {
				m = m.Translate(args[0], args[1])
			}
		case "scale":
			if len(args) == 1 {
				m = m.Scale(args[0], args[0])
			} else if len(args) == 2 {
				m = m.Scale(args[0], args[1])
			}
		case "rotate":
			if len(args) == 1 {
				m = m.Rotate(args[0])
			} else if len(args) == 3 {
				// rotation about (cx,cy) is translate(cx,cy) rotate(a) translate(-cx,-cy)
				m = m.RotateAt(args[0], args[1], args[2])
			}
		case "skewX":
			if len(args) == 1 {
				m = m.SkewX(args[0])
			}
		case "skewY":
			if len(args) == 1 {
				m = m.SkewY(args[0])
			}
		case "matrix":
			if len(args) == 6 {
				m = m.Mul(SVGMatrix(args[0], args[1], args[2], args[3], args[4], args[5]))
			}
		}
	}
	return m
}
