package svg2pptx

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// AspectAlign is the alignment part of an SVG preserveAspectRatio attribute.
type AspectAlign int

const (
	AlignNone AspectAlign = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// factors returns the alignment fraction per axis, ie. Min=0, Mid=0.5, Max=1.
func (a AspectAlign) factors() (float64, float64) {
	switch a {
	case AlignXMinYMin:
		return 0.0, 0.0
	case AlignXMidYMin:
		return 0.5, 0.0
	case AlignXMaxYMin:
		return 1.0, 0.0
	case AlignXMinYMid:
		return 0.0, 0.5
	case AlignXMaxYMid:
		return 1.0, 0.5
	case AlignXMinYMax:
		return 0.0, 1.0
	case AlignXMidYMax:
		return 0.5, 1.0
	case AlignXMaxYMax:
		return 1.0, 1.0
	}
	return 0.5, 0.5 // xMidYMid
}

// PreserveAspectRatio is a parsed SVG preserveAspectRatio attribute. The zero
// value is not the SVG default; use DefaultPreserveAspectRatio.
type PreserveAspectRatio struct {
	Align AspectAlign
	Slice bool // meet when false
}

// DefaultPreserveAspectRatio is xMidYMid meet.
var DefaultPreserveAspectRatio = PreserveAspectRatio{Align: AlignXMidYMid}

var aspectAligns = map[string]AspectAlign{
	"none":     AlignNone,
	"xMinYMin": AlignXMinYMin,
	"xMidYMin": AlignXMidYMin,
	"xMaxYMin": AlignXMaxYMin,
	"xMinYMid": AlignXMinYMid,
	"xMidYMid": AlignXMidYMid,
	"xMaxYMid": AlignXMaxYMid,
	"xMinYMax": AlignXMinYMax,
	"xMidYMax": AlignXMidYMax,
	"xMaxYMax": AlignXMaxYMax,
}

// ParsePreserveAspectRatio parses a preserveAspectRatio attribute value.
// Unknown alignment or meetOrSlice keywords fall back to the SVG defaults
// rather than failing.
func ParsePreserveAspectRatio(s string) PreserveAspectRatio {
	par := DefaultPreserveAspectRatio
	fields := strings.Fields(s)
	if 0 < len(fields) {
		if align, ok := aspectAligns[fields[0]]; ok {
			par.Align = align
		}
	}
	if 1 < len(fields) && fields[1] == "slice" {
		par.Slice = true
	}
	return par
}

// ParseViewBox parses a viewBox attribute into a rectangle. It fails on a
// malformed value since all downstream coordinate mapping depends on it; the
// caller decides whether to abort or substitute a default.
func ParseViewBox(s string) (Rect, error) {
	b := []byte(s)
	var vals [4]float64
	i := 0
	for j := range vals {
		i += skipCommaWhitespace(b[i:])
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return Rect{}, fmt.Errorf("malformed viewBox %q", s)
		}
		vals[j] = f
		i += n
	}
	if vals[2] <= 0.0 || vals[3] <= 0.0 {
		return Rect{}, fmt.Errorf("viewBox %q must have positive width and height", s)
	}
	return Rect{vals[0], vals[1], vals[2], vals[3]}, nil
}

// dimension parses the numeric part of a width or height attribute,
// stripping any unit suffix. Unparseable or non-positive values yield the
// fallback.
func dimension(s string, fallback float64) float64 {
	f, n := strconv.ParseFloat([]byte(strings.TrimSpace(s)))
	if n == 0 || f <= 0.0 {
		return fallback
	}
	return f
}

// DocumentViewBox returns the viewBox of an SVG root element. When the
// viewBox attribute is absent one is synthesized at origin (0,0) from the
// width and height attributes, defaulting to 100x100 when those are missing
// or unparseable.
func DocumentViewBox(root *Element) (Rect, error) {
	if vb := root.Attr("viewBox"); vb != "" {
		return ParseViewBox(vb)
	}
	w := dimension(root.Attr("width"), 100.0)
	h := dimension(root.Attr("height"), 100.0)
	return Rect{0.0, 0.0, w, h}, nil
}

// ViewportMatrix returns the matrix mapping viewBox coordinates onto a
// target canvas of the given size, composed as Align * Scale *
// ViewBoxTranslate. With meet the uniform scale is the smaller of the two
// axis scales so that the content fits entirely; with slice it is the larger
// so that the content fills the target. Alignment none scales both axes
// independently.
func ViewportMatrix(viewBox Rect, par PreserveAspectRatio, targetW, targetH float64) Matrix {
	sx := targetW / viewBox.W
	sy := targetH / viewBox.H

	if par.Align == AlignNone {
		return Identity.Scale(sx, sy).Translate(-viewBox.X, -viewBox.Y)
	}

	s := math.Min(sx, sy)
	if par.Slice {
		s = math.Max(sx, sy)
	}
	ax, ay := par.Align.factors()
	offsetX := (targetW - viewBox.W*s) * ax
	offsetY := (targetH - viewBox.H*s) * ay
	return Identity.Translate(offsetX, offsetY).Mul(Identity.Scale(s, s)).Translate(-viewBox.X, -viewBox.Y)
}
