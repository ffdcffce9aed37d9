package svg2pptx

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Shape is a tagged geometry variant extracted from an element. Dispatch
// happens over the variant types instead of over raw tag strings.
type Shape interface {
	// boundingPoints returns the points in local coordinates whose
	// transformed positions bound the shape.
	boundingPoints() []Point
}

type RectShape struct {
	X, Y, W, H float64
}

type CircleShape struct {
	CX, CY, R float64
}

type EllipseShape struct {
	CX, CY, RX, RY float64
}

type LineShape struct {
	X1, Y1, X2, Y2 float64
}

// PolyShape covers both polygon and polyline.
type PolyShape struct {
	Points []Point
	Closed bool // true for polygon
}

// PathShape approximates a path by the coordinate pairs of its d attribute.
// That is not a bezier-extremum calculation: the bounds consumer only needs
// to detect gross off-canvas content, not pixel-exact extents.
type PathShape struct {
	Points []Point
}

func (s RectShape) boundingPoints() []Point {
	return []Point{{s.X, s.Y}, {s.X + s.W, s.Y}, {s.X + s.W, s.Y + s.H}, {s.X, s.Y + s.H}}
}

func (s CircleShape) boundingPoints() []Point {
	return []Point{{s.CX - s.R, s.CY - s.R}, {s.CX + s.R, s.CY - s.R}, {s.CX + s.R, s.CY + s.R}, {s.CX - s.R, s.CY + s.R}}
}

func (s EllipseShape) boundingPoints() []Point {
	return []Point{{s.CX - s.RX, s.CY - s.RY}, {s.CX + s.RX, s.CY - s.RY}, {s.CX + s.RX, s.CY + s.RY}, {s.CX - s.RX, s.CY + s.RY}}
}

func (s LineShape) boundingPoints() []Point {
	return []Point{{s.X1, s.Y1}, {s.X2, s.Y2}}
}

func (s PolyShape) boundingPoints() []Point {
	return s.Points
}

func (s PathShape) boundingPoints() []Point {
	return s.Points
}

// AttrNum parses the numeric part of an attribute value, zero when absent or
// unparseable.
func (e *Element) AttrNum(name string) float64 {
	f, n := strconv.ParseFloat([]byte(strings.TrimSpace(e.Attr(name))))
	if n == 0 {
		return 0.0
	}
	return f
}

// scanCoordinatePairs collects all numbers in b and pairs them up, skipping
// command letters, commas and whitespace. Used for both points attributes
// and path data.
func scanCoordinatePairs(b []byte) []Point {
	var nums []float64
	i := 0
	for i < len(b) {
		c := b[i]
		if c == '-' || c == '+' || c == '.' || '0' <= c && c <= '9' {
			f, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				i++
				continue
			}
			nums = append(nums, f)
			i += n
		} else {
			i++
		}
	}

	if len(nums) < 2 {
		return nil
	}
	ps := make([]Point, 0, len(nums)/2)
	for j := 0; j+1 < len(nums); j += 2 {
		ps = append(ps, Point{nums[j], nums[j+1]})
	}
	return ps
}

// ShapeOf returns the geometry variant for an element, or false for
// non-geometry elements.
func ShapeOf(e *Element) (Shape, bool) {
	switch e.Tag {
	case "rect":
		return RectShape{e.AttrNum("x"), e.AttrNum("y"), e.AttrNum("width"), e.AttrNum("height")}, true
	case "circle":
		return CircleShape{e.AttrNum("cx"), e.AttrNum("cy"), e.AttrNum("r")}, true
	case "ellipse":
		return EllipseShape{e.AttrNum("cx"), e.AttrNum("cy"), e.AttrNum("rx"), e.AttrNum("ry")}, true
	case "line":
		return LineShape{e.AttrNum("x1"), e.AttrNum("y1"), e.AttrNum("x2"), e.AttrNum("y2")}, true
	case "polygon", "polyline":
		ps := scanCoordinatePairs([]byte(e.Attr("points")))
		if len(ps) == 0 {
			return nil, false
		}
		return PolyShape{ps, e.Tag == "polygon"}, true
	case "path":
		ps := scanCoordinatePairs([]byte(e.Attr("d")))
		if len(ps) == 0 {
			return nil, false
		}
		return PathShape{ps}, true
	}
	return nil, false
}

// nonRenderedTags are subtrees that define reusable or meta content and do
// not render by themselves.
var nonRenderedTags = map[string]bool{
	"defs":           true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
	"metadata":       true,
	"style":          true,
	"title":          true,
	"desc":           true,
}

// RawContentBounds computes the bounding box of all geometry in the tree
// with each element's ancestor transforms applied, without clipping to the
// viewBox. The second return value is false when the tree contains no
// geometry, so callers can tell "no geometry" apart from genuinely
// zero-sized bounds.
func RawContentBounds(root *Element) (Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false

	var walk func(e *Element, parent Matrix)
	walk = func(e *Element, parent Matrix) {
		if nonRenderedTags[e.Tag] {
			return
		}
		ctm := parent.Mul(e.LocalTransform())
		if s, ok := ShapeOf(e); ok {
			for _, p := range ctm.TransformPoints(s.boundingPoints()) {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
				found = true
			}
		}
		for _, child := range e.Children {
			walk(child, ctm)
		}
	}
	walk(root, Identity)

	if !found {
		return Rect{}, false
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}, true
}

// Normalization heuristic thresholds. These were tuned empirically against
// problematic real-world documents; keep them as-is rather than re-deriving.
const (
	NormalizeSizeRatio     = 3.0  // content larger than 3x the viewBox dimension
	NormalizeNegativeSlack = 0.10 // content origin below -10% of the viewBox dimension
	NormalizeCenterRatio   = 2.0  // content center offset over 2x the viewBox dimension
)

// NeedsNormalize reports whether content bounds are anomalous relative to
// the viewBox: grossly oversized, too far into negative coordinates, with a
// far-off center, or not intersecting the viewBox at all. Any single check
// firing is enough. The checks deliberately err towards firing: a false
// positive costs a harmless extra translation while a false negative leaves
// content off-canvas.
func NeedsNormalize(bounds, viewBox Rect) bool {
	if NormalizeSizeRatio*viewBox.W < bounds.W || NormalizeSizeRatio*viewBox.H < bounds.H {
		return true
	}
	if bounds.X < -NormalizeNegativeSlack*viewBox.W || bounds.Y < -NormalizeNegativeSlack*viewBox.H {
		return true
	}
	bc, vc := bounds.Center(), viewBox.Center()
	if NormalizeCenterRatio*viewBox.W < math.Abs(bc.X-vc.X) || NormalizeCenterRatio*viewBox.H < math.Abs(bc.Y-vc.Y) {
		return true
	}
	if !bounds.Intersects(viewBox) {
		return true
	}
	return false
}

// NormalizeMatrix returns the corrective translation that moves the content
// bounds origin onto (0,0). It must be prepended to the viewport matrix,
// ie. multiplied on the right so that it applies first.
func NormalizeMatrix(bounds Rect) Matrix {
	return Identity.Translate(-bounds.X, -bounds.Y)
}
