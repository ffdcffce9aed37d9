package svg2pptx

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by the matrix algebra, e.g. when testing
// invertibility.
const Epsilon = 1e-10

// Tolerance is the tolerance used by the matrix predicates such as
// IsIdentity and HasRotation.
var Tolerance = 1e-6

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle, used for viewBoxes and content bounds.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Move(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Add returns the union of both rectangles. A zero-area rectangle is treated
// as empty and does not contribute.
func (r Rect) Add(q Rect) Rect {
	if q.W == 0.0 && q.H == 0.0 {
		return r
	} else if r.W == 0.0 && r.H == 0.0 {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Intersects returns true if both rectangles overlap.
func (r Rect) Intersects(q Rect) bool {
	return r.X <= q.X+q.W && q.X <= r.X+r.W && r.Y <= q.Y+q.H && q.Y <= r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2.0, r.Y + r.H/2.0}
}

// Transform returns the bounding box of the rectangle after transforming its
// four corners by m.
func (r Rect) Transform(m Matrix) Rect {
	p0 := m.Dot(Point{r.X, r.Y})
	p1 := m.Dot(Point{r.X + r.W, r.Y})
	p2 := m.Dot(Point{r.X + r.W, r.Y + r.H})
	p3 := m.Dot(Point{r.X, r.Y + r.H})
	x0 := math.Min(p0.X, math.Min(p1.X, math.Min(p2.X, p3.X)))
	y0 := math.Min(p0.Y, math.Min(p1.Y, math.Min(p2.Y, p3.Y)))
	x1 := math.Max(p0.X, math.Max(p1.X, math.Max(p2.X, p3.X)))
	y1 := math.Max(p0.Y, math.Max(p1.Y, math.Max(p2.Y, p3.Y)))
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations, stored as the upper two rows of
// the homogeneous 3x3 matrix (the bottom row is always [0 0 1]). In SVG
// attribute order matrix(a,b,c,d,e,f) maps to a=m[0][0], b=m[1][0],
// c=m[0][1], d=m[1][1], e=m[0][2], f=m[1][2], so that a point transforms as
// (a*x + c*y + e, b*x + d*y + f).
//
// Be aware that concatenating transformation functions will be evaluated
// right-to-left! So Identity.Rotate(30).Translate(20,0) will first translate
// 20 units horizontally and then rotate 30 degrees counter clockwise. Note
// that SVG's y-axis points downwards, which makes a positive rotation appear
// clockwise on canvas.
type Matrix [2][3]float64

var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// SVGMatrix returns the matrix for SVG attribute values matrix(a,b,c,d,e,f).
func SVGMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		{a, c, e},
		{b, d, f},
	}
}

// Mul multiplies the current matrix by q, ie. q is applied before m when the
// result transforms a point. The translation column of q is transformed by
// the linear part of m and added to m's own translation.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot transforms point p.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Transform transforms coordinates x,y.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2], m[1][0]*x + m[1][1]*y + m[1][2]
}

// TransformPoints transforms all points, order preserving.
func (m Matrix) TransformPoints(ps []Point) []Point {
	qs := make([]Point, len(ps))
	for i, p := range ps {
		qs[i] = m.Dot(p)
	}
	return qs
}

// Translate adds a translation by x,y.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Scale adds a scaling by x,y.
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// Rotate adds a counter-clockwise rotation in degrees.
func (m Matrix) Rotate(deg float64) Matrix {
	sintheta, costheta := math.Sincos(deg * math.Pi / 180.0)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

// RotateAt adds a counter-clockwise rotation in degrees about point x,y.
func (m Matrix) RotateAt(deg, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(deg).Translate(-x, -y)
}

// Shear adds a shearing in x and y.
func (m Matrix) Shear(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, x, 0.0},
		{y, 1.0, 0.0},
	})
}

// SkewX adds an SVG skewX in degrees.
func (m Matrix) SkewX(deg float64) Matrix {
	return m.Shear(math.Tan(deg*math.Pi/180.0), 0.0)
}

// SkewY adds an SVG skewY in degrees.
func (m Matrix) SkewY(deg float64) Matrix {
	return m.Shear(0.0, math.Tan(deg*math.Pi/180.0))
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inv returns the inverse matrix. The second return value is false when the
// matrix is degenerate, ie. its determinant is within Epsilon of zero.
func (m Matrix) Inv() (Matrix, bool) {
	det := m.Det()
	if math.Abs(det) < Epsilon {
		return Identity, false
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}, true
}

// Pos returns the translation column, ie. the position of the transformed
// origin.
func (m Matrix) Pos() (float64, float64) {
	return m[0][2], m[1][2]
}

// Decompose extracts the translation, rotation, scale and skew from the
// matrix as tx, ty, theta (degrees CCW), sx, sy, skewX (degrees). Reflection
// is captured as a negative sx when the determinant is negative. The skew
// formula atan2(a*c+b*d, sx*sx) is kept as-is; downstream consumers were
// tuned against its output for non-axis-aligned transforms.
func (m Matrix) Decompose() (tx, ty, theta, sx, sy, skewX float64) {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]
	tx, ty = m[0][2], m[1][2]

	sx = math.Sqrt(a*a + b*b)
	sy = math.Sqrt(c*c + d*d)
	if m.Det() < 0.0 {
		sx = -sx
	}
	theta = math.Atan2(b, a) * 180.0 / math.Pi
	skewX = math.Atan2(a*c+b*d, sx*sx) * 180.0 / math.Pi
	return
}

// Components is the PowerPoint-oriented decomposition of a matrix: scale
// magnitudes are positive and reflection is surfaced as flip flags, matching
// what a DrawingML xfrm element expects.
type Components struct {
	TranslateX, TranslateY float64
	Rotation               float64 // degrees
	ScaleX, ScaleY         float64 // positive
	SkewX                  float64 // degrees
	FlipH, FlipV           bool
}

// Components decomposes the matrix into its canonical components. It is
// idempotent: recomposing and decomposing again yields the same flip flags
// and positive scales up to floating point tolerance.
func (m Matrix) Components() Components {
	tx, ty, theta, sx, sy, skewX := m.Decompose()
	co := Components{
		TranslateX: tx,
		TranslateY: ty,
		Rotation:   theta,
		ScaleX:     sx,
		ScaleY:     sy,
		SkewX:      skewX,
	}
	if co.ScaleX < 0.0 {
		// Decompose pins every reflection onto scaleX, but with the rotation
		// taken from the first column the factorization actually reads
		// R(theta)*diag(|sx|,-sy): a vertical flip. Switch to the equivalent
		// horizontal flip when that folds a half-turn out of the rotation,
		// so that an axis-aligned mirror keeps rotation zero and flips about
		// the axis it mirrors.
		co.ScaleX = -co.ScaleX
		if 90.0 < co.Rotation {
			co.Rotation -= 180.0
			co.FlipH = true
		} else if co.Rotation <= -90.0 {
			co.Rotation += 180.0
			co.FlipH = true
		} else {
			co.FlipV = true
		}
	}
	return co
}

// IsIdentity returns true if the matrix is the identity with tolerance
// Tolerance.
func (m Matrix) IsIdentity() bool {
	return math.Abs(m[0][0]-1.0) < Tolerance && math.Abs(m[0][1]) < Tolerance && math.Abs(m[0][2]) < Tolerance &&
		math.Abs(m[1][0]) < Tolerance && math.Abs(m[1][1]-1.0) < Tolerance && math.Abs(m[1][2]) < Tolerance
}

// IsTranslation returns true if the matrix only translates, with tolerance
// Tolerance.
func (m Matrix) IsTranslation() bool {
	return math.Abs(m[0][0]-1.0) < Tolerance && math.Abs(m[0][1]) < Tolerance &&
		math.Abs(m[1][0]) < Tolerance && math.Abs(m[1][1]-1.0) < Tolerance
}

// HasRotation returns true if the matrix rotates or shears, ie. its
// off-diagonal elements exceed Tolerance.
func (m Matrix) HasRotation() bool {
	return Tolerance < math.Abs(m[1][0]) || Tolerance < math.Abs(m[0][1])
}

// HasScale returns true if the matrix distorts area, ie. the absolute
// determinant deviates from one by more than Tolerance.
func (m Matrix) HasScale() bool {
	return Tolerance < math.Abs(math.Abs(m.Det())-1.0)
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g; %g, %g, %g; 0, 0, 1]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}
