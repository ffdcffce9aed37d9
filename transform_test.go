package svg2pptx

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseTransform(t *testing.T) {
	var tts = []struct {
		s string
		m Matrix
	}{
		{"", Identity},
		{"translate(10,20)", Identity.Translate(10.0, 20.0)},
		{"translate(10)", Identity.Translate(10.0, 0.0)},
		{"translate(10 20)", Identity.Translate(10.0, 20.0)},
		{"scale(2)", Identity.Scale(2.0, 2.0)},
		{"scale(2,3)", Identity.Scale(2.0, 3.0)},
		{"scale(-1 1)", Identity.Scale(-1.0, 1.0)},
		{"rotate(30)", Identity.Rotate(30.0)},
		{"rotate(30,5,5)", Identity.RotateAt(30.0, 5.0, 5.0)},
		{"skewX(45)", Identity.SkewX(45.0)},
		{"skewY(45)", Identity.SkewY(45.0)},
		{"matrix(1,2,3,4,5,6)", SVGMatrix(1.0, 2.0, 3.0, 4.0, 5.0, 6.0)},
		{"matrix(1 2 3 4 5 6)", SVGMatrix(1.0, 2.0, 3.0, 4.0, 5.0, 6.0)},
		{"translate(10,20) scale(2)", Identity.Translate(10.0, 20.0).Scale(2.0, 2.0)},
		{"translate(10,20),scale(2)", Identity.Translate(10.0, 20.0).Scale(2.0, 2.0)},
		{"  translate( 10 , 20 )  ", Identity.Translate(10.0, 20.0)},
		{"translate(1e2,-2.5e-1)", Identity.Translate(100.0, -0.25)},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			testMatrix(t, ParseTransform(tt.s), tt.m)
		})
	}
}

func TestParseTransformOrder(t *testing.T) {
	// functions apply left-to-right: the translation happens in the scaled
	// coordinate system
	m := ParseTransform("scale(2) translate(5,0)")
	testPoint(t, m.Dot(Point{0.0, 0.0}), Point{10.0, 0.0})

	m = ParseTransform("translate(5,0) scale(2)")
	testPoint(t, m.Dot(Point{0.0, 0.0}), Point{5.0, 0.0})
}

func TestParseTransformRotateAt(t *testing.T) {
	// rotate(a,cx,cy) is translate(cx,cy) rotate(a) translate(-cx,-cy)
	testMatrix(t, ParseTransform("rotate(30,5,7)"), ParseTransform("translate(5,7) rotate(30) translate(-5,-7)"))
	testPoint(t, ParseTransform("rotate(90,5,5)").Dot(Point{5.0, 5.0}), Point{5.0, 5.0})
}

func TestParseTransformPermissive(t *testing.T) {
	// unknown functions and wrong arity contribute identity
	testMatrix(t, ParseTransform("frobnicate(1,2,3)"), Identity)
	testMatrix(t, ParseTransform("translate(1,2,3)"), Identity)
	testMatrix(t, ParseTransform("rotate(30,5)"), Identity)
	testMatrix(t, ParseTransform("matrix(1,2,3)"), Identity)
	testMatrix(t, ParseTransform("scale()"), Identity)
	testMatrix(t, ParseTransform("frobnicate(9) translate(10,20)"), Identity.Translate(10.0, 20.0))
	testMatrix(t, ParseTransform("translate(10,20) %%%"), Identity.Translate(10.0, 20.0))
	testMatrix(t, ParseTransform("translate"), Identity)
	testMatrix(t, ParseTransform("translate(10,20) scale"), Identity.Translate(10.0, 20.0))
}

func TestParseTransformArgs(t *testing.T) {
	args, n := parseTransformArgs([]byte("(1, 2.5,-3)"))
	test.T(t, args, []float64{1.0, 2.5, -3.0})
	test.T(t, n, 11)

	args, _ = parseTransformArgs([]byte("( 1 # 2 )"))
	test.T(t, args, []float64{1.0, 2.0})

	args, n = parseTransformArgs([]byte("nope"))
	test.That(t, args == nil)
	test.T(t, n, 0)
}
