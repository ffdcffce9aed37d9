package svg2pptx

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func testPoint(t *testing.T, got, want Point) {
	t.Helper()
	test.Float(t, got.X, want.X)
	test.Float(t, got.Y, want.Y)
}

func testRect(t *testing.T, got, want Rect) {
	t.Helper()
	test.Float(t, got.X, want.X)
	test.Float(t, got.Y, want.Y)
	test.Float(t, got.W, want.W)
	test.Float(t, got.H, want.H)
}

func testMatrix(t *testing.T, got, want Matrix) {
	t.Helper()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			test.Float(t, got[i][j], want[i][j])
		}
	}
}

func mustParseSVG(t *testing.T, s string) *Element {
	t.Helper()
	root, err := ParseSVG(strings.NewReader(s))
	test.Error(t, err)
	return root
}
