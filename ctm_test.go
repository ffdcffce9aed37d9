package svg2pptx

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLocalTransform(t *testing.T) {
	root := mustParseSVG(t, `<svg><g transform="translate(10,20)"/><g/></svg>`)
	testMatrix(t, root.Children[0].LocalTransform(), Identity.Translate(10.0, 20.0))
	testMatrix(t, root.Children[1].LocalTransform(), Identity)
}

func TestWalkCTMNesting(t *testing.T) {
	root := mustParseSVG(t, `<svg><g transform="translate(10,0)"><g transform="scale(2)"><rect/></g></g></svg>`)

	ctms := map[string]Matrix{}
	order := []string{}
	WalkCTM(root, Identity, func(e *Element, ctm Matrix) bool {
		key := e.Tag + e.Attr("transform")
		ctms[key] = ctm
		order = append(order, e.Tag)
		return true
	})

	test.T(t, order, []string{"svg", "g", "g", "rect"})
	testMatrix(t, ctms["svg"], Identity)
	testMatrix(t, ctms["gtranslate(10,0)"], Identity.Translate(10.0, 0.0))
	testMatrix(t, ctms["gscale(2)"], Identity.Translate(10.0, 0.0).Scale(2.0, 2.0))
	testMatrix(t, ctms["rect"], Identity.Translate(10.0, 0.0).Scale(2.0, 2.0))
}

func TestWalkCTMSiblingIsolation(t *testing.T) {
	root := mustParseSVG(t, `<svg><g transform="scale(2)"><rect id="a"/></g><rect id="b"/></svg>`)

	var a, b Matrix
	WalkCTM(root, Identity, func(e *Element, ctm Matrix) bool {
		switch e.Attr("id") {
		case "a":
			a = ctm
		case "b":
			b = ctm
		}
		return true
	})
	testMatrix(t, a, Identity.Scale(2.0, 2.0))
	testMatrix(t, b, Identity)
}

func TestWalkCTMViewport(t *testing.T) {
	// the root's parent transform is the viewport matrix itself, and the
	// root's own transform attribute composes after it
	root := mustParseSVG(t, `<svg transform="translate(1,2)"><rect/></svg>`)
	viewport := Identity.Scale(2.0, 2.0)

	var rect Matrix
	WalkCTM(root, viewport, func(e *Element, ctm Matrix) bool {
		if e.Tag == "rect" {
			rect = ctm
		}
		return true
	})
	testMatrix(t, rect, viewport.Translate(1.0, 2.0))
}

func TestWalkCTMPrune(t *testing.T) {
	root := mustParseSVG(t, `<svg><defs><rect id="hidden"/></defs><rect id="shown"/></svg>`)

	seen := map[string]bool{}
	WalkCTM(root, Identity, func(e *Element, ctm Matrix) bool {
		if id := e.Attr("id"); id != "" {
			seen[id] = true
		}
		return e.Rendered()
	})
	test.That(t, seen["shown"])
	test.That(t, !seen["hidden"])
}

func TestWalkCTMEndToEnd(t *testing.T) {
	// viewport mapping and group transforms compose: viewBox 100x50 onto a
	// 200x100 target doubles all coordinates
	root := mustParseSVG(t, `<svg viewBox="0 0 100 50"><g transform="translate(10,10)"><rect id="r" x="0" y="0" width="5" height="5"/></g></svg>`)
	vb, err := DocumentViewBox(root)
	test.Error(t, err)
	viewport := ViewportMatrix(vb, DefaultPreserveAspectRatio, 200.0, 100.0)

	var rect Matrix
	WalkCTM(root, viewport, func(e *Element, ctm Matrix) bool {
		if e.Attr("id") == "r" {
			rect = ctm
		}
		return true
	})
	testPoint(t, rect.Dot(Point{0.0, 0.0}), Point{20.0, 20.0})
	testPoint(t, rect.Dot(Point{5.0, 5.0}), Point{30.0, 30.0})
}
