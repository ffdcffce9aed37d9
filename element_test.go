package svg2pptx

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVG(t *testing.T) {
	root := mustParseSVG(t, `<svg viewBox="0 0 10 10"><g id="a"><rect width="5" height="5"/></g><circle r="2"/></svg>`)
	test.String(t, root.Tag, "svg")
	test.String(t, root.Attr("viewBox"), "0 0 10 10")
	test.T(t, len(root.Children), 2)

	g := root.Children[0]
	test.String(t, g.Tag, "g")
	test.String(t, g.Attr("id"), "a")
	test.That(t, g.Parent == root)
	test.T(t, len(g.Children), 1)

	rect := g.Children[0]
	test.String(t, rect.Tag, "rect")
	test.String(t, rect.Attr("width"), "5")
	test.T(t, len(rect.Children), 0)

	test.String(t, root.Children[1].Tag, "circle")
}

func TestParseSVGProlog(t *testing.T) {
	root := mustParseSVG(t, `<?xml version="1.0"?><!DOCTYPE svg><!-- comment --><svg width="10"/>`)
	test.String(t, root.Tag, "svg")
	test.String(t, root.Attr("width"), "10")
}

func TestParseSVGNamespaces(t *testing.T) {
	root := mustParseSVG(t, `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:rect svg:width="5"/></svg:svg>`)
	test.String(t, root.Tag, "svg")
	test.String(t, root.Children[0].Tag, "rect")
	test.String(t, root.Children[0].Attr("width"), "5")
}

func TestParseSVGText(t *testing.T) {
	root := mustParseSVG(t, `<svg><text>Hello <tspan>world</tspan></text><style><![CDATA[.a{fill:red}]]></style></svg>`)
	text := root.Children[0]
	test.String(t, text.Text, "Hello ")
	test.String(t, text.Children[0].Text, "world")
	test.String(t, root.Children[1].Text, ".a{fill:red}")
}

func TestParseSVGAttrQuotes(t *testing.T) {
	root := mustParseSVG(t, `<svg width="10" height='20'/>`)
	test.String(t, root.Attr("width"), "10")
	test.String(t, root.Attr("height"), "20")
}

func TestParseSVGNoRoot(t *testing.T) {
	_, err := ParseSVG(strings.NewReader(`<html><p>nope</p></html>`))
	test.That(t, err != nil)

	_, err = ParseSVG(strings.NewReader(``))
	test.That(t, err != nil)
}

func TestElementAttr(t *testing.T) {
	root := mustParseSVG(t, `<svg><rect x="4.5" width="nope"/></svg>`)
	rect := root.Children[0]
	test.String(t, rect.Attr("missing"), "")
	test.Float(t, rect.AttrNum("x"), 4.5)
	test.Float(t, rect.AttrNum("width"), 0.0)
	test.Float(t, rect.AttrNum("missing"), 0.0)
}

func TestElementPaint(t *testing.T) {
	root := mustParseSVG(t, `<svg fill="red"><g style="fill: blue; stroke:green" fill="yellow"><rect/><circle fill="purple"/></g></svg>`)
	g := root.Children[0]
	rect := g.Children[0]
	circle := g.Children[1]

	// style beats the presentation attribute, and both inherit
	test.String(t, g.Paint("fill"), "blue")
	test.String(t, g.Paint("stroke"), "green")
	test.String(t, rect.Paint("fill"), "blue")
	test.String(t, circle.Paint("fill"), "purple")
	test.String(t, rect.Paint("stroke"), "green")
	test.String(t, root.Paint("fill"), "red")
	test.String(t, rect.Paint("opacity"), "")
}

func TestElementRendered(t *testing.T) {
	root := mustParseSVG(t, `<svg><defs><rect/></defs><rect/><title>t</title></svg>`)
	test.That(t, root.Rendered())
	test.That(t, !root.Children[0].Rendered())
	test.That(t, root.Children[1].Rendered())
	test.That(t, !root.Children[2].Rendered())
}
