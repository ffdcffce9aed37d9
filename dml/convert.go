package dml

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tdewolff/minify/v2"
	minifyxml "github.com/tdewolff/minify/v2/xml"

	svg2pptx "github.com/BramAlkema/svg2pptx-sub017"
)

// Options configures a Converter. The zero value converts onto a standard
// 10 x 7.5 inch slide with normalization enabled and logging discarded.
type Options struct {
	Width, Height int64 // slide size in EMU
	NoNormalize   bool  // disable the off-canvas content correction
	Minify        bool  // minify the emitted XML
	Logger        *zerolog.Logger
}

// Converter converts SVG documents into PresentationML slide XML.
type Converter struct {
	width, height int64
	normalize     bool
	minify        bool
	log           zerolog.Logger
}

// NewConverter creates a Converter.
func NewConverter(opts Options) *Converter {
	c := &Converter{
		width:     opts.Width,
		height:    opts.Height,
		normalize: !opts.NoNormalize,
		minify:    opts.Minify,
		log:       zerolog.Nop(),
	}
	if c.width <= 0 {
		c.width = svg2pptx.SlideWidthEMU
	}
	if c.height <= 0 {
		c.height = svg2pptx.SlideHeightEMU
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	}
	return c
}

// Convert reads an SVG document and writes slide XML. A malformed viewBox
// fails the conversion since every coordinate mapping depends on it;
// per-element problems degrade to identity or no-op so that one broken
// element cannot abort the document.
func (c *Converter) Convert(w io.Writer, r io.Reader) error {
	root, err := svg2pptx.ParseSVG(r)
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}

	viewBox, err := svg2pptx.DocumentViewBox(root)
	if err != nil {
		return err
	}
	par := svg2pptx.ParsePreserveAspectRatio(root.Attr("preserveAspectRatio"))
	viewport := svg2pptx.ViewportMatrix(viewBox, par, float64(c.width), float64(c.height))

	if c.normalize {
		if bounds, ok := svg2pptx.RawContentBounds(root); ok && svg2pptx.NeedsNormalize(bounds, viewBox) {
			c.log.Debug().
				Stringer("bounds", bounds).
				Stringer("viewBox", viewBox).
				Msg("content bounds anomalous, normalizing")
			viewport = viewport.Mul(svg2pptx.NormalizeMatrix(bounds))
		}
	}

	out := w
	var buf bytes.Buffer
	if c.minify {
		out = &buf
	}

	rend := New(out, c.width, c.height)
	svg2pptx.WalkCTM(root, viewport, func(e *svg2pptx.Element, ctm svg2pptx.Matrix) bool {
		return c.render(rend, e, ctm)
	})
	if err := rend.Close(); err != nil {
		return err
	}

	if c.minify {
		m := minify.New()
		m.AddFunc("text/xml", minifyxml.Minify)
		if err := m.Minify("text/xml", w, &buf); err != nil {
			return fmt.Errorf("minify slide xml: %w", err)
		}
	}
	return nil
}

// render emits one element and reports whether to descend into its children.
func (c *Converter) render(rend *Renderer, e *svg2pptx.Element, ctm svg2pptx.Matrix) bool {
	if !e.Rendered() {
		return false
	}

	switch e.Tag {
	case "path":
		if subPaths := svg2pptx.FlattenPath(e.Attr("d")); 0 < len(subPaths) {
			rend.RenderPath(subPaths, c.style(e, ctm), ctm)
		} else if e.Attr("d") != "" {
			c.log.Debug().Str("d", e.Attr("d")).Msg("path data yields no geometry, skipping")
		}
	case "text":
		fontSize := 16.0
		if f, _, err := svg2pptx.ParseLength(e.Paint("font-size")); err == nil && 0.0 < f {
			fontSize = f
		}
		fill := "000000"
		if col, ok := svg2pptx.ParseColor(e.Paint("fill")); ok {
			fill = svg2pptx.RGBHex(col)
		}
		rend.RenderText(e.AttrNum("x"), e.AttrNum("y"), textContent(e), fontSize, fill, ctm)
	default:
		if s, ok := svg2pptx.ShapeOf(e); ok {
			rend.RenderShape(s, c.style(e, ctm), ctm)
		}
	}
	return true
}

// style resolves an element's paint attributes into a Style, scaling the
// stroke width by the CTM's average scale so that line weights follow the
// viewport mapping.
func (c *Converter) style(e *svg2pptx.Element, ctm svg2pptx.Matrix) Style {
	var style Style

	fill := e.Paint("fill")
	if fill == "" {
		style.Fill = "000000" // SVG default paint
	} else if col, ok := svg2pptx.ParseColor(fill); ok {
		style.Fill = svg2pptx.RGBHex(col)
	}

	if col, ok := svg2pptx.ParseColor(e.Paint("stroke")); ok {
		style.Stroke = svg2pptx.RGBHex(col)

		width := 1.0
		if f, _, err := svg2pptx.ParseLength(e.Paint("stroke-width")); err == nil && 0.0 < f {
			width = f
		}
		co := ctm.Components()
		style.StrokeWidth = emu(width * (co.ScaleX + co.ScaleY) / 2.0)
	}
	return style
}

func textContent(e *svg2pptx.Element) string {
	s := e.Text
	for _, child := range e.Children {
		s += textContent(child)
	}
	return strings.TrimSpace(s)
}
