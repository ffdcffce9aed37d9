// Package dml renders SVG geometry as PresentationML slide XML with
// DrawingML shapes. It emits the slide part only; packaging the result into
// a PPTX archive is up to the caller.
package dml

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"

	svg2pptx "github.com/BramAlkema/svg2pptx-sub017"
)

// Style holds the resolved paint attributes of a shape. Colors are RRGGBB
// hexadecimal; an empty color disables that paint.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth int64 // EMU
}

// fullCircle is a whole rotation in DrawingML angle units (60000ths of a
// degree).
const fullCircle = 21600000

type Renderer struct {
	w             io.Writer
	width, height int64
	shapeID       int
}

// New creates a slide renderer and writes the slide preamble. The slide size
// is in EMU.
func New(w io.Writer, width, height int64) *Renderer {
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	fmt.Fprintf(w, `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	fmt.Fprintf(w, `<p:cSld><p:spTree>`)
	fmt.Fprintf(w, `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	fmt.Fprintf(w, `<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/><a:chOff x="0" y="0"/><a:chExt cx="%d" cy="%d"/></a:xfrm></p:grpSpPr>`, width, height, width, height)
	return &Renderer{w: w, width: width, height: height, shapeID: 1}
}

// Close writes the slide postamble.
func (r *Renderer) Close() error {
	_, err := fmt.Fprintf(r.w, `</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return err
}

func (r *Renderer) nextID() int {
	r.shapeID++
	return r.shapeID
}

func emu(f float64) int64 {
	return int64(math.Round(f))
}

func pos(v int64) int64 {
	if v < 1 {
		return 1
	}
	return v
}

func rot60000(deg float64) int64 {
	rot := int64(math.Round(deg * 60000.0))
	rot %= fullCircle
	if rot < 0 {
		rot += fullCircle
	}
	return rot
}

// RenderShape emits the DrawingML for a geometry variant under the given
// CTM. Rects and circles/ellipses become preset geometry when the transform
// can be expressed as a DrawingML xfrm (translate, scale, rotate, flip);
// skewed transforms and the polyline variants fall back to custom geometry
// with fully transformed points.
func (r *Renderer) RenderShape(s svg2pptx.Shape, style Style, m svg2pptx.Matrix) {
	switch s := s.(type) {
	case svg2pptx.RectShape:
		r.renderPreset("rect", s.X, s.Y, s.W, s.H, style, m)
	case svg2pptx.CircleShape:
		r.renderPreset("ellipse", s.CX-s.R, s.CY-s.R, 2.0*s.R, 2.0*s.R, style, m)
	case svg2pptx.EllipseShape:
		r.renderPreset("ellipse", s.CX-s.RX, s.CY-s.RY, 2.0*s.RX, 2.0*s.RY, style, m)
	case svg2pptx.LineShape:
		style.Fill = ""
		r.renderCustGeom("line", []svg2pptx.SubPath{{Points: m.TransformPoints([]svg2pptx.Point{{X: s.X1, Y: s.Y1}, {X: s.X2, Y: s.Y2}})}}, style)
	case svg2pptx.PolyShape:
		r.renderCustGeom("polygon", []svg2pptx.SubPath{{Points: m.TransformPoints(s.Points), Closed: s.Closed}}, style)
	case svg2pptx.PathShape:
		r.renderCustGeom("path", []svg2pptx.SubPath{{Points: m.TransformPoints(s.Points)}}, style)
	}
}

// RenderPath emits flattened path data as a single custom-geometry shape.
func (r *Renderer) RenderPath(subPaths []svg2pptx.SubPath, style Style, m svg2pptx.Matrix) {
	transformed := make([]svg2pptx.SubPath, 0, len(subPaths))
	for _, sp := range subPaths {
		transformed = append(transformed, svg2pptx.SubPath{Points: m.TransformPoints(sp.Points), Closed: sp.Closed})
	}
	r.renderCustGeom("path", transformed, style)
}

// RenderText emits a text box anchored at the baseline point x,y with the
// font size in user units. Text is not shaped or measured; the box is an
// estimate wide enough for PowerPoint to lay the run out itself.
func (r *Renderer) RenderText(x, y float64, s string, fontSize float64, fill string, m svg2pptx.Matrix) {
	if s == "" {
		return
	}
	if fontSize <= 0.0 {
		fontSize = 16.0
	}
	co := m.Components()
	sizeEMU := fontSize * co.ScaleY
	p := m.Dot(svg2pptx.Point{X: x, Y: y})

	boxW := pos(emu(sizeEMU * 0.6 * float64(len(s))))
	boxH := pos(emu(sizeEMU * 1.25))
	offX := emu(p.X)
	offY := emu(p.Y - sizeEMU) // baseline to box top

	sz := int64(math.Round(sizeEMU / svg2pptx.EMUPerPoint * 100.0))
	if sz < 100 {
		sz = 100
	}
	if fill == "" {
		fill = "000000"
	}

	id := r.nextID()
	fmt.Fprintf(r.w, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="text %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>`, id, id)
	r.writeXfrm(offX, offY, boxW, boxH, rot60000(co.Rotation), co.FlipH, co.FlipV)
	fmt.Fprintf(r.w, `<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	fmt.Fprintf(r.w, `<p:txBody><a:bodyPr wrap="none" lIns="0" tIns="0" rIns="0" bIns="0"/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr><a:t>`, sz, fill)
	xml.EscapeText(r.w, []byte(s))
	fmt.Fprintf(r.w, `</a:t></a:r></a:p></p:txBody></p:sp>`)
}

// renderPreset emits a preset-geometry shape for the local box x,y,w,h. The
// box center is mapped through the CTM and the extent scaled by the
// decomposed scale, so that rotation and flips land in the xfrm where
// PowerPoint applies them about the shape center.
func (r *Renderer) renderPreset(preset string, x, y, w, h float64, style Style, m svg2pptx.Matrix) {
	if w <= 0.0 || h <= 0.0 {
		return
	}
	co := m.Components()
	if svg2pptx.Tolerance < math.Abs(co.SkewX) {
		// an xfrm cannot express skew
		corners := m.TransformPoints([]svg2pptx.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}})
		r.renderCustGeom(preset, []svg2pptx.SubPath{{Points: corners, Closed: true}}, style)
		return
	}

	cx := pos(emu(w * co.ScaleX))
	cy := pos(emu(h * co.ScaleY))
	center := m.Dot(svg2pptx.Point{X: x + w/2.0, Y: y + h/2.0})
	offX := emu(center.X) - cx/2
	offY := emu(center.Y) - cy/2

	id := r.nextID()
	fmt.Fprintf(r.w, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>`, id, preset, id)
	r.writeXfrm(offX, offY, cx, cy, rot60000(co.Rotation), co.FlipH, co.FlipV)
	fmt.Fprintf(r.w, `<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, preset)
	r.writeStyle(style)
	fmt.Fprintf(r.w, `</p:spPr></p:sp>`)
}

// renderCustGeom emits subpaths, already in slide EMU coordinates, as one
// custom-geometry shape.
func (r *Renderer) renderCustGeom(name string, subPaths []svg2pptx.SubPath, style Style) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	n := 0
	for _, sp := range subPaths {
		for _, p := range sp.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			n++
		}
	}
	if n < 2 {
		return
	}
	cx := pos(emu(maxX - minX))
	cy := pos(emu(maxY - minY))

	id := r.nextID()
	fmt.Fprintf(r.w, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>`, id, name, id)
	r.writeXfrm(emu(minX), emu(minY), cx, cy, 0, false, false)
	fmt.Fprintf(r.w, `<a:custGeom><a:avLst/><a:gdLst/><a:ahLst/><a:cxnLst/><a:rect l="0" t="0" r="0" b="0"/><a:pathLst><a:path w="%d" h="%d">`, cx, cy)
	for _, sp := range subPaths {
		if len(sp.Points) < 2 {
			continue
		}
		fmt.Fprintf(r.w, `<a:moveTo><a:pt x="%d" y="%d"/></a:moveTo>`, emu(sp.Points[0].X-minX), emu(sp.Points[0].Y-minY))
		for _, p := range sp.Points[1:] {
			fmt.Fprintf(r.w, `<a:lnTo><a:pt x="%d" y="%d"/></a:lnTo>`, emu(p.X-minX), emu(p.Y-minY))
		}
		if sp.Closed {
			fmt.Fprintf(r.w, `<a:close/>`)
		}
	}
	fmt.Fprintf(r.w, `</a:path></a:pathLst></a:custGeom>`)
	r.writeStyle(style)
	fmt.Fprintf(r.w, `</p:spPr></p:sp>`)
}

func (r *Renderer) writeXfrm(x, y, cx, cy, rot int64, flipH, flipV bool) {
	fmt.Fprintf(r.w, `<a:xfrm`)
	if rot != 0 {
		fmt.Fprintf(r.w, ` rot="%d"`, rot)
	}
	if flipH {
		fmt.Fprintf(r.w, ` flipH="1"`)
	}
	if flipV {
		fmt.Fprintf(r.w, ` flipV="1"`)
	}
	fmt.Fprintf(r.w, `><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, cx, cy)
}

func (r *Renderer) writeStyle(style Style) {
	if style.Fill != "" {
		fmt.Fprintf(r.w, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, style.Fill)
	} else {
		fmt.Fprintf(r.w, `<a:noFill/>`)
	}
	if style.Stroke != "" {
		w := style.StrokeWidth
		if w <= 0 {
			w = int64(svg2pptx.EMUPerPoint)
		}
		fmt.Fprintf(r.w, `<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`, w, style.Stroke)
	}
}
