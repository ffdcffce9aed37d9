package svg2pptx

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// SubPath is a polyline taken from one segment of SVG path data.
type SubPath struct {
	Points []Point
	Closed bool
}

func parsePathNum(b []byte) (float64, int) {
	i := skipCommaWhitespace(b)
	f, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// FlattenPath converts SVG path data into subpath polylines. Curve commands
// contribute only their end points: the DrawingML output approximates curves
// by straight segments, which keeps shape placement exact even though the
// outline is coarse. Malformed trailing data terminates the scan without
// error, matching the degrade-to-partial-geometry behavior of the rest of
// the pipeline.
func FlattenPath(d string) []SubPath {
	b := []byte(d)

	var subPaths []SubPath
	var cur SubPath
	flush := func() {
		if 1 < len(cur.Points) {
			subPaths = append(subPaths, cur)
		}
		cur = SubPath{}
	}

	x, y := 0.0, 0.0
	startX, startY := 0.0, 0.0
	var prevCmd byte

	i := 0
	for i < len(b) {
		i += skipCommaWhitespace(b[i:])
		if len(b) <= i {
			break
		}
		cmd := prevCmd
		consumed := false
		if isTransformNameChar(b[i]) {
			cmd = b[i]
			i++
			consumed = true
		} else if prevCmd == 'M' {
			cmd = 'L' // implicit lineto after moveto
		} else if prevCmd == 'm' {
			cmd = 'l'
		} else if prevCmd == 'Z' {
			cmd = 'M' // implicit moveto after closepath
		} else if prevCmd == 'z' {
			cmd = 'm'
		}

		// arguments per command; the end point is always the last pair
		var nargs int
		switch cmd {
		case 'M', 'm', 'L', 'l', 'T', 't':
			nargs = 2
		case 'H', 'h', 'V', 'v':
			nargs = 1
		case 'C', 'c':
			nargs = 6
		case 'S', 's', 'Q', 'q':
			nargs = 4
		case 'A', 'a':
			nargs = 7
		case 'Z', 'z':
			cur.Closed = true
			flush()
			x, y = startX, startY
			prevCmd = cmd
			continue
		default:
			// unrecognized command byte, skip it
			if !consumed {
				i++
			}
			prevCmd = 0
			continue
		}

		args := make([]float64, nargs)
		ok := true
		for j := 0; j < nargs; j++ {
			f, n := parsePathNum(b[i:])
			if n == 0 {
				ok = false
				break
			}
			args[j] = f
			i += n
		}
		if !ok {
			break
		}

		switch cmd {
		case 'M', 'm':
			flush()
			if cmd == 'm' {
				x += args[0]
				y += args[1]
			} else {
				x, y = args[0], args[1]
			}
			startX, startY = x, y
			cur.Points = append(cur.Points, Point{x, y})
		case 'H':
			x = args[0]
			cur.Points = append(cur.Points, Point{x, y})
		case 'h':
			x += args[0]
			cur.Points = append(cur.Points, Point{x, y})
		case 'V':
			y = args[0]
			cur.Points = append(cur.Points, Point{x, y})
		case 'v':
			y += args[0]
			cur.Points = append(cur.Points, Point{x, y})
		default:
			ex, ey := args[nargs-2], args[nargs-1]
			if 'a' <= cmd && cmd <= 'z' {
				ex += x
				ey += y
			}
			x, y = ex, ey
			cur.Points = append(cur.Points, Point{x, y})
		}
		prevCmd = cmd
	}
	flush()
	return subPaths
}
