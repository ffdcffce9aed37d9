package svg2pptx

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Hex parses a CSS hexadecimal color such as #ff0000 or F00.
func Hex(s string) (color.RGBA, bool) {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i, c := range s {
		if '0' <= c && c <= '9' {
			h[i] = uint8(c - '0')
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + uint8(c-'a')
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + uint8(c-'A')
		} else {
			return color.RGBA{}, false
		}
	}
	switch len(h) {
	case 3:
		return color.RGBA{h[0]<<4 | h[0], h[1]<<4 | h[1], h[2]<<4 | h[2], 255}, true
	case 4:
		return color.RGBA{h[0]<<4 | h[0], h[1]<<4 | h[1], h[2]<<4 | h[2], h[3]<<4 | h[3]}, true
	case 6:
		return color.RGBA{h[0]<<4 | h[1], h[2]<<4 | h[3], h[4]<<4 | h[5], 255}, true
	case 8:
		return color.RGBA{h[0]<<4 | h[1], h[2]<<4 | h[3], h[4]<<4 | h[5], h[6]<<4 | h[7]}, true
	}
	return color.RGBA{}, false
}

// namedColors are the CSS color keywords that show up in SVG documents in
// practice.
var namedColors = map[string]color.RGBA{
	"aqua":      {0, 255, 255, 255},
	"black":     {0, 0, 0, 255},
	"blue":      {0, 0, 255, 255},
	"brown":     {165, 42, 42, 255},
	"cyan":      {0, 255, 255, 255},
	"darkblue":  {0, 0, 139, 255},
	"darkgray":  {169, 169, 169, 255},
	"darkgreen": {0, 100, 0, 255},
	"darkgrey":  {169, 169, 169, 255},
	"darkred":   {139, 0, 0, 255},
	"fuchsia":   {255, 0, 255, 255},
	"gold":      {255, 215, 0, 255},
	"gray":      {128, 128, 128, 255},
	"green":     {0, 128, 0, 255},
	"grey":      {128, 128, 128, 255},
	"lightblue": {173, 216, 230, 255},
	"lightgray": {211, 211, 211, 255},
	"lightgrey": {211, 211, 211, 255},
	"lime":      {0, 255, 0, 255},
	"magenta":   {255, 0, 255, 255},
	"maroon":    {128, 0, 0, 255},
	"navy":      {0, 0, 128, 255},
	"olive":     {128, 128, 0, 255},
	"orange":    {255, 165, 0, 255},
	"pink":      {255, 192, 203, 255},
	"purple":    {128, 0, 128, 255},
	"red":       {255, 0, 0, 255},
	"silver":    {192, 192, 192, 255},
	"teal":      {0, 128, 128, 255},
	"white":     {255, 255, 255, 255},
	"yellow":    {255, 255, 0, 255},
}

// ParseColor parses an SVG paint value: a hexadecimal color, an rgb()
// function or a CSS color keyword. The second return value is false for
// "none", empty values and anything unrecognized.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" || s == "transparent" {
		return color.RGBA{}, false
	}
	if s[0] == '#' {
		return Hex(s)
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		b := []byte(s[4 : len(s)-1])
		var vals [3]uint8
		i := 0
		for j := range vals {
			i += skipCommaWhitespace(b[i:])
			f, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				return color.RGBA{}, false
			}
			i += n
			if i < len(b) && b[i] == '%' {
				f *= 255.0 / 100.0
				i++
			}
			if f < 0.0 {
				f = 0.0
			} else if 255.0 < f {
				f = 255.0
			}
			vals[j] = uint8(math.Round(f))
		}
		return color.RGBA{vals[0], vals[1], vals[2], 255}, true
	}
	c, ok := namedColors[strings.ToLower(s)]
	return c, ok
}

// RGBHex formats a color as the RRGGBB hexadecimal form DrawingML's srgbClr
// expects.
func RGBHex(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
