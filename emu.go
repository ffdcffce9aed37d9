package svg2pptx

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// English Metric Units, PowerPoint's internal coordinate unit.
const (
	EMUPerInch  = 914400.0
	EMUPerPoint = 12700.0
	PxPerInch   = 96.0
)

// Standard PowerPoint slide dimensions, 10 x 7.5 inches.
const (
	SlideWidthEMU  int64 = 9144000
	SlideHeightEMU int64 = 6858000
)

// ToEMU converts a value in the given unit to EMU. An empty unit means user
// units, which SVG equates with px at 96dpi.
func ToEMU(v float64, unit string) (int64, error) {
	var emuPer float64
	switch unit {
	case "", "px":
		emuPer = EMUPerInch / PxPerInch
	case "pt":
		emuPer = EMUPerPoint
	case "pc":
		emuPer = 12.0 * EMUPerPoint
	case "in":
		emuPer = EMUPerInch
	case "mm":
		emuPer = EMUPerInch / 25.4
	case "cm":
		emuPer = EMUPerInch / 2.54
	default:
		return 0, fmt.Errorf("unsupported unit %q", unit)
	}
	return int64(math.Round(v * emuPer)), nil
}

// ParseLength splits a CSS-style length into its number and unit suffix.
func ParseLength(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0.0, "", fmt.Errorf("malformed length %q", s)
	}
	return f, strings.TrimSpace(s[n:]), nil
}

// LengthToEMU converts a length with an optional unit suffix to EMU.
func LengthToEMU(s string) (int64, error) {
	f, unit, err := ParseLength(s)
	if err != nil {
		return 0, err
	}
	return ToEMU(f, unit)
}
