package domain

import (
	"fmt"
	"math"
	"strings"
)

// Normalize formats degrees, folded into [0,360), to the given number
// of decimals, blanking a result that rounds up to 360 back to 0 (so
// that, e.g., normalize(359.999, 2) reads "  0.00" rather than
// "360.00"). decimals must be in [1,20].
//
// %f's round-half-to-even behavior at the decimal boundary is inherited
// as-is rather than worked around; it is what downstream consumers of
// this format already expect.
func Normalize(degrees float64, decimals int) string {
	if decimals < 1 || decimals > 20 {
		panic(fmt.Sprintf("domain: Normalize decimals %d outside [1,20]", decimals))
	}
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	degrees = math.Abs(degrees) // fix anomalous -0 when modding -360
	width := 4 + decimals
	s := fmt.Sprintf("%*.*f", width, decimals, degrees)
	if strings.HasPrefix(s, "36") {
		s = "  " + s[2:]
	}
	return s
}

// SNormalize formats degrees, folded into (-180,180], to the given
// number of decimals, blanking a result that rounds to -180 back to
// +180. decimals must be in [1,20].
func SNormalize(degrees float64, decimals int) string {
	if decimals < 1 || decimals > 20 {
		panic(fmt.Sprintf("domain: SNormalize decimals %d outside [1,20]", decimals))
	}
	degrees = math.Mod(degrees, 360)
	if degrees <= -180 {
		degrees += 360
	} else if degrees > 180 {
		degrees -= 360
	}
	width := 5 + decimals
	s := fmt.Sprintf("% *.*f", width, decimals, degrees)
	if strings.HasPrefix(s, "-18") {
		s = " " + s[1:]
	}
	return s
}
