package domain

import "math"

// obliquity of the ecliptic (omega) and mean inclination of the lunar
// orbit to the ecliptic (i), both in degrees, per SP 98 section 16.
const (
	obliquity          = 23 + 27.0/60 + 8.26/3600
	lunarOrbitInclinat = 5 + 8.0/60 + 43.3546/3600
)

// cosInclination returns cos(I), where I is the inclination of the
// lunar orbit to the equator and n is the longitude of the moon's
// ascending node, both in degrees.
func cosInclination(n float64) float64 {
	return cosd(obliquity)*cosd(lunarOrbitInclinat) - sind(obliquity)*sind(lunarOrbitInclinat)*cosd(n)
}

func sinInclination(n float64) float64 {
	c := cosInclination(n)
	return math.Sqrt(1 - c*c)
}

// inclination returns I itself, in degrees.
func inclination(n float64) float64 {
	return acosd(cosInclination(n))
}

func sinNu(n float64) float64 {
	return sind(lunarOrbitInclinat) * sind(n) / sinInclination(n)
}

func cosNu(n float64) float64 {
	s := sinNu(n)
	return math.Sqrt(1 - s*s)
}

func sinBigOmega(n float64) float64 {
	return sind(obliquity) * sind(n) / sinInclination(n)
}

func cosBigOmega(n float64) float64 {
	return cosd(n)*cosNu(n) + sind(n)*sinNu(n)*cosd(obliquity)
}

// xi is the longitude in the moon's orbit of the lunar intersection.
func xi(n float64) float64 {
	return n - atan2d(sinBigOmega(n), cosBigOmega(n))
}

// nu is the right ascension of the lunar intersection.
func nu(n float64) float64 {
	return asind(sinNu(n))
}

// nuPrime and twoNuSecond are auxiliary angles used in the K1 and K2
// argument corrections (u) respectively (SP 98 section 19).
func nuPrime(n float64) float64 {
	incl := inclination(n)
	m := sind(2 * incl)
	return atan2d(m*sinNu(n), m*cosNu(n)+0.3347)
}

func twoNuSecond(n float64) float64 {
	s := sinInclination(n)
	s2 := s * s
	twoNu := 2 * nu(n)
	return atan2d(s2*sind(twoNu), s2*cosd(twoNu)+0.0727)
}

// pArg is the lunar perigee p reckoned from the lunar intersection
// rather than from the equinox.
func pArg(p, xiVal float64) float64 {
	return p - xiVal
}

// qArg, quArg, qAmplitude are the auxiliary angle and amplitude used by
// the L2 and M1 node factors (SP 98 section 73, 191).
func qArg(p float64) float64 {
	return atan2d(0.483*sind(p), cosd(p))
}

func quArg(p, q float64) float64 {
	return p - q
}

func qAmplitude(p float64) float64 {
	return 1 / math.Sqrt(2.31+1.435*cosd(2*p))
}

// rArg, rAmplitude are the auxiliary angle and amplitude used by the
// L2 node factor (SP 98 section 73).
func rArg(p, incl float64) float64 {
	c := cotd(incl / 2)
	c2 := c * c
	return atan2d(sind(2*p), c2/6-cosd(2*p))
}

func rAmplitude(p, incl float64) float64 {
	t := tand(incl / 2)
	t2 := t * t
	return 1 / math.Sqrt(1-12*t2*cosd(2*p)+36*t2*t2)
}
