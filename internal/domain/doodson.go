package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NewDoodson builds a constituent from Foreman's method (Foreman 1977,
// p.26): six V-coefficients for the main term plus a satellite series
// whose node factor and argument correction are folded into a single
// resultant amplitude and phase per year, rather than being looked up
// from a closed-form node factor formula.
func NewDoodson(name string, vCoeffs [NumVTerms]float64, satellites []Satellite, firstYear, lastYear, epochForSpeed int) Constituent {
	checkYearRange(firstYear, lastYear, epochForSpeed)
	numYears := lastYear - firstYear + 1
	c := Constituent{Name: name, Vpu: make([]float64, numYears), F: make([]float64, numYears)}

	speedTerms := vTerms(startYear(epochForSpeed), 1)
	c.Speed = floats.Dot(speedTerms, vCoeffs[:]) / hoursPerJulianCentury

	for y := firstYear; y <= lastYear; y++ {
		v0 := floats.Dot(vTerms(startYear(y), 0), vCoeffs[:])

		mid := midyearTerms(midYear(y), 0)
		n, p, p1 := mid[midIndexN], mid[midIndexP], mid[midIndexP1]

		cossum, sinsum := 1.0, 0.0
		for _, sat := range satellites {
			angle := float64(sat.DeltaP)*p + float64(sat.DeltaN)*n + float64(sat.DeltaP1)*p1 + sat.Alpha
			cossum += sat.R * cosd(angle)
			sinsum += sat.R * sind(angle)
		}

		idx := y - firstYear
		c.Vpu[idx] = v0 + atan2d(sinsum, cossum)
		c.F[idx] = math.Sqrt(sinsum*sinsum + cossum*cossum)
	}
	return c
}
