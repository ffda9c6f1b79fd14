package domain

import "gonum.org/v1/gonum/floats"

// NewBasic builds a constituent directly from its SP 98 definition:
// six V-coefficients on (T, s, h, p, p1, const), seven u-coefficients on
// (xi, nu, nu', 2nu'', R, Q, Qu), and a node factor formula tag.
//
// For a catalog-parsed "Basic" record, the seventh u-coefficient (Qu)
// is always 0; only the hand-built M1-DUTCH base constituent used by
// Compound gives it a nonzero value.
func NewBasic(name string, vCoeffs [NumVTerms]float64, uCoeffs [NumUTerms]float64, fTag, firstYear, lastYear, epochForSpeed int) Constituent {
	checkYearRange(firstYear, lastYear, epochForSpeed)
	numYears := lastYear - firstYear + 1
	c := Constituent{Name: name, Vpu: make([]float64, numYears), F: make([]float64, numYears)}

	speedTerms := vTerms(startYear(epochForSpeed), 1)
	c.Speed = (floats.Dot(speedTerms, vCoeffs[:]) + speedTerms[vIndexP]*uCoeffs[uIndexQ]) / hoursPerJulianCentury

	u := make([]float64, NumUTerms)
	for y := firstYear; y <= lastYear; y++ {
		v0 := floats.Dot(vTerms(startYear(y), 0), vCoeffs[:])

		mid := midyearTerms(midYear(y), 0)
		n, pAngle := mid[midIndexN], mid[midIndexP]
		incl := inclination(n)

		u[uIndexXi] = xi(n)
		u[uIndexNu] = nu(n)
		u[uIndexNuPrime] = nuPrime(n)
		u[uIndexTwoNu] = twoNuSecond(n)
		p := pArg(pAngle, u[uIndexXi])
		q := qArg(p)
		u[uIndexR] = rArg(p, incl)
		u[uIndexQ] = q
		u[uIndexQu] = quArg(p, q)

		idx := y - firstYear
		c.Vpu[idx] = v0 + floats.Dot(u, uCoeffs[:])
		c.F[idx] = nodeFactor(fTag, incl, p, u[uIndexNu])
	}
	return c
}
