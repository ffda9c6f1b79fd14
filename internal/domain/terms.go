package domain

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// NumVTerms is the length of a V-coefficient vector: coefficients on
// (T, s, h, p, p1, const), in that order.
const NumVTerms = 6

// NumUTerms is the length of a u-coefficient vector: coefficients on
// (xi, nu, nu', 2nu'', R, Q, Qu), in that order.
const NumUTerms = 7

const (
	vIndexT = iota
	vIndexS
	vIndexH
	vIndexP
	vIndexP1
	vIndexConst
)

const (
	uIndexXi = iota
	uIndexNu
	uIndexNuPrime
	uIndexTwoNu
	uIndexR
	uIndexQ
	uIndexQu
)

// SP 98 Table 1, mean longitudes of T (hour angle of the mean sun), s
// (moon), h (sun), p (lunar perigee) and p1 (solar perigee), plus a
// constant 1 carried for the additive-phase column. Units are degrees
// per power of Julian century T1.
var (
	vCoeff0 = []float64{0, 270 + 26.0/60 + 14.72/3600, 279 + 41.0/60 + 48.04/3600, 334 + 19.0/60 + 40.87/3600, 281 + 13.0/60 + 15.0/3600, 1}
	vCoeff1 = []float64{36525 * 360, 1336*360 + 1108411.2/3600, 129602768.13 / 3600, 11*360 + 392515.94/3600, 6189.03 / 3600, 0}
	vCoeff2 = []float64{0, 9.09 / 3600, 1.089 / 3600, -37.24 / 3600, 1.63 / 3600, 0}
	vCoeff3 = []float64{0, 0.0068 / 3600, 0, -0.045 / 3600, 0.012 / 3600, 0}
)

// vTerms evaluates the six mean-longitude terms (T, s, h, p, p1, const)
// or, for derivative 1, their rates of change in degrees per Julian
// century, at Unix time t.
func vTerms(t int64, derivative int) []float64 {
	t1 := table1T(t)
	t2 := t1 * t1
	out := make([]float64, NumVTerms)
	switch derivative {
	case 0:
		copy(out, vCoeff0)
		floats.AddScaled(out, t1, vCoeff1)
		floats.AddScaled(out, t2, vCoeff2)
		floats.AddScaled(out, t2*t1, vCoeff3)
	case 1:
		copy(out, vCoeff1)
		floats.AddScaled(out, 2*t1, vCoeff2)
		floats.AddScaled(out, 3*t2, vCoeff3)
	default:
		panic(fmt.Sprintf("domain: vTerms derivative must be 0 or 1, got %d", derivative))
	}
	return out
}

// SP 98 Table 1, mean longitudes of N (longitude of moon's ascending
// node), p and p1, for evaluating the auxiliary angles at the midpoint
// of a year. N carries the long, negative T1 coefficient that makes it
// regress rather than advance.
var (
	midCoeff0 = []float64{259 + 10.0/60 + 57.12/3600, 334 + 19.0/60 + 40.87/3600, 281 + 13.0/60 + 15.0/3600}
	midCoeff1 = []float64{-(5*360 + 482912.63/3600), 11*360 + 392515.94/3600, 6189.03 / 3600}
	midCoeff2 = []float64{7.58 / 3600, -37.24 / 3600, 1.63 / 3600}
	midCoeff3 = []float64{0.008 / 3600, -0.045 / 3600, 0.012 / 3600}
)

const (
	midIndexN = iota
	midIndexP
	midIndexP1
)

// midyearTerms evaluates (N, p, p1) analogously to vTerms.
func midyearTerms(t int64, derivative int) []float64 {
	t1 := table1T(t)
	t2 := t1 * t1
	out := make([]float64, 3)
	switch derivative {
	case 0:
		copy(out, midCoeff0)
		floats.AddScaled(out, t1, midCoeff1)
		floats.AddScaled(out, t2, midCoeff2)
		floats.AddScaled(out, t2*t1, midCoeff3)
	case 1:
		copy(out, midCoeff1)
		floats.AddScaled(out, 2*t1, midCoeff2)
		floats.AddScaled(out, 3*t2, midCoeff3)
	default:
		panic(fmt.Sprintf("domain: midyearTerms derivative must be 0 or 1, got %d", derivative))
	}
	return out
}
