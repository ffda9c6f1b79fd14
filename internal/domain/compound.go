package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NumCompoundBases is the number of base constituents that a Compound
// coefficient vector indexes into, in the order of the constants below.
const NumCompoundBases = 13

const (
	baseO1 = iota
	baseK1
	baseP1
	baseM2
	baseS2
	baseN2
	baseL2
	baseK2
	baseQ1
	baseNu2
	baseS1
	baseM1Dutch
	baseLambda2
)

// CompoundCache holds the 13 base constituents that NewCompound builds
// compound constituents out of. Its contents depend only on
// (firstYear, lastYear, epochForSpeed); callers building many Compound
// constituents over the same year range should share one CompoundCache
// so the bases are computed once rather than once per constituent.
//
// The zero value is a valid, empty cache.
type CompoundCache struct {
	firstYear, lastYear, epochForSpeed int
	bases                              [NumCompoundBases]Constituent
	valid                              bool
}

func buildCompoundBases(firstYear, lastYear, epochForSpeed int) [NumCompoundBases]Constituent {
	var bases [NumCompoundBases]Constituent
	bases[baseO1] = NewBasic("O1", [NumVTerms]float64{1, -2, 1, 0, 0, 90}, [NumUTerms]float64{2, -1, 0, 0, 0, 0, 0}, 75, firstYear, lastYear, epochForSpeed)
	bases[baseK1] = NewBasic("K1", [NumVTerms]float64{1, 0, 1, 0, 0, -90}, [NumUTerms]float64{0, 0, -1, 0, 0, 0, 0}, 227, firstYear, lastYear, epochForSpeed)
	bases[baseP1] = NewBasic("P1", [NumVTerms]float64{1, 0, -1, 0, 0, 90}, [NumUTerms]float64{0, 0, 0, 0, 0, 0, 0}, 1, firstYear, lastYear, epochForSpeed)
	bases[baseM2] = NewBasic("M2", [NumVTerms]float64{2, -2, 2, 0, 0, 0}, [NumUTerms]float64{2, -2, 0, 0, 0, 0, 0}, 78, firstYear, lastYear, epochForSpeed)
	bases[baseS2] = NewBasic("S2", [NumVTerms]float64{2, 0, 0, 0, 0, 0}, [NumUTerms]float64{0, 0, 0, 0, 0, 0, 0}, 1, firstYear, lastYear, epochForSpeed)
	bases[baseN2] = NewBasic("N2", [NumVTerms]float64{2, -3, 2, 1, 0, 0}, [NumUTerms]float64{2, -2, 0, 0, 0, 0, 0}, 78, firstYear, lastYear, epochForSpeed)
	bases[baseL2] = NewBasic("L2", [NumVTerms]float64{2, -1, 2, -1, 0, 180}, [NumUTerms]float64{2, -2, 0, 0, 0, -1, 0}, 215, firstYear, lastYear, epochForSpeed)
	bases[baseK2] = NewBasic("K2", [NumVTerms]float64{2, 0, 2, 0, 0, 0}, [NumUTerms]float64{0, 0, 0, -1, 0, 0, 0}, 235, firstYear, lastYear, epochForSpeed)
	bases[baseQ1] = NewBasic("Q1", [NumVTerms]float64{1, -3, 1, 1, 0, 90}, [NumUTerms]float64{2, -1, 0, 0, 0, 0, 0}, 75, firstYear, lastYear, epochForSpeed)
	bases[baseNu2] = NewBasic("nu2", [NumVTerms]float64{2, -3, 4, -1, 0, 0}, [NumUTerms]float64{2, -2, 0, 0, 0, 0, 0}, 78, firstYear, lastYear, epochForSpeed)
	bases[baseS1] = NewBasic("S1", [NumVTerms]float64{1, 0, 0, 0, 0, 0}, [NumUTerms]float64{0, 0, 0, 0, 0, 0, 0}, 1, firstYear, lastYear, epochForSpeed)
	bases[baseM1Dutch] = NewBasic("M1-DUTCH", [NumVTerms]float64{1, -1, 1, 1, 0, -90}, [NumUTerms]float64{0, -1, 0, 0, 0, 0, -1}, 206, firstYear, lastYear, epochForSpeed)
	bases[baseLambda2] = NewBasic("lambda2", [NumVTerms]float64{2, -1, 0, 1, 0, 180}, [NumUTerms]float64{2, -2, 0, 0, 0, 0, 0}, 78, firstYear, lastYear, epochForSpeed)
	return bases
}

// NewCompound builds a constituent as a linear combination, in the
// Add/Scale sense, of the 13 base constituents O1, K1, P1, M2, S2, N2,
// L2, K2, Q1, nu2, S1, M1-DUTCH and lambda2 (in that order).
//
// cache may be nil, in which case a private one-shot cache is used; a
// caller building many compound constituents over the same
// (firstYear, lastYear, epochForSpeed) should pass the same
// *CompoundCache to each call so the 13 bases are built only once.
func NewCompound(cache *CompoundCache, name string, coefficients [NumCompoundBases]float64, firstYear, lastYear, epochForSpeed int) Constituent {
	checkYearRange(firstYear, lastYear, epochForSpeed)
	if cache == nil {
		cache = &CompoundCache{}
	}
	if !cache.valid || cache.firstYear != firstYear || cache.lastYear != lastYear || cache.epochForSpeed != epochForSpeed {
		cache.bases = buildCompoundBases(firstYear, lastYear, epochForSpeed)
		cache.firstYear, cache.lastYear, cache.epochForSpeed = firstYear, lastYear, epochForSpeed
		cache.valid = true
	}

	numYears := lastYear - firstYear + 1
	result := zeroConstituent(numYears)
	scaledF := make([]float64, numYears)

	for i, coeff := range coefficients {
		base := cache.bases[i]
		result.Speed += coeff * base.Speed
		floats.AddScaled(result.Vpu, coeff, base.Vpu)

		absCoeff := math.Abs(coeff)
		for j, f := range base.F {
			scaledF[j] = math.Pow(f, absCoeff)
		}
		floats.MulTo(result.F, result.F, scaledF)
	}
	result.Name = name
	return result
}
