package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Satellite is one line of a Doodson satellite series: an integer
// offset on each of (p, N, p1) from the main term's argument, a phase
// correction alpha in degrees, and a relative amplitude R.
type Satellite struct {
	DeltaP, DeltaN, DeltaP1 int
	Alpha                   float64
	R                       float64
}

// Constituent holds a tidal constituent's speed together with its
// equilibrium argument (V0+u) and node factor (f) sampled once per year
// over some caller-chosen range of years.
type Constituent struct {
	Name  string
	Speed float64
	Vpu   []float64
	F     []float64
}

// zeroConstituent is the additive identity for Add: zero speed, zero
// argument, unit node factor, for the given number of years.
func zeroConstituent(numYears int) Constituent {
	f := make([]float64, numYears)
	for i := range f {
		f[i] = 1
	}
	return Constituent{Name: "nameless", Vpu: make([]float64, numYears), F: f}
}

// Add combines two constituents sampled over the same years: speeds and
// arguments add, node factors multiply. The result is named "nameless";
// callers building a Compound constituent set the name explicitly.
func (c Constituent) Add(other Constituent) Constituent {
	if len(c.Vpu) != len(other.Vpu) || len(c.F) != len(other.F) {
		panic("domain: Add requires constituents sampled over the same years")
	}
	out := Constituent{
		Name:  "nameless",
		Speed: c.Speed + other.Speed,
		Vpu:   make([]float64, len(c.Vpu)),
		F:     make([]float64, len(c.F)),
	}
	copy(out.Vpu, c.Vpu)
	floats.Add(out.Vpu, other.Vpu)
	copy(out.F, c.F)
	floats.MulTo(out.F, out.F, other.F)
	return out
}

// Scale multiplies a constituent by a real coefficient: speed and
// argument scale linearly, while the node factor is raised to the
// absolute value of the coefficient (a negative coefficient flips the
// sign of the argument contribution but does not invert the node
// factor).
func (c Constituent) Scale(alpha float64) Constituent {
	out := Constituent{
		Name:  "nameless",
		Speed: alpha * c.Speed,
		Vpu:   make([]float64, len(c.Vpu)),
		F:     make([]float64, len(c.F)),
	}
	copy(out.Vpu, c.Vpu)
	floats.Scale(alpha, out.Vpu)
	absAlpha := math.Abs(alpha)
	for i, f := range c.F {
		out.F[i] = math.Pow(f, absAlpha)
	}
	return out
}
