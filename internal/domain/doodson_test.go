package domain

import (
	"math"
	"testing"
)

// TestNewDoodsonWithNoSatellitesIsUnmodulated checks that a Doodson
// constituent with an empty satellite list degenerates to a node
// factor of 1 and an argument equal to the bare V0 term, since cossum
// then stays fixed at 1 and sinsum at 0 for every year.
func TestNewDoodsonWithNoSatellitesIsUnmodulated(t *testing.T) {
	c := NewDoodson("s2-like", [NumVTerms]float64{2, 0, 0, 0, 0, 0}, nil, 1970, 1975, 1900)
	for i, f := range c.F {
		if math.Abs(f-1) > 1e-12 {
			t.Errorf("F[%d] = %v, want 1", i, f)
		}
	}
}

// TestNewDoodsonSatelliteAmplifiesNodeFactor checks that adding a
// satellite with nonzero relative amplitude R moves the node factor
// away from 1.
func TestNewDoodsonSatelliteAmplifiesNodeFactor(t *testing.T) {
	sats := []Satellite{{DeltaP: 1, DeltaN: 0, DeltaP1: 0, Alpha: 0, R: 0.2}}
	c := NewDoodson("with-sat", [NumVTerms]float64{2, -2, 2, 0, 0, 0}, sats, 1970, 1975, 1900)
	for i, f := range c.F {
		if math.Abs(f-1) < 1e-6 {
			t.Errorf("F[%d] = %v, want noticeably different from 1", i, f)
		}
	}
}
