// Package bundle flattens constituents into the parallel arrays that a
// binary harmonic-constant database expects: one name, one speed, and
// one equilibrium-argument/node-factor pair of per-year slices per
// constituent.
package bundle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.ngs.io/congen/internal/domain"
)

// minSpeed and maxSpeed bound the speeds a bundled database can store,
// set by the 32-bit fixed layout of the legacy harmonic-constant format.
const (
	minSpeed = 0.0
	maxSpeed = 214.748
)

// ErrSpeedOutOfRange is returned by Build when a constituent's speed
// falls outside [0, 214.748) degrees per solar hour.
var ErrSpeedOutOfRange = errors.New("bundle: speed out of range")

// Bundle holds the flattened, database-ready form of a set of
// constituents that all share the same per-year coverage.
type Bundle struct {
	Names           []string
	Speeds          []float64
	EquilibriumArgs [][]float32
	NodeFactors     [][]float32
	NumYears        int
}

// Build flattens constituents into a Bundle. All constituents must
// carry the same number of per-year entries; Build returns an error
// naming the offending constituent if not, or if any speed falls
// outside the range a bundled database can represent.
func Build(constituents []domain.Constituent) (*Bundle, error) {
	if len(constituents) == 0 {
		return &Bundle{}, nil
	}

	numYears := len(constituents[0].F)
	b := &Bundle{
		Names:           make([]string, len(constituents)),
		Speeds:          make([]float64, len(constituents)),
		EquilibriumArgs: make([][]float32, len(constituents)),
		NodeFactors:     make([][]float32, len(constituents)),
		NumYears:        numYears,
	}

	for i, c := range constituents {
		if c.Speed < minSpeed || c.Speed >= maxSpeed {
			return nil, fmt.Errorf("%s: speed %v: %w", c.Name, c.Speed, ErrSpeedOutOfRange)
		}
		if len(c.Vpu) != numYears || len(c.F) != numYears {
			return nil, fmt.Errorf("%s: has %d/%d years, want %d", c.Name, len(c.Vpu), len(c.F), numYears)
		}

		b.Names[i] = c.Name
		b.Speeds[i] = c.Speed

		args := make([]float32, numYears)
		nods := make([]float32, numYears)
		for j := 0; j < numYears; j++ {
			// Equilibrium arguments are round-tripped through the
			// same decimal text that the report table prints, so the
			// bundled value matches the published figure exactly
			// rather than the full-precision float64 it was rounded
			// from.
			normalized := domain.Normalize(c.Vpu[j], 2)
			v, err := strconv.ParseFloat(strings.TrimSpace(normalized), 32)
			if err != nil {
				return nil, fmt.Errorf("%s: year %d: %w", c.Name, j, err)
			}
			args[j] = float32(v)
			nods[j] = float32(c.F[j])
		}
		b.EquilibriumArgs[i] = args
		b.NodeFactors[i] = nods
	}

	return b, nil
}
