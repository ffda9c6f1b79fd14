package report

import (
	"strings"
	"testing"

	"go.ngs.io/congen/internal/domain"
)

func sampleConstituents() []domain.Constituent {
	return []domain.Constituent{
		domain.NewBasic("M2", [domain.NumVTerms]float64{2, -2, 2, 0, 0, 0},
			[domain.NumUTerms]float64{2, -2, 0, 0, 0, 0, 0}, 78, 1970, 1972, 1900),
		domain.NewBasic("S2", [domain.NumVTerms]float64{2, 0, 0, 0, 0, 0},
			[domain.NumUTerms]float64{}, 1, 1970, 1972, 1900),
	}
}

// TestWriteProducesBeginAndEndMarkers checks the report is bracketed by
// the legacy begin/end banner lines.
func TestWriteProducesBeginAndEndMarkers(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleConstituents(), 1970, 1972); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# ------------- Begin congen output -------------\n") {
		t.Error("missing begin banner")
	}
	if !strings.Contains(out, "# ------------- End congen output -------------") {
		t.Error("missing end banner")
	}
}

// TestWriteSpeedLineFormat checks each speed row matches the fixed
// 27-column name field followed by a fixed 7-decimal speed.
func TestWriteSpeedLineFormat(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleConstituents(), 1970, 1972); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "S2                           30.0000000\n") {
		t.Errorf("did not find expected S2 speed line; got:\n%s", buf.String())
	}
}

// TestWriteHasTwoEndMarkers checks that both the equilibrium-argument
// and node-factor tables are terminated with a "*END*" line. The header
// comments also mention "*END*", so only whole marker lines are counted.
func TestWriteHasTwoEndMarkers(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleConstituents(), 1970, 1972); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n := strings.Count(buf.String(), "\n*END*\n"); n != 2 {
		t.Errorf("count of *END* = %d, want 2", n)
	}
}

// TestWriteWrapsAtTenColumns checks that a constituent spanning more
// than ten years wraps its value rows every ten entries.
func TestWriteWrapsAtTenColumns(t *testing.T) {
	c := domain.NewBasic("M2", [domain.NumVTerms]float64{2, -2, 2, 0, 0, 0},
		[domain.NumUTerms]float64{2, -2, 0, 0, 0, 0, 0}, 78, 1970, 1982, 1900)
	var buf strings.Builder
	if err := Write(&buf, []domain.Constituent{c}, 1970, 1982); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	found := false
	for i, line := range lines {
		if line == "M2" && i+1 < len(lines) {
			fields := strings.Fields(lines[i+1])
			if len(fields) != columnsPerRow {
				t.Errorf("first M2 value row has %d fields, want %d", len(fields), columnsPerRow)
			}
			found = true
			break
		}
	}
	if !found {
		t.Fatal("did not find M2 row in output")
	}
}

// TestWriteNumConstituentsLine checks the constituent count line agrees
// with the number of constituents passed in.
func TestWriteNumConstituentsLine(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleConstituents(), 1970, 1972); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "# Number of constituents\n2\n") {
		t.Error("missing or wrong constituent count line")
	}
}
