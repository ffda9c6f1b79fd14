package domain

import (
	"math"
	"testing"
)

// TestInclinationExtremes checks the inclination of the lunar orbit to
// the equator at its two extremes, N=0 and N=180, against the textbook
// values of about 28.6 degrees (max) and 18.3 degrees (min).
func TestInclinationExtremes(t *testing.T) {
	const tolerance = 1e-4

	max := obliquity + lunarOrbitInclinat
	if got := inclination(0); math.Abs(got-max) > tolerance {
		t.Errorf("inclination(0) = %v, want %v", got, max)
	}

	min := obliquity - lunarOrbitInclinat
	if got := inclination(180); math.Abs(got-min) > tolerance {
		t.Errorf("inclination(180) = %v, want %v", got, min)
	}
}

// TestXiNuZeroAtNodeZero checks that the auxiliary angles xi and nu,
// which correct for the lunar orbit's tilt relative to the equator,
// vanish when the moon's ascending node N itself is at 0 or 180 (the
// orbit's line of nodes then coincides with the equinoxes).
func TestXiNuZeroAtNodeZero(t *testing.T) {
	const tolerance = 1e-9
	for _, n := range []float64{0, 180} {
		if got := xi(n); math.Abs(got) > tolerance {
			t.Errorf("xi(%v) = %v, want ~0", n, got)
		}
		if got := nu(n); math.Abs(got) > tolerance {
			t.Errorf("nu(%v) = %v, want ~0", n, got)
		}
	}
}

// TestQAmplitudeSymmetric checks that qAmplitude, which divides the M1
// node factor (f206), takes the same value at P and P+180 (it depends
// on P only through cos(2P), which has period 180).
func TestQAmplitudeSymmetric(t *testing.T) {
	for _, p := range []float64{10, 45, 89} {
		a, b := qAmplitude(p), qAmplitude(p+180)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("qAmplitude(%v) = %v, qAmplitude(%v) = %v, want equal", p, a, p+180, b)
		}
	}
}
