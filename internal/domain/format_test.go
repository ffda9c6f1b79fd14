package domain

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "  0.00"},
		{90, " 90.00"},
		{359.999, "  0.00"}, // rounds up to 360, blanked back to 0
		{-1, "359.00"},
		{720.5, "  0.50"},
	}
	for _, c := range cases {
		got := Normalize(c.degrees, 2)
		if got != c.want {
			t.Errorf("Normalize(%v, 2) = %q, want %q", c.degrees, got, c.want)
		}
	}
}

func TestNormalizePanicsOnBadDecimals(t *testing.T) {
	for _, d := range []int{0, 21} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Normalize(_, %d) did not panic", d)
				}
			}()
			Normalize(1, d)
		}()
	}
}

func TestSNormalize(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "   0.00"},
		{180, " 180.00"},
		{-179.996, " 180.00"}, // wraps to +180 at the boundary
		{-90, " -90.00"},
	}
	for _, c := range cases {
		got := SNormalize(c.degrees, 2)
		if got != c.want {
			t.Errorf("SNormalize(%v, 2) = %q, want %q", c.degrees, got, c.want)
		}
	}
}
