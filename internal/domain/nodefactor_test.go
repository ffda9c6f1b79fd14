package domain

import "testing"

func TestF1IsAlwaysOne(t *testing.T) {
	for _, incl := range []float64{0, 18.3, 28.6} {
		if got := f1(incl); got != 1 {
			t.Errorf("f1(%v) = %v, want 1", incl, got)
		}
	}
}

func TestNodeFactorDispatch(t *testing.T) {
	incl, p, nu := 23.45, 10.0, 5.0
	cases := []struct {
		tag  int
		want float64
	}{
		{1, f1(incl)},
		{73, f73(incl)},
		{78, f78(incl)},
		{227, f227(incl, nu)},
		{235, f235(incl, nu)},
		{206, f206(incl, p)},
		{215, f215(incl, p)},
	}
	for _, c := range cases {
		if got := nodeFactor(c.tag, incl, p, nu); got != c.want {
			t.Errorf("nodeFactor(%d, ...) = %v, want %v", c.tag, got, c.want)
		}
	}
}

func TestNodeFactorPanicsOnUnknownTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nodeFactor with unknown tag did not panic")
		}
	}()
	nodeFactor(999, 0, 0, 0)
}
