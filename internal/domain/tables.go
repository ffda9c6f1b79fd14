package domain

import (
	"fmt"
	"io"
	"math"
)

// RenderTables reproduces the SP 98 self-test tables (Schureman 1958,
// Tables 1, 4, 6, 7, 8, 9, 10 and 14) from the formulas implemented
// elsewhere in this package, as a way of checking those formulas
// against published reference values by eye. After the first write
// failure it writes nothing further and returns that error.
func RenderTables(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("════════════════════════════════════════════════════════════════════════════════\n" +
		"          MEAN LONGITUDE OF SOLAR AND LUNAR ELEMENTS FOR CENTURY YEARS\n" +
		"────────────────────────────────────────┬───────┬───────┬───────┬───────┬───────\n" +
		"                                        │       │ Solar │       │ Lunar │Moon's\n" +
		"       Epoch, Gregorian calendar        │  Sun  │perigee│ Moon  │perigee│ node\n" +
		"       Greenwich mean civil time        │   h   │   p₁  │   s   │   p   │   N\n" +
		"────────────────────────────────────────┼───────┼───────┼───────┼───────┼───────\n" +
		"                                        │   °   │   °   │   °   │   °   │   °\n")
	for year := 1600; year <= 2000; year += 100 {
		t := startYear(year)
		v := vTerms(t, 0)
		ew.printf("%d, Jan. 1, 0 hour                    │%s│%s│%s│%s│%s\n",
			year,
			Normalize(v[vIndexH], 3),
			Normalize(v[vIndexP1], 3),
			Normalize(v[vIndexS], 3),
			Normalize(v[vIndexP], 3),
			Normalize(midyearTerms(t, 0)[midIndexN], 3))
	}
	ew.printf("════════════════════════════════════════╧═══════╧═══════╧═══════╧═══════╧═══════\n")

	ew.printf("\n" +
		"RATE OF CHANGE IN MEAN LONGITUDE OF SOLAR AND LUNAR ELEMENTS (EPOCH, JAN. 1, 1900)\n" +
		"                       ────────────────────┬─────────────\n" +
		"                             Elements      │Per solar day\n" +
		"                       ────────────────────┼─────────────\n" +
		"                                           │       °\n")
	{
		t := startYear(1900)
		const daysPerJulianCentury = 36525.0
		speeds := make([]float64, NumVTerms)
		copy(speeds, vTerms(t, 1))
		for i := range speeds {
			speeds[i] /= daysPerJulianCentury
		}
		ew.printf("                       Sun (h)             │  %10.7f\n", speeds[vIndexH])
		ew.printf("                       Solar perigee (p₁)  │  %10.7f\n", speeds[vIndexP1])
		ew.printf("                                           │\n")
		ew.printf("                       Moon (s)            │  %10.7f\n", speeds[vIndexS])
		ew.printf("                       Lunar perigee (p)   │  %10.7f\n", speeds[vIndexP])
		ew.printf("                       Moon's node (N)     │  %10.7f\n", midyearTerms(t, 1)[midIndexN]/daysPerJulianCentury)
		ew.printf("                       ════════════════════╧═════════════\n")
	}

	ew.printf("\n" +
		"    Table 4.--Mean longitude of lunar and solar elements at Jan. 1, 0 hour,\n" +
		"           Greenwich mean civil time, of each year from 1800 to 2000\n")
	tab4part(ew, 1800)
	ew.printf("\n" +
		"    Table 4.--Mean longitude of lunar and solar elements at Jan. 1, 0 hour,\n" +
		"      Greenwich mean civil time, of each year from 1800 to 2000--Continued\n")
	tab4part(ew, 1900)

	ew.printf("\n" +
		"         Table 6.--Values of I, ν, ξ, ν′, and 2ν″ for each degree of N.\n" +
		"═══╤══════╤══════╤══════╤══════╤═══════╦═══════╤══════╤══════╤══════╤══════╤═══\n" +
		" N │   I  │   ν  │   ξ  │   ν′ │  2ν″  ║    I  │   ν  │   ξ  │   ν′ │  2ν″ │ N\n" +
		"───┼──────┼──────┼──────┼──────┼───────║───────┼──────┼──────┼──────┼──────┼───\n" +
		" ° │   °  │   °  │   °  │   °  │   °   ║    °  │   °  │   °  │   °  │   °  │ °\n")
	for n := 0; n <= 180; n++ {
		nf := float64(n)
		ew.printf("%3d│%s│%s│%s│%s│%s ║ %s│%s│%s│%s│%s│%3d\n",
			n,
			Normalize(inclination(nf), 2),
			Normalize(nu(nf), 2),
			Normalize(xi(nf), 2),
			Normalize(nuPrime(nf), 2),
			Normalize(twoNuSecond(nf), 2),
			Normalize(inclination(360-nf), 2),
			SNormalize(nu(360-nf), 2)[1:],
			SNormalize(xi(360-nf), 2)[1:],
			SNormalize(nuPrime(360-nf), 2)[1:],
			SNormalize(twoNuSecond(360-nf), 2)[1:],
			360-n)
		if n%3 == 0 && n < 180 {
			ew.printf("   │      │      │      │      │       ║       │      │      │      │      │\n")
		}
	}
	ew.printf("───┴──────┴──────┴──────┴──────┴───────╨───────┴──────┴──────┴──────┴──────┴───\n")

	ew.printf("\n" +
		"                   Table 7.--Log Rₐ for amplitude of constituent L₂\n" +
		"═══╤══════╤══════╤══════╤══════╤══════╤══════╤══════╤══════╤══════╤══════╤══════╤══════\n")
	ew.printf("P\\I")
	for i := 18; i <= 29; i++ {
		ew.printf("│%4d  ", i)
	}
	ew.printf("\n───")
	for i := 18; i <= 29; i++ {
		ew.printf("┼──────")
	}
	ew.printf("\n °")
	for i := 18; i <= 29; i++ {
		ew.printf(" │  °  ")
	}
	ew.printf("\n")
	for p := 0; p <= 360; p += 5 {
		ew.printf("%3d", p)
		for i := 18; i <= 29; i++ {
			ew.printf("│%6.4f", mangledLog10(rAmplitude(float64(p), float64(i))))
		}
		ew.printf("\n")
	}
	ew.printf("───┴──────┴──────┴──────┴──────┴──────┴──────┴──────┴──────┴──────┴──────┴──────┴──────\n")

	ew.printf("\n" +
		"              Table 8.--Values of R for argument of constituent L₂\n" +
		"  ═══╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════\n")
	ew.printf("  P\\I")
	for i := 18; i <= 29; i++ {
		ew.printf("│%4d ", i)
	}
	ew.printf("\n  ───")
	for i := 18; i <= 29; i++ {
		ew.printf("┼─────")
	}
	ew.printf("\n   °")
	for i := 18; i <= 29; i++ {
		ew.printf(" │  ° ")
	}
	ew.printf("\n")
	for p := 0; p <= 360; p += 5 {
		ew.printf("  %3d", p)
		for i := 18; i <= 29; i++ {
			ew.printf("│%s", SNormalize(rArg(float64(p), float64(i)), 1)[1:])
		}
		ew.printf("\n")
	}
	ew.printf("  ───┴─────┴─────┴─────┴─────┴─────┴─────┴─────┴─────┴─────┴─────┴─────┴─────\n")

	ew.printf("\n" +
		"                Table 9.--Log Qₐ for amplitude of constituent M₁\n" +
		"               ═══╤═══════╦════╤═══════╦════╤═══════╦════╤══════\n" +
		"                P │Log Qₐ ║  P │Log Qₐ ║  P │Log Qₐ ║  P │Log Qₐ\n" +
		"               ───┼───────║────┼───────║────┼───────║────┼──────\n" +
		"                ° │   °   ║  ° │   °   ║  ° │   °   ║  ° │   °\n")
	for p := 0; p <= 90; p++ {
		ew.printf("               %3d│%6.4f ║ %3d│%6.4f ║ %3d│%6.4f ║ %3d│%6.4f\n",
			p, mangledLog10(qAmplitude(float64(p))),
			180+p, mangledLog10(qAmplitude(float64(180+p))),
			180-p, mangledLog10(qAmplitude(float64(180-p))),
			360-p, mangledLog10(qAmplitude(float64(360-p))))
		if p%3 == 0 && p < 90 {
			ew.printf("                  │       ║    │       ║    │       ║    │\n")
		}
	}
	ew.printf("               ───┴───────╨────┴───────╨────┴───────╨────┴──────\n")

	ew.printf("\n" +
		"             Table 10.--Values of Q for argument of constituent M₁\n" +
		"═══╤═════╦═══╤═════╦═══╤═════╦═══╤═════╦═══╤═════╦═══╤═════╦═══╤═════╦═══╤═════\n" +
		" P │  Q  ║ P │  Q  ║ P │  Q  ║ P │  Q  ║ P │  Q  ║ P │  Q  ║ P │  Q  ║ P │  Q\n" +
		"───┼─────║───┼─────║───┼─────║───┼─────║───┼─────║───┼─────║───┼─────║───┼─────\n" +
		" ° │  °  ║ ° │  °  ║ ° │  °  ║ ° │  °  ║ ° │  °  ║ ° │  °  ║ ° │  °  ║ ° │  °\n")
	for p := 0; p <= 45; p++ {
		ew.printf("%3d│%s║%3d│%s║%3d│%s║%3d│%s║%3d│%s║%3d│%s║%3d│%s║%3d│%s\n",
			p, Normalize(qArg(float64(p)), 1),
			p+45, Normalize(qArg(float64(p+45)), 1),
			p+90, Normalize(qArg(float64(p+90)), 1),
			p+135, Normalize(qArg(float64(p+135)), 1),
			p+180, Normalize(qArg(float64(p+180)), 1),
			p+225, Normalize(qArg(float64(p+225)), 1),
			p+270, Normalize(qArg(float64(p+270)), 1),
			p+315, Normalize(qArg(float64(p+315)), 1))
		if p%3 == 0 && p < 45 {
			ew.printf("   │     ║   │     ║   │     ║   │     ║   │     ║   │     ║   │     ║   │\n")
		}
	}
	ew.printf("───┴─────╨───┴─────╨───┴─────╨───┴─────╨───┴─────╨───┴─────╨───┴─────╨───┴─────\n")

	ew.printf("\n" +
		"    Table 14.--Node factor f for middle of each year, 1850 to 1999\n" +
		"    (Not all figures agree with SP 98 to the quoted precision)\n")
	for y1 := 1850; y1 < 2000; y1 += 10 {
		ew.printf("═══════════╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════╤═════\n")
		ew.printf("Constituent")
		for y := y1; y < y1+10; y++ {
			ew.printf("│%5d", y)
		}
		ew.printf("\n")
		ew.printf("───────────")
		for y := y1; y < y1+10; y++ {
			ew.printf("┼─────")
		}
		ew.printf("\n")
		tab14row(ew, "J₁         ", 76, y1)
		tab14row(ew, "K₁         ", 227, y1)
		tab14row(ew, "K₂         ", 235, y1)
		ew.printf("           │     │     │     │     │     │     │     │     │     │\n")
		tab14row(ew, "L₂         ", 215, y1)
		tab14row(ew, "M₁         ", 206, y1)
		ew.printf("           │     │     │     │     │     │     │     │     │     │\n")
		tab14row(ew, "M₂         ", 78, y1)
		tab14row(ew, "M₃         ", 149, y1)
		ew.printf("           │     │     │     │     │     │     │     │     │     │\n")
		tab14row(ew, "O₁         ", 75, y1)
		tab14row(ew, "OO₁        ", 77, y1)
		ew.printf("           │     │     │     │     │     │     │     │     │     │\n")
		tab14row(ew, "Mf         ", 74, y1)
		tab14row(ew, "Mm         ", 73, y1)
	}

	return ew.err
}

func tab4row(ew *errWriter, leftYear, rightYear int) {
	t := startYear(leftYear)
	terms := vTerms(t, 0)
	ew.printf("%4d│%s│%s│%s│%s│%s║",
		leftYear,
		Normalize(terms[vIndexS], 2),
		Normalize(terms[vIndexP], 2),
		Normalize(terms[vIndexH], 2),
		Normalize(terms[vIndexP1], 2),
		Normalize(midyearTerms(t, 0)[midIndexN], 2))
	if rightYear != 0 {
		t = startYear(rightYear)
		terms = vTerms(t, 0)
		ew.printf("%4d│%s│%s│%s│%s│%s\n",
			rightYear,
			Normalize(terms[vIndexS], 2),
			Normalize(terms[vIndexP], 2),
			Normalize(terms[vIndexH], 2),
			Normalize(terms[vIndexP1], 2),
			Normalize(midyearTerms(t, 0)[midIndexN], 2))
	} else {
		ew.printf("    │      │      │      │      │\n")
	}
}

func tab4part(ew *errWriter, yearIn int) {
	ew.printf("════╤══════╤══════╤══════╤══════╤══════╦════╤══════╤══════╤══════╤══════╤══════\n" +
		"Year│  s   │  p   │  h   │  p₁  │  N   ║Year│  s   │  p   │  h   │  p₁  │  N\n" +
		"────┼──────┼──────┼──────┼──────┼──────║────┼──────┼──────┼──────┼──────┼──────\n" +
		"    │  °   │  °   │  °   │  °   │  °   ║    │  °   │  °   │  °   │  °   │  °\n")
	for year := yearIn; year < yearIn+52; year++ {
		left, right := year, year+52
		if (right >= 1900 && right <= 1903) || right > 2000 {
			right = 0
		}
		tab4row(ew, left, right)
		if year == 1851 || year == 1951 {
			ew.printf("────┴──────┴──────┴──────┴──────┴──────╨────┴──────┴──────┴──────┴──────┴──────\n")
		} else if (year+1)%4 == 0 {
			ew.printf("    │      │      │      │      │      ║    │      │      │      │      │\n")
		}
	}
}

func tab14row(ew *errWriter, name string, fFormula, y1 int) {
	ew.printf("%s", name)
	for y := y1; y < y1+10; y++ {
		t := midYear(y)
		mid := midyearTerms(t, 0)
		n, p := mid[midIndexN], mid[midIndexP]
		incl := inclination(n)
		xiVal := xi(n)
		nuVal := nu(n)
		pVal := pArg(p, xiVal)
		ew.printf("│%5.3f", nodeFactor(fFormula, incl, pVal, nuVal))
	}
	ew.printf("\n")
}

// mangledLog10 reproduces the log10 with shifted-negative-range
// convention SP 98 uses in Tables 7 and 9, where a negative logarithm
// is carried as 10 plus its value instead of with a minus sign.
func mangledLog10(x float64) float64 {
	l := math.Log10(x)
	if l < 0 {
		l += 10
	}
	return l
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
