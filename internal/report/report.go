// Package report renders the legacy text report that congen emits: a
// constituent speed table followed by per-year equilibrium-argument and
// node-factor tables, in the exact column layout downstream harmonic
// analysis tools expect to parse.
package report

import (
	"bufio"
	"fmt"
	"io"

	"go.ngs.io/congen/internal/domain"
)

const columnsPerRow = 10

// Write renders the full report for constituents, whose per-year slices
// must all have the same length, to w. firstYear and lastYear are the
// calendar years the equilibrium-argument and node-factor tables cover.
func Write(w io.Writer, constituents []domain.Constituent, firstYear, lastYear int) error {
	bw := bufio.NewWriter(w)

	numYears := lastYear - firstYear + 1
	if numYears < 0 {
		numYears = 0
	}
	if len(constituents) > 0 && len(constituents[0].Vpu) != numYears {
		return fmt.Errorf("report: %d years in constituent data, want %d from [%d,%d]",
			len(constituents[0].Vpu), numYears, firstYear, lastYear)
	}

	fmt.Fprintln(bw, "# ------------- Begin congen output -------------")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# Number of constituents")
	fmt.Fprintf(bw, "%d\n", len(constituents))
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# Constituent speeds")
	fmt.Fprintln(bw, "# Format:  identifier [whitespace] speed [CR]")
	fmt.Fprintln(bw, "# Speed is in degrees per solar hour.")
	fmt.Fprintln(bw, "# Identifier is just a name for the constituent.  They are for")
	fmt.Fprintln(bw, "# readability only; this program assumes that the constituents will be listed")
	fmt.Fprintln(bw, "# in the same order throughout this file.")
	for _, c := range constituents {
		fmt.Fprintf(bw, "%-27s %11.7f\n", c.Name, c.Speed)
	}

	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# Starting year for equilibrium arguments and node factors")
	fmt.Fprintf(bw, "%d\n", firstYear)

	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# The following table gives equilibrium arguments for each year that")
	fmt.Fprintln(bw, "# we can predict tides for.  The equilibrium argument is in degrees for")
	fmt.Fprintln(bw, "# the meridian of Greenwich, at the beginning of each year.")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# First line:  how many years in this table [CR]")
	fmt.Fprintln(bw, "# Remainder of table:  identifier [whitespace] arg [whitespace] arg...")
	fmt.Fprintln(bw, "# Carriage returns inside the table will be ignored.")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# The identifiers are for readability only; this program assumes that they")
	fmt.Fprintln(bw, "# are in the same order as defined above.")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# DO NOT PUT COMMENT LINES INSIDE THE FOLLOWING TABLE.")
	fmt.Fprintln(bw, "# DO NOT REMOVE THE \"*END*\" AT THE END.")
	fmt.Fprintf(bw, "%d\n", numYears)
	for _, c := range constituents {
		printRow(bw, c.Name, numYears, func(i int) string {
			return domain.Normalize(c.Vpu[i], 2)
		})
	}
	fmt.Fprintln(bw, "*END*")

	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# Now come the node factors for the middle of each year that we can")
	fmt.Fprintln(bw, "# predict tides for.")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# First line:  how many years in this table [CR]")
	fmt.Fprintln(bw, "# Remainder of table:  identifier [whitespace] factor [whitespace] factor...")
	fmt.Fprintln(bw, "# Carriage returns inside the table will be ignored.")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# The identifiers are for readability only; this program assumes that they")
	fmt.Fprintln(bw, "# are in the same order as defined above.")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# DO NOT PUT COMMENT LINES INSIDE THE FOLLOWING TABLE.")
	fmt.Fprintln(bw, "# DO NOT REMOVE THE \"*END*\" AT THE END.")
	fmt.Fprintf(bw, "%d\n", numYears)
	for _, c := range constituents {
		printRow(bw, c.Name, numYears, func(i int) string {
			return fmt.Sprintf("%6.4f", c.F[i])
		})
	}
	fmt.Fprintln(bw, "*END*")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# ------------- End congen output -------------")

	return bw.Flush()
}

// printRow writes a constituent's name followed by numYears values,
// wrapped at columnsPerRow values per line.
func printRow(bw *bufio.Writer, name string, numYears int, value func(i int) string) {
	fmt.Fprintln(bw, name)
	col := 0
	for i := 0; i < numYears; i++ {
		if col > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(value(i))
		col++
		if col == columnsPerRow {
			bw.WriteByte('\n')
			col = 0
		}
	}
	if col > 0 {
		bw.WriteByte('\n')
	}
}
