// Command congen reads a legacy tidal-constituent catalog from stdin
// and writes the constituent speeds, equilibrium arguments and node
// factors it computes to stdout.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"go.ngs.io/congen/internal/bundle"
	"go.ngs.io/congen/internal/catalog"
	"go.ngs.io/congen/internal/diag"
	"go.ngs.io/congen/internal/domain"
	"go.ngs.io/congen/internal/report"
)

const usage = `Usage: congen [-b year] [-e year] [-a1|-a2] [-sp98test]
              < congen_input.txt > output.txt

    congen:  constituent generator.

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
`

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			diag.Errorf("panic: %v", r)
			exitCode = 1
		}
	}()

	firstYear := flag.Int("b", 1970, "first year to generate")
	lastYear := flag.Int("e", 2037, "last year to generate")
	ambitious := flag.Bool("a2", false, "use the midpoint of the year range as the epoch for speed computation, instead of 1900")
	legacyA1 := flag.Bool("a1", false, "use 1900 as the epoch for speed computation (default)")
	legacyA0 := flag.Bool("a0", false, "no longer supported; use -a1 (the default) instead")
	showTables := flag.Bool("sp98test", false, "print the Schureman reference tables and exit")
	dbPath := flag.String("db", "", "write a JSON-encoded bundle to this path, in lieu of a binary constituent database")
	debug := flag.Bool("debug", false, "turn on debugging output")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if *legacyA0 {
		fmt.Fprintln(os.Stderr, "-a0 is no longer supported; use -a1 (the default) instead.")
		return 1
	}
	_ = legacyA1 // accepted for command-line compatibility; -a1 is the default behavior

	if *firstYear < 1 || *firstYear > 4000 {
		fmt.Fprintf(os.Stderr, "Year out of range: %d\n", *firstYear)
		return 1
	}
	if *lastYear < 1 || *lastYear > 4000 {
		fmt.Fprintf(os.Stderr, "Year out of range: %d\n", *lastYear)
		return 1
	}

	if err := diag.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer diag.Sync()

	runID := uuid.New()
	diag.Infow("starting run", "runID", runID, "firstYear", *firstYear, "lastYear", *lastYear, "ambitiousSpeeds", *ambitious)

	if *showTables {
		if err := domain.RenderTables(os.Stdout); err != nil {
			diag.Errorf("rendering tables: %v", err)
			return 1
		}
		return 0
	}

	if *lastYear < *firstYear {
		fmt.Fprintln(os.Stderr, "End year is before start year")
		return 1
	}

	epochForSpeed := 1900
	if *ambitious {
		epochForSpeed = (*firstYear + *lastYear) / 2
	}

	constituents, err := catalog.Parse(os.Stdin, *firstYear, *lastYear, epochForSpeed)
	if err != nil {
		var perr *catalog.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "Error on input line %d\n", perr.Line)
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}
	diag.Infow("parsed catalog", "runID", runID, "constituents", len(constituents))

	if err := report.Write(os.Stdout, constituents, *firstYear, *lastYear); err != nil {
		diag.Errorf("writing report: %v", err)
		return 1
	}

	if *dbPath != "" {
		b, err := bundle.Build(constituents)
		if err != nil {
			diag.Errorf("building bundle: %v", err)
			return 1
		}
		f, err := os.Create(*dbPath)
		if err != nil {
			diag.Errorf("creating %s: %v", *dbPath, err)
			return 1
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			diag.Errorf("writing %s: %v", *dbPath, err)
			return 1
		}
		diag.Infow("wrote bundle", "runID", runID, "path", *dbPath)
	}

	diag.Infow("run complete", "runID", runID)
	return 0
}
