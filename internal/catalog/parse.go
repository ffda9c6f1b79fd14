// Package catalog parses the legacy line-oriented catalog format that
// describes tidal constituents as Basic, Doodson or Compound records.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.ngs.io/congen/internal/domain"
)

// ParseError reports the 1-based input line a catalog record could not
// be parsed from.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("catalog: malformed record at line %d", e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a legacy catalog from r and builds the Constituent for
// each record in it, in the order the records appear. Blank lines and
// lines beginning with '#' are ignored. An error, always a *ParseError,
// names the 1-based line on which parsing failed; for a Doodson record
// whose satellites wrap, that can be a continuation line.
func Parse(r io.Reader, firstYear, lastYear, epochForSpeed int) ([]domain.Constituent, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	cache := &domain.CompoundCache{}
	var constituents []domain.Constituent
	lineno := 0

	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				line := lineno + 1
				if lineno == 0 {
					line = 1
				}
				return nil, &ParseError{Line: line, Err: err}
			}
			return constituents, nil
		}
		lineno++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &ParseError{Line: lineno, Err: fmt.Errorf("expected \"name kind ...\"")}
		}
		name, kind := fields[0], fields[1]
		args := fields[2:]

		var c domain.Constituent
		var err error
		switch kind {
		case "Basic":
			c, err = parseBasic(name, args, firstYear, lastYear, epochForSpeed)
		case "Doodson":
			c, err = parseDoodson(name, args, scanner, &lineno, firstYear, lastYear, epochForSpeed)
		case "Compound":
			c, err = parseCompound(name, args, cache, firstYear, lastYear, epochForSpeed)
		default:
			err = fmt.Errorf("unknown record kind %q", kind)
		}
		if err != nil {
			return nil, &ParseError{Line: lineno, Err: err}
		}
		constituents = append(constituents, c)
	}
}

func parseBasic(name string, args []string, firstYear, lastYear, epochForSpeed int) (domain.Constituent, error) {
	const numFields = domain.NumVTerms + 6 + 1 // 6 V-coeffs, 6 u-coeffs (Qu omitted), 1 f-formula tag
	if len(args) < numFields {
		return domain.Constituent{}, fmt.Errorf("short Basic record: want %d fields, got %d", numFields, len(args))
	}

	var vCoeffs [domain.NumVTerms]float64
	for i := 0; i < domain.NumVTerms; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return domain.Constituent{}, fmt.Errorf("V-coefficient %d: %w", i, err)
		}
		vCoeffs[i] = v
	}

	var uCoeffs [domain.NumUTerms]float64 // Qu (index 6) is always 0 for Basic records
	for i := 0; i < 6; i++ {
		v, err := strconv.ParseFloat(args[domain.NumVTerms+i], 64)
		if err != nil {
			return domain.Constituent{}, fmt.Errorf("u-coefficient %d: %w", i, err)
		}
		uCoeffs[i] = v
	}

	tagTok := args[domain.NumVTerms+6]
	tag, err := strconv.Atoi(tagTok)
	if err != nil {
		return domain.Constituent{}, fmt.Errorf("node factor formula tag %q: %w", tagTok, err)
	}

	return domain.NewBasic(name, vCoeffs, uCoeffs, tag, firstYear, lastYear, epochForSpeed), nil
}

// floatPrefixRe matches the longest numeric prefix of a token, mirroring
// the behavior of reading a float from an input stream that stops at
// the first character that can't extend the number (such as a trailing
// 'R' flag on a satellite's relative amplitude).
var floatPrefixRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func parseLeadingFloat(tok string) (float64, bool) {
	m := floatPrefixRe.FindString(tok)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseDoodson(name string, args []string, scanner *bufio.Scanner, lineno *int, firstYear, lastYear, epochForSpeed int) (domain.Constituent, error) {
	if len(args) < domain.NumVTerms+1 {
		return domain.Constituent{}, fmt.Errorf("short Doodson header: want %d fields, got %d", domain.NumVTerms+1, len(args))
	}

	var vCoeffs [domain.NumVTerms]float64
	for i := 0; i < domain.NumVTerms; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return domain.Constituent{}, fmt.Errorf("V-coefficient %d: %w", i, err)
		}
		vCoeffs[i] = v
	}

	numSatsTok := args[domain.NumVTerms]
	numSats, err := strconv.Atoi(numSatsTok)
	if err != nil {
		return domain.Constituent{}, fmt.Errorf("satellite count %q: %w", numSatsTok, err)
	}

	fields := args[domain.NumVTerms+1:]
	fetchLine := func() bool {
		for scanner.Scan() {
			*lineno++
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			fields = strings.Fields(line)
			return true
		}
		return false
	}

	satellites := make([]domain.Satellite, 0, numSats)
	for i := 0; i < numSats; i++ {
		// Only the first field of a satellite record (deltaP) may be
		// found on a fresh line fetched mid-record; the rest must
		// follow it on the same line.
		for len(fields) == 0 {
			if !fetchLine() {
				return domain.Constituent{}, fmt.Errorf("unexpected end of input in satellite block")
			}
		}
		dp, err := strconv.Atoi(fields[0])
		if err != nil {
			return domain.Constituent{}, fmt.Errorf("satellite deltaP %q: %w", fields[0], err)
		}
		fields = fields[1:]

		if len(fields) < 4 {
			return domain.Constituent{}, fmt.Errorf("short satellite record")
		}
		dn, err := strconv.Atoi(fields[0])
		if err != nil {
			return domain.Constituent{}, fmt.Errorf("satellite deltaN %q: %w", fields[0], err)
		}
		dp1, err := strconv.Atoi(fields[1])
		if err != nil {
			return domain.Constituent{}, fmt.Errorf("satellite deltaP1 %q: %w", fields[1], err)
		}
		alpha, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return domain.Constituent{}, fmt.Errorf("satellite alpha %q: %w", fields[2], err)
		}
		rTok := fields[3]
		fields = fields[4:]

		rVal, ok := parseLeadingFloat(rTok)
		if !ok {
			return domain.Constituent{}, fmt.Errorf("satellite r %q has no leading number", rTok)
		}
		if strings.ContainsRune(rTok, 'R') {
			// Counted toward numSats but discarded: r is ignored for
			// a satellite flagged 'R'.
			continue
		}
		satellites = append(satellites, domain.Satellite{
			DeltaP:  dp,
			DeltaN:  -dn,
			DeltaP1: dp1,
			Alpha:   alpha * 360,
			R:       rVal,
		})
	}

	return domain.NewDoodson(name, vCoeffs, satellites, firstYear, lastYear, epochForSpeed), nil
}

func parseCompound(name string, args []string, cache *domain.CompoundCache, firstYear, lastYear, epochForSpeed int) (domain.Constituent, error) {
	var coeffs [domain.NumCompoundBases]float64
	for i := 0; i < domain.NumCompoundBases && i < len(args); i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			break // stop at the first non-numeric token; trailing coefficients default to 0
		}
		coeffs[i] = v
	}
	return domain.NewCompound(cache, name, coeffs, firstYear, lastYear, epochForSpeed), nil
}
