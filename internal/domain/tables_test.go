package domain

import (
	"strings"
	"testing"
)

// TestRenderTablesProducesAllEightTables checks that each of the eight
// SP 98 reference tables' titles appear in the rendered output.
func TestRenderTablesProducesAllEightTables(t *testing.T) {
	var buf strings.Builder
	if err := RenderTables(&buf); err != nil {
		t.Fatalf("RenderTables: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"MEAN LONGITUDE OF SOLAR AND LUNAR ELEMENTS",
		"Table 4.--Mean longitude",
		"Table 6.--Values of I, ν, ξ, ν′, and 2ν″",
		"Table 7.--Log Rₐ for amplitude of constituent L₂",
		"Table 8.--Values of R for argument of constituent L₂",
		"Table 9.--Log Qₐ for amplitude of constituent M₁",
		"Table 10.--Values of Q for argument of constituent M₁",
		"Table 14.--Node factor f for middle of each year",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing table %q", want)
		}
	}
}

// TestRenderTablesPropagatesWriteError checks that a failing writer
// aborts rendering and returns the write error rather than panicking.
func TestRenderTablesPropagatesWriteError(t *testing.T) {
	err := RenderTables(failingWriter{})
	if err == nil {
		t.Fatal("RenderTables: want error from failing writer, got nil")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = &writeError{}

type writeError struct{}

func (*writeError) Error() string { return "simulated write failure" }
