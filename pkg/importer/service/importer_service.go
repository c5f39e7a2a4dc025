package service

import (
	"context"

	"alqualis/pkg/sheet"
)

type Options struct {
	// Prefix starts every generated producer code: "CDANF" + row 3 -> "CDANF03".
	Prefix string
	// Progress, when set, is called after each row with rows done and total.
	Progress func(done, total int)
}

type RowFailure struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Report summarizes one import run.
type Report struct {
	RunID     string       `json:"run_id"`
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failures  []RowFailure `json:"failures"`
}

// Partial reports whether at least one row failed.
func (r *Report) Partial() bool { return len(r.Failures) > 0 }

type ImporterService interface {
	// Import processes rows strictly in order. A failing row is recorded and
	// skipped; only bad options, a missing name column or a cancelled ctx
	// return an error.
	Import(ctx context.Context, d sheet.Dataset, opts Options) (*Report, error)
}
