// Package report renders prime results as lines of text.
package report

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/KumKeeHyun/primesieve/fp/lazy-eval/prime"
)

const (
	// Header is printed once before any result.
	Header = "Initializing prime number sieve..."
	// TimingError replaces the duration when it could not be measured.
	TimingError = "Error while calculating timing!"
)

// Line renders a result without a trailing newline.
func Line(res prime.Result) string {
	if _, ok := res.Duration.Nanoseconds(); !ok {
		return fmt.Sprintf("%d is prime: %s", res.Prime, TimingError)
	}
	return fmt.Sprintf("%d is prime: found in %v", res.Prime, res.Duration)
}

// Writer writes lines to an underlying writer. After the first failed write
// it stops writing and only counts the lines it drops.
type Writer struct {
	w       io.Writer
	lines   int
	err     error
	dropped int
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) writeLine(s string) {
	w.lines++
	if w.err != nil {
		w.dropped++
		return
	}
	if _, err := io.WriteString(w.w, s+"\n"); err != nil {
		w.err = errors.Wrapf(err, "cannot write line %d", w.lines)
	}
}

// WriteHeader writes the Header line.
func (w *Writer) WriteHeader() {
	w.writeLine(Header)
}

// WriteResult writes the line of res.
func (w *Writer) WriteResult(res prime.Result) {
	w.writeLine(Line(res))
}

// Lines returns the number of lines attempted so far.
func (w *Writer) Lines() int {
	return w.lines
}

// Err returns the first write error combined with a count of the lines
// dropped after it, or nil.
func (w *Writer) Err() error {
	if w.dropped == 0 {
		return w.err
	}
	return multierr.Append(w.err, errors.Errorf("%d later lines not written", w.dropped))
}
