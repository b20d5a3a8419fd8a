package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/KumKeeHyun/primesieve/fp/lazy-eval/prime"
	"github.com/KumKeeHyun/primesieve/fp/lazy-eval/report"
)

func TestLine(t *testing.T) {
	tests := []struct {
		res  prime.Result
		want string
	}{
		{
			res:  prime.Result{Prime: 7, Duration: prime.TimingOf(500 * time.Nanosecond)},
			want: "7 is prime: found in 500ns",
		},
		{
			res:  prime.Result{Prime: 13, Duration: prime.NoTiming},
			want: "13 is prime: Error while calculating timing!",
		},
		{
			res:  prime.Result{Prime: 2, Duration: prime.TimingOf(0)},
			want: "2 is prime: found in 0ns",
		},
		{
			res:  prime.Result{Prime: 541, Duration: prime.TimingOf(1500 * time.Millisecond)},
			want: "541 is prime: found in 1500000000ns",
		},
	}
	for _, test := range tests {
		if got := report.Line(test.res); got != test.want {
			t.Errorf("Line(%+v) = %q, want %q", test.res, got, test.want)
		}
	}
}

func TestWriter(t *testing.T) {
	out := &strings.Builder{}
	w := report.NewWriter(out)
	w.WriteHeader()
	w.WriteResult(prime.Result{Prime: 2, Duration: prime.TimingOf(10)})
	w.WriteResult(prime.Result{Prime: 3, Duration: prime.NoTiming})
	if err := w.Err(); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"Initializing prime number sieve...",
		"2 is prime: found in 10ns",
		"3 is prime: Error while calculating timing!",
		"",
	}
	if diff := cmp.Diff(want, strings.Split(out.String(), "\n")); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
	if got := w.Lines(); got != 3 {
		t.Errorf("got %d lines, want 3", got)
	}
}

// failingWriter refuses every write after the first ok ones.
type failingWriter struct {
	ok     int
	writes int
	lines  []string
}

func (fw *failingWriter) Write(p []byte) (int, error) {
	fw.writes++
	if fw.writes > fw.ok {
		return 0, errors.Errorf("write %d refused", fw.writes)
	}
	fw.lines = append(fw.lines, string(p))
	return len(p), nil
}

func TestWriterStopsAfterFirstError(t *testing.T) {
	fw := &failingWriter{ok: 2}
	w := report.NewWriter(fw)
	w.WriteHeader()
	for _, p := range []int{2, 3, 5, 7, 11} {
		w.WriteResult(prime.Result{Prime: p, Duration: prime.NoTiming})
	}

	if fw.writes != 3 {
		t.Errorf("got %d writes, want 3", fw.writes)
	}
	if got := w.Lines(); got != 6 {
		t.Errorf("got %d lines, want 6", got)
	}
	errs := multierr.Errors(w.Err())
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), w.Err())
	}
	if !strings.Contains(errs[0].Error(), "cannot write line 3") {
		t.Errorf("unexpected first error: %v", errs[0])
	}
	if got, want := errs[1].Error(), "3 later lines not written"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	want := []string{
		"Initializing prime number sieve...\n",
		"2 is prime: Error while calculating timing!\n",
	}
	if diff := cmp.Diff(want, fw.lines); diff != "" {
		t.Errorf("unexpected written lines (-want +got):\n%s", diff)
	}
}

func TestWriterLastLineFails(t *testing.T) {
	fw := &failingWriter{ok: 1}
	w := report.NewWriter(fw)
	w.WriteHeader()
	w.WriteResult(prime.Result{Prime: 2, Duration: prime.TimingOf(1)})

	errs := multierr.Errors(w.Err())
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), w.Err())
	}
	if !strings.Contains(errs[0].Error(), "cannot write line 2") {
		t.Errorf("unexpected error: %v", errs[0])
	}
}
