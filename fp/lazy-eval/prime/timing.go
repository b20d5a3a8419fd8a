package prime

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock. Readings carry the monotonic clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timing is a duration in nanoseconds that may be absent.
type Timing struct {
	ns    int64
	valid bool
}

// NoTiming is the absent Timing.
var NoTiming = Timing{}

// TimingOf returns a present Timing holding d.
func TimingOf(d time.Duration) Timing {
	return Timing{ns: d.Nanoseconds(), valid: true}
}

// Nanoseconds returns the duration and whether it is present.
func (t Timing) Nanoseconds() (int64, bool) {
	return t.ns, t.valid
}

func (t Timing) String() string {
	if !t.valid {
		return "n/a"
	}
	return fmt.Sprintf("%dns", t.ns)
}

func elapsed(clock Clock, start time.Time) (time.Duration, error) {
	end := clock.Now()
	d := end.Sub(start)
	if d < 0 {
		return 0, errors.Errorf("clock went backwards: end %v is %v before start %v", end, -d, start)
	}
	return d, nil
}
