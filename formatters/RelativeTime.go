// Package formatters holds the presentation helpers available on decorated
// records. They are pure functions of the value, the request of the
// presentation and the formatting options, and they never fail outward:
// whatever goes wrong while computing a representation, the caller receives
// the literal fallback text instead of an error.
package formatters

import (
	"fmt"
	"strconv"
	"time"

	"github.com/stewardkit/steward"
)

// Fallback is rendered whenever a representation cannot be computed.
const Fallback = `N/A`

// Clock can be implemented by the view context of a request to pin the
// reference time the relative formatting measures against.
type Clock interface {
	Now() time.Time
}

// RelativeTimeOptions tune the rendering of RelativeTime.
type RelativeTimeOptions struct {
	// Now overrides the reference time. When zero, the request's view context
	// is consulted for a Clock, and the wall clock is the last resort.
	Now time.Time
	// Suppress1 drops the literal leading "1" from single unit quantities,
	// rendering "minute ago" instead of "1 minute ago".
	Suppress1 bool
}

// RelativeTime renders the distance between t and the reference time in the
// largest fitting unit: "5 minutes ago" for past values, "in 5 minutes" for
// future ones. A zero t or any failure during rendering yields Fallback.
func RelativeTime(t time.Time, r steward.Request, opts RelativeTimeOptions) (out string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			out = Fallback
		}
	}()

	if t.IsZero() {
		return Fallback
	}

	now := referenceTime(r, opts)
	distance := now.Sub(t)

	if distance >= 0 {
		return fmt.Sprintf(`%s ago`, quantity(distance, opts))
	}
	return fmt.Sprintf(`in %s`, quantity(-distance, opts))
}

func referenceTime(r steward.Request, opts RelativeTimeOptions) time.Time {
	if !opts.Now.IsZero() {
		return opts.Now
	}
	if clock, ok := r.View.(Clock); ok {
		return clock.Now()
	}
	return time.Now()
}

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

func quantity(d time.Duration, opts RelativeTimeOptions) string {
	count, unit := inLargestUnit(d)

	if count == 1 {
		if opts.Suppress1 {
			return unit
		}
		return `1 ` + unit
	}

	return strconv.Itoa(count) + ` ` + unit + `s`
}

func inLargestUnit(d time.Duration) (int, string) {
	switch {
	case d < time.Minute:
		return int(d / time.Second), `second`
	case d < time.Hour:
		return int(d / time.Minute), `minute`
	case d < day:
		return int(d / time.Hour), `hour`
	case d < month:
		return int(d / day), `day`
	case d < year:
		return int(d / month), `month`
	default:
		return int(d / year), `year`
	}
}
