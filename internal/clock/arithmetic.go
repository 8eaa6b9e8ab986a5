package clock

import (
	"fmt"
	"time"
)

// Epoch is the zero instant every component is measured from.
var Epoch = time.Unix(0, 0).UTC()

// At returns the instant c minutes after Epoch.
func (c Component) At() time.Time {
	return Epoch.Add(time.Duration(c.Minutes()) * time.Minute)
}

// Sum is the result of adding two components.
type Sum struct {
	Time time.Time // instant after Epoch
}

// Add adds b to a.
func Add(a, b Component) Sum {
	return Sum{Time: a.At().Add(b.At().Sub(Epoch))}
}

// Days returns how many days past the epoch day the sum lands on.
// It is derived from the calendar day, which starts at 1 on the epoch.
func (s Sum) Days() int {
	return s.Time.Day() - 1
}

// Clock returns the time of day on a 12-hour clock, e.g. "05:30 PM".
func (s Sum) Clock() string {
	return s.Time.Format("03:04 PM")
}

// String renders the sum with a day suffix when it rolls past midnight.
func (s Sum) String() string {
	out := s.Clock()
	if d := s.Days(); d >= 1 {
		out += fmt.Sprintf(", %d %s in the future", d, plural(d, "day"))
	}
	return out
}

// Span is the result of subtracting two components.
type Span struct {
	Time time.Time // Epoch plus the signed difference
}

// Subtract returns second minus first. The second operand leads, so
// "12pm - 3pm" spans three hours. A negative difference wraps around the
// clock face instead of being rejected.
func Subtract(first, second Component) Span {
	return Span{Time: Epoch.Add(second.At().Sub(first.At()))}
}

// Hours returns the hour part of the span.
func (s Span) Hours() int {
	return s.Time.Hour()
}

// Minutes returns the minute part of the span.
func (s Span) Minutes() int {
	return s.Time.Minute()
}

func (s Span) String() string {
	h, m := s.Hours(), s.Minutes()
	return fmt.Sprintf("%d %s and %d %s", h, plural(h, "hour"), m, plural(m, "minute"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
