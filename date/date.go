package date

import (
	"fmt"
	"time"
)

// ISOLayout is the layout dates are rendered with in failure messages.
const ISOLayout = "2006-01-02T15:04:05.000"

const CanonicalDate = "2006-01-02"

var parseLayouts = []string{
	CanonicalDate,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	ISOLayout,
	time.RFC3339Nano,
}

// Parse parses s in the first matching layout. Layouts without zone information are
// interpreted in Location().
func Parse(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q in any layout of %v", s, parseLayouts)
}

func MustParse(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("parse %q as date: %v", s, err))
	}
	return t
}

// MustParsePtr is MustParse returning a pointer, handy for APIs where absence matters.
func MustParsePtr(s string) *time.Time {
	t := MustParse(s)
	return &t
}

func Format(t time.Time) string {
	return t.In(Location()).Format(ISOLayout)
}

func SameYear(t1, t2 time.Time) bool {
	return t1.Year() == t2.Year()
}

func SameMonth(t1, t2 time.Time) bool {
	return SameYear(t1, t2) && t1.Month() == t2.Month()
}

func SameDay(t1, t2 time.Time) bool {
	return SameMonth(t1, t2) && t1.Day() == t2.Day()
}
