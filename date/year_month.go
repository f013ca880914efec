package date

import (
	"fmt"
	"time"
)

type YearMonth struct {
	year  int
	month time.Month
}

func YearMonthOf(t time.Time) YearMonth {
	t = t.In(Location())
	return YearMonth{year: t.Year(), month: t.Month()}
}

func (ym YearMonth) Year() int {
	return ym.year
}

func (ym YearMonth) Month() time.Month {
	return ym.month
}

func (ym YearMonth) Previous() YearMonth {
	return ym.AddMonths(-1)
}

func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.year, ym.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{year: t.Year(), month: t.Month()}
}

// Compare returns -1, 0 or 1 as ym is before, equal to or after oym.
func (ym YearMonth) Compare(oym YearMonth) int {
	switch {
	case ym.year < oym.year:
		return -1
	case ym.year > oym.year:
		return 1
	case ym.month < oym.month:
		return -1
	case ym.month > oym.month:
		return 1
	default:
		return 0
	}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%d-%02d", ym.year, ym.month)
}
