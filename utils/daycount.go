package utils

import (
	"fmt"
	"strings"
	"time"
)

// DayCount is a day count convention used to turn two dates into a year fraction.
type DayCount string

const (
	Act360     DayCount = "ACT/360"
	Act365F    DayCount = "ACT/365F"
	ActActISDA DayCount = "ACT/ACT"
	Thirty360E DayCount = "30E/360"
)

// ParseDayCount normalizes a convention name. "30/360" is accepted as 30E/360.
func ParseDayCount(s string) (DayCount, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACT/360":
		return Act360, nil
	case "ACT/365F", "ACT/365":
		return Act365F, nil
	case "ACT/ACT", "ACT/ACT ISDA":
		return ActActISDA, nil
	case "30E/360", "30/360":
		return Thirty360E, nil
	}
	return "", fmt.Errorf("ParseDayCount: unsupported day count %q", s)
}

// YearFraction computes the year fraction between two dates using the specified day count convention.
// Unknown conventions fall back to ACT/365F.
func YearFraction(start, end time.Time, convention DayCount) float64 {
	switch convention {
	case Act360:
		return Days(start, end) / 360.0
	case ActActISDA:
		return actActISDA(start, end)
	case Thirty360E:
		// 30E/360 ISDA (Eurobond basis)
		// D1 and D2 are capped at 30
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return Days(start, end) / 365.0
	}
}

// actActISDA splits the period at year boundaries and divides the days in
// each calendar year by that year's length.
func actActISDA(start, end time.Time) float64 {
	if end.Before(start) {
		return -actActISDA(end, start)
	}
	var frac float64
	cur := start
	for cur.Year() < end.Year() {
		next := time.Date(cur.Year()+1, time.January, 1, 0, 0, 0, 0, cur.Location())
		frac += Days(cur, next) / daysInYear(cur.Year())
		cur = next
	}
	return frac + Days(cur, end)/daysInYear(cur.Year())
}

func daysInYear(year int) float64 {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
