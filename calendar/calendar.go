package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/meenmo/finlib/utils"
)

// Roll is a business-day adjustment convention for a payment date.
type Roll string

const (
	Unadjusted        Roll = "UNADJUSTED"
	Following         Roll = "FOLLOWING"
	ModifiedFollowing Roll = "MODIFIED_FOLLOWING"
	Preceding         Roll = "PRECEDING"
)

// ParseRoll accepts the convention names case-insensitively, plus "F", "MF" and "P".
func ParseRoll(s string) (Roll, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "UNADJUSTED", "NONE":
		return Unadjusted, nil
	case "FOLLOWING", "F":
		return Following, nil
	case "MODIFIED_FOLLOWING", "MODIFIED-FOLLOWING", "MF":
		return ModifiedFollowing, nil
	case "PRECEDING", "P":
		return Preceding, nil
	}
	return "", fmt.Errorf("ParseRoll: unsupported roll convention %q", s)
}

// Calendar is a set of holidays on top of Saturday/Sunday weekends.
type Calendar struct {
	holidays map[string]struct{}
}

// New builds a calendar from YYYY-MM-DD holiday dates.
func New(holidays ...string) (Calendar, error) {
	c := Calendar{holidays: make(map[string]struct{}, len(holidays))}
	for _, h := range holidays {
		d, err := utils.ParseDate(strings.TrimSpace(h))
		if err != nil {
			return Calendar{}, fmt.Errorf("calendar: holiday %q: %w", h, err)
		}
		c.holidays[d.Format(utils.DateLayout)] = struct{}{}
	}
	return c, nil
}

// IsBusinessDay checks weekends and the holiday set.
func (c Calendar) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	_, holiday := c.holidays[t.Format(utils.DateLayout)]
	return !holiday
}

// Adjust moves t to a business day according to roll.
func (c Calendar) Adjust(t time.Time, roll Roll) time.Time {
	switch roll {
	case Following:
		return c.step(t, 1)
	case Preceding:
		return c.step(t, -1)
	case ModifiedFollowing:
		adj := c.step(t, 1)
		if adj.Month() != t.Month() {
			return c.step(t, -1)
		}
		return adj
	default:
		return t
	}
}

func (c Calendar) step(t time.Time, dir int) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, dir)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func (c Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}
