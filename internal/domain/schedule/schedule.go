package schedule

import (
	"fmt"
	"time"
)

// Config defines the daily booking grid and the day-level business rules.
// The shop rules (closed Sundays, morning-only Saturdays, the same-day
// cutoff) are configuration rather than constants so they can be tuned
// without touching the availability logic.
type Config struct {
	MorningStart   string // first morning slot, inclusive ("08:00")
	MorningEnd     string // last morning slot, inclusive ("11:30")
	AfternoonStart string // first afternoon slot, inclusive ("14:00")
	AfternoonEnd   string // last afternoon slot, inclusive ("17:30")
	StepMinutes    int

	// DayCutoff closes the current day for new selection once the wall
	// clock reaches it ("18:30").
	DayCutoff string

	SundayClosed        bool
	SaturdayMorningOnly bool
}

// DefaultConfig is the baseline grid: 8 morning slots, 8 afternoon slots,
// 30-minute steps, Sundays closed, Saturday mornings only.
func DefaultConfig() Config {
	return Config{
		MorningStart:        "08:00",
		MorningEnd:          "11:30",
		AfternoonStart:      "14:00",
		AfternoonEnd:        "17:30",
		StepMinutes:         30,
		DayCutoff:           "18:30",
		SundayClosed:        true,
		SaturdayMorningOnly: true,
	}
}

// Validate rejects a grid that cannot produce slots: unparseable time
// values, a non-positive step, or a block whose end precedes its start.
// Called at startup so a typo'd env override fails loudly instead of
// silently closing the shop.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"morning start", c.MorningStart},
		{"morning end", c.MorningEnd},
		{"afternoon start", c.AfternoonStart},
		{"afternoon end", c.AfternoonEnd},
		{"day cutoff", c.DayCutoff},
	}
	for _, f := range fields {
		if _, err := parseMinutes(f.value); err != nil {
			return fmt.Errorf("invalid %s %q: want HH:mm", f.name, f.value)
		}
	}

	if c.StepMinutes <= 0 {
		return fmt.Errorf("invalid step minutes %d: must be positive", c.StepMinutes)
	}
	if mustMinutes(c.MorningEnd) < mustMinutes(c.MorningStart) {
		return fmt.Errorf("morning block ends (%s) before it starts (%s)", c.MorningEnd, c.MorningStart)
	}
	if mustMinutes(c.AfternoonEnd) < mustMinutes(c.AfternoonStart) {
		return fmt.Errorf("afternoon block ends (%s) before it starts (%s)", c.AfternoonEnd, c.AfternoonStart)
	}
	return nil
}

// MorningTimes returns the ordered morning block.
func (c Config) MorningTimes() []string {
	return c.blockTimes(c.MorningStart, c.MorningEnd)
}

// AfternoonTimes returns the ordered afternoon block.
func (c Config) AfternoonTimes() []string {
	return c.blockTimes(c.AfternoonStart, c.AfternoonEnd)
}

// GridTimes returns every slot the shop offers on the given date's weekday,
// ignoring occupancy and the clock. Saturdays drop the afternoon block
// entirely; closed days return nil.
func (c Config) GridTimes(date time.Time) []string {
	switch date.Weekday() {
	case time.Sunday:
		if c.SundayClosed {
			return nil
		}
	case time.Saturday:
		if c.SaturdayMorningOnly {
			return c.MorningTimes()
		}
	}
	return append(c.MorningTimes(), c.AfternoonTimes()...)
}

// DayEligible reports whether the date can be offered for new bookings at
// all: past dates and closed Sundays are out, and the current day closes
// once now passes the cutoff.
func (c Config) DayEligible(date, now time.Time) bool {
	today := dayOf(now)
	day := dayOf(date)

	if day.Before(today) {
		return false
	}
	if c.SundayClosed && date.Weekday() == time.Sunday {
		return false
	}
	if day.Equal(today) && minutesOfDay(now) >= mustMinutes(c.DayCutoff) {
		return false
	}
	return true
}

// CandidateTimes returns the ordered list of times still selectable on the
// given date, before any occupancy filtering. For the current day, slots at
// or before now are dropped. An empty slice means the day offers nothing.
func (c Config) CandidateTimes(date, now time.Time) []string {
	if !c.DayEligible(date, now) {
		return []string{}
	}

	grid := c.GridTimes(date)
	if !dayOf(date).Equal(dayOf(now)) {
		return grid
	}

	nowMin := minutesOfDay(now)
	out := make([]string, 0, len(grid))
	for _, t := range grid {
		if mustMinutes(t) > nowMin {
			out = append(out, t)
		}
	}
	return out
}

// SlotInstant resolves a date plus a grid time value ("15:04") to the
// concrete instant the appointment occurs, in the date's location.
func SlotInstant(date time.Time, hm string) (time.Time, error) {
	m, err := parseMinutes(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		m/60, m%60, 0, 0,
		date.Location(),
	), nil
}

func (c Config) blockTimes(start, end string) []string {
	step := c.StepMinutes
	if step <= 0 {
		step = 30
	}

	from := mustMinutes(start)
	to := mustMinutes(end)

	var times []string
	for m := from; m <= to; m += step {
		times = append(times, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return times
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func parseMinutes(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func mustMinutes(hm string) int {
	m, err := parseMinutes(hm)
	if err != nil {
		return 0
	}
	return m
}
