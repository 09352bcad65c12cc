package timezone

import (
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "Asia/Kolkata"

	DateLayout        = "2006-01-02"
	TimeLayout        = "15:04"
	DisplayDateLayout = "January 2, 2006"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today is the calendar date of now in tz, as YYYY-MM-DD.
func Today(now time.Time, tz string) string {
	return now.In(Location(tz)).Format(DateLayout)
}

// DisplayDate renders a YYYY-MM-DD date as "January 2, 2006". Unparseable
// input is returned unchanged.
func DisplayDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(DisplayDateLayout)
}
