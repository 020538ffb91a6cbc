// Package schedule implements the calendar engine shared by installment
// projection, recurring-template processing and invoice due-date reminders:
// project a recurring or partial obligation onto the calendar and decide
// what is due now.
package schedule

import "time"

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths adds n calendar months to t, clamping the day-of-month to the
// target month's last day when the source day does not exist there
// (Jan 31 + 1 month = Feb 28/29). This differs from time.AddDate, which
// normalizes overflow into the following month.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + n
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 {
		// Go integer division truncates toward zero; shift back one year.
		targetYear = year + (totalMonths-11)/12
		targetMonth = time.Month((totalMonths%12+12)%12 + 1)
	}

	if last := DaysInMonth(targetYear, targetMonth); day > last {
		day = last
	}

	return time.Date(targetYear, targetMonth, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
