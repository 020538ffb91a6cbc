package schedule

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// ReminderWindowDays is how many days before the due date reminders start.
const ReminderWindowDays = 5

// ReminderSeverity classifies how urgent an owed invoice is. It only
// affects presentation, never whether a reminder is sent.
type ReminderSeverity string

const (
	SeverityOverdue  ReminderSeverity = "overdue"
	SeverityDueToday ReminderSeverity = "dueToday"
	SeverityUpcoming ReminderSeverity = "upcoming"
)

// DueDateThisMonth returns the invoice's due date in the month of the given
// reference day, clamping the configured due day to the month's last day
// (day 31 in February becomes the 28th or 29th).
func DueDateThisMonth(invoice *entity.Invoice, today time.Time) time.Time {
	day := invoice.DueDay
	if last := DaysInMonth(today.Year(), today.Month()); day > last {
		day = last
	}
	return time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())
}

// DaysUntilDue returns the number of whole days until this month's due
// date. Negative values mean the invoice is overdue.
func DaysUntilDue(invoice *entity.Invoice, today time.Time) int {
	due := DueDateThisMonth(invoice, today)
	return int(due.Sub(DateOnly(today)).Hours() / 24)
}

// ReminderOwed reports whether a reminder should go out: the invoice is
// unpaid this month and its due date is at most ReminderWindowDays away or
// already past. Overdue invoices keep generating reminders every run until
// they are paid.
func ReminderOwed(invoice *entity.Invoice, today time.Time) bool {
	if invoice.PaidInMonth(today) {
		return false
	}
	return DaysUntilDue(invoice, today) <= ReminderWindowDays
}

// Severity classifies an owed invoice by its distance to the due date.
func Severity(daysUntilDue int) ReminderSeverity {
	switch {
	case daysUntilDue < 0:
		return SeverityOverdue
	case daysUntilDue == 0:
		return SeverityDueToday
	default:
		return SeverityUpcoming
	}
}
