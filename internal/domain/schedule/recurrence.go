package schedule

import (
	"time"

	"github.com/finance-app/backend/internal/domain/entity"
)

// NextDue computes the next date a recurring template should fire. A
// template that has never been processed is due at its start date;
// otherwise one period is added to the last processed date. Unrecognized
// frequencies fall back to monthly.
func NextDue(template *entity.RecurringTemplate) time.Time {
	if template.LastProcessedAt == nil {
		return DateOnly(template.StartDate)
	}

	last := DateOnly(*template.LastProcessedAt)

	switch template.Frequency {
	case entity.FrequencyDaily:
		return last.AddDate(0, 0, 1)
	case entity.FrequencyWeekly:
		return last.AddDate(0, 0, 7)
	case entity.FrequencyMonthly:
		return AddMonths(last, 1)
	case entity.FrequencyYearly:
		return last.AddDate(1, 0, 0)
	default:
		return AddMonths(last, 1)
	}
}

// Tick advances a template by at most one period. When the template is due
// on or before today it returns the materialized entry and moves
// LastProcessedAt to the due date; otherwise it returns nil. A template that
// is months behind converges through repeated daily ticks rather than being
// back-filled in one run.
//
// Tick mutates only the in-memory template; persisting both the entry and
// the advanced marker is the caller's job.
func Tick(template *entity.RecurringTemplate, today time.Time) *entity.Entry {
	today = DateOnly(today)

	if !template.Active {
		return nil
	}
	if template.EndDate != nil && DateOnly(*template.EndDate).Before(today) {
		return nil
	}

	nextDue := NextDue(template)
	if nextDue.After(today) {
		return nil
	}

	entry := template.Materialize(nextDue)
	template.LastProcessedAt = &nextDue

	return entry
}
