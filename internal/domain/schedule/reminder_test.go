package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

func invoice(dueDay int) *entity.Invoice {
	return entity.NewInvoice(uuid.New(), "Internet", decimal.RequireFromString("120"), dueDay)
}

func TestDueDateThisMonth(t *testing.T) {
	tests := []struct {
		name   string
		dueDay int
		today  time.Time
		want   time.Time
	}{
		{"plain day", 15, date(2025, time.March, 1), date(2025, time.March, 15)},
		{"day 31 in april clamps to 30", 31, date(2025, time.April, 2), date(2025, time.April, 30)},
		{"day 31 in february clamps to 28", 31, date(2025, time.February, 10), date(2025, time.February, 28)},
		{"day 31 in leap february clamps to 29", 31, date(2024, time.February, 10), date(2024, time.February, 29)},
		{"day 29 in non-leap february", 29, date(2025, time.February, 1), date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DueDateThisMonth(invoice(tt.dueDay), tt.today)
			if !got.Equal(tt.want) {
				t.Errorf("DueDateThisMonth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysUntilDue(t *testing.T) {
	inv := invoice(15)

	tests := []struct {
		today time.Time
		want  int
	}{
		{date(2025, time.March, 11), 4},
		{date(2025, time.March, 15), 0},
		{date(2025, time.March, 20), -5},
	}

	for _, tt := range tests {
		if got := DaysUntilDue(inv, tt.today); got != tt.want {
			t.Errorf("DaysUntilDue(today=%v) = %d, want %d", tt.today, got, tt.want)
		}
	}
}

func TestReminderOwed(t *testing.T) {
	t.Run("upcoming within window", func(t *testing.T) {
		if !ReminderOwed(invoice(15), date(2025, time.March, 11)) {
			t.Error("4 days before due: reminder should be owed")
		}
	})

	t.Run("outside window", func(t *testing.T) {
		if ReminderOwed(invoice(15), date(2025, time.March, 1)) {
			t.Error("14 days before due: reminder should not be owed")
		}
	})

	t.Run("overdue has no upper bound", func(t *testing.T) {
		if !ReminderOwed(invoice(15), date(2025, time.March, 20)) {
			t.Error("5 days overdue: reminder should be owed")
		}
		if !ReminderOwed(invoice(1), date(2025, time.March, 31)) {
			t.Error("30 days overdue: reminder should still be owed")
		}
	})

	t.Run("paid this month suppresses reminders", func(t *testing.T) {
		inv := invoice(15)
		paid := date(2025, time.March, 14)
		inv.LastPaymentAt = &paid

		if ReminderOwed(inv, date(2025, time.March, 14)) {
			t.Error("reminder owed right after payment")
		}
		if ReminderOwed(inv, date(2025, time.March, 28)) {
			t.Error("reminder owed later in the paid month")
		}

		// The calendar rolling into the next month re-arms the reminder.
		if !ReminderOwed(inv, date(2025, time.April, 12)) {
			t.Error("reminder not owed after the month rolled over")
		}
	})
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		days int
		want ReminderSeverity
	}{
		{-10, SeverityOverdue},
		{-1, SeverityOverdue},
		{0, SeverityDueToday},
		{1, SeverityUpcoming},
		{5, SeverityUpcoming},
	}

	for _, tt := range tests {
		if got := Severity(tt.days); got != tt.want {
			t.Errorf("Severity(%d) = %s, want %s", tt.days, got, tt.want)
		}
	}
}
