package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

func monthlyTemplate(startDate time.Time) *entity.RecurringTemplate {
	return entity.NewRecurringTemplate(
		uuid.New(),
		"Aluguel",
		decimal.RequireFromString("1500"),
		entity.EntryKindExpense,
		entity.FrequencyMonthly,
		startDate,
		nil,
	)
}

func TestNextDue_NeverProcessed(t *testing.T) {
	template := monthlyTemplate(date(2025, time.January, 5))

	if got := NextDue(template); !got.Equal(date(2025, time.January, 5)) {
		t.Errorf("NextDue = %v, want start date", got)
	}
}

func TestNextDue_PerFrequency(t *testing.T) {
	last := date(2025, time.January, 31)

	tests := []struct {
		frequency entity.Frequency
		want      time.Time
	}{
		{entity.FrequencyDaily, date(2025, time.February, 1)},
		{entity.FrequencyWeekly, date(2025, time.February, 7)},
		{entity.FrequencyMonthly, date(2025, time.February, 28)},
		{entity.FrequencyYearly, date(2026, time.January, 31)},
		// Unrecognized frequencies fall back to monthly.
		{entity.Frequency("fortnightly"), date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			template := monthlyTemplate(date(2025, time.January, 1))
			template.Frequency = tt.frequency
			template.LastProcessedAt = &last

			if got := NextDue(template); !got.Equal(tt.want) {
				t.Errorf("NextDue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTick_MaterializesOnceOnStartDate(t *testing.T) {
	template := monthlyTemplate(date(2025, time.January, 5))
	today := date(2025, time.January, 5)

	entry := Tick(template, today)
	if entry == nil {
		t.Fatal("expected an entry on the start date")
	}
	if !entry.Date.Equal(date(2025, time.January, 5)) {
		t.Errorf("entry date = %v, want 2025-01-05", entry.Date)
	}
	if entry.Description != "Aluguel (Recorrente)" {
		t.Errorf("description = %q, want suffix appended", entry.Description)
	}
	if template.LastProcessedAt == nil || !template.LastProcessedAt.Equal(date(2025, time.January, 5)) {
		t.Errorf("lastProcessedAt = %v, want 2025-01-05", template.LastProcessedAt)
	}

	// Same-day second tick does nothing.
	if again := Tick(template, today); again != nil {
		t.Error("expected no entry on a second tick the same day")
	}
}

func TestTick_OnePeriodPerInvocation(t *testing.T) {
	// A template three months behind is not back-filled in one run; each
	// tick advances exactly one period.
	template := monthlyTemplate(date(2025, time.January, 10))
	today := date(2025, time.April, 12)

	var materialized []time.Time
	for i := 0; i < 10; i++ {
		entry := Tick(template, today)
		if entry == nil {
			break
		}
		materialized = append(materialized, entry.Date)
	}

	want := []time.Time{
		date(2025, time.January, 10),
		date(2025, time.February, 10),
		date(2025, time.March, 10),
		date(2025, time.April, 10),
	}
	if len(materialized) != len(want) {
		t.Fatalf("materialized %d entries, want %d", len(materialized), len(want))
	}
	for i := range want {
		if !materialized[i].Equal(want[i]) {
			t.Errorf("entry %d dated %v, want %v", i, materialized[i], want[i])
		}
	}
}

func TestTick_SkipsInactiveAndExpired(t *testing.T) {
	t.Run("inactive", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.January, 5))
		template.Active = false

		if Tick(template, date(2025, time.February, 1)) != nil {
			t.Error("inactive template must not materialize")
		}
	})

	t.Run("past end date", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.January, 5))
		end := date(2025, time.March, 1)
		template.EndDate = &end

		if Tick(template, date(2025, time.April, 1)) != nil {
			t.Error("expired template must not materialize")
		}
	})

	t.Run("not yet due", func(t *testing.T) {
		template := monthlyTemplate(date(2025, time.June, 1))

		if Tick(template, date(2025, time.May, 20)) != nil {
			t.Error("template before its start date must not materialize")
		}
	})
}

func TestTick_DailyCadence(t *testing.T) {
	template := monthlyTemplate(date(2025, time.January, 1))
	template.Frequency = entity.FrequencyDaily

	// Advancing today one day at a time yields exactly one entry per day.
	for day := 1; day <= 5; day++ {
		today := date(2025, time.January, day)
		if Tick(template, today) == nil {
			t.Fatalf("day %d: expected an entry", day)
		}
		if Tick(template, today) != nil {
			t.Fatalf("day %d: expected at most one entry per day", day)
		}
	}
}

func TestTick_IncomeMarkedSettled(t *testing.T) {
	template := monthlyTemplate(date(2025, time.January, 5))
	template.Kind = entity.EntryKindIncome

	entry := Tick(template, date(2025, time.January, 5))
	if entry == nil {
		t.Fatal("expected an entry")
	}
	if entry.InstallmentsPaid != 1 {
		t.Errorf("income installmentsPaid = %d, want 1", entry.InstallmentsPaid)
	}

	expense := monthlyTemplate(date(2025, time.January, 5))
	entry = Tick(expense, date(2025, time.January, 5))
	if entry == nil {
		t.Fatal("expected an entry")
	}
	if entry.InstallmentsPaid != 0 {
		t.Errorf("expense installmentsPaid = %d, want 0", entry.InstallmentsPaid)
	}
}

func TestTick_CreditCardTemplateUsesCreditMethod(t *testing.T) {
	template := monthlyTemplate(date(2025, time.January, 5))
	cardID := uuid.New()
	template.CreditCardID = &cardID

	entry := Tick(template, date(2025, time.January, 5))
	if entry == nil {
		t.Fatal("expected an entry")
	}
	if entry.PaymentMethod != entity.PaymentMethodCredit {
		t.Errorf("payment method = %s, want credit", entry.PaymentMethod)
	}
	if entry.CreditCardID == nil || *entry.CreditCardID != cardID {
		t.Error("credit card reference not copied to entry")
	}
}
