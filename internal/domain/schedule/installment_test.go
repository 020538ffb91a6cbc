package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func creditEntry(amount string, count, starting int, purchaseDate time.Time) *entity.Entry {
	return entity.NewEntry(
		uuid.New(),
		entity.EntryKindExpense,
		"Notebook",
		decimal.RequireFromString(amount),
		purchaseDate,
		entity.PaymentMethodCredit,
		count,
		starting,
	)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"plain month", date(2025, time.March, 10), 1, date(2025, time.April, 10)},
		{"across year end", date(2025, time.November, 15), 3, date(2026, time.February, 15)},
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"jan 31 clamps to feb 29 on leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"may 31 clamps to jun 30", date(2025, time.May, 31), 1, date(2025, time.June, 30)},
		{"zero months", date(2025, time.July, 4), 0, date(2025, time.July, 4)},
		{"many months keep day", date(2025, time.January, 10), 11, date(2025, time.December, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.from, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

func TestProject_TwelveInstallments(t *testing.T) {
	entry := creditEntry("1200", 12, 1, date(2025, time.January, 10))

	occurrences := Project(entry, nil)

	if len(occurrences) != 12 {
		t.Fatalf("expected 12 occurrences, got %d", len(occurrences))
	}

	hundred := decimal.RequireFromString("100.00")
	for i, occ := range occurrences {
		wantDate := date(2025, time.Month(i+1), 10)
		if !occ.Date.Equal(wantDate) {
			t.Errorf("occurrence %d: date = %v, want %v", i, occ.Date, wantDate)
		}
		if !occ.Amount.Equal(hundred) {
			t.Errorf("occurrence %d: amount = %s, want 100.00", i, occ.Amount)
		}
	}

	if occurrences[0].Label != "1/12" {
		t.Errorf("first label = %q, want 1/12", occurrences[0].Label)
	}
	if occurrences[11].Label != "12/12" {
		t.Errorf("last label = %q, want 12/12", occurrences[11].Label)
	}
}

func TestProject_SumApproximatesTotal(t *testing.T) {
	// Amounts that do not divide evenly must still sum back to the total
	// within rounding.
	tests := []struct {
		amount string
		count  int
	}{
		{"1200", 12},
		{"100", 3},
		{"999.99", 7},
		{"55.55", 4},
	}

	for _, tt := range tests {
		entry := creditEntry(tt.amount, tt.count, 1, date(2025, time.March, 5))
		occurrences := Project(entry, nil)

		sum := decimal.Zero
		for _, occ := range occurrences {
			sum = sum.Add(occ.Amount)
		}

		total := decimal.RequireFromString(tt.amount)
		tolerance := decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(tt.count)))
		if sum.Sub(total).Abs().GreaterThan(tolerance) {
			t.Errorf("amount=%s count=%d: occurrences sum to %s, want ~%s",
				tt.amount, tt.count, sum, total)
		}
	}
}

func TestProject_AtomicEntryPassesThrough(t *testing.T) {
	entry := entity.NewEntry(
		uuid.New(),
		entity.EntryKindExpense,
		"Groceries",
		decimal.RequireFromString("250.40"),
		date(2025, time.June, 2),
		entity.PaymentMethodDebit,
		1,
		1,
	)

	occurrences := Project(entry, nil)

	if len(occurrences) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occurrences))
	}
	if !occurrences[0].Amount.Equal(entry.Amount) {
		t.Errorf("amount = %s, want %s", occurrences[0].Amount, entry.Amount)
	}
	if occurrences[0].Label != "" {
		t.Errorf("label = %q, want empty for atomic entry", occurrences[0].Label)
	}
}

func TestProject_DebitInstallmentsNotSplit(t *testing.T) {
	// Installment projection only applies to credit purchases.
	entry := entity.NewEntry(
		uuid.New(),
		entity.EntryKindExpense,
		"Rent split",
		decimal.RequireFromString("900"),
		date(2025, time.June, 2),
		entity.PaymentMethodDebit,
		3,
		1,
	)

	occurrences := Project(entry, nil)
	if len(occurrences) != 1 {
		t.Fatalf("expected 1 occurrence for debit entry, got %d", len(occurrences))
	}
}

func TestProject_WindowFiltering(t *testing.T) {
	entry := creditEntry("1200", 12, 1, date(2025, time.January, 10))

	window := &Window{Start: date(2025, time.March, 1), End: date(2025, time.May, 31)}
	occurrences := Project(entry, window)

	if len(occurrences) != 3 {
		t.Fatalf("expected 3 occurrences in window, got %d", len(occurrences))
	}
	if occurrences[0].Label != "3/12" || occurrences[2].Label != "5/12" {
		t.Errorf("labels = %q..%q, want 3/12..5/12", occurrences[0].Label, occurrences[2].Label)
	}
}

func TestProject_StartingInstallmentOffset(t *testing.T) {
	// Purchase stored from its 4th installment onward: 9 occurrences remain,
	// each still one twelfth of the total.
	entry := creditEntry("1200", 12, 4, date(2025, time.January, 10))

	occurrences := Project(entry, nil)

	if len(occurrences) != 9 {
		t.Fatalf("expected 9 occurrences, got %d", len(occurrences))
	}
	if occurrences[0].Label != "4/12" {
		t.Errorf("first label = %q, want 4/12", occurrences[0].Label)
	}
	if !occurrences[0].Amount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("amount = %s, want 100.00 (total-count division)", occurrences[0].Amount)
	}
}

func TestProject_EndOfMonthPurchaseClamps(t *testing.T) {
	entry := creditEntry("300", 3, 1, date(2025, time.January, 31))

	occurrences := Project(entry, nil)

	wantDates := []time.Time{
		date(2025, time.January, 31),
		date(2025, time.February, 28),
		date(2025, time.March, 31),
	}
	for i, want := range wantDates {
		if !occurrences[i].Date.Equal(want) {
			t.Errorf("occurrence %d: date = %v, want %v", i, occurrences[i].Date, want)
		}
	}
}

func TestInstallmentForMonth(t *testing.T) {
	entry := creditEntry("1200", 12, 1, date(2025, time.January, 10))

	tests := []struct {
		name  string
		year  int
		month time.Month
		want  string
	}{
		{"first month", 2025, time.January, "100.00"},
		{"mid range", 2025, time.June, "100.00"},
		{"last month", 2025, time.December, "100.00"},
		{"before purchase", 2024, time.December, "0"},
		{"after last installment", 2026, time.January, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallmentForMonth(entry, tt.year, tt.month)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("InstallmentForMonth(%d, %v) = %s, want %s", tt.year, tt.month, got, tt.want)
			}
		})
	}
}
