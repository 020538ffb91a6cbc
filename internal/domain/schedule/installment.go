package schedule

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
)

// Occurrence is one projected slice of an entry: either the entry itself
// (atomic entries) or a virtual monthly installment.
type Occurrence struct {
	Entry  *entity.Entry
	Date   time.Time
	Amount decimal.Decimal
	Label  string // "k/n" for installments, empty for atomic entries
}

// Window bounds a projection to [Start, End] inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the window, comparing dates only.
func (w Window) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(DateOnly(w.Start)) && !d.After(DateOnly(w.End))
}

// Project expands an entry into its calendar occurrences. Atomic entries
// (single installment, or not paid on credit) yield one occurrence at the
// stored date with the full amount. Multi-installment credit entries yield
// one occurrence per remaining installment, dated k-1 months after the
// purchase and valued at amount divided by the total installment count.
// A nil window means unbounded.
//
// The projection is read-only and recomputed per query; it never mutates
// the entry.
func Project(entry *entity.Entry, window *Window) []Occurrence {
	if entry.InstallmentCount <= 1 || entry.PaymentMethod != entity.PaymentMethodCredit {
		occ := Occurrence{
			Entry:  entry,
			Date:   entry.Date,
			Amount: entry.Amount,
		}
		if window != nil && !window.Contains(occ.Date) {
			return nil
		}
		return []Occurrence{occ}
	}

	remaining := entry.InstallmentCount - entry.StartingInstallment + 1
	if remaining < 1 {
		return nil
	}

	// Divide by the total count, not the remaining count, so that partially
	// paid purchases keep a constant per-installment amount.
	slice := entry.Amount.Div(decimal.NewFromInt(int64(entry.InstallmentCount))).Round(2)

	occurrences := make([]Occurrence, 0, remaining)
	for k := 1; k <= remaining; k++ {
		date := AddMonths(entry.Date, k-1)
		if window != nil && !window.Contains(date) {
			continue
		}
		occurrences = append(occurrences, Occurrence{
			Entry:  entry,
			Date:   date,
			Amount: slice,
			Label:  fmt.Sprintf("%d/%d", entry.StartingInstallment+k-1, entry.InstallmentCount),
		})
	}

	return occurrences
}

// InstallmentForMonth returns the amount an entry contributes to the given
// month, or zero when none of its occurrences falls there. Used by the
// monthly category breakdown and budget status.
func InstallmentForMonth(entry *entity.Entry, year int, month time.Month) decimal.Decimal {
	if entry.InstallmentCount <= 1 || entry.PaymentMethod != entity.PaymentMethodCredit {
		if entry.Date.Year() == year && entry.Date.Month() == month {
			return entry.Amount
		}
		return decimal.Zero
	}

	startIndex := entry.Date.Year()*12 + int(entry.Date.Month())
	targetIndex := year*12 + int(month)
	diff := targetIndex - startIndex

	remaining := entry.InstallmentCount - entry.StartingInstallment + 1
	if diff < 0 || diff >= remaining {
		return decimal.Zero
	}

	return entry.Amount.Div(decimal.NewFromInt(int64(entry.InstallmentCount))).Round(2)
}
