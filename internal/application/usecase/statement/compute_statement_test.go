package statement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func entry(accountID uuid.UUID, at time.Time, credit, debit int64) entity.LedgerEntry {
	return entity.LedgerEntry{
		ID:        uuid.New(),
		AccountID: accountID,
		Date:      at,
		Credit:    decimal.NewFromInt(credit),
		Debit:     decimal.NewFromInt(debit),
	}
}

func TestCompute(t *testing.T) {
	accountID := uuid.New()

	t.Run("period totals and closing balance", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			entry(accountID, date(2024, time.January, 1), 500, 0),
			entry(accountID, date(2024, time.January, 10), 0, 200),
			entry(accountID, date(2024, time.February, 1), 100, 0),
		}

		st := Compute(decimal.NewFromInt(1000), entries,
			date(2024, time.January, 1), date(2024, time.January, 31))

		if !st.OpeningBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("opening balance = %s, want 1000", st.OpeningBalance)
		}
		if !st.TotalCredit.Equal(decimal.NewFromInt(500)) {
			t.Errorf("total credit = %s, want 500", st.TotalCredit)
		}
		if !st.TotalDebit.Equal(decimal.NewFromInt(200)) {
			t.Errorf("total debit = %s, want 200", st.TotalDebit)
		}
		if !st.ClosingBalance.Equal(decimal.NewFromInt(1300)) {
			t.Errorf("closing balance = %s, want 1300", st.ClosingBalance)
		}
	})

	t.Run("entries before period fold into opening balance", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			entry(accountID, date(2023, time.December, 15), 300, 0),
			entry(accountID, date(2023, time.December, 20), 0, 100),
			entry(accountID, date(2024, time.January, 5), 50, 0),
		}

		st := Compute(decimal.NewFromInt(1000), entries,
			date(2024, time.January, 1), date(2024, time.January, 31))

		if !st.OpeningBalance.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("opening balance = %s, want 1200", st.OpeningBalance)
		}
		if !st.ClosingBalance.Equal(decimal.NewFromInt(1250)) {
			t.Errorf("closing balance = %s, want 1250", st.ClosingBalance)
		}
		if !st.TotalCredit.Equal(decimal.NewFromInt(50)) {
			t.Errorf("total credit = %s, want 50", st.TotalCredit)
		}
	})

	t.Run("running balances chain per entry", func(t *testing.T) {
		e1 := entry(accountID, date(2024, time.March, 1), 100, 0)
		e2 := entry(accountID, date(2024, time.March, 2), 0, 30)
		e3 := entry(accountID, date(2024, time.March, 3), 10, 0)
		entries := []entity.LedgerEntry{e3, e1, e2} // unsorted on purpose

		st := Compute(decimal.NewFromInt(500), entries,
			date(2024, time.March, 1), date(2024, time.March, 31))

		want := map[uuid.UUID]int64{e1.ID: 600, e2.ID: 570, e3.ID: 580}
		for id, amount := range want {
			got, ok := st.RunningBalances[id]
			if !ok {
				t.Fatalf("missing running balance for entry %s", id)
			}
			if !got.Equal(decimal.NewFromInt(amount)) {
				t.Errorf("running balance = %s, want %d", got, amount)
			}
		}
	})

	t.Run("entries on period boundaries are included", func(t *testing.T) {
		first := entity.LedgerEntry{
			ID:        uuid.New(),
			AccountID: accountID,
			Date:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			Credit:    decimal.NewFromInt(10),
			Debit:     decimal.Zero,
		}
		last := entity.LedgerEntry{
			ID:        uuid.New(),
			AccountID: accountID,
			Date:      time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC),
			Credit:    decimal.NewFromInt(20),
			Debit:     decimal.Zero,
		}

		st := Compute(decimal.Zero, []entity.LedgerEntry{first, last},
			date(2024, time.January, 1), date(2024, time.January, 31))

		if !st.TotalCredit.Equal(decimal.NewFromInt(30)) {
			t.Errorf("total credit = %s, want 30", st.TotalCredit)
		}
		if len(st.RunningBalances) != 2 {
			t.Errorf("running balances = %d entries, want 2", len(st.RunningBalances))
		}
	})

	t.Run("entries after period end are dropped entirely", func(t *testing.T) {
		inPeriod := entry(accountID, date(2024, time.January, 10), 100, 0)
		after := entry(accountID, date(2024, time.February, 10), 0, 999)

		st := Compute(decimal.NewFromInt(100), []entity.LedgerEntry{inPeriod, after},
			date(2024, time.January, 1), date(2024, time.January, 31))

		if !st.ClosingBalance.Equal(decimal.NewFromInt(200)) {
			t.Errorf("closing balance = %s, want 200", st.ClosingBalance)
		}
		if _, ok := st.RunningBalances[after.ID]; ok {
			t.Error("entry after period end must not have a running balance")
		}
	})

	t.Run("empty entry set", func(t *testing.T) {
		st := Compute(decimal.NewFromInt(42), nil,
			date(2024, time.January, 1), date(2024, time.January, 31))

		if !st.OpeningBalance.Equal(decimal.NewFromInt(42)) {
			t.Errorf("opening balance = %s, want 42", st.OpeningBalance)
		}
		if !st.ClosingBalance.Equal(decimal.NewFromInt(42)) {
			t.Errorf("closing balance = %s, want 42", st.ClosingBalance)
		}
		if !st.TotalCredit.IsZero() || !st.TotalDebit.IsZero() {
			t.Error("totals must be zero for an empty period")
		}
	})

	t.Run("balance conservation over arbitrary split", func(t *testing.T) {
		entries := []entity.LedgerEntry{
			entry(accountID, date(2023, time.November, 2), 75, 0),
			entry(accountID, date(2023, time.December, 30), 0, 25),
			entry(accountID, date(2024, time.January, 3), 200, 0),
			entry(accountID, date(2024, time.January, 28), 0, 50),
		}
		initial := decimal.NewFromInt(1000)

		st := Compute(initial, entries,
			date(2024, time.January, 1), date(2024, time.January, 31))

		sum := initial
		for _, e := range entries {
			sum = sum.Add(e.Net())
		}
		if !st.ClosingBalance.Equal(sum) {
			t.Errorf("closing balance = %s, want %s", st.ClosingBalance, sum)
		}
	})
}
