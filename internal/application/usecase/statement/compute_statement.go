// Package statement contains account statement use cases.
package statement

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
)

// Statement holds the balances computed over a period.
type Statement struct {
	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	TotalCredit     decimal.Decimal
	TotalDebit      decimal.Decimal
	RunningBalances map[uuid.UUID]decimal.Decimal
}

// Compute walks the account's entries in date order and derives the period
// statement. Entries dated before periodStart fold into the opening balance
// without touching the period totals. Entries within the period accumulate
// totals and record a running balance per entry. Entries after periodEnd are
// ignored entirely, so the closing balance reflects the period end, not the
// account's latest state.
func Compute(initialBalance decimal.Decimal, entries []entity.LedgerEntry, periodStart, periodEnd time.Time) Statement {
	sorted := make([]entity.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	start := StartOfDay(periodStart)
	end := EndOfDay(periodEnd)

	st := Statement{
		TotalCredit:     decimal.Zero,
		TotalDebit:      decimal.Zero,
		RunningBalances: make(map[uuid.UUID]decimal.Decimal, len(sorted)),
	}

	current := initialBalance
	opening := initialBalance
	for _, e := range sorted {
		if e.Date.Before(start) {
			current = current.Add(e.Net())
			opening = current
			continue
		}
		if e.Date.After(end) {
			continue
		}
		st.TotalCredit = st.TotalCredit.Add(e.Credit)
		st.TotalDebit = st.TotalDebit.Add(e.Debit)
		current = current.Add(e.Net())
		st.RunningBalances[e.ID] = current
	}

	st.OpeningBalance = opening
	st.ClosingBalance = current
	return st
}

// StartOfDay returns t at 00:00:00 in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// EntryWithBalance is a ledger entry annotated with its running balance.
type EntryWithBalance struct {
	Entry          entity.LedgerEntry
	RunningBalance decimal.Decimal
}

// ComputeStatementInput represents the input for statement computation.
type ComputeStatementInput struct {
	Scope     adapter.OwnerScope
	AccountID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Search    string
	Page      int
	Limit     int
}

// ComputeStatementOutput represents the output of statement computation.
type ComputeStatementOutput struct {
	Account        *entity.Account
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	TotalCredit    decimal.Decimal
	TotalDebit     decimal.Decimal
	Entries        []EntryWithBalance
	Total          int64
	Page           int
	Limit          int
	TotalPages     int
}

// ComputeStatementUseCase handles statement computation for an account.
type ComputeStatementUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewComputeStatementUseCase creates a new ComputeStatementUseCase instance.
func NewComputeStatementUseCase(accountRepo adapter.AccountRepository) *ComputeStatementUseCase {
	return &ComputeStatementUseCase{accountRepo: accountRepo}
}

// Execute computes the statement over the whole period and returns the
// requested page of entries annotated with running balances. Pagination and
// search narrow the visible entries only, never the balance computation.
func (uc *ComputeStatementUseCase) Execute(ctx context.Context, input ComputeStatementInput) (*ComputeStatementOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.ErrInvalidStatementPeriod
	}

	account, err := uc.accountRepo.FindByID(ctx, input.Scope, input.AccountID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.accountRepo.FindEntriesThrough(ctx, account.ID, EndOfDay(input.EndDate))
	if err != nil {
		return nil, err
	}

	st := Compute(account.InitialBalance, entries, input.StartDate, input.EndDate)

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 50
	}

	start := StartOfDay(input.StartDate)
	end := EndOfDay(input.EndDate)
	filter := adapter.LedgerEntryFilter{
		StartDate: &start,
		EndDate:   &end,
		Search:    input.Search,
	}
	pageEntries, total, err := uc.accountRepo.FindEntriesPage(ctx, account.ID, filter, adapter.Pagination{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	annotated := make([]EntryWithBalance, 0, len(pageEntries))
	for _, e := range pageEntries {
		balance, ok := st.RunningBalances[e.ID]
		if !ok {
			// Entries filtered out of the balance walk fall back to the
			// closing balance.
			balance = st.ClosingBalance
		}
		annotated = append(annotated, EntryWithBalance{Entry: e, RunningBalance: balance})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ComputeStatementOutput{
		Account:        account,
		OpeningBalance: st.OpeningBalance,
		ClosingBalance: st.ClosingBalance,
		TotalCredit:    st.TotalCredit,
		TotalDebit:     st.TotalDebit,
		Entries:        annotated,
		Total:          total,
		Page:           page,
		Limit:          limit,
		TotalPages:     totalPages,
	}, nil
}
