package analytics

import (
	"sort"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"

	"github.com/shopspring/decimal"
)

type Bucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

func (b *Bucket) add(amount decimal.Decimal) {
	b.Count++
	b.Amount = b.Amount.Add(amount)
}

type DueCheque struct {
	ID           string          `json:"id"`
	ChequeNumber string          `json:"chequeNumber"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
	CustomerID   string          `json:"customerId"`
}

type TodaysDeposits struct {
	Bucket
	Cheques []DueCheque `json:"cheques"`
}

type StatusBreakdown struct {
	Received  int `json:"received"`
	Deposited int `json:"deposited"`
	Cleared   int `json:"cleared"`
	Bounced   int `json:"bounced"`
}

func (s StatusBreakdown) Total() int {
	return s.Received + s.Deposited + s.Cleared + s.Bounced
}

type TotalAmounts struct {
	Receivable decimal.Decimal `json:"receivable"`
	Payable    decimal.Decimal `json:"payable"`
	Cleared    decimal.Decimal `json:"cleared"`
}

type Totals struct {
	Customers    int64 `json:"customers"`
	Cheques      int   `json:"cheques"`
	Transactions int   `json:"transactions"`
}

type DashboardStats struct {
	TodaysDeposits    TodaysDeposits  `json:"todaysDeposits"`
	PendingClearances Bucket          `json:"pendingClearances"`
	Next7DaysPipeline Bucket          `json:"next7DaysPipeline"`
	StatusBreakdown   StatusBreakdown `json:"statusBreakdown"`
	TotalAmounts      TotalAmounts    `json:"totalAmounts"`
	Totals            Totals          `json:"totals"`
	CashFlow          CashFlow        `json:"cashFlow"`
}

// Midnight is the start of asOf's calendar day in asOf's location.
func Midnight(asOf time.Time) time.Time {
	y, m, d := asOf.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, asOf.Location())
}

// ComputeDashboardStats reduces the live cheques and transactions into the
// dashboard rollup. Input order never affects the result. Totals.Customers
// is left for the caller.
func ComputeDashboardStats(cheques []models.Cheque, txns []models.CashTransaction, asOf time.Time) DashboardStats {
	today := Midnight(asOf)
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 7)

	st := DashboardStats{TodaysDeposits: TodaysDeposits{Cheques: []DueCheque{}}}
	for i := range cheques {
		c := &cheques[i]
		if c.DeletedAt.Valid {
			continue
		}
		st.Totals.Cheques++

		switch c.Status {
		case domain.ChequeReceived:
			st.StatusBreakdown.Received++
			if !c.DueDate.Before(today) {
				if c.DueDate.Before(tomorrow) {
					st.TodaysDeposits.add(c.Amount)
					st.TodaysDeposits.Cheques = append(st.TodaysDeposits.Cheques, DueCheque{
						ID:           c.ID,
						ChequeNumber: c.ChequeNumber,
						Amount:       c.Amount,
						DueDate:      c.DueDate,
						CustomerID:   c.CustomerID,
					})
				}
				if c.DueDate.Before(weekEnd) {
					st.Next7DaysPipeline.add(c.Amount)
				}
			}
		case domain.ChequeDeposited:
			st.StatusBreakdown.Deposited++
			st.PendingClearances.add(c.Amount)
		case domain.ChequeCleared:
			st.StatusBreakdown.Cleared++
			st.TotalAmounts.Cleared = st.TotalAmounts.Cleared.Add(c.Amount)
		case domain.ChequeBounced:
			st.StatusBreakdown.Bounced++
		}

		if c.Status != domain.ChequeCleared {
			switch c.Direction {
			case domain.DirectionReceivable:
				st.TotalAmounts.Receivable = st.TotalAmounts.Receivable.Add(c.Amount)
			case domain.DirectionPayable:
				st.TotalAmounts.Payable = st.TotalAmounts.Payable.Add(c.Amount)
			}
		}
	}

	sort.Slice(st.TodaysDeposits.Cheques, func(i, j int) bool {
		a, b := st.TodaysDeposits.Cheques[i], st.TodaysDeposits.Cheques[j]
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return a.ID < b.ID
	})

	for i := range txns {
		if !txns[i].DeletedAt.Valid {
			st.Totals.Transactions++
		}
	}
	st.CashFlow = cashFlow(txns)
	return st
}
