// Package analytics holds the pure reductions behind customer risk scores and
// the dashboard. Nothing here touches the store.
package analytics

import (
	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"

	"github.com/shopspring/decimal"
)

// RiskScore is the share of bounced cheques as an integer percentage, rounded
// half away from zero. An empty set scores 0. Soft-deleted cheques are ignored.
func RiskScore(cheques []models.Cheque) int {
	var total, bounced int
	for i := range cheques {
		if cheques[i].DeletedAt.Valid {
			continue
		}
		total++
		if cheques[i].Status == domain.ChequeBounced {
			bounced++
		}
	}
	return percent(bounced, total)
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// CustomerStats are the figures shown on a customer's detail page.
type CustomerStats struct {
	TotalCheques   int             `json:"totalCheques"`
	BouncedCheques int             `json:"bouncedCheques"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	RiskScore      int             `json:"riskScore"`
}

func ComputeCustomerStats(cheques []models.Cheque) CustomerStats {
	var s CustomerStats
	for i := range cheques {
		c := &cheques[i]
		if c.DeletedAt.Valid {
			continue
		}
		s.TotalCheques++
		s.TotalAmount = s.TotalAmount.Add(c.Amount)
		if c.Status == domain.ChequeBounced {
			s.BouncedCheques++
		}
	}
	s.RiskScore = percent(s.BouncedCheques, s.TotalCheques)
	return s
}

type ChequeCounts struct {
	Total         int             `json:"total"`
	Bounced       int             `json:"bounced"`
	Pending       int             `json:"pending"`
	Cleared       int             `json:"cleared"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

type CashFlow struct {
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
	Net    decimal.Decimal `json:"net"`
}

// CustomerSummary is one row of the customer-wise dashboard report.
type CustomerSummary struct {
	CustomerID   string       `json:"customerId"`
	CustomerName string       `json:"customerName"`
	BusinessName *string      `json:"businessName"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	RiskScore    int          `json:"riskScore"`
	Cheques      ChequeCounts `json:"cheques"`
	Transactions CashFlow     `json:"transactions"`
}

// SummarizeCustomer reduces one customer's cheques and transactions. The
// risk score is recomputed from cheques rather than read from the row.
func SummarizeCustomer(c *models.Customer, cheques []models.Cheque, txns []models.CashTransaction) CustomerSummary {
	sum := CustomerSummary{
		CustomerID:   c.ID,
		CustomerName: c.Name,
		BusinessName: c.BusinessName,
		Phone:        c.Phone,
		Email:        c.Email,
	}
	for i := range cheques {
		ch := &cheques[i]
		if ch.DeletedAt.Valid {
			continue
		}
		sum.Cheques.Total++
		sum.Cheques.TotalAmount = sum.Cheques.TotalAmount.Add(ch.Amount)
		switch ch.Status {
		case domain.ChequeBounced:
			sum.Cheques.Bounced++
		case domain.ChequeCleared:
			sum.Cheques.Cleared++
		case domain.ChequeReceived, domain.ChequeDeposited:
			sum.Cheques.Pending++
			sum.Cheques.PendingAmount = sum.Cheques.PendingAmount.Add(ch.Amount)
		}
	}
	sum.Transactions = cashFlow(txns)
	sum.RiskScore = percent(sum.Cheques.Bounced, sum.Cheques.Total)
	return sum
}

func cashFlow(txns []models.CashTransaction) CashFlow {
	var f CashFlow
	for i := range txns {
		t := &txns[i]
		if t.DeletedAt.Valid {
			continue
		}
		switch t.Type {
		case domain.TransactionCredit:
			f.Credit = f.Credit.Add(t.Amount)
		case domain.TransactionDebit:
			f.Debit = f.Debit.Add(t.Amount)
		}
	}
	f.Net = f.Credit.Sub(f.Debit)
	return f
}
