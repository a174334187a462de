package analytics

import (
	"math/rand"
	"testing"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func cheque(id string, status domain.ChequeStatus, dir domain.ChequeDirection, amount, due string) models.Cheque {
	return models.Cheque{
		ID:         id,
		CustomerID: "c1",
		Status:     status,
		Direction:  dir,
		Amount:     amt(amount),
		DueDate:    day(due),
	}
}

func TestRiskScore(t *testing.T) {
	mk := func(statuses ...domain.ChequeStatus) []models.Cheque {
		out := make([]models.Cheque, len(statuses))
		for i, s := range statuses {
			out[i] = models.Cheque{Status: s}
		}
		return out
	}
	R, D, C, B := domain.ChequeReceived, domain.ChequeDeposited, domain.ChequeCleared, domain.ChequeBounced

	tests := []struct {
		name    string
		cheques []models.Cheque
		want    int
	}{
		{"empty", nil, 0},
		{"one of four bounced", mk(R, D, C, B), 25},
		{"all bounced", mk(B, B), 100},
		{"none bounced", mk(R, C, C), 0},
		{"one of three rounds down", mk(B, C, C), 33},
		{"two of three rounds up", mk(B, B, C), 67},
		{"one of eight is 12.5, rounds half up", mk(B, C, C, C, C, C, C, C), 13},
	}
	for _, tt := range tests {
		got := RiskScore(tt.cheques)
		if got != tt.want {
			t.Errorf("%s: RiskScore() = %d, want %d", tt.name, got, tt.want)
		}
		if again := RiskScore(tt.cheques); again != got {
			t.Errorf("%s: RiskScore() not idempotent: %d then %d", tt.name, got, again)
		}
	}
}

func TestRiskScore_IgnoresSoftDeleted(t *testing.T) {
	deleted := models.Cheque{Status: domain.ChequeBounced, DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true}}
	cheques := []models.Cheque{{Status: domain.ChequeCleared}, deleted}
	if got := RiskScore(cheques); got != 0 {
		t.Errorf("RiskScore() = %d, want 0", got)
	}
}

func TestComputeCustomerStats(t *testing.T) {
	cheques := []models.Cheque{
		cheque("a", domain.ChequeReceived, domain.DirectionReceivable, "100.10", "2024-01-01"),
		cheque("b", domain.ChequeBounced, domain.DirectionReceivable, "200.20", "2024-01-01"),
		cheque("c", domain.ChequeCleared, domain.DirectionPayable, "0.70", "2024-01-01"),
		cheque("d", domain.ChequeDeposited, domain.DirectionPayable, "50", "2024-01-01"),
	}
	s := ComputeCustomerStats(cheques)
	if s.TotalCheques != 4 || s.BouncedCheques != 1 || s.RiskScore != 25 {
		t.Errorf("ComputeCustomerStats() = %+v", s)
	}
	if !s.TotalAmount.Equal(amt("351")) {
		t.Errorf("TotalAmount = %s, want 351", s.TotalAmount)
	}
}

func TestDashboard_DueWindows(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	cheques := []models.Cheque{
		cheque("today", domain.ChequeReceived, domain.DirectionReceivable, "10", "2024-03-15"),
		cheque("in5", domain.ChequeReceived, domain.DirectionReceivable, "20", "2024-03-20"),
		cheque("in8", domain.ChequeReceived, domain.DirectionReceivable, "40", "2024-03-23"),
		cheque("past", domain.ChequeReceived, domain.DirectionReceivable, "80", "2024-03-14"),
		cheque("deposited-today", domain.ChequeDeposited, domain.DirectionReceivable, "160", "2024-03-15"),
	}
	st := ComputeDashboardStats(cheques, nil, asOf)

	if st.TodaysDeposits.Count != 1 || len(st.TodaysDeposits.Cheques) != 1 || st.TodaysDeposits.Cheques[0].ID != "today" {
		t.Errorf("TodaysDeposits = %+v, want only 'today'", st.TodaysDeposits)
	}
	if !st.TodaysDeposits.Amount.Equal(amt("10")) {
		t.Errorf("TodaysDeposits.Amount = %s, want 10", st.TodaysDeposits.Amount)
	}
	if st.Next7DaysPipeline.Count != 2 || !st.Next7DaysPipeline.Amount.Equal(amt("30")) {
		t.Errorf("Next7DaysPipeline = %+v, want today+in5 = 30", st.Next7DaysPipeline)
	}
	if st.PendingClearances.Count != 1 || !st.PendingClearances.Amount.Equal(amt("160")) {
		t.Errorf("PendingClearances = %+v", st.PendingClearances)
	}
}

func TestDashboard_AsOfMidDay(t *testing.T) {
	asOf := time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC)
	cheques := []models.Cheque{
		cheque("morning", domain.ChequeReceived, domain.DirectionReceivable, "10", "2024-03-15"),
	}
	st := ComputeDashboardStats(cheques, nil, asOf)
	if st.TodaysDeposits.Count != 1 {
		t.Errorf("TodaysDeposits.Count = %d, want 1 (window starts at midnight)", st.TodaysDeposits.Count)
	}
}

func TestDashboard_BreakdownSumsToTotal(t *testing.T) {
	statuses := domain.ChequeStatuses
	dirs := []domain.ChequeDirection{domain.DirectionReceivable, domain.DirectionPayable}
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 40; n++ {
		var cheques []models.Cheque
		for i := 0; i < n; i++ {
			c := cheque(string(rune('a'+i%26)), statuses[rng.Intn(4)], dirs[rng.Intn(2)], "1.25", "2024-03-16")
			if rng.Intn(5) == 0 {
				c.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
			}
			cheques = append(cheques, c)
		}
		st := ComputeDashboardStats(cheques, nil, day("2024-03-15"))
		if st.StatusBreakdown.Total() != st.Totals.Cheques {
			t.Errorf("n=%d: breakdown total %d != live cheques %d", n, st.StatusBreakdown.Total(), st.Totals.Cheques)
		}
		live := 0
		for _, c := range cheques {
			if !c.DeletedAt.Valid {
				live++
			}
		}
		if st.Totals.Cheques != live {
			t.Errorf("n=%d: Totals.Cheques = %d, want %d", n, st.Totals.Cheques, live)
		}
	}
}

func TestDashboard_AllCleared(t *testing.T) {
	cheques := []models.Cheque{
		cheque("a", domain.ChequeCleared, domain.DirectionReceivable, "100.05", "2024-03-01"),
		cheque("b", domain.ChequeCleared, domain.DirectionPayable, "49.95", "2024-03-02"),
	}
	st := ComputeDashboardStats(cheques, nil, day("2024-03-15"))
	if !st.TotalAmounts.Receivable.IsZero() || !st.TotalAmounts.Payable.IsZero() {
		t.Errorf("receivable/payable = %s/%s, want 0/0", st.TotalAmounts.Receivable, st.TotalAmounts.Payable)
	}
	if !st.TotalAmounts.Cleared.Equal(amt("150")) {
		t.Errorf("cleared = %s, want 150", st.TotalAmounts.Cleared)
	}
}

func TestDashboard_AmountsAndCashFlow(t *testing.T) {
	cheques := []models.Cheque{
		cheque("a", domain.ChequeReceived, domain.DirectionReceivable, "0.10", "2024-03-01"),
		cheque("b", domain.ChequeBounced, domain.DirectionReceivable, "0.20", "2024-03-01"),
		cheque("c", domain.ChequeDeposited, domain.DirectionPayable, "5", "2024-03-01"),
		cheque("d", domain.ChequeCleared, domain.DirectionPayable, "7", "2024-03-01"),
	}
	txns := []models.CashTransaction{
		{Type: domain.TransactionCredit, Amount: amt("0.1")},
		{Type: domain.TransactionCredit, Amount: amt("0.2")},
		{Type: domain.TransactionDebit, Amount: amt("1")},
		{Type: domain.TransactionDebit, Amount: amt("99"), DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true}},
	}
	st := ComputeDashboardStats(cheques, txns, day("2024-03-15"))

	if !st.TotalAmounts.Receivable.Equal(amt("0.3")) {
		t.Errorf("receivable = %s, want 0.3", st.TotalAmounts.Receivable)
	}
	if !st.TotalAmounts.Payable.Equal(amt("5")) || !st.TotalAmounts.Cleared.Equal(amt("7")) {
		t.Errorf("payable/cleared = %s/%s, want 5/7", st.TotalAmounts.Payable, st.TotalAmounts.Cleared)
	}
	if !st.CashFlow.Credit.Equal(amt("0.3")) || !st.CashFlow.Debit.Equal(amt("1")) || !st.CashFlow.Net.Equal(amt("-0.7")) {
		t.Errorf("cashFlow = %+v", st.CashFlow)
	}
	if st.Totals.Transactions != 3 {
		t.Errorf("Totals.Transactions = %d, want 3", st.Totals.Transactions)
	}
}

func TestDashboard_OrderIndependent(t *testing.T) {
	cheques := []models.Cheque{
		cheque("a", domain.ChequeReceived, domain.DirectionReceivable, "1", "2024-03-15"),
		cheque("b", domain.ChequeReceived, domain.DirectionPayable, "2", "2024-03-15"),
		cheque("c", domain.ChequeDeposited, domain.DirectionPayable, "3", "2024-03-18"),
		cheque("d", domain.ChequeCleared, domain.DirectionReceivable, "4", "2024-03-19"),
		cheque("e", domain.ChequeReceived, domain.DirectionReceivable, "5", "2024-03-17"),
	}
	asOf := day("2024-03-15")
	want := ComputeDashboardStats(cheques, nil, asOf)

	reversed := make([]models.Cheque, len(cheques))
	for i, c := range cheques {
		reversed[len(cheques)-1-i] = c
	}
	got := ComputeDashboardStats(reversed, nil, asOf)

	if got.StatusBreakdown != want.StatusBreakdown || got.Next7DaysPipeline.Count != want.Next7DaysPipeline.Count {
		t.Errorf("stats differ by input order: %+v vs %+v", got, want)
	}
	if !got.TotalAmounts.Receivable.Equal(want.TotalAmounts.Receivable) || !got.Next7DaysPipeline.Amount.Equal(want.Next7DaysPipeline.Amount) {
		t.Errorf("amounts differ by input order")
	}
	for i := range want.TodaysDeposits.Cheques {
		if got.TodaysDeposits.Cheques[i].ID != want.TodaysDeposits.Cheques[i].ID {
			t.Errorf("todaysDeposits order differs at %d", i)
		}
	}
}

func TestSummarizeCustomer(t *testing.T) {
	c := &models.Customer{ID: "c1", Name: "Asha Traders", RiskScore: 90}
	cheques := []models.Cheque{
		cheque("a", domain.ChequeReceived, domain.DirectionReceivable, "100", "2024-03-01"),
		cheque("b", domain.ChequeDeposited, domain.DirectionReceivable, "50", "2024-03-01"),
		cheque("c", domain.ChequeBounced, domain.DirectionReceivable, "25", "2024-03-01"),
		cheque("d", domain.ChequeCleared, domain.DirectionReceivable, "25", "2024-03-01"),
	}
	txns := []models.CashTransaction{
		{Type: domain.TransactionCredit, Amount: amt("500")},
		{Type: domain.TransactionDebit, Amount: amt("120.50")},
	}
	s := SummarizeCustomer(c, cheques, txns)
	want := ChequeCounts{Total: 4, Bounced: 1, Pending: 2, Cleared: 1}
	if s.Cheques.Total != want.Total || s.Cheques.Bounced != want.Bounced || s.Cheques.Pending != want.Pending || s.Cheques.Cleared != want.Cleared {
		t.Errorf("Cheques = %+v, want counts %+v", s.Cheques, want)
	}
	if !s.Cheques.TotalAmount.Equal(amt("200")) || !s.Cheques.PendingAmount.Equal(amt("150")) {
		t.Errorf("amounts = %s/%s, want 200/150", s.Cheques.TotalAmount, s.Cheques.PendingAmount)
	}
	if !s.Transactions.Net.Equal(amt("379.5")) {
		t.Errorf("Net = %s, want 379.5", s.Transactions.Net)
	}
	if s.RiskScore != 25 {
		t.Errorf("RiskScore = %d, want 25 (recomputed, not the stored 90)", s.RiskScore)
	}
}
