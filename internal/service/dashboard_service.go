package service

import (
	"context"
	"time"

	"chequesaathi/internal/analytics"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"

	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	customers    *repository.CustomerRepository
	cheques      *repository.ChequeRepository
	transactions *repository.TransactionRepository
}

func NewDashboardService(customers *repository.CustomerRepository, cheques *repository.ChequeRepository, transactions *repository.TransactionRepository) *DashboardService {
	return &DashboardService{customers: customers, cheques: cheques, transactions: transactions}
}

// Stats loads the live cheques, transactions and customer count concurrently
// and reduces them as of asOf.
func (s *DashboardService) Stats(ctx context.Context, asOf time.Time) (analytics.DashboardStats, error) {
	var (
		cheques   []models.Cheque
		txns      []models.CashTransaction
		customers int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cheques, err = s.cheques.ListLive(gctx)
		return err
	})
	g.Go(func() (err error) {
		txns, err = s.transactions.ListLive(gctx)
		return err
	})
	g.Go(func() (err error) {
		customers, err = s.customers.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return analytics.DashboardStats{}, err
	}
	st := analytics.ComputeDashboardStats(cheques, txns, asOf)
	st.Totals.Customers = customers
	return st, nil
}

// CustomerSummary reduces every live customer's cheques and transactions.
func (s *DashboardService) CustomerSummary(ctx context.Context) ([]analytics.CustomerSummary, error) {
	var (
		customers []models.Customer
		cheques   []models.Cheque
		txns      []models.CashTransaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customers, err = s.customers.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		cheques, err = s.cheques.ListLive(gctx)
		return err
	})
	g.Go(func() (err error) {
		txns, err = s.transactions.ListLive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chequesBy := make(map[string][]models.Cheque, len(customers))
	for _, c := range cheques {
		chequesBy[c.CustomerID] = append(chequesBy[c.CustomerID], c)
	}
	txnsBy := make(map[string][]models.CashTransaction, len(customers))
	for _, t := range txns {
		txnsBy[t.CustomerID] = append(txnsBy[t.CustomerID], t)
	}
	out := make([]analytics.CustomerSummary, len(customers))
	for i := range customers {
		c := &customers[i]
		out[i] = analytics.SummarizeCustomer(c, chequesBy[c.ID], txnsBy[c.ID])
	}
	return out, nil
}

type RecentActivity struct {
	RecentCheques      []models.ChequeView      `json:"recentCheques"`
	RecentTransactions []models.TransactionView `json:"recentTransactions"`
}

func (s *DashboardService) RecentActivity(ctx context.Context, limit int) (RecentActivity, error) {
	var (
		cheques []models.Cheque
		txns    []models.CashTransaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cheques, err = s.cheques.Recent(gctx, limit)
		return err
	})
	g.Go(func() (err error) {
		txns, err = s.transactions.Recent(gctx, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return RecentActivity{}, err
	}
	out := RecentActivity{
		RecentCheques:      make([]models.ChequeView, len(cheques)),
		RecentTransactions: make([]models.TransactionView, len(txns)),
	}
	for i := range cheques {
		out.RecentCheques[i] = cheques[i].View()
	}
	for i := range txns {
		out.RecentTransactions[i] = txns[i].View()
	}
	return out, nil
}
