package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"chequesaathi/config"
	"chequesaathi/internal/database"
	"chequesaathi/internal/domain"
	"chequesaathi/internal/lifecycle"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const actor = "user-1"

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recorder) Publish(evt domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

type env struct {
	db           *gorm.DB
	pub          *recorder
	auth         *AuthService
	customers    *CustomerService
	cheques      *ChequeService
	transactions *TransactionService
	dashboard    *DashboardService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := database.NewDB(&config.DatabaseConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "svc.db")}, nil)
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	pub := &recorder{}
	tx := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	chequeRepo := repository.NewChequeRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	return &env{
		db:           db,
		pub:          pub,
		auth:         NewAuthService(&config.JWTConfig{Secret: "s", Expiry: time.Hour}, userRepo),
		customers:    NewCustomerService(tx, customerRepo, chequeRepo, pub),
		cheques:      NewChequeService(tx, customerRepo, chequeRepo, auditRepo, pub),
		transactions: NewTransactionService(customerRepo, txnRepo, pub),
		dashboard:    NewDashboardService(customerRepo, chequeRepo, txnRepo),
	}
}

func (e *env) customer(t *testing.T, email, phone string) *models.Customer {
	t.Helper()
	c, err := e.customers.Create(context.Background(), actor, CustomerInput{Name: "Cust " + phone, Email: email, Phone: phone})
	if err != nil {
		t.Fatalf("Create customer error = %v", err)
	}
	return c
}

func (e *env) cheque(t *testing.T, customerID, number, amount string, due time.Time) *models.Cheque {
	t.Helper()
	c, err := e.cheques.Create(context.Background(), actor, ChequeInput{
		CustomerID:   customerID,
		ChequeNumber: number,
		Amount:       decimal.RequireFromString(amount),
		BankName:     "SBI",
		ChequeType:   domain.ChequePostDated,
		Direction:    domain.DirectionReceivable,
		DrawerName:   "Drawer",
		PayeeName:    "Payee",
		IssueDate:    due.AddDate(0, 0, -10),
		DueDate:      due,
	})
	if err != nil {
		t.Fatalf("Create cheque %s error = %v", number, err)
	}
	return c
}

func wantKind(t *testing.T, err, kind error, msg string) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("error = %v, want kind %v", err, kind)
	}
	if msg != "" && domain.Message(err) != msg {
		t.Errorf("message = %q, want %q", domain.Message(err), msg)
	}
}

func TestCustomer_CreateThenReadHasZeroRisk(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.customer(t, "Asha@Example.com", "9000000001")
	if c.Email != "asha@example.com" {
		t.Errorf("email = %q, want lowercased", c.Email)
	}

	got, err := e.customers.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.RiskScore != 0 || got.TotalCheques != 0 || !got.TotalAmount.IsZero() {
		t.Errorf("Get() = %+v, want zero stats", got)
	}
	if c.CreatedByID != actor || c.UpdatedByID != actor {
		t.Errorf("audit fields = %q/%q, want %q", c.CreatedByID, c.UpdatedByID, actor)
	}
}

func TestCustomer_Uniqueness(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	first := e.customer(t, "a@example.com", "1")

	_, err := e.customers.Create(ctx, actor, CustomerInput{Name: "X", Email: "a@example.com", Phone: "2"})
	wantKind(t, err, domain.ErrConflict, "Customer with this email already exists.")

	_, err = e.customers.Create(ctx, actor, CustomerInput{Name: "X", Email: "b@example.com", Phone: "1"})
	wantKind(t, err, domain.ErrConflict, "Customer with this phone number already exists.")

	second := e.customer(t, "b@example.com", "2")
	_, err = e.customers.Update(ctx, actor, second.ID, CustomerPatch{Email: strPtr("a@example.com")})
	wantKind(t, err, domain.ErrConflict, "Email already in use")
	_, err = e.customers.Update(ctx, actor, second.ID, CustomerPatch{Phone: strPtr("1")})
	wantKind(t, err, domain.ErrConflict, "Phone number already in use")

	// own values are not a collision
	if _, err := e.customers.Update(ctx, actor, second.ID, CustomerPatch{Email: strPtr("b@example.com"), Name: strPtr("Renamed")}); err != nil {
		t.Fatalf("Update(own email) error = %v", err)
	}

	if err := e.customers.Delete(ctx, actor, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	e.customer(t, "a@example.com", "1")
}

func TestCustomer_ValidationAndNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.customers.Create(ctx, actor, CustomerInput{Name: "X", Email: "x@example.com"})
	wantKind(t, err, domain.ErrValidation, "Name, phone, and email are required")

	_, err = e.customers.Get(ctx, "missing")
	wantKind(t, err, domain.ErrNotFound, "Customer not found")

	err = e.customers.Delete(ctx, actor, "missing")
	wantKind(t, err, domain.ErrNotFound, "Customer not found")
}

func TestCustomer_RiskScoreReconciledOnRead(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.customer(t, "r@example.com", "10")
	due := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	var cheques []*models.Cheque
	for _, n := range []string{"001", "002", "003", "004"} {
		cheques = append(cheques, e.cheque(t, c.ID, n, "100", due))
	}
	if _, err := e.cheques.UpdateStatus(ctx, actor, cheques[0].ID, domain.ChequeDeposited, lifecycle.Data{}); err != nil {
		t.Fatal(err)
	}
	reason := "insufficient funds"
	if _, err := e.cheques.UpdateStatus(ctx, actor, cheques[0].ID, domain.ChequeBounced, lifecycle.Data{BounceReason: &reason}); err != nil {
		t.Fatal(err)
	}

	got, err := e.customers.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.RiskScore != 25 || got.TotalCheques != 4 || got.BouncedCheques != 1 {
		t.Errorf("Get() = score %d, total %d, bounced %d; want 25, 4, 1", got.RiskScore, got.TotalCheques, got.BouncedCheques)
	}
	if !got.TotalAmount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("TotalAmount = %s, want 400", got.TotalAmount)
	}

	var stored models.Customer
	if err := e.db.First(&stored, "id = ?", c.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.RiskScore != 25 {
		t.Errorf("stored riskScore = %d, want 25", stored.RiskScore)
	}

	// deleting the bounced cheque drops the score on the next read
	if err := e.cheques.Delete(ctx, actor, cheques[0].ID); err != nil {
		t.Fatal(err)
	}
	got, err = e.customers.Get(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RiskScore != 0 || got.TotalCheques != 3 {
		t.Errorf("after delete: score %d, total %d; want 0, 3", got.RiskScore, got.TotalCheques)
	}
}

func TestCustomer_ListCountsLiveCheques(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.customer(t, "alpha@example.com", "11")
	e.customer(t, "beta@example.com", "12")
	due := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	e.cheque(t, a.ID, "1", "10", due)
	gone := e.cheque(t, a.ID, "2", "10", due)
	if err := e.cheques.Delete(ctx, actor, gone.ID); err != nil {
		t.Fatal(err)
	}

	items, page, err := e.customers.List(ctx, repository.CustomerFilter{Search: "ALPHA"}, 1, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 1 || page.Total != 1 || page.TotalPages != 1 {
		t.Fatalf("List(search) = %d items, pagination %+v", len(items), page)
	}
	if items[0].Count.Cheques != 1 {
		t.Errorf("cheque count = %d, want 1", items[0].Count.Cheques)
	}

	_, page, err = e.customers.List(ctx, repository.CustomerFilter{}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 || page.TotalPages != 2 {
		t.Errorf("pagination = %+v, want total 2, 2 pages", page)
	}
}

func TestCheque_CreateRules(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.customer(t, "a@example.com", "1")
	b := e.customer(t, "b@example.com", "2")
	due := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	c := e.cheque(t, a.ID, "123456", "1500.50", due)
	if c.Status != domain.ChequeReceived {
		t.Errorf("status = %s, want RECEIVED", c.Status)
	}
	if c.Customer == nil || c.Customer.ID != a.ID {
		t.Errorf("customer not loaded: %+v", c.Customer)
	}
	if !c.Amount.Equal(decimal.RequireFromString("1500.50")) {
		t.Errorf("amount = %s, want 1500.50", c.Amount)
	}

	in := ChequeInput{CustomerID: a.ID, ChequeNumber: "123456", Amount: decimal.NewFromInt(1), BankName: "HDFC",
		ChequeType: domain.ChequeAtSight, Direction: domain.DirectionPayable, DrawerName: "d", PayeeName: "p", IssueDate: due, DueDate: due}
	_, err := e.cheques.Create(ctx, actor, in)
	wantKind(t, err, domain.ErrConflict, "Cheque with this number already exists for this customer")

	in.CustomerID = b.ID
	if _, err := e.cheques.Create(ctx, actor, in); err != nil {
		t.Errorf("same number for another customer: error = %v, want nil", err)
	}

	in.CustomerID = "nobody"
	_, err = e.cheques.Create(ctx, actor, in)
	wantKind(t, err, domain.ErrNotFound, "Customer not found")

	_, err = e.cheques.Create(ctx, actor, ChequeInput{CustomerID: a.ID})
	wantKind(t, err, domain.ErrValidation, "")

	in.CustomerID = a.ID
	in.ChequeNumber = "999"
	in.Amount = decimal.NewFromInt(-5)
	_, err = e.cheques.Create(ctx, actor, in)
	wantKind(t, err, domain.ErrValidation, "Amount must be positive")

	if err := e.cheques.Delete(ctx, actor, c.ID); err != nil {
		t.Fatal(err)
	}
	in.Amount = decimal.NewFromInt(5)
	in.ChequeNumber = "123456"
	if _, err := e.cheques.Create(ctx, actor, in); err != nil {
		t.Errorf("reuse number after soft delete: error = %v, want nil", err)
	}
}

func TestCheque_StatusLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cust := e.customer(t, "a@example.com", "1")
	c := e.cheque(t, cust.ID, "1", "100", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	_, err := e.cheques.UpdateStatus(ctx, actor, c.ID, domain.ChequeCleared, lifecycle.Data{})
	wantKind(t, err, domain.ErrInvalidTransition, "cannot change cheque status from RECEIVED to CLEARED")

	dep := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	got, err := e.cheques.UpdateStatus(ctx, "user-2", c.ID, domain.ChequeDeposited, lifecycle.Data{DepositDate: &dep})
	if err != nil {
		t.Fatalf("UpdateStatus(DEPOSITED) error = %v", err)
	}
	if got.Status != domain.ChequeDeposited || got.DepositDate == nil || !got.DepositDate.Equal(dep) {
		t.Errorf("after deposit: status %s depositDate %v", got.Status, got.DepositDate)
	}
	if got.ClearedDate != nil || got.BouncedDate != nil {
		t.Errorf("clearedDate/bouncedDate set after deposit")
	}
	if got.UpdatedByID != "user-2" {
		t.Errorf("updatedById = %q, want user-2", got.UpdatedByID)
	}

	got, err = e.cheques.UpdateStatus(ctx, actor, c.ID, domain.ChequeCleared, lifecycle.Data{})
	if err != nil {
		t.Fatalf("UpdateStatus(CLEARED) error = %v", err)
	}
	if got.ClearedDate == nil {
		t.Error("clearedDate not defaulted")
	}
	_, err = e.cheques.UpdateStatus(ctx, actor, c.ID, domain.ChequeBounced, lifecycle.Data{})
	wantKind(t, err, domain.ErrInvalidTransition, "")

	_, err = e.cheques.UpdateStatus(ctx, actor, c.ID, "", lifecycle.Data{})
	wantKind(t, err, domain.ErrValidation, "Status is required")

	var logs []models.AuditLog
	if err := e.db.Where("resource = ? AND resource_id = ?", "cheque", c.ID).Find(&logs).Error; err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Errorf("audit rows = %d, want 2", len(logs))
	}
}

func TestCheque_UpdateNeverTouchesStatus(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cust := e.customer(t, "a@example.com", "1")
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	c := e.cheque(t, cust.ID, "1", "100", due)
	other := e.cheque(t, cust.ID, "2", "100", due)

	amount := decimal.RequireFromString("250.75")
	got, err := e.cheques.Update(ctx, actor, c.ID, ChequePatch{Amount: &amount, BankName: strPtr("ICICI"), Notes: strPtr("")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !got.Amount.Equal(amount) || got.BankName != "ICICI" || got.Status != domain.ChequeReceived {
		t.Errorf("Update() = %+v", got)
	}

	_, err = e.cheques.Update(ctx, actor, c.ID, ChequePatch{ChequeNumber: strPtr(other.ChequeNumber)})
	wantKind(t, err, domain.ErrConflict, "")

	_, err = e.cheques.Update(ctx, actor, "missing", ChequePatch{})
	wantKind(t, err, domain.ErrNotFound, "Cheque not found")
}

func TestCheque_DeletedIsGone(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cust := e.customer(t, "a@example.com", "1")
	c := e.cheque(t, cust.ID, "1", "100", time.Now())
	if err := e.cheques.Delete(ctx, actor, c.ID); err != nil {
		t.Fatal(err)
	}
	_, err := e.cheques.Get(ctx, c.ID)
	wantKind(t, err, domain.ErrNotFound, "Cheque not found")
	wantKind(t, e.cheques.Delete(ctx, actor, c.ID), domain.ErrNotFound, "")
	_, err = e.cheques.UpdateStatus(ctx, actor, c.ID, domain.ChequeDeposited, lifecycle.Data{})
	wantKind(t, err, domain.ErrNotFound, "")

	var raw models.Cheque
	if err := e.db.Unscoped().First(&raw, "id = ?", c.ID).Error; err != nil {
		t.Fatalf("row physically removed: %v", err)
	}
	if raw.UpdatedByID != actor || !raw.DeletedAt.Valid {
		t.Errorf("soft delete did not stamp row: %+v", raw)
	}
}

func TestTransaction_FiltersAndDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cust := e.customer(t, "a@example.com", "1")
	mk := func(day int, typ domain.TransactionType, amount string) *models.CashTransaction {
		tx, err := e.transactions.Create(ctx, actor, TransactionInput{
			CustomerID: cust.ID,
			Amount:     decimal.RequireFromString(amount),
			Type:       typ,
			Method:     domain.PaymentUPI,
			Date:       time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			Category:   strPtr("sales"),
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		return tx
	}
	mk(1, domain.TransactionCredit, "100")
	mid := mk(10, domain.TransactionDebit, "40")
	mk(20, domain.TransactionCredit, "60")

	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	list, page, err := e.transactions.List(ctx, repository.TransactionFilter{StartDate: &start, EndDate: &end}, 1, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 || page.Total != 2 {
		t.Errorf("List(date range) = %d rows, total %d; want 2 (inclusive bounds)", len(list), page.Total)
	}

	list, _, err = e.transactions.List(ctx, repository.TransactionFilter{Type: domain.TransactionDebit}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != mid.ID {
		t.Errorf("List(DEBIT) = %v", list)
	}
	if list[0].Customer == nil || list[0].Customer.ID != cust.ID {
		t.Errorf("customer not preloaded")
	}

	_, err = e.transactions.Create(ctx, actor, TransactionInput{CustomerID: cust.ID, Amount: decimal.NewFromInt(1), Type: "GIFT", Method: domain.PaymentCash, Date: start})
	wantKind(t, err, domain.ErrValidation, `Invalid type "GIFT"`)

	if err := e.transactions.Delete(ctx, actor, mid.ID); err != nil {
		t.Fatal(err)
	}
	_, err = e.transactions.Get(ctx, mid.ID)
	wantKind(t, err, domain.ErrNotFound, "Transaction not found")
}

func TestDashboard_Stats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.customer(t, "a@example.com", "1")
	e.customer(t, "b@example.com", "2")
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	e.cheque(t, a.ID, "1", "10", asOf)
	e.cheque(t, a.ID, "2", "20", asOf.AddDate(0, 0, 5))
	dep := e.cheque(t, a.ID, "3", "40", asOf.AddDate(0, 0, 8))
	if _, err := e.cheques.UpdateStatus(ctx, actor, dep.ID, domain.ChequeDeposited, lifecycle.Data{}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.transactions.Create(ctx, actor, TransactionInput{CustomerID: a.ID, Amount: decimal.NewFromInt(70), Type: domain.TransactionCredit, Method: domain.PaymentCash, Date: asOf}); err != nil {
		t.Fatal(err)
	}

	st, err := e.dashboard.Stats(ctx, asOf)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if st.Totals.Customers != 2 || st.Totals.Cheques != 3 || st.Totals.Transactions != 1 {
		t.Errorf("Totals = %+v", st.Totals)
	}
	if st.TodaysDeposits.Count != 1 || st.Next7DaysPipeline.Count != 2 || st.PendingClearances.Count != 1 {
		t.Errorf("buckets = today %d, 7d %d, pending %d", st.TodaysDeposits.Count, st.Next7DaysPipeline.Count, st.PendingClearances.Count)
	}
	if !st.TotalAmounts.Receivable.Equal(decimal.NewFromInt(70)) || !st.CashFlow.Net.Equal(decimal.NewFromInt(70)) {
		t.Errorf("receivable %s, net %s; want 70, 70", st.TotalAmounts.Receivable, st.CashFlow.Net)
	}

	sum, err := e.dashboard.CustomerSummary(ctx)
	if err != nil {
		t.Fatalf("CustomerSummary() error = %v", err)
	}
	if len(sum) != 2 || sum[0].CustomerID != a.ID || sum[0].Cheques.Total != 3 || sum[0].Cheques.Pending != 3 {
		t.Errorf("CustomerSummary() = %+v", sum)
	}

	recent, err := e.dashboard.RecentActivity(ctx, 2)
	if err != nil {
		t.Fatalf("RecentActivity() error = %v", err)
	}
	if len(recent.RecentCheques) != 2 || len(recent.RecentTransactions) != 1 {
		t.Errorf("RecentActivity() = %d cheques, %d transactions", len(recent.RecentCheques), len(recent.RecentTransactions))
	}
	if recent.RecentCheques[0].Customer == nil {
		t.Error("recent cheque without customer")
	}
}

func TestAuth_RegisterLogin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u, token, err := e.auth.Register(ctx, RegisterInput{Name: "Owner", Email: "Owner@Shop.in", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" || u.Email != "owner@shop.in" || u.PasswordHash == "hunter22" {
		t.Errorf("Register() = %+v, token %q", u, token)
	}

	_, _, err = e.auth.Register(ctx, RegisterInput{Name: "Owner", Email: "owner@shop.in", Password: "x"})
	wantKind(t, err, domain.ErrConflict, "User with this email already exists.")

	_, _, err = e.auth.Login(ctx, "owner@shop.in", "wrong")
	wantKind(t, err, domain.ErrInvalidCredential, "Invalid email or password.")
	_, _, err = e.auth.Login(ctx, "nobody@shop.in", "hunter22")
	wantKind(t, err, domain.ErrInvalidCredential, "Invalid email or password.")

	if _, _, err := e.auth.Login(ctx, "OWNER@shop.in", "hunter22"); err != nil {
		t.Errorf("Login() error = %v", err)
	}
	p, err := e.auth.Profile(ctx, u.ID)
	if err != nil || p.Name != "Owner" {
		t.Errorf("Profile() = %+v, %v", p, err)
	}
}

func TestPublisher_ReceivesEvents(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cust := e.customer(t, "a@example.com", "1")
	c := e.cheque(t, cust.ID, "1", "1", time.Now())
	if _, err := e.cheques.UpdateStatus(ctx, actor, c.ID, domain.ChequeDeposited, lifecycle.Data{}); err != nil {
		t.Fatal(err)
	}
	if err := e.cheques.Delete(ctx, actor, c.ID); err != nil {
		t.Fatal(err)
	}
	want := []string{domain.EventCustomerCreated, domain.EventChequeCreated, domain.EventChequeStatusChanged, domain.EventChequeDeleted}
	got := e.pub.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total       int64
		limit, want int
	}{
		{0, 10, 0}, {1, 10, 1}, {10, 10, 1}, {11, 10, 2}, {101, 100, 2},
	}
	for _, tt := range tests {
		if got := NewPagination(tt.total, 1, tt.limit).TotalPages; got != tt.want {
			t.Errorf("NewPagination(%d, 1, %d).TotalPages = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func strPtr(s string) *string { return &s }
