package service

import (
	"context"
	"strings"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"

	"github.com/shopspring/decimal"
)

type TransactionService struct {
	customers    *repository.CustomerRepository
	transactions *repository.TransactionRepository
	publisher    Publisher
}

func NewTransactionService(customers *repository.CustomerRepository, transactions *repository.TransactionRepository, publisher Publisher) *TransactionService {
	return &TransactionService{customers: customers, transactions: transactions, publisher: publisherOrNop(publisher)}
}

type TransactionInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Type       domain.TransactionType
	Method     domain.PaymentMethod
	Date       time.Time
	Reference  *string
	Category   *string
	Notes      *string
}

type TransactionPatch struct {
	Amount    *decimal.Decimal
	Type      *domain.TransactionType
	Method    *domain.PaymentMethod
	Date      *time.Time
	Reference *string
	Category  *string
	Notes     *string
}

func (in *TransactionInput) validate() error {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	var missing []string
	if in.CustomerID == "" {
		missing = append(missing, "customerId")
	}
	if in.Amount.IsZero() {
		missing = append(missing, "amount")
	}
	if in.Type == "" {
		missing = append(missing, "type")
	}
	if in.Method == "" {
		missing = append(missing, "method")
	}
	if in.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return domain.Validation("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if !in.Amount.IsPositive() {
		return domain.Validation("Amount must be positive")
	}
	if !in.Type.Valid() {
		return domain.Validation("Invalid type %q", in.Type)
	}
	if !in.Method.Valid() {
		return domain.Validation("Invalid method %q", in.Method)
	}
	return nil
}

func (p TransactionPatch) columns() (map[string]interface{}, error) {
	cols := map[string]interface{}{}
	if p.Amount != nil {
		if !p.Amount.IsPositive() {
			return nil, domain.Validation("Amount must be positive")
		}
		cols["amount"] = *p.Amount
	}
	if p.Type != nil {
		if !p.Type.Valid() {
			return nil, domain.Validation("Invalid type %q", *p.Type)
		}
		cols["type"] = *p.Type
	}
	if p.Method != nil {
		if !p.Method.Valid() {
			return nil, domain.Validation("Invalid method %q", *p.Method)
		}
		cols["payment_method"] = *p.Method
	}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.Reference != nil {
		cols["reference"] = optional(p.Reference)
	}
	if p.Category != nil {
		cols["category"] = optional(p.Category)
	}
	if p.Notes != nil {
		cols["notes"] = optional(p.Notes)
	}
	return cols, nil
}

func (s *TransactionService) Create(ctx context.Context, actorID string, in TransactionInput) (*models.CashTransaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.customers.GetByID(ctx, in.CustomerID); err != nil {
		return nil, lookupErr(err, "Customer")
	}
	t := &models.CashTransaction{
		CustomerID:    in.CustomerID,
		Amount:        in.Amount,
		Type:          in.Type,
		PaymentMethod: in.Method,
		Date:          in.Date,
		Reference:     optional(in.Reference),
		Category:      optional(in.Category),
		Notes:         optional(in.Notes),
		CreatedByID:   actorID,
		UpdatedByID:   actorID,
	}
	if err := s.transactions.Create(ctx, t); err != nil {
		return nil, err
	}
	out, err := s.transactions.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(event(domain.EventTransactionCreated, out.ID, actorID, out.View()))
	return out, nil
}

func (s *TransactionService) List(ctx context.Context, f repository.TransactionFilter, page, limit int) ([]models.CashTransaction, Pagination, error) {
	list, total, err := s.transactions.List(ctx, f, page, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, NewPagination(total, page, limit), nil
}

func (s *TransactionService) Export(ctx context.Context, f repository.TransactionFilter) ([]models.CashTransaction, error) {
	return s.transactions.ListAll(ctx, f)
}

func (s *TransactionService) Get(ctx context.Context, id string) (*models.CashTransaction, error) {
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Transaction")
	}
	return t, nil
}

func (s *TransactionService) Update(ctx context.Context, actorID, id string, p TransactionPatch) (*models.CashTransaction, error) {
	cols, err := p.columns()
	if err != nil {
		return nil, err
	}
	cols["updated_by_id"] = actorID
	ok, err := s.transactions.Update(ctx, id, cols)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("Transaction")
	}
	return s.Get(ctx, id)
}

func (s *TransactionService) Delete(ctx context.Context, actorID, id string) error {
	ok, err := s.transactions.SoftDelete(ctx, id, actorID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("Transaction")
	}
	s.publisher.Publish(event(domain.EventTransactionDeleted, id, actorID, nil))
	return nil
}
