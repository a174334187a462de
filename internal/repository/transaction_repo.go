package repository

import (
	"context"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"

	"gorm.io/gorm"
)

type TransactionFilter struct {
	CustomerID string
	Type       domain.TransactionType
	Method     domain.PaymentMethod
	Category   string
	StartDate  *time.Time // inclusive
	EndDate    *time.Time // inclusive
	SortBy     string
	SortOrder  string
}

var transactionSortColumns = map[string]string{
	"date":      "date",
	"amount":    "amount",
	"createdAt": "created_at",
}

func ValidTransactionSort(field string) bool {
	_, ok := transactionSortColumns[field]
	return ok
}

func (f TransactionFilter) order() string {
	col, ok := transactionSortColumns[f.SortBy]
	if !ok {
		col = "date"
	}
	return col + " " + sortDirection(f.SortOrder)
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.CashTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.CashTransaction, error) {
	var t models.CashTransaction
	err := withCustomer(r.db.WithContext(ctx)).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) filtered(ctx context.Context, f TransactionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.CashTransaction{})
	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Method != "" {
		q = q.Where("payment_method = ?", f.Method)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	return q.Session(&gorm.Session{})
}

func (r *TransactionRepository) List(ctx context.Context, f TransactionFilter, page, limit int) ([]models.CashTransaction, int64, error) {
	q := r.filtered(ctx, f)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []models.CashTransaction
	err := withCustomer(q).Order(f.order()).Order("id").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}

func (r *TransactionRepository) ListAll(ctx context.Context, f TransactionFilter) ([]models.CashTransaction, error) {
	var list []models.CashTransaction
	err := withCustomer(r.filtered(ctx, f)).Order(f.order()).Order("id").Find(&list).Error
	return list, err
}

func (r *TransactionRepository) ListLive(ctx context.Context) ([]models.CashTransaction, error) {
	var list []models.CashTransaction
	err := r.db.WithContext(ctx).Find(&list).Error
	return list, err
}

func (r *TransactionRepository) Recent(ctx context.Context, limit int) ([]models.CashTransaction, error) {
	var list []models.CashTransaction
	err := withCustomer(r.db.WithContext(ctx)).Order("created_at DESC").Order("id").Limit(limit).Find(&list).Error
	return list, err
}

func (r *TransactionRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.CashTransaction{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected > 0, res.Error
}

func (r *TransactionRepository) SoftDelete(ctx context.Context, id, actorID string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.CashTransaction{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_by_id": actorID})
	return res.RowsAffected > 0, res.Error
}
