package repository

import (
	"context"
	"strings"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"

	"gorm.io/gorm"
)

type ChequeFilter struct {
	Search     string
	CustomerID string
	Status     domain.ChequeStatus
	ChequeType domain.ChequeType
	Direction  domain.ChequeDirection
	SortBy     string
	SortOrder  string
}

// chequeSortColumns whitelists the sortable API fields.
var chequeSortColumns = map[string]string{
	"dueDate":      "due_date",
	"issueDate":    "issue_date",
	"amount":       "amount",
	"createdAt":    "created_at",
	"chequeNumber": "cheque_number",
	"status":       "status",
}

func ValidChequeSort(field string) bool {
	_, ok := chequeSortColumns[field]
	return ok
}

type ChequeRepository struct {
	db *gorm.DB
}

func NewChequeRepository(db *gorm.DB) *ChequeRepository {
	return &ChequeRepository{db: db}
}

func (r *ChequeRepository) WithTx(tx *gorm.DB) *ChequeRepository {
	return &ChequeRepository{db: tx}
}

// withCustomer loads the owning customer even if it was soft-deleted later.
func withCustomer(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })
}

func (r *ChequeRepository) Create(ctx context.Context, c *models.Cheque) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ChequeRepository) GetByID(ctx context.Context, id string) (*models.Cheque, error) {
	var c models.Cheque
	err := withCustomer(r.db.WithContext(ctx)).Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// NumberTaken reports whether a live cheque of customerID, other than
// excludeID, already carries number.
func (r *ChequeRepository) NumberTaken(ctx context.Context, customerID, number, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Cheque{}).
		Where("customer_id = ? AND cheque_number = ?", customerID, number)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *ChequeRepository) filtered(ctx context.Context, f ChequeFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Cheque{})
	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ChequeType != "" {
		q = q.Where("cheque_type = ?", f.ChequeType)
	}
	if f.Direction != "" {
		q = q.Where("direction = ?", f.Direction)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := likePattern(strings.ToLower(s))
		q = q.Where("LOWER(cheque_number) LIKE ? OR LOWER(drawer_name) LIKE ? OR LOWER(payee_name) LIKE ? OR LOWER(bank_name) LIKE ?", p, p, p, p)
	}
	return q.Session(&gorm.Session{})
}

func (f ChequeFilter) order() string {
	col, ok := chequeSortColumns[f.SortBy]
	if !ok {
		col = "due_date"
	}
	return col + " " + sortDirection(f.SortOrder)
}

func (r *ChequeRepository) List(ctx context.Context, f ChequeFilter, page, limit int) ([]models.Cheque, int64, error) {
	q := r.filtered(ctx, f)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Cheque
	err := withCustomer(q).Order(f.order()).Order("id").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}

// ListAll returns every live cheque matching f, unpaged.
func (r *ChequeRepository) ListAll(ctx context.Context, f ChequeFilter) ([]models.Cheque, error) {
	var list []models.Cheque
	err := withCustomer(r.filtered(ctx, f)).Order(f.order()).Order("id").Find(&list).Error
	return list, err
}

func (r *ChequeRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.Cheque, error) {
	var list []models.Cheque
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&list).Error
	return list, err
}

// ListLive returns all live cheques without their customers.
func (r *ChequeRepository) ListLive(ctx context.Context) ([]models.Cheque, error) {
	var list []models.Cheque
	err := r.db.WithContext(ctx).Find(&list).Error
	return list, err
}

// CountByCustomer returns live cheque counts keyed by customer id.
func (r *ChequeRepository) CountByCustomer(ctx context.Context, customerIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(customerIDs))
	if len(customerIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		CustomerID string
		Total      int64
	}
	err := r.db.WithContext(ctx).Model(&models.Cheque{}).
		Select("customer_id, COUNT(*) AS total").
		Where("customer_id IN ?", customerIDs).
		Group("customer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.CustomerID] = row.Total
	}
	return counts, nil
}

func (r *ChequeRepository) Recent(ctx context.Context, limit int) ([]models.Cheque, error) {
	var list []models.Cheque
	err := withCustomer(r.db.WithContext(ctx)).Order("created_at DESC").Order("id").Limit(limit).Find(&list).Error
	return list, err
}

func (r *ChequeRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Cheque{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected > 0, res.Error
}

// CompareAndSetStatus applies updates only while the cheque is live and still
// in status from. It reports whether the row was changed.
func (r *ChequeRepository) CompareAndSetStatus(ctx context.Context, id string, from domain.ChequeStatus, updates map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Cheque{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

func (r *ChequeRepository) SoftDelete(ctx context.Context, id, actorID string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Cheque{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_by_id": actorID})
	return res.RowsAffected > 0, res.Error
}
