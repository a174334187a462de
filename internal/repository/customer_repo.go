package repository

import (
	"context"
	"strings"
	"time"

	"chequesaathi/internal/models"

	"gorm.io/gorm"
)

type CustomerFilter struct {
	Search string // name, email or phone, case-insensitive
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: tx}
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByID returns a live customer or gorm.ErrRecordNotFound.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByEmailOrPhone returns the first live customer, other than excludeID,
// holding either value. Empty arguments are ignored.
func (r *CustomerRepository) FindByEmailOrPhone(ctx context.Context, email, phone, excludeID string) (*models.Customer, error) {
	q := r.db.WithContext(ctx).Model(&models.Customer{})
	switch {
	case email != "" && phone != "":
		q = q.Where("email = ? OR phone = ?", email, phone)
	case email != "":
		q = q.Where("email = ?", email)
	case phone != "":
		q = q.Where("phone = ?", phone)
	default:
		return nil, gorm.ErrRecordNotFound
	}
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var c models.Customer
	if err := q.Order("created_at ASC").First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter CustomerFilter, page, limit int) ([]models.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Customer{})
	if s := strings.TrimSpace(filter.Search); s != "" {
		p := likePattern(strings.ToLower(s))
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", p, p, likePattern(s))
	}
	q = q.Session(&gorm.Session{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []models.Customer
	err := q.Order("created_at DESC").Order("id").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}

// ListAll returns every live customer, oldest first.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("id").Find(&list).Error
	return list, err
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error
	return n, err
}

// Update applies the given columns to a live customer. It reports whether a
// row matched.
func (r *CustomerRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected > 0, res.Error
}

// UpdateRiskScore writes the derived score without touching updated_at.
func (r *CustomerRepository) UpdateRiskScore(ctx context.Context, id string, score int) error {
	return r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).UpdateColumn("risk_score", score).Error
}

func (r *CustomerRepository) SoftDelete(ctx context.Context, id, actorID string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_by_id": actorID})
	return res.RowsAffected > 0, res.Error
}
