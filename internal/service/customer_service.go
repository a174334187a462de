package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"chequesaathi/internal/analytics"
	"chequesaathi/internal/domain"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CustomerService struct {
	tx        *repository.Transactor
	customers *repository.CustomerRepository
	cheques   *repository.ChequeRepository
	publisher Publisher
}

func NewCustomerService(tx *repository.Transactor, customers *repository.CustomerRepository, cheques *repository.ChequeRepository, publisher Publisher) *CustomerService {
	return &CustomerService{tx: tx, customers: customers, cheques: cheques, publisher: publisherOrNop(publisher)}
}

type CustomerInput struct {
	Name         string
	Phone        string
	Email        string
	BusinessName *string
	Address      *string
	Notes        *string
}

type CustomerPatch struct {
	Name         *string
	Phone        *string
	Email        *string
	BusinessName *string
	Address      *string
	Notes        *string
}

// CustomerListItem is a customer with its live cheque count.
type CustomerListItem struct {
	*models.Customer
	Count struct {
		Cheques int64 `json:"cheques"`
	} `json:"_count"`
}

// CustomerDetail is a customer with its figures computed from live cheques.
type CustomerDetail struct {
	*models.Customer
	TotalCheques   int             `json:"totalCheques"`
	BouncedCheques int             `json:"bouncedCheques"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

func (s *CustomerService) Create(ctx context.Context, actorID string, in CustomerInput) (*models.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = normalizeEmail(in.Email)
	if in.Name == "" || in.Phone == "" || in.Email == "" {
		return nil, domain.Validation("Name, phone, and email are required")
	}

	c := &models.Customer{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		BusinessName: optional(in.BusinessName),
		Address:      optional(in.Address),
		Notes:        optional(in.Notes),
		RiskScore:    0,
		CreatedByID:  actorID,
		UpdatedByID:  actorID,
	}
	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		repo := s.customers.WithTx(tx)
		existing, err := repo.FindByEmailOrPhone(ctx, in.Email, in.Phone, "")
		switch {
		case err == nil && existing.Email == in.Email:
			return domain.Conflict("Customer with this email already exists.")
		case err == nil:
			return domain.Conflict("Customer with this phone number already exists.")
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, domain.Conflict("Customer with this email or phone number already exists.")
		}
		return nil, err
	}
	s.publisher.Publish(event(domain.EventCustomerCreated, c.ID, actorID, c))
	return c, nil
}

func (s *CustomerService) List(ctx context.Context, filter repository.CustomerFilter, page, limit int) ([]CustomerListItem, Pagination, error) {
	list, total, err := s.customers.List(ctx, filter, page, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	ids := make([]string, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	counts, err := s.cheques.CountByCustomer(ctx, ids)
	if err != nil {
		return nil, Pagination{}, err
	}
	items := make([]CustomerListItem, len(list))
	for i := range list {
		items[i].Customer = &list[i]
		items[i].Count.Cheques = counts[list[i].ID]
	}
	return items, NewPagination(total, page, limit), nil
}

// Get returns the customer with freshly computed stats, reconciling the
// stored risk score on the way.
func (s *CustomerService) Get(ctx context.Context, id string) (*CustomerDetail, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Customer")
	}
	cheques, err := s.cheques.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	stats := analytics.ComputeCustomerStats(cheques)
	if err := s.reconcileRisk(ctx, c, stats.RiskScore); err != nil {
		return nil, err
	}
	return &CustomerDetail{
		Customer:       c,
		TotalCheques:   stats.TotalCheques,
		BouncedCheques: stats.BouncedCheques,
		TotalAmount:    stats.TotalAmount,
	}, nil
}

// reconcileRisk persists score only when it differs from the stored value.
func (s *CustomerService) reconcileRisk(ctx context.Context, c *models.Customer, score int) error {
	if c.RiskScore == score {
		return nil
	}
	if err := s.customers.UpdateRiskScore(ctx, c.ID, score); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"customer_id": c.ID,
		"from":        c.RiskScore,
		"to":          score,
	}).Debug("risk score reconciled")
	c.RiskScore = score
	return nil
}

func (s *CustomerService) Update(ctx context.Context, actorID, id string, p CustomerPatch) (*models.Customer, error) {
	updates := map[string]interface{}{"updated_by_id": actorID}
	var email, phone string
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, domain.Validation("Name cannot be empty")
		}
		updates["name"] = name
	}
	if p.Email != nil {
		email = normalizeEmail(*p.Email)
		if email == "" {
			return nil, domain.Validation("Email cannot be empty")
		}
		updates["email"] = email
	}
	if p.Phone != nil {
		phone = strings.TrimSpace(*p.Phone)
		if phone == "" {
			return nil, domain.Validation("Phone cannot be empty")
		}
		updates["phone"] = phone
	}
	if p.BusinessName != nil {
		updates["business_name"] = optional(p.BusinessName)
	}
	if p.Address != nil {
		updates["address"] = optional(p.Address)
	}
	if p.Notes != nil {
		updates["notes"] = optional(p.Notes)
	}

	var out *models.Customer
	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		repo := s.customers.WithTx(tx)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return lookupErr(err, "Customer")
		}
		if email != "" {
			if _, err := repo.FindByEmailOrPhone(ctx, email, "", id); err == nil {
				return domain.Conflict("Email already in use")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if phone != "" {
			if _, err := repo.FindByEmailOrPhone(ctx, "", phone, id); err == nil {
				return domain.Conflict("Phone number already in use")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if _, err := repo.Update(ctx, id, updates); err != nil {
			return err
		}
		c, err := repo.GetByID(ctx, id)
		out = c
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, domain.Conflict("Email or phone number already in use")
		}
		return nil, err
	}
	return out, nil
}

func (s *CustomerService) Delete(ctx context.Context, actorID, id string) error {
	ok, err := s.customers.SoftDelete(ctx, id, actorID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("Customer")
	}
	s.publisher.Publish(event(domain.EventCustomerDeleted, id, actorID, nil))
	return nil
}
