package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"chequesaathi/internal/domain"
	"chequesaathi/internal/lifecycle"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ChequeService struct {
	tx        *repository.Transactor
	customers *repository.CustomerRepository
	cheques   *repository.ChequeRepository
	audit     *repository.AuditLogRepository
	publisher Publisher
}

func NewChequeService(tx *repository.Transactor, customers *repository.CustomerRepository, cheques *repository.ChequeRepository, audit *repository.AuditLogRepository, publisher Publisher) *ChequeService {
	return &ChequeService{tx: tx, customers: customers, cheques: cheques, audit: audit, publisher: publisherOrNop(publisher)}
}

type ChequeInput struct {
	CustomerID   string
	ChequeNumber string
	Amount       decimal.Decimal
	BankName     string
	BranchName   *string
	IFSCCode     *string
	ChequeType   domain.ChequeType
	Direction    domain.ChequeDirection
	DrawerName   string
	PayeeName    string
	IssueDate    time.Time
	DueDate      time.Time
	Notes        *string
}

func (in *ChequeInput) validate() error {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.ChequeNumber = strings.TrimSpace(in.ChequeNumber)
	in.BankName = strings.TrimSpace(in.BankName)
	in.DrawerName = strings.TrimSpace(in.DrawerName)
	in.PayeeName = strings.TrimSpace(in.PayeeName)

	var missing []string
	add := func(empty bool, field string) {
		if empty {
			missing = append(missing, field)
		}
	}
	add(in.CustomerID == "", "customerId")
	add(in.ChequeNumber == "", "chequeNumber")
	add(in.Amount.IsZero(), "amount")
	add(in.BankName == "", "bankName")
	add(in.ChequeType == "", "chequeType")
	add(in.Direction == "", "direction")
	add(in.DrawerName == "", "drawerName")
	add(in.PayeeName == "", "payeeName")
	add(in.IssueDate.IsZero(), "issueDate")
	add(in.DueDate.IsZero(), "dueDate")
	if len(missing) > 0 {
		return domain.Validation("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if !in.Amount.IsPositive() {
		return domain.Validation("Amount must be positive")
	}
	if !in.ChequeType.Valid() {
		return domain.Validation("Invalid chequeType %q", in.ChequeType)
	}
	if !in.Direction.Valid() {
		return domain.Validation("Invalid direction %q", in.Direction)
	}
	return nil
}

// ChequePatch edits anything but the status.
type ChequePatch struct {
	ChequeNumber *string
	Amount       *decimal.Decimal
	BankName     *string
	BranchName   *string
	IFSCCode     *string
	ChequeType   *domain.ChequeType
	Direction    *domain.ChequeDirection
	DrawerName   *string
	PayeeName    *string
	IssueDate    *time.Time
	DueDate      *time.Time
	Notes        *string
}

func (p ChequePatch) columns() (map[string]interface{}, error) {
	cols := map[string]interface{}{}
	required := func(v *string, col, field string) error {
		if v == nil {
			return nil
		}
		s := strings.TrimSpace(*v)
		if s == "" {
			return domain.Validation("%s cannot be empty", field)
		}
		cols[col] = s
		return nil
	}
	for _, f := range []struct {
		v          *string
		col, field string
	}{
		{p.ChequeNumber, "cheque_number", "chequeNumber"},
		{p.BankName, "bank_name", "bankName"},
		{p.DrawerName, "drawer_name", "drawerName"},
		{p.PayeeName, "payee_name", "payeeName"},
	} {
		if err := required(f.v, f.col, f.field); err != nil {
			return nil, err
		}
	}
	if p.Amount != nil {
		if !p.Amount.IsPositive() {
			return nil, domain.Validation("Amount must be positive")
		}
		cols["amount"] = *p.Amount
	}
	if p.ChequeType != nil {
		if !p.ChequeType.Valid() {
			return nil, domain.Validation("Invalid chequeType %q", *p.ChequeType)
		}
		cols["cheque_type"] = *p.ChequeType
	}
	if p.Direction != nil {
		if !p.Direction.Valid() {
			return nil, domain.Validation("Invalid direction %q", *p.Direction)
		}
		cols["direction"] = *p.Direction
	}
	if p.IssueDate != nil {
		cols["issue_date"] = *p.IssueDate
	}
	if p.DueDate != nil {
		cols["due_date"] = *p.DueDate
	}
	if p.BranchName != nil {
		cols["branch_name"] = optional(p.BranchName)
	}
	if p.IFSCCode != nil {
		cols["ifsc_code"] = optional(p.IFSCCode)
	}
	if p.Notes != nil {
		cols["notes"] = optional(p.Notes)
	}
	return cols, nil
}

const duplicateChequeMsg = "Cheque with this number already exists for this customer"

func (s *ChequeService) Create(ctx context.Context, actorID string, in ChequeInput) (*models.Cheque, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c := &models.Cheque{
		CustomerID:   in.CustomerID,
		ChequeNumber: in.ChequeNumber,
		Amount:       in.Amount,
		BankName:     in.BankName,
		BranchName:   optional(in.BranchName),
		IFSCCode:     optional(in.IFSCCode),
		ChequeType:   in.ChequeType,
		Direction:    in.Direction,
		DrawerName:   in.DrawerName,
		PayeeName:    in.PayeeName,
		IssueDate:    in.IssueDate,
		DueDate:      in.DueDate,
		Status:       domain.ChequeReceived,
		Notes:        optional(in.Notes),
		CreatedByID:  actorID,
		UpdatedByID:  actorID,
	}
	var out *models.Cheque
	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.customers.WithTx(tx).GetByID(ctx, in.CustomerID); err != nil {
			return lookupErr(err, "Customer")
		}
		repo := s.cheques.WithTx(tx)
		taken, err := repo.NumberTaken(ctx, in.CustomerID, in.ChequeNumber, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.Conflict(duplicateChequeMsg)
		}
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
		out, err = repo.GetByID(ctx, c.ID)
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, domain.Conflict(duplicateChequeMsg)
		}
		return nil, err
	}
	s.publisher.Publish(event(domain.EventChequeCreated, out.ID, actorID, out.View()))
	return out, nil
}

func (s *ChequeService) List(ctx context.Context, f repository.ChequeFilter, page, limit int) ([]models.Cheque, Pagination, error) {
	list, total, err := s.cheques.List(ctx, f, page, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, NewPagination(total, page, limit), nil
}

// Export returns every live cheque matching f.
func (s *ChequeService) Export(ctx context.Context, f repository.ChequeFilter) ([]models.Cheque, error) {
	return s.cheques.ListAll(ctx, f)
}

func (s *ChequeService) Get(ctx context.Context, id string) (*models.Cheque, error) {
	c, err := s.cheques.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Cheque")
	}
	return c, nil
}

func (s *ChequeService) Update(ctx context.Context, actorID, id string, p ChequePatch) (*models.Cheque, error) {
	cols, err := p.columns()
	if err != nil {
		return nil, err
	}
	cols["updated_by_id"] = actorID

	var out *models.Cheque
	err = s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		repo := s.cheques.WithTx(tx)
		cur, err := repo.GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, "Cheque")
		}
		if n, ok := cols["cheque_number"].(string); ok && n != cur.ChequeNumber {
			taken, err := repo.NumberTaken(ctx, cur.CustomerID, n, id)
			if err != nil {
				return err
			}
			if taken {
				return domain.Conflict(duplicateChequeMsg)
			}
		}
		if _, err := repo.Update(ctx, id, cols); err != nil {
			return err
		}
		out, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, domain.Conflict(duplicateChequeMsg)
		}
		return nil, err
	}
	return out, nil
}

// UpdateStatus applies a lifecycle transition. The write only lands if the
// cheque is still in the status the transition was computed from.
func (s *ChequeService) UpdateStatus(ctx context.Context, actorID, id string, target domain.ChequeStatus, data lifecycle.Data) (*models.Cheque, error) {
	if target == "" {
		return nil, domain.Validation("Status is required")
	}
	var out *models.Cheque
	var change lifecycle.Change
	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		repo := s.cheques.WithTx(tx)
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, "Cheque")
		}
		change, err = lifecycle.Transition(c, target, data, actorID, time.Now())
		if err != nil {
			return err
		}
		ok, err := repo.CompareAndSetStatus(ctx, id, change.From, change.Columns())
		if err != nil {
			return err
		}
		if !ok {
			cur, err := repo.GetByID(ctx, id)
			if err != nil {
				return lookupErr(err, "Cheque")
			}
			return domain.InvalidTransition(cur.Status, target)
		}
		meta, _ := json.Marshal(map[string]interface{}{
			"from":         change.From,
			"to":           change.To,
			"bounceReason": change.BounceReason,
		})
		uid := actorID
		if err := s.audit.WithTx(tx).Create(ctx, &models.AuditLog{
			UserID:     &uid,
			Action:     domain.AuditStatusChanged,
			Resource:   "cheque",
			ResourceID: id,
			Metadata:   string(meta),
		}); err != nil {
			return err
		}
		out, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(event(domain.EventChequeStatusChanged, id, actorID, map[string]interface{}{
		"from":   change.From,
		"to":     change.To,
		"cheque": out.View(),
	}))
	return out, nil
}

// AttachImage records the URL of an uploaded cheque scan.
func (s *ChequeService) AttachImage(ctx context.Context, actorID, id, url string) (*models.Cheque, error) {
	ok, err := s.cheques.Update(ctx, id, map[string]interface{}{"image_url": url, "updated_by_id": actorID})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("Cheque")
	}
	return s.Get(ctx, id)
}

func (s *ChequeService) Delete(ctx context.Context, actorID, id string) error {
	ok, err := s.cheques.SoftDelete(ctx, id, actorID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("Cheque")
	}
	s.publisher.Publish(event(domain.EventChequeDeleted, id, actorID, nil))
	return nil
}
