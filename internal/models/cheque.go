package models

import (
	"time"

	"chequesaathi/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cheque struct {
	ID           string                 `gorm:"primaryKey;size:36" json:"id"`
	CustomerID   string                 `gorm:"size:36;not null;index" json:"customerId"`
	ChequeNumber string                 `gorm:"size:64;not null;index" json:"chequeNumber"`
	Amount       decimal.Decimal        `gorm:"type:decimal(14,2);not null" json:"amount"`
	BankName     string                 `gorm:"size:255;not null" json:"bankName"`
	BranchName   *string                `gorm:"size:255" json:"branchName"`
	IFSCCode     *string                `gorm:"column:ifsc_code;size:16" json:"ifscCode"`
	ChequeType   domain.ChequeType      `gorm:"size:16;not null" json:"chequeType"`
	Direction    domain.ChequeDirection `gorm:"size:16;not null;index" json:"direction"`
	DrawerName   string                 `gorm:"size:255;not null" json:"drawerName"`
	PayeeName    string                 `gorm:"size:255;not null" json:"payeeName"`
	IssueDate    time.Time              `gorm:"not null" json:"issueDate"`
	DueDate      time.Time              `gorm:"not null;index" json:"dueDate"`
	Status       domain.ChequeStatus    `gorm:"size:16;not null;default:'RECEIVED';index" json:"status"`
	DepositDate  *time.Time             `json:"depositDate"`
	ClearedDate  *time.Time             `json:"clearedDate"`
	BouncedDate  *time.Time             `json:"bouncedDate"`
	BounceReason *string                `gorm:"size:512" json:"bounceReason"`
	Notes        *string                `gorm:"type:text" json:"notes"`
	ImageURL     *string                `gorm:"size:512" json:"imageUrl"`
	CreatedByID  string                 `gorm:"size:36;index" json:"createdById"`
	UpdatedByID  string                 `gorm:"size:36" json:"updatedById"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt         `gorm:"index" json:"-"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// ChequeView is the API representation: the cheque plus its customer summary.
type ChequeView struct {
	*Cheque
	Customer *CustomerRef `json:"customer,omitempty"`
}

func (c *Cheque) View() ChequeView {
	return ChequeView{Cheque: c, Customer: c.Customer.Ref()}
}
