package models

import (
	"time"

	"chequesaathi/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CashTransaction struct {
	ID            string                 `gorm:"primaryKey;size:36" json:"id"`
	CustomerID    string                 `gorm:"size:36;not null;index" json:"customerId"`
	Amount        decimal.Decimal        `gorm:"type:decimal(14,2);not null" json:"amount"`
	Type          domain.TransactionType `gorm:"size:8;not null;index" json:"type"`
	PaymentMethod domain.PaymentMethod   `gorm:"size:8;not null" json:"paymentMethod"`
	Date          time.Time              `gorm:"not null;index" json:"date"`
	Reference     *string                `gorm:"size:255" json:"reference"`
	Category      *string                `gorm:"size:100;index" json:"category"`
	Notes         *string                `gorm:"type:text" json:"notes"`
	CreatedByID   string                 `gorm:"size:36;index" json:"createdById"`
	UpdatedByID   string                 `gorm:"size:36" json:"updatedById"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt         `gorm:"index" json:"-"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (CashTransaction) TableName() string {
	return "cash_transactions"
}

type TransactionView struct {
	*CashTransaction
	Customer *CustomerRef `json:"customer,omitempty"`
}

func (t *CashTransaction) View() TransactionView {
	return TransactionView{CashTransaction: t, Customer: t.Customer.Ref()}
}
