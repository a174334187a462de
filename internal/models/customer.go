package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Name         string         `gorm:"size:255;not null;index" json:"name"`
	Phone        string         `gorm:"size:32;not null;index" json:"phone"`
	Email        string         `gorm:"size:255;not null;index" json:"email"`
	BusinessName *string        `gorm:"size:255" json:"businessName"`
	Address      *string        `gorm:"type:text" json:"address"`
	Notes        *string        `gorm:"type:text" json:"notes"`
	RiskScore    int            `gorm:"not null;default:0" json:"riskScore"` // derived, see analytics.RiskScore
	CreatedByID  string         `gorm:"size:36;index" json:"createdById"`
	UpdatedByID  string         `gorm:"size:36" json:"updatedById"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// CustomerRef is the customer summary embedded in cheque and transaction responses.
type CustomerRef struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	BusinessName *string `json:"businessName"`
	RiskScore    int     `json:"riskScore"`
}

func (c *Customer) Ref() *CustomerRef {
	if c == nil {
		return nil
	}
	return &CustomerRef{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		BusinessName: c.BusinessName,
		RiskScore:    c.RiskScore,
	}
}
