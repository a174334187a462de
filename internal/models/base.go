package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (c *Customer) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}

func (c *Cheque) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}

func (t *CashTransaction) BeforeCreate(*gorm.DB) error {
	newID(&t.ID)
	return nil
}
