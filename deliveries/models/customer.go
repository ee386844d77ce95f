package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null" form:"nome"`
	Phone     string `gorm:"size:20;not null" form:"telefone"`
	Email     string `gorm:"size:254;not null;unique" form:"email"`
	Address   string `gorm:"not null" form:"endereco"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (c *Customer) Validate() error {
	if countDigits(c.Phone) < 10 {
		return NewFieldError("telefone", "O telefone deve ter pelo menos 10 dígitos.")
	}
	return nil
}

func (c *Customer) BeforeSave(*gorm.DB) error {
	return c.Validate()
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Email)
}
