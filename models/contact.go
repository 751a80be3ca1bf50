package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Contact holds the site contact block. At most one row may exist;
// the cardinality is enforced by the contact controller, not the schema.
type Contact struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Phone        string          `json:"phone" gorm:"size:20;not null" validate:"required"`
	Email        string          `json:"email" gorm:"not null" validate:"required,email"`
	Address      string          `json:"address" gorm:"not null" validate:"required"`
	Latitude     decimal.Decimal `json:"latitude" gorm:"type:decimal(9,6)"`
	Longitude    decimal.Decimal `json:"longitude" gorm:"type:decimal(9,6)"`
	WorkingHours string          `json:"workingHours" gorm:"size:100"`
	Telegram     string          `json:"telegram,omitempty" validate:"omitempty,url"`
	WhatsApp     string          `json:"whatsapp,omitempty" validate:"omitempty,url"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

var contactPhoneRegex = regexp.MustCompile(`^\+?[0-9\s\-\(\)]{10,}$`)

func (c *Contact) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}

	if !contactPhoneRegex.MatchString(c.Phone) {
		return fmt.Errorf("invalid phone number: %s", c.Phone)
	}
	return nil
}
