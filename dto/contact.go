package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContactResponse struct {
	ID           uint            `json:"id"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Latitude     decimal.Decimal `json:"latitude"`
	Longitude    decimal.Decimal `json:"longitude"`
	WorkingHours string          `json:"workingHours"`
	Telegram     string          `json:"telegram,omitempty"`
	WhatsApp     string          `json:"whatsapp,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type UpsertContactRequest struct {
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Latitude     decimal.Decimal `json:"latitude"`
	Longitude    decimal.Decimal `json:"longitude"`
	WorkingHours string          `json:"workingHours"`
	Telegram     string          `json:"telegram,omitempty"`
	WhatsApp     string          `json:"whatsapp,omitempty"`
}

// ContactMessageRequest is a guest feedback submission. Messages are
// forwarded to staff, not persisted.
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
