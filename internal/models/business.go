package models

import (
	"time"

	"storefront/internal/apperrors"
)

type Business struct {
	BusinessID     string    `json:"businessId" gorm:"primaryKey;column:business_id"`
	BusinessName   string    `json:"businessName" gorm:"not null"`
	BusinessLogo   string    `json:"businessLogo,omitempty"`
	OwnerName      string    `json:"ownerName" gorm:"not null"`
	Email          string    `json:"email" gorm:"not null"`
	PhoneNumber    string    `json:"phoneNumber" gorm:"not null"`
	PasswordHash   string    `json:"-" gorm:"not null"`
	WhatsappAPIKey string    `json:"whatsappApiKey,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Business) TableName() string { return "business" }

// NewBusiness validates the populated value and returns it, or a validation
// error naming the first missing required field.
func NewBusiness(b Business) (*Business, error) {
	switch {
	case b.BusinessID == "":
		return nil, apperrors.Validation("business id is required")
	case b.BusinessName == "":
		return nil, apperrors.Validation("business name is required")
	case b.OwnerName == "":
		return nil, apperrors.Validation("owner name is required")
	case b.Email == "":
		return nil, apperrors.Validation("email is required")
	case b.PhoneNumber == "":
		return nil, apperrors.Validation("phone number is required")
	case b.PasswordHash == "":
		return nil, apperrors.Validation("password hash is required")
	}
	return &b, nil
}
