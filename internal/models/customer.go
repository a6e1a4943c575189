package models

import "storefront/internal/apperrors"

type Customer struct {
	CustomerID        string `json:"customerId" gorm:"primaryKey;column:customer_id"`
	BusinessID        string `json:"businessId" gorm:"column:business_id;not null"`
	FullName          string `json:"fullName" gorm:"not null"`
	PhoneNumber       string `json:"phoneNumber" gorm:"not null"`
	Email             string `json:"email,omitempty"`
	InstagramUsername string `json:"instagramUsername,omitempty"`
	Address           string `json:"address" gorm:"not null"`
	City              string `json:"city" gorm:"not null"`
	Birthday          string `json:"birthday,omitempty"`
	CodRiskFlag       bool   `json:"codRiskFlag" gorm:"column:cod_risk_flag"`
}

func (Customer) TableName() string { return "customer" }

func NewCustomer(c Customer) (*Customer, error) {
	switch {
	case c.CustomerID == "":
		return nil, apperrors.Validation("customer id is required")
	case c.BusinessID == "":
		return nil, apperrors.Validation("business id is required")
	case c.FullName == "":
		return nil, apperrors.Validation("full name is required")
	case c.PhoneNumber == "":
		return nil, apperrors.Validation("phone number is required")
	case c.Address == "":
		return nil, apperrors.Validation("address is required")
	case c.City == "":
		return nil, apperrors.Validation("city is required")
	}
	return &c, nil
}
