package services

import (
	"log"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"
)

type CreatePromoCodeInput struct {
	BusinessID         string  `json:"businessId"`
	Promocode          string  `json:"promocode"`
	DiscountPercentage float64 `json:"discountPercentage"`
	IsActive           *bool   `json:"isActive"`
}

type UpdatePromoCodeInput struct {
	Promocode          *string  `json:"promocode"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	IsActive           *bool    `json:"isActive"`
}

type PromoCodeValidationResult struct {
	IsValid            bool    `json:"isValid"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	Error              string  `json:"error,omitempty"`
}

type PromoCodeService interface {
	CreatePromoCode(input CreatePromoCodeInput) (string, error)
	GetPromoCodeByID(promoCodeID string) (*models.PromoCode, error)
	GetAllPromoCodes() ([]models.PromoCode, error)
	GetPromoCodesByBusiness(businessID string) ([]models.PromoCode, error)
	GetActivePromoCodesByBusiness(businessID string) ([]models.PromoCode, error)
	UpdatePromoCode(promoCodeID string, input UpdatePromoCodeInput) (*models.PromoCode, error)
	DeletePromoCode(promoCodeID string) error
	ValidatePromoCode(promocode, businessID string, orderTotal float64) (*PromoCodeValidationResult, error)
	ActivatePromoCode(promoCodeID string) (*models.PromoCode, error)
	DeactivatePromoCode(promoCodeID string) (*models.PromoCode, error)
}

type promoCodeService struct {
	promoCodeRepo repository.PromoCodeRepository
}

func NewPromoCodeService(promoCodeRepo repository.PromoCodeRepository) PromoCodeService {
	return &promoCodeService{promoCodeRepo: promoCodeRepo}
}

func (s *promoCodeService) CreatePromoCode(input CreatePromoCodeInput) (string, error) {
	if input.BusinessID == "" {
		return "", apperrors.Validation("business id is required")
	}
	code := strings.TrimSpace(input.Promocode)
	if code == "" {
		return "", apperrors.Validation("promo code is required")
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return "", apperrors.Validation("discount percentage must be between 0 and 100")
	}
	if err := s.validateCodeUniqueness(code, input.BusinessID, ""); err != nil {
		return "", err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	promoCode, err := models.NewPromoCode(models.PromoCode{
		PromoCodeID:        ids.New("promo"),
		BusinessID:         input.BusinessID,
		Promocode:          strings.ToUpper(code),
		DiscountPercentage: input.DiscountPercentage,
		IsActive:           isActive,
	})
	if err != nil {
		return "", err
	}

	if err := s.promoCodeRepo.Create(promoCode); err != nil {
		return "", err
	}
	log.Printf("Promo code created %s for business %s", promoCode.PromoCodeID, input.BusinessID)
	return promoCode.PromoCodeID, nil
}

func (s *promoCodeService) GetPromoCodeByID(promoCodeID string) (*models.PromoCode, error) {
	return s.promoCodeRepo.GetByID(promoCodeID)
}

func (s *promoCodeService) GetAllPromoCodes() ([]models.PromoCode, error) {
	return s.promoCodeRepo.GetAll()
}

func (s *promoCodeService) GetPromoCodesByBusiness(businessID string) ([]models.PromoCode, error) {
	return s.promoCodeRepo.GetByBusinessID(businessID)
}

func (s *promoCodeService) GetActivePromoCodesByBusiness(businessID string) ([]models.PromoCode, error) {
	promoCodes, err := s.promoCodeRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	active := make([]models.PromoCode, 0)
	for _, p := range promoCodes {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *promoCodeService) UpdatePromoCode(promoCodeID string, input UpdatePromoCodeInput) (*models.PromoCode, error) {
	promoCode, err := s.promoCodeRepo.GetByID(promoCodeID)
	if err != nil {
		return nil, err
	}

	if input.DiscountPercentage != nil {
		if *input.DiscountPercentage < 0 || *input.DiscountPercentage > 100 {
			return nil, apperrors.Validation("discount percentage must be between 0 and 100")
		}
		promoCode.DiscountPercentage = *input.DiscountPercentage
	}
	if input.Promocode != nil {
		code := strings.TrimSpace(*input.Promocode)
		if !strings.EqualFold(code, promoCode.Promocode) {
			if err := s.validateCodeUniqueness(code, promoCode.BusinessID, promoCodeID); err != nil {
				return nil, err
			}
		}
		promoCode.Promocode = strings.ToUpper(code)
	}
	if input.IsActive != nil {
		promoCode.IsActive = *input.IsActive
	}

	if err := s.promoCodeRepo.Update(promoCode); err != nil {
		return nil, err
	}
	log.Printf("Promo code updated %s", promoCodeID)
	return promoCode, nil
}

func (s *promoCodeService) DeletePromoCode(promoCodeID string) error {
	if err := s.promoCodeRepo.Delete(promoCodeID); err != nil {
		return err
	}
	log.Printf("Promo code deleted %s", promoCodeID)
	return nil
}

// ValidatePromoCode checks a code against a business's active promo codes and
// reports the discount percentage it would grant. Orders do not apply this
// discount to their totals yet.
func (s *promoCodeService) ValidatePromoCode(promocode, businessID string, orderTotal float64) (*PromoCodeValidationResult, error) {
	promoCodes, err := s.promoCodeRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	for _, p := range promoCodes {
		if strings.EqualFold(p.Promocode, promocode) && p.IsActive {
			return &PromoCodeValidationResult{
				IsValid:            true,
				DiscountPercentage: p.DiscountPercentage,
			}, nil
		}
	}
	return &PromoCodeValidationResult{
		IsValid: false,
		Error:   "invalid or inactive promo code",
	}, nil
}

func (s *promoCodeService) ActivatePromoCode(promoCodeID string) (*models.PromoCode, error) {
	return s.setActive(promoCodeID, true)
}

func (s *promoCodeService) DeactivatePromoCode(promoCodeID string) (*models.PromoCode, error) {
	return s.setActive(promoCodeID, false)
}

func (s *promoCodeService) setActive(promoCodeID string, active bool) (*models.PromoCode, error) {
	promoCode, err := s.promoCodeRepo.GetByID(promoCodeID)
	if err != nil {
		return nil, err
	}
	promoCode.IsActive = active
	if err := s.promoCodeRepo.Update(promoCode); err != nil {
		return nil, err
	}
	log.Printf("Promo code %s active=%t", promoCodeID, active)
	return promoCode, nil
}

func (s *promoCodeService) validateCodeUniqueness(code, businessID, excludePromoCodeID string) error {
	promoCodes, err := s.promoCodeRepo.GetByBusinessID(businessID)
	if err != nil {
		return err
	}
	for _, p := range promoCodes {
		if strings.EqualFold(p.Promocode, code) && p.PromoCodeID != excludePromoCodeID {
			return apperrors.Validation("promo code already exists for this business")
		}
	}
	return nil
}
