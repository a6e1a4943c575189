package services

import (
	"log"
	"strings"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CreateBusinessInput struct {
	BusinessName   string `json:"businessName"`
	OwnerName      string `json:"ownerName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Password       string `json:"password"`
	WhatsappAPIKey string `json:"whatsappApiKey"`
	BusinessLogo   string `json:"businessLogo"`
}

type UpdateBusinessInput struct {
	BusinessName   *string `json:"businessName"`
	OwnerName      *string `json:"ownerName"`
	Email          *string `json:"email"`
	PhoneNumber    *string `json:"phoneNumber"`
	NewPassword    *string `json:"newPassword"`
	WhatsappAPIKey *string `json:"whatsappApiKey"`
	BusinessLogo   *string `json:"businessLogo"`
}

type BusinessService interface {
	CreateBusiness(input CreateBusinessInput) (string, error)
	GetBusinessByID(businessID string) (*models.Business, error)
	GetAllBusinesses() ([]models.Business, error)
	UpdateBusiness(businessID string, input UpdateBusinessInput) error
	DeleteBusiness(businessID string) error
	FindBusinessByEmail(email string) (*models.Business, error)
}

type businessService struct {
	businessRepo repository.BusinessRepository
}

func NewBusinessService(businessRepo repository.BusinessRepository) BusinessService {
	return &businessService{businessRepo: businessRepo}
}

func (s *businessService) CreateBusiness(input CreateBusinessInput) (string, error) {
	if input.BusinessName == "" || input.OwnerName == "" || input.Email == "" ||
		input.PhoneNumber == "" || input.Password == "" {
		return "", apperrors.Validation("missing required fields")
	}

	if err := s.validateEmailUniqueness(input.Email, ""); err != nil {
		return "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Storage("failed to hash password", err)
	}

	business, err := models.NewBusiness(models.Business{
		BusinessID:     ids.New("business"),
		BusinessName:   input.BusinessName,
		BusinessLogo:   input.BusinessLogo,
		OwnerName:      input.OwnerName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		PasswordHash:   string(passwordHash),
		WhatsappAPIKey: input.WhatsappAPIKey,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return "", err
	}

	if err := s.businessRepo.Create(business); err != nil {
		return "", err
	}
	log.Printf("Business created %s", business.BusinessID)
	return business.BusinessID, nil
}

func (s *businessService) GetBusinessByID(businessID string) (*models.Business, error) {
	return s.businessRepo.GetByID(businessID)
}

func (s *businessService) GetAllBusinesses() ([]models.Business, error) {
	return s.businessRepo.GetAll()
}

func (s *businessService) UpdateBusiness(businessID string, input UpdateBusinessInput) error {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return err
	}

	if input.Email != nil && *input.Email != business.Email {
		if err := s.validateEmailUniqueness(*input.Email, businessID); err != nil {
			return err
		}
		business.Email = *input.Email
	}
	if input.BusinessName != nil {
		business.BusinessName = *input.BusinessName
	}
	if input.OwnerName != nil {
		business.OwnerName = *input.OwnerName
	}
	if input.PhoneNumber != nil {
		business.PhoneNumber = *input.PhoneNumber
	}
	if input.WhatsappAPIKey != nil {
		business.WhatsappAPIKey = *input.WhatsappAPIKey
	}
	if input.BusinessLogo != nil {
		business.BusinessLogo = *input.BusinessLogo
	}
	if input.NewPassword != nil && *input.NewPassword != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return apperrors.Storage("failed to hash password", err)
		}
		business.PasswordHash = string(passwordHash)
	}

	if err := s.businessRepo.Update(business); err != nil {
		return err
	}
	log.Printf("Business updated %s", businessID)
	return nil
}

func (s *businessService) DeleteBusiness(businessID string) error {
	if err := s.businessRepo.Delete(businessID); err != nil {
		return err
	}
	log.Printf("Business deleted %s", businessID)
	return nil
}

func (s *businessService) FindBusinessByEmail(email string) (*models.Business, error) {
	businesses, err := s.businessRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range businesses {
		if strings.EqualFold(businesses[i].Email, email) {
			return &businesses[i], nil
		}
	}
	return nil, nil
}

func (s *businessService) validateEmailUniqueness(email, excludeBusinessID string) error {
	existing, err := s.FindBusinessByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.BusinessID != excludeBusinessID {
		return apperrors.Validation("email already exists")
	}
	return nil
}
