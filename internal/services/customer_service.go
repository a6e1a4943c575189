package services

import (
	"log"
	"regexp"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CreateCustomerInput struct {
	BusinessID        string `json:"businessId"`
	FullName          string `json:"fullName"`
	PhoneNumber       string `json:"phoneNumber"`
	Email             string `json:"email"`
	InstagramUsername string `json:"instagramUsername"`
	Address           string `json:"address"`
	City              string `json:"city"`
	Birthday          string `json:"birthday"`
	CodRiskFlag       bool   `json:"codRiskFlag"`
}

type UpdateCustomerInput struct {
	FullName          *string `json:"fullName"`
	PhoneNumber       *string `json:"phoneNumber"`
	Email             *string `json:"email"`
	InstagramUsername *string `json:"instagramUsername"`
	Address           *string `json:"address"`
	City              *string `json:"city"`
	Birthday          *string `json:"birthday"`
	CodRiskFlag       *bool   `json:"codRiskFlag"`
}

// CustomerSpending summarizes a customer's order history. Order data is not
// joined in yet, so the summary is all zeros for now.
type CustomerSpending struct {
	TotalSpent        float64 `json:"totalSpent"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type CustomerService interface {
	CreateCustomer(input CreateCustomerInput) (string, error)
	GetCustomerByID(customerID string) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	GetCustomersByBusiness(businessID string) ([]models.Customer, error)
	GetCODRiskCustomers(businessID string) ([]models.Customer, error)
	SearchCustomers(businessID, searchTerm string) ([]models.Customer, error)
	UpdateCustomer(customerID string, input UpdateCustomerInput) (*models.Customer, error)
	DeleteCustomer(customerID string) error
	FlagCODRisk(customerID, reason string) (*models.Customer, error)
	RemoveCODRiskFlag(customerID string) (*models.Customer, error)
	GetCustomerByEmail(email string) (*models.Customer, error)
	GetCustomerByPhone(phoneNumber string) (*models.Customer, error)
	GetCustomerSpending(customerID string) (*CustomerSpending, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(input CreateCustomerInput) (string, error) {
	if input.BusinessID == "" {
		return "", apperrors.Validation("business id is required")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return "", apperrors.Validation("full name is required")
	}
	if strings.TrimSpace(input.PhoneNumber) == "" {
		return "", apperrors.Validation("phone number is required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return "", apperrors.Validation("address is required")
	}
	if strings.TrimSpace(input.City) == "" {
		return "", apperrors.Validation("city is required")
	}
	if input.Email != "" {
		if !emailPattern.MatchString(input.Email) {
			return "", apperrors.Validation("invalid email format")
		}
		if err := s.validateEmailUniqueness(input.Email, ""); err != nil {
			return "", err
		}
	}

	customer, err := models.NewCustomer(models.Customer{
		CustomerID:        ids.New("customer"),
		BusinessID:        input.BusinessID,
		FullName:          strings.TrimSpace(input.FullName),
		PhoneNumber:       strings.TrimSpace(input.PhoneNumber),
		Email:             input.Email,
		InstagramUsername: input.InstagramUsername,
		Address:           strings.TrimSpace(input.Address),
		City:              strings.TrimSpace(input.City),
		Birthday:          input.Birthday,
		CodRiskFlag:       input.CodRiskFlag,
	})
	if err != nil {
		return "", err
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return "", err
	}
	log.Printf("Customer created %s for business %s", customer.CustomerID, input.BusinessID)
	return customer.CustomerID, nil
}

func (s *customerService) GetCustomerByID(customerID string) (*models.Customer, error) {
	return s.customerRepo.GetByID(customerID)
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) GetCustomersByBusiness(businessID string) ([]models.Customer, error) {
	return s.customerRepo.GetByBusinessID(businessID)
}

func (s *customerService) GetCODRiskCustomers(businessID string) ([]models.Customer, error) {
	customers, err := s.customerRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	risky := make([]models.Customer, 0)
	for _, c := range customers {
		if c.CodRiskFlag {
			risky = append(risky, c)
		}
	}
	return risky, nil
}

func (s *customerService) SearchCustomers(businessID, searchTerm string) ([]models.Customer, error) {
	customers, err := s.customerRepo.GetByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	searchLower := strings.ToLower(searchTerm)
	matched := make([]models.Customer, 0)
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.FullName), searchLower) ||
			strings.Contains(c.PhoneNumber, searchTerm) ||
			(c.Email != "" && strings.Contains(strings.ToLower(c.Email), searchLower)) ||
			(c.InstagramUsername != "" && strings.Contains(strings.ToLower(c.InstagramUsername), searchLower)) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *customerService) UpdateCustomer(customerID string, input UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != "" {
		if !emailPattern.MatchString(*input.Email) {
			return nil, apperrors.Validation("invalid email format")
		}
		if *input.Email != customer.Email {
			if err := s.validateEmailUniqueness(*input.Email, customerID); err != nil {
				return nil, err
			}
		}
		customer.Email = *input.Email
	}
	if input.FullName != nil {
		customer.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		customer.PhoneNumber = *input.PhoneNumber
	}
	if input.InstagramUsername != nil {
		customer.InstagramUsername = *input.InstagramUsername
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.Birthday != nil {
		customer.Birthday = *input.Birthday
	}
	if input.CodRiskFlag != nil {
		customer.CodRiskFlag = *input.CodRiskFlag
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	log.Printf("Customer updated %s", customerID)
	return customer, nil
}

func (s *customerService) DeleteCustomer(customerID string) error {
	if err := s.customerRepo.Delete(customerID); err != nil {
		return err
	}
	log.Printf("Customer deleted %s", customerID)
	return nil
}

func (s *customerService) FlagCODRisk(customerID, reason string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	customer.CodRiskFlag = true
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	if reason == "" {
		reason = "not specified"
	}
	log.Printf("Customer %s flagged as COD risk. Reason: %s", customerID, reason)
	return customer, nil
}

func (s *customerService) RemoveCODRiskFlag(customerID string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	customer.CodRiskFlag = false
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	log.Printf("COD risk flag removed from customer %s", customerID)
	return customer, nil
}

func (s *customerService) GetCustomerByEmail(email string) (*models.Customer, error) {
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].Email != "" && strings.EqualFold(customers[i].Email, email) {
			return &customers[i], nil
		}
	}
	return nil, nil
}

func (s *customerService) GetCustomerByPhone(phoneNumber string) (*models.Customer, error) {
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].PhoneNumber == phoneNumber {
			return &customers[i], nil
		}
	}
	return nil, nil
}

// GetCustomerSpending will aggregate order data once customer order history
// is queryable here; until then it returns an empty summary.
func (s *customerService) GetCustomerSpending(customerID string) (*CustomerSpending, error) {
	if _, err := s.customerRepo.GetByID(customerID); err != nil {
		return nil, err
	}
	return &CustomerSpending{}, nil
}

func (s *customerService) validateEmailUniqueness(email, excludeCustomerID string) error {
	existing, err := s.GetCustomerByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.CustomerID != excludeCustomerID {
		return apperrors.Validation("email already exists")
	}
	return nil
}
