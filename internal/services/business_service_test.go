package services

import (
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeBusinessRepo struct {
	businesses map[string]models.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[string]models.Business)}
}

func (r *fakeBusinessRepo) Create(business *models.Business) error {
	r.businesses[business.BusinessID] = *business
	return nil
}

func (r *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	business, ok := r.businesses[id]
	if !ok {
		return nil, apperrors.NotFound("business", id)
	}
	return &business, nil
}

func (r *fakeBusinessRepo) GetAll() ([]models.Business, error) {
	out := make([]models.Business, 0, len(r.businesses))
	for _, b := range r.businesses {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBusinessRepo) Update(business *models.Business) error {
	if _, ok := r.businesses[business.BusinessID]; !ok {
		return apperrors.NotFound("business", business.BusinessID)
	}
	r.businesses[business.BusinessID] = *business
	return nil
}

func (r *fakeBusinessRepo) Delete(id string) error {
	if _, ok := r.businesses[id]; !ok {
		return apperrors.NotFound("business", id)
	}
	delete(r.businesses, id)
	return nil
}

func validBusinessInput() CreateBusinessInput {
	return CreateBusinessInput{
		BusinessName: "Demo Store",
		OwnerName:    "Jane",
		Email:        "jane@example.com",
		PhoneNumber:  "6281234567890",
		Password:     "secret123",
	}
}

func TestCreateBusinessHashesPassword(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo())

	id, err := svc.CreateBusiness(validBusinessInput())
	require.NoError(t, err)

	business, err := svc.GetBusinessByID(id)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", business.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte("secret123")))
}

func TestCreateBusinessRequiresFields(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo())

	input := validBusinessInput()
	input.Email = ""
	_, err := svc.CreateBusiness(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateBusinessRejectsDuplicateEmail(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo())

	_, err := svc.CreateBusiness(validBusinessInput())
	require.NoError(t, err)

	input := validBusinessInput()
	input.Email = "JANE@example.com"
	_, err = svc.CreateBusiness(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateBusinessRehashesPassword(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo())

	id, err := svc.CreateBusiness(validBusinessInput())
	require.NoError(t, err)

	newPassword := "newsecret"
	require.NoError(t, svc.UpdateBusiness(id, UpdateBusinessInput{NewPassword: &newPassword}))

	business, err := svc.GetBusinessByID(id)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte("newsecret")))
}

func TestFindBusinessByEmail(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo())

	_, err := svc.CreateBusiness(validBusinessInput())
	require.NoError(t, err)

	business, err := svc.FindBusinessByEmail("jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, business)
	assert.Equal(t, "Demo Store", business.BusinessName)

	business, err = svc.FindBusinessByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, business)
}
