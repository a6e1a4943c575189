package services

import (
	"testing"

	"storefront/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerInput() CreateCustomerInput {
	return CreateCustomerInput{
		BusinessID:  "business_1",
		FullName:    "Jane Doe",
		PhoneNumber: "6281234567890",
		Email:       "jane@example.com",
		Address:     "Jl. Merdeka 1",
		City:        "Jakarta",
	}
}

func TestCreateCustomer(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	id, err := svc.CreateCustomer(validCustomerInput())
	require.NoError(t, err)

	customer, err := svc.GetCustomerByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", customer.FullName)
	assert.False(t, customer.CodRiskFlag)
}

func TestCreateCustomerRequiresFields(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	input := validCustomerInput()
	input.FullName = "  "
	_, err := svc.CreateCustomer(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	input = validCustomerInput()
	input.City = ""
	_, err = svc.CreateCustomer(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateCustomerRejectsBadEmail(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	input := validCustomerInput()
	input.Email = "not-an-email"
	_, err := svc.CreateCustomer(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateCustomerRejectsDuplicateEmail(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.CreateCustomer(validCustomerInput())
	require.NoError(t, err)

	input := validCustomerInput()
	input.FullName = "John Doe"
	_, err = svc.CreateCustomer(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSearchCustomers(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.CreateCustomer(validCustomerInput())
	require.NoError(t, err)

	other := validCustomerInput()
	other.FullName = "Bob Smith"
	other.Email = "bob@example.com"
	other.PhoneNumber = "6289999999999"
	_, err = svc.CreateCustomer(other)
	require.NoError(t, err)

	matched, err := svc.SearchCustomers("business_1", "jane")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Jane Doe", matched[0].FullName)

	matched, err = svc.SearchCustomers("business_1", "628999")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Bob Smith", matched[0].FullName)
}

func TestFlagAndRemoveCODRisk(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	id, err := svc.CreateCustomer(validCustomerInput())
	require.NoError(t, err)

	customer, err := svc.FlagCODRisk(id, "refused delivery twice")
	require.NoError(t, err)
	assert.True(t, customer.CodRiskFlag)

	risky, err := svc.GetCODRiskCustomers("business_1")
	require.NoError(t, err)
	assert.Len(t, risky, 1)

	customer, err = svc.RemoveCODRiskFlag(id)
	require.NoError(t, err)
	assert.False(t, customer.CodRiskFlag)
}

func TestUpdateCustomerOverlay(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	id, err := svc.CreateCustomer(validCustomerInput())
	require.NoError(t, err)

	city := "Bandung"
	customer, err := svc.UpdateCustomer(id, UpdateCustomerInput{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Bandung", customer.City)
	assert.Equal(t, "Jane Doe", customer.FullName)
}

func TestGetCustomerByPhone(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.CreateCustomer(validCustomerInput())
	require.NoError(t, err)

	customer, err := svc.GetCustomerByPhone("6281234567890")
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "Jane Doe", customer.FullName)

	customer, err = svc.GetCustomerByPhone("000")
	require.NoError(t, err)
	assert.Nil(t, customer)
}
