package services

import (
	"testing"

	"storefront/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePromoCodeStoresUppercase(t *testing.T) {
	repo := newFakePromoCodeRepo()
	svc := NewPromoCodeService(repo)

	id, err := svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "summer10",
		DiscountPercentage: 10,
	})
	require.NoError(t, err)

	promoCode, err := svc.GetPromoCodeByID(id)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", promoCode.Promocode)
	assert.True(t, promoCode.IsActive)
}

func TestCreatePromoCodeRejectsDuplicatePerBusiness(t *testing.T) {
	repo := newFakePromoCodeRepo()
	svc := NewPromoCodeService(repo)

	_, err := svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "SUMMER10",
		DiscountPercentage: 10,
	})
	require.NoError(t, err)

	_, err = svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "summer10",
		DiscountPercentage: 15,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// The same code is fine under a different business.
	_, err = svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_2",
		Promocode:          "summer10",
		DiscountPercentage: 15,
	})
	assert.NoError(t, err)
}

func TestCreatePromoCodeRejectsOutOfRangeDiscount(t *testing.T) {
	svc := NewPromoCodeService(newFakePromoCodeRepo())

	_, err := svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "BIG",
		DiscountPercentage: 101,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestValidatePromoCode(t *testing.T) {
	repo := newFakePromoCodeRepo()
	svc := NewPromoCodeService(repo)

	_, err := svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "SUMMER10",
		DiscountPercentage: 10,
	})
	require.NoError(t, err)

	result, err := svc.ValidatePromoCode("summer10", "business_1", 200)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, 10.0, result.DiscountPercentage)

	result, err = svc.ValidatePromoCode("WINTER20", "business_1", 200)
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Error)
}

func TestValidatePromoCodeIgnoresInactive(t *testing.T) {
	repo := newFakePromoCodeRepo()
	svc := NewPromoCodeService(repo)

	id, err := svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "SUMMER10",
		DiscountPercentage: 10,
	})
	require.NoError(t, err)

	_, err = svc.DeactivatePromoCode(id)
	require.NoError(t, err)

	result, err := svc.ValidatePromoCode("SUMMER10", "business_1", 200)
	require.NoError(t, err)
	assert.False(t, result.IsValid)
}

func TestActivateDeactivatePromoCode(t *testing.T) {
	repo := newFakePromoCodeRepo()
	svc := NewPromoCodeService(repo)

	id, err := svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "SUMMER10",
		DiscountPercentage: 10,
	})
	require.NoError(t, err)

	promoCode, err := svc.DeactivatePromoCode(id)
	require.NoError(t, err)
	assert.False(t, promoCode.IsActive)

	promoCode, err = svc.ActivatePromoCode(id)
	require.NoError(t, err)
	assert.True(t, promoCode.IsActive)
}

func TestGetActivePromoCodesByBusiness(t *testing.T) {
	repo := newFakePromoCodeRepo()
	svc := NewPromoCodeService(repo)

	_, err := svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "A10",
		DiscountPercentage: 10,
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.CreatePromoCode(CreatePromoCodeInput{
		BusinessID:         "business_1",
		Promocode:          "B20",
		DiscountPercentage: 20,
		IsActive:           &inactive,
	})
	require.NoError(t, err)

	active, err := svc.GetActivePromoCodesByBusiness("business_1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "A10", active[0].Promocode)
}
