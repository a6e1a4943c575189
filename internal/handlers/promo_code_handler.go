package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type PromoCodeHandler struct {
	promoCodeService services.PromoCodeService
}

func NewPromoCodeHandler(promoCodeService services.PromoCodeService) *PromoCodeHandler {
	return &PromoCodeHandler{promoCodeService: promoCodeService}
}

func (h *PromoCodeHandler) CreatePromoCode(c *gin.Context) {
	var input services.CreatePromoCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	promoCodeID, err := h.promoCodeService.CreatePromoCode(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"promoCodeId": promoCodeID})
}

func (h *PromoCodeHandler) GetPromoCode(c *gin.Context) {
	promoCode, err := h.promoCodeService.GetPromoCodeByID(c.Param("promoCodeId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, promoCode)
}

func (h *PromoCodeHandler) GetAllPromoCodes(c *gin.Context) {
	if businessID := c.Query("businessId"); businessID != "" {
		if c.Query("active") == "true" {
			promoCodes, err := h.promoCodeService.GetActivePromoCodesByBusiness(businessID)
			if err != nil {
				fail(c, err)
				return
			}
			c.JSON(http.StatusOK, promoCodes)
			return
		}
		promoCodes, err := h.promoCodeService.GetPromoCodesByBusiness(businessID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, promoCodes)
		return
	}

	promoCodes, err := h.promoCodeService.GetAllPromoCodes()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, promoCodes)
}

func (h *PromoCodeHandler) UpdatePromoCode(c *gin.Context) {
	var input services.UpdatePromoCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	promoCode, err := h.promoCodeService.UpdatePromoCode(c.Param("promoCodeId"), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, promoCode)
}

func (h *PromoCodeHandler) DeletePromoCode(c *gin.Context) {
	if err := h.promoCodeService.DeletePromoCode(c.Param("promoCodeId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PromoCodeHandler) ValidatePromoCode(c *gin.Context) {
	var req struct {
		Promocode  string  `json:"promocode"`
		BusinessID string  `json:"businessId"`
		OrderTotal float64 `json:"orderTotal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c)
		return
	}

	result, err := h.promoCodeService.ValidatePromoCode(req.Promocode, req.BusinessID, req.OrderTotal)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PromoCodeHandler) ActivatePromoCode(c *gin.Context) {
	promoCode, err := h.promoCodeService.ActivatePromoCode(c.Param("promoCodeId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, promoCode)
}

func (h *PromoCodeHandler) DeactivatePromoCode(c *gin.Context) {
	promoCode, err := h.promoCodeService.DeactivatePromoCode(c.Param("promoCodeId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, promoCode)
}
