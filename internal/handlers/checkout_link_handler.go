package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CheckoutLinkHandler struct {
	checkoutLinkService services.CheckoutLinkService
}

func NewCheckoutLinkHandler(checkoutLinkService services.CheckoutLinkService) *CheckoutLinkHandler {
	return &CheckoutLinkHandler{checkoutLinkService: checkoutLinkService}
}

func (h *CheckoutLinkHandler) CreateCheckoutLink(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c)
		return
	}

	link, err := h.checkoutLinkService.CreateCheckoutLink(req.OrderID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *CheckoutLinkHandler) GetCheckoutLink(c *gin.Context) {
	link, err := h.checkoutLinkService.GetCheckoutLinkByID(c.Param("linkId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *CheckoutLinkHandler) GetAllCheckoutLinks(c *gin.Context) {
	if orderID := c.Query("orderId"); orderID != "" {
		links, err := h.checkoutLinkService.GetCheckoutLinksByOrder(orderID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, links)
		return
	}

	links, err := h.checkoutLinkService.GetAllCheckoutLinks()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// ResolveToken returns the order behind a live checkout token.
func (h *CheckoutLinkHandler) ResolveToken(c *gin.Context) {
	order, err := h.checkoutLinkService.ResolveToken(c.Param("token"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *CheckoutLinkHandler) DeactivateCheckoutLink(c *gin.Context) {
	link, err := h.checkoutLinkService.DeactivateCheckoutLink(c.Param("linkId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

func (h *CheckoutLinkHandler) DeleteCheckoutLink(c *gin.Context) {
	if err := h.checkoutLinkService.DeleteCheckoutLink(c.Param("linkId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
