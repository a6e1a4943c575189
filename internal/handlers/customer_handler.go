package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var input services.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	customerID, err := h.customerService.CreateCustomer(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customerId": customerID})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Param("customerId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetAllCustomers optionally filters by businessId, COD risk flag, or a
// free-text search term.
func (h *CustomerHandler) GetAllCustomers(c *gin.Context) {
	businessID := c.Query("businessId")
	if businessID == "" {
		customers, err := h.customerService.GetAllCustomers()
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
		return
	}

	if search := c.Query("search"); search != "" {
		customers, err := h.customerService.SearchCustomers(businessID, search)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
		return
	}
	if c.Query("codRisk") == "true" {
		customers, err := h.customerService.GetCODRiskCustomers(businessID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
		return
	}

	customers, err := h.customerService.GetCustomersByBusiness(businessID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var input services.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Param("customerId"), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Param("customerId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) FlagCODRisk(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional here.
	_ = c.ShouldBindJSON(&req)

	customer, err := h.customerService.FlagCODRisk(c.Param("customerId"), req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) RemoveCODRiskFlag(c *gin.Context) {
	customer, err := h.customerService.RemoveCODRiskFlag(c.Param("customerId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) GetCustomerSpending(c *gin.Context) {
	spending, err := h.customerService.GetCustomerSpending(c.Param("customerId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, spending)
}
