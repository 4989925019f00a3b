package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/customers"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service *customers.Service
}

func NewCustomerHandler(s *customers.Service) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// List serves one page of the customers table plus the page count.
func (h *CustomerHandler) List(c *gin.Context) {
	p := readListParams(c)
	ctx := c.Request.Context()

	totalPages, err := h.service.FetchCustomersPages(ctx, p.Query)
	if err != nil {
		fetchFailed(c, err)
		return
	}
	rows, err := h.service.FetchFilteredCustomers(ctx, p.Query, p.Page, p.SortBy, p.SortDir)
	if err != nil {
		fetchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":  rows,
		"totalPages": totalPages,
	})
}

// Options feeds the invoice form's customer picker.
func (h *CustomerHandler) Options(c *gin.Context) {
	fields, err := h.service.FetchCustomers(c.Request.Context())
	if err != nil {
		fetchFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": fields})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, found, err := h.service.FetchCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fetchFailed(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		badForm(c)
		return
	}
	respond(c, h.service.CreateCustomer(c.Request.Context(), form))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		badForm(c)
		return
	}
	respond(c, h.service.UpdateCustomer(c.Request.Context(), c.Param("id"), form))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	respond(c, h.service.DeleteCustomer(c.Request.Context(), c.Param("id")))
}
