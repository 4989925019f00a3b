package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service *invoices.Service
}

func NewInvoiceHandler(s *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// List serves one page of the invoices table plus the page count.
func (h *InvoiceHandler) List(c *gin.Context) {
	p := readListParams(c)
	ctx := c.Request.Context()

	totalPages, err := h.service.FetchInvoicesPages(ctx, p.Query)
	if err != nil {
		fetchFailed(c, err)
		return
	}
	rows, err := h.service.FetchFilteredInvoices(ctx, p.Query, p.Page, p.SortBy, p.SortDir)
	if err != nil {
		fetchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices":   rows,
		"totalPages": totalPages,
	})
}

// Get returns the invoice as the edit form expects it, amount in dollars.
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, found, err := h.service.FetchInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fetchFailed(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		badForm(c)
		return
	}
	respond(c, h.service.CreateInvoice(c.Request.Context(), form))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		badForm(c)
		return
	}
	respond(c, h.service.UpdateInvoice(c.Request.Context(), c.Param("id"), form))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	respond(c, h.service.DeleteInvoice(c.Request.Context(), c.Param("id")))
}
