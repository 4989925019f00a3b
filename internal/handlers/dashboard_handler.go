package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/services/revenue"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	revenue  *revenue.Service
	invoices *invoices.Service
}

func NewDashboardHandler(r *revenue.Service, i *invoices.Service) *DashboardHandler {
	return &DashboardHandler{revenue: r, invoices: i}
}

// Overview serves the revenue chart and the latest invoices card.
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	rev, err := h.revenue.FetchRevenue(ctx)
	if err != nil {
		fetchFailed(c, err)
		return
	}
	latest, err := h.invoices.FetchLatestInvoices(ctx)
	if err != nil {
		fetchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revenue":        rev,
		"latestInvoices": latest,
	})
}
