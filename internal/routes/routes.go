package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/customers"
	"invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/services/revenue"
	"invoice-dashboard-backend/internal/viewcache"
)

// Deps is everything the routes need from main.
type Deps struct {
	DB       *gorm.DB
	Views    viewcache.Store
	ViewsTTL time.Duration
	Logger   *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Views == nil {
		d.Views = viewcache.Nop{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	customerRepo := repository.NewCustomerRepository(d.DB)
	invoiceRepo := repository.NewInvoiceRepository(d.DB)
	revenueRepo := repository.NewRevenueRepository(d.DB)

	customerService := customers.NewService(customerRepo, d.Views, d.Logger)
	invoiceService := invoices.NewService(invoiceRepo, d.Views, d.Logger)
	revenueService := revenue.NewService(revenueRepo, d.Logger)

	customerHandler := handler.NewCustomerHandler(customerService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	dashboardHandler := handler.NewDashboardHandler(revenueService, invoiceService)

	cached := func(view string) gin.HandlerFunc {
		return viewcache.Middleware(d.Views, view, d.ViewsTTL, d.Logger)
	}

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET(viewcache.Dashboard, cached(viewcache.Dashboard), dashboardHandler.Overview)

	customerRoutes := r.Group(viewcache.Customers, cached(viewcache.Customers))
	{
		customerRoutes.GET("", customerHandler.List)
		customerRoutes.GET("/options", customerHandler.Options)
		customerRoutes.GET("/:id", customerHandler.Get)
		customerRoutes.POST("", customerHandler.Create)
		customerRoutes.POST("/:id", customerHandler.Update)
		customerRoutes.PUT("/:id", customerHandler.Update)
		customerRoutes.DELETE("/:id", customerHandler.Delete)
	}

	invoiceRoutes := r.Group(viewcache.Invoices, cached(viewcache.Invoices))
	{
		invoiceRoutes.GET("", invoiceHandler.List)
		invoiceRoutes.GET("/:id", invoiceHandler.Get)
		invoiceRoutes.POST("", invoiceHandler.Create)
		invoiceRoutes.POST("/:id", invoiceHandler.Update)
		invoiceRoutes.PUT("/:id", invoiceHandler.Update)
		invoiceRoutes.DELETE("/:id", invoiceHandler.Delete)
	}
}
