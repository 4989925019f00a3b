package repository

import (
	"context"
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/sorting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invoiceSearch = `customers.name ILIKE @q OR
	customers.email ILIKE @q OR
	invoices.amount::text ILIKE @q OR
	invoices.date::text ILIKE @q OR
	invoices.status ILIKE @q`

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceRow is an invoice joined with its customer, amount in cents.
type InvoiceRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64
	Date       time.Time
	Status     string
	Name       string
	Email      string
	ImageURL   string
}

// LatestInvoiceRow is a dashboard card entry, amount in cents.
type LatestInvoiceRow struct {
	ID       uuid.UUID
	Amount   int64
	Name     string
	Email    string
	ImageURL string
}

func (r *InvoiceRepository) filtered(ctx context.Context, query string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices").
		Joins("JOIN customers ON invoices.customer_id = customers.id").
		Where(invoiceSearch, map[string]interface{}{"q": containsPattern(query)})
}

// CountFiltered counts invoices matching query on customer, amount, date or status.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	var count int64
	if err := r.filtered(ctx, query).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// FindFiltered returns one page of invoices joined with their customers.
func (r *InvoiceRepository) FindFiltered(ctx context.Context, query string, page int, sort sorting.Sort) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := r.filtered(ctx, query).
		Select(`invoices.id, invoices.customer_id, invoices.amount, invoices.date, invoices.status,
			customers.name, customers.email, customers.image_url`).
		Order(sorting.Invoices.OrderBy(sort)).
		Limit(ItemsPerPage).
		Offset(Offset(page)).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select invoices table: %w", err)
	}
	return rows, nil
}

// FindLatest returns the most recent invoices by date.
func (r *InvoiceRepository) FindLatest(ctx context.Context) ([]LatestInvoiceRow, error) {
	var rows []LatestInvoiceRow
	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.id, invoices.amount, customers.name, customers.email, customers.image_url").
		Joins("JOIN customers ON invoices.customer_id = customers.id").
		Order("invoices.date DESC").
		Limit(LatestInvoicesLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select latest invoices: %w", err)
	}
	return rows, nil
}

// GetByID returns the invoice and whether it exists.
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, bool, error) {
	var invoice models.Invoice
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&invoice)
	if res.Error != nil {
		return nil, false, fmt.Errorf("select invoice %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &invoice, true, nil
}

// Create inserts the invoice; the database assigns its id.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update rewrites customer, amount and status. The date is never touched.
func (r *InvoiceRepository) Update(ctx context.Context, id, customerID uuid.UUID, amount int64, status string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		}).Error
	if err != nil {
		return fmt.Errorf("update invoice %s: %w", id, err)
	}
	return nil
}

// Delete removes the invoice. A missing id is not an error.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
		return fmt.Errorf("delete invoice %s: %w", id, err)
	}
	return nil
}
