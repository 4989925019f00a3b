package repository

import (
	"context"
	"fmt"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/sorting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const customerSearch = "customers.name ILIKE @q OR customers.email ILIKE @q"

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerTotalsRow is a customer with raw invoice aggregates in cents.
type CustomerTotalsRow struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

// FindFields lists every customer's id and name, ordered by name.
func (r *CustomerRepository) FindFields(ctx context.Context) ([]models.CustomerField, error) {
	var fields []models.CustomerField
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&fields).Error
	if err != nil {
		return nil, fmt.Errorf("select customer fields: %w", err)
	}
	return fields, nil
}

// CountFiltered counts customers whose name or email contains query.
func (r *CustomerRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where(customerSearch, map[string]interface{}{"q": containsPattern(query)}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// FindFiltered returns one page of customers with their invoice totals.
func (r *CustomerRepository) FindFiltered(ctx context.Context, query string, page int, sort sorting.Sort) ([]CustomerTotalsRow, error) {
	var rows []CustomerTotalsRow
	err := r.db.WithContext(ctx).
		Table("customers").
		Select(`customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0)::bigint AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0)::bigint AS total_paid`).
		Joins("LEFT JOIN invoices ON customers.id = invoices.customer_id").
		Where(customerSearch, map[string]interface{}{"q": containsPattern(query)}).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order(sorting.Customers.OrderBy(sort)).
		Limit(ItemsPerPage).
		Offset(Offset(page)).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select customers table: %w", err)
	}
	return rows, nil
}

// GetByID returns the customer and whether it exists.
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, bool, error) {
	var customer models.Customer
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&customer)
	if res.Error != nil {
		return nil, false, fmt.Errorf("select customer %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &customer, true, nil
}

// Create inserts the customer; the database assigns its id.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update sets name and email. The image is not editable.
func (r *CustomerRepository) Update(ctx context.Context, id uuid.UUID, name, email string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "email": email}).Error
	if err != nil {
		return fmt.Errorf("update customer %s: %w", id, err)
	}
	return nil
}

// Delete removes the customer. A missing id is not an error.
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{}).Error; err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}
