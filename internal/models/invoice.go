package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customerId"`
	Amount     int64          `gorm:"type:integer;not null" json:"amount"`
	Status     string         `gorm:"type:varchar(255);not null;index" json:"status"`
	Date       datatypes.Date `gorm:"not null;index" json:"date"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceForm pre-populates the edit form. Amount is in dollars.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// InvoicesTableRow is one row of the invoices list, already formatted for display.
type InvoicesTableRow struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Amount     string    `json:"amount"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"imageUrl"`
}

type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"imageUrl"`
	Amount   string    `json:"amount"`
}
