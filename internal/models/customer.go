package models

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Email    string    `gorm:"type:varchar(255);not null" json:"email"`
	ImageURL string    `gorm:"column:image_url;type:varchar(255);not null" json:"imageUrl"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerField feeds selection inputs such as the invoice customer picker.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomersTableRow is a customer with invoice totals. Totals are display strings.
type CustomersTableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"imageUrl"`
	TotalInvoices int64     `json:"totalInvoices"`
	TotalPending  string    `json:"totalPending"`
	TotalPaid     string    `json:"totalPaid"`
}
