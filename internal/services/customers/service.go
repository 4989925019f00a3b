package customers

import (
	"context"
	"log/slog"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/result"
	"invoice-dashboard-backend/internal/sorting"
	"invoice-dashboard-backend/internal/viewcache"

	"github.com/google/uuid"
)

// Service is the read and write side of the customers pages. Reads always go
// to the database; nothing is cached here.
type Service struct {
	repo   *repository.CustomerRepository
	views  viewcache.Invalidator
	logger *slog.Logger
}

func NewService(repo *repository.CustomerRepository, views viewcache.Invalidator, logger *slog.Logger) *Service {
	if views == nil {
		views = viewcache.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, views: views, logger: logger.With("service", "customers")}
}

func (s *Service) fetchFailed(op, what string, err error) error {
	s.logger.Error("Database Error", "op", op, "error", err)
	return result.NewFetchError(what)
}

// FetchCustomers lists id and name of every customer, by name.
func (s *Service) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	fields, err := s.repo.FindFields(ctx)
	if err != nil {
		return nil, s.fetchFailed("fetch customers", "all customers", err)
	}
	return fields, nil
}

// FetchCustomersPages returns how many pages the filtered customers table has.
func (s *Service) FetchCustomersPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, s.fetchFailed("fetch customers pages", "total number of customers", err)
	}
	return repository.TotalPages(count), nil
}

// FetchFilteredCustomers returns one page of the customers table. Unknown
// sort values fall back to name ascending.
func (s *Service) FetchFilteredCustomers(ctx context.Context, query string, page int, sortColumn, sortDirection string) ([]models.CustomersTableRow, error) {
	sort := sorting.Customers.Resolve(sortColumn, sortDirection)
	rows, err := s.repo.FindFiltered(ctx, query, page, sort)
	if err != nil {
		return nil, s.fetchFailed("fetch filtered customers", "customer table", err)
	}

	table := make([]models.CustomersTableRow, 0, len(rows))
	for _, r := range rows {
		table = append(table, models.CustomersTableRow{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			ImageURL:      r.ImageURL,
			TotalInvoices: r.TotalInvoices,
			TotalPending:  money.FormatCurrency(r.TotalPending),
			TotalPaid:     money.FormatCurrency(r.TotalPaid),
		})
	}
	return table, nil
}

// FetchCustomerByID returns the customer, or false when there is none. A
// malformed id cannot match a row and is reported as not found.
func (s *Service) FetchCustomerByID(ctx context.Context, id string) (*models.Customer, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}
	customer, found, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, false, s.fetchFailed("fetch customer by id", "the customer (id: "+id+")", err)
	}
	return customer, found, nil
}
