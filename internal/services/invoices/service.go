package invoices

import (
	"context"
	"log/slog"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/result"
	"invoice-dashboard-backend/internal/sorting"
	"invoice-dashboard-backend/internal/viewcache"

	"github.com/google/uuid"
)

// DisplayDateLayout renders invoice dates the way the dashboard shows them.
const DisplayDateLayout = "Jan 2, 2006"

// Service is the read and write side of the invoices pages.
type Service struct {
	repo   *repository.InvoiceRepository
	views  viewcache.Invalidator
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo *repository.InvoiceRepository, views viewcache.Invalidator, logger *slog.Logger) *Service {
	if views == nil {
		views = viewcache.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		views:  views,
		logger: logger.With("service", "invoices"),
		now:    time.Now,
	}
}

func (s *Service) fetchFailed(op, what string, err error) error {
	s.logger.Error("Database Error", "op", op, "error", err)
	return result.NewFetchError(what)
}

// FetchLatestInvoices returns the five most recent invoices.
func (s *Service) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	rows, err := s.repo.FindLatest(ctx)
	if err != nil {
		return nil, s.fetchFailed("fetch latest invoices", "the latest invoices", err)
	}

	latest := make([]models.LatestInvoice, 0, len(rows))
	for _, r := range rows {
		latest = append(latest, models.LatestInvoice{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
			Amount:   money.FormatCurrency(r.Amount),
		})
	}
	return latest, nil
}

// FetchFilteredInvoices returns one page of the invoices table. Unknown sort
// values fall back to date descending.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int, sortColumn, sortDirection string) ([]models.InvoicesTableRow, error) {
	sort := sorting.Invoices.Resolve(sortColumn, sortDirection)
	rows, err := s.repo.FindFiltered(ctx, query, page, sort)
	if err != nil {
		return nil, s.fetchFailed("fetch filtered invoices", "invoices", err)
	}

	table := make([]models.InvoicesTableRow, 0, len(rows))
	for _, r := range rows {
		table = append(table, models.InvoicesTableRow{
			ID:         r.ID,
			CustomerID: r.CustomerID,
			Amount:     money.FormatCurrency(r.Amount),
			Date:       r.Date.UTC().Format(DisplayDateLayout),
			Status:     r.Status,
			Name:       r.Name,
			Email:      r.Email,
			ImageURL:   r.ImageURL,
		})
	}
	return table, nil
}

// FetchInvoicesPages returns how many pages the filtered invoices table has.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, s.fetchFailed("fetch invoices pages", "total number of invoices", err)
	}
	return repository.TotalPages(count), nil
}

// FetchInvoiceByID returns the invoice for the edit form with the amount in
// dollars, or false when there is none.
func (s *Service) FetchInvoiceByID(ctx context.Context, id string) (*models.InvoiceForm, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false, nil
	}
	invoice, found, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, false, s.fetchFailed("fetch invoice by id", "the invoice (id: "+id+")", err)
	}
	if !found {
		return nil, false, nil
	}
	return &models.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     money.ToMajorUnits(invoice.Amount),
		Status:     invoice.Status,
	}, true, nil
}
