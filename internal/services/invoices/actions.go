package invoices

import (
	"context"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
	"invoice-dashboard-backend/internal/services/result"
	"invoice-dashboard-backend/internal/validation"
	"invoice-dashboard-backend/internal/viewcache"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Invoice amounts feed the customers totals and the dashboard cards.
var affectedViews = []string{viewcache.Invoices, viewcache.Customers, viewcache.Dashboard}

// CreateInvoice validates the form, stores the amount in cents stamped with
// today's date, and redirects to the invoices list.
func (s *Service) CreateInvoice(ctx context.Context, form validation.Form) result.Outcome {
	in, fail := validation.ValidateCreateInvoice(form)
	if fail != nil {
		s.logger.Debug("create invoice rejected", "errors", fail.Errors)
		return result.FromFailure(fail)
	}

	invoice := &models.Invoice{
		CustomerID: in.CustomerID,
		Amount:     money.ToMinorUnits(in.Amount),
		Status:     in.Status,
		Date:       s.today(),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		s.logger.Error("Database Error", "op", "create invoice", "error", err)
		return result.Failed{Message: "Database Error: Failed to Create Invoice."}
	}
	s.logger.Info("invoice created", "id", invoice.ID, "amount", invoice.Amount)

	s.invalidate(ctx)
	return result.Redirect{To: viewcache.Invoices}
}

// UpdateInvoice rewrites customer, amount and status. The creation date stays.
func (s *Service) UpdateInvoice(ctx context.Context, id string, form validation.Form) result.Outcome {
	up, fail := validation.ValidateUpdateInvoice(id, form)
	if fail != nil {
		s.logger.Debug("update invoice rejected", "id", id, "errors", fail.Errors)
		return result.FromFailure(fail)
	}

	if err := s.repo.Update(ctx, up.ID, up.CustomerID, money.ToMinorUnits(up.Amount), up.Status); err != nil {
		s.logger.Error("Database Error", "op", "update invoice", "id", up.ID, "error", err)
		return result.Failed{Message: "Database Error: Failed to Update Invoice."}
	}

	s.invalidate(ctx)
	return result.Redirect{To: viewcache.Invoices}
}

// DeleteInvoice removes the invoice. Unknown ids succeed as a no-op.
func (s *Service) DeleteInvoice(ctx context.Context, id string) result.Outcome {
	uid, err := uuid.Parse(id)
	if err != nil {
		return result.Completed{}
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		s.logger.Error("Database Error", "op", "delete invoice", "id", uid, "error", err)
		return result.Failed{Message: "Database Error: Failed to Delete Invoice."}
	}

	s.invalidate(ctx)
	return result.Completed{}
}

// today is the current UTC calendar date.
func (s *Service) today() datatypes.Date {
	y, m, d := s.now().UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.views.Invalidate(ctx, affectedViews...); err != nil {
		s.logger.Warn("view invalidation failed", "views", affectedViews, "error", err)
	}
}
