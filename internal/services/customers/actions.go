package customers

import (
	"context"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/services/result"
	"invoice-dashboard-backend/internal/validation"
	"invoice-dashboard-backend/internal/viewcache"

	"github.com/google/uuid"
)

// Customer names appear on the invoices table and totals on the dashboard.
var affectedViews = []string{viewcache.Customers, viewcache.Invoices, viewcache.Dashboard}

// CreateCustomer validates the form, inserts the customer and redirects to
// the customers list.
func (s *Service) CreateCustomer(ctx context.Context, form validation.Form) result.Outcome {
	in, fail := validation.ValidateCreateCustomer(form)
	if fail != nil {
		s.logger.Debug("create customer rejected", "errors", fail.Errors)
		return result.FromFailure(fail)
	}

	customer := &models.Customer{Name: in.Name, Email: in.Email, ImageURL: in.ImageURL}
	if err := s.repo.Create(ctx, customer); err != nil {
		s.logger.Error("Database Error", "op", "create customer", "error", err)
		return result.Failed{Message: "Database Error: Failed to Create Customer."}
	}
	s.logger.Info("customer created", "id", customer.ID)

	s.invalidate(ctx)
	return result.Redirect{To: viewcache.Customers}
}

// UpdateCustomer validates the form and rewrites name and email. Last write wins.
func (s *Service) UpdateCustomer(ctx context.Context, id string, form validation.Form) result.Outcome {
	up, fail := validation.ValidateUpdateCustomer(id, form)
	if fail != nil {
		s.logger.Debug("update customer rejected", "id", id, "errors", fail.Errors)
		return result.FromFailure(fail)
	}

	if err := s.repo.Update(ctx, up.ID, up.Name, up.Email); err != nil {
		s.logger.Error("Database Error", "op", "update customer", "id", up.ID, "error", err)
		return result.Failed{Message: "Database Error: Failed to Update Customer."}
	}

	s.invalidate(ctx)
	return result.Redirect{To: viewcache.Customers}
}

// DeleteCustomer removes the customer. Deleting an id that does not exist,
// or could not exist, succeeds without touching storage state.
func (s *Service) DeleteCustomer(ctx context.Context, id string) result.Outcome {
	uid, err := uuid.Parse(id)
	if err != nil {
		return result.Completed{}
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		s.logger.Error("Database Error", "op", "delete customer", "id", uid, "error", err)
		return result.Failed{Message: "Database Error: Failed to Delete Customer."}
	}

	s.invalidate(ctx)
	return result.Completed{}
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.views.Invalidate(ctx, affectedViews...); err != nil {
		s.logger.Warn("view invalidation failed", "views", affectedViews, "error", err)
	}
}
