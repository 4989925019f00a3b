package revenue

import (
	"context"
	"log/slog"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/result"
)

type Service struct {
	repo   *repository.RevenueRepository
	logger *slog.Logger
}

func NewService(repo *repository.RevenueRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger.With("service", "revenue")}
}

// FetchRevenue reads the monthly revenue table unfiltered.
func (s *Service) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Database Error", "op", "fetch revenue", "error", err)
		return nil, result.NewFetchError("revenue data")
	}
	return rows, nil
}
