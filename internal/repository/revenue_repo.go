package repository

import (
	"context"
	"fmt"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// GetAll reads the whole revenue table.
func (r *RevenueRepository) GetAll(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	if err := r.db.WithContext(ctx).Find(&revenue).Error; err != nil {
		return nil, fmt.Errorf("select revenue: %w", err)
	}
	return revenue, nil
}
