package revenue

import (
	"context"
	"errors"
	"testing"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRevenue(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	svc := NewService(repository.NewRevenueRepository(db), nil)

	mock.ExpectQuery(`SELECT \* FROM "revenue"`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).AddRow("Jan", 2000).AddRow("Feb", 1800))

	rows, err := svc.FetchRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}, rows)
}

func TestFetchRevenueError(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	svc := NewService(repository.NewRevenueRepository(db), nil)

	mock.ExpectQuery(`SELECT \* FROM "revenue"`).WillReturnError(errors.New("relation does not exist"))

	rows, err := svc.FetchRevenue(context.Background())
	assert.Nil(t, rows)
	assert.EqualError(t, err, "Failed to fetch revenue data.")
}
