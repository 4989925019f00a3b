// Package testutils wires gorm to go-sqlmock for package tests.
package testutils

import (
	"testing"

	"invoice-dashboard-backend/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewMockDB returns a gorm handle over sqlmock configured like production.
// Unmet expectations fail the test at cleanup.
func NewMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, config.GormConfig("silent"))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = mockDb.Close()
	})
	return db, mock
}
