package customers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"

	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/result"
	"invoice-dashboard-backend/internal/testutils"
	"invoice-dashboard-backend/internal/validation"
	"invoice-dashboard-backend/internal/viewcache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingViews struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (r *recordingViews) Invalidate(_ context.Context, views ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, views)
	return r.err
}

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, *recordingViews) {
	t.Helper()
	db, mock := testutils.NewMockDB(t)
	views := &recordingViews{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repository.NewCustomerRepository(db), views, logger), mock, views
}

func validCustomerForm() validation.Values {
	return validation.Values{
		"name":      "Jane Doe",
		"email":     "jane@example.com",
		"image_url": "/customers/jane.png",
	}
}

func TestFetchFilteredCustomers_FormatsTotals(t *testing.T) {
	svc, mock, _ := newTestService(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM "customers" LEFT JOIN invoices`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid"}).
			AddRow(id.String(), "Jane Doe", "jane@example.com", "/customers/jane.png", 2, 123456, 0))

	rows, err := svc.FetchFilteredCustomers(context.Background(), "jane", 1, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].TotalInvoices)
	assert.Equal(t, "$1,234.56", rows[0].TotalPending)
	assert.Equal(t, "$0.00", rows[0].TotalPaid)
}

func TestFetchCustomersPages(t *testing.T) {
	svc, mock, _ := newTestService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	pages, err := svc.FetchCustomersPages(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	pages, err = svc.FetchCustomersPages(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, pages)
}

func TestFetchErrorsHideStorageDetail(t *testing.T) {
	svc, mock, _ := newTestService(t)

	mock.ExpectQuery(`SELECT id, name FROM "customers"`).
		WillReturnError(errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	_, err := svc.FetchCustomers(context.Background())
	require.Error(t, err)

	var fetchErr *result.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Failed to fetch all customers.", err.Error())
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestFetchCustomerByID(t *testing.T) {
	svc, mock, _ := newTestService(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "image_url"}).
			AddRow(id.String(), "Jane Doe", "jane@example.com", "/customers/jane.png"))

	customer, found, err := svc.FetchCustomerByID(context.Background(), id.String())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Jane Doe", customer.Name)

	// Malformed ids never reach the database.
	customer, found, err = svc.FetchCustomerByID(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, customer)
}

func TestCreateCustomer(t *testing.T) {
	t.Run("redirects and invalidates on success", func(t *testing.T) {
		svc, mock, views := newTestService(t)
		mock.ExpectQuery(`INSERT INTO "customers"`).
			WithArgs("Jane Doe", "jane@example.com", "/customers/jane.png").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

		outcome := svc.CreateCustomer(context.Background(), validCustomerForm())
		assert.Equal(t, result.Redirect{To: viewcache.Customers}, outcome)
		require.Len(t, views.calls, 1)
		assert.ElementsMatch(t, []string{viewcache.Customers, viewcache.Invoices, viewcache.Dashboard}, views.calls[0])
	})

	t.Run("invalid form never touches storage", func(t *testing.T) {
		svc, _, views := newTestService(t)

		outcome := svc.CreateCustomer(context.Background(), validation.Values{"email": "nope"})
		invalid, ok := outcome.(result.Invalid)
		require.True(t, ok)
		assert.Equal(t, "Missing Fields. Failed to Create Customer.", invalid.Message)
		assert.Contains(t, invalid.Errors, "name")
		assert.Contains(t, invalid.Errors, "email")
		assert.Contains(t, invalid.Errors, "imageUrl")
		assert.Empty(t, views.calls)
	})

	t.Run("storage failure is generic", func(t *testing.T) {
		svc, mock, views := newTestService(t)
		mock.ExpectQuery(`INSERT INTO "customers"`).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		outcome := svc.CreateCustomer(context.Background(), validCustomerForm())
		assert.Equal(t, result.Failed{Message: "Database Error: Failed to Create Customer."}, outcome)
		assert.Empty(t, views.calls)
	})

	t.Run("invalidation failure keeps the write", func(t *testing.T) {
		svc, mock, views := newTestService(t)
		views.err = errors.New("redis down")
		mock.ExpectQuery(`INSERT INTO "customers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

		outcome := svc.CreateCustomer(context.Background(), validCustomerForm())
		assert.Equal(t, result.Redirect{To: viewcache.Customers}, outcome)
	})
}

func TestUpdateCustomer(t *testing.T) {
	svc, mock, views := newTestService(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "customers" SET "email"=$1,"name"=$2 WHERE id = $3`)).
		WithArgs("new@example.com", "Jane Roe", id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	outcome := svc.UpdateCustomer(context.Background(), id.String(), validation.Values{
		"name":  " Jane Roe ",
		"email": "new@example.com",
	})
	assert.Equal(t, result.Redirect{To: viewcache.Customers}, outcome)
	assert.Len(t, views.calls, 1)

	outcome = svc.UpdateCustomer(context.Background(), id.String(), validation.Values{"name": "Jane"})
	invalid, ok := outcome.(result.Invalid)
	require.True(t, ok)
	assert.Equal(t, "Missing Fields. Failed to Update Customer.", invalid.Message)
	assert.Equal(t, []string{"Please enter an email address."}, invalid.Errors["email"])
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("malformed id is a no-op", func(t *testing.T) {
		svc, _, views := newTestService(t)
		assert.Equal(t, result.Completed{}, svc.DeleteCustomer(context.Background(), "42"))
		assert.Empty(t, views.calls)
	})

	t.Run("missing id still completes", func(t *testing.T) {
		svc, mock, views := newTestService(t)
		mock.ExpectExec(`DELETE FROM "customers"`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, result.Completed{}, svc.DeleteCustomer(context.Background(), uuid.NewString()))
		assert.Len(t, views.calls, 1)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, mock, _ := newTestService(t)
		mock.ExpectExec(`DELETE FROM "customers"`).WillReturnError(errors.New("boom"))

		outcome := svc.DeleteCustomer(context.Background(), uuid.NewString())
		assert.Equal(t, result.Failed{Message: "Database Error: Failed to Delete Customer."}, outcome)
	})
}
