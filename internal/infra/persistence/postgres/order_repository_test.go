package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB opens a GORM handle over an sqlmock connection so repository
// queries can be asserted without a live PostgreSQL.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func orderColumns() []string {
	return []string{
		"id", "customer_id", "product_id", "full_name", "email",
		"address", "payment_method", "amount", "created_at",
	}
}

// Order history is served newest first; the sort lives in the SQL, not in Go.
func TestOrderRepository_ListByCustomer_SortsNewestFirstInSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	customerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE customer_id = \$1 ORDER BY created_at DESC`).
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	orders, err := repo.ListByCustomer(context.Background(), customerID)

	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListByCustomer_PreservesRowOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	customerID := uuid.New()
	productID := uuid.New()
	newerID := uuid.New()
	olderID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(orderColumns()).
		AddRow(newerID, customerID, productID, "Asha Rao", "asha@example.com",
			"12 MG Road", "UPI", "2999.00", now).
		AddRow(olderID, customerID, productID, "Asha Rao", "asha@example.com",
			"12 MG Road", "COD", "999.00", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE customer_id = \$1 ORDER BY created_at DESC`).
		WithArgs(customerID).
		WillReturnRows(rows)

	// Product rows are irrelevant here; an empty preload leaves the
	// association nil without failing the listing.
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	orders, err := repo.ListByCustomer(context.Background(), customerID)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newerID, orders[0].ID)
	assert.Equal(t, olderID, orders[1].ID)
	assert.True(t, orders[0].Amount.Equal(decimal.RequireFromString("2999.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The owner filter is part of the lookup itself: someone else's order is
// indistinguishable from a missing one.
func TestOrderRepository_FindByIDForCustomer_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	orderID := uuid.New()
	strangerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND customer_id = \$2`).
		WithArgs(orderID, strangerID, 1).
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	_, err := repo.FindByIDForCustomer(context.Background(), orderID, strangerID)

	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
