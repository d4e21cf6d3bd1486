package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockTransactionRepository creates a GormTransactionRepository with a mocked SQL connection
func newMockTransactionRepository(t *testing.T) (*GormTransactionRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTransactionRepository(gormDB), mock, mockDB
}

func transactionRows(id, userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "category", "description", "merchant", "occurred_on", "recurring"}).
		AddRow(id, userID, "expense", decimal.NewFromInt(42), "groceries", "Weekly shop", "Corner Market", time.Now(), false)
}

func TestNewGormTransactionRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormTransactionRepository_FindByIDForUser(t *testing.T) {
	t.Run("finds existing transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		txID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(userID, txID, 1).
			WillReturnRows(transactionRows(txID, userID))

		tx, err := repo.FindByIDForUser(context.Background(), userID, txID)

		assert.NoError(t, err)
		assert.NotNil(t, tx)
		assert.Equal(t, txID, tx.ID)
		assert.Equal(t, financial.TransactionTypeExpense, tx.Type)
		assert.Equal(t, "groceries", tx.Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		txID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(userID, txID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		tx, err := repo.FindByIDForUser(context.Background(), userID, txID)

		assert.Error(t, err)
		assert.Nil(t, tx)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_FindInRange(t *testing.T) {
	t.Run("finds transactions within range ordered by date", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 AND occurred_on >= \$2 AND occurred_on < \$3 ORDER BY occurred_on ASC`).
			WithArgs(userID, from, to).
			WillReturnRows(transactionRows(uuid.New(), userID))

		txs, err := repo.FindInRange(context.Background(), userID, from, to)

		assert.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_FindByCategoryInRange(t *testing.T) {
	t.Run("filters by category", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 AND category = \$2 AND occurred_on >= \$3 AND occurred_on < \$4 ORDER BY occurred_on ASC`).
			WithArgs(userID, "groceries", from, to).
			WillReturnRows(transactionRows(uuid.New(), userID))

		txs, err := repo.FindByCategoryInRange(context.Background(), userID, "groceries", from, to)

		assert.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_Save(t *testing.T) {
	t.Run("saves transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		tx, err := financial.NewTransaction(userID, financial.TransactionTypeExpense, decimal.NewFromInt(42), "groceries", "Weekly shop", "Corner Market", time.Now())
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "transactions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), tx)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_DeleteForUser(t *testing.T) {
	t.Run("deletes owned transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		txID := uuid.New()

		mock.ExpectExec(`DELETE FROM "transactions" WHERE user_id = \$1 AND id = \$2`).
			WithArgs(userID, txID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteForUser(context.Background(), userID, txID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		txID := uuid.New()

		mock.ExpectExec(`DELETE FROM "transactions" WHERE user_id = \$1 AND id = \$2`).
			WithArgs(userID, txID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForUser(context.Background(), userID, txID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_CountForUser(t *testing.T) {
	t.Run("counts transactions", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountForUser(context.Background(), userID, shared.Filter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies search pattern to text columns", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE user_id = \$1 AND \(description ILIKE \$2 OR merchant ILIKE \$3 OR category ILIKE \$4\)`).
			WithArgs(userID, "%coffee%", "%coffee%", "%coffee%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountForUser(context.Background(), userID, shared.Filter{Search: "coffee"})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements TransactionRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		var _ financial.TransactionRepository = repo
	})
}
