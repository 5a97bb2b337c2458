package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
)

func newMockRepo(t *testing.T) (*ClientGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewClientGormRepository(db), mock
}

func TestDeleteByID_PostgresForeignKeyViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "tb_client"`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			Message:        `update or delete on table "tb_client" violates foreign key constraint`,
			ConstraintName: "fk_contracts_client",
		})

	err := repo.DeleteByID(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrIntegrityViolation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByID_PostgresOtherErrorPassesThrough(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "tb_client"`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "57014", Message: "canceling statement"})

	err := repo.DeleteByID(context.Background(), 5)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrIntegrityViolation)
	assert.NotErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestExistsByID_Postgres(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "tb_client" WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.ExistsByID(context.Background(), 9)

	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
