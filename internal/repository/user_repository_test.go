package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/credit-score-service/internal/domain"
)

var userCols = []string{"id", "username", "password_hash", "name", "age", "salary", "created_at", "updated_at"}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "jamie", "hash", "Jamie", 25, 15000.0).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	user := &domain.User{
		Username:     "jamie",
		PasswordHash: "hash",
		Name:         "Jamie",
		Age:          25,
		Salary:       15000,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username=$1")).
		WithArgs("jamie").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("user-1", "jamie", "hash", "Jamie", 25, 15000.0, now, now))

	user, err := repo.GetByUsername(context.Background(), "jamie")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNoRows(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id=$1")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReturnsRemovedUser(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM users WHERE id=$1 RETURNING")).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("user-1", "jamie", "hash", "Jamie", 25, 15000.0, now, now))

	user, err := repo.Delete(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "jamie", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at")).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("user-1", "jamie", "hash", "Jamie", 25, 15000.0, now, now).
			AddRow("user-2", "alex", "hash2", "Alex", 40, 8000.0, now, now))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alex", users[1].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
		WithArgs("jamie", "hash2", "Jamie", 26, 16000.0, "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

	user := &domain.User{
		ID:           "user-1",
		Username:     "jamie",
		PasswordHash: "hash2",
		Name:         "Jamie",
		Age:          26,
		Salary:       16000,
	}
	require.NoError(t, repo.Update(context.Background(), user))
	assert.Equal(t, now, user.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
