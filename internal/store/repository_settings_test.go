package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomwalk/hrm-client/internal/logger"
)

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewSettingsRepository(&DB{DB: db, logger: l}, l).(*settingsRepository)
	return repo, mock, db
}

func TestSettingsGet_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("tok1")
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(KeyUserToken).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), KeyUserToken)
	require.NoError(t, err)
	assert.Equal(t, "tok1", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsGet_NotFound(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(KeyUserPin).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), KeyUserPin)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsGet_QueryError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(KeyProfile).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), KeyProfile)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSettingsSet_Upsert(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(KeyUserPin, "4321").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), KeyUserPin, "4321")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsSet_ReplacesPreviousValue(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	// A new PIN fully replaces the old one via the upsert conflict clause.
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(KeyUserPin, "1111").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(KeyUserPin, "2222").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), KeyUserPin, "1111"))
	require.NoError(t, repo.Set(context.Background(), KeyUserPin, "2222"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsDelete(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM settings").
		WithArgs(KeyUserToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), KeyUserToken)
	require.NoError(t, err)
}

func TestSettingsDeleteAll(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM settings").
		WillReturnResult(sqlmock.NewResult(0, 9))

	err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
}
