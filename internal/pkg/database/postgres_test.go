package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresClient_GetDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "pgx")
	client := &PostgresClient{db: sqlxDB}

	db := client.GetDB()
	assert.NotNil(t, db)
	assert.Equal(t, sqlxDB, db)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	t.Run("closes the connection", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)

		mock.ExpectClose()

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}

		err = client.Close()
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates close errors", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)

		mock.ExpectClose().WillReturnError(sql.ErrConnDone)

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}

		err = client.Close()
		assert.Error(t, err)
		assert.Equal(t, sql.ErrConnDone, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresClient_Transactions(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	client := &PostgresClient{db: sqlx.NewDb(mockDB, "pgx")}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tracks").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := client.GetDB().Beginx()
	require.NoError(t, err)

	_, err = tx.Exec("INSERT INTO tracks (track_key) VALUES ($1)", "collar-7")
	require.NoError(t, err)

	err = tx.Commit()
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
