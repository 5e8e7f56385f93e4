package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PostgresStore{db: db}, mock
}

func TestPostgresStore_Load(t *testing.T) {
	s, mock := newSQLMockStore(t)

	want := []byte(`[{"id":1}]`)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM collections WHERE name = $1`)).
		WithArgs(CollectionProjects).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(want))

	got, err := s.Load(context.Background(), CollectionProjects)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Load_MissingCollection(t *testing.T) {
	s, mock := newSQLMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM collections WHERE name = $1`)).
		WithArgs(CollectionUsers).
		WillReturnError(sql.ErrNoRows)

	got, err := s.Load(context.Background(), CollectionUsers)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostgresStore_Save_Upserts(t *testing.T) {
	s, mock := newSQLMockStore(t)

	data := []byte(`[{"id":1,"email":"a@x.com"}]`)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO collections`)).
		WithArgs(CollectionUsers, data).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Save(context.Background(), CollectionUsers, data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save_PropagatesError(t *testing.T) {
	s, mock := newSQLMockStore(t)

	dbErr := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO collections`)).
		WithArgs(CollectionUsers, []byte(`[]`)).
		WillReturnError(dbErr)

	err := s.Save(context.Background(), CollectionUsers, []byte(`[]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestPostgresStore_RunMigrations_UsesSeam(t *testing.T) {
	s, _ := newSQLMockStore(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		assert.Equal(t, ".", dir)
		return nil
	}

	require.NoError(t, s.runMigrations(context.Background()))
	assert.True(t, called)
}
