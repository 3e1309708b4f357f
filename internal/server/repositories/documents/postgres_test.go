package documents

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/docport/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const getQuery = `(?s)^SELECT\s+id,\s*country,\s*document_type,\s*name,\s*description\s+FROM\s+document_details\s+WHERE\s+country\s*=\s*\$1\s+AND\s+document_type\s*=\s*\$2\s*$`

func TestGetByCountryAndType_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "country", "document_type", "name", "description"}).
		AddRow("d-1", "US", "passport", "US Passport", "Valid passport book")
	mock.ExpectQuery(getQuery).
		WithArgs("US", "passport").
		WillReturnRows(rows)

	got, err := repo.GetByCountryAndType(context.Background(), "US", "passport")
	if err != nil {
		t.Fatalf("GetByCountryAndType error: %v", err)
	}
	if got.ID != "d-1" || got.Country != "US" || got.DocumentType != "passport" {
		t.Fatalf("unexpected document: %+v", got)
	}
}

func TestGetByCountryAndType_FirstRowWins(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// Nothing guarantees (country, document_type) is unique in the table;
	// the repository reads a single row and ignores the rest.
	rows := sqlmock.NewRows([]string{"id", "country", "document_type", "name", "description"}).
		AddRow("d-1", "US", "passport", "US Passport", "first").
		AddRow("d-2", "US", "passport", "US Passport", "second")
	mock.ExpectQuery(getQuery).
		WithArgs("US", "passport").
		WillReturnRows(rows)

	got, err := repo.GetByCountryAndType(context.Background(), "US", "passport")
	if err != nil {
		t.Fatalf("GetByCountryAndType error: %v", err)
	}
	if got.ID != "d-1" {
		t.Fatalf("expected first row, got %+v", got)
	}
}

func TestGetByCountryAndType_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).
		WithArgs("US", "passport").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByCountryAndType(context.Background(), "US", "passport")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByCountryAndType_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).
		WithArgs("US", "passport").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByCountryAndType(context.Background(), "US", "passport")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
