package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/docport/internal/common"
	"github.com/dmitrijs2005/docport/internal/dbx"
	"github.com/dmitrijs2005/docport/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByCountryAndType reads a single record. Whether (country, document_type)
// is unique is not guaranteed by this service; if several rows match, the
// first one wins.
func (r *PostgresRepository) GetByCountryAndType(ctx context.Context, country, documentType string) (*models.DocumentDetail, error) {
	query :=
		`SELECT id, country, document_type, name, description FROM document_details
		 WHERE country = $1 AND document_type = $2
		 `

	doc := &models.DocumentDetail{}
	err := r.db.QueryRowContext(ctx, query, country, documentType).
		Scan(&doc.ID, &doc.Country, &doc.DocumentType, &doc.Name, &doc.Description)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}
