// Package documents reads the document_details reference table. There is no
// write path; the table is maintained outside this service.
package documents

import (
	"context"

	"github.com/dmitrijs2005/docport/internal/server/models"
)

type Repository interface {
	// GetByCountryAndType returns the record for an exact (country, type)
	// match, or common.ErrorNotFound.
	GetByCountryAndType(ctx context.Context, country, documentType string) (*models.DocumentDetail, error)
}
