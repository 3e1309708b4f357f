package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/docport/internal/common"
	"github.com/dmitrijs2005/docport/internal/server/models"
	"github.com/dmitrijs2005/docport/internal/server/repositories/documents"
)

// DocumentService answers exact-match lookups against the document_details
// reference table.
type DocumentService struct {
	documents documents.Repository
}

func NewDocumentService(r documents.Repository) *DocumentService {
	return &DocumentService{documents: r}
}

// Get returns the record for (country, documentType) or
// common.ErrorNotFound.
func (s *DocumentService) Get(ctx context.Context, country, documentType string) (*models.DocumentDetail, error) {
	doc, err := s.documents.GetByCountryAndType(ctx, country, documentType)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error looking up document: %w", err)
	}
	return doc, nil
}
