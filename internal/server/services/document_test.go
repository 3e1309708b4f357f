package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/docport/internal/common"
	"github.com/dmitrijs2005/docport/internal/server/models"
)

type fakeDocumentsRepo struct {
	out     *models.DocumentDetail
	err     error
	country string
	docType string
}

func (f *fakeDocumentsRepo) GetByCountryAndType(ctx context.Context, country, documentType string) (*models.DocumentDetail, error) {
	f.country = country
	f.docType = documentType
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func TestDocumentGet_Found(t *testing.T) {
	repo := &fakeDocumentsRepo{out: &models.DocumentDetail{ID: "d-1", Country: "US", DocumentType: "passport", Name: "US Passport"}}
	s := NewDocumentService(repo)

	got, err := s.Get(context.Background(), "US", "passport")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != "d-1" || got.Name != "US Passport" {
		t.Fatalf("unexpected document: %+v", got)
	}
	if repo.country != "US" || repo.docType != "passport" {
		t.Fatalf("lookup used %q/%q", repo.country, repo.docType)
	}
}

func TestDocumentGet_NotFound(t *testing.T) {
	s := NewDocumentService(&fakeDocumentsRepo{err: common.ErrorNotFound})

	_, err := s.Get(context.Background(), "US", "passport")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDocumentGet_DBErrorIsWrapped(t *testing.T) {
	s := NewDocumentService(&fakeDocumentsRepo{err: errors.New("db down")})

	_, err := s.Get(context.Background(), "US", "passport")
	if err == nil || !strings.Contains(err.Error(), "db down") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("db error must not map to not-found: %v", err)
	}
}
