// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package documents

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/indiepub/internal/enrichment"
	"github.com/taibuivan/indiepub/internal/platform/apperr"
	"github.com/taibuivan/indiepub/internal/platform/validate"
	"github.com/taibuivan/indiepub/pkg/uuidv7"
)

const (
	FieldTitle = "title"
	FieldType  = "type"
	FieldDate  = "date"
	FieldURL   = "url"
)

// placeholderURL is stored for documents uploaded without a link.
const placeholderURL = "#"

// Analyzer is the enrichment workflow used for royalty statements.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, title string) enrichment.DocumentAnalysis
}

// NewDocument is the body of a document upload.
type NewDocument struct {
	Title string `json:"title"`
	Type  Type   `json:"type"`
	Date  string `json:"date"`
	URL   string `json:"url"`
}

// Service manages stored documents and their on-demand analysis.
type Service struct {
	repo     Repository
	analyzer Analyzer
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a new documents [Service].
func NewService(repo Repository, analyzer Analyzer, logger *slog.Logger) *Service {
	return &Service{repo: repo, analyzer: analyzer, logger: logger, now: time.Now}
}

// ListDocuments returns every stored document.
func (service *Service) ListDocuments(ctx context.Context) ([]Document, error) {
	return service.repo.ListDocuments(ctx)
}

// AddDocument validates and stores a document. Date defaults to today.
func (service *Service) AddDocument(ctx context.Context, input NewDocument) (Document, error) {
	document := Document{
		ID:    uuidv7.New(),
		Title: strings.TrimSpace(input.Title),
		Type:  input.Type,
		Date:  strings.TrimSpace(input.Date),
		URL:   strings.TrimSpace(input.URL),
	}
	if document.Date == "" {
		document.Date = service.now().Format(DateLayout)
	}
	if document.URL == "" {
		document.URL = placeholderURL
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, document.Title).MaxLen(FieldTitle, document.Title, 200).
		OneOf(FieldType, string(document.Type), Types...).
		Date(FieldDate, document.Date, DateLayout).
		MaxLen(FieldURL, document.URL, 2048)
	if err := validator.Err(); err != nil {
		return Document{}, err
	}

	stored, err := service.repo.AddDocument(ctx, document)
	if err != nil {
		return Document{}, err
	}

	service.logger.InfoContext(ctx, "document_added",
		slog.String("document_id", stored.ID),
		slog.String("type", string(stored.Type)),
	)
	return stored, nil
}

/*
AnalyzeDocument summarises a royalty statement.

Returns:
  - Analysis: Defaults filled in for anything the service did not return
  - error: NotFound, or Unprocessable for documents that are not royalty statements
*/
func (service *Service) AnalyzeDocument(ctx context.Context, id string) (Analysis, error) {
	document, ok, err := service.repo.GetDocument(ctx, id)
	if err != nil {
		return Analysis{}, err
	}
	if !ok {
		return Analysis{}, apperr.NotFound("Document")
	}
	if document.Type != TypeRoyaltyStatement {
		return Analysis{}, apperr.Unprocessable("Only royalty statements can be analyzed")
	}

	return NewAnalysis(document, service.analyzer.AnalyzeDocument(ctx, document.Title)), nil
}

// DeleteDocument removes a stored document.
func (service *Service) DeleteDocument(ctx context.Context, id string) error {
	ok, err := service.repo.DeleteDocument(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Document")
	}

	service.logger.InfoContext(ctx, "document_deleted", slog.String("document_id", id))
	return nil
}
