// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package documents

import (
	"context"
	"time"

	"github.com/taibuivan/indiepub/internal/platform/memstore"
)

// Repository defines the data access contract for documents.
type Repository interface {
	ListDocuments(ctx context.Context) ([]Document, error)
	GetDocument(ctx context.Context, id string) (Document, bool, error)
	AddDocument(ctx context.Context, document Document) (Document, error)
	DeleteDocument(ctx context.Context, id string) (bool, error)
}

// MemoryRepository is the in-process [Repository].
type MemoryRepository struct {
	documents *memstore.Collection[Document]
}

// NewMemoryRepository returns a repository holding seed.
func NewMemoryRepository(latency time.Duration, seed ...Document) *MemoryRepository {
	return &MemoryRepository{documents: memstore.NewCollection(latency, seed...)}
}

func (repository *MemoryRepository) ListDocuments(ctx context.Context) ([]Document, error) {
	return repository.documents.GetAll(ctx)
}

func (repository *MemoryRepository) GetDocument(ctx context.Context, id string) (Document, bool, error) {
	return repository.documents.Get(ctx, id)
}

func (repository *MemoryRepository) AddDocument(ctx context.Context, document Document) (Document, error) {
	return repository.documents.Add(ctx, document)
}

func (repository *MemoryRepository) DeleteDocument(ctx context.Context, id string) (bool, error) {
	return repository.documents.Delete(ctx, id)
}

// SeedDocuments returns the documents a fresh process starts with.
func SeedDocuments() []Document {
	return []Document{
		{ID: "1", Title: "Q1 2024 DistroKid Statement", Type: TypeRoyaltyStatement, Date: "2024-04-15", URL: "#"},
		{ID: "2", Title: "Split Sheet - Neon Highway", Type: TypeSplitSheet, Date: "2024-01-20", URL: "#"},
	}
}
