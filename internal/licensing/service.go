// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package licensing serves the licensing page: a directory of sync licensing
outlets and a readiness score for catalog songs.
*/
package licensing

import (
	"context"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/indiepub/internal/catalog"
	requestutil "github.com/taibuivan/indiepub/internal/platform/request"
	"github.com/taibuivan/indiepub/internal/platform/respond"
	"github.com/taibuivan/indiepub/internal/platform/validate"
	"github.com/taibuivan/indiepub/pkg/slice"
)

// SongSource looks up catalog songs. It returns apperr.NotFound for unknown ids.
type SongSource interface {
	GetSong(ctx context.Context, id string) (catalog.Song, error)
}

// Service answers licensing queries.
type Service struct {
	songs SongSource
}

// NewService constructs a new licensing [Service].
func NewService(songs SongSource) *Service {
	return &Service{songs: songs}
}

// ListOpportunities returns the directory, optionally narrowed to one category.
func (service *Service) ListOpportunities(category string) ([]Opportunity, error) {
	if category == "" {
		return slices.Clone(Opportunities), nil
	}

	validator := &validate.Validator{}
	validator.OneOf("category", category, Categories...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return slice.Filter(Opportunities, func(opportunity Opportunity) bool {
		return string(opportunity.Category) == category
	}), nil
}

// Readiness scores one catalog song.
func (service *Service) Readiness(ctx context.Context, songID string) (Readiness, error) {
	song, err := service.songs.GetSong(ctx, songID)
	if err != nil {
		return Readiness{}, err
	}
	return Assess(song), nil
}

// # Handler Implementation

// Handler implements the HTTP layer for licensing.
type Handler struct {
	service *Service
}

// NewHandler constructs a new licensing [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with licensing endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/opportunities", handler.listOpportunities)
	router.Get("/readiness/{songID}", handler.readiness)
	return router
}

/*
GET /api/v1/licensing/opportunities.

Request:
  - category: string (optional)

Response:
  - 200: []Opportunity
  - 400: Validation: unknown category
*/
func (handler *Handler) listOpportunities(writer http.ResponseWriter, request *http.Request) {
	opportunities, err := handler.service.ListOpportunities(requestutil.Query(request, "category"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, opportunities)
}

/*
GET /api/v1/licensing/readiness/{songID}.

Response:
  - 200: Readiness
  - 404: ErrNotFound
*/
func (handler *Handler) readiness(writer http.ResponseWriter, request *http.Request) {
	readiness, err := handler.service.Readiness(request.Context(), requestutil.ID(request, "songID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, readiness)
}
