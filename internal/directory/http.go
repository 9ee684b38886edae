// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package directory serves the read-only industry directories. Only the venue
directory has data; the others are listed as coming soon.
*/
package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/indiepub/internal/platform/request"
	"github.com/taibuivan/indiepub/internal/platform/respond"
)

// Handler implements the HTTP layer for the directories.
type Handler struct {
	directory *Directory
}

// NewHandler constructs a new directory [Handler].
func NewHandler(directory *Directory) *Handler {
	return &Handler{directory: directory}
}

// Routes returns a [chi.Router] configured with directory endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.index)
	router.Get("/venues", handler.searchVenues)
	router.Get("/venues/states", handler.states)
	return router
}

// GET /api/v1/directories.
func (handler *Handler) index(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.directory.Index())
}

/*
GET /api/v1/directories/venues.

Description: Filters venues by a case-insensitive substring of name or city
and an exact state. An empty result is not an error.

Request:
  - q: string, matched verbatim
  - state: string

Response:
  - 200: SearchResult
*/
func (handler *Handler) searchVenues(writer http.ResponseWriter, request *http.Request) {
	result := handler.directory.Search(requestutil.RawQuery(request, "q"), requestutil.Query(request, "state"))
	respond.OK(writer, result)
}

// GET /api/v1/directories/venues/states.
func (handler *Handler) states(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.directory.States())
}
