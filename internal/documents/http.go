// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package documents stores contracts, registrations, statements and split
// sheets, and analyzes royalty statements on demand.
package documents

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/indiepub/internal/platform/request"
	"github.com/taibuivan/indiepub/internal/platform/respond"
)

// Handler implements the HTTP layer for documents.
type Handler struct {
	service *Service
}

// NewHandler constructs a new documents [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with document endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listDocuments)
	router.Post("/", handler.addDocument)
	router.Delete("/{id}", handler.deleteDocument)
	router.Post("/{id}/analysis", handler.analyzeDocument)

	return router
}

/*
GET /api/v1/documents.

Response:
  - 200: []Document
*/
func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request) {
	documents, err := handler.service.ListDocuments(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, documents)
}

/*
POST /api/v1/documents.

Response:
  - 201: Document
  - 400: Validation
*/
func (handler *Handler) addDocument(writer http.ResponseWriter, request *http.Request) {
	var input NewDocument
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.service.AddDocument(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, document)
}

/*
POST /api/v1/documents/{id}/analysis.

Response:
  - 200: Analysis
  - 404: ErrNotFound
  - 422: Not a royalty statement
*/
func (handler *Handler) analyzeDocument(writer http.ResponseWriter, request *http.Request) {
	analysis, err := handler.service.AnalyzeDocument(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, analysis)
}

/*
DELETE /api/v1/documents/{id}.

Response:
  - 204: No Content
  - 404: ErrNotFound
*/
func (handler *Handler) deleteDocument(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteDocument(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
