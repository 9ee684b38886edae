// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog manages the song catalog: uploads, manual edits and
AI-assisted metadata enrichment.

Every merge goes through the repository and the handler answers with the
record the repository returns.
*/
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/indiepub/internal/platform/request"
	"github.com/taibuivan/indiepub/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with song endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSongs)
	router.Post("/", handler.uploadSong)

	router.Route("/{id}", func(song chi.Router) {
		song.Get("/", handler.getSong)
		song.Patch("/", handler.updateSong)
		song.Post("/enrich", handler.improveMetadata)
		song.Post("/pitch", handler.generatePitch)
	})

	return router
}

// # Song Endpoints

/*
GET /api/v1/songs.

Response:
  - 200: []Song
*/
func (handler *Handler) listSongs(writer http.ResponseWriter, request *http.Request) {
	songs, err := handler.service.ListSongs(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, songs)
}

/*
POST /api/v1/songs.

Description: Creates a song from an upload and enriches it before storing.
Enrichment never fails the request; its outcome is reported alongside.

Request (Body):
  - UploadInput

Response:
  - 201: EnrichedSong
  - 400: Validation: neither title nor file name
*/
func (handler *Handler) uploadSong(writer http.ResponseWriter, request *http.Request) {
	var input UploadInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.UploadSong(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

/*
GET /api/v1/songs/{id}.

Response:
  - 200: Song
  - 404: ErrNotFound
*/
func (handler *Handler) getSong(writer http.ResponseWriter, request *http.Request) {
	song, err := handler.service.GetSong(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, song)
}

/*
PATCH /api/v1/songs/{id}.

Description: Applies a manual edit. Omitted fields are left untouched.

Response:
  - 200: Song
  - 400: Validation
  - 404: ErrNotFound
*/
func (handler *Handler) updateSong(writer http.ResponseWriter, request *http.Request) {
	var patch SongPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	song, err := handler.service.UpdateSong(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, song)
}

/*
POST /api/v1/songs/{id}/enrich.

Response:
  - 200: EnrichedSong
  - 404: ErrNotFound
*/
func (handler *Handler) improveMetadata(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.ImproveMetadata(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
POST /api/v1/songs/{id}/pitch.

Response:
  - 200: Pitch
  - 404: ErrNotFound
*/
func (handler *Handler) generatePitch(writer http.ResponseWriter, request *http.Request) {
	pitch, err := handler.service.GeneratePitch(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pitch)
}
