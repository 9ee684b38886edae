// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package setup manages the publishing setup page: PRO membership, the
publishing company, royalty source registrations and the company one-sheet.
*/
package setup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/indiepub/internal/platform/request"
	"github.com/taibuivan/indiepub/internal/platform/respond"
)

// Handler implements the HTTP layer for the publishing setup.
type Handler struct {
	service *Service
}

// NewHandler constructs a new setup [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with setup endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Profiles
	router.Get("/pro", handler.getPRO)
	router.Put("/pro", handler.savePRO)
	router.Get("/company", handler.getCompany)
	router.Put("/company", handler.saveCompany)
	router.Get("/one-sheet", handler.oneSheet)

	// ## Royalty Sources
	router.Get("/royalty-sources", handler.listRoyaltySources)
	router.Patch("/royalty-sources/{id}", handler.setRoyaltyStatus)
	router.Post("/royalty-sources/{id}/toggle", handler.toggleRoyaltySource)

	return router
}

// GET /api/v1/setup/pro.
func (handler *Handler) getPRO(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.GetPRO(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

/*
PUT /api/v1/setup/pro.

Response:
  - 200: PROProfile
  - 400: Validation: unknown PRO name
*/
func (handler *Handler) savePRO(writer http.ResponseWriter, request *http.Request) {
	var input PROInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.SavePRO(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

// GET /api/v1/setup/company.
func (handler *Handler) getCompany(writer http.ResponseWriter, request *http.Request) {
	company, err := handler.service.GetCompany(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, company)
}

/*
PUT /api/v1/setup/company.

Response:
  - 200: Company
  - 400: Validation: unknown entity type
*/
func (handler *Handler) saveCompany(writer http.ResponseWriter, request *http.Request) {
	var input CompanyInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	company, err := handler.service.SaveCompany(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, company)
}

// GET /api/v1/setup/one-sheet.
func (handler *Handler) oneSheet(writer http.ResponseWriter, request *http.Request) {
	sheet, err := handler.service.GenerateOneSheet(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sheet)
}

// GET /api/v1/setup/royalty-sources.
func (handler *Handler) listRoyaltySources(writer http.ResponseWriter, request *http.Request) {
	sources, err := handler.service.ListRoyaltySources(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sources)
}

/*
PATCH /api/v1/setup/royalty-sources/{id}.

Request (Body):
  - status: "Not Started" | "In Progress" | "Complete"

Response:
  - 200: RoyaltySource
  - 404: ErrNotFound
*/
func (handler *Handler) setRoyaltyStatus(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Status Status `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	source, err := handler.service.SetRoyaltyStatus(request.Context(), requestutil.ID(request, "id"), body.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, source)
}

// POST /api/v1/setup/royalty-sources/{id}/toggle.
func (handler *Handler) toggleRoyaltySource(writer http.ResponseWriter, request *http.Request) {
	source, err := handler.service.ToggleRoyaltySource(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, source)
}
