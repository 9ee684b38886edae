// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package business serves the business page: the tax assistant and the tax
preparation checklist.
*/
package business

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/indiepub/internal/enrichment"
	requestutil "github.com/taibuivan/indiepub/internal/platform/request"
	"github.com/taibuivan/indiepub/internal/platform/respond"
	"github.com/taibuivan/indiepub/internal/platform/validate"
)

const (
	FieldQuestion  = "question"
	maxQuestionLen = 2000
)

// TaxChecklist is the fixed list of year-end preparation items.
var TaxChecklist = []string{
	"Track Studio Rent",
	"Log Mileage",
	"Gather 1099s",
	"Categorize Meals",
	"Instrument Depreciation",
}

// Assistant is the enrichment workflow behind the tax assistant.
type Assistant interface {
	AskTaxAssistant(ctx context.Context, question string) enrichment.TextResult
}

// Answer pairs a question with the assistant's reply.
type Answer struct {
	Question string             `json:"question"`
	Answer   string             `json:"answer"`
	Outcome  enrichment.Outcome `json:"outcome"`
}

// # Service Layer

// Service answers business questions.
type Service struct {
	assistant Assistant
	logger    *slog.Logger
}

// NewService constructs a new business [Service].
func NewService(assistant Assistant, logger *slog.Logger) *Service {
	return &Service{assistant: assistant, logger: logger}
}

// Ask forwards a question to the tax assistant. The answer is never stored.
func (service *Service) Ask(ctx context.Context, question string) (Answer, error) {
	question = strings.TrimSpace(question)

	validator := &validate.Validator{}
	validator.Required(FieldQuestion, question).MaxLen(FieldQuestion, question, maxQuestionLen)
	if err := validator.Err(); err != nil {
		return Answer{}, err
	}

	result := service.assistant.AskTaxAssistant(ctx, question)
	return Answer{Question: question, Answer: result.Text, Outcome: result.Outcome}, nil
}

// Checklist returns a copy of [TaxChecklist].
func (service *Service) Checklist() []string {
	return append([]string(nil), TaxChecklist...)
}

// # Handler Implementation

// Handler implements the HTTP layer for the business page.
type Handler struct {
	service *Service
}

// NewHandler constructs a new business [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with business endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/tax-assistant", handler.ask)
	router.Get("/checklist", handler.checklist)
	return router
}

/*
POST /api/v1/business/tax-assistant.

Request (Body):
  - question: string

Response:
  - 200: Answer
  - 400: Validation: blank question
*/
func (handler *Handler) ask(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Question string `json:"question"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	answer, err := handler.service.Ask(request.Context(), body.Question)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, answer)
}

// GET /api/v1/business/checklist.
func (handler *Handler) checklist(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, handler.service.Checklist())
}
