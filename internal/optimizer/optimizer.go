// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package optimizer serves the royalty optimizer: a checklist of recommended
actions and the headline figures shown above it.
*/
package optimizer

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/indiepub/internal/platform/apperr"
	requestutil "github.com/taibuivan/indiepub/internal/platform/request"
	"github.com/taibuivan/indiepub/internal/platform/respond"
	"github.com/taibuivan/indiepub/pkg/slice"
	"github.com/taibuivan/indiepub/pkg/uuidv7"
)

// PlannedActions are appended by a plan refresh.
var PlannedActions = []string{
	"Register 'Broken Strings' with MLC",
}

// Headline estimates shown on the optimizer page.
const (
	EstimatedUnclaimed = "$1,245"
	RegistrationHealth = "85%"
)

// Summary is the optimizer header.
type Summary struct {
	EstimatedUnclaimed string `json:"estimated_unclaimed"`
	RegistrationHealth string `json:"registration_health"`
	HighImpactActions  int    `json:"high_impact_actions"`
	CompletedActions   int    `json:"completed_actions"`
}

// # Service Layer

// Service manages optimizer tasks.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new optimizer [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListTasks returns every task in insertion order.
func (service *Service) ListTasks(ctx context.Context) ([]Task, error) {
	return service.repo.ListTasks(ctx)
}

// ToggleTask flips a task between done and pending.
func (service *Service) ToggleTask(ctx context.Context, id string) (Task, error) {
	task, ok, err := service.repo.ToggleTask(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if !ok {
		return Task{}, apperr.NotFound("Task")
	}
	return task, nil
}

/*
RefreshPlan adds the planned actions that are not already pending.

Returns:
  - []Task: The full task list after the refresh
  - error: Persistence failures
*/
func (service *Service) RefreshPlan(ctx context.Context) ([]Task, error) {
	tasks, err := service.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	for _, description := range PlannedActions {
		pending := slice.Count(tasks, func(task Task) bool {
			return !task.Completed && task.Description == description
		})
		if pending > 0 {
			continue
		}

		added, err := service.repo.AddTask(ctx, Task{ID: uuidv7.New(), Description: description})
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, added)
		service.logger.InfoContext(ctx, "task_planned", slog.String("task_id", added.ID))
	}

	return tasks, nil
}

// Summary counts pending and completed tasks next to the fixed estimates.
func (service *Service) Summary(ctx context.Context) (Summary, error) {
	tasks, err := service.repo.ListTasks(ctx)
	if err != nil {
		return Summary{}, err
	}

	completed := slice.Count(tasks, func(task Task) bool { return task.Completed })
	return Summary{
		EstimatedUnclaimed: EstimatedUnclaimed,
		RegistrationHealth: RegistrationHealth,
		HighImpactActions:  len(tasks) - completed,
		CompletedActions:   completed,
	}, nil
}

// # Handler Implementation

// Handler implements the HTTP layer for the optimizer.
type Handler struct {
	service *Service
}

// NewHandler constructs a new optimizer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with optimizer endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/tasks", handler.listTasks)
	router.Post("/tasks/{id}/toggle", handler.toggleTask)
	router.Post("/plan", handler.refreshPlan)
	router.Get("/summary", handler.summary)
	return router
}

// GET /api/v1/optimizer/tasks.
func (handler *Handler) listTasks(writer http.ResponseWriter, request *http.Request) {
	tasks, err := handler.service.ListTasks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tasks)
}

/*
POST /api/v1/optimizer/tasks/{id}/toggle.

Response:
  - 200: Task
  - 404: ErrNotFound
*/
func (handler *Handler) toggleTask(writer http.ResponseWriter, request *http.Request) {
	task, err := handler.service.ToggleTask(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, task)
}

// POST /api/v1/optimizer/plan.
func (handler *Handler) refreshPlan(writer http.ResponseWriter, request *http.Request) {
	tasks, err := handler.service.RefreshPlan(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tasks)
}

// GET /api/v1/optimizer/summary.
func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}
