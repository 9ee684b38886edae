// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package optimizer

import (
	"context"
	"time"

	"github.com/taibuivan/indiepub/internal/platform/memstore"
)

// Task is a recommended action on the optimizer checklist.
type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// RecordID implements memstore.Record.
func (task Task) RecordID() string { return task.ID }

// Clone implements memstore.Record.
func (task Task) Clone() Task { return task }

// Repository defines the data access contract for tasks.
type Repository interface {
	ListTasks(ctx context.Context) ([]Task, error)
	AddTask(ctx context.Context, task Task) (Task, error)
	ToggleTask(ctx context.Context, id string) (Task, bool, error)
}

// MemoryRepository is the in-process [Repository].
type MemoryRepository struct {
	tasks *memstore.Collection[Task]
}

// NewMemoryRepository returns a repository holding seed.
func NewMemoryRepository(latency time.Duration, seed ...Task) *MemoryRepository {
	return &MemoryRepository{tasks: memstore.NewCollection(latency, seed...)}
}

func (repository *MemoryRepository) ListTasks(ctx context.Context) ([]Task, error) {
	return repository.tasks.GetAll(ctx)
}

func (repository *MemoryRepository) AddTask(ctx context.Context, task Task) (Task, error) {
	return repository.tasks.Add(ctx, task)
}

// ToggleTask flips completion inside one atomic update.
func (repository *MemoryRepository) ToggleTask(ctx context.Context, id string) (Task, bool, error) {
	return repository.tasks.Update(ctx, id, func(task *Task) { task.Completed = !task.Completed })
}

// SeedTasks returns the tasks a fresh process starts with.
func SeedTasks() []Task {
	return []Task{
		{ID: "1", Description: `Register "Neon Highway" with BMI`, Completed: false},
		{ID: "2", Description: "Upload Q2 Royalty Statement", Completed: true},
	}
}
