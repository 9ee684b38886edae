// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package optimizer_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/indiepub/internal/optimizer"
	"github.com/taibuivan/indiepub/internal/platform/apperr"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newService() *optimizer.Service {
	return optimizer.NewService(optimizer.NewMemoryRepository(0, optimizer.SeedTasks()...), quietLogger)
}

/*
TestToggleTask_Twice restores the original state.
*/
func TestToggleTask_Twice(t *testing.T) {
	service := newService()
	ctx := context.Background()

	for _, id := range []string{"1", "2"} {
		before, err := service.ListTasks(ctx)
		require.NoError(t, err)

		_, err = service.ToggleTask(ctx, id)
		require.NoError(t, err)
		_, err = service.ToggleTask(ctx, id)
		require.NoError(t, err)

		after, err := service.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	}
}

/*
TestToggleTask_Unknown reports NotFound and changes nothing.
*/
func TestToggleTask_Unknown(t *testing.T) {
	service := newService()

	_, err := service.ToggleTask(context.Background(), "missing")
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	tasks, err := service.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, optimizer.SeedTasks(), tasks)
}

/*
TestRefreshPlan adds the planned action once while it is pending.
*/
func TestRefreshPlan(t *testing.T) {
	service := newService()
	ctx := context.Background()

	tasks, err := service.RefreshPlan(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Register 'Broken Strings' with MLC", tasks[2].Description)
	assert.False(t, tasks[2].Completed)

	tasks, err = service.RefreshPlan(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	_, err = service.ToggleTask(ctx, tasks[2].ID)
	require.NoError(t, err)

	tasks, err = service.RefreshPlan(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
}

/*
TestSummary counts pending actions.
*/
func TestSummary(t *testing.T) {
	service := newService()

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, optimizer.Summary{
		EstimatedUnclaimed: "$1,245",
		RegistrationHealth: "85%",
		HighImpactActions:  1,
		CompletedActions:   1,
	}, summary)
}

/*
TestHandler_Toggle answers with the toggled task.
*/
func TestHandler_Toggle(t *testing.T) {
	router := optimizer.NewHandler(newService()).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/tasks/1/toggle", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data optimizer.Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Data.Completed)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/tasks/nope/toggle", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
