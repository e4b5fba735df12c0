package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/services"
	"github.com/dballard10/Planner-Calendar-Goal-App/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	taskService := services.NewTaskService(zerolog.Nop(), store.NewMemoryTable())
	h := New(zerolog.Nop(), taskService)

	router := gin.New()
	router.Use(h.HandleRequestLogger)
	RegisterRoutes(router, h)
	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func createTask(t *testing.T, router http.Handler, body string) map[string]any {
	t.Helper()

	rec, resp := do(t, router, http.MethodPost, "/api/tasks", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	task, ok := resp["task"].(map[string]any)
	require.True(t, ok)
	return task
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp["status"])
}

func TestWeekLifecycle(t *testing.T) {
	router := newTestRouter(t)

	task := createTask(t, router, `{"title":"Groceries","assigned_date":"2024-03-17"}`)
	assert.Equal(t, "Groceries", task["title"])
	assert.Equal(t, "open", task["status"])
	assert.Equal(t, 0.0, task["position"])
	assert.Equal(t, []any{}, task["links"])
	assert.Equal(t, "2024-03-17", task["assigned_date"])
	assert.Equal(t, "", task["notes"])
	assert.Nil(t, task["location"])
	assert.Contains(t, task, "start_date")
	assert.NotEmpty(t, task["id"])
	assert.NotEmpty(t, task["created_at"])

	rec, resp := do(t, router, http.MethodGet, "/api/weeks/2024-03-17/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := resp["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, task["id"], tasks[0].(map[string]any)["id"])

	rec, resp = do(t, router, http.MethodDelete, "/api/weeks/2024-03-17/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["ok"])

	rec, resp = do(t, router, http.MethodGet, "/api/weeks/2024-03-17/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, resp["tasks"])
}

func TestListWeekStarts(t *testing.T) {
	router := newTestRouter(t)
	createTask(t, router, `{"title":"old","assigned_date":"2001-01-03"}`)

	rec, resp := do(t, router, http.MethodGet, "/api/weeks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	weeks := resp["weekStartsISO"].([]any)
	require.Len(t, weeks, 2)
	assert.Equal(t, "2000-12-31", weeks[1])
}

func TestInvalidDates(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/weeks/not-a-date/tasks"},
		{http.MethodDelete, "/api/weeks/2024-13-01/tasks"},
		{http.MethodDelete, "/api/days/yesterday/tasks"},
	} {
		rec, resp := do(t, router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
		assert.Equal(t, services.ErrInvalidDate.Error(), resp["error"], tc.path)
	}
}

func TestDeleteDayTasks(t *testing.T) {
	router := newTestRouter(t)
	createTask(t, router, `{"title":"a","assigned_date":"2024-03-18"}`)
	createTask(t, router, `{"title":"b","assigned_date":"2024-03-19"}`)

	rec, _ := do(t, router, http.MethodDelete, "/api/days/2024-03-18/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, resp := do(t, router, http.MethodGet, "/api/weeks/2024-03-17/tasks", "")
	tasks := resp["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].(map[string]any)["title"])
}

func TestCreateTask_BadRequests(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		``,
		`{"assigned_date":"2024-03-17"}`,
		`{"title":"x"}`,
		`{"title":null,"assigned_date":"2024-03-17"}`,
		`{"title":"x","assigned_date":"17/03/2024"}`,
		`{"title":"x","assigned_date":"2024-03-17","position":"first"}`,
	} {
		rec, resp := do(t, router, http.MethodPost, "/api/tasks", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, errInvalidRequestBody.Error(), resp["error"], body)
	}
}

func TestCreateTask_EmptyTitleAndExplicitStatus(t *testing.T) {
	router := newTestRouter(t)

	task := createTask(t, router, `{"title":"","assigned_date":"2024-03-17","status":""}`)
	assert.Equal(t, "", task["title"])
	assert.Equal(t, "", task["status"])

	task = createTask(t, router, `{"title":"x","assigned_date":"2024-03-17"}`)
	assert.Equal(t, "open", task["status"])
}

func TestUpdateTask(t *testing.T) {
	router := newTestRouter(t)
	task := createTask(t, router, `{"title":"Groceries","assigned_date":"2024-03-17","notes":"milk"}`)
	path := "/api/tasks/" + task["id"].(string)

	rec, resp := do(t, router, http.MethodPatch, path,
		`{"title":"Shopping","start_time":"09:00","location":{"name":"Market","lat":1,"lon":2},"links":[{"url":"https://a"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := resp["task"].(map[string]any)
	assert.Equal(t, "Shopping", updated["title"])
	assert.Equal(t, "milk", updated["notes"])
	assert.Equal(t, "09:00", updated["start_time"])
	assert.Equal(t, map[string]any{"name": "Market", "address": nil, "lat": 1.0, "lon": 2.0}, updated["location"])
	assert.Equal(t, []any{map[string]any{"url": "https://a"}}, updated["links"])
	assert.Equal(t, task["created_at"], updated["created_at"])

	rec, resp = do(t, router, http.MethodPatch, path, `{"notes":null,"location":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := resp["task"].(map[string]any)
	assert.Nil(t, cleared["notes"])
	assert.Nil(t, cleared["location"])
	assert.Equal(t, "Shopping", cleared["title"])
}

func TestUpdateTask_Errors(t *testing.T) {
	router := newTestRouter(t)
	task := createTask(t, router, `{"title":"x","assigned_date":"2024-03-17"}`)

	rec, resp := do(t, router, http.MethodPatch, "/api/tasks/"+task["id"].(string), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, services.ErrNoFieldsToUpdate.Error(), resp["error"])

	rec, resp = do(t, router, http.MethodPatch, "/api/tasks/does-not-exist", `{"title":"Y"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, services.ErrTaskNotFound.Error(), resp["error"])

	rec, _ = do(t, router, http.MethodPatch, "/api/tasks/"+task["id"].(string), `{"start_date":"soon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTask_NullRequiredFieldLeavesTaskIntact(t *testing.T) {
	for _, column := range []string{"title", "status", "position", "assigned_date"} {
		t.Run(column, func(t *testing.T) {
			router := newTestRouter(t)
			task := createTask(t, router, `{"title":"x","assigned_date":"2024-03-17"}`)
			path := "/api/tasks/" + task["id"].(string)

			rec, resp := do(t, router, http.MethodPatch, path, `{"`+column+`":null}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "field cannot be null: "+column, resp["error"])

			rec, resp = do(t, router, http.MethodGet, "/api/weeks/2024-03-17/tasks", "")
			require.Equal(t, http.StatusOK, rec.Code)
			tasks := resp["tasks"].([]any)
			require.Len(t, tasks, 1)
			stored := tasks[0].(map[string]any)
			assert.Equal(t, "x", stored["title"])
			assert.Equal(t, "open", stored["status"])
			assert.Equal(t, "2024-03-17", stored["assigned_date"])

			rec, _ = do(t, router, http.MethodPatch, path, `{"title":"again"}`)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestDeleteTask(t *testing.T) {
	router := newTestRouter(t)
	task := createTask(t, router, `{"title":"x","assigned_date":"2024-03-17"}`)
	path := "/api/tasks/" + task["id"].(string)

	for i := 0; i < 2; i++ {
		rec, resp := do(t, router, http.MethodDelete, path, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, resp["ok"])
	}

	_, resp := do(t, router, http.MethodGet, "/api/weeks/2024-03-17/tasks", "")
	assert.Equal(t, []any{}, resp["tasks"])
}
