package api

import (
	"encoding/json"
	"testing"
	"time"

	"wedding/config"
	"wedding/models"
	"wedding/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.GlobalConfig = testConfig()
	t.Cleanup(func() { config.GlobalConfig = nil })

	s := store.NewMemory(time.Hour)
	h := NewTaskHandler(s)

	r := gin.New()
	r.GET("/api/tasks", h.List)
	r.POST("/api/tasks", h.Create)
	r.GET("/api/tasks/:id", h.Get)
	r.PATCH("/api/tasks/:id", h.Update)
	r.DELETE("/api/tasks/:id", h.Delete)
	return r
}

func TestTaskHandler_Create_Defaults(t *testing.T) {
	r := setupTaskTest(t)

	w := doJSON(r, "POST", "/api/tasks", `{"title":"预订场地"}`)
	assert.Equal(t, 201, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, "预订场地", task.Title)
	assert.Equal(t, "medium", task.Priority)
	assert.False(t, task.Completed)
	assert.Nil(t, task.DueDate)
}

func TestTaskHandler_Create_InvalidPriority(t *testing.T) {
	r := setupTaskTest(t)

	w := doJSON(r, "POST", "/api/tasks", `{"title":"预订场地","priority":"urgent"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "priority")
}

func TestTaskHandler_Update_PriorityKeepsDueDate(t *testing.T) {
	r := setupTaskTest(t)

	w := doJSON(r, "POST", "/api/tasks", `{"title":"预订场地","priority":"high","dueDate":"2026-10-01"}`)
	require.Equal(t, 201, w.Code)

	// 只改优先级，截止日期保留
	w = doJSON(r, "PATCH", "/api/tasks/1", `{"priority":"low"}`)
	assert.Equal(t, 200, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, "low", task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-10-01", *task.DueDate)
}

func TestTaskHandler_Update_Complete(t *testing.T) {
	r := setupTaskTest(t)

	w := doJSON(r, "POST", "/api/tasks", `{"title":"发请柬"}`)
	require.Equal(t, 201, w.Code)

	w = doJSON(r, "PATCH", "/api/tasks/1", `{"completed":true}`)
	assert.Equal(t, 200, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.True(t, task.Completed)

	// completed 必填，不允许 null
	w = doJSON(r, "PATCH", "/api/tasks/1", `{"completed":null}`)
	assert.Equal(t, 400, w.Code)
}

func TestTaskHandler_NotFound(t *testing.T) {
	r := setupTaskTest(t)

	w := doJSON(r, "PATCH", "/api/tasks/42", `{"completed":true}`)
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "任务不存在")
}
