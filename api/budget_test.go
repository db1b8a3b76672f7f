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

func setupBudgetTest(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.GlobalConfig = testConfig()
	t.Cleanup(func() { config.GlobalConfig = nil })

	s := store.NewMemory(time.Hour)
	h := NewBudgetHandler(s)

	r := gin.New()
	r.GET("/api/budget", h.List)
	r.POST("/api/budget", h.Create)
	r.GET("/api/budget/:id", h.Get)
	r.PATCH("/api/budget/:id", h.Update)
	r.DELETE("/api/budget/:id", h.Delete)
	return r, s
}

func TestBudgetHandler_Create(t *testing.T) {
	r, _ := setupBudgetTest(t)

	w := doJSON(r, "POST", "/api/budget", `{"category":"场地","description":"宴会厅租赁","estimatedAmount":30000}`)
	assert.Equal(t, 201, w.Code)

	var item models.BudgetItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, float64(30000), item.EstimatedAmount)
	assert.False(t, item.Paid)
	assert.Nil(t, item.ActualAmount)
	assert.Nil(t, item.VendorID)
}

func TestBudgetHandler_Create_MissingDescription(t *testing.T) {
	r, _ := setupBudgetTest(t)

	// 错误详情中按 JSON 字段名指出缺失字段
	w := doJSON(r, "POST", "/api/budget", `{"category":"场地","estimatedAmount":30000}`)
	assert.Equal(t, 400, w.Code)

	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "description")
}

func TestBudgetHandler_Create_ZeroEstimatedAmount(t *testing.T) {
	r, _ := setupBudgetTest(t)

	// 金额 0 合法：required 校验区分「缺失」和「零值」
	w := doJSON(r, "POST", "/api/budget", `{"category":"杂项","description":"自备","estimatedAmount":0}`)
	assert.Equal(t, 201, w.Code)
}

func TestBudgetHandler_Update_VendorLink(t *testing.T) {
	r, _ := setupBudgetTest(t)

	w := doJSON(r, "POST", "/api/budget", `{"category":"摄影","description":"婚礼跟拍","estimatedAmount":8000}`)
	require.Equal(t, 201, w.Code)

	// 关联供应商
	w = doJSON(r, "PATCH", "/api/budget/1", `{"vendorId":5}`)
	assert.Equal(t, 200, w.Code)

	var item models.BudgetItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	require.NotNil(t, item.VendorID)
	assert.Equal(t, uint(5), *item.VendorID)

	// null 解除关联
	w = doJSON(r, "PATCH", "/api/budget/1", `{"vendorId":null}`)
	assert.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Nil(t, item.VendorID)
}

func TestBudgetHandler_Update_MarkPaid(t *testing.T) {
	r, _ := setupBudgetTest(t)

	w := doJSON(r, "POST", "/api/budget", `{"category":"花艺","description":"手捧花","estimatedAmount":1200}`)
	require.Equal(t, 201, w.Code)

	w = doJSON(r, "PATCH", "/api/budget/1", `{"paid":true,"actualAmount":1350.5}`)
	assert.Equal(t, 200, w.Code)

	var item models.BudgetItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.True(t, item.Paid)
	require.NotNil(t, item.ActualAmount)
	assert.Equal(t, 1350.5, *item.ActualAmount)
	// 未触及的字段保持不变
	assert.Equal(t, float64(1200), item.EstimatedAmount)
}

func TestBudgetHandler_Update_TypeError(t *testing.T) {
	r, _ := setupBudgetTest(t)

	w := doJSON(r, "POST", "/api/budget", `{"category":"花艺","description":"手捧花","estimatedAmount":1200}`)
	require.Equal(t, 201, w.Code)

	w = doJSON(r, "PATCH", "/api/budget/1", `{"estimatedAmount":"很贵"}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "estimatedAmount")
}

func TestBudgetHandler_NotFound(t *testing.T) {
	r, _ := setupBudgetTest(t)

	w := doJSON(r, "GET", "/api/budget/99", "")
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "预算项目不存在")

	w = doJSON(r, "DELETE", "/api/budget/99", "")
	assert.Equal(t, 404, w.Code)
}
