package api

import (
	"log"

	"wedding/models"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// SeatingHandler 座位安排处理器
type SeatingHandler struct {
	store store.Store
}

// NewSeatingHandler 创建座位安排处理器
func NewSeatingHandler(s store.Store) *SeatingHandler {
	return &SeatingHandler{store: s}
}

// CreateSeatingPlanRequest 创建座位安排请求
type CreateSeatingPlanRequest struct {
	TableName string  `json:"tableName" binding:"required,min=1,max=100" example:"主桌"`
	Capacity  int     `json:"capacity" binding:"required,min=1" example:"10"`
	Category  *string `json:"category" binding:"omitempty,max=50"`
	Location  *string `json:"location" binding:"omitempty,max=100"`
}

// 座位安排可更新字段表
var seatingPatchFields = []patchField{
	{json: "tableName", column: "table_name", kind: patchString, required: true},
	{json: "capacity", column: "capacity", kind: patchInt, required: true, min: intPtr(1)},
	{json: "category", column: "category", kind: patchString},
	{json: "location", column: "location", kind: patchString},
}

// List 获取座位安排列表
// @Summary 获取座位安排列表
// @Tags 座位
// @Produce json
// @Success 200 {array} models.SeatingPlan "获取成功"
// @Router /api/seating [get]
func (h *SeatingHandler) List(c *gin.Context) {
	list, err := h.store.ListSeatingPlans()
	if err != nil {
		log.Printf("查询座位安排失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	OK(c, list)
}

// Get 获取单个座位安排
// @Summary 获取座位安排详情
// @Tags 座位
// @Produce json
// @Param id path int true "座位安排ID"
// @Success 200 {object} models.SeatingPlan "获取成功"
// @Failure 404 {object} map[string]interface{} "座位安排不存在"
// @Router /api/seating/{id} [get]
func (h *SeatingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.store.GetSeatingPlan(id)
	if err != nil {
		log.Printf("查询座位安排失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if plan == nil {
		NotFound(c, "座位安排不存在")
		return
	}
	OK(c, plan)
}

// Create 创建座位安排
// @Summary 创建座位安排
// @Description capacity 至少为 1
// @Tags 座位
// @Accept json
// @Produce json
// @Param request body CreateSeatingPlanRequest true "座位安排信息"
// @Success 201 {object} models.SeatingPlan "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Router /api/seating [post]
func (h *SeatingHandler) Create(c *gin.Context) {
	var req CreateSeatingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	plan := models.SeatingPlan{
		Label:    req.TableName,
		Capacity: req.Capacity,
		Category: req.Category,
		Location: req.Location,
	}

	if err := h.store.CreateSeatingPlan(&plan); err != nil {
		log.Printf("创建座位安排失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	Created(c, plan)
}

// Update 部分更新座位安排
// @Summary 更新座位安排
// @Tags 座位
// @Accept json
// @Produce json
// @Param id path int true "座位安排ID"
// @Param request body CreateSeatingPlanRequest true "更新的字段"
// @Success 200 {object} models.SeatingPlan "更新成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "座位安排不存在"
// @Router /api/seating/{id} [patch]
func (h *SeatingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := bindPatchBody(c)
	if !ok {
		return
	}
	updates, details := parsePatch(raw, seatingPatchFields)
	if len(details) > 0 {
		ValidationFailed(c, details)
		return
	}

	plan, err := h.store.UpdateSeatingPlan(id, updates)
	if err != nil {
		log.Printf("更新座位安排失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	if plan == nil {
		NotFound(c, "座位安排不存在")
		return
	}
	OK(c, plan)
}

// Delete 删除座位安排
// @Summary 删除座位安排
// @Tags 座位
// @Param id path int true "座位安排ID"
// @Success 204 "删除成功"
// @Failure 404 {object} map[string]interface{} "座位安排不存在"
// @Router /api/seating/{id} [delete]
func (h *SeatingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.DeleteSeatingPlan(id)
	if err != nil {
		log.Printf("删除座位安排失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	if !deleted {
		NotFound(c, "座位安排不存在")
		return
	}
	NoContent(c)
}
