package api

import (
	"log"

	"wedding/models"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// TaskHandler 筹备任务处理器
type TaskHandler struct {
	store store.Store
}

// NewTaskHandler 创建筹备任务处理器
func NewTaskHandler(s store.Store) *TaskHandler {
	return &TaskHandler{store: s}
}

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200" example:"预订摄影师"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	DueDate     *string `json:"dueDate" binding:"omitempty,max=20" example:"2025-06-01"`
	Completed   *bool   `json:"completed"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	AssignedTo  *string `json:"assignedTo" binding:"omitempty,max=100"`
}

// 任务可更新字段表
var taskPatchFields = []patchField{
	{json: "title", column: "title", kind: patchString, required: true},
	{json: "description", column: "description", kind: patchString},
	{json: "dueDate", column: "due_date", kind: patchString},
	{json: "completed", column: "completed", kind: patchBool, required: true},
	{json: "priority", column: "priority", kind: patchString, required: true, enum: models.Priorities()},
	{json: "category", column: "category", kind: patchString},
	{json: "assignedTo", column: "assigned_to", kind: patchString},
}

// List 获取任务列表
// @Summary 获取任务列表
// @Tags 任务
// @Produce json
// @Success 200 {array} models.Task "获取成功"
// @Router /api/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	list, err := h.store.ListTasks()
	if err != nil {
		log.Printf("查询任务列表失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	OK(c, list)
}

// Get 获取单个任务
// @Summary 获取任务详情
// @Tags 任务
// @Produce json
// @Param id path int true "任务ID"
// @Success 200 {object} models.Task "获取成功"
// @Failure 404 {object} map[string]interface{} "任务不存在"
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.store.GetTask(id)
	if err != nil {
		log.Printf("查询任务失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if task == nil {
		NotFound(c, "任务不存在")
		return
	}
	OK(c, task)
}

// Create 创建任务
// @Summary 创建任务
// @Description priority 默认 medium，completed 默认 false
// @Tags 任务
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "任务信息"
// @Success 201 {object} models.Task "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Router /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.store.CreateTask(&task); err != nil {
		log.Printf("创建任务失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	Created(c, task)
}

// Update 部分更新任务
// @Summary 更新任务
// @Tags 任务
// @Accept json
// @Produce json
// @Param id path int true "任务ID"
// @Param request body CreateTaskRequest true "更新的字段"
// @Success 200 {object} models.Task "更新成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "任务不存在"
// @Router /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := bindPatchBody(c)
	if !ok {
		return
	}
	updates, details := parsePatch(raw, taskPatchFields)
	if len(details) > 0 {
		ValidationFailed(c, details)
		return
	}

	task, err := h.store.UpdateTask(id, updates)
	if err != nil {
		log.Printf("更新任务失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	if task == nil {
		NotFound(c, "任务不存在")
		return
	}
	OK(c, task)
}

// Delete 删除任务
// @Summary 删除任务
// @Tags 任务
// @Param id path int true "任务ID"
// @Success 204 "删除成功"
// @Failure 404 {object} map[string]interface{} "任务不存在"
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.DeleteTask(id)
	if err != nil {
		log.Printf("删除任务失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	if !deleted {
		NotFound(c, "任务不存在")
		return
	}
	NoContent(c)
}
