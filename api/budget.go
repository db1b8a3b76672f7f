package api

import (
	"log"

	"wedding/models"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 预算项目处理器
type BudgetHandler struct {
	store store.Store
}

// NewBudgetHandler 创建预算项目处理器
func NewBudgetHandler(s store.Store) *BudgetHandler {
	return &BudgetHandler{store: s}
}

// CreateBudgetItemRequest 创建预算项目请求
type CreateBudgetItemRequest struct {
	Category        string   `json:"category" binding:"required,min=1,max=50" example:"场地"`
	Description     string   `json:"description" binding:"required,min=1,max=255" example:"宴会厅租赁"`
	EstimatedAmount *float64 `json:"estimatedAmount" binding:"required" example:"30000"`
	ActualAmount    *float64 `json:"actualAmount"`
	Paid            *bool    `json:"paid"`
	DueDate         *string  `json:"dueDate" binding:"omitempty,max=20" example:"2025-06-01"`
	VendorID        *uint    `json:"vendorId"`
	ReceiptImage    *string  `json:"receiptImage" binding:"omitempty,max=255"`
}

// 预算项目可更新字段表
var budgetPatchFields = []patchField{
	{json: "category", column: "category", kind: patchString, required: true},
	{json: "description", column: "description", kind: patchString, required: true},
	{json: "estimatedAmount", column: "estimated_amount", kind: patchFloat, required: true},
	{json: "actualAmount", column: "actual_amount", kind: patchFloat},
	{json: "paid", column: "paid", kind: patchBool, required: true},
	{json: "dueDate", column: "due_date", kind: patchString},
	{json: "vendorId", column: "vendor_id", kind: patchUint},
	{json: "receiptImage", column: "receipt_image", kind: patchString},
}

// List 获取预算项目列表
// @Summary 获取预算项目列表
// @Tags 预算
// @Produce json
// @Success 200 {array} models.BudgetItem "获取成功"
// @Router /api/budget [get]
func (h *BudgetHandler) List(c *gin.Context) {
	list, err := h.store.ListBudgetItems()
	if err != nil {
		log.Printf("查询预算列表失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	OK(c, list)
}

// Get 获取单个预算项目
// @Summary 获取预算项目详情
// @Tags 预算
// @Produce json
// @Param id path int true "预算项目ID"
// @Success 200 {object} models.BudgetItem "获取成功"
// @Failure 404 {object} map[string]interface{} "预算项目不存在"
// @Router /api/budget/{id} [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.store.GetBudgetItem(id)
	if err != nil {
		log.Printf("查询预算项目失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if item == nil {
		NotFound(c, "预算项目不存在")
		return
	}
	OK(c, item)
}

// Create 创建预算项目
// @Summary 创建预算项目
// @Description vendorId 是对供应商的弱引用，不校验存在性
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body CreateBudgetItemRequest true "预算项目信息"
// @Success 201 {object} models.BudgetItem "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Router /api/budget [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var req CreateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	item := models.BudgetItem{
		Category:        req.Category,
		Description:     req.Description,
		EstimatedAmount: *req.EstimatedAmount,
		ActualAmount:    req.ActualAmount,
		DueDate:         req.DueDate,
		VendorID:        req.VendorID,
		ReceiptImage:    req.ReceiptImage,
	}
	if req.Paid != nil {
		item.Paid = *req.Paid
	}

	if err := h.store.CreateBudgetItem(&item); err != nil {
		log.Printf("创建预算项目失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	Created(c, item)
}

// Update 部分更新预算项目
// @Summary 更新预算项目
// @Tags 预算
// @Accept json
// @Produce json
// @Param id path int true "预算项目ID"
// @Param request body CreateBudgetItemRequest true "更新的字段"
// @Success 200 {object} models.BudgetItem "更新成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "预算项目不存在"
// @Router /api/budget/{id} [patch]
func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := bindPatchBody(c)
	if !ok {
		return
	}
	updates, details := parsePatch(raw, budgetPatchFields)
	if len(details) > 0 {
		ValidationFailed(c, details)
		return
	}

	item, err := h.store.UpdateBudgetItem(id, updates)
	if err != nil {
		log.Printf("更新预算项目失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	if item == nil {
		NotFound(c, "预算项目不存在")
		return
	}
	OK(c, item)
}

// Delete 删除预算项目
// @Summary 删除预算项目
// @Tags 预算
// @Param id path int true "预算项目ID"
// @Success 204 "删除成功"
// @Failure 404 {object} map[string]interface{} "预算项目不存在"
// @Router /api/budget/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.DeleteBudgetItem(id)
	if err != nil {
		log.Printf("删除预算项目失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	if !deleted {
		NotFound(c, "预算项目不存在")
		return
	}
	NoContent(c)
}
