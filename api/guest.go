package api

import (
	"log"

	"wedding/models"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// GuestHandler 宾客处理器
type GuestHandler struct {
	store store.Store
}

// NewGuestHandler 创建宾客处理器
func NewGuestHandler(s store.Store) *GuestHandler {
	return &GuestHandler{store: s}
}

// CreateGuestRequest 创建宾客请求
type CreateGuestRequest struct {
	Name                string  `json:"name" binding:"required,min=1,max=100" example:"李安娜"`
	Email               *string `json:"email" binding:"omitempty,email" example:"ana@example.com"`
	Phone               *string `json:"phone" binding:"omitempty,max=30"`
	Category            string  `json:"category" binding:"required,min=1,max=50" example:"家人"`
	RSVPStatus          string  `json:"rsvpStatus" binding:"omitempty,oneof=pending confirmed declined"`
	PlusOne             *bool   `json:"plusOne"`
	DietaryRestrictions *string `json:"dietaryRestrictions" binding:"omitempty,max=255"`
	TableAssignment     *string `json:"tableAssignment" binding:"omitempty,max=50"`
	MealChoice          *string `json:"mealChoice" binding:"omitempty,max=50"`
	Notes               *string `json:"notes" binding:"omitempty,max=500"`
}

// 宾客可更新字段表
var guestPatchFields = []patchField{
	{json: "name", column: "name", kind: patchString, required: true},
	{json: "email", column: "email", kind: patchString},
	{json: "phone", column: "phone", kind: patchString},
	{json: "category", column: "category", kind: patchString, required: true},
	{json: "rsvpStatus", column: "rsvp_status", kind: patchString, required: true, enum: models.RSVPStatuses()},
	{json: "plusOne", column: "plus_one", kind: patchBool, required: true},
	{json: "dietaryRestrictions", column: "dietary_restrictions", kind: patchString},
	{json: "tableAssignment", column: "table_assignment", kind: patchString},
	{json: "mealChoice", column: "meal_choice", kind: patchString},
	{json: "notes", column: "notes", kind: patchString},
}

// List 获取宾客列表
// @Summary 获取宾客列表
// @Description 返回全部宾客
// @Tags 宾客
// @Produce json
// @Success 200 {array} models.Guest "获取成功"
// @Router /api/guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	list, err := h.store.ListGuests()
	if err != nil {
		log.Printf("查询宾客列表失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	OK(c, list)
}

// Get 获取单个宾客
// @Summary 获取宾客详情
// @Tags 宾客
// @Produce json
// @Param id path int true "宾客ID"
// @Success 200 {object} models.Guest "获取成功"
// @Failure 404 {object} map[string]interface{} "宾客不存在"
// @Router /api/guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	guest, err := h.store.GetGuest(id)
	if err != nil {
		log.Printf("查询宾客失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if guest == nil {
		NotFound(c, "宾客不存在")
		return
	}
	OK(c, guest)
}

// Create 创建宾客
// @Summary 创建宾客
// @Description 创建宾客记录，rsvpStatus 默认 pending，plusOne 默认 false
// @Tags 宾客
// @Accept json
// @Produce json
// @Param request body CreateGuestRequest true "宾客信息"
// @Success 201 {object} models.Guest "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Router /api/guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	guest := models.Guest{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Category:            req.Category,
		RSVPStatus:          req.RSVPStatus,
		DietaryRestrictions: req.DietaryRestrictions,
		TableAssignment:     req.TableAssignment,
		MealChoice:          req.MealChoice,
		Notes:               req.Notes,
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPPending
	}
	if req.PlusOne != nil {
		guest.PlusOne = *req.PlusOne
	}

	if err := h.store.CreateGuest(&guest); err != nil {
		log.Printf("创建宾客失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	Created(c, guest)
}

// Update 部分更新宾客
// @Summary 更新宾客
// @Description 按字段合并更新：请求体中出现的字段（包括显式 null）覆盖原值，未出现的字段保持不变
// @Tags 宾客
// @Accept json
// @Produce json
// @Param id path int true "宾客ID"
// @Param request body CreateGuestRequest true "更新的字段"
// @Success 200 {object} models.Guest "更新成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "宾客不存在"
// @Router /api/guests/{id} [patch]
func (h *GuestHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := bindPatchBody(c)
	if !ok {
		return
	}
	updates, details := parsePatch(raw, guestPatchFields)
	if len(details) > 0 {
		ValidationFailed(c, details)
		return
	}

	guest, err := h.store.UpdateGuest(id, updates)
	if err != nil {
		log.Printf("更新宾客失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	if guest == nil {
		NotFound(c, "宾客不存在")
		return
	}
	OK(c, guest)
}

// Delete 删除宾客
// @Summary 删除宾客
// @Tags 宾客
// @Param id path int true "宾客ID"
// @Success 204 "删除成功"
// @Failure 404 {object} map[string]interface{} "宾客不存在"
// @Router /api/guests/{id} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.DeleteGuest(id)
	if err != nil {
		log.Printf("删除宾客失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	if !deleted {
		NotFound(c, "宾客不存在")
		return
	}
	NoContent(c)
}
