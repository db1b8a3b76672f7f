package api

import (
	"log"

	"wedding/models"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// VendorHandler 供应商处理器
type VendorHandler struct {
	store store.Store
}

// NewVendorHandler 创建供应商处理器
func NewVendorHandler(s store.Store) *VendorHandler {
	return &VendorHandler{store: s}
}

// CreateVendorRequest 创建供应商请求
type CreateVendorRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100" example:"花开摄影工作室"`
	Category     string  `json:"category" binding:"required,min=1,max=50" example:"摄影"`
	ContactName  *string `json:"contactName" binding:"omitempty,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,max=30"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Website      *string `json:"website" binding:"omitempty,max=255"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
	Notes        *string `json:"notes" binding:"omitempty,max=500"`
	ContractFile *string `json:"contractFile" binding:"omitempty,max=255"`
}

// 供应商可更新字段表
var vendorPatchFields = []patchField{
	{json: "name", column: "name", kind: patchString, required: true},
	{json: "category", column: "category", kind: patchString, required: true},
	{json: "contactName", column: "contact_name", kind: patchString},
	{json: "phone", column: "phone", kind: patchString},
	{json: "email", column: "email", kind: patchString},
	{json: "website", column: "website", kind: patchString},
	{json: "address", column: "address", kind: patchString},
	{json: "notes", column: "notes", kind: patchString},
	{json: "contractFile", column: "contract_file", kind: patchString},
}

// List 获取供应商列表
// @Summary 获取供应商列表
// @Tags 供应商
// @Produce json
// @Success 200 {array} models.Vendor "获取成功"
// @Router /api/vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	list, err := h.store.ListVendors()
	if err != nil {
		log.Printf("查询供应商列表失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	OK(c, list)
}

// Get 获取单个供应商
// @Summary 获取供应商详情
// @Tags 供应商
// @Produce json
// @Param id path int true "供应商ID"
// @Success 200 {object} models.Vendor "获取成功"
// @Failure 404 {object} map[string]interface{} "供应商不存在"
// @Router /api/vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	vendor, err := h.store.GetVendor(id)
	if err != nil {
		log.Printf("查询供应商失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if vendor == nil {
		NotFound(c, "供应商不存在")
		return
	}
	OK(c, vendor)
}

// Create 创建供应商
// @Summary 创建供应商
// @Tags 供应商
// @Accept json
// @Produce json
// @Param request body CreateVendorRequest true "供应商信息"
// @Success 201 {object} models.Vendor "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Router /api/vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	vendor := models.Vendor{
		Name:         req.Name,
		Category:     req.Category,
		ContactName:  req.ContactName,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Address:      req.Address,
		Notes:        req.Notes,
		ContractFile: req.ContractFile,
	}

	if err := h.store.CreateVendor(&vendor); err != nil {
		log.Printf("创建供应商失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	Created(c, vendor)
}

// Update 部分更新供应商
// @Summary 更新供应商
// @Tags 供应商
// @Accept json
// @Produce json
// @Param id path int true "供应商ID"
// @Param request body CreateVendorRequest true "更新的字段"
// @Success 200 {object} models.Vendor "更新成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "供应商不存在"
// @Router /api/vendors/{id} [patch]
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := bindPatchBody(c)
	if !ok {
		return
	}
	updates, details := parsePatch(raw, vendorPatchFields)
	if len(details) > 0 {
		ValidationFailed(c, details)
		return
	}

	vendor, err := h.store.UpdateVendor(id, updates)
	if err != nil {
		log.Printf("更新供应商失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	if vendor == nil {
		NotFound(c, "供应商不存在")
		return
	}
	OK(c, vendor)
}

// Delete 删除供应商
// 预算项目和预约中的 vendorId 引用不做级联清理，允许悬空
// @Summary 删除供应商
// @Tags 供应商
// @Param id path int true "供应商ID"
// @Success 204 "删除成功"
// @Failure 404 {object} map[string]interface{} "供应商不存在"
// @Router /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.DeleteVendor(id)
	if err != nil {
		log.Printf("删除供应商失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	if !deleted {
		NotFound(c, "供应商不存在")
		return
	}
	NoContent(c)
}
