package api

import (
	"log"

	"wedding/middleware"
	"wedding/models"
	"wedding/service"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler 预约处理器
type AppointmentHandler struct {
	store store.Store
	email *service.EmailService
}

// NewAppointmentHandler 创建预约处理器
func NewAppointmentHandler(s store.Store, email *service.EmailService) *AppointmentHandler {
	return &AppointmentHandler{store: s, email: email}
}

// CreateAppointmentRequest 创建预约请求
type CreateAppointmentRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=200" example:"试纱"`
	VendorID *uint   `json:"vendorId"`
	Date     string  `json:"date" binding:"required,max=20" example:"2025-05-20"`
	Time     string  `json:"time" binding:"required,max=10" example:"14:00"`
	Location *string `json:"location" binding:"omitempty,max=255"`
	Notes    *string `json:"notes" binding:"omitempty,max=500"`
	Reminder *bool   `json:"reminder"`
}

// 预约可更新字段表
var appointmentPatchFields = []patchField{
	{json: "title", column: "title", kind: patchString, required: true},
	{json: "vendorId", column: "vendor_id", kind: patchUint},
	{json: "date", column: "date", kind: patchString, required: true},
	{json: "time", column: "time", kind: patchString, required: true},
	{json: "location", column: "location", kind: patchString},
	{json: "notes", column: "notes", kind: patchString},
	{json: "reminder", column: "reminder", kind: patchBool, required: true},
}

// List 获取预约列表
// @Summary 获取预约列表
// @Tags 预约
// @Produce json
// @Success 200 {array} models.Appointment "获取成功"
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.store.ListAppointments()
	if err != nil {
		log.Printf("查询预约列表失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	OK(c, list)
}

// Get 获取单个预约
// @Summary 获取预约详情
// @Tags 预约
// @Produce json
// @Param id path int true "预约ID"
// @Success 200 {object} models.Appointment "获取成功"
// @Failure 404 {object} map[string]interface{} "预约不存在"
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	appt, err := h.store.GetAppointment(id)
	if err != nil {
		log.Printf("查询预约失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if appt == nil {
		NotFound(c, "预约不存在")
		return
	}
	OK(c, appt)
}

// Create 创建预约
// @Summary 创建预约
// @Description reminder 默认 true
// @Tags 预约
// @Accept json
// @Produce json
// @Param request body CreateAppointmentRequest true "预约信息"
// @Success 201 {object} models.Appointment "创建成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	appt := models.Appointment{
		Title:    req.Title,
		VendorID: req.VendorID,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Notes:    req.Notes,
		Reminder: true,
	}
	if req.Reminder != nil {
		appt.Reminder = *req.Reminder
	}

	if err := h.store.CreateAppointment(&appt); err != nil {
		log.Printf("创建预约失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	Created(c, appt)
}

// Update 部分更新预约
// @Summary 更新预约
// @Tags 预约
// @Accept json
// @Produce json
// @Param id path int true "预约ID"
// @Param request body CreateAppointmentRequest true "更新的字段"
// @Success 200 {object} models.Appointment "更新成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 404 {object} map[string]interface{} "预约不存在"
// @Router /api/appointments/{id} [patch]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := bindPatchBody(c)
	if !ok {
		return
	}
	updates, details := parsePatch(raw, appointmentPatchFields)
	if len(details) > 0 {
		ValidationFailed(c, details)
		return
	}

	appt, err := h.store.UpdateAppointment(id, updates)
	if err != nil {
		log.Printf("更新预约失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	if appt == nil {
		NotFound(c, "预约不存在")
		return
	}
	OK(c, appt)
}

// Delete 删除预约
// @Summary 删除预约
// @Tags 预约
// @Param id path int true "预约ID"
// @Success 204 "删除成功"
// @Failure 404 {object} map[string]interface{} "预约不存在"
// @Router /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.DeleteAppointment(id)
	if err != nil {
		log.Printf("删除预约失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	if !deleted {
		NotFound(c, "预约不存在")
		return
	}
	NoContent(c)
}

// Remind 发送预约提醒邮件
// @Summary 发送预约提醒
// @Description 向当前用户的邮箱发送该预约的提醒邮件，未开启提醒的预约不发送
// @Tags 预约
// @Produce json
// @Param id path int true "预约ID"
// @Success 200 {object} map[string]interface{} "发送成功"
// @Failure 400 {object} map[string]interface{} "未开启提醒或用户未设置邮箱"
// @Failure 404 {object} map[string]interface{} "预约不存在"
// @Router /api/appointments/{id}/remind [post]
func (h *AppointmentHandler) Remind(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	appt, err := h.store.GetAppointment(id)
	if err != nil {
		log.Printf("查询预约失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if appt == nil {
		NotFound(c, "预约不存在")
		return
	}
	if !appt.Reminder {
		BadRequest(c, "该预约未开启提醒")
		return
	}

	userID := middleware.GetCurrentUserID(c)
	user, err := h.store.GetUser(userID)
	if err != nil || user == nil {
		InternalError(c, "查询用户失败")
		return
	}
	if user.Email == nil || *user.Email == "" {
		BadRequest(c, "请先在账号中设置邮箱")
		return
	}

	if err := h.email.SendAppointmentReminder(*user.Email, appt); err != nil {
		log.Printf("发送提醒邮件失败 (id=%d): %v", id, err)
		InternalError(c, SafeErrorMessage(err, "邮件发送失败"))
		return
	}
	OK(c, gin.H{"message": "提醒邮件已发送"})
}
