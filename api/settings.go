package api

import (
	"log"

	"wedding/middleware"
	"wedding/models"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// SettingsHandler 用户婚礼设置处理器
type SettingsHandler struct {
	store store.Store
}

// NewSettingsHandler 创建设置处理器
func NewSettingsHandler(s store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// 设置可更新字段表
var settingsPatchFields = []patchField{
	{json: "weddingDate", column: "wedding_date", kind: patchString},
	{json: "coupleNames", column: "couple_names", kind: patchString},
	{json: "venueAddress", column: "venue_address", kind: patchString},
	{json: "theme", column: "theme", kind: patchString},
	{json: "isPremium", column: "is_premium", kind: patchBool, required: true},
}

// Get 获取当前用户的婚礼设置
// 注册时创建设置失败的话这里会补建默认记录
// @Summary 获取婚礼设置
// @Tags 设置
// @Produce json
// @Success 200 {object} models.UserSettings "获取成功"
// @Router /api/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	settings, err := h.store.GetSettingsByUser(userID)
	if err != nil {
		log.Printf("查询设置失败 (userID=%d): %v", userID, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if settings == nil {
		settings = &models.UserSettings{UserID: userID, IsPremium: false}
		if err := h.store.CreateSettings(settings); err != nil {
			log.Printf("补建默认设置失败 (userID=%d): %v", userID, err)
			InternalError(c, SafeErrorMessage(err, "创建默认设置失败"))
			return
		}
	}
	OK(c, settings)
}

// Update 部分更新当前用户的婚礼设置
// @Summary 更新婚礼设置
// @Tags 设置
// @Accept json
// @Produce json
// @Param request body models.UserSettings true "更新的字段"
// @Success 200 {object} models.UserSettings "更新成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Router /api/settings [patch]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	raw, ok := bindPatchBody(c)
	if !ok {
		return
	}
	updates, details := parsePatch(raw, settingsPatchFields)
	if len(details) > 0 {
		ValidationFailed(c, details)
		return
	}

	// 记录缺失时先补建再合并
	existing, err := h.store.GetSettingsByUser(userID)
	if err != nil {
		log.Printf("查询设置失败 (userID=%d): %v", userID, err)
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if existing == nil {
		if err := h.store.CreateSettings(&models.UserSettings{UserID: userID}); err != nil {
			log.Printf("补建默认设置失败 (userID=%d): %v", userID, err)
			InternalError(c, SafeErrorMessage(err, "创建默认设置失败"))
			return
		}
	}

	settings, err := h.store.UpdateSettingsByUser(userID, updates)
	if err != nil {
		log.Printf("更新设置失败 (userID=%d): %v", userID, err)
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	if settings == nil {
		NotFound(c, "设置不存在")
		return
	}
	OK(c, settings)
}
