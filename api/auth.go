package api

import (
	"log"

	"wedding/config"
	"wedding/middleware"
	"wedding/models"
	"wedding/service"
	"wedding/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg   *config.Config
	store store.Store
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config, s store.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: s}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50" example:"xiaowang"`
	Password string  `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Email    *string `json:"email" binding:"omitempty,email" example:"wang@example.com"`
	FullName *string `json:"fullName" binding:"omitempty,max=100" example:"王小明"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"xiaowang"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse App 端登录响应
type TokenResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户账号并建立会话。注册成功后会为用户创建默认婚礼设置。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 201 {object} models.User "注册成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 409 {object} map[string]interface{} "用户名已存在"
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return
	}

	// 检查用户名是否已存在
	existing, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		log.Printf("查询用户失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "注册失败"))
		return
	}
	if existing != nil {
		Conflict(c, "用户名已存在")
		return
	}

	// 加密密码
	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		log.Printf("密码加密失败: %v", err)
		InternalError(c, "密码加密失败")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     models.RoleUser,
	}
	if err := h.store.CreateUser(&user); err != nil {
		log.Printf("创建用户失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "创建用户失败"))
		return
	}

	// 创建默认婚礼设置。与创建用户是两次独立写入，第二次失败不回滚，
	// 缺失的记录会在首次访问设置接口时补建
	settings := models.UserSettings{UserID: user.ID, IsPremium: false}
	if err := h.store.CreateSettings(&settings); err != nil {
		log.Printf("创建默认设置失败 (userID=%d): %v", user.ID, err)
	}

	h.establishSession(c, user.ID)
	Created(c, user)
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户名密码登录，成功后下发会话 Cookie
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} models.User "登录成功"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 401 {object} map[string]interface{} "用户名或密码错误"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	user, ok := h.checkCredentials(c)
	if !ok {
		return
	}
	h.establishSession(c, user.ID)
	OK(c, user)
}

// Token App 端登录，签发 Bearer Token
// @Summary App 端登录
// @Description 用户名密码登录，签发 JWT 供非浏览器客户端使用
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} TokenResponse "登录成功"
// @Failure 401 {object} map[string]interface{} "用户名或密码错误"
// @Router /api/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	user, ok := h.checkCredentials(c)
	if !ok {
		return
	}
	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		log.Printf("生成 token 失败: %v", err)
		InternalError(c, "生成 token 失败")
		return
	}
	OK(c, TokenResponse{Token: token, User: *user})
}

// checkCredentials 校验用户名密码
// 用户不存在和密码错误返回同样的 401 响应，避免用户名枚举
func (h *AuthHandler) checkCredentials(c *gin.Context) (*models.User, bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindingError(c, err)
		return nil, false
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		log.Printf("查询用户失败: %v", err)
		InternalError(c, SafeErrorMessage(err, "登录失败"))
		return nil, false
	}
	if user == nil {
		Unauthorized(c, "用户名或密码错误")
		return nil, false
	}

	ok, err := service.VerifyPassword(req.Password, user.Password)
	if err != nil {
		log.Printf("校验密码失败 (userID=%d): %v", user.ID, err)
		InternalError(c, "登录失败")
		return nil, false
	}
	if !ok {
		Unauthorized(c, "用户名或密码错误")
		return nil, false
	}
	return user, true
}

// establishSession 建立服务端会话并下发 Cookie
func (h *AuthHandler) establishSession(c *gin.Context, userID uint) {
	sess, err := h.store.Sessions().Create(userID)
	if err != nil {
		log.Printf("创建会话失败 (userID=%d): %v", userID, err)
		return
	}
	setSessionCookie(c, h.cfg.Session.CookieName, sess.Token, h.cfg.Session.TTL)
}

// Logout 退出登录
// @Summary 退出登录
// @Description 销毁当前会话并清除 Cookie
// @Tags 认证
// @Produce json
// @Success 200 {object} map[string]interface{} "已退出"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.Session.CookieName); err == nil && token != "" {
		if err := h.store.Sessions().Delete(token); err != nil {
			log.Printf("销毁会话失败: %v", err)
		}
	}
	clearSessionCookie(c, h.cfg.Session.CookieName)
	OK(c, gin.H{"message": "已退出登录"})
}

// CurrentUser 获取当前登录用户
// @Summary 获取当前用户信息
// @Description 根据会话返回当前登录用户（不含密码）
// @Tags 认证
// @Produce json
// @Success 200 {object} models.User "获取成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Router /api/user [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	user, err := h.store.GetUser(userID)
	if err != nil {
		log.Printf("查询用户失败 (userID=%d): %v", userID, err)
		InternalError(c, SafeErrorMessage(err, "查询用户失败"))
		return
	}
	if user == nil {
		Unauthorized(c, "未登录")
		return
	}
	OK(c, user)
}
