package api

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// 校验错误按 JSON 字段名返回，而不是 Go 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// OK 200 响应，直接返回记录或集合
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应，返回创建后的完整记录
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 空响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409 错误响应
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ValidationFailed 400 响应，携带字段级错误详情
func ValidationFailed(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": details})
}

// BindingError 把请求体绑定/校验错误转成 400 响应
// validator 错误逐字段给出原因，其余（如 JSON 语法错误）返回整体消息
func BindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); ok {
		details := make(map[string]string, len(verrs))
		for _, e := range verrs {
			details[e.Field()] = validationMessage(e)
		}
		ValidationFailed(c, details)
		return
	}
	BadRequest(c, "参数错误: "+err.Error())
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		*target = verrs
		return true
	}
	return false
}

// validationMessage 生成校验失败原因
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "必填字段缺失"
	case "email":
		return "邮箱格式不正确"
	case "min":
		return fmt.Sprintf("不能小于 %s", e.Param())
	case "max":
		return fmt.Sprintf("不能超过 %s", e.Param())
	case "oneof":
		return fmt.Sprintf("取值必须是 %s 之一", strings.Join(strings.Fields(e.Param()), "/"))
	case "gt":
		return fmt.Sprintf("必须大于 %s", e.Param())
	case "gte":
		return fmt.Sprintf("必须不小于 %s", e.Param())
	default:
		return "格式不正确"
	}
}
