package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// PATCH 请求的合并语义要求区分「字段缺失」和「字段显式为 null」：
// 缺失保留原值，显式 null 清空可选字段。因此请求体先解码成
// map[string]json.RawMessage 保留键的出现信息，再按字段表逐个校验，
// 产出以列名为键、可直接交给存储层的补丁。

// patchKind 字段类型
type patchKind int

const (
	patchString patchKind = iota
	patchBool
	patchFloat
	patchInt
	patchUint
)

// patchField 单个可更新字段的声明
type patchField struct {
	json     string    // 请求体中的字段名
	column   string    // 存储层的列名
	kind     patchKind
	required bool     // 创建必填字段：更新时不允许 null 或空串
	enum     []string // 枚举约束（仅字符串字段）
	min      *int     // 下限（仅整数字段）
}

func intPtr(v int) *int { return &v }

// parsePatch 校验补丁字段并转换为列名补丁
// 未声明的字段直接忽略；返回的 details 非空表示校验失败
func parsePatch(raw map[string]json.RawMessage, fields []patchField) (map[string]interface{}, map[string]string) {
	updates := make(map[string]interface{})
	details := make(map[string]string)

	for _, f := range fields {
		rawVal, ok := raw[f.json]
		if !ok {
			continue
		}
		if isJSONNull(rawVal) {
			if f.required {
				details[f.json] = "不能为空"
				continue
			}
			updates[f.column] = nil
			continue
		}

		switch f.kind {
		case patchString:
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				details[f.json] = "必须是字符串"
				continue
			}
			if f.required && strings.TrimSpace(s) == "" {
				details[f.json] = "不能为空"
				continue
			}
			if len(f.enum) > 0 && !contains(f.enum, s) {
				details[f.json] = fmt.Sprintf("取值必须是 %s 之一", strings.Join(f.enum, "/"))
				continue
			}
			updates[f.column] = s
		case patchBool:
			var b bool
			if err := json.Unmarshal(rawVal, &b); err != nil {
				details[f.json] = "必须是布尔值"
				continue
			}
			updates[f.column] = b
		case patchFloat:
			var n float64
			if err := json.Unmarshal(rawVal, &n); err != nil {
				details[f.json] = "必须是数字"
				continue
			}
			updates[f.column] = n
		case patchInt:
			var n int
			if err := json.Unmarshal(rawVal, &n); err != nil {
				details[f.json] = "必须是整数"
				continue
			}
			if f.min != nil && n < *f.min {
				details[f.json] = fmt.Sprintf("不能小于 %d", *f.min)
				continue
			}
			updates[f.column] = n
		case patchUint:
			var n uint
			if err := json.Unmarshal(rawVal, &n); err != nil {
				details[f.json] = "必须是非负整数"
				continue
			}
			updates[f.column] = n
		}
	}

	return updates, details
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// parseID 解析路径中的整数 ID
func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id64), true
}

// bindPatchBody 解码 PATCH 请求体
func bindPatchBody(c *gin.Context) (map[string]json.RawMessage, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return nil, false
	}
	return raw, true
}
