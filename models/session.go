package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Session 服务端会话
// Token 以 HTTP-only Cookie 下发给客户端，有效期随访问滑动续期
type Session struct {
	Token     string    `json:"-" gorm:"column:token;primaryKey;size:64"`
	UserID    uint      `json:"userId" gorm:"column:user_id;index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expires_at;index;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

// TableName 设置表名
func (Session) TableName() string {
	return "sessions"
}

// IsValid 检查会话是否仍然有效
func (s *Session) IsValid() bool {
	return time.Now().Before(s.ExpiresAt)
}

// NewSessionToken 生成 32 字节随机会话标识（hex 编码）
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
