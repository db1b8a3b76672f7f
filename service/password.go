package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt 参数，内存硬化以抵御离线暴力破解
const (
	scryptN       = 32768
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 32
	scryptSaltLen = 16
)

// ErrMalformedHash 存储的密码哈希格式非法
// 长度不符不能静默当作密码错误处理，必须显式报错
var ErrMalformedHash = errors.New("密码哈希格式非法")

// HashPassword 生成随机盐并派生密码哈希，返回 hash:salt 格式的字符串
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, scryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("生成盐失败: %w", err)
	}
	hash, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("派生密码哈希失败: %w", err)
	}
	return hex.EncodeToString(hash) + ":" + hex.EncodeToString(salt), nil
}

// VerifyPassword 校验明文密码与存储的 hash:salt 是否匹配
// 重新派生后使用常数时间比较，避免时序侧信道
func VerifyPassword(plaintext, stored string) (bool, error) {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 {
		return false, ErrMalformedHash
	}
	hash, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, ErrMalformedHash
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}
	// 比较前先校验长度：长度不符说明存储数据损坏，而不是密码错误
	if len(hash) != scryptKeyLen || len(salt) != scryptSaltLen {
		return false, ErrMalformedHash
	}
	derived, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("派生密码哈希失败: %w", err)
	}
	return subtle.ConstantTimeCompare(hash, derived) == 1, nil
}
