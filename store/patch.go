package store

import (
	"fmt"
	"reflect"
	"strings"
)

// applyPatch 把以列名为键的补丁逐字段合并到记录上。
// 键存在即覆盖（值为 nil 时把可空字段清为零值），键不存在的字段保持原样。
// 这与 GORM 的 Updates(map) 行为一致，保证两种存储实现语义相同。
func applyPatch(rec interface{}, updates map[string]interface{}) error {
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("applyPatch: 需要结构体指针，收到 %T", rec)
	}
	elem := v.Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		col := columnName(t.Field(i))
		if col == "" {
			continue
		}
		val, ok := updates[col]
		if !ok {
			continue
		}
		field := elem.Field(i)
		if !field.CanSet() {
			continue
		}
		if val == nil {
			field.Set(reflect.Zero(field.Type()))
			continue
		}
		rv := reflect.ValueOf(val)
		if field.Kind() == reflect.Ptr {
			target := field.Type().Elem()
			if !rv.Type().ConvertibleTo(target) {
				return fmt.Errorf("applyPatch: 字段 %s 类型不匹配: %T", col, val)
			}
			p := reflect.New(target)
			p.Elem().Set(rv.Convert(target))
			field.Set(p)
			continue
		}
		if !rv.Type().ConvertibleTo(field.Type()) {
			return fmt.Errorf("applyPatch: 字段 %s 类型不匹配: %T", col, val)
		}
		field.Set(rv.Convert(field.Type()))
	}
	return nil
}

// columnName 从 gorm tag 中取列名
func columnName(f reflect.StructField) string {
	tag := f.Tag.Get("gorm")
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

// setRecordID 写入记录的 ID 字段
func setRecordID(rec interface{}, id uint) {
	f := reflect.ValueOf(rec).Elem().FieldByName("ID")
	if f.IsValid() && f.CanSet() {
		f.SetUint(uint64(id))
	}
}
