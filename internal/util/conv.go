package util

import (
	"github.com/google/uuid"
)

// IsValidID 校验路径参数是否为合法的 UUID 主键
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
