package util

import "strconv"

// ClampPage 页码从 1 开始
func ClampPage(raw string) int {
	page, _ := strconv.Atoi(raw)
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit 每页数量限制在 [1,50]，默认 20
func ClampLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || raw == "" {
		return 20
	}
	if limit < 1 {
		return 1
	}
	if limit > 50 {
		return 50
	}
	return limit
}
