package models

import "time"

// Session là danh tính đã xác thực của một phiên trình duyệt,
// lưu bền trong Redis để sống qua reload.
type Session struct {
	User            *User     `json:"user"`
	AccessToken     string    `json:"accessToken"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
