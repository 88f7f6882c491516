package services

import (
	"encoding/base64"
	"testing"
)

func makeToken(payload string) string {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}
	return encode(`{"alg":"HS256","typ":"JWT"}`) + "." + encode(payload) + "." + encode("sig")
}

func TestGetUserIDFromToken(t *testing.T) {
	token := makeToken(`{"id":42,"role":"ADMIN","exp":9999999999}`)

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("GetUserIDFromToken trả lỗi: %v", err)
	}
	if userID != 42 || role != "ADMIN" {
		t.Errorf("claims sai: id=%d role=%s", userID, role)
	}
}

func TestGetUserIDFromTokenRejectsMalformed(t *testing.T) {
	if _, _, err := GetUserIDFromToken("not-a-jwt"); err == nil {
		t.Error("token không đủ ba phần phải bị từ chối")
	}

	if _, _, err := GetUserIDFromToken(makeToken(`{"role":"USER"}`)); err == nil {
		t.Error("token thiếu claim id phải bị từ chối")
	}

	if _, _, err := GetUserIDFromToken(makeToken(`{"id":1}`)); err == nil {
		t.Error("token thiếu claim role phải bị từ chối")
	}
}
