package services

import (
	"encoding/json"
	"strings"

	"bff/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken lấy userID và role từ payload của access token.
// Gateway không giữ secret ký token nên chỉ decode payload; backend mới là
// nơi xác thực chữ ký.
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	userID, okID := claimsMap["id"].(float64)
	if !okID {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := claimsMap["role"].(string)
	if !okRole {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	return uint(userID), role, nil
}

// GetIDFromToken lấy userID từ token
func GetIDFromToken(tokenString string) (uint, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}
