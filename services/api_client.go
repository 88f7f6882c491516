package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bff/dto"
	"bff/errors"
)

// APIClient là wrapper mỏng quanh backend REST: ghép base URL với path,
// gắn bearer token nếu có, rồi parse envelope { success, message, data }.
// Không retry, không timeout riêng ngoài timeout của http.Client.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient tạo API client cho backend
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Call gửi một request lên backend và parse envelope trả về.
// Envelope có success=false vẫn được trả kèm error để caller đọc message.
func (c *APIClient) Call(ctx context.Context, method, path, token string, body interface{}) (*dto.Envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Không serialize được request body", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Không tạo được request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Không kết nối được đến backend", err)
	}
	defer resp.Body.Close()

	var envelope dto.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeMalformedResponse, "Response từ backend không đúng định dạng", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &envelope, errors.NewAppError(errors.ErrCodeUnauthorized, messageOrDefault(envelope.Message, "Chưa xác thực"), nil)
	}
	if resp.StatusCode == http.StatusForbidden {
		return &envelope, errors.NewAppError(errors.ErrCodeForbidden, messageOrDefault(envelope.Message, "Không có quyền truy cập"), nil)
	}
	if resp.StatusCode >= 400 {
		return &envelope, errors.NewAppError(errors.ErrCodeUpstream, messageOrDefault(envelope.Message, "Thao tác thất bại"), nil)
	}
	if !envelope.Success {
		return &envelope, errors.NewAppError(errors.ErrCodeUpstream, messageOrDefault(envelope.Message, "Thao tác thất bại"), nil)
	}

	return &envelope, nil
}

// Get gửi GET với query string đã build sẵn
func (c *APIClient) Get(ctx context.Context, path, token string) (*dto.Envelope, error) {
	return c.Call(ctx, http.MethodGet, path, token, nil)
}

func messageOrDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

// IsAuthError kiểm tra lỗi 401/403 từ backend, dùng cho forced logout
func IsAuthError(err error) bool {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return false
	}
	return appErr.Code == errors.ErrCodeUnauthorized || appErr.Code == errors.ErrCodeForbidden
}

// ErrorMessage lấy message hiển thị được từ một lỗi bất kỳ
func ErrorMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
