package dto

import (
	"encoding/json"

	"bff/errors"
)

// Envelope là cấu trúc response chung của backend: { success, message, data }.
// Data giữ nguyên dạng raw để từng store tự parse theo schema của mình.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ListMeta là metadata phân trang của các endpoint danh sách
type ListMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PagedList là lớp lồng trong data của các endpoint danh sách:
// { data: { data: [...], meta: { page, limit, total } } }
type PagedList[T any] struct {
	Data []T      `json:"data"`
	Meta ListMeta `json:"meta"`
}

// DecodeData parse envelope.Data vào target, trả về lỗi MALFORMED_RESPONSE
// thay vì âm thầm rơi về collection rỗng
func (e *Envelope) DecodeData(target interface{}) error {
	if len(e.Data) == 0 {
		return errors.NewAppError(errors.ErrCodeMalformedResponse, "Response thiếu trường data", nil)
	}
	if err := json.Unmarshal(e.Data, target); err != nil {
		return errors.NewAppError(errors.ErrCodeMalformedResponse, "Không parse được trường data", err)
	}
	return nil
}
