package models

import "time"

type User struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Verified      bool      `json:"verified"`
	Status        string    `json:"status"`
	ProfilePhoto  string    `json:"profilePhoto,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Merge gộp các field khác rỗng của partial vào user hiện tại
func (u *User) Merge(partial UserPatch) {
	if partial.Name != nil {
		u.Name = *partial.Name
	}
	if partial.Email != nil {
		u.Email = *partial.Email
	}
	if partial.Role != nil {
		u.Role = *partial.Role
	}
	if partial.Status != nil {
		u.Status = *partial.Status
	}
	if partial.Verified != nil {
		u.Verified = *partial.Verified
	}
	if partial.ProfilePhoto != nil {
		u.ProfilePhoto = *partial.ProfilePhoto
	}
	if partial.ContactNumber != nil {
		u.ContactNumber = *partial.ContactNumber
	}
}

// UserPatch là bản cập nhật từng phần cho user của phiên hiện tại
type UserPatch struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Role          *string `json:"role,omitempty"`
	Status        *string `json:"status,omitempty"`
	Verified      *bool   `json:"verified,omitempty"`
	ProfilePhoto  *string `json:"profilePhoto,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
}
