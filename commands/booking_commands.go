package commands

import (
	"context"
	"fmt"
	"net/http"

	"bff/dto"
	"bff/services"
)

// AdminCommand định nghĩa interface cho các mutation sau confirm modal.
// Mỗi command là một thao tác độc lập; retry không được dedupe phía client,
// gửi trùng thì backend từ chối.
type AdminCommand interface {
	Execute(ctx context.Context) error
}

// CancelBookingCommand command để hủy một booking
type CancelBookingCommand struct {
	bookingID uint
	token     string
	api       *services.APIClient
}

func NewCancelBookingCommand(bookingID uint, token string, api *services.APIClient) *CancelBookingCommand {
	return &CancelBookingCommand{
		bookingID: bookingID,
		token:     token,
		api:       api,
	}
}

func (c *CancelBookingCommand) Execute(ctx context.Context) error {
	_, err := c.api.Call(ctx, http.MethodPatch, fmt.Sprintf("/book/cancel/%d", c.bookingID), c.token, nil)
	return err
}

// DeleteRoomCommand command để xóa một phòng vật lý
type DeleteRoomCommand struct {
	roomID uint
	token  string
	api    *services.APIClient
}

func NewDeleteRoomCommand(roomID uint, token string, api *services.APIClient) *DeleteRoomCommand {
	return &DeleteRoomCommand{
		roomID: roomID,
		token:  token,
		api:    api,
	}
}

func (c *DeleteRoomCommand) Execute(ctx context.Context) error {
	_, err := c.api.Call(ctx, http.MethodDelete, fmt.Sprintf("/room/%d", c.roomID), c.token, nil)
	return err
}

// DeleteRoomTypeCommand command để xóa một loại phòng
type DeleteRoomTypeCommand struct {
	roomTypeID uint
	token      string
	api        *services.APIClient
}

func NewDeleteRoomTypeCommand(roomTypeID uint, token string, api *services.APIClient) *DeleteRoomTypeCommand {
	return &DeleteRoomTypeCommand{
		roomTypeID: roomTypeID,
		token:      token,
		api:        api,
	}
}

func (c *DeleteRoomTypeCommand) Execute(ctx context.Context) error {
	_, err := c.api.Call(ctx, http.MethodDelete, fmt.Sprintf("/roomCategory/%d", c.roomTypeID), c.token, nil)
	return err
}

// UpdateUserStatusCommand command để block/unblock một user
type UpdateUserStatusCommand struct {
	userID uint
	status string
	token  string
	api    *services.APIClient
}

func NewUpdateUserStatusCommand(userID uint, status, token string, api *services.APIClient) *UpdateUserStatusCommand {
	return &UpdateUserStatusCommand{
		userID: userID,
		status: status,
		token:  token,
		api:    api,
	}
}

func (c *UpdateUserStatusCommand) Execute(ctx context.Context) error {
	body := dto.UserStatusRequest{Status: c.status}
	_, err := c.api.Call(ctx, http.MethodPatch, fmt.Sprintf("/auth/%d", c.userID), c.token, body)
	return err
}

// UpdateUserRoleCommand command để đổi role một user
type UpdateUserRoleCommand struct {
	userID uint
	role   string
	token  string
	api    *services.APIClient
}

func NewUpdateUserRoleCommand(userID uint, role, token string, api *services.APIClient) *UpdateUserRoleCommand {
	return &UpdateUserRoleCommand{
		userID: userID,
		role:   role,
		token:  token,
		api:    api,
	}
}

func (c *UpdateUserRoleCommand) Execute(ctx context.Context) error {
	body := dto.UserRoleRequest{Role: c.role}
	_, err := c.api.Call(ctx, http.MethodPatch, fmt.Sprintf("/auth/%d", c.userID), c.token, body)
	return err
}

// DeleteUserCommand command để xóa (mềm) một user
type DeleteUserCommand struct {
	userID uint
	token  string
	api    *services.APIClient
}

func NewDeleteUserCommand(userID uint, token string, api *services.APIClient) *DeleteUserCommand {
	return &DeleteUserCommand{
		userID: userID,
		token:  token,
		api:    api,
	}
}

func (c *DeleteUserCommand) Execute(ctx context.Context) error {
	_, err := c.api.Call(ctx, http.MethodDelete, fmt.Sprintf("/auth/%d", c.userID), c.token, nil)
	return err
}
