package controllers

import (
	"fmt"
	"net/http"
	"os"

	"bff/dto"
	"bff/models"
	"bff/response"
	"bff/services"
	"bff/services/logger"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// AuthController proxy các thao tác tài khoản lên backend và giữ
// session store của từng phiên trình duyệt
type AuthController struct {
	api       *services.APIClient
	persister services.SessionPersister
	logger    logger.Logger
}

func NewAuthController(api *services.APIClient, persister services.SessionPersister, log logger.Logger) *AuthController {
	return &AuthController{
		api:       api,
		persister: persister,
		logger:    log,
	}
}

func (ct *AuthController) sessionStore(c *gin.Context) *services.SessionStore {
	sessionId := c.GetString("sessionId")
	return services.NewSessionStore(c.Request.Context(), services.SessionStoreOptions{
		SessionID: sessionId,
		API:       ct.api,
		Persister: ct.persister,
		Logger:    ct.logger,
	})
}

// Login đăng nhập qua backend rồi lưu danh tính vào session
func (ct *AuthController) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	envelope, err := ct.api.Call(c.Request.Context(), http.MethodPost, "/auth/login", "", request)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	var data dto.LoginData
	if err := envelope.DecodeData(&data); err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}

	store := ct.sessionStore(c)
	store.Login(c.Request.Context(), &data.User, data.AccessToken)

	// Cookie accessToken để middleware chặn route dùng được khi không có header
	c.SetCookie("accessToken", data.AccessToken, 0, "/", "", false, true)

	response.Success(c, dto.SessionResponse{
		User:            &data.User,
		IsAuthenticated: true,
	})
}

// Register đăng ký tài khoản mới, chỉ forward lên backend
func (ct *AuthController) Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	envelope, err := ct.api.Call(c.Request.Context(), http.MethodPost, "/auth/register", "", request)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	var user models.User
	if err := envelope.DecodeData(&user); err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}

	response.Success(c, user)
}

// AuthGoogle xác thực id token Google rồi forward lên backend đổi lấy phiên
func (ct *AuthController) AuthGoogle(c *gin.Context) {
	var request dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), request.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.BadRequest(c, "Token Google không hợp lệ")
		return
	}
	if verified, ok := payload.Claims["email_verified"].(bool); !ok || !verified {
		response.BadRequest(c, "Email Google chưa được xác minh")
		return
	}

	envelope, err := ct.api.Call(c.Request.Context(), http.MethodPost, "/auth/google", "", request)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	var data dto.LoginData
	if err := envelope.DecodeData(&data); err != nil {
		response.UpstreamError(c, services.ErrorMessage(err))
		return
	}

	store := ct.sessionStore(c)
	store.Login(c.Request.Context(), &data.User, data.AccessToken)
	c.SetCookie("accessToken", data.AccessToken, 0, "/", "", false, true)

	response.Success(c, dto.SessionResponse{
		User:            &data.User,
		IsAuthenticated: true,
	})
}

// Logout xóa phiên và cookie
func (ct *AuthController) Logout(c *gin.Context) {
	store := ct.sessionStore(c)
	store.Logout(c.Request.Context())
	c.SetCookie("accessToken", "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// Me kiểm tra lại phiên với backend. User vừa bị block sẽ nhận 401
// và bị logout ngay tại đây.
func (ct *AuthController) Me(c *gin.Context) {
	store := ct.sessionStore(c)

	session := store.Current()
	if !session.IsAuthenticated {
		response.Unauthorized(c)
		return
	}

	if err := store.Revalidate(c.Request.Context()); err != nil {
		if services.IsAuthError(err) {
			c.SetCookie("accessToken", "", -1, "/", "", false, true)
			response.Unauthorized(c)
			return
		}
		// Backend chập chờn thì giữ nguyên phiên đang có
		ct.logger.Error("Revalidate session thất bại: %v", err)
	}

	session = store.Current()
	response.Success(c, dto.SessionResponse{
		User:            session.User,
		IsAuthenticated: session.IsAuthenticated,
	})
}

// UpdateProfile cập nhật hồ sơ: forward lên backend rồi merge vào session
func (ct *AuthController) UpdateProfile(c *gin.Context) {
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	token := c.GetString("accessToken")
	userID := c.GetUint("userID")

	_, err := ct.api.Call(c.Request.Context(), http.MethodPatch, fmt.Sprintf("/auth/%d", userID), token, patch)
	if err != nil {
		response.BadRequest(c, services.ErrorMessage(err))
		return
	}

	store := ct.sessionStore(c)
	store.UpdateUser(c.Request.Context(), patch)

	session := store.Current()
	response.Success(c, session.User)
}
