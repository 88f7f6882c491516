package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bff/constants"
	middlewares "bff/middleware"
	"bff/response"
	"bff/services"
	"bff/services/logger"

	"github.com/gin-gonic/gin"
)

func adminTestRouter(upstream *httptest.Server) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewDefaultLogger(logger.ErrorLevel)
	api := services.NewAPIClient(upstream.URL, upstream.Client())
	adminStore := services.NewAdminStore(services.AdminStoreOptions{API: api, Logger: log})
	controller := NewAdminController(api, adminStore)

	router := gin.New()
	admin := router.Group("/admin", middlewares.AuthMiddleware(constants.RoleAdmin))
	admin.GET("/bookings", controller.GetBookings)
	admin.PATCH("/users/:id/role", controller.UpdateUserRole)
	return router
}

func TestAdminBookingsForwardsFiltersAndMeta(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("email") != "jane@x.com" {
			t.Errorf("filter email phải được forward, nhận %q", query.Get("email"))
		}
		if query.Get("page") != "2" || query.Get("limit") != "5" {
			t.Errorf("phân trang phải được forward, nhận page=%q limit=%q", query.Get("page"), query.Get("limit"))
		}
		w.Write([]byte(`{"success":true,"data":{
			"data":[{"id":7,"userId":3,"status":"CONFIRMED","totalAmount":400}],
			"meta":{"page":2,"limit":5,"total":7}
		}}`))
	}))
	defer upstream.Close()

	router := adminTestRouter(upstream)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/bookings?email=jane@x.com&page=2&limit=5", nil)
	request.Header.Set("Authorization", "Bearer "+makeAccessToken(1, constants.RoleAdmin))
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("GetBookings trả status %d: %s", recorder.Code, recorder.Body.String())
	}

	var body response.Response
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("không parse được response: %v", err)
	}
	if body.Pagination == nil {
		t.Fatal("response phải kèm pagination")
	}
	// Total là tổng sau khi backend lọc, không phải tổng toàn bảng
	if body.Pagination.Total != 7 || body.Pagination.Page != 2 || body.Pagination.Limit != 5 {
		t.Errorf("pagination sai: %+v", body.Pagination)
	}
	if !strings.Contains(recorder.Body.String(), `"id":7`) {
		t.Errorf("data phải chứa kết quả đã lọc: %s", recorder.Body.String())
	}
}

func TestAdminBookingsRejectsNonAdmin(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request của user thường không được tới backend")
	}))
	defer upstream.Close()

	router := adminTestRouter(upstream)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	request.Header.Set("Authorization", "Bearer "+makeAccessToken(2, constants.RoleUser))
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("user thường phải nhận 403, nhận %d", recorder.Code)
	}
}

func TestAdminUpdateUserRoleForwardsRole(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/auth/5" {
			t.Errorf("request sai: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("không parse được body: %v", err)
		}
		if body["role"] != constants.RolePremiumUser {
			t.Errorf("role phải được forward, nhận %q", body["role"])
		}
		w.Write([]byte(`{"success":true,"data":{"id":5}}`))
	}))
	defer upstream.Close()

	router := adminTestRouter(upstream)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPatch, "/admin/users/5/role",
		strings.NewReader(`{"role":"PREMIUM_USER"}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+makeAccessToken(1, constants.RoleAdmin))
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("UpdateUserRole trả status %d: %s", recorder.Code, recorder.Body.String())
	}
}
