package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bff/dto"
	"bff/response"

	"github.com/gin-gonic/gin"
)

func paymentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewPaymentController()
	router.GET("/payment-results", controller.GetPaymentResult)
	return router
}

func getPaymentResult(t *testing.T, router *gin.Engine, query string) dto.PaymentResult {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/payment-results?"+query, nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status sai: %d", recorder.Code)
	}

	var body response.Response
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("không parse được response: %v", err)
	}

	raw, err := json.Marshal(body.Data)
	if err != nil {
		t.Fatalf("không marshal lại được data: %v", err)
	}
	var result dto.PaymentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("không parse được data: %v", err)
	}
	return result
}

func TestPaymentResultMapping(t *testing.T) {
	router := paymentRouter()

	cases := []struct {
		status  string
		outcome string
	}{
		{"CAPTURED", "success"},
		{"INITIATED", "pending"},
		{"IN_PROGRESS", "pending"},
		{"DECLINED", "failure"},
		{"CANCELLED", "failure"},
		{"error", "failure"},
		{"SOMETHING_NEW", "failure"},
	}

	for _, tc := range cases {
		result := getPaymentResult(t, router, "status="+tc.status+"&bookingId=42")
		if result.Outcome != tc.outcome {
			t.Errorf("status %s phải cho outcome %s, nhận %s", tc.status, tc.outcome, result.Outcome)
		}
		if result.BookingID != 42 {
			t.Errorf("bookingId phải được giữ lại, nhận %d", result.BookingID)
		}
	}
}

func TestPaymentResultRequiresStatus(t *testing.T) {
	router := paymentRouter()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/payment-results", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("thiếu status phải trả 400, nhận %d", recorder.Code)
	}
}
