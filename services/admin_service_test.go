package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bff/services/logger"
)

func TestFetchDashboardStatsAggregates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/book":
			w.Write([]byte(`{"success":true,"data":{
				"data":[
					{"id":1,"totalAmount":500,"status":"CONFIRMED"},
					{"id":2,"totalAmount":300,"status":"CANCELLED"},
					{"id":3,"totalAmount":200,"status":"PENDING_PAYMENT"}
				],
				"meta":{"page":1,"limit":1000,"total":3}
			}}`))
		case "/auth":
			w.Write([]byte(`{"success":true,"data":[
				{"id":1,"status":"ACTIVE"},
				{"id":2,"status":"BLOCKED"},
				{"id":3,"status":"ACTIVE"}
			]}`))
		case "/room":
			w.Write([]byte(`{"success":true,"data":[
				{"id":1,"roomNumber":101},{"id":2,"roomNumber":102}
			]}`))
		default:
			t.Errorf("path không mong đợi: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	store := NewAdminStore(AdminStoreOptions{
		API:    NewAPIClient(server.URL, server.Client()),
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})

	stats, err := store.FetchDashboardStats(context.Background(), "admin-token")
	if err != nil {
		t.Fatalf("FetchDashboardStats trả lỗi: %v", err)
	}

	if stats.TotalBookings != 3 {
		t.Errorf("TotalBookings phải là 3, nhận %d", stats.TotalBookings)
	}
	// Doanh thu bỏ qua booking đã hủy: 500 + 200
	if stats.Revenue != 700 {
		t.Errorf("Revenue phải là 700, nhận %v", stats.Revenue)
	}
	if stats.ActiveUsers != 2 {
		t.Errorf("ActiveUsers phải là 2, nhận %d", stats.ActiveUsers)
	}
	if stats.TotalRooms != 2 {
		t.Errorf("TotalRooms phải là 2, nhận %d", stats.TotalRooms)
	}
}

func TestFetchDashboardStatsAllOrNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/room" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"Lỗi server"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	store := NewAdminStore(AdminStoreOptions{
		API:    NewAPIClient(server.URL, server.Client()),
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})

	stats, err := store.FetchDashboardStats(context.Background(), "admin-token")
	if err == nil {
		t.Fatal("một request lỗi thì cả aggregate phải lỗi")
	}
	if stats != nil {
		t.Error("không được trả kết quả từng phần")
	}
	if store.LastError() == "" {
		t.Error("lastError phải được ghi nhận")
	}
}
