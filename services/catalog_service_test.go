package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bff/errors"
	"bff/services/logger"
)

func newTestCatalogStore(server *httptest.Server) *CatalogStore {
	return NewCatalogStore(CatalogStoreOptions{
		API:    NewAPIClient(server.URL, server.Client()),
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func TestFetchRoomTypesReplacesList(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(`{"success":true,"data":[
				{"id":1,"name":"Deluxe","price":200,"facilities":["wifi","wifi","pool"]}
			]}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":[
			{"id":2,"name":"Suite","price":500,"facilities":["spa"]}
		]}`))
	}))
	defer server.Close()

	store := newTestCatalogStore(server)
	if err := store.FetchRoomTypes(context.Background()); err != nil {
		t.Fatalf("FetchRoomTypes trả lỗi: %v", err)
	}

	roomTypes := store.RoomTypes()
	if len(roomTypes) != 1 || roomTypes[0].Name != "Deluxe" {
		t.Fatalf("danh sách sai: %+v", roomTypes)
	}
	if len(roomTypes[0].Facilities) != 2 {
		t.Errorf("facility trùng phải bị loại, nhận %v", roomTypes[0].Facilities)
	}

	// Fetch lần hai thay cả danh sách, không gộp
	if err := store.FetchRoomTypes(context.Background()); err != nil {
		t.Fatalf("FetchRoomTypes trả lỗi: %v", err)
	}
	roomTypes = store.RoomTypes()
	if len(roomTypes) != 1 || roomTypes[0].Name != "Suite" {
		t.Errorf("fetch phải thay thế danh sách cũ: %+v", roomTypes)
	}
}

func TestFetchRoomTypesRejectsNegativePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Bad","price":-50}]}`))
	}))
	defer server.Close()

	store := newTestCatalogStore(server)
	err := store.FetchRoomTypes(context.Background())
	if err == nil {
		t.Fatal("giá âm phải bị từ chối")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeMalformedResponse {
		t.Errorf("phải là lỗi MALFORMED_RESPONSE, nhận %v", err)
	}
	if store.LastError() == "" {
		t.Error("lastError phải được ghi nhận")
	}
}

func TestFetchRoomTypeByIDSetsCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roomCategory/3" {
			t.Errorf("path sai: %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{
			"id":3,"name":"Family","price":300,
			"rooms":[{"id":31,"roomNumber":101},{"id":32,"roomNumber":102}]
		}}`))
	}))
	defer server.Close()

	store := newTestCatalogStore(server)
	roomType, err := store.FetchRoomTypeByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FetchRoomTypeByID trả lỗi: %v", err)
	}
	if roomType.ID != 3 || len(roomType.Rooms) != 2 {
		t.Errorf("chi tiết sai: %+v", roomType)
	}
	if current := store.CurrentRoomType(); current == nil || current.ID != 3 {
		t.Error("currentRoomType phải được cập nhật")
	}
}

func TestFetchFailureRecordsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"Lỗi server"}`))
	}))
	defer server.Close()

	store := newTestCatalogStore(server)
	if err := store.FetchRooms(context.Background()); err == nil {
		t.Fatal("backend lỗi phải trả error")
	}
	if store.IsLoading() {
		t.Error("isLoading phải được hạ xuống sau lỗi")
	}
	if store.LastError() == "" {
		t.Error("lastError phải được ghi nhận")
	}
}
