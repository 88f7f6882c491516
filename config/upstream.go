package config

import (
	"log"
	"net/http"
	"time"
)

// HTTPClient là client dùng chung cho mọi request lên backend.
// Timeout đọc từ cấu hình; ngoài ra không có retry hay backoff.
var HTTPClient *http.Client

// ConnectUpstream khởi tạo HTTP client cho backend
func ConnectUpstream() {
	HTTPClient = &http.Client{
		Timeout: time.Duration(App.UpstreamTimeoutSeconds) * time.Second,
	}
	log.Println("Upstream client khởi tạo với base URL:", App.UpstreamBaseURL)
}
