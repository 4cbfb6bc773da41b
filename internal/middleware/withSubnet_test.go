package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atinyakov/fridgebook/internal/middleware"
)

func TestWithSubnet(t *testing.T) {
	tests := []struct {
		name           string
		subnet         string
		realIP         string
		remoteAddr     string
		expectedStatus int
	}{
		{
			name:           "Allowed subnet",
			subnet:         "192.168.0.0/24",
			realIP:         "192.168.0.45",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Forbidden subnet",
			subnet:         "10.0.0.0/8",
			realIP:         "192.168.0.1",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Single host",
			subnet:         "203.0.113.5/32",
			realIP:         "203.0.113.5",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Remote address fallback",
			subnet:         "192.0.2.0/24",
			remoteAddr:     "192.0.2.1:1234",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Garbage header",
			subnet:         "192.168.1.0/24",
			realIP:         "192.168.1",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "No subnet configured",
			subnet:         "",
			realIP:         "127.0.0.1",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			rec := httptest.NewRecorder()

			middleware.WithSubnet(tt.subnet)(handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
		})
	}
}
