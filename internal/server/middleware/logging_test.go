package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusBadRequest, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()
			h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
			req.Header.Set("Authorization", "Bearer secret-token")
			h.ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "path=/api/v1/sync")
			assert.Contains(t, out, "bytes_written=4")
			assert.NotContains(t, out, "secret-token")
		})
	}
}

func TestLogging_SkipPaths(t *testing.T) {
	logger, buf := bufferLogger()
	h := Logging(logger, "/api/v1/health")(okHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Empty(t, buf.String())
}

func TestLogging_RecordsAuthenticatedNode(t *testing.T) {
	logger, buf := bufferLogger()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestInfoFrom(r.Context()).nodeID = "laptop"
		w.WriteHeader(http.StatusOK)
	})

	Logging(logger)(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))

	assert.Contains(t, buf.String(), "node_id=laptop")
}
