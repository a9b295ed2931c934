package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/handlers"
	"github.com/iudanet/docsync/internal/server/storage"
	"github.com/iudanet/docsync/internal/token"
)

var authNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func claimsFor(nodeID, tokenID string) *token.Claims {
	c := &token.Claims{NodeID: nodeID}
	c.ID = tokenID
	return c
}

func validatorFor(claims *token.Claims, err error) *TokenValidatorMock {
	return &TokenValidatorMock{
		ValidateFunc: func(tokenString string) (*token.Claims, error) {
			return claims, err
		},
	}
}

func devicesWith(devices ...*models.Device) *storage.DeviceStorageMock {
	return &storage.DeviceStorageMock{
		GetDeviceFunc: func(ctx context.Context, nodeID string) (*models.Device, error) {
			for _, d := range devices {
				if d.NodeID == nodeID {
					return d, nil
				}
			}
			return nil, storage.ErrDeviceNotFound
		},
	}
}

func serveAuth(t *testing.T, validator TokenValidator, devices storage.DeviceStorage, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotNode string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotNode, _ = handlers.GetNodeID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := Auth(discardLogger(), validator, devices, func() time.Time { return authNow })(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w, gotNode
}

func TestAuth_Success(t *testing.T) {
	validator := validatorFor(claimsFor("laptop", "jti-1"), nil)
	devices := devicesWith(&models.Device{NodeID: "laptop", TokenID: "jti-1", IssuedAt: authNow})

	w, node := serveAuth(t, validator, devices, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "laptop", node)
	require.Len(t, validator.ValidateCalls(), 1)
	assert.Equal(t, "good-token", validator.ValidateCalls()[0].TokenString)
}

func TestAuth_Rejections(t *testing.T) {
	active := &models.Device{NodeID: "laptop", TokenID: "jti-1", IssuedAt: authNow}

	tests := []struct {
		name       string
		header     string
		validator  *TokenValidatorMock
		devices    *storage.DeviceStorageMock
		wantStatus int
	}{
		{
			name:       "missing header",
			validator:  validatorFor(nil, nil),
			devices:    devicesWith(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			validator:  validatorFor(nil, nil),
			devices:    devicesWith(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			validator:  validatorFor(nil, token.ErrInvalidToken),
			devices:    devicesWith(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown device",
			header:     "Bearer t",
			validator:  validatorFor(claimsFor("ghost", "jti-1"), nil),
			devices:    devicesWith(active),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "superseded token",
			header:     "Bearer t",
			validator:  validatorFor(claimsFor("laptop", "jti-old"), nil),
			devices:    devicesWith(active),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "revoked device",
			header:    "Bearer t",
			validator: validatorFor(claimsFor("laptop", "jti-1"), nil),
			devices: devicesWith(&models.Device{
				NodeID: "laptop", TokenID: "jti-1", IssuedAt: authNow, Revoked: true,
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "storage failure",
			header:    "Bearer t",
			validator: validatorFor(claimsFor("laptop", "jti-1"), nil),
			devices: &storage.DeviceStorageMock{
				GetDeviceFunc: func(ctx context.Context, nodeID string) (*models.Device, error) {
					return nil, errors.New("database is locked")
				},
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, node := serveAuth(t, tt.validator, tt.devices, tt.header)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, node, "next handler must not run")
		})
	}
}

func TestAuth_WithRealTokens(t *testing.T) {
	tokens, err := token.NewService("test-secret", time.Hour)
	require.NoError(t, err)

	signed, claims, err := tokens.Issue("laptop")
	require.NoError(t, err)

	devices := devicesWith(&models.Device{
		NodeID:    "laptop",
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.Expiry(),
	})

	logger, buf := bufferLogger()
	h := Chain(okHandler(),
		Logging(logger),
		Auth(logger, tokens, devices, time.Now),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "node_id=laptop")
}
