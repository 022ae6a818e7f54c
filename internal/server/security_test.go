package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testAPIKey = "test-api-key"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "Valid Key",
			path:           "/api/v1/cases/state",
			providedKey:    testAPIKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid Key",
			path:           "/api/v1/cases/state",
			providedKey:    "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Key",
			path:           "/api/v1/cases/state",
			providedKey:    "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Healthz Bypasses Auth",
			path:           "/healthz",
			providedKey:    "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Metrics Bypasses Auth",
			path:           "/metrics",
			providedKey:    "",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			mw := AuthMiddleware(testAPIKey, nil, detector)

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			mw(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/cases/state", nil)
	rec := httptest.NewRecorder()

	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Within Limit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/cases/open", strings.NewReader("small"))
		rec := httptest.NewRecorder()

		RequestSizeLimitMiddleware(64)(handler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Over Limit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/cases/open", strings.NewReader(strings.Repeat("x", 128)))
		rec := httptest.NewRecorder()

		RequestSizeLimitMiddleware(64)(handler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		expected       string
	}{
		{
			name:       "Direct Connection",
			remoteAddr: "203.0.113.10:54321",
			expected:   "203.0.113.10",
		},
		{
			name:           "Forwarded From Untrusted Proxy",
			remoteAddr:     "203.0.113.10:54321",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "203.0.113.10",
		},
		{
			name:           "Forwarded From Trusted Proxy",
			remoteAddr:     "10.0.0.1:54321",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.1",
		},
		{
			name:           "Multiple Forwarded Hops",
			remoteAddr:     "10.0.0.1:54321",
			forwardedFor:   "198.51.100.1, 198.51.100.2",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.expected, extractIP(req, tt.trustedProxies))
		})
	}
}

func TestSuspiciousActivityDetectorRateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < 1000; i++ {
		assert.True(t, detector.RecordRequest("203.0.113.10"))
	}
	assert.False(t, detector.RecordRequest("203.0.113.10"))

	// Other IPs keep their own budget
	assert.True(t, detector.RecordRequest("203.0.113.11"))
}

func TestSecurityLoggingMiddlewareBlocksHighRate(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := SecurityLoggingMiddleware(nil, detector)

	for i := 0; i < 1000; i++ {
		detector.RecordRequest("203.0.113.10")
	}

	req := httptest.NewRequest("GET", "/api/v1/cases/state", nil)
	req.RemoteAddr = "203.0.113.10:54321"
	rec := httptest.NewRecorder()

	mw(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
