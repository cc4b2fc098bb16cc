package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestAuth(t *testing.T) {
	var gotID int64
	var gotAdmin bool
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r.Context())
		gotAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name      string
		userID    string
		role      string
		wantCode  int
		wantAdmin bool
	}{
		{"missing", "", "", http.StatusUnauthorized, false},
		{"invalid", "abc", "", http.StatusUnauthorized, false},
		{"negative", "-1", "", http.StatusUnauthorized, false},
		{"user", "7", "", http.StatusOK, false},
		{"admin", "7", RoleAdmin, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotAdmin = 0, false
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				r.Header.Set(UserIDHeader, tt.userID)
			}
			if tt.role != "" {
				r.Header.Set(RoleHeader, tt.role)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, int64(7), gotID)
				assert.Equal(t, tt.wantAdmin, gotAdmin)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

type recordingLogger struct{ infos, warns []string }

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func TestAccessLog_IncludesRequestID(t *testing.T) {
	logger := &recordingLogger{}
	h := RequestID(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})))

	r := httptest.NewRequest(http.MethodGet, "/tenants/1/calendar", nil)
	r.Header.Set(RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.Len(t, logger.infos, 1)
	assert.Contains(t, logger.infos[0], "GET /tenants/1/calendar")
	assert.Contains(t, logger.infos[0], "status=200")
	assert.Contains(t, logger.infos[0], "request_id=req-42")

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom", nil))
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "status=500")
	assert.Contains(t, logger.warns[0], "request_id=")
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2, false, nopLogger{})
	rl.now = func() time.Time { return now }
	h := rl.Middleware(http.HandlerFunc(okHandler))

	call := func(remoteAddr string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"), "limits are per client")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
}

func TestRateLimiter_IgnoresClientHeaders(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1, false, nopLogger{})
	rl.now = func() time.Time { return now }
	h := rl.Middleware(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:5000"
		r.Header.Set(UserIDHeader, fmt.Sprint(i))
		r.Header.Set("X-Forwarded-For", fmt.Sprintf("192.0.2.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	assert.Len(t, rl.clients, 1)
}

func TestRateLimiter_ClientKey(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"remote addr", false, "10.0.0.1:5000", "", "ip:10.0.0.1"},
		{"forwarded ignored without proxy", false, "10.0.0.1:5000", "192.0.2.7", "ip:10.0.0.1"},
		{"last forwarded entry behind proxy", true, "10.0.0.1:5000", "1.2.3.4, 192.0.2.7", "ip:192.0.2.7"},
		{"proxy without header", true, "10.0.0.1:5000", "", "ip:10.0.0.1"},
		{"remote addr without port", false, "10.0.0.9", "", "ip:10.0.0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(1, 1, tt.trustProxy, nopLogger{})
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, rl.clientKey(r))
		})
	}
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1, false, nopLogger{})
	rl.now = func() time.Time { return now }

	require.True(t, rl.allow("a"))
	now = now.Add(limiterIdleTTL)
	require.True(t, rl.allow("b"))
	assert.Len(t, rl.clients, 2, "new clients do not trigger eviction")

	assert.Equal(t, 0, rl.evict(now))
	assert.Equal(t, 1, rl.evict(now.Add(time.Second)))
	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "b")
}

func TestRateLimiter_StartEviction(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1, false, nopLogger{})
	rl.now = func() time.Time { return now }
	require.True(t, rl.allow("a"))
	now = now.Add(limiterIdleTTL + time.Second)

	stop := make(chan struct{})
	defer close(stop)
	rl.StartEviction(time.Millisecond, stop)

	assert.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		return len(rl.clients) == 0
	}, time.Second, 5*time.Millisecond)
}

type recordedHTTP struct {
	method, route string
	status        int
}

type fakeHTTPMetrics struct{ calls []recordedHTTP }

func (f *fakeHTTPMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, recordedHTTP{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/tenants/{tenantId}/appointments/{appointmentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tenants/1/appointments/99", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, recordedHTTP{http.MethodGet, "/tenants/{tenantId}/appointments/{appointmentId}", http.StatusNotFound}, m.calls[0])
}
