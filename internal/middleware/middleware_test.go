package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"blogapp/internal/apperror"
	handlers "blogapp/internal/handler"
	"blogapp/internal/models"
)

type stubValidator struct {
	tokens map[string]*models.Principal
	calls  int
}

func (s *stubValidator) ValidateToken(tokenString string) (*models.Principal, error) {
	s.calls++
	if p, ok := s.tokens[tokenString]; ok {
		return p, nil
	}
	return nil, apperror.Unauthorized(apperror.MsgAuthRequired)
}

// principalEcho reports the attached user id, or "anonymous".
var principalEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if p, ok := handlers.PrincipalFromContext(r.Context()); ok {
		w.Write([]byte(p.ID))
		return
	}
	w.Write([]byte("anonymous"))
})

func TestAuthMiddleware(t *testing.T) {
	validator := &stubValidator{tokens: map[string]*models.Principal{
		"good-token":   {ID: "user-1"},
		"cookie-token": {ID: "user-2"},
	}}
	handler := AuthMiddleware(validator, "session-token")(principalEcho)

	tests := []struct {
		name     string
		setup    func(*http.Request)
		expected string
	}{
		{
			name:     "no credentials",
			setup:    func(r *http.Request) {},
			expected: "anonymous",
		},
		{
			name:     "bearer token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer good-token") },
			expected: "user-1",
		},
		{
			name: "cookie token",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session-token", Value: "cookie-token"})
			},
			expected: "user-2",
		},
		{
			name: "header wins over cookie",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
				r.AddCookie(&http.Cookie{Name: "session-token", Value: "cookie-token"})
			},
			expected: "user-1",
		},
		{
			name:     "invalid token is anonymous",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer forged") },
			expected: "anonymous",
		},
		{
			name:     "malformed header",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "good-token") },
			expected: "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			tt.setup(req)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.expected, rr.Body.String())
		})
	}
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(principalEcho)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/posts", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"認証が必要です"}`, rr.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req = req.WithContext(handlers.WithPrincipal(req.Context(), &models.Principal{ID: "user-1"}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", rr.Body.String())
}

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		path     string
		expected RouteKind
	}{
		{"/", RoutePublic},
		{"/posts", RoutePublic},
		{"/posts/abc", RoutePublic},
		{"/login", RouteAuthPage},
		{"/register", RouteAuthPage},
		{"/posts/new", RouteProtected},
		{"/posts/abc/edit", RouteProtected},
		{"/profile", RouteProtected},
		{"/profile/settings", RouteProtected},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRoute(tt.path))
		})
	}
}

func TestRouteGuard(t *testing.T) {
	handler := RouteGuard(principalEcho)

	tests := []struct {
		name             string
		path             string
		loggedIn         bool
		expectedStatus   int
		expectedLocation string
	}{
		{"anonymous on protected page", "/posts/new", false, http.StatusTemporaryRedirect, "/login"},
		{"anonymous on edit page", "/posts/abc/edit", false, http.StatusTemporaryRedirect, "/login"},
		{"anonymous on profile", "/profile", false, http.StatusTemporaryRedirect, "/login"},
		{"signed in on login page", "/login", true, http.StatusTemporaryRedirect, "/"},
		{"signed in on register page", "/register", true, http.StatusTemporaryRedirect, "/"},
		{"signed in on protected page", "/posts/new", true, http.StatusOK, ""},
		{"anonymous on login page", "/login", false, http.StatusOK, ""},
		{"anonymous on public page", "/posts/abc", false, http.StatusOK, ""},
		{"api is never redirected", "/api/posts", false, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.loggedIn {
				req = req.WithContext(handlers.WithPrincipal(req.Context(), &models.Principal{ID: "user-1"}))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/posts/1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.False(t, called)
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/posts", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/posts", fields["path"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
}

func TestRecoverMiddleware(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	handler := RecoverMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("boom"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"サーバーエラーが発生しました"}`, rr.Body.String())
	assert.Equal(t, 1, logs.Len())
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), mark("inner"), mark("outer"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}
