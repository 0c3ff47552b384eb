package middleware

import (
	"net/http"
	"strings"

	"blogapp/internal/apperror"
	handlers "blogapp/internal/handler"
	"blogapp/internal/models"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*models.Principal, error)
}

// AuthMiddleware attaches the session principal to the request context when
// a valid token is present. It never rejects a request; see RequireAuth.
func AuthMiddleware(validator TokenValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := tokenFromRequest(r, cookieName)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := validator.ValidateToken(tokenString)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireAuth answers 401 when no principal is attached.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := handlers.PrincipalFromContext(r.Context()); !ok {
			handlers.WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest prefers the Authorization header over the cookie.
func tokenFromRequest(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookieName == "" {
		return ""
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
