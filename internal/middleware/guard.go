package middleware

import (
	"net/http"
	"strings"

	handlers "blogapp/internal/handler"
)

type RouteKind int

const (
	RoutePublic RouteKind = iota
	RouteAuthPage
	RouteProtected
)

// ClassifyRoute sorts a page path into auth pages, protected pages and
// everything else.
func ClassifyRoute(path string) RouteKind {
	switch {
	case strings.HasPrefix(path, "/login"), strings.HasPrefix(path, "/register"):
		return RouteAuthPage
	case strings.HasPrefix(path, "/posts/new"),
		strings.HasPrefix(path, "/posts/") && strings.Contains(path, "/edit"),
		strings.HasPrefix(path, "/profile"):
		return RouteProtected
	default:
		return RoutePublic
	}
}

// RouteGuard redirects signed-in users away from the login and register
// pages and anonymous users away from protected pages. API paths pass
// through untouched.
func RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			next.ServeHTTP(w, r)
			return
		}

		_, loggedIn := handlers.PrincipalFromContext(r.Context())

		switch ClassifyRoute(r.URL.Path) {
		case RouteAuthPage:
			if loggedIn {
				http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
				return
			}
		case RouteProtected:
			if !loggedIn {
				http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
