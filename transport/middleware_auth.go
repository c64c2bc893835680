package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/application/identity"
	"github.com/muhammadheryan/marketplace/constant"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// AuthMiddleware resolves the bearer credential once per request through the identity resolver.
// It allows public endpoints (like /login, /register, /swagger/) without token.
func AuthMiddleware(resolver identity.Resolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := resolver.ResolveUserID(r.Context(), token)
			if err != nil {
				// an unreachable identity boundary is retryable, everything else is a bad credential
				if errors.Is(err, constant.ErrUnavailable) {
					writeError(w, err)
					return
				}
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	switch path {
	case "/login", "/register", "/refresh", "/health":
		return true
	}

	return false
}
