package middleware

import (
	"context"
	"net/http"
	"strings"

	"epic-relay-api/pkg/apierror"
	"epic-relay-api/pkg/response"
)

// BearerTokenKey is the key for storing the caller's access token in request context.
const BearerTokenKey contextKey = "bearer_token"

const bearerScheme = "Bearer "

// ParseBearer extracts the raw token from an Authorization header value.
func ParseBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerScheme) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerScheme))
	if token == "" {
		return "", false
	}
	return token, true
}

// BearerAuth requires an "Authorization: Bearer <token>" header and stores the
// token in the request context. The token is forwarded, never validated here:
// the remote services decide whether it is still good.
func BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseBearer(r.Header.Get("Authorization"))
		if !ok {
			response.Error(w, apierror.MissingCredential())
			return
		}

		ctx := context.WithValue(r.Context(), BearerTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetBearerToken retrieves the access token from request context.
func GetBearerToken(ctx context.Context) string {
	if token, ok := ctx.Value(BearerTokenKey).(string); ok {
		return token
	}
	return ""
}
