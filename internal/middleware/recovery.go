package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"epic-relay-api/pkg/apierror"
	"epic-relay-api/pkg/response"
)

// Recovery is a middleware that recovers from panics.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC [%s %s] %v\n%s", r.Method, r.URL.Path, err, debug.Stack())

				response.Error(w, apierror.InternalError("internal server error"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
