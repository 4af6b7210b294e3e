package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "некорректный токен авторизации"
)

// Auth проверяет заголовок "Authorization: Bearer <api key>"
func Auth(apiKey string) func(http.Handler) http.Handler {
	expected := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), expected) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
