package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/TourOperator-BookingService/internal/api/handlers"
)

type contextKey string

const operatorIDKey contextKey = "operatorID"

// HeaderOperatorID заголовок с идентификатором оператора
// Аутентификацией занимается API gateway, сервису доверенно передаётся ID
const HeaderOperatorID = "X-Operator-ID"

// Auth проверяет наличие корректного X-Operator-ID и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderOperatorID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderOperatorID)
			return
		}

		operatorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || operatorID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+HeaderOperatorID)
			return
		}

		ctx := context.WithValue(r.Context(), operatorIDKey, operatorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOperatorID извлекает идентификатор оператора из контекста запроса
func GetOperatorID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(operatorIDKey).(int64)
	return id, ok
}
