package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestID anexa um identificador de correlação a cada requisição, no header
// X-Request-ID da resposta e no contexto, para amarrar os logs de uma mesma
// chamada. Respeita o id enviado pelo cliente quando presente.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestIDFromContext extrai o id de correlação para uso nos logs.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
