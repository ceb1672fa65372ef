package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"sustentaplus/internal/domain"
	"sustentaplus/internal/pkg/token"
)

// ContextKey é o tipo das chaves usadas para armazenar valores no contexto.
// Usamos um tipo próprio para garantir que estas chaves sejam únicas e não haja
// conflito com chaves string de outros pacotes.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
	RequestIDKey
)

// UserClaims representa os dados do usuário extraídos do token JWT,
// que serão anexados ao contexto da requisição.
type UserClaims struct {
	UserID   int
	Username string
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware cria o portão de autenticação por requisição:
//
//	sem token                    -> 401 {"message":"Access token required"}
//	token presente mas rejeitado -> 403 {"message":"Invalid or expired token"}
//	token válido                 -> claims anexadas ao contexto, segue adiante
//
// O portão é stateless — nenhuma sessão persiste entre requisições — e nenhum
// handler de repositório é alcançável sem passar por ele.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// 1. Extrair o Token do Header Authorization: Bearer <token>
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				writeAuthError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			// 2. Validar o Token (assinatura + expiração, rejeição uniforme)
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			// 3. Anexar Claims ao Contexto
			userClaims := UserClaims{
				UserID:   claims.UserID,
				Username: claims.Username,
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, userClaims)

			// Chama o próximo handler com o novo contexto
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserClaimsFromContext é uma função utilitária para extrair as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// writeAuthError escreve o corpo de erro padronizado {"message": ...} do contrato.
func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Message: message})
}
