package router

import (
	_ "embed"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"sustentaplus/internal/api/auth"
	"sustentaplus/internal/api/challenge"
	"sustentaplus/internal/pkg/middleware"
)

//go:embed swagger.json
var swaggerDoc []byte

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
// Toda rota sob /api/desafios passa pelo middleware de autenticação antes de
// qualquer acesso ao repositório; as rotas de auth e utilitárias são públicas.
func NewRouter(authHandler *auth.Handler, challengeHandler *challenge.Handler, tokenSvc middleware.TokenService, corsOrigins []string) http.Handler {

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// --- 1. Rotas de Health Check e Documentação (públicas) ---
	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)
	r.HandleFunc("/swagger/doc.json", swaggerDocHandler).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// --- 2. Rotas de Autenticação (públicas) ---
	authRoutes := r.PathPrefix("/api/auth").Subrouter()
	authRoutes.HandleFunc("/register", authHandler.RegisterHandler).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", authHandler.LoginHandler).Methods(http.MethodPost)

	// --- 3. Rotas de Desafios (protegidas por JWT) ---
	// O constraint {id:[0-9]+} faz IDs não numéricos caírem no 404 do mux,
	// o mesmo desfecho de um ID numérico inexistente.
	desafios := r.PathPrefix("/api/desafios").Subrouter()
	desafios.Use(middleware.NewAuthMiddleware(tokenSvc))
	desafios.HandleFunc("", challengeHandler.ListChallengesHandler).Methods(http.MethodGet)
	desafios.HandleFunc("", challengeHandler.CreateChallengeHandler).Methods(http.MethodPost)
	desafios.HandleFunc("/{id:[0-9]+}", challengeHandler.GetChallengeByIDHandler).Methods(http.MethodGet)
	desafios.HandleFunc("/{id:[0-9]+}", challengeHandler.UpdateChallengeHandler).Methods(http.MethodPut)
	desafios.HandleFunc("/{id:[0-9]+}", challengeHandler.DeleteChallengeHandler).Methods(http.MethodDelete)

	// --- 4. CORS (o dashboard SPA consome a API de outra origem) ---
	c := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// swaggerDocHandler serve o documento OpenAPI embutido consumido pela UI.
func swaggerDocHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(swaggerDoc)
}
