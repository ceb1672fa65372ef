package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"sustentaplus/config"
	"sustentaplus/internal/pkg/logger"
	"sustentaplus/internal/pkg/token"

	// Camadas da aplicação para Injeção de Dependências
	"sustentaplus/internal/api/auth"
	"sustentaplus/internal/api/challenge"
	"sustentaplus/internal/api/router"
	"sustentaplus/internal/repository/challengerepo"
	"sustentaplus/internal/repository/userrepo"
	"sustentaplus/internal/service/authservice"
	"sustentaplus/internal/service/challengeservice"
)

func main() {
	// 1. Configuração e Inicialização
	stdlog.Println("⚡ Inicializando serviço SustentaPlus...")

	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		// Se o arquivo .env não for encontrado, avisamos mas continuamos, pois
		// as variáveis podem estar no ambiente do sistema (ex: Docker).
		stdlog.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Armazenamento em Memória
	// Todo o estado é volátil por contrato: usuários e desafios reiniciam
	// junto com o processo. Não há banco de dados nem cache externo.
	challengeRepo := challengerepo.NewChallengeRepository(log)
	if cfg.SeedMockData {
		challengeRepo.Seed()
	}
	userRepo := userrepo.NewUserRepository(log)
	log.Debug("Repositórios em memória inicializados.", nil)

	// 3. INJEÇÃO DE DEPENDÊNCIAS (Montagem da Clean Architecture)
	// Ordem: Repository -> Service -> Handler

	// A. Serviço de Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	log.Debug("Serviço de Tokens JWT inicializado.", nil)

	// B. Autenticação
	authSvc := authservice.NewService(userRepo, tokenSvc, log)
	authHandler := auth.NewHandler(authSvc, log)
	log.Debug("Módulo de autenticação inicializado.", nil)

	// C. Desafios
	challengeSvc := challengeservice.NewService(challengeRepo, log)
	challengeHandler := challenge.NewHandler(challengeSvc, log)
	log.Debug("Módulo de desafios inicializado.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(authHandler, challengeHandler, tokenSvc, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor SustentaPlus ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	// Lógica do Graceful Shutdown (captura de sinal)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
