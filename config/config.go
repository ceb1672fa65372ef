package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do aplicativo SustentaPlus.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// CORS (origens do dashboard SPA)
	CORSAllowedOrigins []string

	// Dados de demonstração (semeia os desafios iniciais no boot)
	SeedMockData bool
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Segurança (JWT)
		// O segredo tem o mesmo fallback de desenvolvimento do serviço original;
		// em produção, JWT_SECRET deve vir do ambiente.
		JWTSecretKey: getEnv("JWT_SECRET", "your-secret-key"),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_HOURS", 24) * time.Hour, // 24h padrão

		// 3. CORS
		CORSAllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),

		// 4. Seed
		SeedMockData: getBoolEnv("SEED_MOCK_DATA", true),
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}

// getBoolEnv lê uma variável de ambiente booleana.
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um booleano válido. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getSliceEnv lê uma lista separada por vírgulas.
func getSliceEnv(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
