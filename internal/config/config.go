package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config armazena as configurações da aplicação
type Config struct {
	TokenAPI string
	Port     string
	GinMode  string
	LogLevel string
	LogJSON  bool

	// Rate limiting por IP (requisições/segundo e burst)
	RateLimitRPS   float64
	RateLimitBurst int

	// Banco de dados para histórico de cronogramas. Host vazio desabilita
	// a persistência e os endpoints de histórico.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// ErrMissingToken indica que um token obrigatório não foi configurado
var ErrMissingToken = errors.New("TOKEN_API não configurado")

// Load carrega as configurações do ambiente
func Load() (*Config, error) {
	// Tenta carregar .env de múltiplos locais
	_ = godotenv.Load()          // ./.env
	_ = godotenv.Load("../.env") // .env na raiz do projeto

	cfg := &Config{
		TokenAPI:       os.Getenv("TOKEN_API"),
		Port:           os.Getenv("PORT"),
		GinMode:        os.Getenv("GIN_MODE"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 20),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      os.Getenv("DB_SSLMODE"),
	}

	// Validações obrigatórias
	if cfg.TokenAPI == "" {
		return nil, ErrMissingToken
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = "debug"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}

	return cfg, nil
}

// HistoryEnabled indica se a persistência de histórico está configurada
func (c *Config) HistoryEnabled() bool {
	return c.DBHost != ""
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
