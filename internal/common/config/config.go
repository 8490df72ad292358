package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	CatalogPath  string // пусто - встроенный каталог
	RenderDBPath string
	DefaultAngle float64 // радианы
	Padding      float64
	TextSize     float64
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		CatalogPath:  getEnv("CATALOG_PATH", ""),
		RenderDBPath: getEnv("RENDER_DB_PATH", "data/db/renders.db"),
		DefaultAngle: getEnvAsFloat("DEFAULT_ANGLE", 0.3),
		Padding:      getEnvAsFloat("PADDING", 20),
		TextSize:     getEnvAsFloat("TEXT_SIZE", 10),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
