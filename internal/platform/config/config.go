package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne todo lo que el binario lee del ambiente. Un archivo .env en el
// directorio de trabajo se carga primero si existe; las variables ya
// exportadas ganan.
type Config struct {
	Port string

	// DBPath es el archivo sqlite local. Se ignora si DBDSN viene seteado.
	DBPath string
	// DBDSN apunta a Postgres; si viene, el binario usa ese adaptador.
	DBDSN string

	LogLevel  string
	LogFormat string
	AppName   string

	// Credenciales del admin_sistema inicial. Solo se usan si no existe
	// ninguno activo.
	AdminUser     string
	AdminPassword string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "clinica.db"),
		DBDSN:         os.Getenv("DB_DSN"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		AppName:       getenv("APP_NAME", "vet-clinic-records"),
		AdminUser:     getenv("ADMIN_USER", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
