package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App   AppConfig
	API   APIConfig
	State StateConfig
	Log   LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig backend REST (colaborador externo).
type APIConfig struct {
	BaseURL        string // ej. https://api.housebanao.internal/api
	TimeoutSeconds int    // tope por petición; una petición colgada no debe dejar la UI cargando indefinidamente
	PageSize       int    // tamaño de página de los listados con scroll infinito
}

// StateConfig almacén durable de estado del cliente (token, rol, permisos).
type StateConfig struct {
	Backend string // "sqlite" | "memory"
	Path    string // ruta del archivo sqlite
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env/config.env). Las env vars tienen prioridad. Nombres
// esperados: API_BASE_URL, API_TIMEOUT_SECONDS, STATE_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ops-console"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", ""),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
			PageSize:       getInt(v, "API_PAGE_SIZE", 5),
		},
		State: StateConfig{
			Backend: getString(v, "STATE_BACKEND", "sqlite"),
			Path:    getString(v, "STATE_PATH", "ops-console.db"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL es obligatoria")
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 15
	}
	if cfg.API.PageSize <= 0 {
		cfg.API.PageSize = 5
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
