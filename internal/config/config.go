package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `yaml:"env"`      // Env is the current environment: local, development, production.
	Web      WebConfig      `yaml:"web"`      // Web holds the frontend server configuration.
	API      APIConfig      `yaml:"api"`      // API holds the employee API configuration.
	Postgres PostgresConfig `yaml:"postgres"` // Postgres holds the database configuration.

	MonitoringPort int `yaml:"monitoring_port"` // MonitoringPort serves /metrics and /healthz.
}

// WebConfig struct holds the configuration of the frontend server.
type WebConfig struct {
	Address string `yaml:"address"` // Address is the listen address of the frontend, e.g. `:3000`.
}

// APIConfig struct holds the configuration of the employee REST API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"` // BaseURL is the prefix the frontend calls, e.g. `http://localhost:8080/api`.
	Address string `yaml:"address"`  // Address is the listen address of the companion API server.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

var envBindings = map[string]string{
	"env":               "EMS_ENV",
	"web.address":       "EMS_WEB_ADDRESS",
	"api.base_url":      "EMS_API_BASE_URL",
	"api.address":       "EMS_API_ADDRESS",
	"monitoring_port":   "EMS_MONITORING_PORT",
	"postgres.host":     "DB_HOST",
	"postgres.port":     "DB_PORT",
	"postgres.user":     "DB_USERNAME",
	"postgres.password": "DB_PASSWORD",
	"postgres.db_name":  "DB_NAME",
}

// MustLoad loads the configuration from the YAML file named by CONFIG_PATH (optional) and the environment.
// It panics when the configuration cannot be read or holds invalid values.
func MustLoad() *Config {
	vpr := viper.New()
	vpr.SetConfigType("yaml")

	vpr.SetDefault("env", "local")
	vpr.SetDefault("web.address", ":3000")
	vpr.SetDefault("api.base_url", "http://localhost:8080/api")
	vpr.SetDefault("api.address", ":8080")
	vpr.SetDefault("monitoring_port", 9090)
	vpr.SetDefault("postgres.host", "localhost")
	vpr.SetDefault("postgres.port", "5432")

	for key, env := range envBindings {
		if err := vpr.BindEnv(key, env); err != nil {
			panic("failed to bind environment variable " + env + ": " + err.Error())
		}
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	port := vpr.GetInt("monitoring_port")
	if port <= 0 || port > 65535 {
		panic("failed to parse monitoring port from configuration")
	}

	baseURL := strings.TrimRight(vpr.GetString("api.base_url"), "/")
	if baseURL == "" {
		panic("api base url is empty")
	}

	return &Config{
		Env: vpr.GetString("env"),
		Web: WebConfig{
			Address: vpr.GetString("web.address"),
		},
		API: APIConfig{
			BaseURL: baseURL,
			Address: vpr.GetString("api.address"),
		},
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		MonitoringPort: port,
	}
}
