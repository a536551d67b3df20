package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var validEnvs = map[string]bool{
	"local": true,
	"alpha": true,
	"beta":  true,
	"prod":  true,
}

var validDrivers = map[string]bool{
	DriverSQLite:   true,
	DriverSQLite3:  true,
	DriverPostgres: true,
}

var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

const (
	// DriverSQLite is the pure Go SQLite driver (modernc.org/sqlite).
	DriverSQLite = "sqlite"
	// DriverSQLite3 is the cgo SQLite driver (mattn/go-sqlite3).
	DriverSQLite3 = "sqlite3"
	// DriverPostgres is lib/pq.
	DriverPostgres = "postgres"
)

var defaults = map[string]any{
	"server_port": "8080",
	"app_env":     "local",
	"log_level":   "info",
	"log_format":  "json",
	"api_prefix":  "",
	"db_driver":   DriverSQLite,
	"db_path":     "todo.db",
	"db_host":     "localhost",
	"db_port":     "5432",
	"db_user":     "todo",
	"db_password": "todo",
	"db_name":     "todo",
	"db_sslmode":  "disable",
}

type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string
	LogFormat  string
	APIPrefix  string
	DB         DBConfig
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, alpha, beta, prod", c.AppEnv)
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", c.LogFormat)
	}
	if c.APIPrefix != "" && (!strings.HasPrefix(c.APIPrefix, "/") || strings.HasSuffix(c.APIPrefix, "/")) {
		return fmt.Errorf("invalid API_PREFIX %q: must start with / and not end with /", c.APIPrefix)
	}
	if !validDrivers[c.DB.Driver] {
		return fmt.Errorf("invalid DB_DRIVER %q: must be one of sqlite, sqlite3, postgres", c.DB.Driver)
	}
	if c.DB.Driver != DriverPostgres && c.DB.Path == "" {
		return fmt.Errorf("DB_PATH is required for driver %s", c.DB.Driver)
	}
	return nil
}

type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the data source name handed to sql.Open for the configured driver.
func (d DBConfig) DSN() string {
	if d.Driver != DriverPostgres {
		return d.Path
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     d.Name,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(d.SSLMode)),
	}
	return u.String()
}

// Load reads configuration from the environment, layered over configFile
// when one is given. Environment variables win over file values.
func Load(configFile string) (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	return Config{
		ServerPort: v.GetString("server_port"),
		AppEnv:     v.GetString("app_env"),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  strings.ToLower(v.GetString("log_format")),
		APIPrefix:  v.GetString("api_prefix"),
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("db_driver")),
			Path:     v.GetString("db_path"),
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
	}, nil
}
