package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Database types
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// PoolSize is the fixed number of pooled store connections
const PoolSize = 20

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	DBUser     string
	DBHost     string
	DBName     string
	DBPassword string
	DBPort     int

	PoolSize       int
	IdleTimeout    time.Duration
	ConnectTimeout time.Duration

	LogLevel   slog.Level
	CORSOrigin string
}

// ParseFlags reads flags, falling back to environment variables, then defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("bingo-grid", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (overrides the db-* settings)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")

	fs.StringVar(&cfg.DBUser, "db-user", "", "Database user")
	fs.StringVar(&cfg.DBHost, "db-host", "", "Database host")
	fs.StringVar(&cfg.DBName, "db-name", "", "Database name")
	fs.StringVar(&cfg.DBPassword, "db-password", "", "Database password (prefer env)")
	fs.IntVar(&cfg.DBPort, "db-port", 0, "Database port")

	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", 0, "Idle connection timeout")
	fs.DurationVar(&cfg.ConnectTimeout, "connect-timeout", 0, "Connection timeout")

	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	if cfg.Port, err = intSetting(cfg.Port, "PORT", 3001); err != nil {
		return Config{}, err
	}
	if cfg.DBPort, err = intSetting(cfg.DBPort, "DB_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.IdleTimeout, err = durationSetting(cfg.IdleTimeout, "DB_IDLE_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ConnectTimeout, err = durationSetting(cfg.ConnectTimeout, "DB_CONNECT_TIMEOUT", 2*time.Second); err != nil {
		return Config{}, err
	}

	cfg.DatabaseURL = stringSetting(cfg.DatabaseURL, "DATABASE_URL", "")
	cfg.DatabaseType = stringSetting(cfg.DatabaseType, "DATABASE_TYPE", DatabasePostgres)
	cfg.DBUser = stringSetting(cfg.DBUser, "DB_USER", "bingo")
	cfg.DBHost = stringSetting(cfg.DBHost, "DB_HOST", "localhost")
	cfg.DBName = stringSetting(cfg.DBName, "DB_NAME", "bingo_db")
	cfg.DBPassword = stringSetting(cfg.DBPassword, "DB_PASSWORD", "password")
	cfg.CORSOrigin = stringSetting(cfg.CORSOrigin, "CORS_ORIGIN", "")
	cfg.PoolSize = PoolSize

	switch cfg.DatabaseType {
	case DatabasePostgres:
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("sqlite requires a database path (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	logLevel = stringSetting(logLevel, "LOG_LEVEL", "info")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured database.
// DatabaseURL wins over the individual db-* settings.
func (c Config) DSN() string {
	if c.DatabaseURL != "" || c.DatabaseType == DatabaseSQLite {
		return c.DatabaseURL
	}

	q := url.Values{}
	q.Set("sslmode", "disable")
	q.Set("connect_timeout", strconv.Itoa(int(c.ConnectTimeout.Seconds())))

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func stringSetting(flagVal, env, def string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func intSetting(flagVal int, env string, def int) (int, error) {
	if flagVal != 0 {
		return flagVal, nil
	}
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", env)
	}
	return n, nil
}

func durationSetting(flagVal time.Duration, env string, def time.Duration) (time.Duration, error) {
	if flagVal != 0 {
		return flagVal, nil
	}
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", env)
	}
	return d, nil
}
