package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	DB_DSN   string

	JWTSecret     string
	JWTAlgorithm  string
	JWTIssuer     string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	BcryptCost    int
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AdminEmail    string
	AdminPassword string

	LoginRatePerMin int
	LoginBurst      int
}

// Load reads .env (when present) and the process environment.
// A missing JWT_SECRET is an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:     getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB_DSN:   os.Getenv("DB_DSN"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTAlgorithm:  getEnv("JWT_ALGORITHM", "HS256"),
		JWTIssuer:     getEnv("JWT_ISSUER", "ecommerce-api"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	switch cfg.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return Config{}, fmt.Errorf("JWT_ALGORITHM %q is not supported", cfg.JWTAlgorithm)
	}

	var err error
	if cfg.AccessTTL, err = getDuration("ACCESS_TOKEN_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RefreshTTL, err = getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.LoginRatePerMin, err = getInt("LOGIN_RATE_PER_MIN", 10); err != nil {
		return Config{}, err
	}
	if cfg.LoginBurst, err = getInt("LOGIN_BURST", 5); err != nil {
		return Config{}, err
	}

	if cfg.DB_DSN == "" {
		cfg.DB_DSN = postgresDSN(
			getEnv("POSTGRES__USER", "postgres"),
			os.Getenv("POSTGRES__PASSWORD"),
			getEnv("POSTGRES__HOST", "localhost"),
			getEnv("POSTGRES__PORT", "5432"),
			getEnv("POSTGRES__DB", "ecommerce"),
		)
	}

	return cfg, nil
}

func postgresDSN(user, pass, host, port, name string) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	if pass != "" {
		u.User = url.UserPassword(user, pass)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, v)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, v)
	}
	return d, nil
}
