package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST            string
	DbPORT            string
	DbUSER            string
	DbPASSWORD        string
	DbNAME            string
	DbSSLMODE         string
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	MigrationsEnabled bool
}

type Session struct {
	CookieName   string
	CookieSecure bool
	Duration     time.Duration
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	ServerPort      int
	DB              DB
	Session         Session
	Log             Log
	JWTSecretKey    string
	BcryptCost      int
	StaticDir       string
	ShutdownTimeout time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseDuration falls back when the value is not a valid time.Duration.
func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:            getEnv("DB_HOST", "localhost"),
		DbPORT:            getEnv("DB_PORT", "5432"),
		DbUSER:            getEnv("DB_USER", "postgres"),
		DbPASSWORD:        getEnv("DB_PASSWORD", "password"),
		DbNAME:            getEnv("DB_NAME", "blog"),
		DbSSLMODE:         getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:      getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:      getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:   parseDuration(getEnv("DB_CONN_MAX_LIFETIME", "30m"), 30*time.Minute),
		MigrationsEnabled: getEnvBool("DB_RUN_MIGRATIONS", true),
	}
}

func LoadSession() Session {
	return Session{
		CookieName:   getEnv("SESSION_COOKIE_NAME", "session-token"),
		CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		Duration:     parseDuration(getEnv("SESSION_TOKEN_DURATION", "720h"), 720*time.Hour),
	}
}

func LoadLog() Log {
	return Log{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		DB:              LoadDB(),
		Session:         LoadSession(),
		Log:             LoadLog(),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", ""),
		BcryptCost:      getEnvAsInt("BCRYPT_COST", 12),
		StaticDir:       getEnv("STATIC_DIR", "./web"),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}

// DSN builds the lib/pq connection string.
func (d DB) DSN() string {
	return "host=" + d.DbHOST +
		" port=" + d.DbPORT +
		" user=" + d.DbUSER +
		" password=" + d.DbPASSWORD +
		" dbname=" + d.DbNAME +
		" sslmode=" + d.DbSSLMODE
}
