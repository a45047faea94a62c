package config

import (
	"net"     // For host:port joining
	"net/url" // For the Postgres connection URL
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For request timeout

	"github.com/go-sql-driver/mysql" // For MySQL DSN formatting
	"github.com/joho/godotenv"       // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBDriver       string        // postgres (managed backend) or mysql (local development)
	DatabaseURL    string        // Full DSN, overrides the DB_* parts when set
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	DBSSLMode      string        // Postgres sslmode
	JWTSecret      string        // Secret the auth service signs access tokens with
	RedisAddr      string        // Redis server address
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	IsProd         bool          // Is production environment
	LogLevel       string        // logrus level name
	LogFormat      string        // text or json
	RequestTimeout time.Duration // Deadline applied to every API request
	TrustedProxies []string      // Proxies gin trusts for client IPs

	CloudinaryCloudName string // Cloudinary cloud name
	CloudinaryPreset    string // Unsigned upload preset
	CloudinaryFolder    string // Base folder for uploaded assets
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Config{
		AppPort:             getEnv("APP_PORT", "8080"),
		DBDriver:            strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBHost:              getEnv("DB_HOST", "127.0.0.1"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "postgres"),
		DBSSLMode:           getEnv("DB_SSLMODE", "require"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		RedisAddr:           getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPass:           os.Getenv("REDIS_PASS"),
		RedisDB:             redisDB,
		IsProd:              os.Getenv("IS_PROD") == "true",
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		RequestTimeout:      timeout,
		TrustedProxies:      splitList(getEnv("TRUSTED_PROXIES", "127.0.0.1")),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryPreset:    getEnv("CLOUDINARY_UPLOAD_PRESET", "jbp_events"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "jbp-agrawal-sabha"),
	}
}

// DSN builds the data source name for the configured driver. Credentials are
// escaped, so passwords may contain any character.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL // Explicit DSN wins
	}
	addr := net.JoinHostPort(c.DBHost, c.DBPort)
	if c.DBDriver == "mysql" {
		mc := mysql.NewConfig()
		mc.User = c.DBUser
		mc.Passwd = c.DBPassword
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = c.DBName
		mc.ParseTime = true // Scan DATETIME into time.Time
		return mc.FormatDSN()
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     addr,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
