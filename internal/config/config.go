package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string        `yaml:"port" env:"SERVER_PORT"`
		Mode         string        `yaml:"mode" env:"SERVER_MODE"`
		CORSOrigins  []string      `yaml:"cors_origins" env:"SERVER_CORS_ORIGINS"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Classifier struct {
		PythonBin      string        `yaml:"python_bin" env:"CLASSIFIER_PYTHON_BIN"`
		ScriptPath     string        `yaml:"script_path" env:"CLASSIFIER_SCRIPT_PATH"`
		PythonArgs     []string      `yaml:"python_args" env:"CLASSIFIER_PYTHON_ARGS"`
		WorkDir        string        `yaml:"work_dir" env:"CLASSIFIER_WORK_DIR"`
		Timeout        time.Duration `yaml:"timeout" env:"CLASSIFIER_TIMEOUT"`
		MaxConcurrent  int64         `yaml:"max_concurrent" env:"CLASSIFIER_MAX_CONCURRENT"`
		MaxOutputBytes int64         `yaml:"max_output_bytes" env:"CLASSIFIER_MAX_OUTPUT_BYTES"`
		Breaker        struct {
			FailureThreshold uint32        `yaml:"failure_threshold" env:"CLASSIFIER_BREAKER_FAILURE_THRESHOLD"`
			OpenTimeout      time.Duration `yaml:"open_timeout" env:"CLASSIFIER_BREAKER_OPEN_TIMEOUT"`
		} `yaml:"breaker"`
	} `yaml:"classifier"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Migrations struct {
		Dir string `yaml:"dir" env:"MIGRATIONS_DIR"`
	} `yaml:"migrations"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	return load(configPath, ".env")
}

func load(configPath, dotenvPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env never overrides variables already present in the process environment
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.CORSOrigins = []string{"*"}
	config.Server.ReadTimeout = 15 * time.Second
	// Must outlive a classifier run
	config.Server.WriteTimeout = 60 * time.Second

	// Database defaults
	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "majorpath"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// JWT defaults
	config.JWT.AccessTokenExpiration = "2h"
	config.JWT.Issuer = "majorpath.app"

	// Classifier defaults
	config.Classifier.PythonBin = "python3"
	config.Classifier.ScriptPath = "script/predict.py"
	config.Classifier.PythonArgs = []string{"-u"}
	config.Classifier.Timeout = 30 * time.Second
	config.Classifier.MaxConcurrent = 4
	config.Classifier.MaxOutputBytes = 1 << 20
	config.Classifier.Breaker.FailureThreshold = 5
	config.Classifier.Breaker.OpenTimeout = 30 * time.Second

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Migrations.Dir = "migrations"
	config.Seed.Enabled = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	// Ensure required fields are set
	if config.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime format: %w", err)
	}

	switch config.Server.Mode {
	case "development", "production", "test":
	default:
		return fmt.Errorf("server mode must be development, production or test, got %q", config.Server.Mode)
	}

	if config.Classifier.PythonBin == "" {
		return fmt.Errorf("classifier python_bin is required")
	}

	if config.Classifier.ScriptPath == "" {
		return fmt.Errorf("classifier script_path is required")
	}

	if config.Classifier.Timeout <= 0 {
		return fmt.Errorf("classifier timeout must be positive")
	}

	if config.Classifier.MaxConcurrent <= 0 {
		return fmt.Errorf("classifier max_concurrent must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// AccessTokenTTL returns the parsed access token lifetime. The value is
// checked by validateConfig, so parse errors fall back to two hours.
func (c *Config) AccessTokenTTL() time.Duration {
	d, err := time.ParseDuration(c.JWT.AccessTokenExpiration)
	if err != nil {
		return 2 * time.Hour
	}
	return d
}

// ClassifierArgs returns interpreter arguments followed by the script path.
func (c *Config) ClassifierArgs() []string {
	args := make([]string, 0, len(c.Classifier.PythonArgs)+1)
	args = append(args, c.Classifier.PythonArgs...)
	return append(args, c.Classifier.ScriptPath)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
