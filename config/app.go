package config

import "time"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type App struct {
	Port        string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"APP_ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Storage     string `mapstructure:"STORAGE_DRIVER"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// RunMigrations applies the embedded schema on start-up (postgres only).
	RunMigrations bool `mapstructure:"RUN_MIGRATIONS"`

	BankingBaseURL        string        `mapstructure:"BANKING_API_BASE_URL"`
	BankingAPIKey         string        `mapstructure:"BANKING_API_KEY"`
	BankingVerifyEndpoint bool          `mapstructure:"BANKING_VERIFY_ENDPOINT"`
	BankingTimeout        time.Duration `mapstructure:"BANKING_TIMEOUT"`

	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}
