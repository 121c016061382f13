package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "teamhub/internal/util/env"
	"teamhub/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN" required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     required:"true"`
	Port        string            `env:"PORT"         env-default:"8080"`
	JwtSecret   string            `env:"JWT_SECRET"   required:"true"`
	// URLs embedded in emails and CORS rules
	AppURL      string `env:"APP_URL"      env-default:"http://localhost:3000"`
	FrontendURL string `env:"FRONTEND_URL" required:"false"`
	// email dispatch
	EmailFrom    string `env:"EMAIL_FROM"     required:"false"`
	SmtpHost     string `env:"SMTP_HOST"      required:"false"`
	SmtpPort     string `env:"SMTP_PORT"      env-default:"1025"`
	ResendAPIKey string `env:"RESEND_API_KEY" required:"false"`
	// cache (login throttling only, optional)
	ValkeyHost     string `env:"VALKEY_HOST"     required:"false"`
	ValkeyPort     string `env:"VALKEY_PORT"     env-default:"6379"`
	ValkeyUsername string `env:"VALKEY_USERNAME" required:"false"`
	ValkeyPassword string `env:"VALKEY_PASSWORD" required:"false"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"   required:"false"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	// Walk up to the module root so .env is found when running
	// from a nested package directory (tests do this).
	moduleRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(moduleRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(moduleRoot)
		if parent == moduleRoot {
			break
		}

		moduleRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(moduleRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.JwtSecret == "" {
		log.Error("JWT_SECRET is empty")
		os.Exit(1)
	}

	if !env.EnvMode.IsValid() {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully", "mode", env.EnvMode)
}

// IsCacheConfigured reports whether a valkey instance is available for
// login throttling. The cache is optional; everything else runs without it.
func IsCacheConfigured() bool {
	return GetEnv().ValkeyHost != ""
}
