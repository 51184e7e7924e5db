package environment

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment   = "ENVIRONMENT"
	Port          = "PORT"
	APIBaseURL    = "API_BASE_URL"
	SessionSecret = "SESSION_SECRET"
	RedisAddr     = "REDIS_ADDR"
	RedisPassword = "REDIS_PASSWORD"
	MongoHost     = "MONGO_HOST"
	MongoDatabase = "MONGO_DATABASE"
	MongoUser     = "MONGO_USER"
	MongoPassword = "MONGO_PASSWORD"
)

const dotEnvFile = ".env"

// NewEnv creates an Env with loaded environment variables.
// Values from a local .env file are used for variables not already set in the process environment
func NewEnv(logger *zap.Logger) *Env {
	if err := godotenv.Load(dotEnvFile); err != nil {
		logger.Debug("no .env file loaded", zap.String("file", dotEnvFile))
	}

	env := Env{
		vars: map[string]string{
			Environment:   valueOfEnvVar(logger, Environment),
			Port:          valueOfEnvVar(logger, Port),
			APIBaseURL:    valueOfEnvVar(logger, APIBaseURL),
			SessionSecret: valueOfEnvVar(logger, SessionSecret),
			RedisAddr:     valueOfEnvVar(logger, RedisAddr),
			RedisPassword: valueOfEnvVar(logger, RedisPassword),
			MongoHost:     valueOfEnvVar(logger, MongoHost),
			MongoDatabase: valueOfEnvVar(logger, MongoDatabase),
			MongoUser:     valueOfEnvVar(logger, MongoUser),
			MongoPassword: valueOfEnvVar(logger, MongoPassword),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
