package config

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/environment"
	"github.com/sedtender/tender_portal/services/multiplexers/types"

	"go.uber.org/config"
)

var (
	//go:embed base.yaml
	baseConfig []byte
	//go:embed production.yaml
	productionConfig []byte
	//go:embed development.yaml
	developmentConfig []byte
)

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name     string         `yaml:"name"`
	Messages MessagesConfig `yaml:"messages"`
	Auth     AuthConfig     `yaml:"auth"`
	Search   SearchConfig   `yaml:"search"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Session  SessionConfig  `yaml:"session"`
	Score    ScoreConfig    `yaml:"score"`
}

// MessagesConfig controls the timing of user-facing messages
type MessagesConfig struct {
	AutoHideMillis      int `yaml:"auto_hide_millis"`
	RedirectDelayMillis int `yaml:"redirect_delay_millis"`
}

type AuthConfig struct {
	PasswordMinLength int `yaml:"password_min_length"`
}

type SearchConfig struct {
	PlaceholderDelayMillis int `yaml:"placeholder_delay_millis"`
}

type UpstreamConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// SessionConfig stores the configuration of the session store
type SessionConfig struct {
	Provider     types.StorageProvider `yaml:"provider"`
	TTLSeconds   int                   `yaml:"ttl_seconds"`
	CookieDomain string                `yaml:"cookie_domain"`
	CookieSecure bool                  `yaml:"cookie_secure"`
}

type ScoreConfig struct {
	CircleRadius float64 `yaml:"circle_radius"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configSources := []config.YAMLOption{config.Source(bytes.NewReader(baseConfig))}
	if env.Get(environment.Environment) == "prod" {
		configSources = append(configSources, config.Source(bytes.NewReader(productionConfig)))
	} else if env.Get(environment.Environment) == "dev" {
		configSources = append(configSources, config.Source(bytes.NewReader(developmentConfig)))
	}
	configProvider, err := config.NewYAML(configSources...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig

	err = configProvider.Get("").Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate app config")
	}
	return &cfg, nil
}
