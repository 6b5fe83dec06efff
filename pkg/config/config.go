package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Metrics MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Catalog.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points the service at the upstream catalog API.
type CatalogConfig struct {
	SourceURL       string        `envconfig:"STOREFRONT_CATALOG_SOURCE_URL" required:"true"`
	FetchLimit      int           `envconfig:"STOREFRONT_CATALOG_FETCH_LIMIT" default:"100"`
	FetchTimeout    time.Duration `envconfig:"STOREFRONT_CATALOG_FETCH_TIMEOUT" default:"10s"`
	RefreshInterval time.Duration `envconfig:"STOREFRONT_CATALOG_REFRESH_INTERVAL" default:"0"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"STOREFRONT_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"STOREFRONT_METRICS_PATH" default:"/metrics"`
}

func (c CatalogConfig) validate() error {
	if strings.TrimSpace(c.SourceURL) == "" {
		return fmt.Errorf("%s is required", EnvCatalogSourceURL)
	}
	u, err := url.Parse(c.SourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL", EnvCatalogSourceURL)
	}
	if c.FetchLimit <= 0 {
		return fmt.Errorf("%s must be positive", EnvCatalogFetchLimit)
	}
	return nil
}
