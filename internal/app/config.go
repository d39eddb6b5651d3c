// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bnema/forcedeck/internal/adapters/out/salesforce"
	"github.com/bnema/forcedeck/internal/adapters/out/telemetry"
	"github.com/bnema/forcedeck/internal/logging"
	"github.com/bnema/forcedeck/internal/usecase/deploy"
)

// EnvPrefix prefixes every environment override, e.g. FORCEDECK_SERVER_PORT.
const EnvPrefix = "FORCEDECK"

// Config holds the application configuration.
type Config struct {
	Server struct {
		Port           int      `mapstructure:"port"`
		MaxBodyBytes   int64    `mapstructure:"max_body_bytes"`
		CORSOrigins    []string `mapstructure:"cors_origins"`
		TrustedProxies []string `mapstructure:"trusted_proxies"`
	} `mapstructure:"server"`

	Logging logging.Config `mapstructure:"logging"`

	Salesforce struct {
		APIVersion     string        `mapstructure:"api_version"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
		InstanceURL    string        `mapstructure:"instance_url"`
		AccessToken    string        `mapstructure:"access_token"`
	} `mapstructure:"salesforce"`

	Deploy struct {
		PollInterval     time.Duration `mapstructure:"poll_interval"`
		PollMaxAttempts  int           `mapstructure:"poll_max_attempts"`
		CleanupContainer bool          `mapstructure:"cleanup_container"`
	} `mapstructure:"deploy"`

	API struct {
		RateLimit struct {
			Enabled bool    `mapstructure:"enabled"`
			Backend string  `mapstructure:"backend"`
			RPS     float64 `mapstructure:"rps"`
			Burst   int     `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// DeployConfig returns the deploy use case settings.
func (c Config) DeployConfig() deploy.Config {
	return deploy.Config{
		PollInterval:     c.Deploy.PollInterval,
		PollMaxAttempts:  c.Deploy.PollMaxAttempts,
		CleanupContainer: c.Deploy.CleanupContainer,
	}
}

// initConfig loads configuration from defaults, file, .env and environment.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, errors.WithMessage(err, "failed to load config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, errors.Wrap(err, "failed to unmarshal config")
	}

	return v, cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", filepath.Join("logs", "forcedeck.log"))
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("logging.file.compress", true)
	v.SetDefault("salesforce.api_version", salesforce.DefaultAPIVersion)
	v.SetDefault("salesforce.request_timeout", salesforce.DefaultRequestTimeout)
	v.SetDefault("salesforce.instance_url", "")
	v.SetDefault("salesforce.access_token", "")
	v.SetDefault("deploy.poll_interval", deploy.DefaultPollInterval)
	v.SetDefault("deploy.poll_max_attempts", deploy.DefaultPollMaxAttempts)
	v.SetDefault("deploy.cleanup_container", false)
	v.SetDefault("api.rate_limit.enabled", true)
	v.SetDefault("api.rate_limit.backend", "memory")
	v.SetDefault("api.rate_limit.rps", 10)
	v.SetDefault("api.rate_limit.burst", 20)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.auth_token", "")
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.trace_sample_rate", 1.0)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	if err := loadDotEnv(configPath); err != nil {
		return err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: forcedeck.toml
// Search paths (in order): /etc/forcedeck, ~/.config/forcedeck, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("forcedeck")
	v.SetConfigType("toml")
	v.AddConfigPath("/etc/forcedeck")
	v.AddConfigPath("$HOME/.config/forcedeck")
	v.AddConfigPath(".")
}

// loadDotEnv reads a .env file from the working directory, or from the
// config file's directory when one is given. Variables already set in the
// process environment win.
func loadDotEnv(configPath string) error {
	path := ".env"
	if configPath != "" {
		path = filepath.Join(filepath.Dir(configPath), ".env")
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load %s", path)
	}
	return nil
}
