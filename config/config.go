// Package config loads pcomb settings from a config file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv names a config file to use instead of searching for pcomb.yaml.
	ConfigEnv = "PCOMB_CONFIG"
	EnvPrefix = "PCOMB"
)

// Config holds the settings shared by all commands.
type Config struct {
	// Grammar is the path of an EBNF grammar file.
	Grammar string `mapstructure:"grammar" yaml:"grammar"`
	// Start is the production to match against.
	Start string `mapstructure:"start" yaml:"start"`
	// Format selects the output encoder: text, json or yaml.
	Format string `mapstructure:"format" yaml:"format"`
	// Verbosity is passed to commonlog; 0 logs errors only.
	Verbosity int `mapstructure:"verbosity" yaml:"verbosity"`
	// Parallelism bounds concurrent matches in line mode; 0 means no limit.
	Parallelism int `mapstructure:"parallelism" yaml:"parallelism"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Format:      "text",
		Parallelism: 8,
	}
}

func getViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("pcomb")
	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("grammar", d.Grammar)
	v.SetDefault("start", d.Start)
	v.SetDefault("format", d.Format)
	v.SetDefault("verbosity", d.Verbosity)
	v.SetDefault("parallelism", d.Parallelism)
	return v
}

// Load reads the configuration. An explicit path, or PCOMB_CONFIG, must
// exist; otherwise a missing pcomb.yaml just means defaults. PCOMB_*
// environment variables override file values. The result is not
// validated; callers apply their own overrides and then call Validate.
func Load(path string) (Config, error) {
	v := getViper(path)
	explicit := path != "" || os.Getenv(ConfigEnv) != ""

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by decoding.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid config: unknown format %q", c.Format)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("invalid config: parallelism must not be negative, got %d", c.Parallelism)
	}
	return nil
}

// Marshal renders the configuration as YAML, as it would appear in pcomb.yaml.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
