package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Lemmatizer LemmatizerConfig `mapstructure:"lemmatizer"`
}

type DictionaryConfig struct {
	// Path is the SQLite dictionary file. It must exist and be readable
	// before the process starts serving requests.
	Path string `mapstructure:"path" validate:"required,file"`
}

type LemmatizerConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	Model          string `mapstructure:"model" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type ConfigLoader struct {
	viper *viper.Viper
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/logeion")
	}

	v.SetDefault("dictionary.path", filepath.Join("data", "dvlg-wheel-mini.sqlite"))
	v.SetDefault("lemmatizer.base_url", "http://localhost:8000")
	v.SetDefault("lemmatizer.model", "la_core_web_lg")
	v.SetDefault("lemmatizer.timeout_seconds", 30)

	// Environment variables override the config file so the container
	// image can be configured without mounting a config volume.
	if err := v.BindEnv("dictionary.path", "LOGEION_DATABASE"); err != nil {
		return nil, fmt.Errorf("failed to bind LOGEION_DATABASE environment variable: %w", err)
	}
	if err := v.BindEnv("lemmatizer.base_url", "LATINCY_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind LATINCY_URL environment variable: %w", err)
	}
	if err := v.BindEnv("lemmatizer.model", "LATINCY_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LATINCY_MODEL environment variable: %w", err)
	}

	return &ConfigLoader{viper: v}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	if err := loader.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := loader.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags and returns
// human-readable messages for every violation.
func (cfg *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct() > %w", err)
		}
		return fmt.Errorf("invalid configuration: %s", translateAll(validationErrors, trans))
	}
	return nil
}

func translateAll(errs validator.ValidationErrors, trans ut.Translator) string {
	messages := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		messages = append(messages, fieldError.Translate(trans))
	}
	return strings.Join(messages, "; ")
}
