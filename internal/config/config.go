package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Reverso  ReversoConfig  `mapstructure:"reverso"`
	Review   ReviewConfig   `mapstructure:"review"`
	Reader   ReaderConfig   `mapstructure:"reader"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 mysql"`
	// Path is the sqlite database file; ":memory:" keeps everything in memory.
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Host            string            `mapstructure:"host" validate:"required_if=Driver mysql"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database" validate:"required_if=Driver mysql"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
}

type ReversoConfig struct {
	ContextBaseURL   string   `mapstructure:"context_base_url" validate:"required,url"`
	TranslateURL     string   `mapstructure:"translate_url" validate:"required,url"`
	Origin           string   `mapstructure:"origin"`
	UserAgents       []string `mapstructure:"user_agents"`
	TimeoutSeconds   int      `mapstructure:"timeout_seconds" validate:"gte=0"`
	MaxRetryAttempts uint     `mapstructure:"max_retry_attempts" validate:"lte=10"`
}

func (c ReversoConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type ReviewConfig struct {
	// IntervalHours is the wait per level before a card is due again.
	IntervalHours int `mapstructure:"interval_hours" validate:"gt=0"`
}

func (c ReviewConfig) Interval() time.Duration {
	return time.Duration(c.IntervalHours) * time.Hour
}

type ReaderConfig struct {
	UserID         string `mapstructure:"user_id" validate:"required"`
	SourceLanguage string `mapstructure:"source_language" validate:"language"`
	TargetLanguage string `mapstructure:"target_language" validate:"language,nefield=SourceLanguage"`
}

func (c ReaderConfig) Languages() (reverso.Language, reverso.Language, error) {
	source, err := reverso.ParseLanguage(c.SourceLanguage)
	if err != nil {
		return "", "", fmt.Errorf("reader.source_language: %w", err)
	}
	target, err := reverso.ParseLanguage(c.TargetLanguage)
	if err != nil {
		return "", "", fmt.Errorf("reader.target_language: %w", err)
	}
	return source, target, nil
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashreader")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", filepath.Join("data", "flashcards.db"))
	v.SetDefault("database.port", 3306)
	v.SetDefault("reverso.context_base_url", reverso.DefaultContextBaseURL)
	v.SetDefault("reverso.translate_url", reverso.DefaultTranslateURL)
	v.SetDefault("reverso.origin", reverso.DefaultOrigin)
	v.SetDefault("reverso.timeout_seconds", 15)
	v.SetDefault("reverso.max_retry_attempts", 0)
	v.SetDefault("review.interval_hours", 24)
	v.SetDefault("reader.user_id", "local")
	v.SetDefault("reader.source_language", string(reverso.German))
	v.SetDefault("reader.target_language", string(reverso.Russian))

	// Credentials come from the environment only
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("reader.user_id", "FLASHREADER_USER_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHREADER_USER_ID environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
