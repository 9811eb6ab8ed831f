package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"keymend/pkg/naver"
	"keymend/pkg/trend"
)

// DefaultEnvFile holds the DataLab credentials
const DefaultEnvFile = "naver.env"

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

// Load reads envFile into the process environment (existing variables win),
// then an optional YAML file at configPath, then KEYMEND_* overrides.
func (m *manager) Load(configPath, envFile string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := m.setupViper(configPath); err != nil {
		return nil, fmt.Errorf("failed to setup viper: %w", err)
	}

	if configPath != "" {
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) error {
	if configPath != "" {
		m.viper.SetConfigFile(configPath)
	}

	m.viper.SetEnvPrefix("KEYMEND")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	// The DataLab keys keep their conventional unprefixed names
	if err := m.viper.BindEnv("naver.client_id", "KEYMEND_NAVER_CLIENT_ID", "NAVER_CLIENT_ID"); err != nil {
		return err
	}
	if err := m.viper.BindEnv("naver.client_secret", "KEYMEND_NAVER_CLIENT_SECRET", "NAVER_CLIENT_SECRET"); err != nil {
		return err
	}

	setDefaults(m.viper)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("naver.client_id", "")
	v.SetDefault("naver.client_secret", "")
	v.SetDefault("naver.endpoint", naver.DefaultEndpoint)
	v.SetDefault("naver.time_unit", naver.DefaultTimeUnit)
	v.SetDefault("naver.group_name", naver.DefaultGroupName)
	v.SetDefault("naver.timeout_ms", 30000)

	v.SetDefault("google.language", "ko-KR")
	v.SetDefault("google.geo", "KR")
	v.SetDefault("google.category", 0)

	v.SetDefault("pipeline.variant", VariantTrends)
	v.SetDefault("pipeline.start_date", "2024-01-01")
	v.SetDefault("pipeline.end_date", "2024-12-31")
	v.SetDefault("pipeline.naver_keywords", []string{"인공지능", "AI", "ChatGPT"})
	v.SetDefault("pipeline.google_keywords", []string{"Artificial Intelligence", "ChatGPT"})
	v.SetDefault("pipeline.top_n", 5)
	v.SetDefault("pipeline.output_dir", ".")
	v.SetDefault("pipeline.preview_rows", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stderr")
}

func (m *manager) validateConfig(config *Config) error {
	if config.Naver.ClientID == "" || config.Naver.ClientSecret == "" {
		return trend.ErrMissingCredentials
	}

	switch config.Pipeline.Variant {
	case VariantTrends, VariantRecommend:
	default:
		return fmt.Errorf("unknown pipeline variant %q", config.Pipeline.Variant)
	}

	if err := trend.ValidateDateRange(config.Pipeline.StartDate, config.Pipeline.EndDate); err != nil {
		return err
	}

	if len(config.Pipeline.NaverKeywords) == 0 {
		return fmt.Errorf("%w: naver_keywords cannot be empty", trend.ErrInvalidKeyword)
	}

	if config.Pipeline.Variant == VariantTrends && len(config.Pipeline.GoogleKeywords) == 0 {
		return fmt.Errorf("%w: google_keywords cannot be empty", trend.ErrInvalidKeyword)
	}

	if config.Pipeline.TopN <= 0 {
		return trend.ErrInvalidTopN
	}

	if config.Naver.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms cannot be negative")
	}

	return nil
}

// Credentials returns the DataLab keys as the fetcher expects them
func (c *Config) Credentials() naver.Credentials {
	return naver.Credentials{
		ClientID:     c.Naver.ClientID,
		ClientSecret: c.Naver.ClientSecret,
	}
}
