package config

import "keymend/pkg/logger"

const (
	VariantTrends    = "trends"
	VariantRecommend = "recommend"
)

type Config struct {
	Naver    NaverConfig    `mapstructure:"naver"`
	Google   GoogleConfig   `mapstructure:"google"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Logger   logger.Config  `mapstructure:"logger"`
}

type NaverConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Endpoint     string `mapstructure:"endpoint"`
	TimeUnit     string `mapstructure:"time_unit"`
	GroupName    string `mapstructure:"group_name"`
	TimeoutMs    int    `mapstructure:"timeout_ms"`
}

type GoogleConfig struct {
	Language string `mapstructure:"language"`
	Geo      string `mapstructure:"geo"`
	Category int    `mapstructure:"category"`
}

type PipelineConfig struct {
	Variant        string   `mapstructure:"variant"`
	StartDate      string   `mapstructure:"start_date"`
	EndDate        string   `mapstructure:"end_date"`
	NaverKeywords  []string `mapstructure:"naver_keywords"`
	GoogleKeywords []string `mapstructure:"google_keywords"`
	TopN           int      `mapstructure:"top_n"`
	OutputDir      string   `mapstructure:"output_dir"`
	PreviewRows    int      `mapstructure:"preview_rows"`
}

type Manager interface {
	Load(configPath, envFile string) (*Config, error)
	GetConfig() *Config
}
