package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymend/pkg/trend"
)

// unsetEnv clears keys for the duration of a test so env files can populate them
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NAVER_CLIENT_ID", "id-123")
	t.Setenv("NAVER_CLIENT_SECRET", "secret-456")

	cfg, err := NewManager().Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "id-123", cfg.Naver.ClientID)
	assert.Equal(t, "secret-456", cfg.Naver.ClientSecret)
	assert.Equal(t, "https://openapi.naver.com/v1/datalab/search", cfg.Naver.Endpoint)
	assert.Equal(t, "month", cfg.Naver.TimeUnit)
	assert.Equal(t, VariantTrends, cfg.Pipeline.Variant)
	assert.Equal(t, "2024-01-01", cfg.Pipeline.StartDate)
	assert.Equal(t, "2024-12-31", cfg.Pipeline.EndDate)
	assert.Equal(t, []string{"인공지능", "AI", "ChatGPT"}, cfg.Pipeline.NaverKeywords)
	assert.Equal(t, []string{"Artificial Intelligence", "ChatGPT"}, cfg.Pipeline.GoogleKeywords)
	assert.Equal(t, 5, cfg.Pipeline.TopN)
	assert.Equal(t, "KR", cfg.Google.Geo)
	assert.Equal(t, "id-123", cfg.Credentials().ClientID)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, "NAVER_CLIENT_ID", "NAVER_CLIENT_SECRET", "KEYMEND_NAVER_CLIENT_ID", "KEYMEND_NAVER_CLIENT_SECRET")
	envFile := writeFile(t, "naver.env", "NAVER_CLIENT_ID=file-id\nNAVER_CLIENT_SECRET=file-secret\n")

	cfg, err := NewManager().Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "file-id", cfg.Naver.ClientID)
	assert.Equal(t, "file-secret", cfg.Naver.ClientSecret)
}

func TestLoad_MissingEnvFileIsNotAnError(t *testing.T) {
	t.Setenv("NAVER_CLIENT_ID", "id")
	t.Setenv("NAVER_CLIENT_SECRET", "secret")

	_, err := NewManager().Load("", filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		secret string
	}{
		{name: "both missing"},
		{name: "secret missing", id: "id"},
		{name: "id missing", secret: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "KEYMEND_NAVER_CLIENT_ID", "KEYMEND_NAVER_CLIENT_SECRET")
			t.Setenv("NAVER_CLIENT_ID", tt.id)
			t.Setenv("NAVER_CLIENT_SECRET", tt.secret)

			cfg, err := NewManager().Load("", "")
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, trend.ErrMissingCredentials)
			assert.Equal(t, trend.ErrorKindConfiguration, trend.Classify(err))
		})
	}
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	t.Setenv("NAVER_CLIENT_ID", "id")
	t.Setenv("NAVER_CLIENT_SECRET", "secret")
	t.Setenv("KEYMEND_PIPELINE_TOP_N", "3")

	path := writeFile(t, "keymend.yaml", `
pipeline:
  variant: recommend
  start_date: "2024-06-01"
  end_date: "2024-09-30"
  naver_keywords: ["반도체", "배터리"]
  output_dir: out
naver:
  time_unit: week
`)

	manager := NewManager()
	cfg, err := manager.Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, VariantRecommend, cfg.Pipeline.Variant)
	assert.Equal(t, "2024-06-01", cfg.Pipeline.StartDate)
	assert.Equal(t, []string{"반도체", "배터리"}, cfg.Pipeline.NaverKeywords)
	assert.Equal(t, "out", cfg.Pipeline.OutputDir)
	assert.Equal(t, "week", cfg.Naver.TimeUnit)
	assert.Equal(t, 3, cfg.Pipeline.TopN)
	assert.Same(t, cfg, manager.GetConfig())
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("NAVER_CLIENT_ID", "id")
	t.Setenv("NAVER_CLIENT_SECRET", "secret")

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "reversed range", key: "KEYMEND_PIPELINE_START_DATE", value: "2025-01-01", wantErr: trend.ErrInvalidDateRange},
		{name: "zero top n", key: "KEYMEND_PIPELINE_TOP_N", value: "0", wantErr: trend.ErrInvalidTopN},
		{name: "unknown variant", key: "KEYMEND_PIPELINE_VARIANT", value: "forecast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := NewManager().Load("", "")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
