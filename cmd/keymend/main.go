package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"keymend/internal/config"
	"keymend/internal/pipeline"
	"keymend/pkg/logger"
	"keymend/pkg/trend"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	var (
		configPath = flag.String("config", getEnvOrDefault("KEYMEND_CONFIG", ""), "Optional YAML configuration file (env: KEYMEND_CONFIG)")
		envFile    = flag.String("env", getEnvOrDefault("KEYMEND_ENV_FILE", config.DefaultEnvFile), "Env file holding NAVER_CLIENT_ID and NAVER_CLIENT_SECRET")
		variant    = flag.String("variant", "", "Pipeline variant: trends or recommend (env: KEYMEND_PIPELINE_VARIANT)")
		debug      = flag.Bool("debug", os.Getenv("DEBUG") == "true", "Enable debug logging (env: DEBUG)")
	)
	flag.Parse()

	if *variant != "" {
		os.Setenv("KEYMEND_PIPELINE_VARIANT", *variant)
	}

	if err := run(*configPath, *envFile, *debug); err != nil {
		logger.WithError(err).
			WithField("error_kind", trend.Classify(err).String()).
			Error("keymend run failed")
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envFile string, debug bool) error {
	cfg, err := config.NewManager().Load(configPath, envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if debug {
		cfg.Logger.Level = "debug"
	}
	logger.SetLogger(logger.New(cfg.Logger))

	logger.GetSecurityLogger().SafeInfo("Configuration loaded", map[string]interface{}{
		"naver_client_id":     cfg.Naver.ClientID,
		"naver_client_secret": cfg.Naver.ClientSecret,
		"naver_endpoint":      cfg.Naver.Endpoint,
		"variant":             cfg.Pipeline.Variant,
		"start_date":          cfg.Pipeline.StartDate,
		"end_date":            cfg.Pipeline.EndDate,
		"output_dir":          cfg.Pipeline.OutputDir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, err = pipeline.New(cfg, pipeline.Deps{Out: os.Stdout}).Run(ctx)
	return err
}
