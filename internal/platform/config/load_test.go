package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vinhson/vinhson-web/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Site.BaseURL != "http://localhost:8080" {
		t.Errorf("Site.BaseURL = %q, want localhost", cfg.Site.BaseURL)
	}
	if cfg.Site.Secure() {
		t.Error("Site.Secure() = true for http base URL")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_PREVIEW_SECRET", "prod-secret")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry = %+v, want enabled otlp", cfg.Telemetry)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus = false, want true for prod")
	}
	if cfg.Preview.Secret != "prod-secret" {
		t.Errorf("Preview.Secret = %q, want env value", cfg.Preview.Secret)
	}
	if cfg.CMS.Client.RateLimit.Burst != 20 {
		t.Errorf("CMS.Client.RateLimit.Burst = %d, want 20", cfg.CMS.Client.RateLimit.Burst)
	}
}

func TestLoad_ProdWithoutSecretFails(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("prod"); err == nil {
		t.Fatal("Load(\"prod\") returned nil error without preview secret")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.CMS.APIVersion != "2024-01-01" {
		t.Errorf("CMS.APIVersion = %q, want 2024-01-01 (from base)", cfg.CMS.APIVersion)
	}
	if cfg.CMS.Client.Retry.MaxAttempts != 3 {
		t.Errorf("CMS.Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.CMS.Client.Retry.MaxAttempts)
	}
	if cfg.Preview.CookieName != "__preview" {
		t.Errorf("Preview.CookieName = %q, want __preview", cfg.Preview.CookieName)
	}
	if cfg.Preview.MaxAge != time.Hour {
		t.Errorf("Preview.MaxAge = %v, want 1h", cfg.Preview.MaxAge)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CMS_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.CMS.Client.Retry.MaxAttempts != 7 {
		t.Errorf("CMS.Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.CMS.Client.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideDefaultOnlyKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CMS_TOKEN", "sk-test")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.CMS.Token != "sk-test" {
		t.Errorf("CMS.Token = %q, want sk-test (key known only from defaults)", cfg.CMS.Token)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Chdir("../../..")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("APP_SITE_HOME_PRODUCTS=9\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("APP_SITE_HOME_PRODUCTS") })

	cfg, err := config.Load("local", config.WithEnvFiles(envPath, filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Site.HomeProducts != 9 {
		t.Errorf("Site.HomeProducts = %d, want 9 (from env file)", cfg.Site.HomeProducts)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_ProfileTraversal(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }},
		{name: "otlp without endpoint", mutate: func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}},
		{name: "missing project", mutate: func(c *config.Config) { c.CMS.ProjectID = "" }},
		{name: "bad api version", mutate: func(c *config.Config) { c.CMS.APIVersion = "v1" }},
		{name: "relative base url", mutate: func(c *config.Config) { c.Site.BaseURL = "vinhson.com.vn" }},
		{name: "trailing slash", mutate: func(c *config.Config) { c.Site.BaseURL = "https://vinhson.com.vn/" }},
		{name: "unsupported locale", mutate: func(c *config.Config) { c.Site.DefaultLocale = "fr" }},
		{name: "empty preview secret", mutate: func(c *config.Config) { c.Preview.Secret = " " }},
		{name: "zero burst", mutate: func(c *config.Config) { c.CMS.Client.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func TestCMSConfig_URLs(t *testing.T) {
	t.Parallel()

	c := config.CMSConfig{ProjectID: "abc123"}
	if got := c.CDNURL(); got != "https://abc123.apicdn.sanity.io" {
		t.Errorf("CDNURL() = %q", got)
	}
	if got := c.APIURL(); got != "https://abc123.api.sanity.io" {
		t.Errorf("APIURL() = %q", got)
	}
	c.BaseURL = "http://127.0.0.1:9999"
	if c.CDNURL() != c.BaseURL || c.APIURL() != c.BaseURL {
		t.Error("BaseURL override not applied")
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 15 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		CMS: config.CMSConfig{
			ProjectID:  "vinhson",
			Dataset:    "production",
			APIVersion: "2024-01-01",
			Client: config.ClientConfig{
				Timeout: 10 * time.Second,
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 100 * time.Millisecond,
					MaxInterval:     2 * time.Second,
					Multiplier:      2.0,
				},
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
				RateLimit: config.RateLimitConfig{
					RequestsPerSecond: 50,
					Burst:             10,
				},
			},
		},
		Site: config.SiteConfig{
			BaseURL:              "https://vinhson.com.vn",
			Name:                 "Vinh Son",
			DefaultLocale:        "vi",
			CacheMaxAge:          time.Minute,
			StaleWhileRevalidate: 10 * time.Minute,
			RecentPosts:          3,
			HomeProducts:         6,
		},
		Preview: config.PreviewConfig{
			Secret:     "s3cret",
			CookieName: "__preview",
			MaxAge:     time.Hour,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
