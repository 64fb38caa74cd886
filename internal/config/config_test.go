package config

import (
	"os"
	"testing"
)

func clearEnv() {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")
	os.Unsetenv("DEFAULT_LANG")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.DefaultLanguage != "es" {
		t.Errorf("DefaultLanguage = %q, want %q", cfg.DefaultLanguage, "es")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DEFAULT_LANG", "en")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("DefaultLanguage = %q, want %q", cfg.DefaultLanguage, "en")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid env", "ENV", "sandbox"},
		{"invalid log level", "LOG_LEVEL", "verbose"},
		{"invalid log format", "LOG_FORMAT", "xml"},
		{"port too large", "PORT", "99999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			os.Setenv(tt.key, tt.val)
			defer clearEnv()

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.val)
			}
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	clearEnv()

	cfg := &Config{
		Port:            8080,
		Env:             EnvDevelopment,
		DefaultLanguage: "es",
		LogLevel:        "info",
		LogFormat:       "text",
	}

	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() should be true")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() should be false")
	}
}
