package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"DB_PATH", "DB_BUSY_TIMEOUT", "API_PORT", "LOG_LEVEL", "LOG_FORMAT",
	"QDRANT_URL", "QDRANT_COLLECTION_PREFIX", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	original := make(map[string]string)
	for _, key := range envVars {
		if value, ok := os.LookupEnv(key); ok {
			original[key] = value
		}
		_ = os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envVars {
			if value, ok := original[key]; ok {
				_ = os.Setenv(key, value)
			} else {
				_ = os.Unsetenv(key)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "data", "chatlog.db"))
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.APIPort != "9000" {
					t.Errorf("APIPort = %v, want 9000", cfg.APIPort)
				}
				if cfg.DBBusyTimeout != 5*time.Second {
					t.Errorf("DBBusyTimeout = %v, want 5s", cfg.DBBusyTimeout)
				}
				if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
					t.Errorf("LogLevel/LogFormat = %v/%v, want info/text", cfg.LogLevel, cfg.LogFormat)
				}
				if cfg.VectorIndexEnabled() {
					t.Error("VectorIndexEnabled() = true without QDRANT_URL")
				}
				if cfg.QdrantCollectionPrefix != "chat_" {
					t.Errorf("QdrantCollectionPrefix = %v, want chat_", cfg.QdrantCollectionPrefix)
				}
				if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
					t.Errorf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
				}
				if _, err := os.Stat(filepath.Dir(cfg.DBPath)); err != nil {
					t.Errorf("data directory was not created: %v", err)
				}
			},
		},
		{
			name: "overrides",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "x.db"))
				t.Setenv("DB_BUSY_TIMEOUT", "250ms")
				t.Setenv("API_PORT", "8080")
				t.Setenv("LOG_LEVEL", "debug")
				t.Setenv("LOG_FORMAT", "json")
				t.Setenv("QDRANT_URL", "http://localhost:6333")
				t.Setenv("QDRANT_COLLECTION_PREFIX", "c")
				t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.DBBusyTimeout != 250*time.Millisecond {
					t.Errorf("DBBusyTimeout = %v, want 250ms", cfg.DBBusyTimeout)
				}
				if cfg.APIPort != "8080" {
					t.Errorf("APIPort = %v, want 8080", cfg.APIPort)
				}
				if !cfg.VectorIndexEnabled() || cfg.QdrantCollectionPrefix != "c" {
					t.Errorf("Qdrant config = %q/%q", cfg.QdrantURL, cfg.QdrantCollectionPrefix)
				}
				if len(cfg.CORSAllowedOrigins) != 2 {
					t.Errorf("CORSAllowedOrigins = %v, want 2 origins", cfg.CORSAllowedOrigins)
				}
			},
		},
		{
			name: "invalid log level",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "x.db"))
				t.Setenv("LOG_LEVEL", "verbose")
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "x.db"))
				t.Setenv("LOG_FORMAT", "xml")
			},
			wantErr: true,
		},
		{
			name: "unparsable busy timeout",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "x.db"))
				t.Setenv("DB_BUSY_TIMEOUT", "soon")
			},
			wantErr: true,
		},
		{
			name: "negative busy timeout",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "x.db"))
				t.Setenv("DB_BUSY_TIMEOUT", "-1s")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			tt.setupEnv(t)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", wantErr: true},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLogLevel(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLogLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
