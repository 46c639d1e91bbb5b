package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/clinic")
	defer os.Unsetenv("DATABASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Database.MaxConns != 20 {
		t.Errorf("Database.MaxConns = %d, want %d", cfg.Database.MaxConns, 20)
	}
	if cfg.Rate.RequestsPerMinute != 120 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 120)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/clinic")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	os.Setenv("DB_URL", "postgres://localhost/alt")
	defer os.Unsetenv("DB_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.URL != "postgres://localhost/alt" {
		t.Errorf("Database.URL = %q, want %q", cfg.Database.URL, "postgres://localhost/alt")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DB_URL")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing DATABASE_URL")
	}
}

func TestLoad_Duration(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/clinic")
	os.Setenv("SERVER_READ_TIMEOUT", "45s")
	os.Setenv("DB_MAX_CONN_LIFETIME", "90m")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("DB_MAX_CONN_LIFETIME")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Database.MaxConnLifetime != 90*time.Minute {
		t.Errorf("Database.MaxConnLifetime = %v, want %v", cfg.Database.MaxConnLifetime, 90*time.Minute)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{URL: "postgres://localhost/clinic", MaxConns: 20, MinConns: 4},
		Server:   ServerConfig{Port: 99999, ShutdownTimeout: time.Second, RequestTimeout: time.Minute},
		Rate:     RateLimitConfig{Enabled: true, RequestsPerMinute: 120},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for invalid port")
	}
}

func TestValidate_PoolBounds(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{URL: "postgres://localhost/clinic", MaxConns: 2, MinConns: 4},
		Server:   ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Minute},
		Rate:     RateLimitConfig{Enabled: true, RequestsPerMinute: 120},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for MaxConns < MinConns")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{URL: "postgres://localhost/clinic", MaxConns: 20, MinConns: 4},
		Server:   ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Minute},
		Rate:     RateLimitConfig{Enabled: true, RequestsPerMinute: 120},
		Logging:  LoggingConfig{Level: "loud", Format: "text"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for invalid log level")
	}
}

func TestAddr(t *testing.T) {
	sc := ServerConfig{Host: "127.0.0.1", Port: 8081}
	if got := sc.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8081")
	}
}
