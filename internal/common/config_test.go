package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Platform.BaseURL != "http://localhost:8000/api" {
		t.Errorf("Platform.BaseURL default = %q, want %q", cfg.Platform.BaseURL, "http://localhost:8000/api")
	}
	if cfg.Allocation.Tolerance != 0.01 {
		t.Errorf("Allocation.Tolerance default = %v, want 0.01", cfg.Allocation.Tolerance)
	}
	if cfg.Cache.MaxEntries != 256 {
		t.Errorf("Cache.MaxEntries default = %d, want 256", cfg.Cache.MaxEntries)
	}
	if cfg.MCP.Port != 8091 {
		t.Errorf("MCP.Port default = %d, want 8091", cfg.MCP.Port)
	}
}

func TestConfig_PlatformURLEnvOverride(t *testing.T) {
	t.Setenv("CONSILIO_PLATFORM_URL", "https://platform.example.com/api")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Platform.BaseURL != "https://platform.example.com/api" {
		t.Errorf("Platform.BaseURL = %q after env override, want %q", cfg.Platform.BaseURL, "https://platform.example.com/api")
	}
}

func TestConfig_PlatformKeyEnvOverride(t *testing.T) {
	t.Setenv("PLATFORM_API_KEY", "from-env")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Platform.APIKey != "from-env" {
		t.Errorf("Platform.APIKey = %q, want %q", cfg.Platform.APIKey, "from-env")
	}
}

func TestConfig_GeminiKeyGoogleEnvFallback(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "google-fallback")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Gemini.APIKey != "google-fallback" {
		t.Errorf("Gemini.APIKey = %q, want %q", cfg.Gemini.APIKey, "google-fallback")
	}
}

func TestConfig_ToleranceEnvOverride(t *testing.T) {
	t.Setenv("CONSILIO_ALLOCATION_TOLERANCE", "0.5")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Allocation.Tolerance != 0.5 {
		t.Errorf("Allocation.Tolerance = %v after env override, want 0.5", cfg.Allocation.Tolerance)
	}
}

func TestConfig_ToleranceEnvInvalidIgnored(t *testing.T) {
	t.Setenv("CONSILIO_ALLOCATION_TOLERANCE", "-1")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Allocation.Tolerance != 0.01 {
		t.Errorf("Allocation.Tolerance = %v, want 0.01 (negative override ignored)", cfg.Allocation.Tolerance)
	}
}

func TestConfig_LoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")

	if err := os.WriteFile(base, []byte("[platform]\nbase_url = \"https://base.example.com/api\"\nrate_limit = 10\n"), 0o644); err != nil {
		t.Fatalf("write base config: %v", err)
	}
	if err := os.WriteFile(local, []byte("[platform]\nbase_url = \"https://local.example.com/api\"\n"), 0o644); err != nil {
		t.Fatalf("write local config: %v", err)
	}

	cfg, err := LoadConfig(base, local)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Platform.BaseURL != "https://local.example.com/api" {
		t.Errorf("Platform.BaseURL = %q, want later file to win", cfg.Platform.BaseURL)
	}
	if cfg.Platform.RateLimit != 10 {
		t.Errorf("Platform.RateLimit = %d, want 10 from base file", cfg.Platform.RateLimit)
	}
}

func TestConfig_LoadSkipsMissingFiles(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want missing files skipped", err)
	}
	if cfg.Platform.RateLimit != 5 {
		t.Errorf("Platform.RateLimit = %d, want default 5", cfg.Platform.RateLimit)
	}
}

func TestPlatformConfig_GetTimeout_Default(t *testing.T) {
	cfg := &PlatformConfig{Timeout: "not-a-duration"}
	if d := cfg.GetTimeout(); d != 30*time.Second {
		t.Errorf("GetTimeout() = %v, want 30s (fallback for invalid)", d)
	}
}

func TestPlatformConfig_GetTimeout_Configured(t *testing.T) {
	cfg := &PlatformConfig{Timeout: "5s"}
	if d := cfg.GetTimeout(); d != 5*time.Second {
		t.Errorf("GetTimeout() = %v, want 5s", d)
	}
}

func TestAllocationConfig_GetTolerance_ZeroFallsBack(t *testing.T) {
	cfg := &AllocationConfig{}
	if tol := cfg.GetTolerance(); tol != 0.01 {
		t.Errorf("GetTolerance() = %v, want 0.01 (fallback for zero)", tol)
	}
}

func TestConfig_ValidateRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	if missing := cfg.ValidateRequired(); len(missing) != 0 {
		t.Errorf("expected 0 missing fields with defaults, got %v", missing)
	}

	cfg.Platform.BaseURL = "  "
	missing := cfg.ValidateRequired()
	if len(missing) != 1 || missing[0] != "platform.base_url" {
		t.Errorf("expected platform.base_url missing, got %v", missing)
	}
}

func TestIsFresh(t *testing.T) {
	if IsFresh(time.Time{}, time.Hour) {
		t.Error("IsFresh(zero) = true, want false")
	}
	if !IsFresh(time.Now().Add(-time.Minute), FreshnessFunds) {
		t.Error("IsFresh(1m ago, 5m TTL) = false, want true")
	}
	if IsFresh(time.Now().Add(-2*time.Minute), FreshnessClientGroups) {
		t.Error("IsFresh(2m ago, 1m TTL) = true, want false")
	}
}
