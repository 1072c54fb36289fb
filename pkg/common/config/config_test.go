package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.ServerHost != "0.0.0.0" {
		t.Errorf("ServerHost = %q, want 0.0.0.0", cfg.ServerHost)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want 15s", cfg.ReadTimeout)
	}
	if cfg.MaxRequestBody != 1024*1024 {
		t.Errorf("MaxRequestBody = %d, want 1MiB", cfg.MaxRequestBody)
	}
	if cfg.SerialPort != "COM99" {
		t.Errorf("SerialPort = %q, want COM99", cfg.SerialPort)
	}
	if cfg.AnalysisRulesPath != "" {
		t.Errorf("AnalysisRulesPath = %q, want empty", cfg.AnalysisRulesPath)
	}
	if cfg.AnalysisDelay != 50*time.Millisecond {
		t.Errorf("AnalysisDelay = %v, want 50ms", cfg.AnalysisDelay)
	}
	if cfg.RateLimitRPS != 50 {
		t.Errorf("RateLimitRPS = %d, want 50", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 100 {
		t.Errorf("RateLimitBurst = %d, want 100", cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERIAL_PORT", "/dev/ttyUSB0")
	t.Setenv("ANALYSIS_DELAY", "10ms")
	t.Setenv("RATE_LIMIT_RPS", "5")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.SerialPort != "/dev/ttyUSB0" {
		t.Errorf("SerialPort = %q, want /dev/ttyUSB0", cfg.SerialPort)
	}
	if cfg.AnalysisDelay != 10*time.Millisecond {
		t.Errorf("AnalysisDelay = %v, want 10ms", cfg.AnalysisDelay)
	}
	if cfg.RateLimitRPS != 5 {
		t.Errorf("RateLimitRPS = %d, want 5", cfg.RateLimitRPS)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := Load()

	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want default 15s", cfg.ReadTimeout)
	}
	if cfg.RateLimitBurst != 100 {
		t.Errorf("RateLimitBurst = %d, want default 100", cfg.RateLimitBurst)
	}
}
