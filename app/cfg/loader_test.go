package cfg

import (
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Expected addr ':8080', got '%s'", cfg.Addr())
	}
	if cfg.Currency != "NGN" {
		t.Errorf("Expected currency 'NGN', got '%s'", cfg.Currency)
	}
	if cfg.CurrencySymbol != "₦" {
		t.Errorf("Expected currency symbol '₦', got '%s'", cfg.CurrencySymbol)
	}
	if cfg.NotificationTTL != 5*time.Second {
		t.Errorf("Expected notification TTL 5s, got %v", cfg.NotificationTTL)
	}
	if cfg.PaymentDelay != 2*time.Second {
		t.Errorf("Expected payment delay 2s, got %v", cfg.PaymentDelay)
	}
	if cfg.ImportTimeout != 30*time.Second {
		t.Errorf("Expected import timeout 30s, got %v", cfg.ImportTimeout)
	}
	if cfg.UserAgent != "ZAMWE/1.0" {
		t.Errorf("Expected user agent 'ZAMWE/1.0', got '%s'", cfg.UserAgent)
	}
	if cfg.SeedFile != "" {
		t.Errorf("Expected empty seed file, got '%s'", cfg.SeedFile)
	}
	if cfg.Debug {
		t.Error("Expected debug to be disabled by default")
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{"--port", "9090", "--payment-delay", "0", "--debug", "--seed-file", "/tmp/seed.yml"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port '9090', got '%s'", cfg.Port)
	}
	if cfg.PaymentDelay != 0 {
		t.Errorf("Expected payment delay 0, got %v", cfg.PaymentDelay)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.SeedFile != "/tmp/seed.yml" {
		t.Errorf("Expected seed file '/tmp/seed.yml', got '%s'", cfg.SeedFile)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("CURRENCY", "USD")
	t.Setenv("CURRENCY_SYMBOL", "$")

	cfg, err := Load([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Port != "7070" {
		t.Errorf("Expected port '7070', got '%s'", cfg.Port)
	}
	if cfg.Currency != "USD" || cfg.CurrencySymbol != "$" {
		t.Errorf("Expected USD/$, got %s/%s", cfg.Currency, cfg.CurrencySymbol)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := [][]string{
		{"--currency", "XYZW"},
		{"--worker-count", "0"},
		{"--notification-ttl", "0"},
		{"--payment-delay", "-1"},
	}

	for _, args := range cases {
		if _, err := Load(args); err == nil {
			t.Errorf("Expected error for args %v", args)
		}
	}
}

func TestApplyTimezone(t *testing.T) {
	old := time.Local
	defer func() { time.Local = old }()

	if err := ApplyTimezone("UTC"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if time.Local.String() != "UTC" {
		t.Errorf("Expected time.Local UTC, got %s", time.Local)
	}
	if err := ApplyTimezone("Not/AZone"); err == nil {
		t.Error("Expected error for invalid timezone")
	}
}
