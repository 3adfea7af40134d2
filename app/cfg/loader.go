package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL for the site (e.g., https://zamwe.org)"`

	// Content configuration
	SeedFile       string `long:"seed-file" env:"SEED_FILE" description:"YAML seed catalog overriding the embedded one (optional)"`
	Currency       string `long:"currency" env:"CURRENCY" default:"NGN" description:"ISO 4217 currency code for displayed amounts"`
	CurrencySymbol string `long:"currency-symbol" env:"CURRENCY_SYMBOL" default:"₦" description:"Symbol prefixed to displayed amounts"`
	Locale         string `long:"locale" env:"LOCALE" default:"en" description:"BCP 47 locale used for thousand separators"`

	// Behaviour configuration
	NotificationTTL   int `long:"notification-ttl" env:"NOTIFICATION_TTL" default:"5" description:"Seconds a notification stays visible"`
	PaymentDelay      int `long:"payment-delay" env:"PAYMENT_DELAY" default:"2" description:"Seconds before the simulated payment follow-up notification"`
	SessionTTL        int `long:"session-ttl" env:"SESSION_TTL" default:"3600" description:"Seconds an idle session is kept"`
	SchedulerInterval int `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"60" description:"Session sweep interval in seconds"`
	WorkerCount       int `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers"`
	ImportTimeout     int `long:"import-timeout" env:"IMPORT_TIMEOUT" default:"30" description:"Seconds allowed for fetching an imported RSS feed"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"ZAMWE/1.0" description:"User agent string for RSS import requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"Africa/Lagos" description:"Timezone for dates (e.g., UTC, Africa/Lagos)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses args (without the program name) and the environment. It returns
// nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:              raw.Port,
		BaseUrl:           raw.BaseUrl,
		SeedFile:          raw.SeedFile,
		Currency:          raw.Currency,
		CurrencySymbol:    raw.CurrencySymbol,
		Locale:            raw.Locale,
		NotificationTTL:   time.Duration(raw.NotificationTTL) * time.Second,
		PaymentDelay:      time.Duration(raw.PaymentDelay) * time.Second,
		SessionTTL:        time.Duration(raw.SessionTTL) * time.Second,
		SchedulerInterval: time.Duration(raw.SchedulerInterval) * time.Second,
		WorkerCount:       raw.WorkerCount,
		ImportTimeout:     time.Duration(raw.ImportTimeout) * time.Second,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Cfg) validate() error {
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("invalid currency %q: %w", c.Currency, err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}

	positive := map[string]time.Duration{
		"notification ttl":   c.NotificationTTL,
		"session ttl":        c.SessionTTL,
		"scheduler interval": c.SchedulerInterval,
		"import timeout":     c.ImportTimeout,
	}
	for name, value := range positive {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.PaymentDelay < 0 {
		return fmt.Errorf("payment delay must be non-negative")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker count must be at least 1")
	}

	return nil
}

// ApplyTimezone sets time.Local for the process.
func ApplyTimezone(timezone string) error {
	if timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return err
	}
	time.Local = loc
	return nil
}
