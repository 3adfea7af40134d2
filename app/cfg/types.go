package cfg

import "time"

type Cfg struct {
	// Server configuration
	Port    string
	BaseUrl string

	// Content configuration
	SeedFile       string
	Currency       string
	CurrencySymbol string
	Locale         string

	// Behaviour configuration
	NotificationTTL   time.Duration
	PaymentDelay      time.Duration
	SessionTTL        time.Duration
	SchedulerInterval time.Duration
	WorkerCount       int
	ImportTimeout     time.Duration

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}

func (c *Cfg) Addr() string {
	return ":" + c.Port
}
