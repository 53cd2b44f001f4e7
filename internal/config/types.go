package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ProviderBaseURL string        `envconfig:"PROVIDER_BASE_URL" default:"https://site.api.espn.com/apis/site/v2/sports"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	// Timezone is the reference zone for the default query date and for
	// presenting start times.
	Timezone string `envconfig:"TIMEZONE" default:"America/New_York"`
	// LogFile, when set, appends all log output to the named file.
	LogFile string `envconfig:"LOG_FILE"`
}
