package config

import "time"

type DataService struct {
	BaseURL        string        `env:"DATA_SERVICE_BASE_URL,notEmpty"`
	Token          string        `env:"DATA_SERVICE_TOKEN" json:"-"`
	Timeout        time.Duration `env:"DATA_SERVICE_TIMEOUT" envDefault:"15s"`
	LogFieldMaxLen int           `env:"DATA_SERVICE_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Availability struct {
	// Candidates is a comma separated list of "query:<path>" and
	// "path:<path with {hotel_id}>" entries; empty means the built-in list.
	Candidates string        `env:"AVAILABILITY_CANDIDATES"`
	ContextTTL time.Duration `env:"AVAILABILITY_CONTEXT_TTL" envDefault:"30m"`
}

type Directory struct {
	TTL             time.Duration `env:"HOTEL_DIRECTORY_TTL" envDefault:"5m"`
	RefreshInterval time.Duration `env:"HOTEL_DIRECTORY_REFRESH_INTERVAL" envDefault:"0"`
}
