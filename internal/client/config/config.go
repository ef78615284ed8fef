package config

import (
	"time"

	"github.com/mygaadi/mygaadi/internal/common"
)

// Adapter selection for the backing store.
const (
	AdapterLocal  = "local"
	AdapterRemote = "remote"
)

// Sort order applied by list views.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// Config holds runtime settings for the myGaadi client.
type Config struct {
	// Backing store selection.
	Adapter       string
	LocalDBPath   string
	MongoURI      string
	MongoDatabase string

	// User-facing settings.
	NotificationsEnabled bool
	ClearDataOnLogout    bool
	DefaultSortOrder     string
	ReminderLeadTime     int // days: 7, 14 or 30
	AlertCheckSpec       string

	// Collaborators.
	AssistEndpoint string
	AssistTimeout  time.Duration

	// Document file storage.
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Adapter = AdapterLocal
	c.LocalDBPath = "gaadi.db"
	c.MongoURI = "mongodb://127.0.0.1:27017"
	c.MongoDatabase = "mygaadi"

	c.NotificationsEnabled = true
	c.ClearDataOnLogout = false
	c.DefaultSortOrder = SortNewest
	c.ReminderLeadTime = 14
	c.AlertCheckSpec = "@every 1m"

	c.AssistEndpoint = "http://127.0.0.1:8090/api/assist"
	c.AssistTimeout = 30 * time.Second

	c.S3Bucket = "mygaadi-documents"
	c.S3Region = "us-east-1"
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.ReminderLeadTime {
	case 7, 14, 30:
	default:
		return common.ErrInvalidLeadTime
	}
	switch c.DefaultSortOrder {
	case SortNewest, SortOldest:
	default:
		return common.ErrInvalidSortOrder
	}
	return nil
}

// LoadConfig constructs a Config by applying defaults, then overlaying the
// environment (including an optional .env file), an optional JSON file and
// finally command-line flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
