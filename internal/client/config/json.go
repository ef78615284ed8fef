package config

import (
	"encoding/json"
	"os"

	"github.com/mygaadi/mygaadi/internal/flagx"
	"github.com/mygaadi/mygaadi/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a sparse file only overlays
// what it names. Durations accept either strings like "30s" or integer
// nanoseconds via timex.Duration.
type JSONConfig struct {
	Adapter       *string `json:"adapter"`
	LocalDBPath   *string `json:"local_db_path"`
	MongoURI      *string `json:"mongo_uri"`
	MongoDatabase *string `json:"mongo_database"`

	NotificationsEnabled *bool   `json:"notifications_enabled"`
	ClearDataOnLogout    *bool   `json:"clear_data_on_logout"`
	DefaultSortOrder     *string `json:"default_sort_order"`
	ReminderLeadTime     *int    `json:"reminder_lead_time"`
	AlertCheckSpec       *string `json:"alert_check_spec"`

	AssistEndpoint *string         `json:"assist_endpoint"`
	AssistTimeout  *timex.Duration `json:"assist_timeout"`
}

// parseJSON overlays Config with values from the JSON file named by the -c
// or -config flag. No flag means no JSON is loaded. Read or unmarshal
// errors panic; configuration problems should stop the program at startup.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Adapter != nil {
		cfg.Adapter = *jc.Adapter
	}
	if jc.LocalDBPath != nil {
		cfg.LocalDBPath = *jc.LocalDBPath
	}
	if jc.MongoURI != nil {
		cfg.MongoURI = *jc.MongoURI
	}
	if jc.MongoDatabase != nil {
		cfg.MongoDatabase = *jc.MongoDatabase
	}
	if jc.NotificationsEnabled != nil {
		cfg.NotificationsEnabled = *jc.NotificationsEnabled
	}
	if jc.ClearDataOnLogout != nil {
		cfg.ClearDataOnLogout = *jc.ClearDataOnLogout
	}
	if jc.DefaultSortOrder != nil {
		cfg.DefaultSortOrder = *jc.DefaultSortOrder
	}
	if jc.ReminderLeadTime != nil {
		cfg.ReminderLeadTime = *jc.ReminderLeadTime
	}
	if jc.AlertCheckSpec != nil {
		cfg.AlertCheckSpec = *jc.AlertCheckSpec
	}
	if jc.AssistEndpoint != nil {
		cfg.AssistEndpoint = *jc.AssistEndpoint
	}
	if jc.AssistTimeout != nil {
		cfg.AssistTimeout = jc.AssistTimeout.Duration
	}
}
