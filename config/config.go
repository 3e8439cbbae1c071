package config

import (
	"log"
	"time"

	"raidguard/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from the environment and an optional
// config.yaml next to the binary.
func Load() (*model.Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	v := viper.New()
	v.SetDefault("settings_path", "data/settings.json")
	v.SetDefault("incident_db_path", "data/incidents.db")
	v.SetDefault("role_add_delay_ms", 100)
	v.SetDefault("audit_log_wait_ms", 1000)
	v.SetDefault("audit_log_max_attempts", 3)
	v.SetDefault("panel_timeout_min", 5)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	token := v.GetString("bot_token")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := v.GetString("app_id")
	if appID == "" {
		log.Println("Warning: APP_ID not set, using the session user ID for command registration")
	}

	cfg := &model.Config{
		BotToken:         token,
		AppID:            appID,
		SettingsPath:     v.GetString("settings_path"),
		IncidentDBPath:   v.GetString("incident_db_path"),
		LogWebhookURL:    v.GetString("log_webhook_url"),
		RoleAddDelay:     time.Duration(v.GetInt("role_add_delay_ms")) * time.Millisecond,
		AuditLogWait:     time.Duration(v.GetInt("audit_log_wait_ms")) * time.Millisecond,
		AuditLogAttempts: v.GetInt("audit_log_max_attempts"),
		PanelTimeout:     time.Duration(v.GetInt("panel_timeout_min")) * time.Minute,
	}

	return cfg, nil
}
