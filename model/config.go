package model

import "time"

// Config stores the process configuration.
type Config struct {
	BotToken       string
	AppID          string
	SettingsPath   string
	IncidentDBPath string
	LogWebhookURL  string

	// RoleAddDelay is the pause between consecutive role additions in
	// /roleall, to stay under the REST rate limit.
	RoleAddDelay time.Duration

	// AuditLogWait is the initial wait before the first audit-log fetch
	// after a protected event; each retry doubles it.
	AuditLogWait     time.Duration
	AuditLogAttempts int

	// PanelTimeout is how long an anti-raid panel accepts button presses.
	PanelTimeout time.Duration
}
