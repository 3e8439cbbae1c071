package model

// Enforcement rules that can produce an incident.
const (
	RuleAntiBot       = "anti_bot"
	RuleAntiFake      = "anti_fake"
	RuleChannelDelete = "channel_delete"
	RuleChannelCreate = "channel_create"
	RuleRoleDelete    = "role_delete"
)

// Actions the bot can take against an offender.
const (
	ActionKick = "kick"
	ActionBan  = "ban"
)

// IncidentRecord is one enforcement action taken by the bot.
type IncidentRecord struct {
	IncidentID int64  `db:"incident_id"`
	GuildID    string `db:"guild_id"`
	UserID     string `db:"user_id"`
	Username   string `db:"user_username"`
	Action     string `db:"action"`
	Rule       string `db:"rule"`
	Reason     string `db:"reason"`
	Timestamp  int64  `db:"timestamp"`
}
