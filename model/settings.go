package model

// AntiFakeConfig gates the minimum-account-age protection.
type AntiFakeConfig struct {
	Enabled bool `json:"enabled"`
	MinDays int  `json:"minDays"`
}

// GuildProtectionConfig holds the per-guild anti-raid switches.
//
// Ban, Unban and Kick are carried in the settings file for compatibility
// with existing documents but no handler reads them.
type GuildProtectionConfig struct {
	AntiBot       bool           `json:"antiBot"`
	AntiFake      AntiFakeConfig `json:"antiFake"`
	ChannelDelete bool           `json:"channelDelete"`
	ChannelCreate bool           `json:"channelCreate"`
	RoleDelete    bool           `json:"roleDelete"`
	Ban           bool           `json:"ban"`
	Unban         bool           `json:"unban"`
	Kick          bool           `json:"kick"`
}

// SettingsFile is the on-disk shape of the settings document.
type SettingsFile struct {
	AntiRaid map[string]GuildProtectionConfig `json:"antiRaid"`
}

// DefaultGuildProtectionConfig is the configuration a guild gets on first touch.
func DefaultGuildProtectionConfig() GuildProtectionConfig {
	return GuildProtectionConfig{
		AntiFake: AntiFakeConfig{Enabled: false, MinDays: 7},
	}
}
