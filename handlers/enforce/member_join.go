package enforce

import (
	"fmt"
	"log"
	"time"

	"raidguard/bot"
	"raidguard/model"
	"raidguard/utils"

	"github.com/bwmarrin/discordgo"
)

const hoursPerDay = 24

// accountAgeDays computes the account's age from its snowflake creation
// timestamp.
func accountAgeDays(created, now time.Time) float64 {
	return now.Sub(created).Hours() / hoursPerDay
}

// isTooNew is the anti-fake rule: strictly younger than minDays gets kicked.
func isTooNew(created, now time.Time, minDays int) bool {
	return accountAgeDays(created, now) < float64(minDays)
}

// HandleGuildMemberAdd applies the anti-bot and anti-fake protections to a
// joining member.
func HandleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd, b *bot.Bot) {
	if m.GuildID == "" {
		return
	}
	if err := b.Store.Ensure(m.GuildID); err != nil {
		log.Printf("Failed to initialize settings for guild %s: %v", m.GuildID, err)
		return
	}
	cfg := b.Store.Get(m.GuildID)

	if cfg.AntiBot && m.User.Bot {
		if !utils.BotHasPermission(s, m.GuildID, discordgo.PermissionKickMembers) {
			log.Printf("Missing Kick Members permission for anti-bot action in guild %s", m.GuildID)
			return
		}
		kickMember(s, b, m.GuildID, m.User.ID, m.User.Username, model.RuleAntiBot, "Anti-Bot protection enabled.")
		return
	}

	if cfg.AntiFake.Enabled {
		created, err := discordgo.SnowflakeTimestamp(m.User.ID)
		if err != nil {
			log.Printf("Could not derive creation time for user %s: %v", m.User.ID, err)
			return
		}
		now := time.Now()
		if isTooNew(created, now, cfg.AntiFake.MinDays) {
			if !utils.BotHasPermission(s, m.GuildID, discordgo.PermissionKickMembers) {
				log.Printf("Missing Kick Members permission for anti-fake action in guild %s", m.GuildID)
				return
			}
			reason := fmt.Sprintf("Account too new (%.1f days). Minimum: %d days.", accountAgeDays(created, now), cfg.AntiFake.MinDays)
			kickMember(s, b, m.GuildID, m.User.ID, m.User.Username, model.RuleAntiFake, reason)
		}
	}
}
