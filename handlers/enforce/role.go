package enforce

import (
	"log"

	"raidguard/bot"
	"raidguard/model"
	"raidguard/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleRoleDelete bans whoever deleted a role while the protection is
// enabled.
func HandleRoleDelete(s *discordgo.Session, r *discordgo.GuildRoleDelete, b *bot.Bot) {
	guildID := r.GuildID
	if guildID == "" {
		return
	}
	if err := b.Store.Ensure(guildID); err != nil {
		log.Printf("Failed to initialize settings for guild %s: %v", guildID, err)
		return
	}
	if !b.Store.Get(guildID).RoleDelete {
		return
	}

	if !utils.BotHasPermission(s, guildID, discordgo.PermissionViewAuditLogs) {
		log.Printf("Missing View Audit Log permission for role delete protection in guild %s", guildID)
		return
	}
	if !utils.BotHasPermission(s, guildID, discordgo.PermissionBanMembers) {
		log.Printf("Missing Ban Members permission for role delete protection in guild %s", guildID)
		return
	}

	executor := fetchAuditExecutor(s, b.Config, guildID, discordgo.AuditLogActionRoleDelete)
	if !shouldPunishExecutor(executor, s.State.User.ID) {
		if executor == "" {
			log.Printf("No audit log entry found for role deletion: %s", r.RoleID)
		}
		return
	}

	banExecutor(s, b, guildID, executor, model.RuleRoleDelete, "Deleted a role with anti-raid protection enabled.")
}
