package enforce

import (
	"log"

	"raidguard/bot"
	"raidguard/model"
	"raidguard/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleChannelDelete bans whoever deleted a channel while the protection
// is enabled.
func HandleChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete, b *bot.Bot) {
	guildID := c.GuildID
	if guildID == "" {
		return
	}
	if err := b.Store.Ensure(guildID); err != nil {
		log.Printf("Failed to initialize settings for guild %s: %v", guildID, err)
		return
	}
	if !b.Store.Get(guildID).ChannelDelete {
		return
	}

	if !utils.BotHasPermission(s, guildID, discordgo.PermissionViewAuditLogs) {
		log.Printf("Missing View Audit Log permission for channel delete protection in guild %s", guildID)
		return
	}
	if !utils.BotHasPermission(s, guildID, discordgo.PermissionBanMembers) {
		log.Printf("Missing Ban Members permission for channel delete protection in guild %s", guildID)
		return
	}

	executor := fetchAuditExecutor(s, b.Config, guildID, discordgo.AuditLogActionChannelDelete)
	if !shouldPunishExecutor(executor, s.State.User.ID) {
		if executor == "" {
			log.Printf("No audit log entry found for channel deletion: %s", c.Name)
		}
		return
	}

	banExecutor(s, b, guildID, executor, model.RuleChannelDelete, "Deleted a channel with anti-raid protection enabled.")
}

// HandleChannelCreate bans whoever created a channel while the protection
// is enabled, and removes the channel.
func HandleChannelCreate(s *discordgo.Session, c *discordgo.ChannelCreate, b *bot.Bot) {
	guildID := c.GuildID
	if guildID == "" {
		return
	}
	if err := b.Store.Ensure(guildID); err != nil {
		log.Printf("Failed to initialize settings for guild %s: %v", guildID, err)
		return
	}
	if !b.Store.Get(guildID).ChannelCreate {
		return
	}

	if !utils.BotHasPermission(s, guildID, discordgo.PermissionViewAuditLogs) {
		log.Printf("Missing View Audit Log permission for channel create protection in guild %s", guildID)
		return
	}
	if !utils.BotHasPermission(s, guildID, discordgo.PermissionBanMembers) {
		log.Printf("Missing Ban Members permission for channel create protection in guild %s", guildID)
		return
	}
	if !utils.BotHasPermission(s, guildID, discordgo.PermissionManageChannels) {
		log.Printf("Missing Manage Channels permission for channel create protection in guild %s", guildID)
		return
	}

	executor := fetchAuditExecutor(s, b.Config, guildID, discordgo.AuditLogActionChannelCreate)
	if !shouldPunishExecutor(executor, s.State.User.ID) {
		if executor == "" {
			log.Printf("No audit log entry found for channel creation: %s", c.Name)
		}
		return
	}

	if err := banExecutor(s, b, guildID, executor, model.RuleChannelCreate, "Created a channel with anti-raid protection enabled."); err != nil {
		return
	}

	if _, err := s.ChannelDelete(c.ID); err != nil {
		log.Printf("Failed to delete channel %s created during raid: %v", c.ID, err)
	}
}
