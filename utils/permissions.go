package utils

import (
	"github.com/bwmarrin/discordgo"
)

// BotGuildPermissions computes the bot account's guild-wide permission set
// from its roles. Channel overwrites are not considered; the enforcement
// handlers only need guild-level capabilities.
func BotGuildPermissions(s *discordgo.Session, guildID string) (int64, error) {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return 0, err
		}
	}

	if guild.OwnerID == s.State.User.ID {
		return discordgo.PermissionAdministrator, nil
	}

	member, err := s.State.Member(guildID, s.State.User.ID)
	if err != nil {
		member, err = s.GuildMember(guildID, s.State.User.ID)
		if err != nil {
			return 0, err
		}
	}

	var perms int64
	for _, role := range guild.Roles {
		// @everyone shares the guild's ID
		if role.ID == guildID {
			perms |= role.Permissions
		}
	}
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID {
				perms |= role.Permissions
				break
			}
		}
	}
	return perms, nil
}

// BotHasPermission reports whether the bot holds perm in the guild.
// Administrator implies everything.
func BotHasPermission(s *discordgo.Session, guildID string, perm int64) bool {
	perms, err := BotGuildPermissions(s, guildID)
	if err != nil {
		return false
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return perms&perm == perm
}

// IsGuildOwner reports whether userID owns the guild.
func IsGuildOwner(s *discordgo.Session, guildID, userID string) (bool, error) {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return false, err
		}
	}
	return guild.OwnerID == userID, nil
}
