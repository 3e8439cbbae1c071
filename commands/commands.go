package commands

import (
	"github.com/bwmarrin/discordgo"
)

// Generate returns the bot's global application commands.
func Generate() []*discordgo.ApplicationCommand {
	manageRoles := int64(discordgo.PermissionManageRoles)
	// No default permission for antiraid; the handler enforces that the
	// invoker is the guild owner, which permissions cannot express.
	ownerOnly := int64(0)

	return []*discordgo.ApplicationCommand{
		{
			Name:                     "roleall",
			Description:              "Assign a role to all members",
			DefaultMemberPermissions: &manageRoles,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "The role to assign",
					Required:    true,
				},
			},
		},
		{
			Name:                     "antiraid",
			Description:              "Configure anti-raid protections (Owner only)",
			DefaultMemberPermissions: &ownerOnly,
		},
		{
			Name:        "botinfo",
			Description: "Show runtime and host information",
		},
	}
}
