package handlers

import (
	"log"

	"raidguard/bot"
	"raidguard/handlers/antiraid"
	"raidguard/handlers/enforce"
	"raidguard/utils"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})

	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		enforce.HandleGuildMemberAdd(s, m, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, c *discordgo.ChannelDelete) {
		enforce.HandleChannelDelete(s, c, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, c *discordgo.ChannelCreate) {
		enforce.HandleChannelCreate(s, c, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.GuildRoleDelete) {
		enforce.HandleRoleDelete(s, r, b)
	})
}

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name

		if i.GuildID == "" || i.Member == nil {
			utils.SendEphemeralResponse(s, i, "This command can only be used in a server.")
			return
		}
		if err := b.Store.Ensure(i.GuildID); err != nil {
			log.Printf("Failed to initialize settings for guild %s: %v", i.GuildID, err)
			utils.SendGenericError(s, i)
			return
		}

		switch name {
		case "roleall":
			HandleRoleAll(s, i, b)
		case "antiraid":
			antiraid.HandleCommand(s, i, b)
		case "botinfo":
			BotInfoHandler(s, i, b)
		}
	case discordgo.InteractionMessageComponent:
		if antiraid.IsPanelCustomID(i.MessageComponentData().CustomID) {
			antiraid.HandleComponent(s, i, b)
		}
	case discordgo.InteractionModalSubmit:
		if antiraid.IsModalCustomID(i.ModalSubmitData().CustomID) {
			antiraid.HandleModalSubmit(s, i, b)
		}
	}
}
