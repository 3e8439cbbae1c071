package antiraid

import (
	"fmt"
	"log"
	"strings"

	"raidguard/bot"
	"raidguard/model"
	"raidguard/utils"
	"raidguard/utils/database/incidents"

	"github.com/bwmarrin/discordgo"
)

const panelColor = 0x4c89c7

const (
	panelDescription       = "Configure the anti-raid options for your server."
	panelClosedDescription = "Anti-raid settings closed."
)

// Button actions; each also forms the first half of its custom ID.
const (
	actionAntiBot       = "antiBot"
	actionAntiFake      = "antiFake"
	actionChannelDelete = "channelDelete"
	actionChannelCreate = "channelCreate"
	actionRoleDelete    = "roleDelete"
)

const modalPrefix = "antiFakeModal"

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func buttonStyle(on bool) discordgo.ButtonStyle {
	if on {
		return discordgo.SuccessButton
	}
	return discordgo.DangerButton
}

func antiFakeLabel(cfg model.AntiFakeConfig) string {
	if cfg.Enabled {
		return fmt.Sprintf("Anti-Fake: ON (%d days)", cfg.MinDays)
	}
	return "Anti-Fake: OFF"
}

func customID(action, guildID string) string {
	return action + "_" + guildID
}

// ParseCustomID splits an "<action>_<guildID>" button or modal identifier.
func ParseCustomID(id string) (action, guildID string, ok bool) {
	parts := strings.SplitN(id, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// IsPanelCustomID reports whether a component custom ID belongs to the
// anti-raid panel.
func IsPanelCustomID(id string) bool {
	action, _, ok := ParseCustomID(id)
	if !ok {
		return false
	}
	switch action {
	case actionAntiBot, actionAntiFake, actionChannelDelete, actionChannelCreate, actionRoleDelete:
		return true
	}
	return false
}

// IsModalCustomID reports whether a modal submission belongs to the
// anti-fake dialog.
func IsModalCustomID(id string) bool {
	action, _, ok := ParseCustomID(id)
	return ok && action == modalPrefix
}

const recentIncidentLimit = 3

func actionVerb(action string) string {
	switch action {
	case model.ActionKick:
		return "Kicked"
	case model.ActionBan:
		return "Banned"
	}
	return action
}

// recentActionsValue renders the newest incidents as one embed field line
// each, capped at recentIncidentLimit.
func recentActionsValue(records []model.IncidentRecord) string {
	if len(records) > recentIncidentLimit {
		records = records[:recentIncidentLimit]
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		name := r.Username
		if name == "" {
			name = r.UserID
		}
		lines = append(lines, fmt.Sprintf("%s %s (<t:%d:R>)", actionVerb(r.Action), name, r.Timestamp))
	}
	return strings.Join(lines, "\n")
}

func buildPanelEmbed(description string, incidentCount int, recent []model.IncidentRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Anti-Raid Protection",
		Description: description,
		Color:       panelColor,
	}
	if incidentCount > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d enforcement actions recorded", incidentCount),
		}
	}
	if len(recent) > 0 {
		embed.Fields = []*discordgo.MessageEmbedField{{
			Name:  "Recent actions",
			Value: recentActionsValue(recent),
		}}
	}
	return embed
}

// buildPanelComponents lays the five toggles out as a row of three and a
// row of two, labels and styles reflecting the stored state.
func buildPanelComponents(guildID string, cfg model.GuildProtectionConfig) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: customID(actionAntiBot, guildID),
			Label:    "Anti-Bot: " + onOff(cfg.AntiBot),
			Style:    buttonStyle(cfg.AntiBot),
		},
		discordgo.Button{
			CustomID: customID(actionAntiFake, guildID),
			Label:    antiFakeLabel(cfg.AntiFake),
			Style:    buttonStyle(cfg.AntiFake.Enabled),
		},
		discordgo.Button{
			CustomID: customID(actionChannelDelete, guildID),
			Label:    "Channel Delete: " + onOff(cfg.ChannelDelete),
			Style:    buttonStyle(cfg.ChannelDelete),
		},
		discordgo.Button{
			CustomID: customID(actionChannelCreate, guildID),
			Label:    "Channel Create: " + onOff(cfg.ChannelCreate),
			Style:    buttonStyle(cfg.ChannelCreate),
		},
		discordgo.Button{
			CustomID: customID(actionRoleDelete, guildID),
			Label:    "Role Delete: " + onOff(cfg.RoleDelete),
			Style:    buttonStyle(cfg.RoleDelete),
		},
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons[:3]},
		discordgo.ActionsRow{Components: buttons[3:]},
	}
}

func incidentCount(b *bot.Bot, guildID string) int {
	if b.IncidentDB == nil {
		return 0
	}
	count, err := incidents.CountIncidentsByGuildID(b.IncidentDB, guildID)
	if err != nil {
		log.Printf("Failed to count incidents for guild %s: %v", guildID, err)
		return 0
	}
	return count
}

func recentIncidents(b *bot.Bot, guildID string) []model.IncidentRecord {
	if b.IncidentDB == nil {
		return nil
	}
	records, err := incidents.GetIncidentRecordsByGuildID(b.IncidentDB, guildID)
	if err != nil {
		log.Printf("Failed to load incidents for guild %s: %v", guildID, err)
		return nil
	}
	return records
}

// HandleCommand opens the configuration panel for /antiraid.
func HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID := i.GuildID

	isOwner, err := utils.IsGuildOwner(s, guildID, i.Member.User.ID)
	if err != nil {
		log.Printf("Could not resolve owner for guild %s: %v", guildID, err)
		utils.SendGenericError(s, i)
		return
	}
	if !isOwner {
		utils.SendEphemeralResponse(s, i, "Only the server owner can use this command.")
		return
	}

	cfg := b.Store.Get(guildID)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildPanelEmbed(panelDescription, incidentCount(b, guildID), recentIncidents(b, guildID))},
			Components: buildPanelComponents(guildID, cfg),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to open anti-raid panel for guild %s: %v", guildID, err)
		return
	}

	sessions.open(guildID, i.Member.User.ID, i.Interaction, b.Config.PanelTimeout, func(sess *panelSession) {
		closePanel(s, sess)
	})
}

// closePanel strips the controls and swaps in the closure notice once the
// interaction window elapses.
func closePanel(s *discordgo.Session, sess *panelSession) {
	empty := []discordgo.MessageComponent{}
	_, err := s.InteractionResponseEdit(sess.interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{buildPanelEmbed(panelClosedDescription, 0, nil)},
		Components: &empty,
	})
	if err != nil {
		log.Printf("Failed to close anti-raid panel for guild %s: %v", sess.guildID, err)
	}
}

// HandleComponent handles one panel button press.
func HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	action, guildID, ok := ParseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	if i.GuildID != guildID {
		log.Printf("Guild ID mismatch in button interaction: expected %s, got %s", i.GuildID, guildID)
		return
	}

	sess := sessions.get(guildID)
	if sess == nil {
		utils.SendEphemeralResponse(s, i, "This panel has expired. Run /antiraid again.")
		return
	}
	if i.Member == nil || i.Member.User.ID != sess.ownerID {
		utils.SendEphemeralResponse(s, i, "Only the command issuer can use these buttons.")
		return
	}

	if err := b.Store.Ensure(guildID); err != nil {
		log.Printf("Failed to initialize settings for guild %s: %v", guildID, err)
		utils.SendGenericError(s, i)
		return
	}

	if action == actionAntiFake {
		// The modal response replaces the update; the panel is refreshed
		// on submission instead.
		if err := s.InteractionRespond(i.Interaction, buildAntiFakeModal(guildID)); err != nil {
			log.Printf("Failed to open anti-fake modal for guild %s: %v", guildID, err)
		}
		return
	}

	cfg, err := b.Store.Update(guildID, func(c *model.GuildProtectionConfig) {
		switch action {
		case actionAntiBot:
			c.AntiBot = !c.AntiBot
		case actionChannelDelete:
			c.ChannelDelete = !c.ChannelDelete
		case actionChannelCreate:
			c.ChannelCreate = !c.ChannelCreate
		case actionRoleDelete:
			c.RoleDelete = !c.RoleDelete
		}
	})
	if err != nil {
		log.Printf("Failed to update settings for guild %s: %v", guildID, err)
		utils.SendGenericError(s, i)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildPanelEmbed(panelDescription, incidentCount(b, guildID), recentIncidents(b, guildID))},
			Components: buildPanelComponents(guildID, cfg),
		},
	})
	if err != nil {
		log.Printf("Failed to re-render anti-raid panel for guild %s: %v", guildID, err)
	}
}
