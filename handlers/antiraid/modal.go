package antiraid

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"raidguard/bot"
	"raidguard/model"
	"raidguard/utils"

	"github.com/bwmarrin/discordgo"
)

const minDaysFieldID = "minDays"

func buildAntiFakeModal(guildID string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID(modalPrefix, guildID),
			Title:    "Anti-Fake Settings",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    minDaysFieldID,
							Label:       "Minimum account age (days)",
							Style:       discordgo.TextInputShort,
							Placeholder: "Enter a number (e.g., 7)",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

var errInvalidMinDays = errors.New("minimum age must be a non-negative number of days")

// parseMinDays validates the dialog input: trimmed, numeric, non-negative.
func parseMinDays(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, errInvalidMinDays
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0, errInvalidMinDays
	}
	return n, nil
}

// HandleModalSubmit applies the Anti-Fake minimum-age dialog.
func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ModalSubmitData()
	action, guildID, ok := ParseCustomID(data.CustomID)
	if !ok || action != modalPrefix {
		log.Printf("Invalid modal submission: %s", data.CustomID)
		return
	}

	if err := b.Store.Ensure(guildID); err != nil {
		log.Printf("Failed to initialize settings for guild %s: %v", guildID, err)
		utils.SendGenericError(s, i)
		return
	}

	minDays, err := parseMinDays(extractTextInput(data, minDaysFieldID))
	if err != nil {
		utils.SendEphemeralResponse(s, i, "Please enter a valid positive number of days.")
		return
	}

	cfg, err := b.Store.Update(guildID, func(c *model.GuildProtectionConfig) {
		c.AntiFake.Enabled = true
		c.AntiFake.MinDays = minDays
	})
	if err != nil {
		log.Printf("Failed to update anti-fake settings for guild %s: %v", guildID, err)
		utils.SendGenericError(s, i)
		return
	}

	utils.SendEphemeralResponse(s, i, fmt.Sprintf("Anti-Fake is now ON with a minimum account age of %d days.", minDays))

	// Bring the open panel's Anti-Fake label up to date.
	if sess := sessions.get(guildID); sess != nil {
		comps := buildPanelComponents(guildID, cfg)
		if _, err := s.InteractionResponseEdit(sess.interaction, &discordgo.WebhookEdit{
			Components: &comps,
		}); err != nil {
			log.Printf("Failed to refresh anti-raid panel for guild %s: %v", guildID, err)
		}
	}
}

func extractTextInput(data discordgo.ModalSubmitInteractionData, fieldID string) string {
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range ar.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == fieldID {
				return input.Value
			}
		}
	}
	return ""
}
