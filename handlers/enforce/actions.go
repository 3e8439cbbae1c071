package enforce

import (
	"log"
	"time"

	"raidguard/bot"
	"raidguard/model"
	"raidguard/utils"
	"raidguard/utils/database/incidents"

	"github.com/bwmarrin/discordgo"
)

// recordIncident persists an enforcement action and mirrors it to the ops
// webhook. Recording failures never undo or block the action itself.
func recordIncident(b *bot.Bot, rec model.IncidentRecord) {
	rec.Timestamp = time.Now().Unix()

	if b.IncidentDB != nil {
		if _, err := incidents.AddIncidentRecord(b.IncidentDB, rec); err != nil {
			log.Printf("Failed to record incident for guild %s: %v", rec.GuildID, err)
		}
	}

	if url := b.Config.LogWebhookURL; url != "" {
		go func() {
			if err := utils.NotifyIncident(url, rec); err != nil {
				log.Printf("Failed to send incident log: %v", err)
			}
		}()
	}
}

func kickMember(s *discordgo.Session, b *bot.Bot, guildID, userID, username, rule, reason string) {
	if err := s.GuildMemberDeleteWithReason(guildID, userID, reason); err != nil {
		log.Printf("Failed to kick %s from guild %s: %v", userID, guildID, err)
		return
	}
	log.Printf("Kicked %s from guild %s (%s)", userID, guildID, rule)
	recordIncident(b, model.IncidentRecord{
		GuildID:  guildID,
		UserID:   userID,
		Username: username,
		Action:   model.ActionKick,
		Rule:     rule,
		Reason:   reason,
	})
}

func banExecutor(s *discordgo.Session, b *bot.Bot, guildID, executorID, rule, reason string) error {
	username := ""
	if u, err := s.User(executorID); err == nil {
		username = u.Username
	}

	if err := s.GuildBanCreateWithReason(guildID, executorID, reason, 0); err != nil {
		log.Printf("Failed to ban %s in guild %s: %v", executorID, guildID, err)
		return err
	}
	log.Printf("Banned %s in guild %s (%s)", executorID, guildID, rule)
	recordIncident(b, model.IncidentRecord{
		GuildID:  guildID,
		UserID:   executorID,
		Username: username,
		Action:   model.ActionBan,
		Rule:     rule,
		Reason:   reason,
	})
	return nil
}
