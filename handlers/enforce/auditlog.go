package enforce

import (
	"log"
	"time"

	"raidguard/model"

	"github.com/bwmarrin/discordgo"
)

// backoffSchedule returns the wait before each audit-log fetch attempt:
// the initial wait, then doubling. The audit log is populated
// asynchronously after the triggering action, so the first fetch can race
// an empty log.
func backoffSchedule(initial time.Duration, attempts int) []time.Duration {
	if attempts <= 0 {
		return nil
	}
	schedule := make([]time.Duration, attempts)
	wait := initial
	for i := 0; i < attempts; i++ {
		schedule[i] = wait
		wait *= 2
	}
	return schedule
}

// shouldPunishExecutor decides whether an audit-log executor gets banned:
// a missing entry is ignored, and so are the bot's own actions (the
// channel-create cleanup would otherwise re-trigger the handler).
func shouldPunishExecutor(executorID, botID string) bool {
	return executorID != "" && executorID != botID
}

// fetchAuditExecutor polls for the most recent audit-log entry of
// actionType and returns the executor's user ID. An empty string means no
// entry appeared within the attempt budget; callers treat that as "do
// nothing".
func fetchAuditExecutor(s *discordgo.Session, cfg *model.Config, guildID string, actionType discordgo.AuditLogAction) string {
	for _, wait := range backoffSchedule(cfg.AuditLogWait, cfg.AuditLogAttempts) {
		time.Sleep(wait)

		audit, err := s.GuildAuditLog(guildID, "", "", int(actionType), 1)
		if err != nil {
			log.Printf("Failed to fetch audit log for guild %s action %d: %v", guildID, actionType, err)
			continue
		}
		if len(audit.AuditLogEntries) > 0 {
			return audit.AuditLogEntries[0].UserID
		}
	}
	return ""
}
