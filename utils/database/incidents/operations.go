package incidents

import (
	"fmt"

	"raidguard/model"

	"github.com/jmoiron/sqlx"
)

// AddIncidentRecord inserts a new incident and returns its ID.
func AddIncidentRecord(db *sqlx.DB, record model.IncidentRecord) (int64, error) {
	query := `INSERT INTO incidents (guild_id, user_id, user_username, action, rule, reason, timestamp)
			  VALUES (:guild_id, :user_id, :user_username, :action, :rule, :reason, :timestamp)`

	result, err := db.NamedExec(query, record)
	if err != nil {
		return 0, fmt.Errorf("failed to insert incident record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return id, nil
}

// GetIncidentRecordsByGuildID retrieves all incidents for a guild, newest first.
func GetIncidentRecordsByGuildID(db *sqlx.DB, guildID string) ([]model.IncidentRecord, error) {
	var records []model.IncidentRecord
	query := "SELECT * FROM incidents WHERE guild_id = ? ORDER BY timestamp DESC"
	if err := db.Select(&records, query, guildID); err != nil {
		return nil, fmt.Errorf("failed to get incident records for guild %s: %w", guildID, err)
	}
	return records, nil
}

// CountIncidentsByGuildID returns the number of recorded incidents for a guild.
func CountIncidentsByGuildID(db *sqlx.DB, guildID string) (int, error) {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM incidents WHERE guild_id = ?", guildID); err != nil {
		return 0, fmt.Errorf("failed to count incidents for guild %s: %w", guildID, err)
	}
	return count, nil
}

// CountIncidents returns the total number of recorded incidents.
func CountIncidents(db *sqlx.DB) (int, error) {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM incidents"); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}
