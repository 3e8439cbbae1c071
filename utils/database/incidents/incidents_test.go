package incidents

import (
	"path/filepath"
	"testing"
	"time"

	"raidguard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndQueryIncidents(t *testing.T) {
	db, err := Init(filepath.Join(t.TempDir(), "incidents.db"))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().Unix()
	id, err := AddIncidentRecord(db, model.IncidentRecord{
		GuildID:   "guild-1",
		UserID:    "user-1",
		Username:  "raider",
		Action:    model.ActionBan,
		Rule:      model.RuleChannelDelete,
		Reason:    "Deleted a channel with anti-raid protection enabled.",
		Timestamp: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = AddIncidentRecord(db, model.IncidentRecord{
		GuildID:   "guild-2",
		UserID:    "user-2",
		Action:    model.ActionKick,
		Rule:      model.RuleAntiBot,
		Reason:    "Anti-Bot protection enabled.",
		Timestamp: now,
	})
	require.NoError(t, err)

	records, err := GetIncidentRecordsByGuildID(db, "guild-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "user-1", records[0].UserID)
	assert.Equal(t, model.ActionBan, records[0].Action)
	assert.Equal(t, model.RuleChannelDelete, records[0].Rule)

	count, err := CountIncidentsByGuildID(db, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	total, err := CountIncidents(db)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestGuildWithoutIncidents(t *testing.T) {
	db, err := Init(filepath.Join(t.TempDir(), "incidents.db"))
	require.NoError(t, err)
	defer db.Close()

	records, err := GetIncidentRecordsByGuildID(db, "guild-x")
	require.NoError(t, err)
	assert.Empty(t, records)

	count, err := CountIncidentsByGuildID(db, "guild-x")
	require.NoError(t, err)
	assert.Zero(t, count)
}
