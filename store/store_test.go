package store

import (
	"os"
	"path/filepath"
	"testing"

	"raidguard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := New(path)
	require.NoError(t, err)
	return s, path
}

func TestEnsureCreatesDefaults(t *testing.T) {
	s, path := newTestStore(t)

	require.NoError(t, s.Ensure("guild-1"))

	cfg := s.Get("guild-1")
	assert.False(t, cfg.AntiBot)
	assert.False(t, cfg.AntiFake.Enabled)
	assert.Equal(t, 7, cfg.AntiFake.MinDays)
	assert.False(t, cfg.ChannelDelete)
	assert.False(t, cfg.ChannelCreate)
	assert.False(t, cfg.RoleDelete)

	_, err := os.Stat(path)
	require.NoError(t, err, "Ensure should persist the new configuration")
}

func TestEnsurePersistsExactlyOnce(t *testing.T) {
	s, path := newTestStore(t)

	require.NoError(t, s.Ensure("guild-1"))
	require.NoError(t, os.Remove(path))

	// A second Ensure for a known guild must be a no-op, so the file
	// should not reappear.
	require.NoError(t, s.Ensure("guild-1"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestEnsureEmptyGuildID(t *testing.T) {
	s, path := newTestStore(t)

	require.NoError(t, s.Ensure(""))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Ensure("guild-1"))
	_, err := s.Update("guild-1", func(c *model.GuildProtectionConfig) {
		c.AntiBot = true
		c.AntiFake = model.AntiFakeConfig{Enabled: true, MinDays: 14}
	})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	reopened, err := New(path)
	require.NoError(t, err)
	require.NoError(t, reopened.Save())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	cfg := reopened.Get("guild-1")
	assert.True(t, cfg.AntiBot)
	assert.Equal(t, model.AntiFakeConfig{Enabled: true, MinDays: 14}, cfg.AntiFake)
}

func TestUpdateToggleTwiceRestoresOriginal(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Ensure("guild-1"))
	original := s.Get("guild-1")

	flip := func(c *model.GuildProtectionConfig) { c.ChannelDelete = !c.ChannelDelete }

	cfg, err := s.Update("guild-1", flip)
	require.NoError(t, err)
	assert.True(t, cfg.ChannelDelete)

	cfg, err = s.Update("guild-1", flip)
	require.NoError(t, err)
	assert.Equal(t, original, cfg)
}

func TestDeadFieldsSurviveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := `{"antiRaid":{"guild-1":{"antiBot":false,"antiFake":{"enabled":false,"minDays":7},"channelDelete":false,"channelCreate":false,"roleDelete":false,"ban":true,"unban":true,"kick":true}}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := New(path)
	require.NoError(t, err)

	cfg := s.Get("guild-1")
	assert.True(t, cfg.Ban)
	assert.True(t, cfg.Unban)
	assert.True(t, cfg.Kick)

	// Mutating an unrelated switch keeps the dead fields intact on disk.
	_, err = s.Update("guild-1", func(c *model.GuildProtectionConfig) { c.AntiBot = true })
	require.NoError(t, err)

	reopened, err := New(path)
	require.NoError(t, err)
	cfg = reopened.Get("guild-1")
	assert.True(t, cfg.Ban)
	assert.True(t, cfg.AntiBot)
}

func TestCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := New(path)
	require.Error(t, err)
}

func TestMissingFileIsEmptyDocument(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, model.GuildProtectionConfig{}, s.Get("never-seen"))
}
