package enforce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsTooNew(t *testing.T) {
	now := time.Now()

	assert.True(t, isTooNew(now.Add(-5*24*time.Hour), now, 10),
		"an account created 5 days ago is below a 10-day minimum")
	assert.False(t, isTooNew(now.Add(-15*24*time.Hour), now, 10),
		"an account created 15 days ago passes a 10-day minimum")
	assert.False(t, isTooNew(now.Add(-10*24*time.Hour), now, 10),
		"the rule is strictly younger-than")
	assert.False(t, isTooNew(now.Add(-time.Hour), now, 0),
		"a zero minimum disables the rule for any existing account")
}

func TestAccountAgeDays(t *testing.T) {
	now := time.Now()
	assert.InDelta(t, 2.5, accountAgeDays(now.Add(-60*time.Hour), now), 0.001)
	assert.InDelta(t, 0, accountAgeDays(now, now), 0.001)
}

func TestShouldPunishExecutor(t *testing.T) {
	assert.True(t, shouldPunishExecutor("raider", "bot"))
	assert.False(t, shouldPunishExecutor("bot", "bot"),
		"the bot's own cleanup must not trigger a ban")
	assert.False(t, shouldPunishExecutor("", "bot"),
		"no audit entry means nobody to punish")
}

func TestBackoffSchedule(t *testing.T) {
	schedule := backoffSchedule(time.Second, 3)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, schedule)

	assert.Nil(t, backoffSchedule(time.Second, 0))
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, backoffSchedule(500*time.Millisecond, 1))
}
