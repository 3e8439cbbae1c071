package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateSession(t *testing.T, guilds ...*discordgo.Guild) *discordgo.Session {
	t.Helper()
	s := &discordgo.Session{State: discordgo.NewState()}
	s.State.User = &discordgo.User{ID: "bot"}
	for _, g := range guilds {
		require.NoError(t, s.State.GuildAdd(g))
	}
	return s
}

func TestIsGuildOwner(t *testing.T) {
	s := stateSession(t, &discordgo.Guild{ID: "g1", OwnerID: "owner"})

	isOwner, err := IsGuildOwner(s, "g1", "owner")
	require.NoError(t, err)
	assert.True(t, isOwner)

	isOwner, err = IsGuildOwner(s, "g1", "someone-else")
	require.NoError(t, err)
	assert.False(t, isOwner)
}

func TestBotGuildPermissionsFromRoles(t *testing.T) {
	s := stateSession(t, &discordgo.Guild{
		ID:      "g1",
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "g1", Permissions: discordgo.PermissionViewChannel},
			{ID: "mod", Permissions: discordgo.PermissionBanMembers | discordgo.PermissionViewAuditLogs},
		},
	})
	require.NoError(t, s.State.MemberAdd(&discordgo.Member{
		GuildID: "g1",
		User:    &discordgo.User{ID: "bot"},
		Roles:   []string{"mod"},
	}))

	perms, err := BotGuildPermissions(s, "g1")
	require.NoError(t, err)
	assert.NotZero(t, perms&discordgo.PermissionBanMembers)
	assert.NotZero(t, perms&discordgo.PermissionViewChannel, "@everyone permissions are included")

	assert.True(t, BotHasPermission(s, "g1", discordgo.PermissionBanMembers))
	assert.True(t, BotHasPermission(s, "g1", discordgo.PermissionViewAuditLogs))
	assert.False(t, BotHasPermission(s, "g1", discordgo.PermissionKickMembers))
}

func TestBotGuildPermissionsOwnerShortcut(t *testing.T) {
	s := stateSession(t, &discordgo.Guild{ID: "g2", OwnerID: "bot"})

	perms, err := BotGuildPermissions(s, "g2")
	require.NoError(t, err)
	assert.Equal(t, int64(discordgo.PermissionAdministrator), perms)
	assert.True(t, BotHasPermission(s, "g2", discordgo.PermissionManageChannels),
		"Administrator implies everything")
}
