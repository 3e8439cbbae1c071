package handlers

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id string, roles ...string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: id}, Roles: roles}
}

func TestMembersNeedingRole(t *testing.T) {
	members := []*discordgo.Member{
		member("A", "role-1", "role-2"),
		member("B"),
		member("C", "role-2"),
	}

	targets := membersNeedingRole(members, "role-1")
	require.Len(t, targets, 2, "only members without the role are targeted")
	assert.Equal(t, "B", targets[0].User.ID)
	assert.Equal(t, "C", targets[1].User.ID)

	assert.Empty(t, membersNeedingRole(nil, "role-1"))
	assert.Len(t, membersNeedingRole(members, "role-9"), 3)
}
