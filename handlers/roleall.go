package handlers

import (
	"fmt"
	"log"
	"time"

	"raidguard/bot"
	"raidguard/utils"

	"github.com/bwmarrin/discordgo"
)

const memberPageSize = 1000

// membersNeedingRole filters out members that already hold the role.
func membersNeedingRole(members []*discordgo.Member, roleID string) []*discordgo.Member {
	var out []*discordgo.Member
	for _, m := range members {
		has := false
		for _, r := range m.Roles {
			if r == roleID {
				has = true
				break
			}
		}
		if !has {
			out = append(out, m)
		}
	}
	return out
}

// fetchAllMembers pages through the guild's full member list.
func fetchAllMembers(s *discordgo.Session, guildID string) ([]*discordgo.Member, error) {
	var all []*discordgo.Member
	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		after = page[len(page)-1].User.ID
		if len(page) < memberPageSize {
			break
		}
	}
	return all, nil
}

// HandleRoleAll assigns a role to every member that does not already hold
// it. Large guilds make this a long loop, so the reply is deferred and the
// adds are paced; individual failures are logged and skipped.
func HandleRoleAll(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.Member.Permissions&discordgo.PermissionManageRoles == 0 {
		utils.SendEphemeralResponse(s, i, "You need Manage Roles permission.")
		return
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		utils.SendEphemeralResponse(s, i, "Role not found.")
		return
	}
	role := data.Options[0].RoleValue(s, i.GuildID)
	if role == nil || role.ID == "" {
		utils.SendEphemeralResponse(s, i, "Role not found.")
		return
	}

	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Failed to defer roleall response: %v", err)
		return
	}

	members, err := fetchAllMembers(s, i.GuildID)
	if err != nil {
		log.Printf("Failed to fetch members for guild %s: %v", i.GuildID, err)
		utils.SendFollowUpError(s, i.Interaction, "Could not fetch the member list.")
		return
	}

	count := 0
	for _, m := range membersNeedingRole(members, role.ID) {
		if err := s.GuildMemberRoleAdd(i.GuildID, m.User.ID, role.ID); err != nil {
			log.Printf("Failed to add role to %s: %v", m.User.ID, err)
			continue
		}
		count++
		// stay under the REST rate limit
		time.Sleep(b.Config.RoleAddDelay)
	}

	utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Assigned %s to %d members.", role.Name, count))
}
