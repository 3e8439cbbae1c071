package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"raidguard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentEmbed(t *testing.T) {
	embed := incidentEmbed(model.IncidentRecord{
		GuildID:  "g1",
		UserID:   "42",
		Username: "raider",
		Action:   model.ActionBan,
		Rule:     model.RuleChannelDelete,
		Reason:   "Deleted a channel with anti-raid protection enabled.",
	})

	assert.Equal(t, "Enforcement Action", embed.Title)
	assert.Equal(t, colorBan, embed.Color)
	require.Len(t, embed.Fields, 5)
	assert.Equal(t, webhookEmbedField{Name: "Guild", Value: "g1"}, embed.Fields[0])
	assert.Equal(t, webhookEmbedField{Name: "User", Value: "raider (42)"}, embed.Fields[1])
	assert.Equal(t, webhookEmbedField{Name: "Rule", Value: model.RuleChannelDelete}, embed.Fields[2])

	kicked := incidentEmbed(model.IncidentRecord{UserID: "42", Action: model.ActionKick})
	assert.Equal(t, colorKick, kicked.Color)
	assert.Equal(t, "42", kicked.Fields[1].Value, "user ID stands in for a missing username")
}

func TestNotifyIncidentPostsPayload(t *testing.T) {
	var mu sync.Mutex
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		body = b
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	rec := model.IncidentRecord{GuildID: "g1", UserID: "42", Action: model.ActionKick, Rule: model.RuleAntiBot}
	require.NoError(t, NotifyIncident(srv.URL, rec))

	mu.Lock()
	defer mu.Unlock()
	var payload webhookPayload
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, incidentEmbed(rec), payload.Embeds[0])
}

func TestNotifyStartupErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad webhook", http.StatusBadRequest)
	}))
	defer srv.Close()

	assert.Error(t, NotifyStartup(srv.URL, "bot#0001"))
}
