package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"raidguard/model"
)

const (
	colorOnline = 3066993  // Green
	colorKick   = 15105570 // Orange
	colorBan    = 15158332 // Red
	colorOther  = 3447003  // Blue
)

type webhookEmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type webhookEmbed struct {
	Title  string              `json:"title"`
	Color  int                 `json:"color"`
	Fields []webhookEmbedField `json:"fields"`
}

type webhookPayload struct {
	Embeds []webhookEmbed `json:"embeds"`
}

func actionColor(action string) int {
	switch action {
	case model.ActionBan:
		return colorBan
	case model.ActionKick:
		return colorKick
	default:
		return colorOther
	}
}

// incidentEmbed renders one enforcement action for the ops webhook.
func incidentEmbed(rec model.IncidentRecord) webhookEmbed {
	user := rec.UserID
	if rec.Username != "" {
		user = fmt.Sprintf("%s (%s)", rec.Username, rec.UserID)
	}
	return webhookEmbed{
		Title: "Enforcement Action",
		Color: actionColor(rec.Action),
		Fields: []webhookEmbedField{
			{Name: "Guild", Value: rec.GuildID},
			{Name: "User", Value: user},
			{Name: "Rule", Value: rec.Rule},
			{Name: "Action", Value: rec.Action},
			{Name: "Reason", Value: rec.Reason},
		},
	}
}

// NotifyIncident mirrors an enforcement action to the ops webhook.
func NotifyIncident(webhookURL string, rec model.IncidentRecord) error {
	return postWebhook(webhookURL, incidentEmbed(rec))
}

// NotifyStartup announces a successful gateway connection.
func NotifyStartup(webhookURL, botTag string) error {
	return postWebhook(webhookURL, webhookEmbed{
		Title: "Bot Online",
		Color: colorOnline,
		Fields: []webhookEmbedField{
			{Name: "Account", Value: botTag},
		},
	})
}

func postWebhook(webhookURL string, embed webhookEmbed) error {
	payload := webhookPayload{
		Embeds: []webhookEmbed{embed},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", webhookURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to send log to discord, status: %s, body: %s", resp.Status, string(body))
	}

	return nil
}
