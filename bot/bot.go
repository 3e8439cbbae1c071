package bot

import (
	"log"

	"raidguard/model"
	"raidguard/store"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	Store              *store.Store
	IncidentDB         *sqlx.DB
	RegisteredCommands []*discordgo.ApplicationCommand
}

func New(cfg *model.Config, st *store.Store, incidentDB *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildBans |
		discordgo.IntentsGuildIntegrations |
		discordgo.IntentsGuildPresences |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions

	return &Bot{
		Session:    dg,
		Config:     cfg,
		Store:      st,
		IncidentDB: incidentDB,
	}, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.Config
}

func (b *Bot) GetStore() *store.Store {
	return b.Store
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	if b.IncidentDB != nil {
		b.IncidentDB.Close()
	}
	b.Session.Close()
}
