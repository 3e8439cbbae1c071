package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"raidguard/commands"
	"raidguard/utils"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	appID := b.Config.AppID
	if appID == "" {
		appID = b.Session.State.User.ID
	}

	cmds := commands.Generate()
	log.Printf("Registering %d global commands...", len(cmds))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(appID, "", cmds)
	if err != nil {
		log.Fatalf("Cannot register commands: %v", err)
	}
	b.RegisteredCommands = registered

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	if b.Config.LogWebhookURL != "" {
		botTag := fmt.Sprintf("%s#%s", b.Session.State.User.Username, b.Session.State.User.Discriminator)
		if err := utils.NotifyStartup(b.Config.LogWebhookURL, botTag); err != nil {
			log.Printf("Failed to send startup log: %v", err)
		}
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
