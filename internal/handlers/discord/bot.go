package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/cwhitfield/giveabot/internal/services/giveaway"
	"github.com/cwhitfield/giveabot/internal/timeutil"
)

// Bot represents the Discord bot instance
type Bot struct {
	session         *discordgo.Session
	commands        map[string]CommandHandler
	commandIDs      map[string]string // Maps command name to command ID
	giveawayService giveaway.Service
	config          *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord session, shared with the notifier
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Giveaway service
	GiveawayService giveaway.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GiveawayService == nil {
		return nil, errors.New("giveaway service cannot be nil")
	}

	bot := &Bot{
		session:         cfg.Session,
		commands:        make(map[string]CommandHandler),
		commandIDs:      make(map[string]string),
		giveawayService: cfg.GiveawayService,
		config:          cfg,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the giveaway command
	giveawayCmd := NewGiveawayCommand(b.giveawayService)
	if err := b.RegisterCommand(giveawayCmd); err != nil {
		return fmt.Errorf("failed to register giveaway command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// Component custom IDs
const (
	ButtonEnterGiveaway = "enter_giveaway"
	ModalCreateGiveaway = "create_giveaway_modal"

	// Modal field custom IDs
	FieldDuration    = "giveaway_duration"
	FieldWinners     = "giveaway_winners"
	FieldPrize       = "giveaway_prize"
	FieldDescription = "giveaway_description"
)

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	case discordgo.InteractionModalSubmit:
		if err := b.handleModalSubmit(s, i); err != nil {
			log.Printf("Error handling modal submit: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks and other component interactions
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonEnterGiveaway:
		return b.handleEnterButton(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleEnterButton handles a click on a giveaway's enter button. The message
// the button lives on is the giveaway's identity.
func (b *Bot) handleEnterButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	// Member is nil outside a guild; giveaway buttons only exist on guild
	// messages but a stray interaction must not crash the process
	if i.Member == nil {
		return RespondWithEphemeralMessage(s, i, "Giveaways can only be entered in a server.")
	}

	ctx := context.Background()

	out, err := b.giveawayService.EnterGiveaway(ctx, &giveaway.EnterGiveawayInput{
		MessageID: i.Message.ID,
		UserID:    i.Member.User.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, giveaway.ErrGiveawayNotFound):
			return RespondWithEphemeralMessage(s, i, "This giveaway is no longer running.")
		case errors.Is(err, giveaway.ErrAlreadyEnded):
			return RespondWithEphemeralMessage(s, i, "This giveaway has already ended.")
		default:
			log.Printf("Error entering giveaway %s: %v", i.Message.ID, err)
			return RespondWithEphemeralMessage(s, i, "Something went wrong entering the giveaway.")
		}
	}

	if out.AlreadyEntered {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You're already entered in the giveaway for **%s**.", out.Prize))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("🎉 You entered the giveaway for **%s**! Good luck!", out.Prize))
}

// handleModalSubmit handles the create giveaway modal form
func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	if data.CustomID != ModalCreateGiveaway {
		return nil
	}

	if i.Member == nil {
		return RespondWithEphemeralMessage(s, i, "Giveaways can only be created in a server.")
	}

	values := modalValues(data)

	durationSeconds, err := timeutil.ParseDuration(values[FieldDuration])
	if err != nil || durationSeconds <= 0 {
		return RespondWithError(s, i, "Invalid duration. Use something like `30m`, `12h` or `1d12h`.")
	}

	winnersCount := 1
	if raw := strings.TrimSpace(values[FieldWinners]); raw != "" {
		winnersCount, err = strconv.Atoi(raw)
		if err != nil || winnersCount < 1 {
			return RespondWithError(s, i, "Winners must be a whole number of at least 1.")
		}
	}

	ctx := context.Background()

	out, err := b.giveawayService.CreateGiveaway(ctx, &giveaway.CreateGiveawayInput{
		ChannelID:       i.ChannelID,
		GuildID:         i.GuildID,
		CreatorID:       i.Member.User.ID,
		Prize:           values[FieldPrize],
		Description:     values[FieldDescription],
		DurationSeconds: durationSeconds,
		WinnersCount:    winnersCount,
	})
	if err != nil {
		log.Printf("Error creating giveaway: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to create giveaway: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Giveaway started! It ends %s.", timeutil.DiscordTimestamp(out.EndTime, "R")))
}

// modalValues flattens a modal submission into field custom ID -> value
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}
