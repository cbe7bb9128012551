package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/cwhitfield/giveabot/internal/services/giveaway"
	"github.com/cwhitfield/giveabot/internal/timeutil"
)

// GiveawayCommand handles the /giveaway command
type GiveawayCommand struct {
	BaseCommand
	giveawayService giveaway.Service
}

// NewGiveawayCommand creates a new giveaway command handler
func NewGiveawayCommand(giveawayService giveaway.Service) *GiveawayCommand {
	return &GiveawayCommand{
		BaseCommand: BaseCommand{
			Name:        "giveaway",
			Description: "Giveaway commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Start a new giveaway",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End a giveaway early and draw winners",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message_id",
							Description: "Message ID of the giveaway",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List the running giveaways in this server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reroll",
					Description: "Redraw the winners of an ended giveaway",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message_id",
							Description: "Message ID of the giveaway",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show the winner selection history of a giveaway",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "message_id",
							Description: "Message ID of the giveaway",
							Required:    true,
						},
					},
				},
			},
		},
		giveawayService: giveawayService,
	}
}

// GetCommand returns the application command definition with DMs disabled;
// giveaways only exist inside guilds
func (c *GiveawayCommand) GetCommand() *discordgo.ApplicationCommand {
	cmd := c.BaseCommand.GetCommand()
	dmPermission := false
	cmd.DMPermission = &dmPermission
	return cmd
}

// Handle processes a Discord interaction for the giveaway command
func (c *GiveawayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	// Member is nil outside a guild. DMPermission keeps Discord from routing
	// DMs here, but an interaction that arrives anyway must not crash the
	// process.
	if i.Member == nil {
		return RespondWithEphemeralMessage(s, i, "Giveaway commands can only be used in a server.")
	}

	subcommand := data.Options[0]

	// The managing subcommands need Manage Messages; list and history are
	// read-only
	switch subcommand.Name {
	case "create", "end", "reroll":
		if i.Member.Permissions&discordgo.PermissionManageMessages == 0 {
			return RespondWithError(s, i, "You need the **Manage Messages** permission to manage giveaways.")
		}
	}

	switch subcommand.Name {
	case "create":
		return c.handleCreate(s, i)
	case "end":
		return c.handleEnd(s, i, subcommandString(subcommand, "message_id"))
	case "list":
		return c.handleList(s, i)
	case "reroll":
		return c.handleReroll(s, i, subcommandString(subcommand, "message_id"))
	case "history":
		return c.handleHistory(s, i, subcommandString(subcommand, "message_id"))
	default:
		return errors.New("unknown subcommand")
	}
}

// handleCreate opens the giveaway creation modal
func (c *GiveawayCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ModalCreateGiveaway,
			Title:    "Start a Giveaway",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    FieldDuration,
							Label:       "Duration",
							Style:       discordgo.TextInputShort,
							Placeholder: "30m, 12h, 1d12h...",
							Required:    true,
							MaxLength:   32,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    FieldWinners,
							Label:       "Number of winners",
							Style:       discordgo.TextInputShort,
							Placeholder: "1",
							Required:    false,
							MaxLength:   3,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  FieldPrize,
							Label:     "Prize",
							Style:     discordgo.TextInputShort,
							Required:  true,
							MaxLength: 128,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  FieldDescription,
							Label:     "Description",
							Style:     discordgo.TextInputParagraph,
							Required:  false,
							MaxLength: 1024,
						},
					},
				},
			},
		},
	})
}

// handleEnd handles the end subcommand
func (c *GiveawayCommand) handleEnd(s *discordgo.Session, i *discordgo.InteractionCreate, messageID string) error {
	ctx := context.Background()

	out, err := c.giveawayService.EndGiveaway(ctx, &giveaway.EndGiveawayInput{
		MessageID: messageID,
	})
	if err != nil {
		if errors.Is(err, giveaway.ErrGiveawayNotFound) {
			return RespondWithError(s, i, "No giveaway found with that message ID.")
		}
		log.Printf("Error ending giveaway %s: %v", messageID, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to end giveaway: %v", err))
	}

	if out.AlreadyEnded {
		return RespondWithEphemeralMessage(s, i, "That giveaway has already ended. Use `/giveaway reroll` to redraw its winners.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Giveaway ended with %d entries.", out.EntryCount))
}

// handleList handles the list subcommand
func (c *GiveawayCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.giveawayService.ListActiveGiveaways(ctx, &giveaway.ListActiveGiveawaysInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		log.Printf("Error listing giveaways: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list giveaways: %v", err))
	}

	if len(out.Giveaways) == 0 {
		return RespondWithEphemeralMessage(s, i, "There are no giveaways running in this server.")
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(out.Giveaways))
	for _, g := range out.Giveaways {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: g.Prize,
			Value: fmt.Sprintf("Ends %s • %d entries • [jump](https://discord.com/channels/%s/%s/%s)",
				timeutil.DiscordTimestamp(g.EndTime, "R"), g.EntryCount(), g.GuildID, g.ChannelID, g.MessageID),
			Inline: false,
		})
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:  "🎉 Active Giveaways",
		Color:  embedColorActive,
		Fields: fields,
	})
}

// handleReroll handles the reroll subcommand
func (c *GiveawayCommand) handleReroll(s *discordgo.Session, i *discordgo.InteractionCreate, messageID string) error {
	ctx := context.Background()

	out, err := c.giveawayService.RerollGiveaway(ctx, &giveaway.RerollGiveawayInput{
		MessageID: messageID,
	})
	if err != nil {
		switch {
		case errors.Is(err, giveaway.ErrGiveawayNotFound):
			return RespondWithError(s, i, "No giveaway found with that message ID.")
		case errors.Is(err, giveaway.ErrGiveawayNotEnded):
			return RespondWithError(s, i, "That giveaway hasn't ended yet. End it first with `/giveaway end`.")
		default:
			log.Printf("Error rerolling giveaway %s: %v", messageID, err)
			return RespondWithError(s, i, fmt.Sprintf("Failed to reroll giveaway: %v", err))
		}
	}

	if len(out.WinnerIDs) == 0 {
		return RespondWithEphemeralMessage(s, i, "No entries to draw from.")
	}

	return RespondWithEphemeralMessage(s, i, "Winners rerolled.")
}

// handleHistory handles the history subcommand
func (c *GiveawayCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, messageID string) error {
	ctx := context.Background()

	out, err := c.giveawayService.GetWinnerHistory(ctx, &giveaway.GetWinnerHistoryInput{
		MessageID: messageID,
	})
	if err != nil {
		if errors.Is(err, giveaway.ErrGiveawayNotFound) {
			return RespondWithError(s, i, "No giveaway found with that message ID.")
		}
		log.Printf("Error getting winner history for giveaway %s: %v", messageID, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get winner history: %v", err))
	}

	if len(out.Records) == 0 {
		return RespondWithEphemeralMessage(s, i, "No winners have been drawn for that giveaway yet.")
	}

	var lines strings.Builder
	for _, record := range out.Records {
		fmt.Fprintf(&lines, "%s • <@%s>\n", timeutil.DiscordTimestamp(record.SelectedAt, "f"), record.UserID)
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🎉 Winner History",
		Description: lines.String(),
		Color:       embedColorActive,
	})
}

// subcommandString returns a named string option of a subcommand
func subcommandString(subcommand *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range subcommand.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
