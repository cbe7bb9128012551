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

// Embed colors
const (
	embedColorActive = 0x2ecc71 // Green
	embedColorEnded  = 0xe74c3c // Red
)

// Embed field names, also used to locate fields when editing
const (
	fieldEndsAt  = "Ends At"
	fieldWinners = "Winners"
	fieldEntries = "Entries"
)

// Notifier renders giveaways into a Discord channel. It implements the
// giveaway service's Notifier interface over a shared session.
type Notifier struct {
	session *discordgo.Session
}

// NotifierConfig holds the configuration for the notifier
type NotifierConfig struct {
	Session *discordgo.Session
}

// NewNotifier creates a new Discord notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Notifier{session: cfg.Session}, nil
}

// PublishGiveaway posts the giveaway announcement with its enter button and
// returns the message ID, which becomes the giveaway's identity.
func (n *Notifier) PublishGiveaway(ctx context.Context, input *giveaway.PublishGiveawayInput) (string, error) {
	formats := timeutil.EndTimeFormats(input.EndTime)

	description := fmt.Sprintf("**%s**\n\n", input.Prize)
	if input.Description != "" {
		description += input.Description + "\n\n"
	}
	description += fmt.Sprintf("Click the 🎉 button to enter!\nHosted by <@%s>", input.CreatorID)

	enterButton := discordgo.Button{
		Label:    "Enter",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonEnterGiveaway,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎉",
		},
	}

	msg, err := n.session.ChannelMessageSendComplex(input.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "🎉 GIVEAWAY 🎉",
				Description: description,
				Color:       embedColorActive,
				Fields: []*discordgo.MessageEmbedField{
					{
						Name:   fieldEndsAt,
						Value:  formats.Compact,
						Inline: true,
					},
					{
						Name:   fieldWinners,
						Value:  fmt.Sprintf("%d", input.WinnersCount),
						Inline: true,
					},
					{
						Name:   fieldEntries,
						Value:  "0",
						Inline: true,
					},
				},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{enterButton},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to post giveaway message: %w", err)
	}

	return msg.ID, nil
}

// RefreshEntryCount updates the Entries field on the giveaway message
func (n *Notifier) RefreshEntryCount(ctx context.Context, input *giveaway.RefreshEntryCountInput) error {
	embed, err := n.giveawayEmbed(input.ChannelID, input.MessageID)
	if err != nil {
		return err
	}

	setField(embed, fieldEntries, fmt.Sprintf("%d", input.EntryCount))

	_, err = n.session.ChannelMessageEditEmbed(input.ChannelID, input.MessageID, embed)
	if err != nil {
		return fmt.Errorf("failed to edit giveaway message: %w", err)
	}

	return nil
}

// AnnounceWinners posts the outcome as a reply to the giveaway message. An
// empty winner list announces that no one entered.
func (n *Notifier) AnnounceWinners(ctx context.Context, input *giveaway.AnnounceWinnersInput) error {
	var content string
	switch {
	case len(input.WinnerIDs) == 0:
		content = fmt.Sprintf("No one entered the giveaway for **%s**.", input.Prize)
	case input.Reroll:
		content = fmt.Sprintf("🎉 The giveaway for **%s** was rerolled! New winner(s): %s", input.Prize, mentionList(input.WinnerIDs))
	default:
		content = fmt.Sprintf("🎉 Congratulations %s! You won **%s**!", mentionList(input.WinnerIDs), input.Prize)
	}

	_, err := n.session.ChannelMessageSendComplex(input.ChannelID, &discordgo.MessageSend{
		Content: content,
		Reference: &discordgo.MessageReference{
			MessageID: input.MessageID,
			ChannelID: input.ChannelID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to announce winners: %w", err)
	}

	return nil
}

// MarkEnded recolors the giveaway message, freezes its counts and removes the
// enter button
func (n *Notifier) MarkEnded(ctx context.Context, input *giveaway.MarkEndedInput) error {
	embed, err := n.giveawayEmbed(input.ChannelID, input.MessageID)
	if err != nil {
		return err
	}

	embed.Title = "🎉 GIVEAWAY ENDED 🎉"
	embed.Color = embedColorEnded
	setField(embed, fieldEntries, fmt.Sprintf("%d", input.EntryCount))
	setField(embed, fieldWinners, fmt.Sprintf("%d", input.WinnersCount))

	embeds := []*discordgo.MessageEmbed{embed}
	components := []discordgo.MessageComponent{}

	_, err = n.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    input.ChannelID,
		ID:         input.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		return fmt.Errorf("failed to close giveaway message: %w", err)
	}

	return nil
}

// giveawayEmbed fetches the giveaway message and returns its embed
func (n *Notifier) giveawayEmbed(channelID, messageID string) (*discordgo.MessageEmbed, error) {
	msg, err := n.session.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch giveaway message: %w", err)
	}

	if len(msg.Embeds) == 0 {
		return nil, fmt.Errorf("giveaway message %s has no embed", messageID)
	}

	return msg.Embeds[0], nil
}

// setField updates a named embed field in place
func setField(embed *discordgo.MessageEmbed, name, value string) {
	for _, field := range embed.Fields {
		if field.Name == name {
			field.Value = value
			return
		}
	}
	log.Printf("Embed field %q not found, skipping update", name)
}

// mentionList formats user IDs as a comma-separated list of mentions
func mentionList(userIDs []string) string {
	mentions := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}
	return strings.Join(mentions, ", ")
}
