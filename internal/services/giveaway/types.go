package giveaway

import (
	"time"

	"github.com/cwhitfield/giveabot/internal/common/clock"
	"github.com/cwhitfield/giveabot/internal/draw"
	"github.com/cwhitfield/giveabot/internal/models"
	giveawayRepo "github.com/cwhitfield/giveabot/internal/repositories/giveaway"
)

// Config holds configuration for the giveaway service
type Config struct {
	// Repository dependency
	GiveawayRepo giveawayRepo.Repository

	// Rendering collaborator
	Notifier Notifier

	// Winner selection
	Picker draw.Picker

	// Clock dependency
	Clock clock.Clock
}

// CreateGiveawayInput contains parameters for creating a new giveaway
type CreateGiveawayInput struct {
	// ChannelID is the Discord channel to post the giveaway in
	ChannelID string

	// GuildID is the Discord guild the giveaway belongs to
	GuildID string

	// CreatorID is the Discord user ID of the host
	CreatorID string

	// Prize is what is being given away
	Prize string

	// Description is optional extra detail
	Description string

	// DurationSeconds is how long the giveaway runs, must be positive
	DurationSeconds int64

	// WinnersCount is how many winners to draw, must be at least 1
	WinnersCount int
}

// CreateGiveawayOutput contains the result of creating a giveaway
type CreateGiveawayOutput struct {
	// MessageID is the announcement message ID, the giveaway's identity
	MessageID string

	// EndTime is when the giveaway will close
	EndTime time.Time
}

// EnterGiveawayInput contains parameters for entering a giveaway
type EnterGiveawayInput struct {
	// MessageID identifies the giveaway
	MessageID string

	// UserID is the Discord user ID of the entrant
	UserID string
}

// EnterGiveawayOutput contains the result of an entry attempt
type EnterGiveawayOutput struct {
	// AlreadyEntered indicates the user had entered before; the set is unchanged
	AlreadyEntered bool

	// EntryCount is the number of entrants after this attempt
	EntryCount int

	// Prize is the giveaway's prize, for confirmation messages
	Prize string
}

// EndGiveawayInput contains parameters for ending a giveaway
type EndGiveawayInput struct {
	// MessageID identifies the giveaway
	MessageID string
}

// EndGiveawayOutput contains the result of ending a giveaway
type EndGiveawayOutput struct {
	// AlreadyEnded indicates another caller won the end transition; no
	// winners were drawn and nothing was announced by this call
	AlreadyEnded bool

	// WinnerIDs are the drawn winners, empty when there were no entries
	WinnerIDs []string

	// EntryCount is the number of entrants at close
	EntryCount int
}

// RerollGiveawayInput contains parameters for rerolling winners
type RerollGiveawayInput struct {
	// MessageID identifies the giveaway
	MessageID string
}

// RerollGiveawayOutput contains the result of a reroll
type RerollGiveawayOutput struct {
	// WinnerIDs are the newly drawn winners
	WinnerIDs []string
}

// ListActiveGiveawaysInput contains parameters for listing active giveaways
type ListActiveGiveawaysInput struct {
	// GuildID scopes the listing to one guild
	GuildID string
}

// ListActiveGiveawaysOutput contains the active giveaways, soonest-ending first
type ListActiveGiveawaysOutput struct {
	Giveaways []*models.Giveaway
}

// GetWinnerHistoryInput contains parameters for reading the selection history
type GetWinnerHistoryInput struct {
	// MessageID identifies the giveaway
	MessageID string
}

// GetWinnerHistoryOutput contains every winner record, oldest first
type GetWinnerHistoryOutput struct {
	Records []*models.GiveawayWinner
}

// EndExpiredGiveawaysInput contains parameters for the expiry scan
type EndExpiredGiveawaysInput struct {
}

// EndExpiredGiveawaysOutput summarizes one expiry scan
type EndExpiredGiveawaysOutput struct {
	// Ended is how many giveaways this scan closed
	Ended int

	// Failed is how many end attempts errored; they stay eligible for the
	// next scan only if the end transition itself never happened
	Failed int
}

// LoadGiveawaysInput contains parameters for rebuilding the registry
type LoadGiveawaysInput struct {
}

// LoadGiveawaysOutput contains the result of rebuilding the registry
type LoadGiveawaysOutput struct {
	// Loaded is how many giveaways were restored from the store
	Loaded int
}

// PublishGiveawayInput is what the notifier needs to render a new giveaway
type PublishGiveawayInput struct {
	ChannelID    string
	CreatorID    string
	Prize        string
	Description  string
	EndTime      time.Time
	WinnersCount int
}

// RefreshEntryCountInput is what the notifier needs to update the entry count
type RefreshEntryCountInput struct {
	ChannelID  string
	MessageID  string
	EntryCount int
}

// AnnounceWinnersInput is what the notifier needs to announce an outcome.
// An empty WinnerIDs means the giveaway closed with no entries.
type AnnounceWinnersInput struct {
	ChannelID string
	MessageID string
	Prize     string
	WinnerIDs []string
	Reroll    bool
}

// MarkEndedInput is what the notifier needs to close out the announcement
type MarkEndedInput struct {
	ChannelID    string
	MessageID    string
	EntryCount   int
	WinnersCount int
}
