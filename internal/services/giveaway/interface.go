package giveaway

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/cwhitfield/giveabot/internal/services/giveaway Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/cwhitfield/giveabot/internal/services/giveaway Notifier

import "context"

// Service defines the interface for giveaway lifecycle operations
type Service interface {
	// CreateGiveaway publishes and registers a new giveaway
	CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error)

	// EnterGiveaway records a user's entry into an active giveaway
	EnterGiveaway(ctx context.Context, input *EnterGiveawayInput) (*EnterGiveawayOutput, error)

	// EndGiveaway closes a giveaway and draws its winners exactly once
	EndGiveaway(ctx context.Context, input *EndGiveawayInput) (*EndGiveawayOutput, error)

	// RerollGiveaway redraws winners from an ended giveaway's frozen entries
	RerollGiveaway(ctx context.Context, input *RerollGiveawayInput) (*RerollGiveawayOutput, error)

	// ListActiveGiveaways returns the giveaways in a guild that are still running
	ListActiveGiveaways(ctx context.Context, input *ListActiveGiveawaysInput) (*ListActiveGiveawaysOutput, error)

	// GetWinnerHistory returns every selection event recorded for a giveaway
	GetWinnerHistory(ctx context.Context, input *GetWinnerHistoryInput) (*GetWinnerHistoryOutput, error)

	// EndExpiredGiveaways ends every giveaway whose deadline has passed
	EndExpiredGiveaways(ctx context.Context, input *EndExpiredGiveawaysInput) (*EndExpiredGiveawaysOutput, error)

	// LoadGiveaways rebuilds the in-memory registry from the durable store
	LoadGiveaways(ctx context.Context, input *LoadGiveawaysInput) (*LoadGiveawaysOutput, error)
}

// Notifier is the rendering collaborator. The service never formats
// user-facing text; it hands the facts to the notifier and the Discord layer
// decides how they look.
type Notifier interface {
	// PublishGiveaway renders a new giveaway announcement and returns the
	// message ID that becomes the giveaway's identity. A failure here aborts
	// the create.
	PublishGiveaway(ctx context.Context, input *PublishGiveawayInput) (string, error)

	// RefreshEntryCount updates the displayed entry count. Best-effort.
	RefreshEntryCount(ctx context.Context, input *RefreshEntryCountInput) error

	// AnnounceWinners announces a selection outcome; an empty winner list
	// means the giveaway closed with no entries. Best-effort.
	AnnounceWinners(ctx context.Context, input *AnnounceWinnersInput) error

	// MarkEnded updates the announcement message to show the giveaway is
	// closed. Best-effort.
	MarkEnded(ctx context.Context, input *MarkEndedInput) error
}
