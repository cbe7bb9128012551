package giveaway

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/cwhitfield/giveabot/internal/repositories/giveaway Repository

import (
	"context"

	"github.com/cwhitfield/giveabot/internal/models"
)

// Repository defines the interface for giveaway data persistence
type Repository interface {
	// SaveGiveaway persists a giveaway record
	SaveGiveaway(ctx context.Context, input *SaveGiveawayInput) error

	// GetGiveaway retrieves a giveaway by its message ID
	GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error)

	// AddEntry records a user's entry, enforcing one entry per user
	AddEntry(ctx context.Context, input *AddEntryInput) (*AddEntryOutput, error)

	// RecordWinners appends winner records for one selection event
	RecordWinners(ctx context.Context, input *RecordWinnersInput) error

	// GetWinnerRecords retrieves the full selection history for a giveaway
	GetWinnerRecords(ctx context.Context, input *GetWinnerRecordsInput) ([]*models.GiveawayWinner, error)

	// ListGiveaways retrieves all stored giveaways
	ListGiveaways(ctx context.Context, input *ListGiveawaysInput) (*ListGiveawaysOutput, error)
}
