package giveaway

import (
	"time"

	"github.com/cwhitfield/giveabot/internal/models"
)

type SaveGiveawayInput struct {
	Giveaway *models.Giveaway
}

type GetGiveawayInput struct {
	MessageID string
}

type AddEntryInput struct {
	MessageID string
	UserID    string
	EnteredAt time.Time
}

type AddEntryOutput struct {
	// Added is false when the user had already entered
	Added bool
}

type RecordWinnersInput struct {
	MessageID  string
	WinnerIDs  []string
	SelectedAt time.Time
}

type GetWinnerRecordsInput struct {
	MessageID string
}

type ListGiveawaysInput struct {
}

type ListGiveawaysOutput struct {
	Giveaways []*models.Giveaway
}
