package models

import (
	"time"
)

// Giveaway represents one timed prize drawing. Its identity is the Discord
// message ID of the announcement, assigned when the message is published.
type Giveaway struct {
	// MessageID is the Discord message ID of the giveaway announcement
	MessageID string

	// ChannelID is the Discord channel where the giveaway was posted
	ChannelID string

	// GuildID is the Discord guild the giveaway belongs to
	GuildID string

	// CreatorID is the Discord user ID of the giveaway host
	CreatorID string

	// Prize is what is being given away
	Prize string

	// Description is optional extra detail about the giveaway
	Description string

	// EndTime is when the giveaway closes
	EndTime time.Time

	// WinnersCount is how many winners to draw, always >= 1
	WinnersCount int

	// Entries maps user IDs to membership; each user may enter at most once
	Entries map[string]struct{}

	// Ended is set exactly once when the giveaway is closed
	Ended bool

	// WinnerIDs holds the most recent winner selection; overwritten on reroll
	WinnerIDs []string

	// CreatedAt is when the giveaway was created
	CreatedAt time.Time
}

// EntryCount returns the number of users who have entered
func (g *Giveaway) EntryCount() int {
	return len(g.Entries)
}

// HasEntered reports whether the user has already entered
func (g *Giveaway) HasEntered(userID string) bool {
	_, ok := g.Entries[userID]
	return ok
}

// ExpiresBy reports whether the giveaway's deadline has passed at the given time.
// A giveaway whose deadline has passed counts as inactive even before the
// scheduler has processed it.
func (g *Giveaway) ExpiresBy(now time.Time) bool {
	return g.Ended || !now.Before(g.EndTime)
}

// EntryIDs returns the entrant user IDs as a slice
func (g *Giveaway) EntryIDs() []string {
	ids := make([]string, 0, len(g.Entries))
	for id := range g.Entries {
		ids = append(ids, id)
	}
	return ids
}

// GiveawayEntry is the durable record of a single user's entry
type GiveawayEntry struct {
	// GiveawayID is the message ID of the giveaway entered
	GiveawayID string

	// UserID is the Discord user ID of the entrant
	UserID string

	// EnteredAt is when the entry was recorded
	EnteredAt time.Time
}

// GiveawayWinner is the durable record of one winner from one selection event.
// A reroll appends new records rather than replacing old ones, so the full
// selection history is preserved.
type GiveawayWinner struct {
	// ID is the unique identifier for the winner record
	ID string

	// GiveawayID is the message ID of the giveaway
	GiveawayID string

	// UserID is the Discord user ID of the winner
	UserID string

	// SelectedAt is when this selection happened
	SelectedAt time.Time
}
