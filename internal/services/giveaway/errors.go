package giveaway

// GiveawayError is a custom error type for giveaway-related errors
type GiveawayError string

// Error implements the error interface
func (e GiveawayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGiveawayNotFound    GiveawayError = "giveaway not found"
	ErrAlreadyEnded        GiveawayError = "giveaway has already ended"
	ErrGiveawayNotEnded    GiveawayError = "giveaway has not ended yet"
	ErrInvalidDuration     GiveawayError = "duration must be positive"
	ErrInvalidWinnersCount GiveawayError = "winners count must be at least 1"
	ErrNilConfig           GiveawayError = "config cannot be nil"
	ErrNilRepository       GiveawayError = "giveaway repository cannot be nil"
	ErrNilService          GiveawayError = "giveaway service cannot be nil"
	ErrNilNotifier         GiveawayError = "notifier cannot be nil"
	ErrNilPicker           GiveawayError = "picker cannot be nil"
	ErrNilClock            GiveawayError = "clock cannot be nil"
)
