package giveaway

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/cwhitfield/giveabot/internal/common/clock"
	"github.com/cwhitfield/giveabot/internal/draw"
	"github.com/cwhitfield/giveabot/internal/models"
	giveawayRepo "github.com/cwhitfield/giveabot/internal/repositories/giveaway"
)

// service implements the Service interface
type service struct {
	repo     giveawayRepo.Repository
	notifier Notifier
	picker   draw.Picker
	clock    clock.Clock
	registry *registry
}

// New creates a new giveaway service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GiveawayRepo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		repo:     cfg.GiveawayRepo,
		notifier: cfg.Notifier,
		picker:   cfg.Picker,
		clock:    cfg.Clock,
		registry: newRegistry(),
	}, nil
}

// CreateGiveaway validates the input, publishes the announcement message and
// registers the giveaway under the resulting message ID. Nothing is
// registered when publishing fails.
func (s *service) CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error) {
	if input.DurationSeconds <= 0 {
		return nil, ErrInvalidDuration
	}

	if input.WinnersCount < 1 {
		return nil, ErrInvalidWinnersCount
	}

	now := s.clock.Now()
	endTime := now.Add(time.Duration(input.DurationSeconds) * time.Second)

	messageID, err := s.notifier.PublishGiveaway(ctx, &PublishGiveawayInput{
		ChannelID:    input.ChannelID,
		CreatorID:    input.CreatorID,
		Prize:        input.Prize,
		Description:  input.Description,
		EndTime:      endTime,
		WinnersCount: input.WinnersCount,
	})
	if err != nil {
		return nil, err
	}

	g := &models.Giveaway{
		MessageID:    messageID,
		ChannelID:    input.ChannelID,
		GuildID:      input.GuildID,
		CreatorID:    input.CreatorID,
		Prize:        input.Prize,
		Description:  input.Description,
		EndTime:      endTime,
		WinnersCount: input.WinnersCount,
		Entries:      make(map[string]struct{}),
		CreatedAt:    now,
	}

	s.registry.add(g)

	// The announcement is already public at this point, so a persistence
	// failure must not orphan the running giveaway.
	if err := s.repo.SaveGiveaway(ctx, &giveawayRepo.SaveGiveawayInput{Giveaway: copyGiveaway(g)}); err != nil {
		log.Printf("Failed to persist giveaway %s: %v", messageID, err)
	}

	log.Printf("Created giveaway %s in guild %s, ends at %s", messageID, input.GuildID, endTime.UTC().Format("2006-01-02 15:04:05"))

	return &CreateGiveawayOutput{
		MessageID: messageID,
		EndTime:   endTime,
	}, nil
}

// EnterGiveaway records one user's entry. Entering twice is reported, not an
// error, and never grows the set. Entries are rejected once the deadline has
// passed even if the scheduler has not processed the giveaway yet.
func (s *service) EnterGiveaway(ctx context.Context, input *EnterGiveawayInput) (*EnterGiveawayOutput, error) {
	entry, ok := s.registry.get(input.MessageID)
	if !ok {
		return nil, ErrGiveawayNotFound
	}

	now := s.clock.Now()

	entry.mu.Lock()
	g := entry.giveaway

	if g.ExpiresBy(now) {
		entry.mu.Unlock()
		return nil, ErrAlreadyEnded
	}

	if g.HasEntered(input.UserID) {
		count := g.EntryCount()
		prize := g.Prize
		entry.mu.Unlock()
		return &EnterGiveawayOutput{
			AlreadyEntered: true,
			EntryCount:     count,
			Prize:          prize,
		}, nil
	}

	g.Entries[input.UserID] = struct{}{}
	count := g.EntryCount()
	prize := g.Prize
	channelID := g.ChannelID
	entry.mu.Unlock()

	// The registry holds the entry now; the durable record and the display
	// refresh are both best-effort.
	if _, err := s.repo.AddEntry(ctx, &giveawayRepo.AddEntryInput{
		MessageID: input.MessageID,
		UserID:    input.UserID,
		EnteredAt: now,
	}); err != nil {
		log.Printf("Failed to persist entry for giveaway %s: %v", input.MessageID, err)
	}

	if err := s.notifier.RefreshEntryCount(ctx, &RefreshEntryCountInput{
		ChannelID:  channelID,
		MessageID:  input.MessageID,
		EntryCount: count,
	}); err != nil {
		log.Printf("Failed to refresh entry count for giveaway %s: %v", input.MessageID, err)
	}

	return &EnterGiveawayOutput{
		EntryCount: count,
		Prize:      prize,
	}, nil
}

// EndGiveaway performs the Active -> Ended transition. The per-giveaway lock
// guarantees exactly one caller sets Ended and draws winners; every later
// caller gets AlreadyEnded and causes no second announcement.
func (s *service) EndGiveaway(ctx context.Context, input *EndGiveawayInput) (*EndGiveawayOutput, error) {
	entry, ok := s.registry.get(input.MessageID)
	if !ok {
		return nil, ErrGiveawayNotFound
	}

	entry.mu.Lock()
	g := entry.giveaway

	if g.Ended {
		entry.mu.Unlock()
		return &EndGiveawayOutput{AlreadyEnded: true}, nil
	}

	g.Ended = true

	entrants := g.EntryIDs()
	winners := s.drawWinners(entrants, g.WinnersCount)
	g.WinnerIDs = winners

	snapshot := copyGiveaway(g)
	entry.mu.Unlock()

	s.persistSelection(ctx, snapshot)

	if err := s.notifier.AnnounceWinners(ctx, &AnnounceWinnersInput{
		ChannelID: snapshot.ChannelID,
		MessageID: snapshot.MessageID,
		Prize:     snapshot.Prize,
		WinnerIDs: winners,
	}); err != nil {
		log.Printf("Failed to announce winners for giveaway %s: %v", snapshot.MessageID, err)
	}

	if err := s.notifier.MarkEnded(ctx, &MarkEndedInput{
		ChannelID:    snapshot.ChannelID,
		MessageID:    snapshot.MessageID,
		EntryCount:   len(entrants),
		WinnersCount: snapshot.WinnersCount,
	}); err != nil {
		log.Printf("Failed to mark giveaway %s as ended: %v", snapshot.MessageID, err)
	}

	log.Printf("Ended giveaway %s in guild %s with %d entries, winners: %v", snapshot.MessageID, snapshot.GuildID, len(entrants), winners)

	return &EndGiveawayOutput{
		WinnerIDs:  winners,
		EntryCount: len(entrants),
	}, nil
}

// RerollGiveaway redraws winners over the entry set frozen at end time and
// overwrites the stored winner list. Only legal after the giveaway has ended;
// may be repeated any number of times.
func (s *service) RerollGiveaway(ctx context.Context, input *RerollGiveawayInput) (*RerollGiveawayOutput, error) {
	entry, ok := s.registry.get(input.MessageID)
	if !ok {
		return nil, ErrGiveawayNotFound
	}

	entry.mu.Lock()
	g := entry.giveaway

	if !g.Ended {
		entry.mu.Unlock()
		return nil, ErrGiveawayNotEnded
	}

	entrants := g.EntryIDs()
	winners := s.drawWinners(entrants, g.WinnersCount)
	g.WinnerIDs = winners

	snapshot := copyGiveaway(g)
	entry.mu.Unlock()

	s.persistSelection(ctx, snapshot)

	if err := s.notifier.AnnounceWinners(ctx, &AnnounceWinnersInput{
		ChannelID: snapshot.ChannelID,
		MessageID: snapshot.MessageID,
		Prize:     snapshot.Prize,
		WinnerIDs: winners,
		Reroll:    true,
	}); err != nil {
		log.Printf("Failed to announce reroll for giveaway %s: %v", snapshot.MessageID, err)
	}

	log.Printf("Rerolled giveaway %s in guild %s, new winners: %v", snapshot.MessageID, snapshot.GuildID, winners)

	return &RerollGiveawayOutput{
		WinnerIDs: winners,
	}, nil
}

// ListActiveGiveaways returns the guild's running giveaways, soonest-ending
// first. A giveaway whose deadline has passed is excluded immediately, even
// before the scheduler processes it.
func (s *service) ListActiveGiveaways(ctx context.Context, input *ListActiveGiveawaysInput) (*ListActiveGiveawaysOutput, error) {
	now := s.clock.Now()

	var active []*models.Giveaway
	for _, messageID := range s.registry.keys() {
		entry, ok := s.registry.get(messageID)
		if !ok {
			continue
		}

		g := entry.snapshotGiveaway()
		if g.GuildID != input.GuildID || g.ExpiresBy(now) {
			continue
		}

		active = append(active, g)
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].EndTime.Before(active[j].EndTime)
	})

	return &ListActiveGiveawaysOutput{
		Giveaways: active,
	}, nil
}

// GetWinnerHistory returns the full selection history for a giveaway, oldest
// first. Rerolls append selection events, so past winners stay visible here
// even after the current winner list is overwritten.
func (s *service) GetWinnerHistory(ctx context.Context, input *GetWinnerHistoryInput) (*GetWinnerHistoryOutput, error) {
	if _, ok := s.registry.get(input.MessageID); !ok {
		return nil, ErrGiveawayNotFound
	}

	records, err := s.repo.GetWinnerRecords(ctx, &giveawayRepo.GetWinnerRecordsInput{
		MessageID: input.MessageID,
	})
	if err != nil {
		return nil, err
	}

	return &GetWinnerHistoryOutput{
		Records: records,
	}, nil
}

// EndExpiredGiveaways scans a snapshot of the registry and ends every
// giveaway whose deadline has passed. One giveaway failing does not stop the
// scan.
func (s *service) EndExpiredGiveaways(ctx context.Context, input *EndExpiredGiveawaysInput) (*EndExpiredGiveawaysOutput, error) {
	now := s.clock.Now()
	out := &EndExpiredGiveawaysOutput{}

	for _, messageID := range s.registry.keys() {
		entry, ok := s.registry.get(messageID)
		if !ok {
			continue
		}

		g := entry.snapshotGiveaway()
		if g.Ended || now.Before(g.EndTime) {
			continue
		}

		result, err := s.EndGiveaway(ctx, &EndGiveawayInput{MessageID: messageID})
		if err != nil {
			log.Printf("Failed to end expired giveaway %s: %v", messageID, err)
			out.Failed++
			continue
		}

		if !result.AlreadyEnded {
			out.Ended++
		}
	}

	return out, nil
}

// LoadGiveaways rebuilds the registry from the durable store. Called once at
// startup before the scheduler or any command handler runs.
func (s *service) LoadGiveaways(ctx context.Context, input *LoadGiveawaysInput) (*LoadGiveawaysOutput, error) {
	stored, err := s.repo.ListGiveaways(ctx, &giveawayRepo.ListGiveawaysInput{})
	if err != nil {
		return nil, err
	}

	for _, g := range stored.Giveaways {
		s.registry.add(g)
	}

	return &LoadGiveawaysOutput{
		Loaded: len(stored.Giveaways),
	}, nil
}

// drawWinners selects min(winnersCount, len(entrants)) distinct winners. No
// draw is attempted for an empty entrant set.
func (s *service) drawWinners(entrants []string, winnersCount int) []string {
	if len(entrants) == 0 {
		return []string{}
	}

	k := winnersCount
	if k > len(entrants) {
		k = len(entrants)
	}

	return s.picker.Pick(entrants, k)
}

// persistSelection writes the updated record and appends winner history.
// Failures are logged; the in-memory state is already authoritative and the
// announcement still goes out.
func (s *service) persistSelection(ctx context.Context, snapshot *models.Giveaway) {
	if err := s.repo.SaveGiveaway(ctx, &giveawayRepo.SaveGiveawayInput{Giveaway: snapshot}); err != nil {
		log.Printf("Failed to persist giveaway %s: %v", snapshot.MessageID, err)
	}

	if len(snapshot.WinnerIDs) == 0 {
		return
	}

	if err := s.repo.RecordWinners(ctx, &giveawayRepo.RecordWinnersInput{
		MessageID:  snapshot.MessageID,
		WinnerIDs:  snapshot.WinnerIDs,
		SelectedAt: s.clock.Now(),
	}); err != nil {
		log.Printf("Failed to record winners for giveaway %s: %v", snapshot.MessageID, err)
	}
}
