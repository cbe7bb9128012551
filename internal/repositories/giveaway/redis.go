package giveaway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cwhitfield/giveabot/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	giveawayKeyPrefix = "giveaway:"
	entriesKeySuffix  = ":entries"
	winnersKeySuffix  = ":winners"
	allGiveawaysKey   = "giveaways"
)

// ErrGiveawayNotFound is returned when a giveaway is not found
var ErrGiveawayNotFound = errors.New("giveaway not found")

// Config holds configuration for the Redis giveaway repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed giveaway repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// storedGiveaway is the JSON shape of a giveaway record. Entries live in their
// own hash so concurrent entry writes never rewrite the record.
type storedGiveaway struct {
	MessageID    string
	ChannelID    string
	GuildID      string
	CreatorID    string
	Prize        string
	Description  string
	EndTime      int64
	WinnersCount int
	Ended        bool
	WinnerIDs    []string
	CreatedAt    int64
}

// SaveGiveaway persists a giveaway record to Redis
func (r *redisRepository) SaveGiveaway(ctx context.Context, input *SaveGiveawayInput) error {
	if input == nil || input.Giveaway == nil {
		return errors.New("input and giveaway cannot be nil")
	}

	g := input.Giveaway
	record := &storedGiveaway{
		MessageID:    g.MessageID,
		ChannelID:    g.ChannelID,
		GuildID:      g.GuildID,
		CreatorID:    g.CreatorID,
		Prize:        g.Prize,
		Description:  g.Description,
		EndTime:      g.EndTime.Unix(),
		WinnersCount: g.WinnersCount,
		Ended:        g.Ended,
		WinnerIDs:    g.WinnerIDs,
		CreatedAt:    g.CreatedAt.Unix(),
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal giveaway: %w", err)
	}

	pipe := r.client.Pipeline()

	giveawayKey := fmt.Sprintf("%s%s", giveawayKeyPrefix, g.MessageID)
	pipe.Set(ctx, giveawayKey, recordJSON, 0)
	pipe.SAdd(ctx, allGiveawaysKey, g.MessageID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save giveaway: %w", err)
	}

	return nil
}

// GetGiveaway retrieves a giveaway and its entry set by message ID
func (r *redisRepository) GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	giveawayKey := fmt.Sprintf("%s%s", giveawayKeyPrefix, input.MessageID)
	recordJSON, err := r.client.Get(ctx, giveawayKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}

	return r.hydrateGiveaway(ctx, recordJSON)
}

// hydrateGiveaway unmarshals a stored record and loads its entry set
func (r *redisRepository) hydrateGiveaway(ctx context.Context, recordJSON string) (*models.Giveaway, error) {
	var record storedGiveaway
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal giveaway: %w", err)
	}

	entriesKey := fmt.Sprintf("%s%s%s", giveawayKeyPrefix, record.MessageID, entriesKeySuffix)
	userIDs, err := r.client.HKeys(ctx, entriesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for giveaway %s: %w", record.MessageID, err)
	}

	entries := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		entries[userID] = struct{}{}
	}

	return &models.Giveaway{
		MessageID:    record.MessageID,
		ChannelID:    record.ChannelID,
		GuildID:      record.GuildID,
		CreatorID:    record.CreatorID,
		Prize:        record.Prize,
		Description:  record.Description,
		EndTime:      time.Unix(record.EndTime, 0),
		WinnersCount: record.WinnersCount,
		Ended:        record.Ended,
		WinnerIDs:    record.WinnerIDs,
		CreatedAt:    time.Unix(record.CreatedAt, 0),
		Entries:      entries,
	}, nil
}

// AddEntry records a user's entry. HSetNX enforces the one-entry-per-user
// constraint at the storage layer.
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) (*AddEntryOutput, error) {
	if input == nil || input.MessageID == "" || input.UserID == "" {
		return nil, errors.New("input, message ID and user ID cannot be empty")
	}

	entry := &models.GiveawayEntry{
		GiveawayID: input.MessageID,
		UserID:     input.UserID,
		EnteredAt:  input.EnteredAt,
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	entriesKey := fmt.Sprintf("%s%s%s", giveawayKeyPrefix, input.MessageID, entriesKeySuffix)
	added, err := r.client.HSetNX(ctx, entriesKey, input.UserID, entryJSON).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	return &AddEntryOutput{Added: added}, nil
}

// RecordWinners appends one winner record per winner for a selection event
func (r *redisRepository) RecordWinners(ctx context.Context, input *RecordWinnersInput) error {
	if input == nil || input.MessageID == "" {
		return errors.New("input and message ID cannot be empty")
	}

	if len(input.WinnerIDs) == 0 {
		return nil
	}

	winnersKey := fmt.Sprintf("%s%s%s", giveawayKeyPrefix, input.MessageID, winnersKeySuffix)

	pipe := r.client.Pipeline()
	for _, userID := range input.WinnerIDs {
		record := &models.GiveawayWinner{
			ID:         uuid.New().String(),
			GiveawayID: input.MessageID,
			UserID:     userID,
			SelectedAt: input.SelectedAt,
		}

		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal winner record: %w", err)
		}

		pipe.RPush(ctx, winnersKey, recordJSON)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record winners: %w", err)
	}

	return nil
}

// GetWinnerRecords retrieves the full selection history for a giveaway,
// oldest first
func (r *redisRepository) GetWinnerRecords(ctx context.Context, input *GetWinnerRecordsInput) ([]*models.GiveawayWinner, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	winnersKey := fmt.Sprintf("%s%s%s", giveawayKeyPrefix, input.MessageID, winnersKeySuffix)
	recordJSONs, err := r.client.LRange(ctx, winnersKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get winner records: %w", err)
	}

	records := make([]*models.GiveawayWinner, 0, len(recordJSONs))
	for _, recordJSON := range recordJSONs {
		var record models.GiveawayWinner
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal winner record: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}

// ListGiveaways retrieves all stored giveaways. Used to rebuild the in-memory
// registry at startup.
func (r *redisRepository) ListGiveaways(ctx context.Context, input *ListGiveawaysInput) (*ListGiveawaysOutput, error) {
	messageIDs, err := r.client.SMembers(ctx, allGiveawaysKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get giveaway IDs: %w", err)
	}

	if len(messageIDs) == 0 {
		return &ListGiveawaysOutput{
			Giveaways: []*models.Giveaway{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(messageIDs))
	for _, messageID := range messageIDs {
		giveawayKey := fmt.Sprintf("%s%s", giveawayKeyPrefix, messageID)
		commands[messageID] = pipe.Get(ctx, giveawayKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get giveaways: %w", err)
	}

	giveaways := make([]*models.Giveaway, 0, len(messageIDs))
	for messageID, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record deleted between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get giveaway %s: %w", messageID, err)
		}

		g, err := r.hydrateGiveaway(ctx, recordJSON)
		if err != nil {
			return nil, err
		}

		giveaways = append(giveaways, g)
	}

	return &ListGiveawaysOutput{
		Giveaways: giveaways,
	}, nil
}
