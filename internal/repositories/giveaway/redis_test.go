package giveaway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cwhitfield/giveabot/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestGiveaway() *models.Giveaway {
	return &models.Giveaway{
		MessageID:    "test-message-id",
		ChannelID:    "test-channel-id",
		GuildID:      "test-guild-id",
		CreatorID:    "test-creator-id",
		Prize:        "Gaming Mouse",
		Description:  "A very nice mouse",
		EndTime:      s.testNow.Add(time.Hour),
		WinnersCount: 2,
		Entries:      map[string]struct{}{},
		CreatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGiveaway() {
	giveaway := s.newTestGiveaway()

	err := s.repo.SaveGiveaway(context.Background(), &SaveGiveawayInput{
		Giveaway: giveaway,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGiveaway(context.Background(), &GetGiveawayInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-message-id", retrieved.MessageID)
	s.Equal("test-channel-id", retrieved.ChannelID)
	s.Equal("test-guild-id", retrieved.GuildID)
	s.Equal("test-creator-id", retrieved.CreatorID)
	s.Equal("Gaming Mouse", retrieved.Prize)
	s.Equal("A very nice mouse", retrieved.Description)
	s.Equal(2, retrieved.WinnersCount)
	s.False(retrieved.Ended)
	s.Equal(s.testNow.Add(time.Hour).Unix(), retrieved.EndTime.Unix())
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
	s.Equal(0, retrieved.EntryCount())
}

func (s *RedisRepositoryTestSuite) TestGetGiveawayNotFound() {
	_, err := s.repo.GetGiveaway(context.Background(), &GetGiveawayInput{
		MessageID: "missing-message-id",
	})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrGiveawayNotFound))
}

func (s *RedisRepositoryTestSuite) TestAddEntry() {
	giveaway := s.newTestGiveaway()
	err := s.repo.SaveGiveaway(context.Background(), &SaveGiveawayInput{Giveaway: giveaway})
	s.Require().NoError(err)

	out, err := s.repo.AddEntry(context.Background(), &AddEntryInput{
		MessageID: "test-message-id",
		UserID:    "user-1",
		EnteredAt: s.testNow,
	})
	s.Require().NoError(err)
	s.True(out.Added)

	// Second entry by the same user is rejected by the storage layer
	out, err = s.repo.AddEntry(context.Background(), &AddEntryInput{
		MessageID: "test-message-id",
		UserID:    "user-1",
		EnteredAt: s.testNow.Add(time.Minute),
	})
	s.Require().NoError(err)
	s.False(out.Added)

	out, err = s.repo.AddEntry(context.Background(), &AddEntryInput{
		MessageID: "test-message-id",
		UserID:    "user-2",
		EnteredAt: s.testNow,
	})
	s.Require().NoError(err)
	s.True(out.Added)

	retrieved, err := s.repo.GetGiveaway(context.Background(), &GetGiveawayInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Equal(2, retrieved.EntryCount())
	s.True(retrieved.HasEntered("user-1"))
	s.True(retrieved.HasEntered("user-2"))
}

func (s *RedisRepositoryTestSuite) TestRecordWinnersKeepsHistory() {
	giveaway := s.newTestGiveaway()
	err := s.repo.SaveGiveaway(context.Background(), &SaveGiveawayInput{Giveaway: giveaway})
	s.Require().NoError(err)

	// First selection
	err = s.repo.RecordWinners(context.Background(), &RecordWinnersInput{
		MessageID:  "test-message-id",
		WinnerIDs:  []string{"user-1", "user-2"},
		SelectedAt: s.testNow,
	})
	s.Require().NoError(err)

	// Reroll appends rather than overwriting
	err = s.repo.RecordWinners(context.Background(), &RecordWinnersInput{
		MessageID:  "test-message-id",
		WinnerIDs:  []string{"user-3"},
		SelectedAt: s.testNow.Add(time.Minute),
	})
	s.Require().NoError(err)

	records, err := s.repo.GetWinnerRecords(context.Background(), &GetWinnerRecordsInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("user-1", records[0].UserID)
	s.Equal("user-2", records[1].UserID)
	s.Equal("user-3", records[2].UserID)
	for _, record := range records {
		s.Equal("test-message-id", record.GiveawayID)
		s.NotEmpty(record.ID)
	}
}

func (s *RedisRepositoryTestSuite) TestRecordWinnersEmptyIsNoop() {
	err := s.repo.RecordWinners(context.Background(), &RecordWinnersInput{
		MessageID:  "test-message-id",
		WinnerIDs:  []string{},
		SelectedAt: s.testNow,
	})
	s.Require().NoError(err)

	records, err := s.repo.GetWinnerRecords(context.Background(), &GetWinnerRecordsInput{
		MessageID: "test-message-id",
	})
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RedisRepositoryTestSuite) TestListGiveaways() {
	first := s.newTestGiveaway()
	second := s.newTestGiveaway()
	second.MessageID = "other-message-id"
	second.GuildID = "other-guild-id"
	second.Ended = true
	second.WinnerIDs = []string{"user-9"}

	s.Require().NoError(s.repo.SaveGiveaway(context.Background(), &SaveGiveawayInput{Giveaway: first}))
	s.Require().NoError(s.repo.SaveGiveaway(context.Background(), &SaveGiveawayInput{Giveaway: second}))

	_, err := s.repo.AddEntry(context.Background(), &AddEntryInput{
		MessageID: "other-message-id",
		UserID:    "user-9",
		EnteredAt: s.testNow,
	})
	s.Require().NoError(err)

	out, err := s.repo.ListGiveaways(context.Background(), &ListGiveawaysInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Giveaways, 2)

	byID := make(map[string]*models.Giveaway)
	for _, g := range out.Giveaways {
		byID[g.MessageID] = g
	}

	s.Require().Contains(byID, "test-message-id")
	s.Require().Contains(byID, "other-message-id")
	s.False(byID["test-message-id"].Ended)
	s.True(byID["other-message-id"].Ended)
	s.Equal([]string{"user-9"}, byID["other-message-id"].WinnerIDs)
	s.True(byID["other-message-id"].HasEntered("user-9"))
}

func (s *RedisRepositoryTestSuite) TestListGiveawaysEmpty() {
	out, err := s.repo.ListGiveaways(context.Background(), &ListGiveawaysInput{})
	s.Require().NoError(err)
	s.Empty(out.Giveaways)
}
