package giveaway_test

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/cwhitfield/giveabot/internal/common/clock/mocks"
	drawMocks "github.com/cwhitfield/giveabot/internal/draw/mocks"
	giveawayRepo "github.com/cwhitfield/giveabot/internal/repositories/giveaway"
	repoMocks "github.com/cwhitfield/giveabot/internal/repositories/giveaway/mocks"
	"github.com/cwhitfield/giveabot/internal/services/giveaway"
	svcMocks "github.com/cwhitfield/giveabot/internal/services/giveaway/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *repoMocks.MockRepository
	mockNotifier *svcMocks.MockNotifier
	mockPicker   *drawMocks.MockPicker
	mockClock    *clockMocks.MockClock
	service      giveaway.Service
	ctx          context.Context
	now          time.Time
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockNotifier = svcMocks.NewMockNotifier(s.mockCtrl)
	s.mockPicker = drawMocks.NewMockPicker(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()
	s.mockRepo.EXPECT().SaveGiveaway(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockRepo.EXPECT().AddEntry(gomock.Any(), gomock.Any()).Return(&giveawayRepo.AddEntryOutput{Added: true}, nil).AnyTimes()
	s.mockRepo.EXPECT().RecordWinners(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc, err := giveaway.New(&giveaway.Config{
		GiveawayRepo: s.mockRepo,
		Notifier:     s.mockNotifier,
		Picker:       s.mockPicker,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestNewSchedulerValidatesConfig() {
	_, err := giveaway.NewScheduler(nil)
	s.Require().ErrorIs(err, giveaway.ErrNilConfig)

	_, err = giveaway.NewScheduler(&giveaway.SchedulerConfig{})
	s.Require().ErrorIs(err, giveaway.ErrNilService)
}

func (s *SchedulerTestSuite) TestSchedulerEndsExpiredGiveaway() {
	s.mockNotifier.EXPECT().PublishGiveaway(gomock.Any(), gomock.Any()).Return("message-1", nil)
	_, err := s.service.CreateGiveaway(s.ctx, &giveaway.CreateGiveawayInput{
		ChannelID:       "channel-1",
		GuildID:         "guild-1",
		CreatorID:       "creator-1",
		Prize:           "Sticker Pack",
		DurationSeconds: 60,
		WinnersCount:    1,
	})
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().RefreshEntryCount(gomock.Any(), gomock.Any()).Return(nil)
	_, err = s.service.EnterGiveaway(s.ctx, &giveaway.EnterGiveawayInput{
		MessageID: "message-1",
		UserID:    "user-1",
	})
	s.Require().NoError(err)

	announced := make(chan struct{})
	s.mockPicker.EXPECT().Pick(gomock.Any(), 1).Return([]string{"user-1"})
	s.mockNotifier.EXPECT().AnnounceWinners(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *giveaway.AnnounceWinnersInput) error {
			close(announced)
			return nil
		})
	s.mockNotifier.EXPECT().MarkEnded(gomock.Any(), gomock.Any()).Return(nil)

	s.now = s.now.Add(2 * time.Minute)

	sched, err := giveaway.NewScheduler(&giveaway.SchedulerConfig{
		Service:  s.service,
		Interval: 10 * time.Millisecond,
	})
	s.Require().NoError(err)

	sched.Start()
	defer sched.Stop()

	select {
	case <-announced:
	case <-time.After(2 * time.Second):
		s.FailNow("scheduler never ended the expired giveaway")
	}
}

func (s *SchedulerTestSuite) TestSchedulerLeavesActiveGiveawaysAlone() {
	s.mockNotifier.EXPECT().PublishGiveaway(gomock.Any(), gomock.Any()).Return("message-1", nil)
	_, err := s.service.CreateGiveaway(s.ctx, &giveaway.CreateGiveawayInput{
		ChannelID:       "channel-1",
		GuildID:         "guild-1",
		CreatorID:       "creator-1",
		Prize:           "Sticker Pack",
		DurationSeconds: 3600,
		WinnersCount:    1,
	})
	s.Require().NoError(err)

	sched, err := giveaway.NewScheduler(&giveaway.SchedulerConfig{
		Service:  s.service,
		Interval: 10 * time.Millisecond,
	})
	s.Require().NoError(err)

	sched.Start()
	time.Sleep(50 * time.Millisecond)
	sched.Stop()

	// Still active; no end transition ran
	list, err := s.service.ListActiveGiveaways(s.ctx, &giveaway.ListActiveGiveawaysInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Require().Len(list.Giveaways, 1)
}
