package discord

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cwhitfield/giveabot/internal/models"
	"github.com/cwhitfield/giveabot/internal/services/giveaway"
	svcMocks "github.com/cwhitfield/giveabot/internal/services/giveaway/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubTransport answers every Discord API call with 204 No Content and
// records the requests, so responder helpers work without a connection
type stubTransport struct {
	mu       sync.Mutex
	requests []*http.Request
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusNoContent,
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Header:     make(http.Header),
	}, nil
}

func (t *stubTransport) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

type GiveawayCommandTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *svcMocks.MockService
	session     *discordgo.Session
	transport   *stubTransport
	command     *GiveawayCommand
	bot         *Bot
}

func (s *GiveawayCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = svcMocks.NewMockService(s.mockCtrl)

	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)
	s.transport = &stubTransport{}
	session.Client.Transport = s.transport
	s.session = session

	s.command = NewGiveawayCommand(s.mockService)

	bot, err := New(&Config{
		Session:         session,
		GiveawayService: s.mockService,
	})
	s.Require().NoError(err)
	s.bot = bot
}

func (s *GiveawayCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGiveawayCommandTestSuite(t *testing.T) {
	suite.Run(t, new(GiveawayCommandTestSuite))
}

// commandInteraction builds a /giveaway subcommand interaction. A nil member
// is how Discord delivers interactions from outside a guild.
func commandInteraction(subcommand, messageID string, member *discordgo.Member) *discordgo.InteractionCreate {
	var options []*discordgo.ApplicationCommandInteractionDataOption
	if messageID != "" {
		options = append(options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  "message_id",
			Type:  discordgo.ApplicationCommandOptionString,
			Value: messageID,
		})
	}

	interaction := &discordgo.Interaction{
		ID:    "interaction-id",
		Token: "interaction-token",
		Type:  discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "giveaway",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    subcommand,
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: options,
				},
			},
		},
		Member: member,
	}
	if member == nil {
		interaction.User = &discordgo.User{ID: "user-1"}
	}

	return &discordgo.InteractionCreate{Interaction: interaction}
}

func (s *GiveawayCommandTestSuite) TestDMPermissionDisabled() {
	cmd := s.command.GetCommand()
	s.Require().NotNil(cmd.DMPermission)
	s.False(*cmd.DMPermission)
}

func (s *GiveawayCommandTestSuite) TestHandleOutsideGuild() {
	// No service expectations: the interaction must be answered without
	// touching the service, and without panicking on the nil member
	i := commandInteraction("end", "message-1", nil)

	err := s.command.Handle(s.session, i)
	s.Require().NoError(err)
	s.Equal(1, s.transport.count())
}

func (s *GiveawayCommandTestSuite) TestHandleWithoutManageMessages() {
	member := &discordgo.Member{
		User:        &discordgo.User{ID: "user-1"},
		Permissions: 0,
	}
	i := commandInteraction("end", "message-1", member)

	err := s.command.Handle(s.session, i)
	s.Require().NoError(err)
	s.Equal(1, s.transport.count())
}

func (s *GiveawayCommandTestSuite) TestHandleHistory() {
	selectedAt := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockService.EXPECT().GetWinnerHistory(gomock.Any(), &giveaway.GetWinnerHistoryInput{
		MessageID: "message-1",
	}).Return(&giveaway.GetWinnerHistoryOutput{
		Records: []*models.GiveawayWinner{
			{ID: "record-1", GiveawayID: "message-1", UserID: "user-1", SelectedAt: selectedAt},
			{ID: "record-2", GiveawayID: "message-1", UserID: "user-2", SelectedAt: selectedAt.Add(time.Hour)},
		},
	}, nil)

	member := &discordgo.Member{User: &discordgo.User{ID: "user-3"}}
	i := commandInteraction("history", "message-1", member)

	err := s.command.Handle(s.session, i)
	s.Require().NoError(err)
	s.Equal(1, s.transport.count())
}

func (s *GiveawayCommandTestSuite) TestHandleHistoryNotFound() {
	s.mockService.EXPECT().GetWinnerHistory(gomock.Any(), gomock.Any()).
		Return(nil, giveaway.ErrGiveawayNotFound)

	member := &discordgo.Member{User: &discordgo.User{ID: "user-1"}}
	i := commandInteraction("history", "missing-id", member)

	err := s.command.Handle(s.session, i)
	s.Require().NoError(err)
	s.Equal(1, s.transport.count())
}

func (s *GiveawayCommandTestSuite) TestEnterButtonOutsideGuild() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "interaction-id",
		Token: "interaction-token",
		Type:  discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{
			CustomID: ButtonEnterGiveaway,
		},
		Message: &discordgo.Message{ID: "message-1"},
		User:    &discordgo.User{ID: "user-1"},
	}}

	err := s.bot.handleComponentInteraction(s.session, i)
	s.Require().NoError(err)
	s.Equal(1, s.transport.count())
}

func (s *GiveawayCommandTestSuite) TestModalSubmitOutsideGuild() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "interaction-id",
		Token: "interaction-token",
		Type:  discordgo.InteractionModalSubmit,
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: ModalCreateGiveaway,
		},
		User: &discordgo.User{ID: "user-1"},
	}}

	err := s.bot.handleModalSubmit(s.session, i)
	s.Require().NoError(err)
	s.Equal(1, s.transport.count())
}

func (s *GiveawayCommandTestSuite) TestEnterButtonInGuild() {
	s.mockService.EXPECT().EnterGiveaway(gomock.Any(), &giveaway.EnterGiveawayInput{
		MessageID: "message-1",
		UserID:    "user-1",
	}).Return(&giveaway.EnterGiveawayOutput{EntryCount: 1, Prize: "Gaming Mouse"}, nil)

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "interaction-id",
		Token: "interaction-token",
		Type:  discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{
			CustomID: ButtonEnterGiveaway,
		},
		Message: &discordgo.Message{ID: "message-1"},
		Member:  &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
	}}

	err := s.bot.handleComponentInteraction(s.session, i)
	s.Require().NoError(err)
	s.Equal(1, s.transport.count())
}

func (s *GiveawayCommandTestSuite) TestSubcommandStringMissingOption() {
	subcommand := &discordgo.ApplicationCommandInteractionDataOption{
		Name: "end",
		Type: discordgo.ApplicationCommandOptionSubCommand,
	}
	s.Equal("", subcommandString(subcommand, "message_id"))
}
