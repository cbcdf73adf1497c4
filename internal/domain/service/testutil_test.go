package service

import (
	"fmt"
	"testing"

	"github.com/party-dog/birthday-party-bot/internal/config"
	"github.com/party-dog/birthday-party-bot/internal/database"
	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

// fakeChatClient records every platform call and lets tests inject
// per-user add failures.
type fakeChatClient struct {
	botID       string
	nextChannel int

	members  map[string][]string // channel id -> member ids
	created  []string
	archived []string
	posted   map[string][]string // channel id -> message texts
	pinned   map[string][]string // channel id -> pinned message ids
	directs  map[string][]string // user id -> message texts

	failAddFor  map[string]bool // user id -> AddMember fails
	failArchive bool
}

func newFakeChatClient() *fakeChatClient {
	return &fakeChatClient{
		botID:      "UBOT",
		members:    make(map[string][]string),
		posted:     make(map[string][]string),
		pinned:     make(map[string][]string),
		directs:    make(map[string][]string),
		failAddFor: make(map[string]bool),
	}
}

func (f *fakeChatClient) BotUserID() (string, error) {
	return f.botID, nil
}

func (f *fakeChatClient) CreateGroup(name string) (string, error) {
	f.nextChannel++
	id := fmt.Sprintf("C%03d", f.nextChannel)
	f.created = append(f.created, name)
	return id, nil
}

func (f *fakeChatClient) ArchiveGroup(channelID string) error {
	if f.failArchive {
		return fmt.Errorf("channel %s is already gone", channelID)
	}
	f.archived = append(f.archived, channelID)
	return nil
}

func (f *fakeChatClient) PostMessage(channelID, text string) (string, error) {
	f.posted[channelID] = append(f.posted[channelID], text)
	return fmt.Sprintf("%s.%d", channelID, len(f.posted[channelID])), nil
}

func (f *fakeChatClient) PinMessage(channelID, messageID string) error {
	f.pinned[channelID] = append(f.pinned[channelID], messageID)
	return nil
}

func (f *fakeChatClient) AddMember(channelID, userID string) error {
	if f.failAddFor[userID] {
		return fmt.Errorf("user %s cannot be added", userID)
	}
	f.members[channelID] = append(f.members[channelID], userID)
	return nil
}

func (f *fakeChatClient) InviteLink(channelID string) (string, error) {
	return "https://chat.example.com/join/" + channelID, nil
}

func (f *fakeChatClient) ListMembers(channelID string) ([]string, error) {
	return f.members[channelID], nil
}

func (f *fakeChatClient) SendDirectMessage(userID, text string) error {
	f.directs[userID] = append(f.directs[userID], text)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		CommunityChannelID: "CMAIN",
		AdminUserIDs:       []string{"UADMIN"},
		DaysBefore:         7,
		DaysAfter:          2,
		CardNumber:         "1234 5678 9012 3456",
	}
}

// newServiceTest wires the services against an in-memory database and the
// chat client fake.
func newServiceTest(t *testing.T) (*Services, contract.DataManager, *fakeChatClient) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	dm := database.NewInstance(db)
	chat := newFakeChatClient()

	return New(dm, chat, SleepPacer{}, testConfig()), dm, chat
}

func createPerson(t *testing.T, dm contract.DataManager, slackID string, month, day int) *entity.Person {
	t.Helper()

	person := &entity.Person{
		SlackUserID: slackID,
		UserName:    slackID,
		FirstName:   "Member",
		LastName:    slackID,
		BirthDay:    day,
		BirthMonth:  month,
		IsActive:    true,
	}
	require.NoError(t, dm.Person().Create(person))
	return person
}

func createPaymentChannel(t *testing.T, dm contract.DataManager, link string, ownerID int64) {
	t.Helper()

	require.NoError(t, dm.Payment().Create(&entity.PaymentChannel{Link: link, OwnerID: ownerID}))
}
