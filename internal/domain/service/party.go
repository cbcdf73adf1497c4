package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/party-dog/birthday-party-bot/internal/config"
	"github.com/party-dog/birthday-party-bot/internal/domain/birthday"
	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

type partyService struct {
	dm    contract.DataManager
	chat  contract.ChatClient
	pacer contract.Pacer
	cfg   *config.Config
}

func newParty(dm contract.DataManager, chat contract.ChatClient, pacer contract.Pacer, cfg *config.Config) *partyService {
	return &partyService{
		dm:    dm,
		chat:  chat,
		pacer: pacer,
		cfg:   cfg,
	}
}

// CreatePartyForToday creates at most one birthday chat: the first active
// person whose creation window is open today and who has no active chat
// yet. The chat is persisted, every other active member is added (or sent
// an invite link when a direct add fails), and the pinned introduction
// with the collection link opens the party. Returns nil without error when
// nobody qualifies.
func (s *partyService) CreatePartyForToday(ctx context.Context, today time.Time) (*entity.PartyChat, error) {
	people, err := s.dm.Person().ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active persons: %w", err)
	}

	counts, err := s.dm.Chat().ActiveCountsByCelebrant()
	if err != nil {
		return nil, fmt.Errorf("failed to count active chats: %w", err)
	}

	celebrant := birthday.SelectCelebrant(today, people, counts, s.cfg.DaysBefore)
	if celebrant == nil {
		slog.Info("no celebrant due today")
		return nil, nil
	}

	slog.Info("creating party chat",
		"celebrant", celebrant.FullName(),
		"birthday", celebrant.BirthdayLabel(),
	)

	channelID, err := s.chat.CreateGroup(partyChannelName(celebrant))
	if err != nil {
		return nil, fmt.Errorf("failed to create party channel: %w", err)
	}
	s.pacer.Pause()

	link, err := s.chat.InviteLink(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invite link: %w", err)
	}

	chat := &entity.PartyChat{
		SlackChannelID: channelID,
		CelebrantID:    celebrant.ID,
		InviteLink:     link,
		IsActive:       true,
	}
	if err := s.dm.Chat().Create(chat); err != nil {
		return nil, fmt.Errorf("failed to record party chat: %w", err)
	}

	s.inviteMembers(chat, celebrant, people)

	if err := s.sendIntroduction(chat, celebrant); err != nil {
		return chat, err
	}

	return chat, nil
}

// inviteMembers adds every active person except the celebrant. A failed
// add falls back to a direct message with the invite link; one person's
// failure never stops the loop. Counters are persisted after every attempt
// so an aborted run leaves accurate numbers behind.
func (s *partyService) inviteMembers(chat *entity.PartyChat, celebrant *entity.Person, people []*entity.Person) {
	added, invited := 0, 0

	for _, p := range people {
		if p.ID == celebrant.ID {
			continue
		}

		if err := s.chat.AddMember(chat.SlackChannelID, p.SlackUserID); err != nil {
			slog.Warn("could not add member, falling back to invite link",
				"person", p.FullName(), "error", err)

			if dmErr := s.chat.SendDirectMessage(p.SlackUserID, inviteFallbackText(celebrant, chat.InviteLink)); dmErr != nil {
				slog.Error("failed to send invite link", "person", p.FullName(), "error", dmErr)
			} else {
				invited++
			}
		} else {
			added++
		}

		if err := s.dm.Chat().SetMemberCounts(chat.ID, added, invited); err != nil {
			slog.Error("failed to record member counts", "chat_id", chat.ID, "error", err)
		}
		s.pacer.Pause()
	}

	chat.MembersAdded = added
	chat.MembersInvited = invited
	slog.Info("members invited", "chat_id", chat.ID, "added", added, "invited", invited)
}

func (s *partyService) sendIntroduction(chat *entity.PartyChat, celebrant *entity.Person) error {
	payment, err := s.dm.Payment().Acquire(chat.ID)
	if err != nil {
		return fmt.Errorf("failed to acquire payment channel for chat %d: %w", chat.ID, err)
	}

	messageID, err := s.chat.PostMessage(chat.SlackChannelID, introText(celebrant, payment.Link, s.cfg.CardNumber))
	if err != nil {
		return fmt.Errorf("failed to post introduction: %w", err)
	}

	if err := s.chat.PinMessage(chat.SlackChannelID, messageID); err != nil {
		slog.Warn("could not pin introduction", "chat_id", chat.ID, "error", err)
	}
	s.pacer.Pause()

	if _, err := s.chat.PostMessage(chat.SlackChannelID, inviteLinkText(chat.InviteLink)); err != nil {
		slog.Warn("could not post invite link message", "chat_id", chat.ID, "error", err)
	}

	return nil
}

func partyChannelName(celebrant *entity.Person) string {
	name := fmt.Sprintf("bday-%s-%s-%02d-%02d",
		celebrant.FirstName, celebrant.LastName, celebrant.BirthDay, celebrant.BirthMonth)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

func introText(celebrant *entity.Person, paymentLink, cardNumber string) string {
	text := fmt.Sprintf("Hi everyone! %s celebrates a birthday on %s!\n\n"+
		"We are collecting for the present here: %s",
		celebrant.FullName(), celebrant.BirthdayLabel(), paymentLink)

	if cardNumber != "" {
		text += fmt.Sprintf("\n\nIf the link does not work for you, you can send to the card:\n%s\n"+
			"(please mention the celebrant in the payment comment)", cardNumber)
	}

	return text
}

func inviteFallbackText(celebrant *entity.Person, inviteLink string) string {
	return fmt.Sprintf("Hi! I could not add you to the birthday chat directly.\n"+
		"%s celebrates a birthday on %s!\n\n"+
		"Please join via the link: %s",
		celebrant.FullName(), celebrant.BirthdayLabel(), inviteLink)
}

func inviteLinkText(inviteLink string) string {
	return fmt.Sprintf("You can invite more people to this chat with the link: %s", inviteLink)
}
