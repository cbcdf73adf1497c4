package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/party-dog/birthday-party-bot/internal/config"
	"github.com/party-dog/birthday-party-bot/internal/domain/birthday"
	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

type cleanerService struct {
	dm   contract.DataManager
	chat contract.ChatClient
	cfg  *config.Config
}

func newCleaner(dm contract.DataManager, chat contract.ChatClient, cfg *config.Config) *cleanerService {
	return &cleanerService{
		dm:   dm,
		chat: chat,
		cfg:  cfg,
	}
}

// SweepParties walks the active party chats and applies the lifecycle
// transition due for each one today. One chat's failure is logged and the
// sweep continues with the rest.
func (s *cleanerService) SweepParties(ctx context.Context, today time.Time) error {
	chats, err := s.dm.Chat().ListActive()
	if err != nil {
		return fmt.Errorf("failed to list active chats: %w", err)
	}

	for _, chat := range chats {
		if err := s.sweepChat(ctx, today, chat); err != nil {
			slog.Error("party sweep failed for chat", "chat_id", chat.ID, "error", err)
		}
	}

	return nil
}

func (s *cleanerService) sweepChat(ctx context.Context, today time.Time, chat *entity.PartyChat) error {
	celebrant, err := s.dm.Person().GetCelebrantFor(chat.ID)
	if err != nil {
		return err
	}
	if celebrant == nil {
		return fmt.Errorf("celebrant not found for chat %d", chat.ID)
	}

	transition := birthday.Evaluate(today,
		celebrant.BirthMonth, celebrant.BirthDay,
		chat.BirthdayAnnounced, chat.DeletionWarned,
		s.cfg.DaysBefore, s.cfg.DaysAfter,
	)

	switch transition {
	case birthday.TransitionAnnounce:
		return s.announce(chat, celebrant)
	case birthday.TransitionWarn:
		return s.warn(chat)
	case birthday.TransitionExpire:
		return s.expire(ctx, chat)
	}

	return nil
}

func (s *cleanerService) announce(chat *entity.PartyChat, celebrant *entity.Person) error {
	text := fmt.Sprintf("Today is the day: happy birthday, %s! 🎉", celebrant.FullName())
	if _, err := s.chat.PostMessage(chat.SlackChannelID, text); err != nil {
		return fmt.Errorf("failed to post birthday announcement: %w", err)
	}

	if err := s.dm.Chat().SetBirthdayAnnounced(chat.ID); err != nil {
		return fmt.Errorf("failed to record announcement: %w", err)
	}

	slog.Info("birthday announced", "chat_id", chat.ID, "celebrant", celebrant.FullName())
	return nil
}

func (s *cleanerService) warn(chat *entity.PartyChat) error {
	const text = "Heads up!\n" +
		"This chat closes tomorrow and the collection link will stop working. " +
		"Please do not send money to it anymore."

	if _, err := s.chat.PostMessage(chat.SlackChannelID, text); err != nil {
		return fmt.Errorf("failed to post deletion warning: %w", err)
	}

	if err := s.dm.Chat().SetDeletionWarned(chat.ID); err != nil {
		return fmt.Errorf("failed to record deletion warning: %w", err)
	}

	slog.Info("deletion warned", "chat_id", chat.ID)
	return nil
}

func (s *cleanerService) expire(ctx context.Context, chat *entity.PartyChat) error {
	if err := s.chat.ArchiveGroup(chat.SlackChannelID); err != nil {
		// The channel may already be gone on the platform side; the row
		// still has to be retired.
		slog.Warn("could not archive channel", "chat_id", chat.ID, "error", err)
	}

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Payment().Release(chat.ID); err != nil {
			return err
		}
		return dm.Chat().Deactivate(chat.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to retire chat %d: %w", chat.ID, err)
	}

	slog.Info("party chat retired", "chat_id", chat.ID)
	return nil
}
