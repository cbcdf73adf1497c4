package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/party-dog/birthday-party-bot/internal/config"
	"github.com/party-dog/birthday-party-bot/internal/domain/birthday"
	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

type rosterService struct {
	dm    contract.DataManager
	chat  contract.ChatClient
	pacer contract.Pacer
	cfg   *config.Config
}

func newRoster(dm contract.DataManager, chat contract.ChatClient, pacer contract.Pacer, cfg *config.Config) *rosterService {
	return &rosterService{
		dm:    dm,
		chat:  chat,
		pacer: pacer,
		cfg:   cfg,
	}
}

// SyncRoster reconciles the tracked persons against the live community
// channel membership. Members who left are deactivated and reported to the
// admins; members not yet registered are reported for registration. One
// person's failure never stops the rest of the sync.
func (s *rosterService) SyncRoster(ctx context.Context) error {
	people, err := s.dm.Person().ListActive()
	if err != nil {
		return fmt.Errorf("failed to list active persons: %w", err)
	}

	members, err := s.chat.ListMembers(s.cfg.CommunityChannelID)
	if err != nil {
		return fmt.Errorf("failed to list community members: %w", err)
	}

	botID, err := s.chat.BotUserID()
	if err != nil {
		return fmt.Errorf("failed to get bot identity: %w", err)
	}

	known := make([]string, 0, len(people))
	bySlackID := make(map[string]*entity.Person, len(people))
	for _, p := range people {
		known = append(known, p.SlackUserID)
		bySlackID[p.SlackUserID] = p
	}

	present := make([]string, 0, len(members))
	for _, id := range members {
		if id != botID {
			present = append(present, id)
		}
	}

	missing, unexpected := birthday.Diff(known, present)
	slog.Info("roster reconciled", "missing", len(missing), "unexpected", len(unexpected))

	for _, id := range missing {
		s.deactivateLeaver(bySlackID[id])
	}

	for _, id := range unexpected {
		s.notifyAdmins(fmt.Sprintf("New member in the community channel: <@%s>.\n"+
			"Please register their name and birth date.", id))
	}

	return nil
}

func (s *rosterService) deactivateLeaver(person *entity.Person) {
	if err := s.dm.Person().Deactivate(person.ID); err != nil {
		slog.Error("failed to deactivate leaver", "person", person.FullName(), "error", err)
		s.notifyAdmins(fmt.Sprintf("Could not deactivate %s after they left the community channel: %v",
			person.FullName(), err))
		return
	}

	slog.Info("person deactivated after leaving the community", "person", person.FullName())
	s.notifyAdmins(fmt.Sprintf("%s left the community channel and was deactivated.", person.FullName()))
}

func (s *rosterService) notifyAdmins(text string) {
	for _, adminID := range s.cfg.AdminUserIDs {
		if err := s.chat.SendDirectMessage(adminID, text); err != nil {
			slog.Error("failed to notify admin", "admin", adminID, "error", err)
		}
		s.pacer.Pause()
	}
}
