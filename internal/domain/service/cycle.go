package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type cycleService struct {
	roster  *rosterService
	cleaner *cleanerService
	party   *partyService
}

func newCycle(roster *rosterService, cleaner *cleanerService, party *partyService) *cycleService {
	return &cycleService{
		roster:  roster,
		cleaner: cleaner,
		party:   party,
	}
}

// Run executes one full daily cycle: reconcile the roster, sweep the
// existing party chats, then create at most one new chat. Roster and sweep
// failures are logged without blocking the remaining steps; a failed chat
// creation is surfaced to the invoker.
func (s *cycleService) Run(ctx context.Context, today time.Time) error {
	slog.Info("daily cycle started", "date", today.Format("2006-01-02"))

	if err := s.roster.SyncRoster(ctx); err != nil {
		slog.Error("roster sync failed", "error", err)
	}

	if err := s.cleaner.SweepParties(ctx, today); err != nil {
		slog.Error("party sweep failed", "error", err)
	}

	if _, err := s.party.CreatePartyForToday(ctx, today); err != nil {
		return fmt.Errorf("failed to create today's party chat: %w", err)
	}

	slog.Info("daily cycle finished")
	return nil
}
