package service

import (
	"github.com/party-dog/birthday-party-bot/internal/config"
	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
)

type Services struct {
	Party   *partyService
	Cleaner *cleanerService
	Roster  *rosterService
	Cycle   *cycleService
}

func New(dm contract.DataManager, chat contract.ChatClient, pacer contract.Pacer, cfg *config.Config) *Services {
	party := newParty(dm, chat, pacer, cfg)
	cleaner := newCleaner(dm, chat, cfg)
	roster := newRoster(dm, chat, pacer, cfg)

	return &Services{
		Party:   party,
		Cleaner: cleaner,
		Roster:  roster,
		Cycle:   newCycle(roster, cleaner, party),
	}
}
