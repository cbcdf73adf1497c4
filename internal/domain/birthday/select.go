package birthday

import (
	"time"

	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

// SelectCelebrant returns the first active person whose chat-creation
// window is open today and who has no active party chat yet, or nil.
//
// The creation window is (anniversary-before, anniversary]: a chat is
// created only up to and including the day itself, never after.
// activeChats maps person id to the number of active party chats owned by
// that person. At most one person is returned per call: the caller runs
// once per day and the platform rate limit allows one chat creation per
// run.
func SelectCelebrant(today time.Time, people []*entity.Person, activeChats map[int64]int, before int) *entity.Person {
	for _, p := range people {
		if !p.IsActive {
			continue
		}
		if activeChats[p.ID] > 0 {
			continue
		}
		if !IsWithinWindow(today, p.BirthMonth, p.BirthDay, before, 0) {
			continue
		}
		return p
	}
	return nil
}
