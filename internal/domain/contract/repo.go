package contract

import (
	"context"

	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Person() PersonRepo
	Chat() ChatRepo
	Payment() PaymentRepo
}

// PersonRepo defines the contract for the persons repository
type PersonRepo interface {
	Create(person *entity.Person) error
	GetByID(id int64) (*entity.Person, error)
	GetBySlackID(slackUserID string) (*entity.Person, error)
	GetCelebrantFor(chatID int64) (*entity.Person, error)
	ListActive() ([]*entity.Person, error)
	Deactivate(id int64) error
}

// ChatRepo defines the contract for the party chats repository
type ChatRepo interface {
	Create(chat *entity.PartyChat) error
	GetByID(id int64) (*entity.PartyChat, error)
	ListActive() ([]*entity.PartyChat, error)
	ActiveCountsByCelebrant() (map[int64]int, error)
	SetMemberCounts(id int64, added, invited int) error
	SetBirthdayAnnounced(id int64) error
	SetDeletionWarned(id int64) error
	Deactivate(id int64) error
}

// PaymentRepo defines the contract for the payment channel pool
type PaymentRepo interface {
	Create(channel *entity.PaymentChannel) error
	// Acquire binds a free channel to the chat, or returns the channel
	// already bound to it. Returns domain.ErrPaymentChannelsExhausted when
	// the pool has no free channel.
	Acquire(chatID int64) (*entity.PaymentChannel, error)
	GetBoundTo(chatID int64) (*entity.PaymentChannel, error)
	// Release unbinds whatever channel is bound to the chat. No-op if none.
	Release(chatID int64) error
}
