package database

import (
	"fmt"
	"testing"

	"github.com/party-dog/birthday-party-bot/internal/domain"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPaymentTest seeds the channel pool and returns ids of party chats
// the tests can bind channels to.
func setupPaymentTest(t *testing.T, db *DB, chats int, links ...string) []int64 {
	t.Helper()

	owner := createTestCelebrant(t, db, "Uowner")

	paymentRepo := newPaymentRepo(db.conn)
	for _, link := range links {
		require.NoError(t, paymentRepo.Create(&entity.PaymentChannel{Link: link, OwnerID: owner.ID}))
	}

	chatRepo := newChatRepo(db.conn)
	ids := make([]int64, 0, chats)
	for i := 0; i < chats; i++ {
		chat := &entity.PartyChat{
			SlackChannelID: fmt.Sprintf("C%03d", i+1),
			CelebrantID:    owner.ID,
			IsActive:       true,
		}
		require.NoError(t, chatRepo.Create(chat))
		ids = append(ids, chat.ID)
	}

	return ids
}

func TestPaymentRepo_Acquire(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newPaymentRepo(db.conn)
	chats := setupPaymentTest(t, db, 3, "https://pay.example.com/a", "https://pay.example.com/b")

	t.Run("binds a free channel", func(t *testing.T) {
		channel, err := repo.Acquire(chats[0])

		require.NoError(t, err)
		require.NotNil(t, channel)
		assert.Equal(t, chats[0], channel.BoundChatID)
		assert.True(t, channel.IsBound())
	})

	t.Run("re-acquire is idempotent", func(t *testing.T) {
		first, err := repo.Acquire(chats[0])
		require.NoError(t, err)

		second, err := repo.Acquire(chats[0])
		require.NoError(t, err)

		assert.Equal(t, first.Link, second.Link)
	})

	t.Run("distinct chats get distinct channels", func(t *testing.T) {
		first, err := repo.Acquire(chats[0])
		require.NoError(t, err)

		second, err := repo.Acquire(chats[1])
		require.NoError(t, err)

		assert.NotEqual(t, first.Link, second.Link)
	})

	t.Run("exhausted pool", func(t *testing.T) {
		_, err := repo.Acquire(chats[2])

		assert.ErrorIs(t, err, domain.ErrPaymentChannelsExhausted)
	})
}

func TestPaymentRepo_Release(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newPaymentRepo(db.conn)
	chats := setupPaymentTest(t, db, 2, "https://pay.example.com/a")

	t.Run("released channel becomes available again", func(t *testing.T) {
		acquired, err := repo.Acquire(chats[0])
		require.NoError(t, err)

		require.NoError(t, repo.Release(chats[0]))

		gone, err := repo.GetBoundTo(chats[0])
		require.NoError(t, err)
		assert.Nil(t, gone)

		reacquired, err := repo.Acquire(chats[1])
		require.NoError(t, err)
		assert.Equal(t, acquired.Link, reacquired.Link)
	})

	t.Run("release with nothing bound is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Release(999))
	})
}
