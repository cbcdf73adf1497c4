package database

import (
	"database/sql"
	"fmt"

	"github.com/party-dog/birthday-party-bot/internal/domain"
	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

type paymentRepo struct {
	db dbConn
}

func newPaymentRepo(db dbConn) contract.PaymentRepo {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(channel *entity.PaymentChannel) error {
	query := `
		INSERT INTO payment_channels (link, owner_id)
		VALUES (?, ?)
	`

	_, err := r.db.Exec(query, channel.Link, channel.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to create payment channel: %w", err)
	}

	return nil
}

// Acquire re-acquires the channel already bound to the chat, or binds a
// free one. The bind is a single conditional UPDATE so two overlapping
// cycles cannot claim the same channel.
func (r *paymentRepo) Acquire(chatID int64) (*entity.PaymentChannel, error) {
	existing, err := r.GetBoundTo(chatID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := `
		UPDATE payment_channels
		SET bound_chat_id = ?
		WHERE link = (
			SELECT link FROM payment_channels WHERE bound_chat_id IS NULL LIMIT 1
		) AND bound_chat_id IS NULL
	`

	result, err := r.db.Exec(query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to bind payment channel: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrPaymentChannelsExhausted
	}

	return r.GetBoundTo(chatID)
}

func (r *paymentRepo) GetBoundTo(chatID int64) (*entity.PaymentChannel, error) {
	query := `
		SELECT link, owner_id, bound_chat_id
		FROM payment_channels
		WHERE bound_chat_id = ?
	`

	channel := &entity.PaymentChannel{}
	var boundChatID sql.NullInt64
	err := r.db.QueryRow(query, chatID).Scan(
		&channel.Link,
		&channel.OwnerID,
		&boundChatID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment channel: %w", err)
	}

	channel.BoundChatID = boundChatID.Int64
	return channel, nil
}

func (r *paymentRepo) Release(chatID int64) error {
	query := `UPDATE payment_channels SET bound_chat_id = NULL WHERE bound_chat_id = ?`

	_, err := r.db.Exec(query, chatID)
	if err != nil {
		return fmt.Errorf("failed to release payment channel: %w", err)
	}

	return nil
}
