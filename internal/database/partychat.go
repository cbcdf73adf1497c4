package database

import (
	"database/sql"
	"fmt"

	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

type chatRepo struct {
	db dbConn
}

func newChatRepo(db dbConn) contract.ChatRepo {
	return &chatRepo{db: db}
}

const chatColumns = `id, slack_channel_id, celebrant_id, invite_link,
		members_added, members_invited, birthday_announced, deletion_warned,
		is_active, created_at`

func (r *chatRepo) Create(chat *entity.PartyChat) error {
	query := `
		INSERT INTO party_chats (slack_channel_id, celebrant_id, invite_link, is_active)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		chat.SlackChannelID,
		chat.CelebrantID,
		chat.InviteLink,
		chat.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create party chat: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	chat.ID = id
	return nil
}

func (r *chatRepo) GetByID(id int64) (*entity.PartyChat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM party_chats
		WHERE id = ?
	`

	chat := &entity.PartyChat{}
	err := r.db.QueryRow(query, id).Scan(
		&chat.ID,
		&chat.SlackChannelID,
		&chat.CelebrantID,
		&chat.InviteLink,
		&chat.MembersAdded,
		&chat.MembersInvited,
		&chat.BirthdayAnnounced,
		&chat.DeletionWarned,
		&chat.IsActive,
		&chat.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get party chat: %w", err)
	}

	return chat, nil
}

func (r *chatRepo) ListActive() ([]*entity.PartyChat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM party_chats
		WHERE is_active = 1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active party chats: %w", err)
	}
	defer rows.Close()

	var chats []*entity.PartyChat
	for rows.Next() {
		chat := &entity.PartyChat{}
		err := rows.Scan(
			&chat.ID,
			&chat.SlackChannelID,
			&chat.CelebrantID,
			&chat.InviteLink,
			&chat.MembersAdded,
			&chat.MembersInvited,
			&chat.BirthdayAnnounced,
			&chat.DeletionWarned,
			&chat.IsActive,
			&chat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party chat: %w", err)
		}
		chats = append(chats, chat)
	}

	return chats, nil
}

// ActiveCountsByCelebrant returns the number of active chats per celebrant
// id. Celebrants with no active chat are absent from the map.
func (r *chatRepo) ActiveCountsByCelebrant() (map[int64]int, error) {
	query := `
		SELECT celebrant_id, COUNT(*)
		FROM party_chats
		WHERE is_active = 1
		GROUP BY celebrant_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to count active party chats: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var celebrantID int64
		var count int
		if err := rows.Scan(&celebrantID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan chat count: %w", err)
		}
		counts[celebrantID] = count
	}

	return counts, nil
}

func (r *chatRepo) SetMemberCounts(id int64, added, invited int) error {
	query := `UPDATE party_chats SET members_added = ?, members_invited = ? WHERE id = ?`

	_, err := r.db.Exec(query, added, invited, id)
	if err != nil {
		return fmt.Errorf("failed to update member counts: %w", err)
	}

	return nil
}

func (r *chatRepo) SetBirthdayAnnounced(id int64) error {
	query := `UPDATE party_chats SET birthday_announced = 1 WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to set birthday announced: %w", err)
	}

	return nil
}

func (r *chatRepo) SetDeletionWarned(id int64) error {
	query := `UPDATE party_chats SET deletion_warned = 1 WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to set deletion warned: %w", err)
	}

	return nil
}

func (r *chatRepo) Deactivate(id int64) error {
	query := `UPDATE party_chats SET is_active = 0 WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate party chat: %w", err)
	}

	return nil
}
