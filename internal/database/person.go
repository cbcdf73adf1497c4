package database

import (
	"database/sql"
	"fmt"

	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/party-dog/birthday-party-bot/internal/domain/entity"
)

type personRepo struct {
	db dbConn
}

func newPersonRepo(db dbConn) contract.PersonRepo {
	return &personRepo{db: db}
}

const personColumns = `id, slack_user_id, user_name, first_name, last_name,
		birth_day, birth_month, gender, is_active, created_at`

func (r *personRepo) Create(person *entity.Person) error {
	query := `
		INSERT INTO persons (slack_user_id, user_name, first_name, last_name,
			birth_day, birth_month, gender, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		person.SlackUserID,
		person.UserName,
		person.FirstName,
		person.LastName,
		person.BirthDay,
		person.BirthMonth,
		person.Gender,
		person.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	person.ID = id
	return nil
}

func (r *personRepo) GetByID(id int64) (*entity.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *personRepo) GetBySlackID(slackUserID string) (*entity.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE slack_user_id = ?
	`

	return r.scanOne(r.db.QueryRow(query, slackUserID))
}

func (r *personRepo) GetCelebrantFor(chatID int64) (*entity.Person, error) {
	query := `
		SELECT p.id, p.slack_user_id, p.user_name, p.first_name, p.last_name,
			p.birth_day, p.birth_month, p.gender, p.is_active, p.created_at
		FROM persons p
		JOIN party_chats c ON c.celebrant_id = p.id
		WHERE c.id = ?
	`

	return r.scanOne(r.db.QueryRow(query, chatID))
}

func (r *personRepo) ListActive() ([]*entity.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE is_active = 1
		ORDER BY birth_month, birth_day
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active persons: %w", err)
	}
	defer rows.Close()

	var persons []*entity.Person
	for rows.Next() {
		person := &entity.Person{}
		err := rows.Scan(
			&person.ID,
			&person.SlackUserID,
			&person.UserName,
			&person.FirstName,
			&person.LastName,
			&person.BirthDay,
			&person.BirthMonth,
			&person.Gender,
			&person.IsActive,
			&person.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}

	return persons, nil
}

func (r *personRepo) Deactivate(id int64) error {
	query := `UPDATE persons SET is_active = 0 WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate person: %w", err)
	}

	return nil
}

func (r *personRepo) scanOne(row *sql.Row) (*entity.Person, error) {
	person := &entity.Person{}
	err := row.Scan(
		&person.ID,
		&person.SlackUserID,
		&person.UserName,
		&person.FirstName,
		&person.LastName,
		&person.BirthDay,
		&person.BirthMonth,
		&person.Gender,
		&person.IsActive,
		&person.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}
