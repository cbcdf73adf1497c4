package database

import (
	"context"
	"fmt"

	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db          *DB
	personRepo  contract.PersonRepo
	chatRepo    contract.ChatRepo
	paymentRepo contract.PaymentRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.personRepo = newPersonRepo(i.db.conn)
	i.chatRepo = newChatRepo(i.db.conn)
	i.paymentRepo = newPaymentRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		personRepo:  newPersonRepo(db),
		chatRepo:    newChatRepo(db),
		paymentRepo: newPaymentRepo(db),
	}
}

// Person returns the persons repository
func (i *instance) Person() contract.PersonRepo {
	return i.personRepo
}

// Chat returns the party chats repository
func (i *instance) Chat() contract.ChatRepo {
	return i.chatRepo
}

// Payment returns the payment channel repository
func (i *instance) Payment() contract.PaymentRepo {
	return i.paymentRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
