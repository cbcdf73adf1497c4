package entity

import (
	"fmt"
	"strings"
	"time"
)

// Person is a tracked community member. Birth date is stored as a
// recurring (day, month) pair with no year.
type Person struct {
	ID          int64
	SlackUserID string
	UserName    string
	FirstName   string
	LastName    string
	BirthDay    int
	BirthMonth  int
	Gender      string
	IsActive    bool
	CreatedAt   time.Time
}

func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// BirthdayLabel formats the birth date as "dd.mm" for chat titles and
// messages.
func (p *Person) BirthdayLabel() string {
	return fmt.Sprintf("%02d.%02d", p.BirthDay, p.BirthMonth)
}

// PartyChat is one birthday celebration's chat room.
type PartyChat struct {
	ID                int64
	SlackChannelID    string
	CelebrantID       int64
	InviteLink        string
	MembersAdded      int
	MembersInvited    int
	BirthdayAnnounced bool
	DeletionWarned    bool
	IsActive          bool
	CreatedAt         time.Time
}

// PaymentChannel is a reusable money-collection link. At most one chat may
// hold it at a time; BoundChatID is zero while the channel is free.
type PaymentChannel struct {
	Link        string
	OwnerID     int64
	BoundChatID int64
}

func (c *PaymentChannel) IsBound() bool {
	return c.BoundChatID != 0
}
