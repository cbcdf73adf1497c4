package contract

// ChatClient defines the messaging platform operations the services need.
// This allows mocking in tests while keeping the real implementation simple.
type ChatClient interface {
	// BotUserID returns the bot's own platform user id.
	BotUserID() (string, error)

	// CreateGroup creates a new group chat and returns its platform id.
	CreateGroup(name string) (string, error)

	// ArchiveGroup tears down a group chat.
	ArchiveGroup(channelID string) error

	// PostMessage sends a message to a group chat and returns the message id.
	PostMessage(channelID, text string) (string, error)

	// PinMessage pins a previously posted message in a group chat.
	PinMessage(channelID, messageID string) error

	// AddMember adds a user to a group chat. Fails when the user's settings
	// or platform limits prevent a direct add.
	AddMember(channelID, userID string) error

	// InviteLink returns a shareable link into the group chat.
	InviteLink(channelID string) (string, error)

	// ListMembers returns the platform user ids present in a group chat.
	ListMembers(channelID string) ([]string, error)

	// SendDirectMessage sends a private message to a single user.
	SendDirectMessage(userID, text string) error
}

// Pacer spaces out consecutive platform calls. The messaging platform rate
// limits bursts of writes, so every add/invite/send in a loop goes through
// a Pause.
type Pacer interface {
	Pause()
}
