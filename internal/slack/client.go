// Package slack implements the chat platform contract on the Slack Web API.
package slack

import (
	"fmt"

	"github.com/party-dog/birthday-party-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

type Client struct {
	api *slack.Client
}

func New(api *slack.Client) contract.ChatClient {
	return &Client{api: api}
}

func (c *Client) BotUserID() (string, error) {
	resp, err := c.api.AuthTest()
	if err != nil {
		return "", fmt.Errorf("failed to get bot identity: %w", err)
	}
	return resp.UserID, nil
}

func (c *Client) CreateGroup(name string) (string, error) {
	channel, err := c.api.CreateConversation(slack.CreateConversationParams{
		ChannelName: name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create channel: %w", err)
	}
	return channel.ID, nil
}

func (c *Client) ArchiveGroup(channelID string) error {
	if err := c.api.ArchiveConversation(channelID); err != nil {
		return fmt.Errorf("failed to archive channel: %w", err)
	}
	return nil
}

func (c *Client) PostMessage(channelID, text string) (string, error) {
	_, timestamp, err := c.api.PostMessage(channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	return timestamp, nil
}

func (c *Client) PinMessage(channelID, messageID string) error {
	err := c.api.AddPin(channelID, slack.ItemRef{
		Channel:   channelID,
		Timestamp: messageID,
	})
	if err != nil {
		return fmt.Errorf("failed to pin message: %w", err)
	}
	return nil
}

func (c *Client) AddMember(channelID, userID string) error {
	if _, err := c.api.InviteUsersToConversation(channelID, userID); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// InviteLink returns the workspace deep link into the channel. Slack has no
// exportable invite URL for regular bots, but the app redirect opens the
// channel for any workspace member.
func (c *Client) InviteLink(channelID string) (string, error) {
	return fmt.Sprintf("https://slack.com/app_redirect?channel=%s", channelID), nil
}

func (c *Client) ListMembers(channelID string) ([]string, error) {
	var all []string
	params := &slack.GetUsersInConversationParameters{
		ChannelID: channelID,
		Limit:     200,
	}

	for {
		members, cursor, err := c.api.GetUsersInConversation(params)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		all = append(all, members...)

		if cursor == "" {
			return all, nil
		}
		params.Cursor = cursor
	}
}

func (c *Client) SendDirectMessage(userID, text string) error {
	channel, _, _, err := c.api.OpenConversation(&slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return fmt.Errorf("failed to open direct message: %w", err)
	}

	if _, _, err := c.api.PostMessage(channel.ID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to send direct message: %w", err)
	}
	return nil
}
