package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"chatapp-client/internal/events"
	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

type openInboxResponse struct {
	Channel   models.Channel `json:"channel"`
	Recipient models.User    `json:"recipient"`
	LastSeen  *int64         `json:"lastSeen"`
}

// OpenInbox opens (or reopens) the DM channel with a user and applies the
// same three-store upsert as INBOX_OPENED.
func (c *Client) OpenInbox(ctx context.Context, userID int64) (models.Channel, error) {
	var resp openInboxResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/open-channel", userID), nil, true, &resp)
	if err != nil {
		return models.Channel{}, err
	}
	return resp.Channel, c.store.Dispatch(events.InboxOpenedActions(resp.Channel, resp.Recipient, resp.LastSeen)...)
}

// CloseInbox closes the DM channel, cascading exactly like INBOX_CLOSED.
func (c *Client) CloseInbox(ctx context.Context, channelID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/inbox/%d", channelID), nil, true, nil); err != nil {
		return err
	}
	return c.store.Dispatch(events.InboxClosedActions(channelID)...)
}

// MarkSeen records that the channel was read up to now, on the channel and
// on its inbox entry together.
func (c *Client) MarkSeen(ctx context.Context, channelID int64) error {
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/channels/%d/seen", channelID), nil, true, nil); err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	return c.store.Dispatch(
		store.UpdateChannel{ID: channelID, Patch: models.ChannelPatch{LastSeen: &now}},
		store.UpdateInboxEntry{ChannelID: channelID, Patch: models.InboxPatch{LastSeen: &now}},
	)
}
