package services

import (
	"context"
	"fmt"
	"net/http"

	"chatapp-client/internal/events"
	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

type addFriendRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Tag      string `json:"tag" validate:"required,len=4"`
}

// AddFriend sends a friend request by username#tag. The response embeds the
// recipient, dispatched the same way FRIEND_REQUEST_SENT is.
func (c *Client) AddFriend(ctx context.Context, username string, tag string) (models.RawFriend, error) {
	var raw models.RawFriend
	err := c.do(ctx, http.MethodPost, "/friends", addFriendRequest{Username: username, Tag: tag}, true, &raw)
	if err != nil {
		return models.RawFriend{}, err
	}
	return raw, c.store.Dispatch(events.FriendRequestActions(raw, models.FriendSent)...)
}

func (c *Client) AcceptFriend(ctx context.Context, friendID int64) error {
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/friends/%d", friendID), nil, true, nil); err != nil {
		return err
	}
	return c.store.Dispatch(store.UpdateFriend{
		RecipientID: friendID,
		Patch:       models.FriendPatch{Status: friendStatusPtr(models.FriendFriends)},
	})
}

func (c *Client) RemoveFriend(ctx context.Context, friendID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/friends/%d", friendID), nil, true, nil); err != nil {
		return err
	}
	return c.store.Dispatch(store.DeleteFriend{RecipientID: friendID})
}

func friendStatusPtr(status models.FriendStatus) *models.FriendStatus {
	return &status
}
