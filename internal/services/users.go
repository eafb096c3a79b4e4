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

type updatePresenceRequest struct {
	Status models.UserStatus `json:"status" validate:"min=0,max=4"`
	Custom string            `json:"custom" validate:"max=100"`
}

// UpdatePresence pushes the self user's status and mirrors it locally with
// the same presence merge the socket event uses.
func (c *Client) UpdatePresence(ctx context.Context, status models.UserStatus, custom string) error {
	err := c.do(ctx, http.MethodPost, "/users/presence", updatePresenceRequest{Status: status, Custom: custom}, true, nil)
	if err != nil {
		return err
	}

	selfID, ok := c.store.Account.SelfID()
	if !ok {
		return nil
	}
	return c.store.Dispatch(store.UpdateUserPresence{Update: models.PresenceUpdate{
		UserID: selfID,
		Status: &status,
		Custom: &custom,
	}})
}

type updateAccountRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	Tag      *string `json:"tag,omitempty" validate:"omitempty,len=4"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UpdateAccount patches the self user's profile. Both views of the identity
// (users row and account) are patched in one batch, the same way the
// USER_UPDATED event applies: a patch, not a replace, so merged state on the
// users row (presence, inbox pointer) survives the profile change.
func (c *Client) UpdateAccount(ctx context.Context, username *string, tag *string, avatar *string) error {
	body := updateAccountRequest{Username: username, Tag: tag, Avatar: avatar}
	var updated models.User
	if err := c.do(ctx, http.MethodPost, "/users/account", body, true, &updated); err != nil {
		return err
	}

	return c.store.Dispatch(
		store.UpdateUser{ID: updated.ID, Patch: models.UserPatch{
			Username: &updated.Username,
			Tag:      &updated.Tag,
			HexColor: &updated.HexColor,
			Avatar:   &updated.Avatar,
		}},
		store.UpdateAccount{Patch: models.AccountPatch{
			Username: &updated.Username,
			Tag:      &updated.Tag,
			HexColor: &updated.HexColor,
			Avatar:   &updated.Avatar,
		}},
	)
}

// BlockUser blocks the target and synthesizes the blocked relationship
// locally, identical to the USER_BLOCKED event.
func (c *Client) BlockUser(ctx context.Context, userID int64) error {
	var blocked models.User
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/block", userID), nil, true, &blocked); err != nil {
		return err
	}
	selfID, _ := c.store.Account.SelfID()
	return c.store.Dispatch(events.BlockUserActions(blocked, selfID, time.Now().UnixMilli())...)
}

func (c *Client) UnblockUser(ctx context.Context, userID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/block", userID), nil, true, nil); err != nil {
		return err
	}
	return c.store.Dispatch(events.UnblockUserActions(userID)...)
}
